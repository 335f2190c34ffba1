package export

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/signintech/gopdf"
)

// Engine rasterizes a rendered preview and assembles the raster into a
// portrait A4 PDF. The image is scaled to the full page width (210mm) and
// split across as many pages as its scaled height needs.

// A4 in points.
const (
	pageWidth  = 595.28
	pageHeight = 841.89
)

// Capturer turns an HTML page into a raster image (PNG).
type Capturer interface {
	CaptureHTML(ctx context.Context, html string) ([]byte, error)
}

type Engine struct {
	capture Capturer
	outDir  string
}

func NewEngine(capture Capturer, outDir string) *Engine {
	return &Engine{capture: capture, outDir: outDir}
}

// BaseName picks the export file name: full name, then title, then a
// generic default.
func BaseName(fullName, title string) string {
	for _, s := range []string{fullName, title} {
		if strings.TrimSpace(s) != "" {
			return s
		}
	}
	return "resume"
}

// Export captures the preview and writes <baseName>.pdf into the output
// directory, returning the written path. Failures leave no partial file
// behind and the export can simply be run again.
func (e *Engine) Export(ctx context.Context, html, baseName string) (string, error) {
	raster, err := e.capture.CaptureHTML(ctx, html)
	if err != nil {
		return "", fmt.Errorf("capture preview: %w", err)
	}
	pdfBytes, err := Paginate(raster)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(e.outDir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(e.outDir, sanitize(baseName)+".pdf")
	if err := os.WriteFile(path, pdfBytes, 0o644); err != nil {
		return "", err
	}
	return path, nil
}

// Paginate lays a raster out across portrait A4 pages at full page width,
// height scaled proportionally.
func Paginate(raster []byte) ([]byte, error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(raster))
	if err != nil {
		return nil, fmt.Errorf("decode capture: %w", err)
	}
	if cfg.Width < 1 || cfg.Height < 1 {
		return nil, fmt.Errorf("invalid capture dimensions: %dx%d", cfg.Width, cfg.Height)
	}

	pdf := &gopdf.GoPdf{}
	pdf.Start(gopdf.Config{Unit: gopdf.UnitPT, PageSize: *gopdf.PageSizeA4})

	holder, err := gopdf.ImageHolderByBytes(raster)
	if err != nil {
		return nil, err
	}

	scaledH := float64(cfg.Height) * pageWidth / float64(cfg.Width)
	rect := &gopdf.Rect{W: pageWidth, H: scaledH}
	for offset := 0.0; offset < scaledH; offset += pageHeight {
		pdf.AddPage()
		if err := pdf.ImageByHolder(holder, 0, -offset, rect); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if _, err := pdf.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func sanitize(name string) string {
	name = strings.TrimSpace(name)
	for _, r := range []string{"/", "\\", ":", "*", "?", "\"", "<", ">", "|"} {
		name = strings.ReplaceAll(name, r, "-")
	}
	if name == "" {
		name = "resume"
	}
	return name
}
