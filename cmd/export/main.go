package main

import (
	"context"
	"flag"
	"log"

	"resume-builder/internal/client"
	"resume-builder/internal/config"
	"resume-builder/internal/editor"
	"resume-builder/internal/export"
	infra "resume-builder/pkg/infrastructure"
)

// Renders one stored resume and writes the paginated PDF, end to end:
// REST client -> editor session -> template renderer -> export engine.
func main() {
	var (
		id    = flag.String("id", "", "resume id to export")
		email = flag.String("email", "", "account email")
		pass  = flag.String("password", "", "account password")
		token = flag.String("token", "", "bearer token (skips login)")
		out   = flag.String("out", "", "output directory (default EXPORT_DIR)")
	)
	flag.Parse()

	if *id == "" {
		log.Fatal("-id is required")
	}

	cfg := config.Load()
	if *out == "" {
		*out = cfg.ExportDir
	}

	ctx := context.Background()

	api := client.New(cfg.APIBaseURL, client.WithToken(*token))
	defer api.Close()
	if *token == "" {
		if *email == "" || *pass == "" {
			log.Fatal("either -token or -email/-password is required")
		}
		if err := api.Login(ctx, *email, *pass); err != nil {
			log.Fatalf("login failed: %v", err)
		}
	}

	engine := export.NewEngine(infra.NewChromedpCapturer(), *out)
	session := editor.NewSession(api, editor.WithExporter(engine))
	if err := session.Load(ctx, *id); err != nil {
		log.Fatalf("load failed: %v", err)
	}

	path, err := session.ExportPDF(ctx)
	if err != nil {
		log.Fatalf("export failed: %v", err)
	}
	log.Printf("wrote %s", path)
}
