package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"resume-builder/internal/domain"
)

var ErrNotFound = errors.New("resume not found")

type ResumesRepo struct {
	pool *pgxpool.Pool
}

func NewResumesRepo(pool *pgxpool.Pool) *ResumesRepo {
	return &ResumesRepo{pool: pool}
}

func (r *ResumesRepo) ListByUser(ctx context.Context, userID string) ([]domain.ResumeSummary, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, title, template, created_at, updated_at
		FROM resumes WHERE user_id = $1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.ResumeSummary{}
	for rows.Next() {
		var s domain.ResumeSummary
		if err := rows.Scan(&s.ID, &s.Title, &s.Template, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *ResumesRepo) GetByID(ctx context.Context, id, userID string) (*domain.Resume, error) {
	var res domain.Resume
	err := r.pool.QueryRow(ctx, `SELECT id, user_id, title, template, color_theme, content, created_at, updated_at
		FROM resumes WHERE id = $1 AND user_id = $2`, id, userID).
		Scan(&res.ID, &res.UserID, &res.Title, &res.Template, &res.ColorTheme, &res.Content, &res.CreatedAt, &res.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *ResumesRepo) Create(ctx context.Context, userID, title string) (*domain.Resume, error) {
	now := time.Now().UTC()
	res := &domain.Resume{
		ID:         uuid.NewString(),
		UserID:     userID,
		Title:      title,
		Template:   "modern",
		ColorTheme: "blue",
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	_, err := r.pool.Exec(ctx, `INSERT INTO resumes (id, user_id, title, template, color_theme, content, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
		res.ID, res.UserID, res.Title, res.Template, res.ColorTheme, res.Content, res.CreatedAt, res.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return res, nil
}

// Update applies a PUT payload. Empty template/theme/content means a
// title-only rename; the stored blob is left alone. Last write wins, there
// is no version check.
func (r *ResumesRepo) Update(ctx context.Context, id, userID string, up domain.ResumeUpdate) error {
	now := time.Now().UTC()
	if up.Template == "" && up.ColorTheme == "" && up.Content == "" {
		ct, err := r.execCount(ctx, `UPDATE resumes SET title = $3, updated_at = $4
			WHERE id = $1 AND user_id = $2`, id, userID, up.Title, now)
		if err == nil && ct == 0 {
			return ErrNotFound
		}
		return err
	}
	ct, err := r.execCount(ctx, `UPDATE resumes SET title = $3, template = $4, color_theme = $5, content = $6, updated_at = $7
		WHERE id = $1 AND user_id = $2`, id, userID, up.Title, up.Template, up.ColorTheme, up.Content, now)
	if err == nil && ct == 0 {
		return ErrNotFound
	}
	return err
}

func (r *ResumesRepo) execCount(ctx context.Context, sql string, args ...interface{}) (int64, error) {
	tag, err := r.pool.Exec(ctx, sql, args...)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *ResumesRepo) Delete(ctx context.Context, id, userID string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM resumes WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ResumesRepo) CountByUser(ctx context.Context, userID string) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM resumes WHERE user_id = $1`, userID).Scan(&n)
	return n, err
}

func (r *ResumesRepo) TemplatesByUser(ctx context.Context, userID string) ([]string, error) {
	rows, err := r.pool.Query(ctx, `SELECT DISTINCT template FROM resumes WHERE user_id = $1 ORDER BY template`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []string{}
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}
