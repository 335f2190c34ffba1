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

var ErrUserNotFound = errors.New("user not found")

type UsersRepo struct {
	pool *pgxpool.Pool
}

func NewUsersRepo(pool *pgxpool.Pool) *UsersRepo {
	return &UsersRepo{pool: pool}
}

func (r *UsersRepo) Create(ctx context.Context, u *domain.User) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	u.CreatedAt = time.Now().UTC()
	_, err := r.pool.Exec(ctx, `INSERT INTO users (id, email, password_hash, first_name, last_name, is_premium, is_verified, verification_token, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
		u.ID, u.Email, u.PasswordHash, u.FirstName, u.LastName, u.IsPremium, u.IsEmailVerified, u.VerificationToken, u.CreatedAt)
	return err
}

func (r *UsersRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.get(ctx, `SELECT id, email, password_hash, first_name, last_name, is_premium, is_verified, verification_token, created_at
		FROM users WHERE email = $1`, email)
}

func (r *UsersRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return r.get(ctx, `SELECT id, email, password_hash, first_name, last_name, is_premium, is_verified, verification_token, created_at
		FROM users WHERE id = $1`, id)
}

func (r *UsersRepo) get(ctx context.Context, sql string, arg interface{}) (*domain.User, error) {
	var u domain.User
	err := r.pool.QueryRow(ctx, sql, arg).
		Scan(&u.ID, &u.Email, &u.PasswordHash, &u.FirstName, &u.LastName, &u.IsPremium, &u.IsEmailVerified, &u.VerificationToken, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// VerifyByToken marks the matching user verified and clears the token.
func (r *UsersRepo) VerifyByToken(ctx context.Context, token string) error {
	tag, err := r.pool.Exec(ctx, `UPDATE users SET is_verified = TRUE, verification_token = ''
		WHERE verification_token = $1 AND verification_token <> ''`, token)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}
