package repo

import (
	"context"

	dom "github.com/JorgegrDev/medic-action/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

// UserRepo provides user persistence.
type UserRepo interface {
	GetByEmail(ctx context.Context, email string) (dom.User, error)
	GetByGoogleSub(ctx context.Context, sub string) (dom.User, error)
	Create(ctx context.Context, email, passwordHash string) (dom.User, error)
	CreateFromGoogle(ctx context.Context, email, sub string) (dom.User, error)
}

// PGUserRepo implements UserRepo with Postgres.
type PGUserRepo struct {
	db *pgxpool.Pool
}

// NewPGUserRepo returns a new PGUserRepo.
func NewPGUserRepo(db *pgxpool.Pool) *PGUserRepo {
	return &PGUserRepo{db: db}
}

// GetByEmail returns the user by email.
func (r *PGUserRepo) GetByEmail(ctx context.Context, email string) (dom.User, error) {
	var u dom.User
	err := r.db.QueryRow(ctx,
		`SELECT id, email, password_hash, google_sub, created_at FROM users WHERE email = $1`,
		email,
	).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.GoogleSub, &u.CreatedAt)
	return u, err
}

// GetByGoogleSub returns the user linked to a Google subject.
func (r *PGUserRepo) GetByGoogleSub(ctx context.Context, sub string) (dom.User, error) {
	var u dom.User
	err := r.db.QueryRow(ctx,
		`SELECT id, email, password_hash, google_sub, created_at FROM users WHERE google_sub = $1`,
		sub,
	).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.GoogleSub, &u.CreatedAt)
	return u, err
}

// Create inserts a new password-based user and returns it.
func (r *PGUserRepo) Create(ctx context.Context, email, passwordHash string) (dom.User, error) {
	query := `
		INSERT INTO users (email, password_hash)
		VALUES ($1, $2)
		RETURNING id, email, password_hash, google_sub, created_at`
	var u dom.User
	err := r.db.QueryRow(ctx, query, email, passwordHash).Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.GoogleSub, &u.CreatedAt,
	)
	return u, err
}

// CreateFromGoogle inserts a new user backed by a Google identity.
func (r *PGUserRepo) CreateFromGoogle(ctx context.Context, email, sub string) (dom.User, error) {
	query := `
		INSERT INTO users (email, password_hash, google_sub)
		VALUES ($1, '', $2)
		RETURNING id, email, password_hash, google_sub, created_at`
	var u dom.User
	err := r.db.QueryRow(ctx, query, email, sub).Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.GoogleSub, &u.CreatedAt,
	)
	return u, err
}
