package repo

import (
	"context"

	dom "github.com/JorgegrDev/medic-action/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ActivityRepo provides append-only activity-log persistence.
type ActivityRepo interface {
	Insert(ctx context.Context, a dom.Activity) (dom.Activity, error)
	List(ctx context.Context, userID int64, typeFilter string) ([]dom.Activity, error)
}

type PGActivityRepo struct {
	db *pgxpool.Pool
}

func NewPGActivityRepo(db *pgxpool.Pool) *PGActivityRepo {
	return &PGActivityRepo{db: db}
}

func (r *PGActivityRepo) Insert(ctx context.Context, a dom.Activity) (dom.Activity, error) {
	query := `
		INSERT INTO activities (type, description, user_id, related_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, type, description, user_id, related_id, created_at`
	var out dom.Activity
	err := r.db.QueryRow(ctx, query, a.Type, a.Description, a.UserID, a.RelatedID).Scan(
		&out.ID, &out.Type, &out.Description, &out.UserID, &out.RelatedID, &out.CreatedAt,
	)
	return out, err
}

// List returns the user's activities newest first. Empty typeFilter means all types.
func (r *PGActivityRepo) List(ctx context.Context, userID int64, typeFilter string) ([]dom.Activity, error) {
	query := `
		SELECT id, type, description, user_id, related_id, created_at
		FROM activities WHERE user_id = $1`
	args := []any{userID}
	if typeFilter != "" {
		query += ` AND type = $2`
		args = append(args, typeFilter)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.Activity
	for rows.Next() {
		var a dom.Activity
		if err := rows.Scan(&a.ID, &a.Type, &a.Description, &a.UserID, &a.RelatedID, &a.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, a)
	}
	return list, rows.Err()
}
