package repo

import (
	"context"

	dom "github.com/JorgegrDev/medic-action/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DeviceRepo stores push tokens per user.
type DeviceRepo interface {
	Upsert(ctx context.Context, userID int64, pushToken, platform string) (dom.Device, error)
	ListTokens(ctx context.Context, userID int64) ([]string, error)
	Delete(ctx context.Context, userID int64, pushToken string) error
}

type PGDeviceRepo struct {
	db *pgxpool.Pool
}

func NewPGDeviceRepo(db *pgxpool.Pool) *PGDeviceRepo {
	return &PGDeviceRepo{db: db}
}

// Upsert registers a push token, re-owning it if another user registered it
// before (tokens move between accounts when users log out on a device).
func (r *PGDeviceRepo) Upsert(ctx context.Context, userID int64, pushToken, platform string) (dom.Device, error) {
	query := `
		INSERT INTO devices (user_id, push_token, platform)
		VALUES ($1, $2, $3)
		ON CONFLICT (push_token) DO UPDATE SET user_id = EXCLUDED.user_id, platform = EXCLUDED.platform
		RETURNING id, user_id, push_token, platform, created_at`
	var d dom.Device
	err := r.db.QueryRow(ctx, query, userID, pushToken, platform).Scan(
		&d.ID, &d.UserID, &d.PushToken, &d.Platform, &d.CreatedAt,
	)
	return d, err
}

func (r *PGDeviceRepo) ListTokens(ctx context.Context, userID int64) ([]string, error) {
	rows, err := r.db.Query(ctx, `SELECT push_token FROM devices WHERE user_id = $1`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var tokens []string
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return nil, err
		}
		tokens = append(tokens, t)
	}
	return tokens, rows.Err()
}

func (r *PGDeviceRepo) Delete(ctx context.Context, userID int64, pushToken string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM devices WHERE user_id = $1 AND push_token = $2`, userID, pushToken)
	return err
}
