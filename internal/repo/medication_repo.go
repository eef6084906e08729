package repo

import (
	"context"
	"time"

	dom "github.com/JorgegrDev/medic-action/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type MedicationRepo interface {
	Create(ctx context.Context, m dom.Medication) (dom.Medication, error)
	GetByID(ctx context.Context, userID, id int64) (dom.Medication, error)
	List(ctx context.Context, userID int64, filter dom.MedicationFilter) ([]dom.Medication, error)
	Replace(ctx context.Context, userID, id int64, m dom.Medication) (dom.Medication, error)
	Delete(ctx context.Context, userID, id int64) error
}

type PGMedicationRepo struct {
	db *pgxpool.Pool
}

func NewPGMedicationRepo(db *pgxpool.Pool) *PGMedicationRepo {
	return &PGMedicationRepo{db: db}
}

const medicationCols = `id, user_id, name, dosage, instructions, start_date, end_date, reminder_time, created_at, updated_at`

func (r *PGMedicationRepo) Create(ctx context.Context, m dom.Medication) (dom.Medication, error) {
	query := `
		INSERT INTO medications (user_id, name, dosage, instructions, start_date, end_date, reminder_time)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + medicationCols
	var out dom.Medication
	err := r.db.QueryRow(ctx, query,
		m.UserID, m.Name, m.Dosage, m.Instructions, m.StartDate, m.EndDate, m.ReminderTime,
	).Scan(
		&out.ID, &out.UserID, &out.Name, &out.Dosage, &out.Instructions,
		&out.StartDate, &out.EndDate, &out.ReminderTime, &out.CreatedAt, &out.UpdatedAt,
	)
	return out, err
}

func (r *PGMedicationRepo) GetByID(ctx context.Context, userID, id int64) (dom.Medication, error) {
	query := `
		SELECT ` + medicationCols + `
		FROM medications WHERE id = $1 AND user_id = $2`
	var m dom.Medication
	err := r.db.QueryRow(ctx, query, id, userID).Scan(
		&m.ID, &m.UserID, &m.Name, &m.Dosage, &m.Instructions,
		&m.StartDate, &m.EndDate, &m.ReminderTime, &m.CreatedAt, &m.UpdatedAt,
	)
	return m, err
}

func (r *PGMedicationRepo) List(ctx context.Context, userID int64, filter dom.MedicationFilter) ([]dom.Medication, error) {
	query := `
		SELECT ` + medicationCols + `
		FROM medications WHERE user_id = $1`
	args := []any{userID}
	switch filter {
	case dom.FilterActive:
		query += ` AND end_date >= $2`
		args = append(args, time.Now().UTC())
	case dom.FilterExpired:
		query += ` AND end_date < $2`
		args = append(args, time.Now().UTC())
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.Medication
	for rows.Next() {
		var m dom.Medication
		if err := rows.Scan(&m.ID, &m.UserID, &m.Name, &m.Dosage, &m.Instructions,
			&m.StartDate, &m.EndDate, &m.ReminderTime, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, err
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

// Replace overwrites all mutable fields of an owned row (edits are always
// full-record replacements).
func (r *PGMedicationRepo) Replace(ctx context.Context, userID, id int64, m dom.Medication) (dom.Medication, error) {
	query := `
		UPDATE medications
		SET name = $3, dosage = $4, instructions = $5, start_date = $6, end_date = $7, reminder_time = $8, updated_at = NOW()
		WHERE id = $1 AND user_id = $2
		RETURNING ` + medicationCols
	var out dom.Medication
	err := r.db.QueryRow(ctx, query, id, userID,
		m.Name, m.Dosage, m.Instructions, m.StartDate, m.EndDate, m.ReminderTime,
	).Scan(
		&out.ID, &out.UserID, &out.Name, &out.Dosage, &out.Instructions,
		&out.StartDate, &out.EndDate, &out.ReminderTime, &out.CreatedAt, &out.UpdatedAt,
	)
	return out, err
}

func (r *PGMedicationRepo) Delete(ctx context.Context, userID, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM medications WHERE id = $1 AND user_id = $2`, id, userID)
	return err
}
