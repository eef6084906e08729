package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/JorgegrDev/medic-action/internal/cache"
	dom "github.com/JorgegrDev/medic-action/internal/domain"
	"github.com/JorgegrDev/medic-action/internal/logging"
	"github.com/JorgegrDev/medic-action/internal/metrics"
	"github.com/JorgegrDev/medic-action/internal/notify"
	"github.com/JorgegrDev/medic-action/internal/repo"

	"github.com/jackc/pgx/v5"
	"golang.org/x/sync/singleflight"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrMissingFields     = errors.New("name and dosage are required")
	ErrOperationInFlight = errors.New("another operation on this medication is in progress")
)

const defaultScheduleWindow = 7 * 24 * time.Hour

// MedicationInput carries the submitted fields of a create or update. Nil
// date/time fields take the documented defaults on create; on update all
// fields replace the stored row.
type MedicationInput struct {
	Name         string
	Dosage       string
	Instructions string
	StartDate    *time.Time
	EndDate      *time.Time
	ReminderTime *time.Time
}

// MedicationService keeps a medication row, its recurring daily reminder and
// its activity trail consistent with a single user action. The three steps of
// each write are sequential and not transactional: a failed row write aborts
// the operation, while failed trailing steps are retried once and then logged
// without rolling back the row.
type MedicationService struct {
	repo       repo.MedicationRepo
	activities repo.ActivityRepo
	dispatcher notify.Dispatcher
	cache      *cache.MedicationCache
	sf         singleflight.Group

	mu       sync.Mutex
	inFlight map[int64]struct{}
}

// NewMedicationService creates a MedicationService. If c is nil, caching is disabled.
func NewMedicationService(r repo.MedicationRepo, a repo.ActivityRepo, d notify.Dispatcher, c *cache.MedicationCache) *MedicationService {
	return &MedicationService{
		repo:       r,
		activities: a,
		dispatcher: d,
		cache:      c,
		inFlight:   make(map[int64]struct{}),
	}
}

// Create validates and persists a new medication, schedules its daily
// reminder and appends an activity entry.
func (s *MedicationService) Create(ctx context.Context, userID int64, in MedicationInput) (dom.Medication, error) {
	m, err := buildMedication(userID, in)
	if err != nil {
		return dom.Medication{}, err
	}

	created, err := s.repo.Create(ctx, m)
	if err != nil {
		return dom.Medication{}, err
	}
	s.invalidateCache(ctx, userID)

	s.tryStep(ctx, "create", "schedule", created.ID, func() error {
		return s.dispatcher.Schedule(ctx, reminderFor(created))
	})
	s.tryStep(ctx, "create", "activity", created.ID, func() error {
		return s.logActivity(ctx, userID, "Medicamento agregado: "+created.Name, &created.ID)
	})

	return created, nil
}

// Update replaces all fields of an owned medication, then cancels and
// reschedules its reminder under the same key. A failed replace aborts the
// whole operation.
func (s *MedicationService) Update(ctx context.Context, userID, id int64, in MedicationInput) (dom.Medication, error) {
	if !s.acquire(id) {
		return dom.Medication{}, ErrOperationInFlight
	}
	defer s.release(id)

	existing, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Medication{}, ErrNotFound
		}
		return dom.Medication{}, err
	}

	m, err := buildMedication(userID, withUpdateDefaults(in, existing))
	if err != nil {
		return dom.Medication{}, err
	}

	updated, err := s.repo.Replace(ctx, userID, id, m)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Medication{}, ErrNotFound
		}
		return dom.Medication{}, err
	}
	s.invalidateCache(ctx, userID)

	// Cancel-before-reschedule keeps exactly one active reminder per key.
	s.tryStep(ctx, "update", "cancel", id, func() error {
		return s.dispatcher.Cancel(ctx, id)
	})
	s.tryStep(ctx, "update", "schedule", id, func() error {
		return s.dispatcher.Schedule(ctx, reminderFor(updated))
	})
	s.tryStep(ctx, "update", "activity", id, func() error {
		return s.logActivity(ctx, userID, "Medicamento actualizado: "+updated.Name, &updated.ID)
	})

	return updated, nil
}

// Delete cancels the reminder, removes the row and appends an activity entry.
// If the row delete fails after the cancel succeeded, the medication stays
// persisted without a reminder; that divergence is logged, not auto-healed.
func (s *MedicationService) Delete(ctx context.Context, userID, id int64) error {
	if !s.acquire(id) {
		return ErrOperationInFlight
	}
	defer s.release(id)

	existing, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}

	s.tryStep(ctx, "delete", "cancel", id, func() error {
		return s.dispatcher.Cancel(ctx, id)
	})

	if err := s.repo.Delete(ctx, userID, id); err != nil {
		logging.WithMedication(id).Error("medication row delete failed after reminder cancel", "err", err)
		return err
	}
	s.invalidateCache(ctx, userID)

	s.tryStep(ctx, "delete", "activity", id, func() error {
		return s.logActivity(ctx, userID, "Medicamento eliminado: "+existing.Name, nil)
	})

	return nil
}

// List is a pure read: the user's medications under the given filter, newest
// first. Results go through the redis cache with singleflight.
func (s *MedicationService) List(ctx context.Context, userID int64, filter dom.MedicationFilter) ([]dom.Medication, error) {
	if s.cache == nil {
		return s.repo.List(ctx, userID, filter)
	}
	key := "list:" + strconv.FormatInt(userID, 10) + ":" + string(filter)
	v, err, _ := s.sf.Do(key, func() (interface{}, error) {
		if list, err := s.cache.GetList(ctx, userID, filter); err == nil && list != nil {
			return list, nil
		}
		list, err := s.repo.List(ctx, userID, filter)
		if err != nil {
			return nil, err
		}
		_ = s.cache.SetList(ctx, userID, filter, list)
		return list, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]dom.Medication), nil
}

// GetByID returns a single owned medication.
func (s *MedicationService) GetByID(ctx context.Context, userID, id int64) (dom.Medication, error) {
	m, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Medication{}, ErrNotFound
		}
		return dom.Medication{}, err
	}
	return m, nil
}

// buildMedication applies create defaults and the non-empty field checks.
func buildMedication(userID int64, in MedicationInput) (dom.Medication, error) {
	name := strings.TrimSpace(in.Name)
	dosage := strings.TrimSpace(in.Dosage)
	if name == "" || dosage == "" {
		return dom.Medication{}, ErrMissingFields
	}

	now := time.Now().UTC()
	start := now
	if in.StartDate != nil {
		start = in.StartDate.UTC()
	}
	end := start.Add(defaultScheduleWindow)
	if in.EndDate != nil {
		end = in.EndDate.UTC()
	}
	reminder := now
	if in.ReminderTime != nil {
		reminder = in.ReminderTime.UTC()
	}

	return dom.Medication{
		UserID:       userID,
		Name:         name,
		Dosage:       dosage,
		Instructions: strings.TrimSpace(in.Instructions),
		StartDate:    start,
		EndDate:      end,
		ReminderTime: reminder,
	}, nil
}

// withUpdateDefaults fills absent date fields from the stored row so a full
// replace never silently resets them to create defaults.
func withUpdateDefaults(in MedicationInput, existing dom.Medication) MedicationInput {
	if in.StartDate == nil {
		v := existing.StartDate
		in.StartDate = &v
	}
	if in.EndDate == nil {
		v := existing.EndDate
		in.EndDate = &v
	}
	if in.ReminderTime == nil {
		v := existing.ReminderTime
		in.ReminderTime = &v
	}
	return in
}

// reminderFor builds the daily reminder schedule for a medication.
func reminderFor(m dom.Medication) notify.Schedule {
	return notify.Schedule{
		Key:    m.ID,
		UserID: m.UserID,
		Title:  "Recordatorio de medicamento",
		Body:   fmt.Sprintf("Es hora de tomar %s - %s", m.Name, m.Dosage),
		Hour:   m.ReminderTime.UTC().Hour(),
		Minute: m.ReminderTime.UTC().Minute(),
		Data:   map[string]any{"medicationId": m.ID},
	}
}

func (s *MedicationService) logActivity(ctx context.Context, userID int64, description string, relatedID *int64) error {
	_, err := s.activities.Insert(ctx, dom.Activity{
		Type:        dom.ActivityTypeMedication,
		Description: description,
		UserID:      userID,
		RelatedID:   relatedID,
	})
	return err
}

// tryStep runs a trailing lifecycle step: one retry on failure, then log and
// count. Steps are idempotent (schedule overwrites, cancel of a missing key
// is a no-op, a duplicate activity row is tolerated), so the retry is safe.
func (s *MedicationService) tryStep(ctx context.Context, op, step string, id int64, fn func() error) {
	err := fn()
	if err == nil {
		return
	}
	if err = fn(); err == nil {
		return
	}
	metrics.LifecycleStepFailures.WithLabelValues(op, step).Inc()
	logging.WithMedication(id).Error("lifecycle step failed", "op", op, "step", step, "err", err)
}

func (s *MedicationService) acquire(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.inFlight[id]; busy {
		return false
	}
	s.inFlight[id] = struct{}{}
	return true
}

func (s *MedicationService) release(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inFlight, id)
}

func (s *MedicationService) invalidateCache(ctx context.Context, userID int64) {
	if s.cache != nil {
		_ = s.cache.InvalidateAll(ctx, userID)
	}
}

