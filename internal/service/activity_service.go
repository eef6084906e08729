package service

import (
	"context"

	dom "github.com/JorgegrDev/medic-action/internal/domain"
	"github.com/JorgegrDev/medic-action/internal/repo"
)

// ActivityService is the read side of the activity log. Entries are written
// by MedicationService as lifecycle side effects; the app never mutates them.
type ActivityService struct {
	repo repo.ActivityRepo
}

func NewActivityService(r repo.ActivityRepo) *ActivityService {
	return &ActivityService{repo: r}
}

// List returns the user's activities newest first, optionally filtered by type.
func (s *ActivityService) List(ctx context.Context, userID int64, typeFilter string) ([]dom.Activity, error) {
	return s.repo.List(ctx, userID, typeFilter)
}
