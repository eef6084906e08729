package service

import (
	"context"
	"errors"
	"strings"

	dom "github.com/JorgegrDev/medic-action/internal/domain"
	"github.com/JorgegrDev/medic-action/internal/repo"
)

var ErrInvalidPushToken = errors.New("push token is required")

// DeviceService manages the push tokens reminders are delivered to.
type DeviceService struct {
	repo repo.DeviceRepo
}

func NewDeviceService(r repo.DeviceRepo) *DeviceService {
	return &DeviceService{repo: r}
}

// Register stores (or re-owns) a device push token for the user.
func (s *DeviceService) Register(ctx context.Context, userID int64, pushToken, platform string) (dom.Device, error) {
	pushToken = strings.TrimSpace(pushToken)
	if pushToken == "" {
		return dom.Device{}, ErrInvalidPushToken
	}
	return s.repo.Upsert(ctx, userID, pushToken, strings.TrimSpace(platform))
}

// Remove unregisters a device push token.
func (s *DeviceService) Remove(ctx context.Context, userID int64, pushToken string) error {
	pushToken = strings.TrimSpace(pushToken)
	if pushToken == "" {
		return ErrInvalidPushToken
	}
	return s.repo.Delete(ctx, userID, pushToken)
}
