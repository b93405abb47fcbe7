package usecase

import (
	"errors"
	"fmt"

	"stayhub-notifications/internal/entity"
	"stayhub-notifications/internal/repo/persistent"
	"stayhub-notifications/pkg/logger"

	"gorm.io/gorm"
)

type SettingsUseCase interface {
	// InitUserSettings provisions the default rows for a newly recognized
	// user. It is a no-op when any row already exists for that user.
	InitUserSettings(userID, role string) error
	GetUserSettings(userID string) ([]entity.Setting, error)
	UpdateSetting(userID string, notifType entity.NotificationType, enabled bool) (*entity.Setting, error)
}

type settingsUseCase struct {
	settingsRepo persistent.SettingsRepository
	logger       *logger.Logger
}

func NewSettingsUseCase(settingsRepo persistent.SettingsRepository, log *logger.Logger) SettingsUseCase {
	return &settingsUseCase{
		settingsRepo: settingsRepo,
		logger:       log,
	}
}

func (uc *settingsUseCase) InitUserSettings(userID, role string) error {
	exists, err := uc.settingsRepo.HasAny(userID)
	if err != nil {
		return fmt.Errorf("failed to check existing settings: %w", err)
	}
	if exists {
		uc.logger.Info("Notification settings already exist for user %s", userID)
		return nil
	}

	var toInit []entity.NotificationType
	switch role {
	case "host":
		// Hosts receive everything except the guest-facing request response.
		for _, t := range entity.AllNotificationTypes() {
			if t != entity.ReservationResponded {
				toInit = append(toInit, t)
			}
		}
	case "guest":
		toInit = []entity.NotificationType{entity.ReservationResponded}
	default:
		uc.logger.Warn("No notification settings to init for user %s with role %q", userID, role)
		return nil
	}

	settings := make([]entity.Setting, len(toInit))
	for i, t := range toInit {
		settings[i] = entity.Setting{
			UserID:    userID,
			NotifType: t,
			Enabled:   true,
		}
	}

	if err := uc.settingsRepo.CreateAll(settings); err != nil {
		return fmt.Errorf("failed to init settings: %w", err)
	}

	uc.logger.Info("Initialized %d notification settings for user %s (role %s)", len(settings), userID, role)
	return nil
}

func (uc *settingsUseCase) GetUserSettings(userID string) ([]entity.Setting, error) {
	settings, err := uc.settingsRepo.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list settings: %w", err)
	}
	return settings, nil
}

func (uc *settingsUseCase) UpdateSetting(userID string, notifType entity.NotificationType, enabled bool) (*entity.Setting, error) {
	setting, err := uc.settingsRepo.GetByUserAndType(userID, notifType)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get setting: %w", err)
	}

	if setting.Enabled != enabled {
		if _, err := uc.settingsRepo.SetEnabled(userID, notifType, enabled); err != nil {
			return nil, fmt.Errorf("failed to update setting: %w", err)
		}
		setting.Enabled = enabled
	}

	return setting, nil
}
