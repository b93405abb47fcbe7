package usecase

import (
	"errors"
	"fmt"

	"stayhub-notifications/internal/entity"
	"stayhub-notifications/internal/repo/persistent"
	"stayhub-notifications/pkg/logger"

	"gorm.io/gorm"
)

// NotificationUseCase is the history/read-state surface. Every operation is
// scoped to the verified caller id; ids belonging to other users behave as if
// they do not exist.
type NotificationUseCase interface {
	GetUserNotifications(userID string) ([]entity.Notification, error)
	GetUnreadNotifications(userID string) ([]entity.Notification, error)
	GetNotificationByID(id, userID string) (*entity.Notification, error)
	MarkAsRead(id, userID string) error
	MarkAsReadBulk(ids []string, userID string) error
	MarkAllAsRead(userID string) error
	DeleteNotification(id, userID string) error
	DeleteNotifications(ids []string, userID string) error
}

type notificationUseCase struct {
	notificationRepo persistent.NotificationRepository
	logger           *logger.Logger
}

func NewNotificationUseCase(notificationRepo persistent.NotificationRepository, log *logger.Logger) NotificationUseCase {
	return &notificationUseCase{
		notificationRepo: notificationRepo,
		logger:           log,
	}
}

func (uc *notificationUseCase) GetUserNotifications(userID string) ([]entity.Notification, error) {
	notifications, err := uc.notificationRepo.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	return notifications, nil
}

func (uc *notificationUseCase) GetUnreadNotifications(userID string) ([]entity.Notification, error) {
	notifications, err := uc.notificationRepo.ListUnreadByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list unread notifications: %w", err)
	}
	return notifications, nil
}

func (uc *notificationUseCase) GetNotificationByID(id, userID string) (*entity.Notification, error) {
	notification, err := uc.notificationRepo.GetByIDAndUser(id, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get notification: %w", err)
	}
	return notification, nil
}

func (uc *notificationUseCase) MarkAsRead(id, userID string) error {
	affected, err := uc.notificationRepo.MarkRead([]string{id}, userID)
	if err != nil {
		return fmt.Errorf("failed to mark notification as read: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// MarkAsReadBulk acts on the caller-owned subset of ids. It only fails when
// that subset is empty, even if some of the requested ids exist for someone
// else.
func (uc *notificationUseCase) MarkAsReadBulk(ids []string, userID string) error {
	if len(ids) == 0 {
		return ErrNotFound
	}

	affected, err := uc.notificationRepo.MarkRead(ids, userID)
	if err != nil {
		return fmt.Errorf("failed to mark notifications as read: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (uc *notificationUseCase) MarkAllAsRead(userID string) error {
	if err := uc.notificationRepo.MarkAllRead(userID); err != nil {
		return fmt.Errorf("failed to mark all notifications as read: %w", err)
	}
	return nil
}

func (uc *notificationUseCase) DeleteNotification(id, userID string) error {
	affected, err := uc.notificationRepo.Delete([]string{id}, userID)
	if err != nil {
		return fmt.Errorf("failed to delete notification: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (uc *notificationUseCase) DeleteNotifications(ids []string, userID string) error {
	if len(ids) == 0 {
		return ErrNotFound
	}

	affected, err := uc.notificationRepo.Delete(ids, userID)
	if err != nil {
		return fmt.Errorf("failed to delete notifications: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
