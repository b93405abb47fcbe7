package persistent

import (
	"time"

	"stayhub-notifications/internal/entity"
	"stayhub-notifications/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NotificationRepository interface {
	Create(notification *entity.Notification) error
	ListByUser(userID string) ([]entity.Notification, error)
	ListUnreadByUser(userID string) ([]entity.Notification, error)
	GetByIDAndUser(id, userID string) (*entity.Notification, error)
	// MarkRead flips the read flag on the caller-owned subset of ids and
	// reports how many rows matched.
	MarkRead(ids []string, userID string) (int64, error)
	MarkAllRead(userID string) error
	// Delete removes the caller-owned subset of ids and reports how many
	// rows were removed.
	Delete(ids []string, userID string) (int64, error)
}

type notificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Create(notification *entity.Notification) error {
	notificationModel := ToNotificationModel(notification)
	if notificationModel.ID == "" {
		notificationModel.ID = uuid.New().String()
	}
	if notificationModel.CreatedAt.IsZero() {
		notificationModel.CreatedAt = time.Now().UTC()
	}

	if err := r.db.Create(notificationModel).Error; err != nil {
		return err
	}

	*notification = *ToNotificationEntity(notificationModel)
	return nil
}

func (r *notificationRepository) ListByUser(userID string) ([]entity.Notification, error) {
	var models []model.NotificationModel
	err := r.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return ToNotificationEntities(models), nil
}

func (r *notificationRepository) ListUnreadByUser(userID string) ([]entity.Notification, error) {
	var models []model.NotificationModel
	err := r.db.
		Where("user_id = ? AND read = false", userID).
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return ToNotificationEntities(models), nil
}

func (r *notificationRepository) GetByIDAndUser(id, userID string) (*entity.Notification, error) {
	var notificationModel model.NotificationModel
	err := r.db.
		Where("id = ? AND user_id = ?", id, userID).
		First(&notificationModel).Error
	if err != nil {
		return nil, err
	}
	return ToNotificationEntity(&notificationModel), nil
}

func (r *notificationRepository) MarkRead(ids []string, userID string) (int64, error) {
	result := r.db.Model(&model.NotificationModel{}).
		Where("id IN ? AND user_id = ?", ids, userID).
		Update("read", true)
	return result.RowsAffected, result.Error
}

func (r *notificationRepository) MarkAllRead(userID string) error {
	return r.db.Model(&model.NotificationModel{}).
		Where("user_id = ? AND read = false", userID).
		Update("read", true).Error
}

func (r *notificationRepository) Delete(ids []string, userID string) (int64, error) {
	result := r.db.
		Where("id IN ? AND user_id = ?", ids, userID).
		Delete(&model.NotificationModel{})
	return result.RowsAffected, result.Error
}
