package persistent

import (
	"stayhub-notifications/internal/entity"
	"stayhub-notifications/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SettingsRepository interface {
	CreateAll(settings []entity.Setting) error
	ListByUser(userID string) ([]entity.Setting, error)
	GetByUserAndType(userID string, notifType entity.NotificationType) (*entity.Setting, error)
	SetEnabled(userID string, notifType entity.NotificationType, enabled bool) (int64, error)
	HasAny(userID string) (bool, error)
	// IsEnabled is the delivery gate: true only when an enabled=true row
	// exists for the pair.
	IsEnabled(userID string, notifType entity.NotificationType) (bool, error)
}

type settingsRepository struct {
	db *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) SettingsRepository {
	return &settingsRepository{db: db}
}

func (r *settingsRepository) CreateAll(settings []entity.Setting) error {
	if len(settings) == 0 {
		return nil
	}

	models := make([]model.SettingModel, len(settings))
	for i := range settings {
		m := ToSettingModel(&settings[i])
		if m.ID == "" {
			m.ID = uuid.New().String()
		}
		models[i] = *m
	}

	return r.db.Create(&models).Error
}

func (r *settingsRepository) ListByUser(userID string) ([]entity.Setting, error) {
	var models []model.SettingModel
	if err := r.db.Where("user_id = ?", userID).Find(&models).Error; err != nil {
		return nil, err
	}
	return ToSettingEntities(models), nil
}

func (r *settingsRepository) GetByUserAndType(userID string, notifType entity.NotificationType) (*entity.Setting, error) {
	var settingModel model.SettingModel
	err := r.db.
		Where("user_id = ? AND notif_type = ?", userID, string(notifType)).
		First(&settingModel).Error
	if err != nil {
		return nil, err
	}
	return ToSettingEntity(&settingModel), nil
}

func (r *settingsRepository) SetEnabled(userID string, notifType entity.NotificationType, enabled bool) (int64, error) {
	result := r.db.Model(&model.SettingModel{}).
		Where("user_id = ? AND notif_type = ?", userID, string(notifType)).
		Update("enabled", enabled)
	return result.RowsAffected, result.Error
}

func (r *settingsRepository) HasAny(userID string) (bool, error) {
	var count int64
	err := r.db.Model(&model.SettingModel{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count > 0, err
}

func (r *settingsRepository) IsEnabled(userID string, notifType entity.NotificationType) (bool, error) {
	var count int64
	err := r.db.Model(&model.SettingModel{}).
		Where("user_id = ? AND notif_type = ? AND enabled = true", userID, string(notifType)).
		Count(&count).Error
	return count > 0, err
}
