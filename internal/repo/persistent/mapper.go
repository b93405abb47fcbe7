package persistent

import (
	"stayhub-notifications/internal/entity"
	"stayhub-notifications/internal/model"
)

func ToNotificationEntity(m *model.NotificationModel) *entity.Notification {
	if m == nil {
		return nil
	}
	return &entity.Notification{
		ID:        m.ID,
		UserID:    m.UserID,
		NotifType: entity.NotificationType(m.NotifType),
		Message:   m.Message,
		CreatedAt: m.CreatedAt,
		Read:      m.Read,
	}
}

func ToNotificationModel(n *entity.Notification) *model.NotificationModel {
	return &model.NotificationModel{
		ID:        n.ID,
		UserID:    n.UserID,
		NotifType: string(n.NotifType),
		Message:   n.Message,
		CreatedAt: n.CreatedAt,
		Read:      n.Read,
	}
}

func ToNotificationEntities(models []model.NotificationModel) []entity.Notification {
	notifications := make([]entity.Notification, len(models))
	for i := range models {
		notifications[i] = *ToNotificationEntity(&models[i])
	}
	return notifications
}

func ToSettingEntity(m *model.SettingModel) *entity.Setting {
	if m == nil {
		return nil
	}
	return &entity.Setting{
		ID:        m.ID,
		UserID:    m.UserID,
		NotifType: entity.NotificationType(m.NotifType),
		Enabled:   m.Enabled,
	}
}

func ToSettingModel(s *entity.Setting) *model.SettingModel {
	return &model.SettingModel{
		ID:        s.ID,
		UserID:    s.UserID,
		NotifType: string(s.NotifType),
		Enabled:   s.Enabled,
	}
}

func ToSettingEntities(models []model.SettingModel) []entity.Setting {
	settings := make([]entity.Setting, len(models))
	for i := range models {
		settings[i] = *ToSettingEntity(&models[i])
	}
	return settings
}
