package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SettingModel struct {
	ID        string `gorm:"column:id;type:uuid;primaryKey"`
	UserID    string `gorm:"column:user_id;type:uuid;not null;uniqueIndex:idx_settings_user_type"`
	NotifType string `gorm:"column:notif_type;type:varchar(50);not null;uniqueIndex:idx_settings_user_type"`
	Enabled   bool   `gorm:"column:enabled;not null;default:true"`
}

func (SettingModel) TableName() string {
	return "notification_settings"
}

func (m *SettingModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	return nil
}
