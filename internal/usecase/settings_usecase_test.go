package usecase

import (
	"testing"

	"stayhub-notifications/internal/entity"
	"stayhub-notifications/pkg/logger"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeSettingsRepo struct {
	rows []entity.Setting
}

func (f *fakeSettingsRepo) CreateAll(settings []entity.Setting) error {
	f.rows = append(f.rows, settings...)
	return nil
}

func (f *fakeSettingsRepo) ListByUser(userID string) ([]entity.Setting, error) {
	var out []entity.Setting
	for _, s := range f.rows {
		if s.UserID == userID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeSettingsRepo) GetByUserAndType(userID string, notifType entity.NotificationType) (*entity.Setting, error) {
	for i := range f.rows {
		if f.rows[i].UserID == userID && f.rows[i].NotifType == notifType {
			s := f.rows[i]
			return &s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeSettingsRepo) SetEnabled(userID string, notifType entity.NotificationType, enabled bool) (int64, error) {
	var affected int64
	for i := range f.rows {
		if f.rows[i].UserID == userID && f.rows[i].NotifType == notifType {
			f.rows[i].Enabled = enabled
			affected++
		}
	}
	return affected, nil
}

func (f *fakeSettingsRepo) HasAny(userID string) (bool, error) {
	for _, s := range f.rows {
		if s.UserID == userID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeSettingsRepo) IsEnabled(userID string, notifType entity.NotificationType) (bool, error) {
	for _, s := range f.rows {
		if s.UserID == userID && s.NotifType == notifType && s.Enabled {
			return true, nil
		}
	}
	return false, nil
}

func typesOf(settings []entity.Setting) []entity.NotificationType {
	out := make([]entity.NotificationType, len(settings))
	for i, s := range settings {
		out[i] = s.NotifType
	}
	return out
}

func TestInitUserSettings_Host(t *testing.T) {
	repo := &fakeSettingsRepo{}
	uc := NewSettingsUseCase(repo, logger.New())

	assert.NoError(t, uc.InitUserSettings("host-1", "host"))

	settings, _ := uc.GetUserSettings("host-1")
	types := typesOf(settings)
	assert.Len(t, settings, 4)
	assert.Contains(t, types, entity.ReservationCreated)
	assert.Contains(t, types, entity.ReservationCanceled)
	assert.Contains(t, types, entity.AccommodationRated)
	assert.Contains(t, types, entity.HostRated)
	assert.NotContains(t, types, entity.ReservationResponded)
	for _, s := range settings {
		assert.True(t, s.Enabled)
	}
}

func TestInitUserSettings_Guest(t *testing.T) {
	repo := &fakeSettingsRepo{}
	uc := NewSettingsUseCase(repo, logger.New())

	assert.NoError(t, uc.InitUserSettings("guest-1", "guest"))

	settings, _ := uc.GetUserSettings("guest-1")
	assert.Len(t, settings, 1)
	assert.Equal(t, entity.ReservationResponded, settings[0].NotifType)
	assert.True(t, settings[0].Enabled)
}

func TestInitUserSettings_UnknownRoleCreatesNothing(t *testing.T) {
	repo := &fakeSettingsRepo{}
	uc := NewSettingsUseCase(repo, logger.New())

	assert.NoError(t, uc.InitUserSettings("user-1", "admin"))
	assert.NoError(t, uc.InitUserSettings("user-2", ""))

	assert.Empty(t, repo.rows)
}

func TestInitUserSettings_Idempotent(t *testing.T) {
	repo := &fakeSettingsRepo{}
	uc := NewSettingsUseCase(repo, logger.New())

	assert.NoError(t, uc.InitUserSettings("host-1", "host"))
	// a second init, even with a different role, leaves the rows alone
	assert.NoError(t, uc.InitUserSettings("host-1", "guest"))

	settings, _ := uc.GetUserSettings("host-1")
	assert.Len(t, settings, 4)
}

func TestUpdateSetting_Toggle(t *testing.T) {
	repo := &fakeSettingsRepo{}
	uc := NewSettingsUseCase(repo, logger.New())
	assert.NoError(t, uc.InitUserSettings("host-1", "host"))

	setting, err := uc.UpdateSetting("host-1", entity.ReservationCreated, false)
	assert.NoError(t, err)
	assert.False(t, setting.Enabled)

	enabled, _ := repo.IsEnabled("host-1", entity.ReservationCreated)
	assert.False(t, enabled)

	setting, err = uc.UpdateSetting("host-1", entity.ReservationCreated, true)
	assert.NoError(t, err)
	assert.True(t, setting.Enabled)
}

func TestUpdateSetting_SameValueIsNoop(t *testing.T) {
	repo := &fakeSettingsRepo{}
	uc := NewSettingsUseCase(repo, logger.New())
	assert.NoError(t, uc.InitUserSettings("host-1", "host"))

	setting, err := uc.UpdateSetting("host-1", entity.ReservationCreated, true)
	assert.NoError(t, err)
	assert.True(t, setting.Enabled)
}

func TestUpdateSetting_MissingRowIsNotFound(t *testing.T) {
	repo := &fakeSettingsRepo{}
	uc := NewSettingsUseCase(repo, logger.New())
	assert.NoError(t, uc.InitUserSettings("guest-1", "guest"))

	// guests never hold a RESERVATION_CREATED row
	_, err := uc.UpdateSetting("guest-1", entity.ReservationCreated, true)
	assert.ErrorIs(t, err, ErrNotFound)
}
