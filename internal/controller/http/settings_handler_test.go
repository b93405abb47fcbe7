package http

import (
	"encoding/json"
	"net/http"
	"testing"

	"stayhub-notifications/internal/entity"
	"stayhub-notifications/internal/usecase"
	"stayhub-notifications/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeSettingsUseCase struct {
	settings []entity.Setting
	err      error

	initedUser string
	initedRole string
}

func (f *fakeSettingsUseCase) InitUserSettings(userID, role string) error {
	f.initedUser = userID
	f.initedRole = role
	return f.err
}

func (f *fakeSettingsUseCase) GetUserSettings(userID string) ([]entity.Setting, error) {
	return f.settings, f.err
}

func (f *fakeSettingsUseCase) UpdateSetting(userID string, notifType entity.NotificationType, enabled bool) (*entity.Setting, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &entity.Setting{UserID: userID, NotifType: notifType, Enabled: enabled}, nil
}

func settingsRouter(uc usecase.SettingsUseCase, userID string) *gin.Engine {
	h := NewSettingsHandler(uc, logger.New())
	r := gin.New()
	r.Use(asUser(userID))
	r.GET("/api/notification-settings", h.GetSettings)
	r.PATCH("/api/notification-settings/:notifType", h.UpdateSetting)
	r.POST("/api/notification-settings/init", h.InitSettings)
	return r
}

func TestGetSettings(t *testing.T) {
	uc := &fakeSettingsUseCase{settings: []entity.Setting{
		{UserID: "host-1", NotifType: entity.ReservationCreated, Enabled: true},
		{UserID: "host-1", NotifType: entity.HostRated, Enabled: false},
	}}
	r := settingsRouter(uc, "host-1")

	w := perform(r, http.MethodGet, "/api/notification-settings")

	assert.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Settings []entity.Setting `json:"settings"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.Settings, 2)
}

func TestGetSettings_Unauthorized(t *testing.T) {
	r := settingsRouter(&fakeSettingsUseCase{}, "")

	w := perform(r, http.MethodGet, "/api/notification-settings")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUpdateSetting(t *testing.T) {
	uc := &fakeSettingsUseCase{}
	r := settingsRouter(uc, "host-1")

	w := perform(r, http.MethodPatch, "/api/notification-settings/RESERVATION_CREATED?enabled=false")

	assert.Equal(t, http.StatusOK, w.Code)
	var setting entity.Setting
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &setting))
	assert.Equal(t, entity.ReservationCreated, setting.NotifType)
	assert.False(t, setting.Enabled)
}

func TestUpdateSetting_UnknownType(t *testing.T) {
	r := settingsRouter(&fakeSettingsUseCase{}, "host-1")

	w := perform(r, http.MethodPatch, "/api/notification-settings/NOT_A_TYPE?enabled=true")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateSetting_BadEnabledValue(t *testing.T) {
	r := settingsRouter(&fakeSettingsUseCase{}, "host-1")

	w := perform(r, http.MethodPatch, "/api/notification-settings/HOST_RATED?enabled=maybe")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateSetting_NotFound(t *testing.T) {
	uc := &fakeSettingsUseCase{err: usecase.ErrNotFound}
	r := settingsRouter(uc, "guest-1")

	w := perform(r, http.MethodPatch, "/api/notification-settings/RESERVATION_CREATED?enabled=true")

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestInitSettings(t *testing.T) {
	uc := &fakeSettingsUseCase{}
	r := settingsRouter(uc, "")

	w := perform(r, http.MethodPost, "/api/notification-settings/init?userId=host-1&role=host")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "host-1", uc.initedUser)
	assert.Equal(t, "host", uc.initedRole)
}

func TestInitSettings_MissingParams(t *testing.T) {
	r := settingsRouter(&fakeSettingsUseCase{}, "")

	w := perform(r, http.MethodPost, "/api/notification-settings/init?userId=host-1")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
