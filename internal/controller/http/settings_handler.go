package http

import (
	"errors"
	"net/http"
	"strconv"

	"stayhub-notifications/internal/entity"
	"stayhub-notifications/internal/usecase"
	"stayhub-notifications/pkg/logger"

	"github.com/gin-gonic/gin"
)

type SettingsHandler struct {
	settingsUseCase usecase.SettingsUseCase
	logger          *logger.Logger
}

func NewSettingsHandler(settingsUseCase usecase.SettingsUseCase, log *logger.Logger) *SettingsHandler {
	return &SettingsHandler{
		settingsUseCase: settingsUseCase,
		logger:          log,
	}
}

func (h *SettingsHandler) GetSettings(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	settings, err := h.settingsUseCase.GetUserSettings(userID)
	if err != nil {
		h.logger.Error("Failed to get settings: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get settings"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"settings": settings})
}

func (h *SettingsHandler) UpdateSetting(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	notifType, err := entity.ParseNotificationType(c.Param("notifType"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown notification type"})
		return
	}

	enabled, err := strconv.ParseBool(c.Query("enabled"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "enabled must be true or false"})
		return
	}

	setting, err := h.settingsUseCase.UpdateSetting(userID, notifType, enabled)
	if errors.Is(err, usecase.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Notification setting not found"})
		return
	}
	if err != nil {
		h.logger.Error("Failed to update setting: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update setting"})
		return
	}

	c.JSON(http.StatusOK, setting)
}

// InitSettings provisions default settings for a user. Called by the users
// service on registration, not by end clients.
func (h *SettingsHandler) InitSettings(c *gin.Context) {
	userID := c.Query("userId")
	role := c.Query("role")
	if userID == "" || role == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userId and role required"})
		return
	}

	if err := h.settingsUseCase.InitUserSettings(userID, role); err != nil {
		h.logger.Error("Failed to init settings for user %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to init settings"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Settings initialized"})
}
