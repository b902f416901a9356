package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/Muzzammil777/Garuda-Electricals-Hardwares/internal/core/ports/services"
	"github.com/Muzzammil777/Garuda-Electricals-Hardwares/internal/dto"
	"github.com/Muzzammil777/Garuda-Electricals-Hardwares/internal/middleware"
	"github.com/gin-gonic/gin"
)

// settingsHandler handles the site settings store.
type settingsHandler struct {
	settingsService portssvc.SettingsSvcFacade
}

func newSettingsHandler(ss portssvc.SettingsSvcFacade) *settingsHandler {
	return &settingsHandler{settingsService: ss}
}

// registerSettingsRoutes registers the public settings read and the admin
// write endpoints.
func registerSettingsRoutes(public, admin *gin.RouterGroup, settingsService portssvc.SettingsSvcFacade) {
	h := newSettingsHandler(settingsService)

	public.GET("/settings", h.getSettings)

	adminSettings := admin.Group("/settings")
	{
		adminSettings.PUT("", h.updateSettings)
		adminSettings.POST("/initialize", h.initializeDefaults)
	}
}

// getSettings godoc
// @Summary Get site settings
// @Description Returns the settings map, compiled defaults merged with stored overrides.
// @Tags settings
// @Produce json
// @Success 200 {object} dto.SettingsResponse
// @Failure 500 {object} ErrorResponse
// @Router /settings [get]
func (h *settingsHandler) getSettings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	settings, err := h.settingsService.GetSettings(c.Request.Context())
	if err != nil {
		logger.Error("Failed to load settings", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to load settings"})
		return
	}

	c.JSON(http.StatusOK, dto.SettingsResponse{Settings: settings})
}

// updateSettings godoc
// @Summary Update site settings
// @Description Upserts the given key/value pairs. Keys not present are left untouched.
// @Tags settings
// @Accept json
// @Produce json
// @Param settings body dto.UpdateSettingsRequest true "Settings to upsert"
// @Success 200 {object} dto.SettingsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /settings [put]
func (h *settingsHandler) updateSettings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	settings, err := h.settingsService.UpdateSettings(c.Request.Context(), req.Settings)
	if err != nil {
		logger.Error("Failed to update settings", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update settings"})
		return
	}

	logger.Info("Settings updated", slog.Int("keys", len(req.Settings)))
	c.JSON(http.StatusOK, dto.SettingsResponse{Settings: settings})
}

// initializeDefaults godoc
// @Summary Initialize default settings
// @Description Writes every compiled default that is not yet stored. Existing values are untouched.
// @Tags settings
// @Produce json
// @Success 200 {object} dto.SettingsResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /settings/initialize [post]
func (h *settingsHandler) initializeDefaults(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	settings, err := h.settingsService.InitializeDefaults(c.Request.Context())
	if err != nil {
		logger.Error("Failed to initialize settings", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to initialize settings"})
		return
	}

	c.JSON(http.StatusOK, dto.SettingsResponse{Settings: settings})
}
