package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	apperrors "pomobar/internal/errors"
	"pomobar/internal/model"
	"pomobar/internal/service"
)

type SettingsHandler struct {
	engine   *service.Engine
	validate *validator.Validate
}

// updateSettingsRequest is a partial patch. Absent fields keep their value.
type updateSettingsRequest struct {
	PomodoroMins          *int  `json:"pomodoroMins" validate:"omitempty,min=0,max=1440"`
	ShortBreakMins        *int  `json:"shortBreakMins" validate:"omitempty,min=0,max=1440"`
	LongBreakMins         *int  `json:"longBreakMins" validate:"omitempty,min=0,max=1440"`
	PomodorosForLongBreak *int  `json:"pomodorosForLongBreak" validate:"omitempty,min=1,max=100"`
	SoundEnabled          *bool `json:"soundEnabled"`
	NotificationsEnabled  *bool `json:"notificationsEnabled"`
}

func NewSettingsHandler(engine *service.Engine) *SettingsHandler {
	validate := validator.New()
	validate.RegisterTagNameFunc(jsonFieldName)
	return &SettingsHandler{engine: engine, validate: validate}
}

func (h *SettingsHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"settings": h.engine.Settings()})
}

func (h *SettingsHandler) Update(c *gin.Context) {
	var req updateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeInvalidJSON(c)
		return
	}
	if apiErr := h.check(req); apiErr != nil {
		writeError(c, apiErr)
		return
	}

	settings := h.engine.UpdateSetting(c.Request.Context(), req.apply)
	c.JSON(http.StatusOK, gin.H{"settings": settings})
}

func (h *SettingsHandler) check(req updateSettingsRequest) *apperrors.APIError {
	err := h.validate.Struct(req)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return apperrors.Internal("")
	}
	fields := make(map[string]string, len(validationErrs))
	for _, fieldErr := range validationErrs {
		fields[fieldErr.Field()] = fieldErr.Tag() + "=" + fieldErr.Param()
	}
	return apperrors.Invalid("invalid_settings", "settings out of range", fields)
}

func (r updateSettingsRequest) apply(settings *model.Settings) {
	if r.PomodoroMins != nil {
		settings.PomodoroMins = *r.PomodoroMins
	}
	if r.ShortBreakMins != nil {
		settings.ShortBreakMins = *r.ShortBreakMins
	}
	if r.LongBreakMins != nil {
		settings.LongBreakMins = *r.LongBreakMins
	}
	if r.PomodorosForLongBreak != nil {
		settings.PomodorosForLongBreak = *r.PomodorosForLongBreak
	}
	if r.SoundEnabled != nil {
		settings.SoundEnabled = *r.SoundEnabled
	}
	if r.NotificationsEnabled != nil {
		settings.NotificationsEnabled = *r.NotificationsEnabled
	}
}
