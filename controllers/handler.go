package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"aquadrop-backend/config"
	"aquadrop-backend/services"
	"aquadrop-backend/utils"
)

const recentServicesLimit = 8

// Handler serves the UI shell. Reminders is nil when reminders are disabled.
type Handler struct {
	Store             *services.Store
	Reminders         *services.ReminderService
	LowStockThreshold int
	Log               logrus.FieldLogger
}

func NewHandler(store *services.Store, reminders *services.ReminderService, lowStockThreshold int, log logrus.FieldLogger) *Handler {
	return &Handler{
		Store:             store,
		Reminders:         reminders,
		LowStockThreshold: lowStockThreshold,
		Log:               log.WithField("module", "controllers"),
	}
}

// respondStoreError maps store errors to status codes. action names what
// failed in the 500 message.
func (h *Handler) respondStoreError(c *gin.Context, err error, action string) {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		utils.RespondWithError(c, http.StatusBadRequest, verr.Error())
	case errors.Is(err, services.ErrNotFound):
		utils.RespondWithError(c, http.StatusNotFound, err.Error())
	default:
		config.LogError(h.Log, "controllers", action, c.FullPath(), c.Param("id"), err)
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to "+action)
	}
}
