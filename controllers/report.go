// controllers/report.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"aquadrop-backend/utils"
)

// ReportSummary describes a report the reports view will offer.
type ReportSummary struct {
	Key    string `json:"key"`
	Title  string `json:"title"`
	Status string `json:"status"`
}

var plannedReports = []ReportSummary{
	{Key: "service-summary", Title: "Service summary by month/customer", Status: "planned"},
	{Key: "parts-usage", Title: "Spare parts usage report", Status: "planned"},
	{Key: "low-stock", Title: "Low stock & consumption tracking", Status: "planned"},
	{Key: "pending-services", Title: "Pending / due services list", Status: "planned"},
}

// GetReports lists the reports view placeholders.
func (h *Handler) GetReports(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"reports": plannedReports})
}

// RunReminders sends the due-service reminders now instead of waiting for
// the schedule.
func (h *Handler) RunReminders(c *gin.Context) {
	if h.Reminders == nil {
		utils.RespondWithError(c, http.StatusServiceUnavailable, "Reminders are not enabled")
		return
	}
	c.JSON(http.StatusOK, h.Reminders.SendDueReminders(c.Request.Context()))
}
