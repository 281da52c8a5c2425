package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"aquadrop-backend/models"
	"aquadrop-backend/services"
)

type DashboardOverview struct {
	Counts         services.Summary         `json:"counts"`
	RecentServices []services.RecentService `json:"recentServices"`
	LowStock       []models.InventoryPart   `json:"lowStock"`
	InventoryValue decimal.Decimal          `json:"inventoryValue"`
}

func (h *Handler) GetDashboardOverview(c *gin.Context) {
	c.JSON(http.StatusOK, DashboardOverview{
		Counts:         h.Store.Summary(),
		RecentServices: h.Store.RecentServices(recentServicesLimit),
		LowStock:       h.Store.LowStockParts(h.LowStockThreshold),
		InventoryValue: h.Store.InventoryValue(),
	})
}
