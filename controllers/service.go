// controllers/service.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"aquadrop-backend/services"
	"aquadrop-backend/utils"
)

// RecordService logs a completed visit for the customer in the path and
// deducts the replaced parts from inventory
func (h *Handler) RecordService(c *gin.Context) {
	var input services.RecordServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	input.CustomerID = c.Param("id")

	record, err := h.Store.RecordService(c.Request.Context(), input)
	if err != nil {
		h.respondStoreError(c, err, "record service")
		return
	}

	c.JSON(http.StatusCreated, record)
}

// GetCustomerServices returns one customer's service history
func (h *Handler) GetCustomerServices(c *gin.Context) {
	c.JSON(http.StatusOK, h.Store.ServiceRecordsForCustomer(c.Param("id")))
}

// GetServices returns the whole service log, newest first
func (h *Handler) GetServices(c *gin.Context) {
	c.JSON(http.StatusOK, h.Store.ServiceRecords())
}
