package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"aquadrop-backend/models"
	"aquadrop-backend/services"
	"aquadrop-backend/utils"
)

type UpdateCustomerStatusInput struct {
	Status models.CustomerStatus `json:"status" binding:"required,oneof=active inactive"`
}

// CreateCustomer adds a customer to the service schedule
func (h *Handler) CreateCustomer(c *gin.Context) {
	var input services.CustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	customer, err := h.Store.CreateCustomer(c.Request.Context(), input)
	if err != nil {
		h.respondStoreError(c, err, "create customer")
		return
	}

	c.JSON(http.StatusCreated, customer)
}

// GetCustomers lists customers with their derived service status.
// ?status=All|Due|Upcoming|Good|Inactive
func (h *Handler) GetCustomers(c *gin.Context) {
	filter, err := services.ParseCustomerFilter(c.Query("status"))
	if err != nil {
		h.respondStoreError(c, err, "list customers")
		return
	}
	c.JSON(http.StatusOK, h.Store.CustomerViews(filter))
}

func (h *Handler) GetCustomer(c *gin.Context) {
	view, err := h.Store.CustomerView(c.Param("id"))
	if err != nil {
		h.respondStoreError(c, err, "get customer")
		return
	}
	c.JSON(http.StatusOK, view)
}

// UpdateCustomer patches an existing customer
func (h *Handler) UpdateCustomer(c *gin.Context) {
	var input services.CustomerPatch
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	customer, err := h.Store.UpdateCustomer(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		h.respondStoreError(c, err, "update customer")
		return
	}

	c.JSON(http.StatusOK, customer)
}

// UpdateCustomerStatus activates or deactivates a customer
func (h *Handler) UpdateCustomerStatus(c *gin.Context) {
	var input UpdateCustomerStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	customer, err := h.Store.SetCustomerStatus(c.Request.Context(), c.Param("id"), input.Status)
	if err != nil {
		h.respondStoreError(c, err, "update customer status")
		return
	}

	c.JSON(http.StatusOK, customer)
}

// DeleteCustomer removes a customer; the service history is kept
func (h *Handler) DeleteCustomer(c *gin.Context) {
	if err := h.Store.DeleteCustomer(c.Request.Context(), c.Param("id")); err != nil {
		h.respondStoreError(c, err, "delete customer")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Customer deleted successfully"})
}
