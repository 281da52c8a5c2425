package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"aquadrop-backend/services"
	"aquadrop-backend/utils"
)

type AdjustPartInput struct {
	Delta *int `json:"delta" binding:"required"`
}

// CreatePart adds a spare part to inventory
func (h *Handler) CreatePart(c *gin.Context) {
	var input services.PartInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	part, err := h.Store.CreatePart(c.Request.Context(), input)
	if err != nil {
		h.respondStoreError(c, err, "create part")
		return
	}

	c.JSON(http.StatusCreated, part)
}

func (h *Handler) GetParts(c *gin.Context) {
	c.JSON(http.StatusOK, h.Store.Parts())
}

func (h *Handler) GetPart(c *gin.Context) {
	part, err := h.Store.Part(c.Param("id"))
	if err != nil {
		h.respondStoreError(c, err, "get part")
		return
	}
	c.JSON(http.StatusOK, part)
}

// UpdatePart replaces the given fields of a part
func (h *Handler) UpdatePart(c *gin.Context) {
	var input services.PartPatch
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	part, err := h.Store.UpdatePart(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		h.respondStoreError(c, err, "update part")
		return
	}

	c.JSON(http.StatusOK, part)
}

// AdjustPart corrects stock by a signed delta; the result never drops below zero
func (h *Handler) AdjustPart(c *gin.Context) {
	var input AdjustPartInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	part, err := h.Store.AdjustPart(c.Request.Context(), c.Param("id"), *input.Delta)
	if err != nil {
		h.respondStoreError(c, err, "adjust part")
		return
	}

	c.JSON(http.StatusOK, part)
}

func (h *Handler) DeletePart(c *gin.Context) {
	if err := h.Store.DeletePart(c.Request.Context(), c.Param("id")); err != nil {
		h.respondStoreError(c, err, "delete part")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Part deleted successfully"})
}
