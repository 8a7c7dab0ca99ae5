package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/knaeeim/Bangla-Drop-Server/internal/domain/model"
	"github.com/knaeeim/Bangla-Drop-Server/internal/server/http/dto"
)

// RiderHandler accepts rider registration submissions.
type RiderHandler struct {
	facade RiderFacade
}

// NewRiderHandler constructs RiderHandler.
func NewRiderHandler(facade RiderFacade) *RiderHandler {
	return &RiderHandler{facade: facade}
}

// Register handles POST /riders.
func (h *RiderHandler) Register(c *gin.Context) {
	var doc model.Document
	if err := c.ShouldBindJSON(&doc); err != nil {
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "invalid payload"})
		return
	}

	id, err := h.facade.RegisterRider(c.Request.Context(), doc)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to register rider",
			"error":   err.Error(),
		})
		return
	}
	c.JSON(http.StatusCreated, dto.InsertResponse{Acknowledged: true, InsertedID: id})
}
