package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/knaeeim/Bangla-Drop-Server/internal/domain/errors"
	"github.com/knaeeim/Bangla-Drop-Server/internal/domain/model"
	"github.com/knaeeim/Bangla-Drop-Server/internal/server/http/dto"
)

// ParcelHandler manages parcel-related endpoints.
type ParcelHandler struct {
	facade ParcelFacade
}

// NewParcelHandler constructs ParcelHandler.
func NewParcelHandler(facade ParcelFacade) *ParcelHandler {
	return &ParcelHandler{facade: facade}
}

// List handles GET /parcels.
func (h *ParcelHandler) List(c *gin.Context) {
	parcels, err := h.facade.Parcels(c.Request.Context(), c.Query("email"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: "Failed to get parcels"})
		return
	}
	c.JSON(http.StatusOK, parcels)
}

// Get handles GET /parcel/:id. An absent parcel renders JSON null.
func (h *ParcelHandler) Get(c *gin.Context) {
	doc, err := h.facade.ParcelByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domainErrors.ErrInvalidID) {
			c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: "Invalid parcel id"})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: "Failed to get parcel"})
		return
	}
	c.JSON(http.StatusOK, doc)
}

// Create handles POST /parcels.
func (h *ParcelHandler) Create(c *gin.Context) {
	var doc model.Document
	if err := c.ShouldBindJSON(&doc); err != nil {
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "invalid payload"})
		return
	}

	id, err := h.facade.CreateParcel(c.Request.Context(), doc)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: "Failed to create parcel"})
		return
	}
	c.JSON(http.StatusOK, dto.InsertResponse{Acknowledged: true, InsertedID: id})
}
