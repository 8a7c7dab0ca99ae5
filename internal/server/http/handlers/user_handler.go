package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/knaeeim/Bangla-Drop-Server/internal/domain/errors"
	"github.com/knaeeim/Bangla-Drop-Server/internal/domain/model"
	"github.com/knaeeim/Bangla-Drop-Server/internal/server/http/dto"
)

// UserHandler processes sign-in observations.
type UserHandler struct {
	facade UserFacade
}

// NewUserHandler creates UserHandler instance.
func NewUserHandler(facade UserFacade) *UserHandler {
	return &UserHandler{facade: facade}
}

// RecordSignIn handles POST /users.
func (h *UserHandler) RecordSignIn(c *gin.Context) {
	var doc model.Document
	if err := c.ShouldBindJSON(&doc); err != nil {
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "invalid payload"})
		return
	}

	result, err := h.facade.RecordSignIn(c.Request.Context(), doc)
	if err != nil {
		if errors.Is(err, domainErrors.ErrInvalidEmail) {
			c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "email is required"})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: "Failed to record user"})
		return
	}

	if !result.Inserted {
		c.JSON(http.StatusOK, gin.H{"message": "User Already Exists", "inserted": false})
		return
	}
	c.JSON(http.StatusOK, dto.InsertResponse{Acknowledged: true, InsertedID: result.InsertedID})
}
