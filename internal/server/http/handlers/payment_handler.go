package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/knaeeim/Bangla-Drop-Server/internal/domain/errors"
	"github.com/knaeeim/Bangla-Drop-Server/internal/domain/model"
	"github.com/knaeeim/Bangla-Drop-Server/internal/server/http/dto"
)

// PaymentHandler manages checkout and payment-recording endpoints.
type PaymentHandler struct {
	facade PaymentFacade
}

// NewPaymentHandler constructs PaymentHandler.
func NewPaymentHandler(facade PaymentFacade) *PaymentHandler {
	return &PaymentHandler{facade: facade}
}

// CreateIntent handles POST /create-payment-intent.
func (h *PaymentHandler) CreateIntent(c *gin.Context) {
	var req dto.PaymentIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "invalid amount"})
		return
	}

	secret, err := h.facade.CreateIntent(c.Request.Context(), req.AmountInCents)
	if err != nil {
		if errors.Is(err, domainErrors.ErrInvalidAmount) {
			c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "invalid amount"})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: "Failed to create payment intent"})
		return
	}
	c.JSON(http.StatusOK, dto.PaymentIntentResponse{ClientSecret: secret})
}

// List handles GET /payments.
func (h *PaymentHandler) List(c *gin.Context) {
	payments, err := h.facade.Payments(c.Request.Context(), c.Query("email"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: "Failed to get payments"})
		return
	}
	c.JSON(http.StatusOK, payments)
}

// Record handles POST /payments.
func (h *PaymentHandler) Record(c *gin.Context) {
	var req dto.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "invalid payload"})
		return
	}

	insertedID, err := h.facade.RecordPayment(c.Request.Context(), model.PaymentSubmission{
		ParcelID:      req.ParcelID,
		TransactionID: req.TransactionID,
		Amount:        req.Amount,
		Email:         req.Email,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.MessageResponse{Message: "Parcel not found or already paid"})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: "Failed to record payment"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":    "Payment recorded successfully",
		"insertedId": insertedID,
	})
}
