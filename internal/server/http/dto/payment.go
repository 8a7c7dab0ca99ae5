package dto

// PaymentIntentRequest describes the checkout staging payload.
type PaymentIntentRequest struct {
	AmountInCents int64 `json:"amountInCents" binding:"gte=0"`
}

// PaymentIntentResponse carries the gateway client secret.
type PaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

// RecordPaymentRequest describes the payment recording payload.
type RecordPaymentRequest struct {
	ParcelID      string  `json:"parcelId" binding:"required"`
	TransactionID string  `json:"transactionId" binding:"required"`
	Amount        float64 `json:"amount"`
	Email         string  `json:"email"`
	PaymentMethod string  `json:"paymentMethod"`
}
