package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Payment is the record inserted after a parcel's status successfully
// transitions to Paid. The timestamp is stored twice: once native for
// sorting and once as an RFC3339 string for display.
type Payment struct {
	ID            bson.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	ParcelID      bson.ObjectID `bson:"parcelId" json:"parcelId"`
	Email         string        `bson:"email" json:"email"`
	Amount        float64       `bson:"amount" json:"amount"`
	PaymentMethod string        `bson:"paymentMethod" json:"paymentMethod"`
	TransactionID string        `bson:"transactionId" json:"transactionId"`
	PaidAt        time.Time     `bson:"paid_at" json:"paid_at"`
	PaidAtString  string        `bson:"paid_at_string" json:"paid_at_string"`
}

// PaymentSubmission is the client payload for recording a payment.
type PaymentSubmission struct {
	ParcelID      string
	TransactionID string
	Amount        float64
	Email         string
	PaymentMethod string
}
