package model

// Parcel payment status values. A parcel is created Unpaid and flips to
// Paid exactly once when its payment is recorded.
const (
	ParcelStatusUnpaid = "Unpaid"
	ParcelStatusPaid   = "Paid"
)

// Parcel field names shared between the store layer and handlers.
const (
	ParcelFieldCreatedBy     = "createdBy"
	ParcelFieldCreatedAt     = "createdAt"
	ParcelFieldPaymentStatus = "payment_status"
)
