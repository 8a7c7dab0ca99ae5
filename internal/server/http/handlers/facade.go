package handlers

import (
	"context"

	"github.com/knaeeim/Bangla-Drop-Server/internal/domain/model"
)

// UserFacade describes sign-in observation required by handlers.
type UserFacade interface {
	RecordSignIn(ctx context.Context, doc model.Document) (*model.SignInResult, error)
}

// ParcelFacade encapsulates parcel operations exposed via HTTP.
type ParcelFacade interface {
	Parcels(ctx context.Context, createdBy string) ([]model.Document, error)
	ParcelByID(ctx context.Context, id string) (model.Document, error)
	CreateParcel(ctx context.Context, doc model.Document) (string, error)
}

// PaymentFacade provides payment related operations.
type PaymentFacade interface {
	CreateIntent(ctx context.Context, amountInCents int64) (string, error)
	Payments(ctx context.Context, email string) ([]model.Payment, error)
	RecordPayment(ctx context.Context, sub model.PaymentSubmission) (string, error)
}

// RiderFacade accepts rider registrations.
type RiderFacade interface {
	RegisterRider(ctx context.Context, doc model.Document) (string, error)
}

// DeliveryFacade aggregates the full set of operations used across handlers.
type DeliveryFacade interface {
	UserFacade
	ParcelFacade
	PaymentFacade
	RiderFacade
}
