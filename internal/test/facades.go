package test

import (
	"context"

	"github.com/knaeeim/Bangla-Drop-Server/internal/domain/model"
)

// UserFacadeStub provides controllable behaviour for the sign-in endpoint.
type UserFacadeStub struct {
	RecordFn func(context.Context, model.Document) (*model.SignInResult, error)
}

// RecordSignIn delegates to the override or reports a fresh insertion.
func (s UserFacadeStub) RecordSignIn(ctx context.Context, doc model.Document) (*model.SignInResult, error) {
	if s.RecordFn != nil {
		return s.RecordFn(ctx, doc)
	}
	return &model.SignInResult{Inserted: true, InsertedID: "stub-id"}, nil
}

// ParcelFacadeStub provides controllable behaviour for parcel endpoints.
type ParcelFacadeStub struct {
	ParcelsFn    func(context.Context, string) ([]model.Document, error)
	ParcelByIDFn func(context.Context, string) (model.Document, error)
	CreateFn     func(context.Context, model.Document) (string, error)
}

// Parcels delegates to the override or returns a single parcel.
func (s ParcelFacadeStub) Parcels(ctx context.Context, createdBy string) ([]model.Document, error) {
	if s.ParcelsFn != nil {
		return s.ParcelsFn(ctx, createdBy)
	}
	return []model.Document{{"title": "stub parcel"}}, nil
}

// ParcelByID delegates to the override or returns an empty document.
func (s ParcelFacadeStub) ParcelByID(ctx context.Context, id string) (model.Document, error) {
	if s.ParcelByIDFn != nil {
		return s.ParcelByIDFn(ctx, id)
	}
	return model.Document{"_id": id}, nil
}

// CreateParcel delegates to the override or returns a fixed identifier.
func (s ParcelFacadeStub) CreateParcel(ctx context.Context, doc model.Document) (string, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, doc)
	}
	return "stub-parcel-id", nil
}

// PaymentFacadeStub provides controllable behaviour for payment endpoints.
type PaymentFacadeStub struct {
	CreateIntentFn func(context.Context, int64) (string, error)
	PaymentsFn     func(context.Context, string) ([]model.Payment, error)
	RecordFn       func(context.Context, model.PaymentSubmission) (string, error)
}

// CreateIntent delegates to the override or returns a fixed secret.
func (s PaymentFacadeStub) CreateIntent(ctx context.Context, amountInCents int64) (string, error) {
	if s.CreateIntentFn != nil {
		return s.CreateIntentFn(ctx, amountInCents)
	}
	return "pi_stub_secret", nil
}

// Payments delegates to the override or returns an empty history.
func (s PaymentFacadeStub) Payments(ctx context.Context, email string) ([]model.Payment, error) {
	if s.PaymentsFn != nil {
		return s.PaymentsFn(ctx, email)
	}
	return []model.Payment{}, nil
}

// RecordPayment delegates to the override or reports success.
func (s PaymentFacadeStub) RecordPayment(ctx context.Context, sub model.PaymentSubmission) (string, error) {
	if s.RecordFn != nil {
		return s.RecordFn(ctx, sub)
	}
	return "stub-payment-id", nil
}

// RiderFacadeStub provides controllable behaviour for rider registration.
type RiderFacadeStub struct {
	RegisterFn func(context.Context, model.Document) (string, error)
}

// RegisterRider delegates to the override or returns a fixed identifier.
func (s RiderFacadeStub) RegisterRider(ctx context.Context, doc model.Document) (string, error) {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, doc)
	}
	return "stub-rider-id", nil
}

// DeliveryFacadeStub aggregates facade dependencies for HTTP layer tests.
type DeliveryFacadeStub struct {
	UserFacadeStub
	ParcelFacadeStub
	PaymentFacadeStub
	RiderFacadeStub
}
