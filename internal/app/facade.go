package app

import (
	"context"

	domainErrors "github.com/knaeeim/Bangla-Drop-Server/internal/domain/errors"
	"github.com/knaeeim/Bangla-Drop-Server/internal/domain/model"
	"github.com/knaeeim/Bangla-Drop-Server/internal/usecase"
)

const intentCurrency = "usd"

// IntentProvider stages payments with the gateway.
type IntentProvider interface {
	CreateIntent(ctx context.Context, amountInCents int64, currency string) (string, error)
}

// DeliveryFacade aggregates the full set of operations exposed over HTTP.
type DeliveryFacade struct {
	users    *usecase.UserUseCase
	parcels  *usecase.ParcelUseCase
	payments *usecase.PaymentUseCase
	riders   *usecase.RiderUseCase
	intents  IntentProvider
}

// NewDeliveryFacade constructs DeliveryFacade.
func NewDeliveryFacade(
	users *usecase.UserUseCase,
	parcels *usecase.ParcelUseCase,
	payments *usecase.PaymentUseCase,
	riders *usecase.RiderUseCase,
	intents IntentProvider,
) *DeliveryFacade {
	return &DeliveryFacade{users: users, parcels: parcels, payments: payments, riders: riders, intents: intents}
}

func (f *DeliveryFacade) RecordSignIn(ctx context.Context, doc model.Document) (*model.SignInResult, error) {
	return f.users.RecordSignIn(ctx, doc)
}

func (f *DeliveryFacade) Parcels(ctx context.Context, createdBy string) ([]model.Document, error) {
	return f.parcels.List(ctx, createdBy)
}

func (f *DeliveryFacade) ParcelByID(ctx context.Context, id string) (model.Document, error) {
	return f.parcels.GetByID(ctx, id)
}

func (f *DeliveryFacade) CreateParcel(ctx context.Context, doc model.Document) (string, error) {
	return f.parcels.Create(ctx, doc)
}

// CreateIntent stages a USD payment for the given amount in cents.
func (f *DeliveryFacade) CreateIntent(ctx context.Context, amountInCents int64) (string, error) {
	if amountInCents < 0 {
		return "", domainErrors.ErrInvalidAmount
	}
	return f.intents.CreateIntent(ctx, amountInCents, intentCurrency)
}

func (f *DeliveryFacade) Payments(ctx context.Context, email string) ([]model.Payment, error) {
	return f.payments.List(ctx, email)
}

func (f *DeliveryFacade) RecordPayment(ctx context.Context, sub model.PaymentSubmission) (string, error) {
	return f.payments.Record(ctx, sub)
}

func (f *DeliveryFacade) RegisterRider(ctx context.Context, doc model.Document) (string, error) {
	return f.riders.Register(ctx, doc)
}
