package usecase

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	domainErrors "github.com/knaeeim/Bangla-Drop-Server/internal/domain/errors"
	"github.com/knaeeim/Bangla-Drop-Server/internal/domain/model"
	"github.com/knaeeim/Bangla-Drop-Server/internal/domain/repository"
)

// PaymentUseCase encapsulates payment listing and recording.
type PaymentUseCase struct {
	parcels  repository.ParcelRepository
	payments repository.PaymentRepository
}

// NewPaymentUseCase constructs PaymentUseCase.
func NewPaymentUseCase(parcels repository.ParcelRepository, payments repository.PaymentRepository) *PaymentUseCase {
	return &PaymentUseCase{parcels: parcels, payments: payments}
}

// List returns payments, optionally filtered by payer email.
func (u *PaymentUseCase) List(ctx context.Context, email string) ([]model.Payment, error) {
	return u.payments.List(ctx, email)
}

// Record flips the referenced parcel to Paid and, only if that flip
// actually modified a document, inserts the payment record. A parcel that
// is absent or already paid fails with ErrNotFound and no record is
// written. The status update is the sole gate: no payment record may exist
// without a corresponding successful Paid transition.
func (u *PaymentUseCase) Record(ctx context.Context, sub model.PaymentSubmission) (string, error) {
	oid, err := bson.ObjectIDFromHex(sub.ParcelID)
	if err != nil {
		// an unparseable identifier can never match a parcel
		return "", domainErrors.ErrNotFound
	}

	modified, err := u.parcels.MarkPaid(ctx, oid)
	if err != nil {
		return "", err
	}
	if modified == 0 {
		return "", domainErrors.ErrNotFound
	}

	now := time.Now().UTC()
	payment := model.Payment{
		ParcelID:      oid,
		Email:         sub.Email,
		Amount:        sub.Amount,
		PaymentMethod: sub.PaymentMethod,
		TransactionID: sub.TransactionID,
		PaidAt:        now,
		PaidAtString:  now.Format(time.RFC3339),
	}
	return u.payments.Insert(ctx, payment)
}
