package repository

import (
	"context"

	"github.com/knaeeim/Bangla-Drop-Server/internal/domain/model"
)

// PaymentRepository provides access to recorded payments.
type PaymentRepository interface {
	// List returns payments, optionally filtered by payer email.
	List(ctx context.Context, email string) ([]model.Payment, error)
	Insert(ctx context.Context, payment model.Payment) (string, error)
}
