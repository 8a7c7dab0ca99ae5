package repository

import (
	"context"

	"github.com/knaeeim/Bangla-Drop-Server/internal/domain/model"
)

// UserRepository describes persistence operations for users keyed by email.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (model.Document, error)
	Insert(ctx context.Context, doc model.Document) (string, error)
	TouchLastLogin(ctx context.Context, email, lastLogin string) error
}
