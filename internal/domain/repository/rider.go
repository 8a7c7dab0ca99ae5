package repository

import (
	"context"

	"github.com/knaeeim/Bangla-Drop-Server/internal/domain/model"
)

// RiderRepository stores rider registration submissions.
type RiderRepository interface {
	Insert(ctx context.Context, doc model.Document) (string, error)
}
