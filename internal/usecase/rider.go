package usecase

import (
	"context"

	"github.com/knaeeim/Bangla-Drop-Server/internal/domain/model"
	"github.com/knaeeim/Bangla-Drop-Server/internal/domain/repository"
)

// RiderUseCase stores rider registration submissions.
type RiderUseCase struct {
	riders repository.RiderRepository
}

// NewRiderUseCase constructs RiderUseCase.
func NewRiderUseCase(riders repository.RiderRepository) *RiderUseCase {
	return &RiderUseCase{riders: riders}
}

// Register inserts the submitted rider document as-is.
func (u *RiderUseCase) Register(ctx context.Context, doc model.Document) (string, error) {
	return u.riders.Insert(ctx, doc)
}
