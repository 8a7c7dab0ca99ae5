package usecase

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"

	domainErrors "github.com/knaeeim/Bangla-Drop-Server/internal/domain/errors"
	"github.com/knaeeim/Bangla-Drop-Server/internal/domain/model"
	"github.com/knaeeim/Bangla-Drop-Server/internal/domain/repository"
)

// ParcelUseCase encapsulates parcel read and create operations.
type ParcelUseCase struct {
	parcels repository.ParcelRepository
}

// NewParcelUseCase constructs ParcelUseCase.
func NewParcelUseCase(parcels repository.ParcelRepository) *ParcelUseCase {
	return &ParcelUseCase{parcels: parcels}
}

// List returns parcels sorted by creation time descending, optionally
// filtered by creator email.
func (u *ParcelUseCase) List(ctx context.Context, createdBy string) ([]model.Document, error) {
	return u.parcels.List(ctx, createdBy)
}

// GetByID fetches a single parcel. An absent parcel yields a nil document
// rather than an error; a malformed identifier yields ErrInvalidID.
func (u *ParcelUseCase) GetByID(ctx context.Context, id string) (model.Document, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, domainErrors.ErrInvalidID
	}

	doc, err := u.parcels.GetByID(ctx, oid)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return doc, nil
}

// Create inserts the submitted parcel document as-is.
func (u *ParcelUseCase) Create(ctx context.Context, doc model.Document) (string, error) {
	return u.parcels.Insert(ctx, doc)
}
