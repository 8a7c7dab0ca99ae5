package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/knaeeim/Bangla-Drop-Server/internal/domain/model"
)

// ParcelRepository describes persistence operations with parcels.
type ParcelRepository interface {
	// List returns parcels sorted by creation time, most recent first.
	// An empty createdBy returns every parcel.
	List(ctx context.Context, createdBy string) ([]model.Document, error)
	GetByID(ctx context.Context, id bson.ObjectID) (model.Document, error)
	Insert(ctx context.Context, doc model.Document) (string, error)
	// MarkPaid flips the parcel's payment status to Paid and reports how
	// many documents were actually modified. The update predicate must not
	// match parcels already marked Paid.
	MarkPaid(ctx context.Context, id bson.ObjectID) (int64, error)
}
