package mongodb

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	domainErrors "github.com/knaeeim/Bangla-Drop-Server/internal/domain/errors"
	"github.com/knaeeim/Bangla-Drop-Server/internal/domain/model"
	"github.com/knaeeim/Bangla-Drop-Server/internal/domain/repository"
)

const (
	usersCollection    = "users"
	parcelsCollection  = "parcels"
	paymentsCollection = "payments"
	ridersCollection   = "riders"

	pingTimeout = 10 * time.Second
)

var _ repository.Factory = (*Storage)(nil)

// Storage acts as repository facade backed by MongoDB.
type Storage struct {
	client *mongo.Client
	db     *mongo.Database
	logger *slog.Logger
}

type userRepository struct {
	storage *Storage
}

type parcelRepository struct {
	storage *Storage
}

type paymentRepository struct {
	storage *Storage
}

type riderRepository struct {
	storage *Storage
}

// New connects to MongoDB with Stable API v1 and verifies the connection
// with a single startup ping.
func New(ctx context.Context, uri, database string, logger *slog.Logger) (*Storage, error) {
	opts := options.Client().
		ApplyURI(uri).
		SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1))

	client, err := mongo.Connect(opts)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping db: %w", err)
	}

	return &Storage{client: client, db: client.Database(database), logger: logger}, nil
}

// Close releases the store connection.
func (s *Storage) Close(ctx context.Context) error {
	if s.client == nil {
		return nil
	}
	return s.client.Disconnect(ctx)
}

// Factory methods for domain repositories.
func (s *Storage) Users() repository.UserRepository {
	return &userRepository{storage: s}
}

func (s *Storage) Parcels() repository.ParcelRepository {
	return &parcelRepository{storage: s}
}

func (s *Storage) Payments() repository.PaymentRepository {
	return &paymentRepository{storage: s}
}

func (s *Storage) Riders() repository.RiderRepository {
	return &riderRepository{storage: s}
}

func (s *Storage) collection(name string) *mongo.Collection {
	return s.db.Collection(name)
}

func insertedIDHex(result *mongo.InsertOneResult) string {
	if oid, ok := result.InsertedID.(bson.ObjectID); ok {
		return oid.Hex()
	}
	return fmt.Sprint(result.InsertedID)
}

// --- UserRepository implementation ---

func (r *userRepository) FindByEmail(ctx context.Context, email string) (model.Document, error) {
	var doc model.Document
	err := r.storage.collection(usersCollection).FindOne(ctx, bson.M{"email": email}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return doc, nil
}

func (r *userRepository) Insert(ctx context.Context, doc model.Document) (string, error) {
	result, err := r.storage.collection(usersCollection).InsertOne(ctx, doc)
	if err != nil {
		return "", err
	}
	return insertedIDHex(result), nil
}

func (r *userRepository) TouchLastLogin(ctx context.Context, email, lastLogin string) error {
	_, err := r.storage.collection(usersCollection).UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{"$set": bson.M{"last_login": lastLogin}},
	)
	return err
}

// --- ParcelRepository implementation ---

func (r *parcelRepository) List(ctx context.Context, createdBy string) ([]model.Document, error) {
	filter := bson.M{}
	if createdBy != "" {
		filter[model.ParcelFieldCreatedBy] = createdBy
	}

	opts := options.Find().SetSort(bson.D{{Key: model.ParcelFieldCreatedAt, Value: -1}})
	cursor, err := r.storage.collection(parcelsCollection).Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}

	parcels := make([]model.Document, 0)
	if err := cursor.All(ctx, &parcels); err != nil {
		return nil, err
	}
	return parcels, nil
}

func (r *parcelRepository) GetByID(ctx context.Context, id bson.ObjectID) (model.Document, error) {
	var doc model.Document
	err := r.storage.collection(parcelsCollection).FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return doc, nil
}

func (r *parcelRepository) Insert(ctx context.Context, doc model.Document) (string, error) {
	result, err := r.storage.collection(parcelsCollection).InsertOne(ctx, doc)
	if err != nil {
		return "", err
	}
	return insertedIDHex(result), nil
}

// MarkPaid only matches parcels not yet Paid so that concurrent payment
// submissions for the same parcel resolve to a single winner: the first
// update modifies the document, the second matches nothing.
func (r *parcelRepository) MarkPaid(ctx context.Context, id bson.ObjectID) (int64, error) {
	result, err := r.storage.collection(parcelsCollection).UpdateOne(ctx,
		bson.M{
			"_id":                          id,
			model.ParcelFieldPaymentStatus: bson.M{"$ne": model.ParcelStatusPaid},
		},
		bson.M{"$set": bson.M{model.ParcelFieldPaymentStatus: model.ParcelStatusPaid}},
	)
	if err != nil {
		return 0, err
	}
	return result.ModifiedCount, nil
}

// --- PaymentRepository implementation ---

func (r *paymentRepository) List(ctx context.Context, email string) ([]model.Payment, error) {
	filter := bson.M{}
	if email != "" {
		filter["email"] = email
	}

	cursor, err := r.storage.collection(paymentsCollection).Find(ctx, filter)
	if err != nil {
		return nil, err
	}

	payments := make([]model.Payment, 0)
	if err := cursor.All(ctx, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}

func (r *paymentRepository) Insert(ctx context.Context, payment model.Payment) (string, error) {
	result, err := r.storage.collection(paymentsCollection).InsertOne(ctx, payment)
	if err != nil {
		return "", err
	}
	return insertedIDHex(result), nil
}

// --- RiderRepository implementation ---

func (r *riderRepository) Insert(ctx context.Context, doc model.Document) (string, error) {
	result, err := r.storage.collection(ridersCollection).InsertOne(ctx, doc)
	if err != nil {
		return "", err
	}
	return insertedIDHex(result), nil
}
