package test

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	domainErrors "github.com/knaeeim/Bangla-Drop-Server/internal/domain/errors"
	"github.com/knaeeim/Bangla-Drop-Server/internal/domain/model"
)

// TouchCall records a TouchLastLogin invocation.
type TouchCall struct {
	Email     string
	LastLogin string
}

// UserRepositoryStub stores user documents in-memory for tests.
type UserRepositoryStub struct {
	Docs       map[string]model.Document
	TouchCalls []TouchCall
	Err        error
}

// NewUserRepositoryStub constructs a stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{Docs: make(map[string]model.Document)}
}

// FindByEmail fetches the stored document or reports not found.
func (s *UserRepositoryStub) FindByEmail(ctx context.Context, email string) (model.Document, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if doc, ok := s.Docs[email]; ok {
		return doc, nil
	}
	return nil, domainErrors.ErrNotFound
}

// Insert stores the document keyed by its email field.
func (s *UserRepositoryStub) Insert(ctx context.Context, doc model.Document) (string, error) {
	if s.Err != nil {
		return "", s.Err
	}
	if s.Docs == nil {
		s.Docs = make(map[string]model.Document)
	}
	email, _ := doc["email"].(string)
	id := bson.NewObjectID()
	doc["_id"] = id
	s.Docs[email] = doc
	return id.Hex(), nil
}

// TouchLastLogin updates only the last_login field of an existing document.
func (s *UserRepositoryStub) TouchLastLogin(ctx context.Context, email, lastLogin string) error {
	if s.Err != nil {
		return s.Err
	}
	if doc, ok := s.Docs[email]; ok {
		doc["last_login"] = lastLogin
	}
	s.TouchCalls = append(s.TouchCalls, TouchCall{Email: email, LastLogin: lastLogin})
	return nil
}

// ParcelRepositoryStub keeps parcels in-memory with first-writer-wins
// MarkPaid semantics matching the store's update predicate.
type ParcelRepositoryStub struct {
	Parcels    map[bson.ObjectID]model.Document
	Order      []bson.ObjectID
	ListFn     func(context.Context, string) ([]model.Document, error)
	GetFn      func(context.Context, bson.ObjectID) (model.Document, error)
	InsertFn   func(context.Context, model.Document) (string, error)
	MarkPaidFn func(context.Context, bson.ObjectID) (int64, error)
	Err        error
}

// NewParcelRepositoryStub constructs a stub with initialized storage.
func NewParcelRepositoryStub() *ParcelRepositoryStub {
	return &ParcelRepositoryStub{Parcels: make(map[bson.ObjectID]model.Document)}
}

// List returns stored parcels in reverse insertion order, optionally
// filtered by creator.
func (s *ParcelRepositoryStub) List(ctx context.Context, createdBy string) ([]model.Document, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, createdBy)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	out := make([]model.Document, 0, len(s.Order))
	for i := len(s.Order) - 1; i >= 0; i-- {
		doc := s.Parcels[s.Order[i]]
		if createdBy != "" && doc[model.ParcelFieldCreatedBy] != createdBy {
			continue
		}
		out = append(out, doc)
	}
	return out, nil
}

// GetByID fetches a stored parcel or reports not found.
func (s *ParcelRepositoryStub) GetByID(ctx context.Context, id bson.ObjectID) (model.Document, error) {
	if s.GetFn != nil {
		return s.GetFn(ctx, id)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	if doc, ok := s.Parcels[id]; ok {
		return doc, nil
	}
	return nil, domainErrors.ErrNotFound
}

// Insert stores the parcel and assigns a generated identifier.
func (s *ParcelRepositoryStub) Insert(ctx context.Context, doc model.Document) (string, error) {
	if s.InsertFn != nil {
		return s.InsertFn(ctx, doc)
	}
	if s.Err != nil {
		return "", s.Err
	}
	if s.Parcels == nil {
		s.Parcels = make(map[bson.ObjectID]model.Document)
	}
	id := bson.NewObjectID()
	doc["_id"] = id
	s.Parcels[id] = doc
	s.Order = append(s.Order, id)
	return id.Hex(), nil
}

// MarkPaid flips the parcel to Paid unless it is absent or already paid.
func (s *ParcelRepositoryStub) MarkPaid(ctx context.Context, id bson.ObjectID) (int64, error) {
	if s.MarkPaidFn != nil {
		return s.MarkPaidFn(ctx, id)
	}
	if s.Err != nil {
		return 0, s.Err
	}
	doc, ok := s.Parcels[id]
	if !ok || doc[model.ParcelFieldPaymentStatus] == model.ParcelStatusPaid {
		return 0, nil
	}
	doc[model.ParcelFieldPaymentStatus] = model.ParcelStatusPaid
	return 1, nil
}

// PaymentRepositoryStub collects inserted payments.
type PaymentRepositoryStub struct {
	Payments []model.Payment
	ListFn   func(context.Context, string) ([]model.Payment, error)
	InsertFn func(context.Context, model.Payment) (string, error)
	Err      error
}

// List returns collected payments, optionally filtered by email.
func (s *PaymentRepositoryStub) List(ctx context.Context, email string) ([]model.Payment, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, email)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	out := make([]model.Payment, 0, len(s.Payments))
	for _, p := range s.Payments {
		if email != "" && p.Email != email {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

// Insert records the payment and assigns a generated identifier.
func (s *PaymentRepositoryStub) Insert(ctx context.Context, payment model.Payment) (string, error) {
	if s.InsertFn != nil {
		return s.InsertFn(ctx, payment)
	}
	if s.Err != nil {
		return "", s.Err
	}
	payment.ID = bson.NewObjectID()
	s.Payments = append(s.Payments, payment)
	return payment.ID.Hex(), nil
}

// RiderRepositoryStub collects rider registrations.
type RiderRepositoryStub struct {
	Docs     []model.Document
	InsertFn func(context.Context, model.Document) (string, error)
	Err      error
}

// Insert stores the rider document and returns a generated identifier.
func (s *RiderRepositoryStub) Insert(ctx context.Context, doc model.Document) (string, error) {
	if s.InsertFn != nil {
		return s.InsertFn(ctx, doc)
	}
	if s.Err != nil {
		return "", s.Err
	}
	s.Docs = append(s.Docs, doc)
	return bson.NewObjectID().Hex(), nil
}
