package usecase

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/knaeeim/Bangla-Drop-Server/internal/domain/errors"
	"github.com/knaeeim/Bangla-Drop-Server/internal/domain/model"
	testhelpers "github.com/knaeeim/Bangla-Drop-Server/internal/test"
)

func TestRecordSignInNewEmailInserts(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	uc := NewUserUseCase(repo)

	email := testhelpers.RandomEmail()
	result, err := uc.RecordSignIn(context.Background(), model.Document{
		"email": email,
		"name":  "Sender",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Inserted {
		t.Fatal("expected document to be inserted")
	}
	if result.InsertedID == "" {
		t.Fatal("expected inserted id")
	}

	doc, ok := repo.Docs[email]
	if !ok {
		t.Fatal("expected document stored by email")
	}
	if doc["name"] != "Sender" {
		t.Fatalf("expected extra fields preserved, got %v", doc["name"])
	}
	if doc["last_login"] == "" {
		t.Fatal("expected last_login to be stamped")
	}
}

func TestRecordSignInExistingEmailTouchesLastLoginOnly(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	email := testhelpers.RandomEmail()
	repo.Docs[email] = model.Document{"email": email, "name": "Original", "last_login": "old"}

	uc := NewUserUseCase(repo)
	result, err := uc.RecordSignIn(context.Background(), model.Document{
		"email":      email,
		"name":       "Impostor",
		"last_login": "2026-01-02T03:04:05Z",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Inserted {
		t.Fatal("expected no insertion for existing email")
	}

	if len(repo.Docs) != 1 {
		t.Fatalf("expected exactly one stored document, got %d", len(repo.Docs))
	}
	doc := repo.Docs[email]
	if doc["name"] != "Original" {
		t.Fatalf("expected other fields untouched, got %v", doc["name"])
	}
	if doc["last_login"] != "2026-01-02T03:04:05Z" {
		t.Fatalf("expected last_login refreshed, got %v", doc["last_login"])
	}
	if len(repo.TouchCalls) != 1 {
		t.Fatalf("expected one touch call, got %d", len(repo.TouchCalls))
	}
}

func TestRecordSignInFailures(t *testing.T) {
	storeErr := errors.New("store down")

	tests := []struct {
		name string
		doc  model.Document
		repo *testhelpers.UserRepositoryStub
		want error
	}{
		{name: "missing email", doc: model.Document{"name": "x"}, repo: testhelpers.NewUserRepositoryStub(), want: domainErrors.ErrInvalidEmail},
		{name: "empty email", doc: model.Document{"email": ""}, repo: testhelpers.NewUserRepositoryStub(), want: domainErrors.ErrInvalidEmail},
		{name: "store error", doc: model.Document{"email": "a@b.c"}, repo: &testhelpers.UserRepositoryStub{Err: storeErr}, want: storeErr},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewUserUseCase(tt.repo)
			if _, err := uc.RecordSignIn(context.Background(), tt.doc); !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}
