package usecase

import (
	"context"
	"errors"
	"time"

	domainErrors "github.com/knaeeim/Bangla-Drop-Server/internal/domain/errors"
	"github.com/knaeeim/Bangla-Drop-Server/internal/domain/model"
	"github.com/knaeeim/Bangla-Drop-Server/internal/domain/repository"
)

// UserUseCase encapsulates sign-in observation logic.
type UserUseCase struct {
	users repository.UserRepository
}

// NewUserUseCase constructs UserUseCase.
func NewUserUseCase(users repository.UserRepository) *UserUseCase {
	return &UserUseCase{users: users}
}

// RecordSignIn upserts a user keyed by email. A previously seen email only
// gets its last_login refreshed; every other field stays untouched. A new
// email inserts the submitted document as-is.
func (u *UserUseCase) RecordSignIn(ctx context.Context, doc model.Document) (*model.SignInResult, error) {
	email, _ := doc["email"].(string)
	if email == "" {
		return nil, domainErrors.ErrInvalidEmail
	}

	lastLogin, _ := doc["last_login"].(string)
	if lastLogin == "" {
		lastLogin = time.Now().UTC().Format(time.RFC3339)
	}

	_, err := u.users.FindByEmail(ctx, email)
	switch {
	case err == nil:
		if err := u.users.TouchLastLogin(ctx, email, lastLogin); err != nil {
			return nil, err
		}
		return &model.SignInResult{Inserted: false}, nil
	case errors.Is(err, domainErrors.ErrNotFound):
		doc["last_login"] = lastLogin
		id, err := u.users.Insert(ctx, doc)
		if err != nil {
			return nil, err
		}
		return &model.SignInResult{Inserted: true, InsertedID: id}, nil
	default:
		return nil, err
	}
}
