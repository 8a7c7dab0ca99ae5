package fireauth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

// ErrInvalidToken indicates the identity provider rejected the token.
var ErrInvalidToken = errors.New("invalid auth token")

// Identity is the decoded result of a successful token verification.
type Identity struct {
	UID   string
	Email string
}

// Verifier checks a bearer token against the identity provider.
type Verifier interface {
	Verify(ctx context.Context, idToken string) (Identity, error)
}

// FirebaseVerifier implements Verifier via the Firebase Admin SDK.
type FirebaseVerifier struct {
	tokens *auth.Client
	logger *slog.Logger
}

// New builds a FirebaseVerifier from a service-account credentials file.
// With an empty path the SDK falls back to application default credentials.
func New(ctx context.Context, credentialsFile string, logger *slog.Logger) (*FirebaseVerifier, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	app, err := firebase.NewApp(ctx, nil, opts...)
	if err != nil {
		return nil, fmt.Errorf("init firebase app: %w", err)
	}

	tokens, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("init firebase auth client: %w", err)
	}

	return &FirebaseVerifier{tokens: tokens, logger: logger}, nil
}

// Verify decodes the ID token or fails with ErrInvalidToken.
func (v *FirebaseVerifier) Verify(ctx context.Context, idToken string) (Identity, error) {
	token, err := v.tokens.VerifyIDToken(ctx, idToken)
	if err != nil {
		v.logger.Warn("token verification failed", slog.String("error", err.Error()))
		return Identity{}, ErrInvalidToken
	}
	return identityFromToken(token), nil
}

func identityFromToken(token *auth.Token) Identity {
	email, _ := token.Claims["email"].(string)
	return Identity{UID: token.UID, Email: email}
}
