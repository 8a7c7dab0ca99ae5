package fireauth

import (
	"testing"

	"firebase.google.com/go/v4/auth"
)

func TestIdentityFromToken(t *testing.T) {
	token := &auth.Token{
		UID: "uid-1",
		Claims: map[string]interface{}{
			"email": "sender@example.com",
		},
	}

	identity := identityFromToken(token)
	if identity.UID != "uid-1" {
		t.Fatalf("expected uid-1, got %q", identity.UID)
	}
	if identity.Email != "sender@example.com" {
		t.Fatalf("unexpected email %q", identity.Email)
	}
}

func TestIdentityFromTokenWithoutEmailClaim(t *testing.T) {
	token := &auth.Token{UID: "uid-2", Claims: map[string]interface{}{}}
	identity := identityFromToken(token)
	if identity.Email != "" {
		t.Fatalf("expected empty email, got %q", identity.Email)
	}
}
