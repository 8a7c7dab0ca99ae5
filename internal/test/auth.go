package test

import (
	"context"
	"sync/atomic"

	"github.com/knaeeim/Bangla-Drop-Server/internal/adapter/fireauth"
)

// VerifierStub implements the token verification contract for tests.
type VerifierStub struct {
	Identity fireauth.Identity
	Err      error
	VerifyFn func(context.Context, string) (fireauth.Identity, error)

	calls int32
}

// Verify either delegates to the override or returns the predefined result.
func (s *VerifierStub) Verify(ctx context.Context, idToken string) (fireauth.Identity, error) {
	atomic.AddInt32(&s.calls, 1)
	if s.VerifyFn != nil {
		return s.VerifyFn(ctx, idToken)
	}
	if s.Err != nil {
		return fireauth.Identity{}, s.Err
	}
	return s.Identity, nil
}

// Calls reports how many times Verify was invoked.
func (s *VerifierStub) Calls() int {
	return int(atomic.LoadInt32(&s.calls))
}

// IntentClientStub simulates the payment gateway.
type IntentClientStub struct {
	Secret   string
	Err      error
	IntentFn func(context.Context, int64, string) (string, error)

	Amounts    []int64
	Currencies []string
}

// CreateIntent records the request and returns the configured secret.
func (s *IntentClientStub) CreateIntent(ctx context.Context, amountInCents int64, currency string) (string, error) {
	if s.IntentFn != nil {
		return s.IntentFn(ctx, amountInCents, currency)
	}
	if s.Err != nil {
		return "", s.Err
	}
	s.Amounts = append(s.Amounts, amountInCents)
	s.Currencies = append(s.Currencies, currency)
	if s.Secret != "" {
		return s.Secret, nil
	}
	return "pi_stub_secret", nil
}
