package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"
)

func TestSentinelErrorsWrap(t *testing.T) {
	cases := []struct {
		name string
		err  error
	}{
		{"not found", ErrNotFound},
		{"already exists", ErrAlreadyExists},
		{"invalid identifier", ErrInvalidID},
		{"invalid email", ErrInvalidEmail},
		{"invalid amount", ErrInvalidAmount},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			wrapped := fmt.Errorf("handler: %w", tc.err)
			if !stdErrors.Is(wrapped, tc.err) {
				t.Fatalf("expected wrapped error to match %v", tc.err)
			}
		})
	}
}
