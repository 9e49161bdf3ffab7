package common

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestCustomErrorWrapping(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection refused")
	err := fmt.Errorf("load: %w", ErrCatalogUnavailable.Wrap(cause))

	if !errors.Is(err, ErrCatalogUnavailable) {
		t.Fatal("wrapped error should match its catalogue entry")
	}
	if !errors.Is(err, cause) {
		t.Fatal("wrapped error should expose the cause")
	}
	if errors.Is(err, ErrRecipeNotFound) {
		t.Fatal("different codes must not match")
	}

	ce := AsCustomError(err)
	if ce.Status != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", ce.Status)
	}
	if resp := ce.ToResponse(false); resp.Details != "" {
		t.Fatalf("details must be hidden outside debug, got %q", resp.Details)
	}
	if resp := ce.ToResponse(true); resp.Details != "connection refused" {
		t.Fatalf("unexpected details %q", resp.Details)
	}
}

func TestRecipeNotFoundSharesNotFoundCode(t *testing.T) {
	t.Parallel()

	if !errors.Is(ErrRecipeNotFound, ErrNotFound) {
		t.Fatal("recipe lookups should match the generic not-found error")
	}
	resp := ErrRecipeNotFound.ToResponse(false)
	if resp.Code != "NOT_FOUND" || ErrRecipeNotFound.Status != http.StatusNotFound {
		t.Fatalf("unexpected response %+v", resp)
	}
}

func TestAsCustomErrorFallsBackToInternal(t *testing.T) {
	t.Parallel()

	ce := AsCustomError(errors.New("boom"))
	if ce.Code != ErrCodeInternalError || ce.Status != http.StatusInternalServerError {
		t.Fatalf("unexpected fallback %+v", ce)
	}
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"debug":   "debug",
		" WARN ":  "warn",
		"error":   "error",
		"":        "info",
		"verbose": "info",
	}
	for in, want := range tests {
		if got := ParseLevel(in).String(); got != want {
			t.Errorf("ParseLevel(%q) = %s, want %s", in, got, want)
		}
	}
}
