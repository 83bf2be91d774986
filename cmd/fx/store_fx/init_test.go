package store_fx

import (
	"testing"

	"go.uber.org/fx/fxtest"
)

func TestDefaultBackendIsMemory(t *testing.T) {
	t.Setenv("STORE_BACKEND", "")

	lc := fxtest.NewLifecycle(t)

	// The memory backend must come up with no database reachable and must
	// not register a shutdown hook for a pool it never opened.
	if repo := ProvideAccountRepository(lc); repo == nil {
		t.Fatalf("expected a memory account repository")
	}
	if repo := ProvideBookingRepository(lc); repo == nil {
		t.Fatalf("expected a memory booking repository")
	}

	lc.RequireStart().RequireStop()
}

func TestExplicitMemoryBackend(t *testing.T) {
	t.Setenv("STORE_BACKEND", "memory")

	if got := storeBackend(); got != "memory" {
		t.Fatalf("unexpected backend: %s", got)
	}
}
