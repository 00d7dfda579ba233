package testutil

import (
	"testing"

	"github.com/anshpatel080/kanban/internal/store"
)

// NewTestCache creates an in-memory PayloadCache with all migrations
// applied. It automatically closes the cache when the test completes.
func NewTestCache(t *testing.T) *store.PayloadCache {
	t.Helper()

	c, err := store.NewPayloadCache(":memory:")
	if err != nil {
		t.Fatalf("creating test cache: %v", err)
	}

	t.Cleanup(func() {
		if err := c.Close(); err != nil {
			t.Errorf("closing test cache: %v", err)
		}
	})

	return c
}
