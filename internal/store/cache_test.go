package store_test

import (
	"context"
	"errors"
	"testing"

	"github.com/anshpatel080/kanban/internal/source"
	"github.com/anshpatel080/kanban/internal/store"
	"github.com/anshpatel080/kanban/tests/testutil"
)

func TestLoadPayloadEmptyCache(t *testing.T) {
	c := testutil.NewTestCache(t)

	_, _, err := c.LoadPayload(context.Background())
	if !errors.Is(err, store.ErrNoCachedPayload) {
		t.Errorf("err = %v, want ErrNoCachedPayload", err)
	}
}

func TestSaveAndLoadPayload(t *testing.T) {
	c := testutil.NewTestCache(t)
	ctx := context.Background()

	payload := &source.Payload{
		Statuses: []source.Status{
			{ID: "s1", Name: "Planned", Color: "#5B9BD5"},
		},
		Features: []source.Feature{
			{ID: "f1", Name: "Feature one", StatusID: "s1"},
		},
	}

	if err := c.SavePayload(ctx, payload); err != nil {
		t.Fatalf("SavePayload: %v", err)
	}

	got, fetchedAt, err := c.LoadPayload(ctx)
	if err != nil {
		t.Fatalf("LoadPayload: %v", err)
	}
	if fetchedAt.IsZero() {
		t.Error("fetchedAt is zero")
	}
	if len(got.Statuses) != 1 || got.Statuses[0].ID != "s1" {
		t.Errorf("statuses = %+v", got.Statuses)
	}
	if len(got.Features) != 1 || got.Features[0].ID != "f1" {
		t.Errorf("features = %+v", got.Features)
	}
}

func TestSavePayloadReplacesPrevious(t *testing.T) {
	c := testutil.NewTestCache(t)
	ctx := context.Background()

	first := &source.Payload{Statuses: []source.Status{{ID: "old"}}}
	second := &source.Payload{Statuses: []source.Status{{ID: "new"}}}

	if err := c.SavePayload(ctx, first); err != nil {
		t.Fatalf("SavePayload(first): %v", err)
	}
	if err := c.SavePayload(ctx, second); err != nil {
		t.Fatalf("SavePayload(second): %v", err)
	}

	got, _, err := c.LoadPayload(ctx)
	if err != nil {
		t.Fatalf("LoadPayload: %v", err)
	}
	if len(got.Statuses) != 1 || got.Statuses[0].ID != "new" {
		t.Errorf("statuses = %+v, want only the replacement", got.Statuses)
	}
}
