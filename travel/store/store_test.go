package store

import (
	"context"
	"errors"
	"testing"

	"github.com/tripmitra/aria-backend/travel"
)

func sampleStore(t *testing.T) *Store {
	t.Helper()
	return New(nil)
}

func TestListSampleModeReturnsFullDataset(t *testing.T) {
	t.Parallel()

	dests, err := sampleStore(t).List(context.Background(), travel.ListFilter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(dests) != 6 {
		t.Fatalf("expected 6 sample destinations, got %d", len(dests))
	}
}

func TestListSampleModeFiltersByCategory(t *testing.T) {
	t.Parallel()

	cat := travel.CategoryHeritage
	dests, err := sampleStore(t).List(context.Background(), travel.ListFilter{Category: &cat})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(dests) != 2 {
		t.Fatalf("expected 2 heritage destinations, got %d", len(dests))
	}
	for _, d := range dests {
		if d.Category != travel.CategoryHeritage {
			t.Fatalf("unexpected category %s for %s", d.Category, d.Name)
		}
	}
}

func TestListSampleModeHonorsLimit(t *testing.T) {
	t.Parallel()

	dests, err := sampleStore(t).List(context.Background(), travel.ListFilter{Limit: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(dests) != 2 {
		t.Fatalf("expected 2 destinations, got %d", len(dests))
	}
}

func TestGetByIDSampleMode(t *testing.T) {
	t.Parallel()

	s := sampleStore(t)

	d, err := s.GetByID(context.Background(), 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Name != "Golden Temple" {
		t.Fatalf("expected Golden Temple, got %s", d.Name)
	}

	if _, err := s.GetByID(context.Background(), 999); !errors.Is(err, travel.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSearchSampleModeMatchesLocation(t *testing.T) {
	t.Parallel()

	dests, err := sampleStore(t).Search(context.Background(), "kerala", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(dests) != 1 {
		t.Fatalf("expected 1 match, got %d", len(dests))
	}
	if dests[0].Name != "Kerala Backwaters" {
		t.Fatalf("unexpected match: %s", dests[0].Name)
	}
}

func TestWritesFailWithoutDatabase(t *testing.T) {
	t.Parallel()

	s := sampleStore(t)
	ctx := context.Background()

	if _, err := s.Create(ctx, travel.DestinationFields{}); !errors.Is(err, travel.ErrStoreUnavailable) {
		t.Fatalf("create: expected ErrStoreUnavailable, got %v", err)
	}
	if _, err := s.Update(ctx, 1, travel.DestinationFields{}); !errors.Is(err, travel.ErrStoreUnavailable) {
		t.Fatalf("update: expected ErrStoreUnavailable, got %v", err)
	}
	if _, err := s.Delete(ctx, 1); !errors.Is(err, travel.ErrStoreUnavailable) {
		t.Fatalf("delete: expected ErrStoreUnavailable, got %v", err)
	}
}

func TestWithSampleDataOverridesDataset(t *testing.T) {
	t.Parallel()

	custom := []travel.Destination{{ID: 42, Name: "Rann of Kutch", Category: travel.CategoryNature}}
	s := New(nil, WithSampleData(custom))

	d, err := s.GetByID(context.Background(), 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Name != "Rann of Kutch" {
		t.Fatalf("unexpected destination: %s", d.Name)
	}
}
