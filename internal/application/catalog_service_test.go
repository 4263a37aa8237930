package application

import (
	"context"
	"errors"
	"testing"

	"github.com/cinelog/cinelog-api/internal/domain/entity"
)

func newCatalogFixture() (*CatalogService, *fakeMediaRepo) {
	media := newFakeMediaRepo()
	media.put(entity.KindMovie, entity.Media{ID: "m1", Title: "The Matrix", Rating: 8.7})
	media.put(entity.KindMovie, entity.Media{ID: "m2", Title: "The Matrix Reloaded", Rating: 7.2})
	media.put(entity.KindMovie, entity.Media{ID: "m3", Title: "Inception", Rating: 8.8})
	return NewCatalogService(media, nil, nil), media
}

func TestSearchConfirmsSubstring(t *testing.T) {
	svc, _ := newCatalogFixture()

	// The fake store returns every document, imitating pattern-match false
	// positives; only genuine substring matches may survive.
	results, err := svc.Search(context.Background(), entity.KindMovie, "mat")
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("Search returned %d results, want 2", len(results))
	}
	for _, m := range results {
		if m.ID != "m1" && m.ID != "m2" {
			t.Fatalf("unexpected result %q", m.Title)
		}
	}
}

func TestSearchCaseInsensitive(t *testing.T) {
	svc, _ := newCatalogFixture()

	results, err := svc.Search(context.Background(), entity.KindMovie, "MATRIX")
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("Search returned %d results, want 2", len(results))
	}
}

func TestSearchEmptyQuery(t *testing.T) {
	svc, media := newCatalogFixture()

	for _, q := range []string{"", "   "} {
		_, err := svc.Search(context.Background(), entity.KindMovie, q)
		if !errors.Is(err, ErrEmptyQuery) {
			t.Fatalf("Search(%q) error = %v, want ErrEmptyQuery", q, err)
		}
	}
	if media.searchCalls != 0 {
		t.Fatalf("store was queried %d times for blank titles, want 0", media.searchCalls)
	}
}

func TestSearchNoMatch(t *testing.T) {
	svc, _ := newCatalogFixture()

	_, err := svc.Search(context.Background(), entity.KindMovie, "zzz-no-match")
	if !errors.Is(err, ErrNoMatch) {
		t.Fatalf("error = %v, want ErrNoMatch", err)
	}
}

func TestGetNotFound(t *testing.T) {
	svc, _ := newCatalogFixture()

	_, err := svc.Get(context.Background(), entity.KindMovie, "missing")
	if !errors.Is(err, ErrMediaNotFound) {
		t.Fatalf("error = %v, want ErrMediaNotFound", err)
	}
}

func TestTopRatedLimit(t *testing.T) {
	svc, media := newCatalogFixture()

	if _, err := svc.TopRated(context.Background(), entity.KindMovie); err != nil {
		t.Fatalf("TopRated returned error: %v", err)
	}
	if media.lastTopLimit != topRatedLimit {
		t.Fatalf("store limit = %d, want %d", media.lastTopLimit, topRatedLimit)
	}
}

func TestPageDefaults(t *testing.T) {
	svc, media := newCatalogFixture()
	ctx := context.Background()

	if _, err := svc.Page(ctx, entity.KindMovie, 0, -3); err != nil {
		t.Fatalf("Page returned error: %v", err)
	}
	if media.lastPage != 1 || media.lastPerPage != 10 {
		t.Fatalf("page=%d perPage=%d, want defaults 1 and 10", media.lastPage, media.lastPerPage)
	}

	if _, err := svc.Page(ctx, entity.KindMovie, 3, 20); err != nil {
		t.Fatalf("Page returned error: %v", err)
	}
	if media.lastPage != 3 || media.lastPerPage != 20 {
		t.Fatalf("page=%d perPage=%d, want 3 and 20", media.lastPage, media.lastPerPage)
	}
}
