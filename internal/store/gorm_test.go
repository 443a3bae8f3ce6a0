package store

import (
	"path/filepath"
	"testing"

	"github.com/Sowmya0405/Super-mall-web-application/internal/models"
)

func newTestGormBackend(t *testing.T) *GormBackend {
	t.Helper()
	backend, err := OpenGorm(filepath.Join(t.TempDir(), "catalog.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	return backend
}

func TestGormBackendEmptyDatabase(t *testing.T) {
	backend := newTestGormBackend(t)
	if _, found, err := backend.Load(); err != nil || found {
		t.Fatalf("fresh database should be (not found, nil), got found=%v err=%v", found, err)
	}
}

func TestGormBackendRoundTrip(t *testing.T) {
	backend := newTestGormBackend(t)

	doc := testDoc()
	doc.Customers = []models.Customer{
		{ID: 1, Name: "Asha", Email: "asha@mall.test", Phone: "123", Password: "hash", CreatedAt: "2026-01-01T00:00:00Z"},
	}
	if err := backend.Save(doc); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, found, err := backend.Load()
	if err != nil || !found {
		t.Fatalf("load after save: found=%v err=%v", found, err)
	}
	if len(loaded.Shops) != 2 || loaded.Shops[0] != doc.Shops[0] {
		t.Fatalf("shop round trip mismatch: %+v", loaded.Shops)
	}
	if len(loaded.Offers) != 3 || loaded.Offers[2] != doc.Offers[2] {
		t.Fatalf("offer round trip mismatch: %+v", loaded.Offers)
	}
	if len(loaded.Categories) != 2 || len(loaded.Floors) != 1 {
		t.Fatalf("reference tables incomplete: %d categories %d floors", len(loaded.Categories), len(loaded.Floors))
	}
	if len(loaded.Users) != 1 || loaded.Users[0] != doc.Users[0] {
		t.Fatalf("admin user round trip mismatch: %+v", loaded.Users)
	}
	if len(loaded.Customers) != 1 || loaded.Customers[0] != doc.Customers[0] {
		t.Fatalf("customer round trip mismatch: %+v", loaded.Customers)
	}
}

func TestGormBackendSaveOverwrites(t *testing.T) {
	backend := newTestGormBackend(t)
	if err := backend.Save(testDoc()); err != nil {
		t.Fatalf("first save: %v", err)
	}

	// Second save carries a shrunken document; stale rows must not linger.
	doc := testDoc()
	doc.Shops = doc.Shops[:1]
	doc.Offers = nil
	if err := backend.Save(doc); err != nil {
		t.Fatalf("second save: %v", err)
	}

	loaded, found, err := backend.Load()
	if err != nil || !found {
		t.Fatalf("load: found=%v err=%v", found, err)
	}
	if len(loaded.Shops) != 1 || loaded.Shops[0].Name != "Zara" {
		t.Fatalf("expected only the remaining shop, got %+v", loaded.Shops)
	}
	if len(loaded.Offers) != 0 {
		t.Fatalf("offers should have been wiped, got %+v", loaded.Offers)
	}
	if len(loaded.Categories) != 2 {
		t.Fatalf("categories should match the saved document, got %d", len(loaded.Categories))
	}
}
