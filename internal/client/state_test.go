package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Sowmya0405/Super-mall-web-application/internal/auth"
	"github.com/Sowmya0405/Super-mall-web-application/internal/catalog"
	"github.com/Sowmya0405/Super-mall-web-application/internal/models"
	"github.com/Sowmya0405/Super-mall-web-application/internal/store"
)

func apiStub(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	serve := func(path string, v any) {
		mux.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			if err := json.NewEncoder(w).Encode(v); err != nil {
				t.Errorf("encode %s: %v", path, err)
			}
		})
	}
	serve("/api/shops", []models.Shop{
		{ID: 1, Name: "Zara", Category: 1, Floor: 1, ShopNumber: "G-101", Hours: "10-9", Contact: "111"},
		{ID: 2, Name: "Apple Store", Category: 2, Floor: 2, ShopNumber: "F1-201"},
		{ID: 3, Name: "Nike", Category: 1, Floor: 1, ShopNumber: "G-115"},
		{ID: 4, Name: "Sephora", Category: 2, Floor: 1, ShopNumber: "G-120"},
		{ID: 5, Name: "IKEA", Category: 1, Floor: 2, ShopNumber: "F1-401"},
	})
	serve("/api/offers", []models.Offer{
		{ID: 1, ShopID: 1, Discount: 50, ValidFrom: "2020-01-01", ValidUntil: "2099-12-31"},
		{ID: 2, ShopID: 1, Discount: 20, ValidFrom: "2020-01-01", ValidUntil: "2020-01-31"},
		{ID: 3, ShopID: 2, Discount: 15, ValidFrom: "2020-01-01", ValidUntil: "2099-12-31"},
	})
	serve("/api/categories", []models.Category{{ID: 1, Name: "Fashion"}, {ID: 2, Name: "Electronics"}})
	serve("/api/floors", []models.Floor{{ID: 1, Number: 1, Name: "Ground Floor"}, {ID: 2, Number: 2, Name: "First Floor"}})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func loadedState(t *testing.T) *State {
	t.Helper()
	srv := apiStub(t)
	s := NewState(New(srv.URL), nil)
	s.Load(context.Background())
	if s.Offline() {
		t.Fatal("expected online state")
	}
	return s
}

func TestLoadFallsBackToSampleData(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // backend unreachable
	s := NewState(New(srv.URL), nil)
	s.Load(context.Background())
	if !s.Offline() {
		t.Fatal("expected offline fallback")
	}
	if len(s.Shops) != 10 || len(s.Categories) != 6 || len(s.Floors) != 5 || len(s.Offers) != 8 {
		t.Fatalf("sample dataset incomplete: %d shops %d categories %d floors %d offers",
			len(s.Shops), len(s.Categories), len(s.Floors), len(s.Offers))
	}
}

func TestLoadPartialFailureFallsBack(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/shops", func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewEncoder(w).Encode([]models.Shop{{ID: 1, Name: "Solo"}}); err != nil {
			t.Error(err)
		}
	})
	// everything else 404s
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	s := NewState(New(srv.URL), nil)
	s.Load(context.Background())
	if !s.Offline() {
		t.Fatal("one failed fetch should degrade the whole state")
	}
	if len(s.Shops) != 10 {
		t.Fatalf("expected full sample data, got %d shops", len(s.Shops))
	}
}

func TestFilteredShopsConjunction(t *testing.T) {
	s := loadedState(t)

	s.SetShopFilter(catalog.ShopFilter{Category: 1})
	if got := s.FilteredShops(); len(got) != 3 {
		t.Fatalf("category filter: expected 3 got %d", len(got))
	}
	s.SetShopFilter(catalog.ShopFilter{Category: 1, Floor: 1})
	if got := s.FilteredShops(); len(got) != 2 {
		t.Fatalf("category+floor: expected 2 got %d", len(got))
	}
	s.SetShopFilter(catalog.ShopFilter{Category: 1, Floor: 1, Search: "nike"})
	got := s.FilteredShops()
	if len(got) != 1 || got[0].ID != 3 {
		t.Fatalf("full conjunction: got %v", got)
	}
	// Clearing the filter restores the full view.
	s.SetShopFilter(catalog.ShopFilter{})
	if got := s.FilteredShops(); len(got) != 5 {
		t.Fatalf("cleared filter: expected 5 got %d", len(got))
	}
}

func TestFilteredOffers(t *testing.T) {
	s := loadedState(t)
	s.SetOfferShopFilter(1)
	if got := s.FilteredOffers(); len(got) != 2 {
		t.Fatalf("expected 2 offers for shop 1, got %d", len(got))
	}
	s.SetOfferShopFilter(0)
	if got := s.FilteredOffers(); len(got) != 3 {
		t.Fatalf("cleared filter: expected 3 got %d", len(got))
	}
}

func TestCompareSelectionCap(t *testing.T) {
	s := loadedState(t)
	for _, id := range []int{1, 2, 3, 4} {
		if !s.ToggleCompare(id) {
			t.Fatalf("selecting shop %d should succeed", id)
		}
	}
	if s.ToggleCompare(5) {
		t.Fatal("fifth selection must be refused")
	}
	if got := s.Selected(); len(got) != 4 {
		t.Fatalf("selection should stay at 4, got %d", len(got))
	}
	// Toggling an existing member removes it; re-toggling adds it back.
	if !s.ToggleCompare(2) {
		t.Fatal("deselect should succeed")
	}
	if got := s.Selected(); len(got) != 3 {
		t.Fatalf("expected 3 after deselect, got %d", len(got))
	}
	if !s.ToggleCompare(5) {
		t.Fatal("slot freed, selection should succeed")
	}
}

func TestComparisonNeedsTwoShops(t *testing.T) {
	s := loadedState(t)
	if _, ok := s.Comparison(); ok {
		t.Fatal("empty selection should not render")
	}
	s.ToggleCompare(1)
	if _, ok := s.Comparison(); ok {
		t.Fatal("single selection should not render")
	}
	s.ToggleCompare(2)
	table, ok := s.Comparison()
	if !ok || len(table.Columns) != 2 {
		t.Fatalf("expected 2 columns, ok=%v cols=%d", ok, len(table.Columns))
	}

	zara := table.Columns[0]
	if zara.Category != "Fashion" || zara.Floor != "Ground Floor" || zara.Location != "G-101" {
		t.Fatalf("column mismatch: %+v", zara)
	}
	// Only the active offer shows; the expired one is excluded.
	if zara.Offers != "50% off" {
		t.Fatalf("expected %q got %q", "50% off", zara.Offers)
	}
	apple := table.Columns[1]
	if apple.Hours != "N/A" || apple.Contact != "N/A" {
		t.Fatalf("missing fields should render N/A: %+v", apple)
	}
}

func TestLocalCRUDMirrorsServerRules(t *testing.T) {
	s := loadedState(t)

	created, err := s.CreateShop(models.Shop{Name: "Adidas", Category: 1, Floor: 1})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID != 6 {
		t.Fatalf("expected next id 6, got %d", created.ID)
	}

	if _, err := s.CreateShop(models.Shop{Name: "Ghost", Category: 42, Floor: 1}); err == nil {
		t.Fatal("unknown category must be refused")
	}

	hours := "24/7"
	updated, err := s.UpdateShop(1, models.ShopPatch{Hours: &hours})
	if err != nil || updated.Hours != "24/7" || updated.Name != "Zara" {
		t.Fatalf("merge failed: %+v err=%v", updated, err)
	}

	if err := s.DeleteCategory(1); !errors.Is(err, store.ErrReferenced) {
		t.Fatalf("referenced category delete: expected ErrReferenced got %v", err)
	}

	if err := s.DeleteShop(1); err != nil {
		t.Fatalf("delete shop: %v", err)
	}
	for _, o := range s.Offers {
		if o.ShopID == 1 {
			t.Fatalf("offer %d should have been cascaded", o.ID)
		}
	}

	f := s.CreateFloor(models.Floor{Number: 3, Name: "Second Floor"})
	if f.ID != 3 {
		t.Fatalf("expected floor id 3, got %d", f.ID)
	}
	if err := s.DeleteFloor(3); err != nil {
		t.Fatalf("unreferenced floor should delete: %v", err)
	}
}

func TestSessionRestoreVerifiesToken(t *testing.T) {
	tokens := auth.NewTokens("secret", time.Hour)
	s := NewState(New("http://localhost:0"), tokens)

	if s.RestoreSession("not.a.real.token") {
		t.Fatal("garbage token must not restore")
	}
	if s.IsAdmin() {
		t.Fatal("no session yet")
	}

	tok := tokens.Mint(1, "admin")
	if !s.RestoreSession(tok) {
		t.Fatal("valid token should restore")
	}
	if !s.IsAdmin() || s.SessionToken() != tok {
		t.Fatal("restored session should be admin")
	}

	expired := auth.NewTokens("secret", -time.Minute).Mint(1, "admin")
	s.ClearSession()
	if s.RestoreSession(expired) || s.IsAdmin() {
		t.Fatal("expired token must not restore")
	}
}
