package catalog

import (
	"testing"
	"time"

	"github.com/Sowmya0405/Super-mall-web-application/internal/models"
)

func TestTodayIsUTCDate(t *testing.T) {
	// Bracket the call so a midnight rollover mid-test cannot flake.
	before := time.Now().UTC().Format("2006-01-02")
	got := Today()
	after := time.Now().UTC().Format("2006-01-02")
	if got != before && got != after {
		t.Fatalf("Today() = %q, want the UTC date (%q or %q)", got, before, after)
	}
}

func TestNextID(t *testing.T) {
	if got := NextID(nil); got != 1 {
		t.Fatalf("empty collection: expected 1 got %d", got)
	}
	if got := NextID([]int{1, 3, 5}); got != 6 {
		t.Fatalf("expected 6 got %d", got)
	}
	// Deleting the max id frees it for reassignment: 6 comes back, not 7.
	ids := []int{1, 3, 5, 6}
	ids = ids[:3]
	if got := NextID(ids); got != 6 {
		t.Fatalf("after deleting max: expected 6 got %d", got)
	}
}

func TestOfferActiveOnInclusiveBounds(t *testing.T) {
	offer := models.Offer{ValidFrom: "2026-01-01", ValidUntil: "2026-12-31"}
	cases := []struct {
		date string
		want bool
	}{
		{"2025-12-31", false},
		{"2026-01-01", true}, // boundary: from date counts
		{"2026-06-15", true},
		{"2026-12-31", true}, // boundary: until date counts
		{"2027-01-01", false},
	}
	for _, c := range cases {
		if got := OfferActiveOn(offer, c.date); got != c.want {
			t.Errorf("OfferActiveOn(%s) = %v, want %v", c.date, got, c.want)
		}
	}
}

func testShops() []models.Shop {
	return []models.Shop{
		{ID: 1, Name: "Zara", Category: 1, Floor: 1, Description: "fashion retailer"},
		{ID: 2, Name: "Apple Store", Category: 2, Floor: 2, Description: "official retailer"},
		{ID: 3, Name: "Nike", Category: 6, Floor: 1, Description: "sportswear"},
	}
}

func TestFilterShopsConjunction(t *testing.T) {
	shops := testShops()

	got := FilterShops(shops, ShopFilter{})
	if len(got) != 3 {
		t.Fatalf("no filter: expected 3 got %d", len(got))
	}

	got = FilterShops(shops, ShopFilter{Floor: 1})
	if len(got) != 2 {
		t.Fatalf("floor filter: expected 2 got %d", len(got))
	}

	// Category AND floor must both match.
	got = FilterShops(shops, ShopFilter{Category: 2, Floor: 1})
	if len(got) != 0 {
		t.Fatalf("conjunction: expected 0 got %d", len(got))
	}

	// Search hits name or description, case-insensitively.
	got = FilterShops(shops, ShopFilter{Search: "RETAILER"})
	if len(got) != 2 {
		t.Fatalf("search: expected 2 got %d", len(got))
	}
	got = FilterShops(shops, ShopFilter{Floor: 1, Search: "retailer"})
	if len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("search+floor: expected shop 1, got %v", got)
	}
}

func TestFilterOffers(t *testing.T) {
	offers := []models.Offer{
		{ID: 1, ShopID: 1, ValidFrom: "2026-01-01", ValidUntil: "2026-01-31"},
		{ID: 2, ShopID: 1, ValidFrom: "2026-02-01", ValidUntil: "2026-02-28"},
		{ID: 3, ShopID: 2, ValidFrom: "2026-01-01", ValidUntil: "2026-12-31"},
	}
	got := FilterOffers(offers, OfferFilter{ShopID: 1})
	if len(got) != 2 {
		t.Fatalf("shop filter: expected 2 got %d", len(got))
	}
	got = FilterOffers(offers, OfferFilter{ActiveOn: "2026-02-15"})
	if len(got) != 2 {
		t.Fatalf("active filter: expected 2 got %d", len(got))
	}
	got = FilterOffers(offers, OfferFilter{ShopID: 1, ActiveOn: "2026-02-15"})
	if len(got) != 1 || got[0].ID != 2 {
		t.Fatalf("combined filter: expected offer 2, got %v", got)
	}
}

func TestMergeOfferPartial(t *testing.T) {
	offer := models.Offer{ID: 3, Title: "Tech Bonanza", ShopID: 3, Discount: 15, Description: "Apple discounts", ValidFrom: "2026-01-25", ValidUntil: "2026-02-10"}
	discount := 60
	merged := offer
	MergeOffer(&merged, models.OfferPatch{Discount: &discount})
	if merged.Discount != 60 {
		t.Fatalf("discount not applied: %d", merged.Discount)
	}
	merged.Discount = offer.Discount
	if merged != offer {
		t.Fatalf("other fields changed: %+v vs %+v", merged, offer)
	}
}

func TestMergeShopPartial(t *testing.T) {
	shop := models.Shop{ID: 1, Name: "Zara", Category: 1, Floor: 1, ShopNumber: "G-101", Hours: "10:00 AM - 9:00 PM"}
	hours := "9:00 AM - 8:00 PM"
	merged := shop
	MergeShop(&merged, models.ShopPatch{Hours: &hours})
	if merged.Hours != hours {
		t.Fatalf("hours not applied: %q", merged.Hours)
	}
	merged.Hours = shop.Hours
	if merged != shop {
		t.Fatalf("other fields changed: %+v vs %+v", merged, shop)
	}
}

func TestReferentialHelpers(t *testing.T) {
	shops := testShops()
	if !CategoryInUse(shops, 1) {
		t.Fatal("category 1 should be in use")
	}
	if CategoryInUse(shops, 99) {
		t.Fatal("category 99 should not be in use")
	}
	if !FloorInUse(shops, 2) {
		t.Fatal("floor 2 should be in use")
	}

	offers := []models.Offer{{ID: 1, ShopID: 1}, {ID: 2, ShopID: 2}, {ID: 3, ShopID: 1}}
	rest := WithoutShopOffers(offers, 1)
	if len(rest) != 1 || rest[0].ID != 2 {
		t.Fatalf("cascade helper: got %v", rest)
	}
}
