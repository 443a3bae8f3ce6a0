// Package catalog holds the business rules shared between the API store
// and the offline client state: id assignment, partial-update merging,
// filtering, the active-offer predicate and referential checks. Both
// sides call into this package so the rules cannot drift apart.
package catalog

import (
	"strings"
	"time"

	"github.com/Sowmya0405/Super-mall-web-application/internal/models"
)

// NextID returns 1 for an empty id set, otherwise max+1. Deletions can
// lower the maximum, so callers must recompute on every assignment
// rather than cache a counter.
func NextID(ids []int) int {
	max := 0
	for _, id := range ids {
		if id > max {
			max = id
		}
	}
	return max + 1
}

// Today returns the current UTC date as an ISO string, the form offers
// are compared in. UTC keeps the cutover consistent regardless of the
// server's timezone.
func Today() string {
	return time.Now().UTC().Format("2006-01-02")
}

// OfferActiveOn reports whether date (ISO YYYY-MM-DD) falls inside the
// offer's validity window, both bounds inclusive.
func OfferActiveOn(o models.Offer, date string) bool {
	return o.ValidFrom <= date && date <= o.ValidUntil
}

// ShopFilter is a conjunction: zero values mean "no constraint".
type ShopFilter struct {
	Category int
	Floor    int
	Search   string
}

// FilterShops recomputes the filtered view from the full collection.
// Search matches case-insensitively against name or description.
func FilterShops(shops []models.Shop, f ShopFilter) []models.Shop {
	out := make([]models.Shop, 0, len(shops))
	term := strings.ToLower(strings.TrimSpace(f.Search))
	for _, s := range shops {
		if f.Category != 0 && s.Category != f.Category {
			continue
		}
		if f.Floor != 0 && s.Floor != f.Floor {
			continue
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(s.Name), term) &&
			!strings.Contains(strings.ToLower(s.Description), term) {
			continue
		}
		out = append(out, s)
	}
	return out
}

// OfferFilter narrows offers by shop and/or validity on a given date.
// ActiveOn empty means no date constraint.
type OfferFilter struct {
	ShopID   int
	ActiveOn string
}

func FilterOffers(offers []models.Offer, f OfferFilter) []models.Offer {
	out := make([]models.Offer, 0, len(offers))
	for _, o := range offers {
		if f.ShopID != 0 && o.ShopID != f.ShopID {
			continue
		}
		if f.ActiveOn != "" && !OfferActiveOn(o, f.ActiveOn) {
			continue
		}
		out = append(out, o)
	}
	return out
}

// OffersForShop returns the offers attached to one shop.
func OffersForShop(offers []models.Offer, shopID int) []models.Offer {
	return FilterOffers(offers, OfferFilter{ShopID: shopID})
}

// WithoutShopOffers drops every offer belonging to shopID; used when a
// shop delete cascades.
func WithoutShopOffers(offers []models.Offer, shopID int) []models.Offer {
	out := make([]models.Offer, 0, len(offers))
	for _, o := range offers {
		if o.ShopID != shopID {
			out = append(out, o)
		}
	}
	return out
}

// CategoryInUse reports whether any shop still references the category;
// such a category must not be deleted.
func CategoryInUse(shops []models.Shop, categoryID int) bool {
	for _, s := range shops {
		if s.Category == categoryID {
			return true
		}
	}
	return false
}

// FloorInUse reports whether any shop still references the floor.
func FloorInUse(shops []models.Shop, floorID int) bool {
	for _, s := range shops {
		if s.Floor == floorID {
			return true
		}
	}
	return false
}

// Merge functions apply only the fields present in the patch, leaving
// everything else untouched.

func MergeShop(s *models.Shop, p models.ShopPatch) {
	if p.Name != nil {
		s.Name = *p.Name
	}
	if p.Category != nil {
		s.Category = *p.Category
	}
	if p.Floor != nil {
		s.Floor = *p.Floor
	}
	if p.ShopNumber != nil {
		s.ShopNumber = *p.ShopNumber
	}
	if p.Description != nil {
		s.Description = *p.Description
	}
	if p.Contact != nil {
		s.Contact = *p.Contact
	}
	if p.Email != nil {
		s.Email = *p.Email
	}
	if p.Hours != nil {
		s.Hours = *p.Hours
	}
}

func MergeOffer(o *models.Offer, p models.OfferPatch) {
	if p.Title != nil {
		o.Title = *p.Title
	}
	if p.ShopID != nil {
		o.ShopID = *p.ShopID
	}
	if p.Discount != nil {
		o.Discount = *p.Discount
	}
	if p.Description != nil {
		o.Description = *p.Description
	}
	if p.ValidFrom != nil {
		o.ValidFrom = *p.ValidFrom
	}
	if p.ValidUntil != nil {
		o.ValidUntil = *p.ValidUntil
	}
}

func MergeCategory(c *models.Category, p models.CategoryPatch) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Description != nil {
		c.Description = *p.Description
	}
	if p.Icon != nil {
		c.Icon = *p.Icon
	}
}

func MergeFloor(f *models.Floor, p models.FloorPatch) {
	if p.Number != nil {
		f.Number = *p.Number
	}
	if p.Name != nil {
		f.Name = *p.Name
	}
	if p.Description != nil {
		f.Description = *p.Description
	}
}
