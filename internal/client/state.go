package client

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/Sowmya0405/Super-mall-web-application/internal/auth"
	"github.com/Sowmya0405/Super-mall-web-application/internal/catalog"
	"github.com/Sowmya0405/Super-mall-web-application/internal/models"
	"github.com/Sowmya0405/Super-mall-web-application/internal/store"
)

// maxCompare caps the comparison selection.
const maxCompare = 4

// State is the client-side mirror of the catalog. Derived views are
// recomputed in full from the local collections on each call, never
// patched incrementally. Not safe for concurrent use: it models a
// single interactive session.
type State struct {
	api    *Client
	tokens *auth.Tokens

	Shops      []models.Shop
	Offers     []models.Offer
	Categories []models.Category
	Floors     []models.Floor

	shopFilter catalog.ShopFilter
	offerShop  int
	selected   []int

	offline bool
	session *auth.Claims
	token   string
}

// NewState wires a state to an API client. tokens verifies restored
// session tokens; nil disables session restore.
func NewState(api *Client, tokens *auth.Tokens) *State {
	return &State{api: api, tokens: tokens}
}

// Load fetches all four collections in parallel. Any failure flips the
// whole state to the built-in sample dataset so the UI stays usable
// without a backend.
func (s *State) Load(ctx context.Context) {
	var (
		shops      []models.Shop
		offers     []models.Offer
		categories []models.Category
		floors     []models.Floor
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) { shops, err = s.api.Shops(gctx); return })
	g.Go(func() (err error) { offers, err = s.api.Offers(gctx); return })
	g.Go(func() (err error) { categories, err = s.api.Categories(gctx); return })
	g.Go(func() (err error) { floors, err = s.api.Floors(gctx); return })
	if err := g.Wait(); err != nil {
		s.UseSampleData()
		return
	}
	s.Shops, s.Offers, s.Categories, s.Floors = shops, offers, categories, floors
	s.offline = false
}

// UseSampleData loads the same dataset the server seeds with, flagged
// as offline.
func (s *State) UseSampleData() {
	doc := store.DefaultDocument(models.AdminUser{})
	s.Shops = doc.Shops
	s.Offers = doc.Offers
	s.Categories = doc.Categories
	s.Floors = doc.Floors
	s.offline = true
}

// Offline reports whether the state is running on sample data.
func (s *State) Offline() bool { return s.offline }

// --- Filtering ---

func (s *State) SetShopFilter(f catalog.ShopFilter) { s.shopFilter = f }

// FilteredShops recomputes the shop view from the full collection.
func (s *State) FilteredShops() []models.Shop {
	return catalog.FilterShops(s.Shops, s.shopFilter)
}

func (s *State) SetOfferShopFilter(shopID int) { s.offerShop = shopID }

func (s *State) FilteredOffers() []models.Offer {
	return catalog.FilterOffers(s.Offers, catalog.OfferFilter{ShopID: s.offerShop})
}

// --- Comparison ---

// ToggleCompare adds or removes a shop from the comparison selection.
// Adding beyond four is refused and reported false; toggling is
// otherwise idempotent.
func (s *State) ToggleCompare(shopID int) bool {
	for i, id := range s.selected {
		if id == shopID {
			s.selected = append(s.selected[:i], s.selected[i+1:]...)
			return true
		}
	}
	if len(s.selected) >= maxCompare {
		return false
	}
	s.selected = append(s.selected, shopID)
	return true
}

// Selected returns the comparison selection in pick order.
func (s *State) Selected() []int {
	out := make([]int, len(s.selected))
	copy(out, s.selected)
	return out
}

// --- Local admin CRUD (offline path) ---
//
// These mirror the server's rules through the shared catalog package:
// next-id assignment, merge-on-update, cascade on shop delete, blocked
// category/floor delete, foreign keys checked up front.

func (s *State) shopIDs() []int {
	ids := make([]int, len(s.Shops))
	for i, v := range s.Shops {
		ids[i] = v.ID
	}
	return ids
}

func (s *State) categoryExists(id int) bool {
	for _, c := range s.Categories {
		if c.ID == id {
			return true
		}
	}
	return false
}

func (s *State) floorExists(id int) bool {
	for _, f := range s.Floors {
		if f.ID == id {
			return true
		}
	}
	return false
}

func (s *State) shopExists(id int) bool {
	for _, v := range s.Shops {
		if v.ID == id {
			return true
		}
	}
	return false
}

func (s *State) CreateShop(shop models.Shop) (models.Shop, error) {
	if !s.categoryExists(shop.Category) {
		return models.Shop{}, &store.RefError{Field: "category"}
	}
	if !s.floorExists(shop.Floor) {
		return models.Shop{}, &store.RefError{Field: "floor"}
	}
	shop.ID = catalog.NextID(s.shopIDs())
	s.Shops = append(s.Shops, shop)
	return shop, nil
}

func (s *State) UpdateShop(id int, p models.ShopPatch) (models.Shop, error) {
	if p.Category != nil && !s.categoryExists(*p.Category) {
		return models.Shop{}, &store.RefError{Field: "category"}
	}
	if p.Floor != nil && !s.floorExists(*p.Floor) {
		return models.Shop{}, &store.RefError{Field: "floor"}
	}
	for i := range s.Shops {
		if s.Shops[i].ID == id {
			catalog.MergeShop(&s.Shops[i], p)
			return s.Shops[i], nil
		}
	}
	return models.Shop{}, store.ErrNotFound
}

func (s *State) DeleteShop(id int) error {
	for i := range s.Shops {
		if s.Shops[i].ID == id {
			s.Shops = append(s.Shops[:i], s.Shops[i+1:]...)
			s.Offers = catalog.WithoutShopOffers(s.Offers, id)
			return nil
		}
	}
	return store.ErrNotFound
}

func (s *State) CreateOffer(offer models.Offer) (models.Offer, error) {
	if !s.shopExists(offer.ShopID) {
		return models.Offer{}, &store.RefError{Field: "shopId"}
	}
	ids := make([]int, len(s.Offers))
	for i, v := range s.Offers {
		ids[i] = v.ID
	}
	offer.ID = catalog.NextID(ids)
	s.Offers = append(s.Offers, offer)
	return offer, nil
}

func (s *State) UpdateOffer(id int, p models.OfferPatch) (models.Offer, error) {
	if p.ShopID != nil && !s.shopExists(*p.ShopID) {
		return models.Offer{}, &store.RefError{Field: "shopId"}
	}
	for i := range s.Offers {
		if s.Offers[i].ID == id {
			catalog.MergeOffer(&s.Offers[i], p)
			return s.Offers[i], nil
		}
	}
	return models.Offer{}, store.ErrNotFound
}

func (s *State) DeleteOffer(id int) error {
	for i := range s.Offers {
		if s.Offers[i].ID == id {
			s.Offers = append(s.Offers[:i], s.Offers[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

func (s *State) CreateCategory(c models.Category) models.Category {
	ids := make([]int, len(s.Categories))
	for i, v := range s.Categories {
		ids[i] = v.ID
	}
	c.ID = catalog.NextID(ids)
	s.Categories = append(s.Categories, c)
	return c
}

func (s *State) UpdateCategory(id int, p models.CategoryPatch) (models.Category, error) {
	for i := range s.Categories {
		if s.Categories[i].ID == id {
			catalog.MergeCategory(&s.Categories[i], p)
			return s.Categories[i], nil
		}
	}
	return models.Category{}, store.ErrNotFound
}

func (s *State) DeleteCategory(id int) error {
	for i := range s.Categories {
		if s.Categories[i].ID == id {
			if catalog.CategoryInUse(s.Shops, id) {
				return store.ErrReferenced
			}
			s.Categories = append(s.Categories[:i], s.Categories[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

func (s *State) CreateFloor(f models.Floor) models.Floor {
	ids := make([]int, len(s.Floors))
	for i, v := range s.Floors {
		ids[i] = v.ID
	}
	f.ID = catalog.NextID(ids)
	s.Floors = append(s.Floors, f)
	return f
}

func (s *State) UpdateFloor(id int, p models.FloorPatch) (models.Floor, error) {
	for i := range s.Floors {
		if s.Floors[i].ID == id {
			catalog.MergeFloor(&s.Floors[i], p)
			return s.Floors[i], nil
		}
	}
	return models.Floor{}, store.ErrNotFound
}

func (s *State) DeleteFloor(id int) error {
	for i := range s.Floors {
		if s.Floors[i].ID == id {
			if catalog.FloorInUse(s.Shops, id) {
				return store.ErrReferenced
			}
			s.Floors = append(s.Floors[:i], s.Floors[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

// --- Session ---

// SetSession stores a freshly minted token from a login response.
func (s *State) SetSession(token string) {
	if s.tokens == nil {
		return
	}
	if claims, err := s.tokens.Verify(token); err == nil {
		s.token = token
		s.session = &claims
	}
}

// RestoreSession accepts a previously persisted token, trusting it only
// after the signature and expiry check out.
func (s *State) RestoreSession(token string) bool {
	if s.tokens == nil {
		return false
	}
	claims, err := s.tokens.Verify(token)
	if err != nil {
		return false
	}
	s.token = token
	s.session = &claims
	return true
}

// ClearSession logs out.
func (s *State) ClearSession() {
	s.token = ""
	s.session = nil
}

// IsAdmin reports whether the current session carries the admin role.
func (s *State) IsAdmin() bool {
	return s.session != nil && s.session.Role == "admin"
}

// SessionToken returns whatever the UI should persist, empty when
// logged out.
func (s *State) SessionToken() string { return s.token }
