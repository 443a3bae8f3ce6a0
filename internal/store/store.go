// Package store is the single source of truth for the catalog: four
// collections plus customers and admin users, guarded by one mutex and
// written back whole through a pluggable backend on every mutation.
package store

import (
	"log/slog"
	"sync"

	"github.com/Sowmya0405/Super-mall-web-application/internal/catalog"
	"github.com/Sowmya0405/Super-mall-web-application/internal/models"
)

type Store struct {
	mu      sync.Mutex
	doc     models.Document
	backend Backend
	log     *slog.Logger
}

// Open loads the persisted document, falling back to seed when nothing
// is stored or the load fails. Load failures are logged, not returned:
// the directory stays usable on defaults.
func Open(backend Backend, seed models.Document, log *slog.Logger) *Store {
	if log == nil {
		log = slog.Default()
	}
	s := &Store{backend: backend, log: log}
	doc, found, err := backend.Load()
	switch {
	case err != nil:
		log.Warn("load failed, using default data", "err", err)
		s.doc = seed
		s.persistLocked()
	case !found:
		log.Info("no existing data, using default data")
		s.doc = seed
		s.persistLocked()
	default:
		s.doc = doc
	}
	return s
}

// persistLocked writes the whole document. Persistence errors are
// logged and swallowed; the in-memory state is already mutated and
// remains authoritative for this process.
func (s *Store) persistLocked() {
	if err := s.backend.Save(s.doc); err != nil {
		s.log.Error("save failed", "err", err)
	}
}

// Snapshot returns a deep copy of the current document.
func (s *Store) Snapshot() models.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.Clone()
}

func shopIDs(shops []models.Shop) []int {
	ids := make([]int, len(shops))
	for i, v := range shops {
		ids[i] = v.ID
	}
	return ids
}

// --- Shops ---

func (s *Store) Shops() []models.Shop {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Shop, len(s.doc.Shops))
	copy(out, s.doc.Shops)
	return out
}

func (s *Store) ShopByID(id int) (models.Shop, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, v := range s.doc.Shops {
		if v.ID == id {
			return v, nil
		}
	}
	return models.Shop{}, ErrNotFound
}

func (s *Store) categoryExistsLocked(id int) bool {
	for _, c := range s.doc.Categories {
		if c.ID == id {
			return true
		}
	}
	return false
}

func (s *Store) floorExistsLocked(id int) bool {
	for _, f := range s.doc.Floors {
		if f.ID == id {
			return true
		}
	}
	return false
}

func (s *Store) shopExistsLocked(id int) bool {
	for _, v := range s.doc.Shops {
		if v.ID == id {
			return true
		}
	}
	return false
}

// CreateShop assigns the next id and persists. The category and floor
// must exist.
func (s *Store) CreateShop(shop models.Shop) (models.Shop, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.categoryExistsLocked(shop.Category) {
		return models.Shop{}, &RefError{Field: "category"}
	}
	if !s.floorExistsLocked(shop.Floor) {
		return models.Shop{}, &RefError{Field: "floor"}
	}
	shop.ID = catalog.NextID(shopIDs(s.doc.Shops))
	s.doc.Shops = append(s.doc.Shops, shop)
	s.persistLocked()
	return shop, nil
}

// UpdateShop merges the patch onto the existing record. Re-pointed
// foreign keys are verified before anything changes.
func (s *Store) UpdateShop(id int, p models.ShopPatch) (models.Shop, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p.Category != nil && !s.categoryExistsLocked(*p.Category) {
		return models.Shop{}, &RefError{Field: "category"}
	}
	if p.Floor != nil && !s.floorExistsLocked(*p.Floor) {
		return models.Shop{}, &RefError{Field: "floor"}
	}
	for i := range s.doc.Shops {
		if s.doc.Shops[i].ID == id {
			catalog.MergeShop(&s.doc.Shops[i], p)
			s.persistLocked()
			return s.doc.Shops[i], nil
		}
	}
	return models.Shop{}, ErrNotFound
}

// DeleteShop removes the shop and cascades to every offer attached to it.
func (s *Store) DeleteShop(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.doc.Shops {
		if s.doc.Shops[i].ID == id {
			s.doc.Shops = append(s.doc.Shops[:i], s.doc.Shops[i+1:]...)
			s.doc.Offers = catalog.WithoutShopOffers(s.doc.Offers, id)
			s.persistLocked()
			return nil
		}
	}
	return ErrNotFound
}

// --- Offers ---

func (s *Store) Offers() []models.Offer {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Offer, len(s.doc.Offers))
	copy(out, s.doc.Offers)
	return out
}

func (s *Store) OfferByID(id int) (models.Offer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, v := range s.doc.Offers {
		if v.ID == id {
			return v, nil
		}
	}
	return models.Offer{}, ErrNotFound
}

func (s *Store) CreateOffer(offer models.Offer) (models.Offer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.shopExistsLocked(offer.ShopID) {
		return models.Offer{}, &RefError{Field: "shopId"}
	}
	ids := make([]int, len(s.doc.Offers))
	for i, v := range s.doc.Offers {
		ids[i] = v.ID
	}
	offer.ID = catalog.NextID(ids)
	s.doc.Offers = append(s.doc.Offers, offer)
	s.persistLocked()
	return offer, nil
}

func (s *Store) UpdateOffer(id int, p models.OfferPatch) (models.Offer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p.ShopID != nil && !s.shopExistsLocked(*p.ShopID) {
		return models.Offer{}, &RefError{Field: "shopId"}
	}
	for i := range s.doc.Offers {
		if s.doc.Offers[i].ID == id {
			catalog.MergeOffer(&s.doc.Offers[i], p)
			s.persistLocked()
			return s.doc.Offers[i], nil
		}
	}
	return models.Offer{}, ErrNotFound
}

func (s *Store) DeleteOffer(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.doc.Offers {
		if s.doc.Offers[i].ID == id {
			s.doc.Offers = append(s.doc.Offers[:i], s.doc.Offers[i+1:]...)
			s.persistLocked()
			return nil
		}
	}
	return ErrNotFound
}

// --- Categories ---

func (s *Store) Categories() []models.Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Category, len(s.doc.Categories))
	copy(out, s.doc.Categories)
	return out
}

func (s *Store) CategoryByID(id int) (models.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, v := range s.doc.Categories {
		if v.ID == id {
			return v, nil
		}
	}
	return models.Category{}, ErrNotFound
}

func (s *Store) CreateCategory(c models.Category) (models.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]int, len(s.doc.Categories))
	for i, v := range s.doc.Categories {
		ids[i] = v.ID
	}
	c.ID = catalog.NextID(ids)
	s.doc.Categories = append(s.doc.Categories, c)
	s.persistLocked()
	return c, nil
}

func (s *Store) UpdateCategory(id int, p models.CategoryPatch) (models.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.doc.Categories {
		if s.doc.Categories[i].ID == id {
			catalog.MergeCategory(&s.doc.Categories[i], p)
			s.persistLocked()
			return s.doc.Categories[i], nil
		}
	}
	return models.Category{}, ErrNotFound
}

// DeleteCategory refuses while any shop references the category.
func (s *Store) DeleteCategory(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.doc.Categories {
		if s.doc.Categories[i].ID == id {
			if catalog.CategoryInUse(s.doc.Shops, id) {
				return ErrReferenced
			}
			s.doc.Categories = append(s.doc.Categories[:i], s.doc.Categories[i+1:]...)
			s.persistLocked()
			return nil
		}
	}
	return ErrNotFound
}

// --- Floors ---

func (s *Store) Floors() []models.Floor {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Floor, len(s.doc.Floors))
	copy(out, s.doc.Floors)
	return out
}

func (s *Store) FloorByID(id int) (models.Floor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, v := range s.doc.Floors {
		if v.ID == id {
			return v, nil
		}
	}
	return models.Floor{}, ErrNotFound
}

func (s *Store) CreateFloor(f models.Floor) (models.Floor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]int, len(s.doc.Floors))
	for i, v := range s.doc.Floors {
		ids[i] = v.ID
	}
	f.ID = catalog.NextID(ids)
	s.doc.Floors = append(s.doc.Floors, f)
	s.persistLocked()
	return f, nil
}

func (s *Store) UpdateFloor(id int, p models.FloorPatch) (models.Floor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.doc.Floors {
		if s.doc.Floors[i].ID == id {
			catalog.MergeFloor(&s.doc.Floors[i], p)
			s.persistLocked()
			return s.doc.Floors[i], nil
		}
	}
	return models.Floor{}, ErrNotFound
}

// DeleteFloor refuses while any shop references the floor.
func (s *Store) DeleteFloor(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.doc.Floors {
		if s.doc.Floors[i].ID == id {
			if catalog.FloorInUse(s.doc.Shops, id) {
				return ErrReferenced
			}
			s.doc.Floors = append(s.doc.Floors[:i], s.doc.Floors[i+1:]...)
			s.persistLocked()
			return nil
		}
	}
	return ErrNotFound
}

// --- Customers & admin users ---

// RegisterCustomer assigns the next id and persists. Email must be
// unique across customers; the password field is expected to already be
// hashed by the caller.
func (s *Store) RegisterCustomer(c models.Customer) (models.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.doc.Customers {
		if existing.Email == c.Email {
			return models.Customer{}, ErrEmailTaken
		}
	}
	ids := make([]int, len(s.doc.Customers))
	for i, v := range s.doc.Customers {
		ids[i] = v.ID
	}
	c.ID = catalog.NextID(ids)
	s.doc.Customers = append(s.doc.Customers, c)
	s.persistLocked()
	return c, nil
}

func (s *Store) CustomerByEmail(email string) (models.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, v := range s.doc.Customers {
		if v.Email == email {
			return v, nil
		}
	}
	return models.Customer{}, ErrNotFound
}

func (s *Store) CustomerByID(id int) (models.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, v := range s.doc.Customers {
		if v.ID == id {
			return v, nil
		}
	}
	return models.Customer{}, ErrNotFound
}

func (s *Store) AdminByUsername(username string) (models.AdminUser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, v := range s.doc.Users {
		if v.Username == username {
			return v, nil
		}
	}
	return models.AdminUser{}, ErrNotFound
}
