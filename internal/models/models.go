package models

// Category groups shops by what they sell. Icon is a display glyph.
type Category struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// Floor is a physical level of the mall. Number is the display ordinal.
type Floor struct {
	ID          int    `json:"id"`
	Number      int    `json:"number"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Shop references Category and Floor by id.
type Shop struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Category    int    `json:"category"`
	Floor       int    `json:"floor"`
	ShopNumber  string `json:"shopNumber"`
	Description string `json:"description"`
	Contact     string `json:"contact"`
	Email       string `json:"email"`
	Hours       string `json:"hours"`
}

// Offer is a time-bounded discount attached to a shop. ValidFrom and
// ValidUntil are ISO dates (YYYY-MM-DD) compared as strings.
type Offer struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	ShopID      int    `json:"shopId"`
	Discount    int    `json:"discount"`
	Description string `json:"description"`
	ValidFrom   string `json:"validFrom"`
	ValidUntil  string `json:"validUntil"`
}

// Customer is a registered mall visitor. Password holds a bcrypt hash.
type Customer struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Password  string `json:"password"`
	CreatedAt string `json:"createdAt"`
}

// AdminUser is a back-office account. Password holds a bcrypt hash.
type AdminUser struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// Document is the persisted unit: every collection in one place,
// written back whole on each mutation.
type Document struct {
	Shops      []Shop      `json:"shops"`
	Offers     []Offer     `json:"offers"`
	Categories []Category  `json:"categories"`
	Floors     []Floor     `json:"floors"`
	Users      []AdminUser `json:"users"`
	Customers  []Customer  `json:"customers"`
}

// Clone returns a deep copy so callers can hand out snapshots without
// exposing the store's internal slices.
func (d Document) Clone() Document {
	out := Document{
		Shops:      make([]Shop, len(d.Shops)),
		Offers:     make([]Offer, len(d.Offers)),
		Categories: make([]Category, len(d.Categories)),
		Floors:     make([]Floor, len(d.Floors)),
		Users:      make([]AdminUser, len(d.Users)),
		Customers:  make([]Customer, len(d.Customers)),
	}
	copy(out.Shops, d.Shops)
	copy(out.Offers, d.Offers)
	copy(out.Categories, d.Categories)
	copy(out.Floors, d.Floors)
	copy(out.Users, d.Users)
	copy(out.Customers, d.Customers)
	return out
}

// Patch types carry partial updates: nil means "leave unchanged".

type ShopPatch struct {
	Name        *string `json:"name"`
	Category    *int    `json:"category"`
	Floor       *int    `json:"floor"`
	ShopNumber  *string `json:"shopNumber"`
	Description *string `json:"description"`
	Contact     *string `json:"contact"`
	Email       *string `json:"email"`
	Hours       *string `json:"hours"`
}

type OfferPatch struct {
	Title       *string `json:"title"`
	ShopID      *int    `json:"shopId"`
	Discount    *int    `json:"discount"`
	Description *string `json:"description"`
	ValidFrom   *string `json:"validFrom"`
	ValidUntil  *string `json:"validUntil"`
}

type CategoryPatch struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Icon        *string `json:"icon"`
}

type FloorPatch struct {
	Number      *int    `json:"number"`
	Name        *string `json:"name"`
	Description *string `json:"description"`
}
