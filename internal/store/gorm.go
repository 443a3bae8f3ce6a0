package store

import (
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Sowmya0405/Super-mall-web-application/internal/models"
)

// GormBackend stores the document in an embedded sqlite database or a
// postgres server, chosen by DSN shape. Save rewrites every table in
// one transaction, keeping the full-document-overwrite semantics of the
// file backend.
type GormBackend struct {
	db *gorm.DB
}

// Row types keep gorm concerns out of the wire models. IDs are assigned
// by the store (max+1), never by the database.

type shopRow struct {
	ID          int `gorm:"primaryKey"`
	Name        string
	Category    int
	Floor       int
	ShopNumber  string
	Description string
	Contact     string
	Email       string
	Hours       string
}

type offerRow struct {
	ID          int `gorm:"primaryKey"`
	Title       string
	ShopID      int
	Discount    int
	Description string
	ValidFrom   string
	ValidUntil  string
}

type categoryRow struct {
	ID          int `gorm:"primaryKey"`
	Name        string
	Description string
	Icon        string
}

type floorRow struct {
	ID          int `gorm:"primaryKey"`
	Number      int
	Name        string
	Description string
}

type adminUserRow struct {
	ID       int `gorm:"primaryKey"`
	Username string
	Password string
	Role     string
}

type customerRow struct {
	ID        int `gorm:"primaryKey"`
	Name      string
	Email     string `gorm:"uniqueIndex"`
	Phone     string
	Password  string
	CreatedAt string
}

func (shopRow) TableName() string      { return "shops" }
func (offerRow) TableName() string     { return "offers" }
func (categoryRow) TableName() string  { return "categories" }
func (floorRow) TableName() string     { return "floors" }
func (adminUserRow) TableName() string { return "users" }
func (customerRow) TableName() string  { return "customers" }

// OpenGorm connects and migrates. A postgres:// URL or key=value DSN
// selects the postgres driver; anything else is treated as a sqlite
// file path.
func OpenGorm(dsn string) (*GormBackend, error) {
	var dialector gorm.Dialector
	lower := strings.ToLower(strings.TrimSpace(dsn))
	if strings.HasPrefix(lower, "postgres://") || strings.HasPrefix(lower, "postgresql://") || strings.Contains(lower, "host=") {
		dialector = postgres.Open(dsn)
	} else {
		dialector = sqlite.Open(dsn)
	}
	db, err := gorm.Open(dialector, &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&shopRow{}, &offerRow{}, &categoryRow{}, &floorRow{}, &adminUserRow{}, &customerRow{}); err != nil {
		return nil, err
	}
	return &GormBackend{db: db}, nil
}

func (g *GormBackend) Load() (models.Document, bool, error) {
	var (
		shops      []shopRow
		offers     []offerRow
		categories []categoryRow
		floors     []floorRow
		users      []adminUserRow
		customers  []customerRow
	)
	err := g.db.Transaction(func(tx *gorm.DB) error {
		for _, dst := range []any{&shops, &offers, &categories, &floors, &users, &customers} {
			if err := tx.Order("id").Find(dst).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return models.Document{}, false, err
	}
	doc := models.Document{}
	for _, r := range shops {
		doc.Shops = append(doc.Shops, models.Shop(r))
	}
	for _, r := range offers {
		doc.Offers = append(doc.Offers, models.Offer(r))
	}
	for _, r := range categories {
		doc.Categories = append(doc.Categories, models.Category(r))
	}
	for _, r := range floors {
		doc.Floors = append(doc.Floors, models.Floor(r))
	}
	for _, r := range users {
		doc.Users = append(doc.Users, models.AdminUser(r))
	}
	for _, r := range customers {
		doc.Customers = append(doc.Customers, models.Customer(r))
	}
	// An entirely empty database means no document was ever saved; the
	// store seeds defaults in that case. The built-in admin user makes a
	// saved document never fully empty.
	found := len(shops)+len(offers)+len(categories)+len(floors)+len(users)+len(customers) > 0
	return doc, found, nil
}

func (g *GormBackend) Save(doc models.Document) error {
	return g.db.Transaction(func(tx *gorm.DB) error {
		wipe := tx.Session(&gorm.Session{AllowGlobalUpdate: true})
		for _, model := range []any{&shopRow{}, &offerRow{}, &categoryRow{}, &floorRow{}, &adminUserRow{}, &customerRow{}} {
			if err := wipe.Delete(model).Error; err != nil {
				return err
			}
		}
		for _, v := range doc.Shops {
			if err := tx.Create(ptr(shopRow(v))).Error; err != nil {
				return err
			}
		}
		for _, v := range doc.Offers {
			if err := tx.Create(ptr(offerRow(v))).Error; err != nil {
				return err
			}
		}
		for _, v := range doc.Categories {
			if err := tx.Create(ptr(categoryRow(v))).Error; err != nil {
				return err
			}
		}
		for _, v := range doc.Floors {
			if err := tx.Create(ptr(floorRow(v))).Error; err != nil {
				return err
			}
		}
		for _, v := range doc.Users {
			if err := tx.Create(ptr(adminUserRow(v))).Error; err != nil {
				return err
			}
		}
		for _, v := range doc.Customers {
			if err := tx.Create(ptr(customerRow(v))).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func ptr[T any](v T) *T { return &v }
