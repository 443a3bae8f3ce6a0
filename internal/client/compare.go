package client

import (
	"fmt"
	"strings"

	"github.com/Sowmya0405/Super-mall-web-application/internal/catalog"
	"github.com/Sowmya0405/Super-mall-web-application/internal/models"
)

// CompareColumn is one shop's column in the side-by-side view.
type CompareColumn struct {
	ShopID   int
	Name     string
	Category string
	Floor    string
	Location string
	Hours    string
	Contact  string
	Offers   string
}

// ComparisonTable is rebuilt in full on every selection change.
type ComparisonTable struct {
	Columns []CompareColumn
}

// Comparison derives the table for the current selection. ok is false
// until at least two shops are selected; the Offers cell joins the
// discounts of offers active today.
func (s *State) Comparison() (ComparisonTable, bool) {
	if len(s.selected) < 2 {
		return ComparisonTable{}, false
	}
	today := catalog.Today()
	table := ComparisonTable{Columns: make([]CompareColumn, 0, len(s.selected))}
	for _, id := range s.selected {
		shop, ok := s.findShop(id)
		if !ok {
			continue
		}
		col := CompareColumn{
			ShopID:   shop.ID,
			Name:     shop.Name,
			Category: s.categoryName(shop.Category),
			Floor:    s.floorName(shop.Floor),
			Location: shop.ShopNumber,
			Hours:    orNA(shop.Hours),
			Contact:  orNA(shop.Contact),
		}
		var discounts []string
		for _, o := range catalog.OffersForShop(s.Offers, shop.ID) {
			if catalog.OfferActiveOn(o, today) {
				discounts = append(discounts, fmt.Sprintf("%d%% off", o.Discount))
			}
		}
		if len(discounts) == 0 {
			col.Offers = "No offers"
		} else {
			col.Offers = strings.Join(discounts, ", ")
		}
		table.Columns = append(table.Columns, col)
	}
	return table, true
}

func (s *State) findShop(id int) (models.Shop, bool) {
	for _, v := range s.Shops {
		if v.ID == id {
			return v, true
		}
	}
	return models.Shop{}, false
}

func (s *State) categoryName(id int) string {
	for _, c := range s.Categories {
		if c.ID == id {
			return c.Name
		}
	}
	return "N/A"
}

func (s *State) floorName(id int) string {
	for _, f := range s.Floors {
		if f.ID == id {
			return f.Name
		}
	}
	return "N/A"
}

func orNA(v string) string {
	if v == "" {
		return "N/A"
	}
	return v
}
