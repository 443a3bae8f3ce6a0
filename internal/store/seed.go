package store

import "github.com/Sowmya0405/Super-mall-web-application/internal/models"

// DefaultDocument is the dataset the directory starts with when no
// document has been persisted yet. adminUser carries the built-in
// back-office account; its password hash comes from configuration.
func DefaultDocument(adminUser models.AdminUser) models.Document {
	return models.Document{
		Categories: []models.Category{
			{ID: 1, Name: "Fashion & Apparel", Description: "Clothing, accessories, and footwear", Icon: "👗"},
			{ID: 2, Name: "Electronics", Description: "Latest gadgets and technology", Icon: "📱"},
			{ID: 3, Name: "Food & Beverages", Description: "Restaurants and food courts", Icon: "🍽️"},
			{ID: 4, Name: "Home & Lifestyle", Description: "Furniture and home decor", Icon: "🏠"},
			{ID: 5, Name: "Beauty & Cosmetics", Description: "Skincare and makeup products", Icon: "💄"},
			{ID: 6, Name: "Sports & Fitness", Description: "Sportswear and equipment", Icon: "⚽"},
		},
		Floors: []models.Floor{
			{ID: 1, Number: 1, Name: "Ground Floor", Description: "Fashion & Accessories"},
			{ID: 2, Number: 2, Name: "First Floor", Description: "Electronics & Technology"},
			{ID: 3, Number: 3, Name: "Second Floor", Description: "Food Court & Restaurants"},
			{ID: 4, Number: 4, Name: "Third Floor", Description: "Home & Lifestyle"},
			{ID: 5, Number: 5, Name: "Fourth Floor", Description: "Entertainment & Cinema"},
		},
		Shops: []models.Shop{
			{ID: 1, Name: "Zara", Category: 1, Floor: 1, ShopNumber: "G-101", Description: "International fashion retailer", Contact: "+91 98765 43210", Email: "zara@luxeplaza.com", Hours: "10:00 AM - 9:00 PM"},
			{ID: 2, Name: "H&M", Category: 1, Floor: 1, ShopNumber: "G-105", Description: "Swedish fashion brand", Contact: "+91 98765 43211", Email: "hm@luxeplaza.com", Hours: "10:00 AM - 9:00 PM"},
			{ID: 3, Name: "Apple Store", Category: 2, Floor: 2, ShopNumber: "F1-201", Description: "Official Apple retailer", Contact: "+91 98765 43212", Email: "apple@luxeplaza.com", Hours: "10:00 AM - 9:00 PM"},
			{ID: 4, Name: "Samsung Experience", Category: 2, Floor: 2, ShopNumber: "F1-205", Description: "Samsung products showcase", Contact: "+91 98765 43213", Email: "samsung@luxeplaza.com", Hours: "10:00 AM - 9:00 PM"},
			{ID: 5, Name: "Starbucks", Category: 3, Floor: 3, ShopNumber: "F2-301", Description: "Coffee and snacks", Contact: "+91 98765 43214", Email: "starbucks@luxeplaza.com", Hours: "8:00 AM - 10:00 PM"},
			{ID: 6, Name: "McDonald's", Category: 3, Floor: 3, ShopNumber: "F2-310", Description: "Fast food restaurant", Contact: "+91 98765 43215", Email: "mcdonalds@luxeplaza.com", Hours: "10:00 AM - 11:00 PM"},
			{ID: 7, Name: "IKEA", Category: 4, Floor: 4, ShopNumber: "F3-401", Description: "Furniture and home accessories", Contact: "+91 98765 43216", Email: "ikea@luxeplaza.com", Hours: "10:00 AM - 9:00 PM"},
			{ID: 8, Name: "Sephora", Category: 5, Floor: 1, ShopNumber: "G-120", Description: "Beauty and cosmetics", Contact: "+91 98765 43217", Email: "sephora@luxeplaza.com", Hours: "10:00 AM - 9:00 PM"},
			{ID: 9, Name: "Nike", Category: 6, Floor: 1, ShopNumber: "G-115", Description: "Sportswear and equipment", Contact: "+91 98765 43218", Email: "nike@luxeplaza.com", Hours: "10:00 AM - 9:00 PM"},
			{ID: 10, Name: "Adidas", Category: 6, Floor: 1, ShopNumber: "G-118", Description: "Sports apparel and footwear", Contact: "+91 98765 43219", Email: "adidas@luxeplaza.com", Hours: "10:00 AM - 9:00 PM"},
		},
		Offers: []models.Offer{
			{ID: 1, Title: "Summer Sale", ShopID: 1, Discount: 50, Description: "Up to 50% off on all summer collections", ValidFrom: "2026-01-20", ValidUntil: "2026-02-28"},
			{ID: 2, Title: "New Year Offer", ShopID: 2, Discount: 40, Description: "40% discount on selected items", ValidFrom: "2026-01-15", ValidUntil: "2026-02-15"},
			{ID: 3, Title: "Tech Bonanza", ShopID: 3, Discount: 15, Description: "Special discounts on latest Apple products", ValidFrom: "2026-01-25", ValidUntil: "2026-02-10"},
			{ID: 4, Title: "Galaxy Days", ShopID: 4, Discount: 25, Description: "25% off on Samsung Galaxy series", ValidFrom: "2026-01-20", ValidUntil: "2026-03-01"},
			{ID: 5, Title: "Coffee Club", ShopID: 5, Discount: 10, Description: "Buy 2 get 1 free on all beverages", ValidFrom: "2026-01-01", ValidUntil: "2026-12-31"},
			{ID: 6, Title: "Happy Meal Deal", ShopID: 6, Discount: 20, Description: "20% off on combo meals", ValidFrom: "2026-01-15", ValidUntil: "2026-02-28"},
			{ID: 7, Title: "Home Makeover", ShopID: 7, Discount: 30, Description: "30% off on furniture collection", ValidFrom: "2026-01-20", ValidUntil: "2026-03-15"},
			{ID: 8, Title: "Beauty Festival", ShopID: 8, Discount: 35, Description: "Flat 35% off on makeup products", ValidFrom: "2026-01-25", ValidUntil: "2026-02-25"},
		},
		Users:     []models.AdminUser{adminUser},
		Customers: []models.Customer{},
	}
}
