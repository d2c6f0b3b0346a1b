package store

import "lumina/internal/models"

// Seed builds the fixed built-in dataset used when no persisted state exists:
// two accounts (one admin, one customer), a small catalog, and empty
// orders/cart/reviews/comparison collections.
func Seed() *models.AppState {
	return &models.AppState{
		Users: []models.User{
			{
				ID:        "u1",
				Email:     "admin@lumina.com",
				Name:      "Admin User",
				Role:      models.RoleAdmin,
				Addresses: []models.Address{},
				Wishlist:  []string{},
			},
			{
				ID:        "u2",
				Email:     "user@lumina.com",
				Name:      "John Doe",
				Role:      models.RoleUser,
				Addresses: []models.Address{},
				Wishlist:  []string{},
			},
		},
		CurrentUser: nil,
		Categories: []models.Category{
			{ID: "cat1", Name: "Electronics", Slug: "electronics", Image: "https://picsum.photos/seed/elec/800/600"},
			{ID: "cat2", Name: "Fashion", Slug: "fashion", Image: "https://picsum.photos/seed/fashion/800/600"},
			{ID: "cat3", Name: "Home & Living", Slug: "home-living", Image: "https://picsum.photos/seed/home/800/600"},
		},
		Subcategories: []models.Subcategory{
			{ID: "sub1", CategoryID: "cat1", Name: "Smartphones", Slug: "smartphones", Attributes: []string{"RAM", "Storage", "Battery", "Camera"}},
			{ID: "sub2", CategoryID: "cat1", Name: "Laptops", Slug: "laptops", Attributes: []string{"Processor", "RAM", "Storage", "Screen Size"}},
			{ID: "sub3", CategoryID: "cat2", Name: "Men's Wear", Slug: "mens-wear", Attributes: []string{"Material", "Size", "Color"}},
		},
		Products: []models.Product{
			{
				ID:            "p1",
				SubCategoryID: "sub1",
				Name:          "Lumina X Pro",
				Description:   "The ultimate flagship smartphone with breakthrough performance.",
				Price:         999,
				DiscountPrice: 899,
				Stock:         25,
				Images:        []string{"https://picsum.photos/seed/ph1/800/800", "https://picsum.photos/seed/ph2/800/800"},
				Attributes: []models.ProductAttribute{
					{Key: "RAM", Value: "12GB"},
					{Key: "Storage", Value: "256GB"},
					{Key: "Battery", Value: "5000mAh"},
				},
				Rating:      4.8,
				ReviewCount: 120,
				IsFeatured:  true,
			},
			{
				ID:            "p2",
				SubCategoryID: "sub1",
				Name:          "Galaxy Nano",
				Description:   "Compact power in your pocket.",
				Price:         699,
				Stock:         50,
				Images:        []string{"https://picsum.photos/seed/ph3/800/800"},
				Attributes: []models.ProductAttribute{
					{Key: "RAM", Value: "8GB"},
					{Key: "Storage", Value: "128GB"},
					{Key: "Battery", Value: "4200mAh"},
				},
				Rating:      4.5,
				ReviewCount: 85,
				IsFeatured:  true,
			},
			{
				ID:            "p3",
				SubCategoryID: "sub2",
				Name:          "SwiftBook Air",
				Description:   "Thinner, lighter, faster than ever before.",
				Price:         1299,
				DiscountPrice: 1199,
				Stock:         12,
				Images:        []string{"https://picsum.photos/seed/lp1/800/800"},
				Attributes: []models.ProductAttribute{
					{Key: "Processor", Value: "M2 Ultra"},
					{Key: "RAM", Value: "16GB"},
					{Key: "Storage", Value: "512GB SSD"},
				},
				Rating:      4.9,
				ReviewCount: 45,
				IsFeatured:  true,
			},
		},
		Orders:         []models.Order{},
		Reviews:        []models.Review{},
		Cart:           []models.CartItem{},
		ComparisonList: []string{},
	}
}
