package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"lumina/internal/models"
	"lumina/internal/store"
)

// ProductService handles catalog reads and the admin-panel product CRUD.
type ProductService struct {
	store    *store.Store
	validate *validator.Validate
}

// NewProductService creates a new ProductService.
func NewProductService(st *store.Store) *ProductService {
	return &ProductService{
		store:    st,
		validate: validator.New(),
	}
}

// GetAll returns every product in the catalog.
func (s *ProductService) GetAll() []models.Product {
	return s.store.Current().Products
}

// GetByID returns the product with the given ID, or ErrNotFound.
func (s *ProductService) GetByID(id string) (*models.Product, error) {
	state := s.store.Current()
	p := state.ProductByID(id)
	if p == nil {
		return nil, fmt.Errorf("product with ID %s: %w", id, ErrNotFound)
	}
	return p, nil
}

// Search returns products whose name contains the query, case-insensitively.
func (s *ProductService) Search(query string) []models.Product {
	q := strings.ToLower(query)
	matches := []models.Product{}
	for _, p := range s.store.Current().Products {
		if strings.Contains(strings.ToLower(p.Name), q) {
			matches = append(matches, p)
		}
	}
	return matches
}

// Create validates the product, assigns a fresh time-based ID, appends it to
// the catalog and commits. The returned product carries the new ID.
func (s *ProductService) Create(input models.Product) (*models.Product, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("invalid product: %w", err)
	}

	created := input.Clone()
	created.ID = newProductID()

	err := s.store.Update("products.add", func(state *models.AppState) error {
		state.Products = append(state.Products, created.Clone())
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// ProductPatch carries the fields of a partial product update. Nil fields are
// left unchanged.
type ProductPatch struct {
	SubCategoryID *string                    `json:"subCategoryId,omitempty"`
	Name          *string                    `json:"name,omitempty"`
	Description   *string                    `json:"description,omitempty"`
	Price         *float64                   `json:"price,omitempty"`
	DiscountPrice *float64                   `json:"discountPrice,omitempty"`
	Stock         *int                       `json:"stock,omitempty"`
	Images        *[]string                  `json:"images,omitempty"`
	Attributes    *[]models.ProductAttribute `json:"attributes,omitempty"`
	Rating        *float64                   `json:"rating,omitempty"`
	ReviewCount   *int                       `json:"reviewCount,omitempty"`
	IsFeatured    *bool                      `json:"isFeatured,omitempty"`
}

// Update merges the patch into the matching product, validates the result and
// commits. Returns ErrNotFound when no product has the given ID.
func (s *ProductService) Update(id string, patch ProductPatch) (*models.Product, error) {
	var updated models.Product
	err := s.store.Update("products.update", func(state *models.AppState) error {
		p := state.ProductByID(id)
		if p == nil {
			return fmt.Errorf("product with ID %s: %w", id, ErrNotFound)
		}

		if patch.SubCategoryID != nil {
			p.SubCategoryID = *patch.SubCategoryID
		}
		if patch.Name != nil {
			p.Name = *patch.Name
		}
		if patch.Description != nil {
			p.Description = *patch.Description
		}
		if patch.Price != nil {
			p.Price = *patch.Price
		}
		if patch.DiscountPrice != nil {
			p.DiscountPrice = *patch.DiscountPrice
		}
		if patch.Stock != nil {
			p.Stock = *patch.Stock
		}
		if patch.Images != nil {
			p.Images = append([]string(nil), *patch.Images...)
		}
		if patch.Attributes != nil {
			p.Attributes = append([]models.ProductAttribute(nil), *patch.Attributes...)
		}
		if patch.Rating != nil {
			p.Rating = *patch.Rating
		}
		if patch.ReviewCount != nil {
			p.ReviewCount = *patch.ReviewCount
		}
		if patch.IsFeatured != nil {
			p.IsFeatured = *patch.IsFeatured
		}

		if err := s.validate.Struct(*p); err != nil {
			return fmt.Errorf("invalid product: %w", err)
		}

		updated = p.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes the matching product. Returns ErrNotFound when no product
// has the given ID. Cart lines, comparison entries and past orders that
// reference the deleted product are left in place; readers filter them out.
func (s *ProductService) Delete(id string) error {
	return s.store.Update("products.delete", func(state *models.AppState) error {
		kept := state.Products[:0]
		found := false
		for _, p := range state.Products {
			if p.ID == id {
				found = true
				continue
			}
			kept = append(kept, p)
		}
		if !found {
			return fmt.Errorf("product with ID %s: %w", id, ErrNotFound)
		}

		state.Products = kept
		return nil
	})
}

// newProductID returns a time-based product ID, unique within a session.
func newProductID() string {
	return fmt.Sprintf("p%d", time.Now().UnixNano())
}
