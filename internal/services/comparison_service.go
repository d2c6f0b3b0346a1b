package services

import (
	"lumina/internal/models"
	"lumina/internal/store"
)

// ComparisonCapacity is the maximum number of products that can be compared
// side by side.
const ComparisonCapacity = 3

// ComparisonService handles the bounded working set of product IDs selected
// for side-by-side comparison.
type ComparisonService struct {
	store *store.Store
}

// NewComparisonService creates a new ComparisonService.
func NewComparisonService(st *store.Store) *ComparisonService {
	return &ComparisonService{store: st}
}

// Toggle removes the product from the comparison list if present, otherwise
// appends it while the list is below capacity. A toggle-on at capacity is
// silently ignored; toggle-off always works. Returns the resulting list.
func (s *ComparisonService) Toggle(productID string) ([]string, error) {
	var list []string
	err := s.store.Update("comparison.toggle", func(state *models.AppState) error {
		present := false
		for _, id := range state.ComparisonList {
			if id == productID {
				present = true
				break
			}
		}

		switch {
		case present:
			kept := state.ComparisonList[:0]
			for _, id := range state.ComparisonList {
				if id != productID {
					kept = append(kept, id)
				}
			}
			state.ComparisonList = kept
		case len(state.ComparisonList) < ComparisonCapacity:
			state.ComparisonList = append(state.ComparisonList, productID)
		}

		list = append([]string{}, state.ComparisonList...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return list, nil
}

// List returns the current comparison list in insertion order.
func (s *ComparisonService) List() []string {
	return s.store.Current().ComparisonList
}

// Products resolves the comparison list against the catalog, filtering out
// IDs whose product has been deleted.
func (s *ComparisonService) Products() []models.Product {
	state := s.store.Current()
	products := make([]models.Product, 0, len(state.ComparisonList))
	for _, id := range state.ComparisonList {
		if p := state.ProductByID(id); p != nil {
			products = append(products, *p)
		}
	}
	return products
}

// Clear empties the comparison list.
func (s *ComparisonService) Clear() error {
	return s.store.Update("comparison.clear", func(state *models.AppState) error {
		state.ComparisonList = []string{}
		return nil
	})
}
