package services_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lumina/internal/models"
	"lumina/internal/services"
)

func TestProductService_Create(t *testing.T) {
	st := newTestStore(t)
	products := services.NewProductService(st)

	created, err := products.Create(models.Product{
		SubCategoryID: "sub2",
		Name:          "Nova Tab",
		Description:   "A tablet for everything.",
		Price:         499,
		Stock:         30,
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(created.ID, "p"))

	state := st.Current()
	require.Len(t, state.Products, 4)
	assert.Equal(t, created.ID, state.Products[3].ID)
}

func TestProductService_CreateRejectsBadPricing(t *testing.T) {
	st := newTestStore(t)
	products := services.NewProductService(st)

	_, err := products.Create(models.Product{Name: "Freebie", Price: 0, Stock: 1})
	assert.Error(t, err)

	// Discount above the list price is rejected.
	_, err = products.Create(models.Product{
		Name:          "Bad Deal",
		Price:         100,
		DiscountPrice: 150,
		Stock:         1,
	})
	assert.Error(t, err)

	assert.Len(t, st.Current().Products, 3)
}

func TestProductService_UpdateMergesPartialFields(t *testing.T) {
	st := newTestStore(t)
	products := services.NewProductService(st)

	price := 949.0
	updated, err := products.Update("p1", services.ProductPatch{Price: &price})
	require.NoError(t, err)
	assert.Equal(t, 949.0, updated.Price)
	// Untouched fields survive.
	assert.Equal(t, "Lumina X Pro", updated.Name)
	assert.Equal(t, 899.0, updated.DiscountPrice)

	stored, err := products.GetByID("p1")
	require.NoError(t, err)
	assert.Equal(t, 949.0, stored.Price)
}

func TestProductService_UpdateUnknownID(t *testing.T) {
	st := newTestStore(t)
	products := services.NewProductService(st)

	name := "Ghost"
	_, err := products.Update("p99", services.ProductPatch{Name: &name})
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestProductService_Delete(t *testing.T) {
	st := newTestStore(t)
	products := services.NewProductService(st)

	require.NoError(t, products.Delete("p2"))
	assert.Len(t, st.Current().Products, 2)

	_, err := products.GetByID("p2")
	assert.ErrorIs(t, err, services.ErrNotFound)

	err = products.Delete("p2")
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestProductService_DeleteDoesNotCascade(t *testing.T) {
	st := newTestStore(t)
	products := services.NewProductService(st)
	comparison := services.NewComparisonService(st)

	_, err := comparison.Toggle("p2")
	require.NoError(t, err)
	require.NoError(t, products.Delete("p2"))

	// The raw comparison list keeps the dangling ID; the resolved view
	// filters it.
	assert.Equal(t, []string{"p2"}, comparison.List())
	assert.Empty(t, comparison.Products())
}

func TestProductService_Search(t *testing.T) {
	st := newTestStore(t)
	products := services.NewProductService(st)

	matches := products.Search("LUMINA")
	require.Len(t, matches, 1)
	assert.Equal(t, "p1", matches[0].ID)

	assert.Len(t, products.Search("a"), 3)

	// No matches must serialize as [] rather than null.
	none := products.Search("zzz")
	assert.NotNil(t, none)
	assert.Empty(t, none)
}
