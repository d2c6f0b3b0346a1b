package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lumina/internal/services"
)

func TestComparisonService_ToggleOnAndOff(t *testing.T) {
	st := newTestStore(t)
	comparison := services.NewComparisonService(st)

	list, err := comparison.Toggle("p1")
	require.NoError(t, err)
	assert.Equal(t, []string{"p1"}, list)

	list, err = comparison.Toggle("p1")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestComparisonService_CapacityIsThree(t *testing.T) {
	st := newTestStore(t)
	comparison := services.NewComparisonService(st)

	for _, id := range []string{"p1", "p2", "p3"} {
		_, err := comparison.Toggle(id)
		require.NoError(t, err)
	}

	// The fourth toggle-on is silently ignored.
	list, err := comparison.Toggle("p4")
	require.NoError(t, err)
	assert.Equal(t, []string{"p1", "p2", "p3"}, list)

	// Toggle-off still works at capacity.
	list, err = comparison.Toggle("p2")
	require.NoError(t, err)
	assert.Equal(t, []string{"p1", "p3"}, list)
}

func TestComparisonService_Clear(t *testing.T) {
	st := newTestStore(t)
	comparison := services.NewComparisonService(st)

	_, err := comparison.Toggle("p1")
	require.NoError(t, err)
	_, err = comparison.Toggle("p2")
	require.NoError(t, err)

	require.NoError(t, comparison.Clear())
	assert.Empty(t, comparison.List())
}

func TestComparisonService_ProductsResolveInOrder(t *testing.T) {
	st := newTestStore(t)
	comparison := services.NewComparisonService(st)

	_, err := comparison.Toggle("p3")
	require.NoError(t, err)
	_, err = comparison.Toggle("p1")
	require.NoError(t, err)

	products := comparison.Products()
	require.Len(t, products, 2)
	assert.Equal(t, "p3", products[0].ID)
	assert.Equal(t, "p1", products[1].ID)
}
