package services_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lumina/internal/services"
)

func TestCartService_AddMergesQuantities(t *testing.T) {
	st := newTestStore(t)
	cart := services.NewCartService(st)

	require.NoError(t, cart.Add("p1", 2))
	require.NoError(t, cart.Add("p1", 3))

	state := st.Current()
	require.Len(t, state.Cart, 1)
	assert.Equal(t, "p1", state.Cart[0].ProductID)
	assert.Equal(t, 5, state.Cart[0].Quantity)
}

func TestCartService_ConcurrentAddsAllMerge(t *testing.T) {
	st := newTestStore(t)
	cart := services.NewCartService(st)

	// Simultaneous adds of the same product must serialize; none may clobber
	// another's commit.
	const adds = 20
	var wg sync.WaitGroup
	for i := 0; i < adds; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, cart.Add("p1", 1))
		}()
	}
	wg.Wait()

	state := st.Current()
	require.Len(t, state.Cart, 1)
	assert.Equal(t, adds, state.Cart[0].Quantity)
}

func TestCartService_AddRejectsInvalidQuantity(t *testing.T) {
	st := newTestStore(t)
	cart := services.NewCartService(st)

	err := cart.Add("p1", 0)
	assert.ErrorIs(t, err, services.ErrInvalidQuantity)

	err = cart.Add("p1", -2)
	assert.ErrorIs(t, err, services.ErrInvalidQuantity)

	assert.Empty(t, st.Current().Cart)
}

func TestCartService_SubtotalUsesDiscountPrice(t *testing.T) {
	st := newTestStore(t)
	cart := services.NewCartService(st)

	// p1 is priced 999 with a 899 discount; the discount price wins.
	require.NoError(t, cart.Add("p1", 2))

	items := cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "Lumina X Pro", items[0].Name)
	assert.Equal(t, 899.0, items[0].UnitPrice)
	assert.Equal(t, 1798.0, items[0].LineTotal)
	assert.Equal(t, 1798.0, cart.Subtotal())
}

func TestCartService_SubtotalUsesListPriceWithoutDiscount(t *testing.T) {
	st := newTestStore(t)
	cart := services.NewCartService(st)

	// p2 has no discount price.
	require.NoError(t, cart.Add("p2", 1))
	assert.Equal(t, 699.0, cart.Subtotal())
}

func TestCartService_UpdateQuantity(t *testing.T) {
	st := newTestStore(t)
	cart := services.NewCartService(st)

	require.NoError(t, cart.Add("p1", 2))
	require.NoError(t, cart.UpdateQuantity("p1", 7))
	assert.Equal(t, 7, st.Current().Cart[0].Quantity)

	err := cart.UpdateQuantity("p1", 0)
	assert.ErrorIs(t, err, services.ErrInvalidQuantity)

	err = cart.UpdateQuantity("p99", 1)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestCartService_Remove(t *testing.T) {
	st := newTestStore(t)
	cart := services.NewCartService(st)

	require.NoError(t, cart.Add("p1", 1))
	require.NoError(t, cart.Add("p2", 1))
	require.NoError(t, cart.Remove("p1"))

	state := st.Current()
	require.Len(t, state.Cart, 1)
	assert.Equal(t, "p2", state.Cart[0].ProductID)

	err := cart.Remove("p1")
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestCartService_ItemsFilterDanglingLines(t *testing.T) {
	st := newTestStore(t)
	cart := services.NewCartService(st)
	products := services.NewProductService(st)

	require.NoError(t, cart.Add("p1", 1))
	require.NoError(t, cart.Add("p2", 1))
	require.NoError(t, products.Delete("p2"))

	// The dangling line stays in the raw cart but is filtered from the
	// resolved view.
	assert.Len(t, st.Current().Cart, 2)
	items := cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "p1", items[0].ProductID)
	assert.Equal(t, 899.0, cart.Subtotal())
}
