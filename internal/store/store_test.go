package store_test

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"lumina/internal/models"
	"lumina/internal/storage"
	"lumina/internal/store"
)

// MockStorage is a mock implementation of storage.Storage.
type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) Load() (*models.AppState, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AppState), args.Error(1)
}

func (m *MockStorage) Save(state *models.AppState) error {
	args := m.Called(state)
	return args.Error(0)
}

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func TestLoadSeedsWhenNothingIsPersisted(t *testing.T) {
	s := store.New(storage.NewMemoryStorage())
	require.NoError(t, s.Load())

	state := s.Current()
	assert.Len(t, state.Users, 2)
	assert.Len(t, state.Categories, 3)
	assert.Len(t, state.Subcategories, 3)
	assert.Len(t, state.Products, 3)
	assert.Nil(t, state.CurrentUser)
	assert.Empty(t, state.Orders)
	assert.Empty(t, state.Cart)
	assert.Empty(t, state.ComparisonList)
}

func TestCommitRoundTripsThroughStorage(t *testing.T) {
	mem := storage.NewMemoryStorage()

	s := store.New(mem)
	require.NoError(t, s.Load())

	state := s.Current()
	state.Cart = append(state.Cart, models.CartItem{ProductID: "p1", Quantity: 2})
	state.ComparisonList = append(state.ComparisonList, "p3")
	require.NoError(t, s.Commit(state, "test.mutate"))

	// A second store over the same storage observes a deep-equal snapshot.
	reloaded := store.New(mem)
	require.NoError(t, reloaded.Load())
	assert.Equal(t, s.Current(), reloaded.Current())
}

func TestLoadFallsBackToSeedOnCorruptSnapshot(t *testing.T) {
	mem := storage.NewMemoryStorage()
	mem.SetRaw([]byte("{this is not json"))

	s := store.New(mem)
	require.NoError(t, s.Load())
	assert.Equal(t, store.Seed(), s.Current())

	// The fallback also repairs the persisted blob.
	state, err := mem.Load()
	require.NoError(t, err)
	assert.Equal(t, store.Seed(), state)
}

func TestLoadPropagatesNonCorruptErrors(t *testing.T) {
	mockStorage := new(MockStorage)
	mockStorage.On("Load").Return(nil, fmt.Errorf("connection refused")).Once()

	s := store.New(mockStorage)
	err := s.Load()
	assert.Error(t, err)

	// A transient read failure must not overwrite the persisted snapshot
	// with seed data.
	mockStorage.AssertNotCalled(t, "Save", mock.Anything)
	mockStorage.AssertExpectations(t)
}

func TestUpdateSerializesConcurrentMutations(t *testing.T) {
	s := store.New(storage.NewMemoryStorage())
	require.NoError(t, s.Load())

	const writers = 50
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			err := s.Update("test.append", func(state *models.AppState) error {
				state.Cart = append(state.Cart, models.CartItem{
					ProductID: fmt.Sprintf("p%d", n),
					Quantity:  1,
				})
				return nil
			})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	// Every writer's line survives; no update may start from a stale base.
	assert.Len(t, s.Current().Cart, writers)
}

func TestUpdateRollsBackOnMutationError(t *testing.T) {
	s := store.New(storage.NewMemoryStorage())
	require.NoError(t, s.Load())

	var notified int
	unsubscribe := s.Subscribe(func(store.Event) { notified++ })
	defer unsubscribe()

	wantErr := fmt.Errorf("nothing to do")
	err := s.Update("test.fail", func(state *models.AppState) error {
		state.Cart = append(state.Cart, models.CartItem{ProductID: "p1", Quantity: 1})
		return wantErr
	})
	assert.ErrorIs(t, err, wantErr)
	assert.Empty(t, s.Current().Cart)
	assert.Zero(t, notified)
}

func TestCurrentReturnsAnIsolatedCopy(t *testing.T) {
	s := store.New(storage.NewMemoryStorage())
	require.NoError(t, s.Load())

	first := s.Current()
	first.Products[0].Name = "Mutated"
	first.Cart = append(first.Cart, models.CartItem{ProductID: "p1", Quantity: 1})

	second := s.Current()
	assert.Equal(t, "Lumina X Pro", second.Products[0].Name)
	assert.Empty(t, second.Cart)
}

func TestCommitKeepsSnapshotWhenPersistenceFails(t *testing.T) {
	mockStorage := new(MockStorage)
	mockStorage.On("Load").Return(nil, nil).Once()
	mockStorage.On("Save", mock.Anything).Return(nil).Once() // the seed persist

	s := store.New(mockStorage)
	require.NoError(t, s.Load())

	mockStorage.On("Save", mock.Anything).Return(fmt.Errorf("disk full")).Once()

	next := s.Current()
	next.ComparisonList = append(next.ComparisonList, "p1")
	err := s.Commit(next, "comparison.toggle")
	assert.Error(t, err)
	// The failed commit must not replace the current snapshot.
	assert.Empty(t, s.Current().ComparisonList)
	mockStorage.AssertExpectations(t)
}

func TestSubscribersAreNotifiedOnCommit(t *testing.T) {
	s := store.New(storage.NewMemoryStorage())
	require.NoError(t, s.Load())

	var events []store.Event
	unsubscribe := s.Subscribe(func(ev store.Event) {
		events = append(events, ev)
	})

	require.NoError(t, s.Commit(s.Current(), "test.first"))
	require.Len(t, events, 1)
	assert.Equal(t, "test.first", events[0].Op)
	assert.False(t, events[0].At.IsZero())

	unsubscribe()
	require.NoError(t, s.Commit(s.Current(), "test.second"))
	assert.Len(t, events, 1)
}
