package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/SscSPs/fxdeals_warehouse/internal/apperrors"
	"github.com/SscSPs/fxdeals_warehouse/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDeal(id string) domain.NewDeal {
	return domain.NewDeal{
		DealUniqueID:        id,
		FromCurrencyISOCode: "USD",
		ToCurrencyISOCode:   "EUR",
		DealTimestamp:       time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
		DealAmount:          decimal.RequireFromString("100.5"),
	}
}

func TestDealRepository_SaveAndFind(t *testing.T) {
	repo := NewDealRepository()
	ctx := context.Background()

	saved, err := repo.SaveDeal(ctx, newDeal("A"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), saved.ID)
	assert.False(t, saved.CreatedAt.IsZero())

	exists, err := repo.ExistsByDealUniqueID(ctx, "A")
	require.NoError(t, err)
	assert.True(t, exists)

	found, err := repo.FindDealByUniqueID(ctx, "A")
	require.NoError(t, err)
	assert.Equal(t, *saved, *found)
}

func TestDealRepository_FindDealByUniqueID_NotFound(t *testing.T) {
	repo := NewDealRepository()

	_, err := repo.FindDealByUniqueID(context.Background(), "missing")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestDealRepository_SaveDeal_Duplicate(t *testing.T) {
	repo := NewDealRepository()
	ctx := context.Background()

	_, err := repo.SaveDeal(ctx, newDeal("A"))
	require.NoError(t, err)

	_, err = repo.SaveDeal(ctx, newDeal("A"))
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)

	all, err := repo.ListDeals(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestDealRepository_SaveDeal_CancelledContext(t *testing.T) {
	repo := NewDealRepository()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.SaveDeal(ctx, newDeal("A"))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDealRepository_FindDealsByUniqueIDs(t *testing.T) {
	repo := NewDealRepository()
	ctx := context.Background()
	for _, id := range []string{"A", "B", "C"} {
		_, err := repo.SaveDeal(ctx, newDeal(id))
		require.NoError(t, err)
	}

	found, err := repo.FindDealsByUniqueIDs(ctx, []string{"C", "X", "A", "C"})
	require.NoError(t, err)
	require.Len(t, found, 2)
	assert.Equal(t, "C", found[0].DealUniqueID)
	assert.Equal(t, "A", found[1].DealUniqueID)
}

func TestDealRepository_ListDeals_ReturnsCopy(t *testing.T) {
	repo := NewDealRepository()
	ctx := context.Background()
	_, err := repo.SaveDeal(ctx, newDeal("A"))
	require.NoError(t, err)

	all, err := repo.ListDeals(ctx)
	require.NoError(t, err)
	all[0].DealUniqueID = "changed"

	again, err := repo.ListDeals(ctx)
	require.NoError(t, err)
	assert.Equal(t, "A", again[0].DealUniqueID)
}

func TestDealRepository_ConcurrentSaves(t *testing.T) {
	repo := NewDealRepository()
	ctx := context.Background()

	var wg sync.WaitGroup
	errs := make(chan error, 100)
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			// Every id is written twice; exactly one write per id may succeed.
			if _, err := repo.SaveDeal(ctx, newDeal(fmt.Sprintf("D-%d", i%50))); err != nil {
				errs <- err
			}
		}(i)
	}
	wg.Wait()
	close(errs)

	failures := 0
	for err := range errs {
		assert.ErrorIs(t, err, apperrors.ErrDuplicate)
		failures++
	}
	assert.Equal(t, 50, failures)

	all, err := repo.ListDeals(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 50)
}
