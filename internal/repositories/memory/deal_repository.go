// Package memory holds an in-process deal store used by tests and by
// STORAGE_DRIVER=memory.
package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/SscSPs/fxdeals_warehouse/internal/apperrors"
	"github.com/SscSPs/fxdeals_warehouse/internal/core/domain"
	portsrepo "github.com/SscSPs/fxdeals_warehouse/internal/core/ports/repositories"
)

// DealRepository keeps deals in insertion order, indexed by unique id.
type DealRepository struct {
	mu     sync.RWMutex
	deals  []domain.Deal
	byID   map[string]int
	nextID int64
	now    func() time.Time
}

// NewDealRepository creates an empty store.
func NewDealRepository() *DealRepository {
	return &DealRepository{
		byID:   make(map[string]int),
		nextID: 1,
		now:    time.Now,
	}
}

var _ portsrepo.DealRepositoryFacade = (*DealRepository)(nil)

// NewRepositoryProvider wires a fresh in-memory store into a provider.
func NewRepositoryProvider() portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		DealRepo: NewDealRepository(),
	}
}

func (r *DealRepository) SaveDeal(ctx context.Context, deal domain.NewDeal) (*domain.Deal, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("failed to save deal %s: %w", deal.DealUniqueID, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[deal.DealUniqueID]; exists {
		return nil, fmt.Errorf("deal %s: %w", deal.DealUniqueID, apperrors.ErrDuplicate)
	}

	stored := domain.Deal{
		ID:                  r.nextID,
		DealUniqueID:        deal.DealUniqueID,
		FromCurrencyISOCode: deal.FromCurrencyISOCode,
		ToCurrencyISOCode:   deal.ToCurrencyISOCode,
		DealTimestamp:       deal.DealTimestamp,
		DealAmount:          deal.DealAmount,
		CreatedAt:           r.now().UTC(),
	}
	r.nextID++
	r.byID[stored.DealUniqueID] = len(r.deals)
	r.deals = append(r.deals, stored)

	return &stored, nil
}

func (r *DealRepository) ExistsByDealUniqueID(ctx context.Context, dealUniqueID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.byID[dealUniqueID]
	return exists, nil
}

func (r *DealRepository) FindDealByUniqueID(ctx context.Context, dealUniqueID string) (*domain.Deal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx, exists := r.byID[dealUniqueID]
	if !exists {
		return nil, apperrors.ErrNotFound
	}
	deal := r.deals[idx]
	return &deal, nil
}

func (r *DealRepository) FindDealsByUniqueIDs(ctx context.Context, dealUniqueIDs []string) ([]domain.Deal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	found := make([]domain.Deal, 0)
	seen := make(map[string]struct{}, len(dealUniqueIDs))
	for _, id := range dealUniqueIDs {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if idx, exists := r.byID[id]; exists {
			found = append(found, r.deals[idx])
		}
	}
	return found, nil
}

func (r *DealRepository) ListDeals(ctx context.Context) ([]domain.Deal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	deals := make([]domain.Deal, len(r.deals))
	copy(deals, r.deals)
	return deals, nil
}
