package repositories

import (
	"context"

	"github.com/SscSPs/fxdeals_warehouse/internal/core/domain"
)

// DealReader defines read operations for stored deals
type DealReader interface {
	// ExistsByDealUniqueID reports whether a deal with this identifier is already stored.
	ExistsByDealUniqueID(ctx context.Context, dealUniqueID string) (bool, error)

	// FindDealByUniqueID returns apperrors.ErrNotFound when no deal has this identifier.
	FindDealByUniqueID(ctx context.Context, dealUniqueID string) (*domain.Deal, error)

	// FindDealsByUniqueIDs returns the stored deals among the given identifiers.
	FindDealsByUniqueIDs(ctx context.Context, dealUniqueIDs []string) ([]domain.Deal, error)

	// ListDeals returns every stored deal.
	ListDeals(ctx context.Context) ([]domain.Deal, error)
}

// DealWriter defines write operations for deals
type DealWriter interface {
	// SaveDeal persists one deal as its own unit of work and returns it with
	// the store-assigned id and creation timestamp. A unique-constraint
	// violation is reported wrapped with apperrors.ErrDuplicate.
	SaveDeal(ctx context.Context, deal domain.NewDeal) (*domain.Deal, error)
}

// DealRepositoryFacade combines all deal-related repository interfaces
type DealRepositoryFacade interface {
	DealReader
	DealWriter
}

// DealRepositoryWithTx extends DealRepositoryFacade with transaction capabilities
type DealRepositoryWithTx interface {
	DealRepositoryFacade
	TransactionManager
}
