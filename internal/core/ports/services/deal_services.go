package services

import (
	"context"

	"github.com/SscSPs/fxdeals_warehouse/internal/core/domain"
	"github.com/SscSPs/fxdeals_warehouse/internal/dto"
)

// DealValidatorSvc checks deals against the structural and business rules.
type DealValidatorSvc interface {
	// ValidateDeal returns every violation found on deal; an empty slice means valid.
	ValidateDeal(ctx context.Context, deal *dto.DealRequest) []string

	// ValidateDeals returns one "record[i] (id): violation" entry per violation per deal.
	ValidateDeals(ctx context.Context, deals []*dto.DealRequest) []string
}

// DealImporterSvc defines write operations for deals
type DealImporterSvc interface {
	// ImportDeal validates, de-duplicates and stores one deal.
	// Errors are *apperrors.ImportError values.
	ImportDeal(ctx context.Context, req *dto.DealRequest) (*domain.Deal, error)

	// ImportDeals imports each deal independently. Only an empty batch fails as a whole.
	ImportDeals(ctx context.Context, reqs []*dto.DealRequest) (domain.BatchResult, error)

	// CheckDeals validates a batch without storing it and lists ids that are already stored.
	CheckDeals(ctx context.Context, reqs []*dto.DealRequest) (violations []string, alreadyStored []string, err error)
}

// DealReaderSvc defines read operations for stored deals
type DealReaderSvc interface {
	// ListDeals returns all stored deals.
	ListDeals(ctx context.Context) ([]domain.Deal, error)

	// GetDealByUniqueID returns found=false when no deal has this identifier.
	GetDealByUniqueID(ctx context.Context, dealUniqueID string) (deal *domain.Deal, found bool, err error)
}

// DealSvcFacade combines all deal-related service interfaces
type DealSvcFacade interface {
	DealImporterSvc
	DealReaderSvc
}
