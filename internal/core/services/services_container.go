package services

import (
	portsrepo "github.com/SscSPs/fxdeals_warehouse/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fxdeals_warehouse/internal/core/ports/services"
	"github.com/SscSPs/fxdeals_warehouse/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	validator := NewDealValidationService(
		WithMaxDealAmount(cfg.MaxDealAmount),
		WithMaxDealAgeYears(cfg.MaxDealAgeYears),
	)

	return &portssvc.ServiceContainer{
		DealValidator: validator,
		Deal: NewDealService(
			repos.DealRepo,
			validator,
			WithImportWorkers(cfg.ImportWorkers),
		),
	}
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.DealSvcFacade    = (*DealService)(nil)
	_ portssvc.DealValidatorSvc = (*DealValidationService)(nil)
)
