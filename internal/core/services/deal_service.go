package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/fxdeals_warehouse/internal/apperrors"
	"github.com/SscSPs/fxdeals_warehouse/internal/core/domain"
	portsrepo "github.com/SscSPs/fxdeals_warehouse/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fxdeals_warehouse/internal/core/ports/services"
	"github.com/SscSPs/fxdeals_warehouse/internal/dto"
	"github.com/SscSPs/fxdeals_warehouse/internal/metrics"
	"github.com/SscSPs/fxdeals_warehouse/internal/utils"
	"golang.org/x/sync/errgroup"
)

const (
	emptyBatchViolation    = "deals list cannot be null or empty"
	inBatchDuplicateReason = "duplicate deal id in the same batch"
	unknownDealLabel       = "unknown"
)

// DealService imports deals one unit of work at a time and reads them back.
type DealService struct {
	BaseService
	dealRepo  portsrepo.DealRepositoryFacade
	validator portssvc.DealValidatorSvc
	workers   int
}

// DealServiceOption configures a DealService.
type DealServiceOption func(*DealService)

// WithImportWorkers sets how many deals of a batch may be imported at once.
func WithImportWorkers(workers int) DealServiceOption {
	return func(s *DealService) {
		if workers > 0 {
			s.workers = workers
		}
	}
}

// NewDealService creates a new DealService.
func NewDealService(dealRepo portsrepo.DealRepositoryFacade, validator portssvc.DealValidatorSvc, opts ...DealServiceOption) *DealService {
	s := &DealService{
		dealRepo:  dealRepo,
		validator: validator,
		workers:   1,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ImportDeal validates req, rejects an identifier that is already stored and
// persists the normalized deal. Nothing is written unless every check passes.
func (s *DealService) ImportDeal(ctx context.Context, req *dto.DealRequest) (*domain.Deal, error) {
	start := time.Now()
	defer func() { metrics.ImportLatency.Observe(time.Since(start).Seconds()) }()

	dealID := dealUniqueID(req)
	s.LogInfo(ctx, "Importing deal", slog.String("deal_unique_id", dealID))

	if violations := s.validator.ValidateDeal(ctx, req); len(violations) > 0 {
		s.LogWarn(ctx, "Rejected invalid deal",
			slog.String("deal_unique_id", dealID),
			slog.String("violations", strings.Join(violations, "; ")))
		metrics.RecordDeal(metrics.OutcomeInvalid)
		return nil, apperrors.NewValidationError(dealID, violations)
	}

	newDeal := toNewDeal(req)

	exists, err := s.dealRepo.ExistsByDealUniqueID(ctx, newDeal.DealUniqueID)
	if err != nil {
		s.LogError(ctx, err, "Failed to check for existing deal", slog.String("deal_unique_id", newDeal.DealUniqueID))
		metrics.RecordDeal(metrics.OutcomeFailed)
		return nil, apperrors.NewPersistenceError(newDeal.DealUniqueID, err)
	}
	if exists {
		s.LogWarn(ctx, "Deal already exists, skipping import", slog.String("deal_unique_id", newDeal.DealUniqueID))
		metrics.RecordDeal(metrics.OutcomeDuplicate)
		return nil, apperrors.NewDuplicateError(newDeal.DealUniqueID)
	}

	saved, err := s.dealRepo.SaveDeal(ctx, newDeal)
	if err != nil {
		s.LogError(ctx, err, "Failed to save deal", slog.String("deal_unique_id", newDeal.DealUniqueID))
		metrics.RecordDeal(metrics.OutcomeFailed)
		return nil, apperrors.NewPersistenceError(newDeal.DealUniqueID, err)
	}

	s.LogInfo(ctx, "Deal imported",
		slog.String("deal_unique_id", saved.DealUniqueID),
		slog.Int64("id", saved.ID),
		slog.String("amount", utils.FormatAmount(saved.DealAmount, maxDealAmountScale)))
	metrics.RecordDeal(metrics.OutcomeImported)
	return saved, nil
}

// ImportDeals imports every record of the batch independently and folds the
// outcomes, in input order, into a BatchResult. Records sharing an identifier
// are imported sequentially in input order; once one of them is stored the
// later ones are reported as in-batch duplicates without touching the store.
func (s *DealService) ImportDeals(ctx context.Context, reqs []*dto.DealRequest) (domain.BatchResult, error) {
	if len(reqs) == 0 {
		s.LogWarn(ctx, "Rejected empty deal batch")
		return domain.NewBatchResult(0), apperrors.NewValidationError("", []string{emptyBatchViolation})
	}

	s.LogInfo(ctx, "Starting bulk import", slog.Int("count", len(reqs)), slog.Int("workers", s.workers))
	metrics.BatchesProcessed.Inc()
	metrics.BatchSize.Observe(float64(len(reqs)))

	outcomes := make([]domain.RecordOutcome, len(reqs))

	var g errgroup.Group
	g.SetLimit(s.workers)
	for _, indexes := range groupByDealUniqueID(reqs) {
		g.Go(func() error {
			committed := false
			for _, i := range indexes {
				if committed {
					outcomes[i] = s.inBatchDuplicate(ctx, i, reqs[i])
					continue
				}
				outcomes[i] = s.importRecord(ctx, i, reqs[i])
				committed = outcomes[i].Kind == domain.OutcomeImported
			}
			return nil
		})
	}
	// Workers never return an error; every failure is recorded as an outcome.
	_ = g.Wait()

	result := domain.Fold(len(reqs), outcomes)

	s.LogInfo(ctx, "Bulk import completed",
		slog.Int("total", result.TotalReceived),
		slog.Int("imported", result.Imported),
		slog.Int("duplicates", result.Duplicates),
		slog.Int("failed", result.Failed))
	return result, nil
}

// importRecord runs one unit of work and classifies its outcome.
func (s *DealService) importRecord(ctx context.Context, index int, req *dto.DealRequest) domain.RecordOutcome {
	deal, err := s.ImportDeal(ctx, req)
	if err == nil {
		s.LogDebug(ctx, "Imported batch record", slog.Int("index", index), slog.String("deal_unique_id", deal.DealUniqueID))
		return domain.RecordOutcome{Index: index, Kind: domain.OutcomeImported, Deal: deal}
	}

	kind, ok := apperrors.KindOf(err)
	switch {
	case ok && kind == apperrors.KindDuplicate:
		return domain.RecordOutcome{Index: index, Kind: domain.OutcomeDuplicate, Error: formatRecordError(index, req, err.Error())}
	case ok && kind == apperrors.KindValidation:
		return domain.RecordOutcome{Index: index, Kind: domain.OutcomeFailed, Error: formatRecordError(index, req, err.Error())}
	default:
		s.LogError(ctx, err, "Unexpected error importing batch record", slog.Int("index", index))
		return domain.RecordOutcome{Index: index, Kind: domain.OutcomeFailed, Error: formatRecordError(index, req, "unexpected error - "+err.Error())}
	}
}

func (s *DealService) inBatchDuplicate(ctx context.Context, index int, req *dto.DealRequest) domain.RecordOutcome {
	msg := formatRecordError(index, req, inBatchDuplicateReason)
	s.LogWarn(ctx, "Duplicate deal id in batch", slog.Int("index", index), slog.String("deal_unique_id", dealUniqueID(req)))
	metrics.RecordDeal(metrics.OutcomeDuplicateInBatch)
	return domain.RecordOutcome{Index: index, Kind: domain.OutcomeFailed, Error: msg}
}

// CheckDeals is a dry run of ImportDeals: it validates the batch and lists
// the identifiers that are already stored, without writing anything.
func (s *DealService) CheckDeals(ctx context.Context, reqs []*dto.DealRequest) ([]string, []string, error) {
	violations := s.validator.ValidateDeals(ctx, reqs)
	if len(reqs) == 0 {
		return violations, []string{}, nil
	}

	ids := make([]string, 0, len(reqs))
	for _, req := range reqs {
		if id := dealUniqueID(req); strings.TrimSpace(id) != "" {
			ids = append(ids, strings.TrimSpace(id))
		}
	}
	stored, err := s.dealRepo.FindDealsByUniqueIDs(ctx, ids)
	if err != nil {
		s.LogError(ctx, err, "Failed to look up stored deals")
		return nil, nil, fmt.Errorf("failed to check stored deals in service: %w", err)
	}

	alreadyStored := make([]string, len(stored))
	for i, d := range stored {
		alreadyStored[i] = d.DealUniqueID
	}
	return violations, alreadyStored, nil
}

// ListDeals returns every stored deal.
func (s *DealService) ListDeals(ctx context.Context) ([]domain.Deal, error) {
	s.LogDebug(ctx, "Retrieving all deals")
	deals, err := s.dealRepo.ListDeals(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list deals")
		return nil, fmt.Errorf("failed to list deals in service: %w", err)
	}
	if deals == nil {
		return []domain.Deal{}, nil
	}
	return deals, nil
}

// GetDealByUniqueID returns found=false rather than an error when the deal does not exist.
func (s *DealService) GetDealByUniqueID(ctx context.Context, id string) (*domain.Deal, bool, error) {
	s.LogDebug(ctx, "Retrieving deal", slog.String("deal_unique_id", id))
	deal, err := s.dealRepo.FindDealByUniqueID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, false, nil
		}
		s.LogError(ctx, err, "Failed to get deal", slog.String("deal_unique_id", id))
		return nil, false, fmt.Errorf("failed to get deal in service: %w", err)
	}
	return deal, true, nil
}

// groupByDealUniqueID returns record indexes grouped by identifier, groups
// ordered by first appearance. Nil records each get their own group.
func groupByDealUniqueID(reqs []*dto.DealRequest) [][]int {
	groups := make([][]int, 0, len(reqs))
	position := make(map[string]int, len(reqs))
	for i, req := range reqs {
		if req == nil {
			groups = append(groups, []int{i})
			continue
		}
		if g, ok := position[req.DealUniqueID]; ok {
			groups[g] = append(groups[g], i)
			continue
		}
		position[req.DealUniqueID] = len(groups)
		groups = append(groups, []int{i})
	}
	return groups
}

func toNewDeal(req *dto.DealRequest) domain.NewDeal {
	return domain.NewDeal{
		DealUniqueID:        strings.TrimSpace(req.DealUniqueID),
		FromCurrencyISOCode: normalizeCurrencyCode(req.FromCurrencyISOCode),
		ToCurrencyISOCode:   normalizeCurrencyCode(req.ToCurrencyISOCode),
		DealTimestamp:       *req.DealTimestamp,
		DealAmount:          *req.DealAmount,
	}
}

func dealUniqueID(req *dto.DealRequest) string {
	if req == nil {
		return ""
	}
	return req.DealUniqueID
}

// formatRecordError tags a message with the record's batch position and identifier.
func formatRecordError(index int, req *dto.DealRequest, msg string) string {
	label := dealUniqueID(req)
	if label == "" {
		label = unknownDealLabel
	}
	return fmt.Sprintf("record[%d] (%s): %s", index, label, msg)
}
