package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/fxdeals_warehouse/internal/apperrors"
	"github.com/SscSPs/fxdeals_warehouse/internal/core/domain"
	portsrepo "github.com/SscSPs/fxdeals_warehouse/internal/core/ports/repositories"
	"github.com/SscSPs/fxdeals_warehouse/internal/models"
	"github.com/SscSPs/fxdeals_warehouse/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolationCode = "23505"

const dealColumns = `id, deal_unique_id, from_currency_iso_code, to_currency_iso_code, deal_timestamp, deal_amount, created_at`

type PgxDealRepository struct {
	BaseRepository
}

// newPgxDealRepository creates a new repository for fx deals.
func newPgxDealRepository(pool *pgxpool.Pool) portsrepo.DealRepositoryWithTx {
	return &PgxDealRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.DealRepositoryWithTx = (*PgxDealRepository)(nil)

// SaveDeal inserts one deal in its own transaction.
func (r *PgxDealRepository) SaveDeal(ctx context.Context, deal domain.NewDeal) (*domain.Deal, error) {
	modelDeal := mapping.ToModelFxDeal(deal)

	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = r.Rollback(ctx, tx)
	}()

	query := `
		INSERT INTO fx_deals (deal_unique_id, from_currency_iso_code, to_currency_iso_code, deal_timestamp, deal_amount)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at;
	`
	err = tx.QueryRow(ctx, query,
		modelDeal.DealUniqueID,
		modelDeal.FromCurrencyISOCode,
		modelDeal.ToCurrencyISOCode,
		modelDeal.DealTimestamp,
		modelDeal.DealAmount,
	).Scan(&modelDeal.ID, &modelDeal.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return nil, fmt.Errorf("%w: deal with unique id %s already exists", apperrors.ErrDuplicate, modelDeal.DealUniqueID)
		}
		return nil, fmt.Errorf("failed to save deal %s: %w", modelDeal.DealUniqueID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	saved := mapping.ToDomainDeal(modelDeal)
	return &saved, nil
}

// ExistsByDealUniqueID reports whether the identifier is already stored.
func (r *PgxDealRepository) ExistsByDealUniqueID(ctx context.Context, dealUniqueID string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM fx_deals WHERE deal_unique_id = $1);`

	var exists bool
	if err := r.Pool.QueryRow(ctx, query, dealUniqueID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check deal %s: %w", dealUniqueID, err)
	}
	return exists, nil
}

// FindDealByUniqueID retrieves a deal by its unique id.
func (r *PgxDealRepository) FindDealByUniqueID(ctx context.Context, dealUniqueID string) (*domain.Deal, error) {
	query := `SELECT ` + dealColumns + ` FROM fx_deals WHERE deal_unique_id = $1;`

	var modelDeal models.FxDeal
	err := r.Pool.QueryRow(ctx, query, dealUniqueID).Scan(
		&modelDeal.ID,
		&modelDeal.DealUniqueID,
		&modelDeal.FromCurrencyISOCode,
		&modelDeal.ToCurrencyISOCode,
		&modelDeal.DealTimestamp,
		&modelDeal.DealAmount,
		&modelDeal.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find deal %s: %w", dealUniqueID, err)
	}

	deal := mapping.ToDomainDeal(modelDeal)
	return &deal, nil
}

// FindDealsByUniqueIDs retrieves the stored deals among dealUniqueIDs.
func (r *PgxDealRepository) FindDealsByUniqueIDs(ctx context.Context, dealUniqueIDs []string) ([]domain.Deal, error) {
	if len(dealUniqueIDs) == 0 {
		return []domain.Deal{}, nil
	}
	query := `SELECT ` + dealColumns + ` FROM fx_deals WHERE deal_unique_id = ANY($1) ORDER BY id;`
	return r.queryDeals(ctx, query, dealUniqueIDs)
}

// ListDeals retrieves all deals in insertion order.
func (r *PgxDealRepository) ListDeals(ctx context.Context) ([]domain.Deal, error) {
	query := `SELECT ` + dealColumns + ` FROM fx_deals ORDER BY id;`
	return r.queryDeals(ctx, query)
}

func (r *PgxDealRepository) queryDeals(ctx context.Context, query string, args ...any) ([]domain.Deal, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query deals: %w", err)
	}
	defer rows.Close()

	modelDeals, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.FxDeal, error) {
		var deal models.FxDeal
		err := row.Scan(
			&deal.ID,
			&deal.DealUniqueID,
			&deal.FromCurrencyISOCode,
			&deal.ToCurrencyISOCode,
			&deal.DealTimestamp,
			&deal.DealAmount,
			&deal.CreatedAt,
		)
		return deal, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan deals: %w", err)
	}

	return mapping.ToDomainDealSlice(modelDeals), nil
}
