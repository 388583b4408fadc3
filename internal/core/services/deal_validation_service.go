package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/fxdeals_warehouse/internal/core/domain"
	"github.com/SscSPs/fxdeals_warehouse/internal/dto"
	"github.com/SscSPs/fxdeals_warehouse/internal/validation"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

const (
	maxDealUniqueIDLength = 100
	maxDealAmountScale    = 4
	defaultMaxDealAgeYrs  = 10
)

// DefaultMaxDealAmount is the largest accepted deal amount (one trillion).
var DefaultMaxDealAmount = decimal.New(1, 12)

// DealValidationService checks deals against the format and business rules.
// It holds no mutable state and never touches storage.
type DealValidationService struct {
	BaseService
	validate      *validator.Validate
	now           func() time.Time
	maxAmount     decimal.Decimal
	maxAgeInYears int
}

// DealValidationOption configures a DealValidationService.
type DealValidationOption func(*DealValidationService)

// WithClock overrides the time source used for the timestamp rules.
func WithClock(now func() time.Time) DealValidationOption {
	return func(s *DealValidationService) {
		s.now = now
	}
}

// WithMaxDealAmount overrides the amount ceiling.
func WithMaxDealAmount(max decimal.Decimal) DealValidationOption {
	return func(s *DealValidationService) {
		if max.IsPositive() {
			s.maxAmount = max
		}
	}
}

// WithMaxDealAgeYears overrides how far in the past a deal timestamp may be.
func WithMaxDealAgeYears(years int) DealValidationOption {
	return func(s *DealValidationService) {
		if years > 0 {
			s.maxAgeInYears = years
		}
	}
}

// NewDealValidationService creates a new DealValidationService.
func NewDealValidationService(opts ...DealValidationOption) *DealValidationService {
	s := &DealValidationService{
		validate:      validation.New(),
		now:           time.Now,
		maxAmount:     DefaultMaxDealAmount,
		maxAgeInYears: defaultMaxDealAgeYrs,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ValidateDeal applies every rule independently and returns all violations.
func (s *DealValidationService) ValidateDeal(ctx context.Context, deal *dto.DealRequest) []string {
	if deal == nil {
		return []string{"record is required"}
	}

	violations := make([]string, 0)
	violations = s.checkDealUniqueID(deal.DealUniqueID, violations)

	from, violations := s.checkCurrencyCode(ctx, deal.FromCurrencyISOCode, "from currency", violations)
	to, violations := s.checkCurrencyCode(ctx, deal.ToCurrencyISOCode, "to currency", violations)
	if from != "" && to != "" && from == to {
		violations = append(violations, "from currency and to currency must be different")
	}

	violations = s.checkDealTimestamp(deal.DealTimestamp, violations)
	violations = s.checkDealAmount(deal.DealAmount, violations)

	if len(violations) > 0 {
		s.LogWarn(ctx, "Validation failed for deal",
			slog.String("deal_unique_id", deal.DealUniqueID),
			slog.Any("violations", violations))
	}
	return violations
}

// ValidateDeals validates a batch. An empty batch is itself a violation.
func (s *DealValidationService) ValidateDeals(ctx context.Context, deals []*dto.DealRequest) []string {
	if len(deals) == 0 {
		return []string{emptyBatchViolation}
	}

	all := make([]string, 0)
	for i, deal := range deals {
		for _, v := range s.ValidateDeal(ctx, deal) {
			all = append(all, formatRecordError(i, deal, v))
		}
	}
	return all
}

func (s *DealValidationService) checkDealUniqueID(id string, violations []string) []string {
	switch {
	case strings.TrimSpace(id) == "":
		return append(violations, "deal unique id is required and cannot be empty")
	case s.validate.Var(id, fmt.Sprintf("max=%d", maxDealUniqueIDLength)) != nil:
		return append(violations, fmt.Sprintf("deal unique id must not exceed %d characters", maxDealUniqueIDLength))
	case s.validate.Var(id, "trimmed") != nil:
		return append(violations, "deal unique id cannot have leading or trailing whitespace")
	}
	return violations
}

// checkCurrencyCode returns the normalized code, or "" when the code is missing.
func (s *DealValidationService) checkCurrencyCode(ctx context.Context, code, field string, violations []string) (string, []string) {
	normalized := normalizeCurrencyCode(code)
	if normalized == "" {
		return "", append(violations, field+" iso code is required")
	}
	if s.validate.Var(normalized, "len=3") != nil {
		return normalized, append(violations, field+" iso code must be exactly 3 characters")
	}
	if s.validate.Var(normalized, "currencycode") != nil {
		return normalized, append(violations, field+" iso code must be 3 uppercase letters (A-Z)")
	}
	if !domain.IsCommonCurrency(normalized) {
		s.LogDebug(ctx, "Currency code is not in the common list, but format is valid",
			slog.String("currency_code", normalized))
	}
	return normalized, violations
}

func (s *DealValidationService) checkDealTimestamp(ts *time.Time, violations []string) []string {
	if ts == nil || ts.IsZero() {
		return append(violations, "deal timestamp is required")
	}
	now := s.now()
	if ts.After(now) {
		violations = append(violations, "deal timestamp cannot be in the future")
	}
	if ts.Before(now.AddDate(-s.maxAgeInYears, 0, 0)) {
		violations = append(violations, fmt.Sprintf("deal timestamp is too old (more than %d years)", s.maxAgeInYears))
	}
	return violations
}

func (s *DealValidationService) checkDealAmount(amount *decimal.Decimal, violations []string) []string {
	if amount == nil {
		return append(violations, "deal amount is required")
	}
	if !amount.IsPositive() {
		return append(violations, "deal amount must be greater than 0")
	}
	if int64(amount.Exponent()) < -maxDealAmountScale {
		violations = append(violations, fmt.Sprintf("deal amount cannot have more than %d decimal places", maxDealAmountScale))
	}
	if exceedsMaxAmount(*amount, s.maxAmount) {
		violations = append(violations, "deal amount exceeds maximum allowed value")
	}
	return violations
}

// exceedsMaxAmount compares integer digit counts first so that amounts with
// extreme exponents are never rescaled. Both values must be positive.
func exceedsMaxAmount(amount, max decimal.Decimal) bool {
	amountDigits := integerDigits(amount)
	maxDigits := integerDigits(max)
	if amountDigits != maxDigits {
		return amountDigits > maxDigits
	}
	return amount.GreaterThan(max)
}

// integerDigits returns d such that 10^(d-1) <= |x| < 10^d.
func integerDigits(x decimal.Decimal) int64 {
	return int64(x.NumDigits()) + int64(x.Exponent())
}

func normalizeCurrencyCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
