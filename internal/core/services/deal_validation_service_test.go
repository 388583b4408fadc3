package services_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/fxdeals_warehouse/internal/core/services"
	"github.com/SscSPs/fxdeals_warehouse/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

var fixedNow = time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func ptrTime(t time.Time) *time.Time { return &t }

func ptrDecimal(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

// validDeal returns a request that passes every rule at fixedNow.
func validDeal(id string) *dto.DealRequest {
	return &dto.DealRequest{
		DealUniqueID:        id,
		FromCurrencyISOCode: "USD",
		ToCurrencyISOCode:   "EUR",
		DealTimestamp:       ptrTime(fixedNow.Add(-time.Hour)),
		DealAmount:          ptrDecimal("1500.25"),
	}
}

func TestValidateDeal(t *testing.T) {
	validator := services.NewDealValidationService(services.WithClock(fixedClock))
	ctx := context.Background()

	tests := []struct {
		name     string
		mutate   func(d *dto.DealRequest)
		expected []string
	}{
		{
			name:     "valid deal",
			mutate:   func(d *dto.DealRequest) {},
			expected: []string{},
		},
		{
			name:     "lowercase currencies are normalized",
			mutate:   func(d *dto.DealRequest) { d.FromCurrencyISOCode, d.ToCurrencyISOCode = "usd", " eur " },
			expected: []string{},
		},
		{
			name:     "uncommon but well formed currency",
			mutate:   func(d *dto.DealRequest) { d.ToCurrencyISOCode = "XAU" },
			expected: []string{},
		},
		{
			name:     "blank id",
			mutate:   func(d *dto.DealRequest) { d.DealUniqueID = "   " },
			expected: []string{"deal unique id is required and cannot be empty"},
		},
		{
			name:     "id too long",
			mutate:   func(d *dto.DealRequest) { d.DealUniqueID = strings.Repeat("x", 101) },
			expected: []string{"deal unique id must not exceed 100 characters"},
		},
		{
			name:     "id of exactly 100 characters",
			mutate:   func(d *dto.DealRequest) { d.DealUniqueID = strings.Repeat("x", 100) },
			expected: []string{},
		},
		{
			name:     "id with surrounding whitespace",
			mutate:   func(d *dto.DealRequest) { d.DealUniqueID = " DEAL-1" },
			expected: []string{"deal unique id cannot have leading or trailing whitespace"},
		},
		{
			name:     "missing from currency",
			mutate:   func(d *dto.DealRequest) { d.FromCurrencyISOCode = "" },
			expected: []string{"from currency iso code is required"},
		},
		{
			name:     "to currency wrong length",
			mutate:   func(d *dto.DealRequest) { d.ToCurrencyISOCode = "EURO" },
			expected: []string{"to currency iso code must be exactly 3 characters"},
		},
		{
			name:     "to currency with digits",
			mutate:   func(d *dto.DealRequest) { d.ToCurrencyISOCode = "E1R" },
			expected: []string{"to currency iso code must be 3 uppercase letters (A-Z)"},
		},
		{
			name:     "same currencies",
			mutate:   func(d *dto.DealRequest) { d.ToCurrencyISOCode = "USD" },
			expected: []string{"from currency and to currency must be different"},
		},
		{
			name:     "same currencies after normalization",
			mutate:   func(d *dto.DealRequest) { d.ToCurrencyISOCode = "usd" },
			expected: []string{"from currency and to currency must be different"},
		},
		{
			name:     "missing timestamp",
			mutate:   func(d *dto.DealRequest) { d.DealTimestamp = nil },
			expected: []string{"deal timestamp is required"},
		},
		{
			name:     "future timestamp",
			mutate:   func(d *dto.DealRequest) { d.DealTimestamp = ptrTime(fixedNow.Add(time.Minute)) },
			expected: []string{"deal timestamp cannot be in the future"},
		},
		{
			name:     "timestamp older than ten years",
			mutate:   func(d *dto.DealRequest) { d.DealTimestamp = ptrTime(fixedNow.AddDate(-10, 0, -1)) },
			expected: []string{"deal timestamp is too old (more than 10 years)"},
		},
		{
			name:     "timestamp equal to now",
			mutate:   func(d *dto.DealRequest) { d.DealTimestamp = ptrTime(fixedNow) },
			expected: []string{},
		},
		{
			name:     "missing amount",
			mutate:   func(d *dto.DealRequest) { d.DealAmount = nil },
			expected: []string{"deal amount is required"},
		},
		{
			name:     "zero amount",
			mutate:   func(d *dto.DealRequest) { d.DealAmount = ptrDecimal("0") },
			expected: []string{"deal amount must be greater than 0"},
		},
		{
			name:     "negative amount with too many decimals reports only the sign",
			mutate:   func(d *dto.DealRequest) { d.DealAmount = ptrDecimal("-1.123456") },
			expected: []string{"deal amount must be greater than 0"},
		},
		{
			name:     "too many decimal places",
			mutate:   func(d *dto.DealRequest) { d.DealAmount = ptrDecimal("10.12345") },
			expected: []string{"deal amount cannot have more than 4 decimal places"},
		},
		{
			name:     "four decimal places",
			mutate:   func(d *dto.DealRequest) { d.DealAmount = ptrDecimal("10.1234") },
			expected: []string{},
		},
		{
			name:     "amount above ceiling",
			mutate:   func(d *dto.DealRequest) { d.DealAmount = ptrDecimal("1000000000000.01") },
			expected: []string{"deal amount exceeds maximum allowed value"},
		},
		{
			name:     "amount equal to ceiling",
			mutate:   func(d *dto.DealRequest) { d.DealAmount = ptrDecimal("1000000000000") },
			expected: []string{},
		},
		{
			name:     "amount with huge positive exponent",
			mutate:   func(d *dto.DealRequest) { d.DealAmount = ptrDecimal("1e20000000") },
			expected: []string{"deal amount exceeds maximum allowed value"},
		},
		{
			name:     "amount with huge negative exponent",
			mutate:   func(d *dto.DealRequest) { d.DealAmount = ptrDecimal("1e-20000000") },
			expected: []string{"deal amount cannot have more than 4 decimal places"},
		},
		{
			name:     "amount with smallest representable exponent",
			mutate:   func(d *dto.DealRequest) { d.DealAmount = ptrDecimal("1e-2147483648") },
			expected: []string{"deal amount cannot have more than 4 decimal places"},
		},
		{
			name:     "ceiling digits with trailing fraction",
			mutate:   func(d *dto.DealRequest) { d.DealAmount = ptrDecimal("1000000000000.00000001") },
			expected: []string{"deal amount cannot have more than 4 decimal places", "deal amount exceeds maximum allowed value"},
		},
		{
			name: "every rule reported in one pass",
			mutate: func(d *dto.DealRequest) {
				d.DealUniqueID = ""
				d.FromCurrencyISOCode = ""
				d.ToCurrencyISOCode = "12"
				d.DealTimestamp = nil
				d.DealAmount = nil
			},
			expected: []string{
				"deal unique id is required and cannot be empty",
				"from currency iso code is required",
				"to currency iso code must be exactly 3 characters",
				"deal timestamp is required",
				"deal amount is required",
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			deal := validDeal("DEAL-1")
			tc.mutate(deal)

			violations := validator.ValidateDeal(ctx, deal)

			assert.Equal(t, tc.expected, violations)
		})
	}
}

func TestValidateDeal_NilRecord(t *testing.T) {
	validator := services.NewDealValidationService(services.WithClock(fixedClock))

	assert.Equal(t, []string{"record is required"}, validator.ValidateDeal(context.Background(), nil))
}

func TestValidateDeal_ConfiguredLimits(t *testing.T) {
	validator := services.NewDealValidationService(
		services.WithClock(fixedClock),
		services.WithMaxDealAmount(decimal.NewFromInt(100)),
		services.WithMaxDealAgeYears(1),
	)
	deal := validDeal("DEAL-1")
	deal.DealAmount = ptrDecimal("100.01")
	deal.DealTimestamp = ptrTime(fixedNow.AddDate(-2, 0, 0))

	violations := validator.ValidateDeal(context.Background(), deal)

	assert.Equal(t, []string{
		"deal timestamp is too old (more than 1 years)",
		"deal amount exceeds maximum allowed value",
	}, violations)
}

func TestValidateDeal_DoesNotMutateInput(t *testing.T) {
	validator := services.NewDealValidationService(services.WithClock(fixedClock))
	deal := validDeal("DEAL-1")
	deal.FromCurrencyISOCode = "usd"

	validator.ValidateDeal(context.Background(), deal)

	assert.Equal(t, "usd", deal.FromCurrencyISOCode)
}

func TestValidateDeals(t *testing.T) {
	validator := services.NewDealValidationService(services.WithClock(fixedClock))
	ctx := context.Background()

	t.Run("empty batch", func(t *testing.T) {
		assert.Equal(t, []string{"deals list cannot be null or empty"}, validator.ValidateDeals(ctx, nil))
		assert.Equal(t, []string{"deals list cannot be null or empty"}, validator.ValidateDeals(ctx, []*dto.DealRequest{}))
	})

	t.Run("all valid", func(t *testing.T) {
		assert.Empty(t, validator.ValidateDeals(ctx, []*dto.DealRequest{validDeal("A"), validDeal("B")}))
	})

	t.Run("violations are tagged with index and id", func(t *testing.T) {
		bad := validDeal("B")
		bad.DealAmount = ptrDecimal("0")
		noID := validDeal("")
		noID.ToCurrencyISOCode = "USD"

		violations := validator.ValidateDeals(ctx, []*dto.DealRequest{validDeal("A"), bad, nil, noID})

		assert.Equal(t, []string{
			"record[1] (B): deal amount must be greater than 0",
			"record[2] (unknown): record is required",
			"record[3] (unknown): deal unique id is required and cannot be empty",
			"record[3] (unknown): from currency and to currency must be different",
		}, violations)
	})
}
