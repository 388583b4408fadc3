package dto

import (
	"time"

	"github.com/SscSPs/fxdeals_warehouse/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DealRequest is one incoming FX deal. Fields are checked by the deal validator,
// not by binding tags, so that every violation is reported in one pass.
type DealRequest struct {
	DealUniqueID        string           `json:"dealUniqueId"`
	FromCurrencyISOCode string           `json:"fromCurrencyIsoCode"`
	ToCurrencyISOCode   string           `json:"toCurrencyIsoCode"`
	DealTimestamp       *time.Time       `json:"dealTimestamp" swaggertype:"string" format:"date-time"`
	DealAmount          *decimal.Decimal `json:"dealAmount" swaggertype:"string" example:"1500.2500"`
}

// BulkDealRequest carries a batch of deals. A null entry is reported as an invalid record.
type BulkDealRequest struct {
	Deals []*DealRequest `json:"deals"`
}

// DealLookupURI binds the deal id path parameter.
type DealLookupURI struct {
	DealUniqueID string `uri:"dealUniqueId" binding:"required,trimmed,max=100"`
}

// DealResponse defines the data returned for a stored deal.
type DealResponse struct {
	ID                  int64           `json:"id"`
	DealUniqueID        string          `json:"dealUniqueId"`
	FromCurrencyISOCode string          `json:"fromCurrencyIsoCode"`
	ToCurrencyISOCode   string          `json:"toCurrencyIsoCode"`
	DealTimestamp       time.Time       `json:"dealTimestamp"`
	DealAmount          decimal.Decimal `json:"dealAmount" swaggertype:"string"`
	CreatedAt           time.Time       `json:"createdAt"`
}

// BulkDealResponse reports the per-batch import statistics.
type BulkDealResponse struct {
	TotalReceived        int            `json:"totalReceived"`
	SuccessfullyImported int            `json:"successfullyImported"`
	SkippedDuplicates    int            `json:"skippedDuplicates"`
	Failed               int            `json:"failed"`
	Errors               []string       `json:"errors"`
	ImportedDeals        []DealResponse `json:"importedDeals"`
}

// ValidateDealsResponse is returned by the dry-run endpoint.
type ValidateDealsResponse struct {
	Valid         bool     `json:"valid"`
	Errors        []string `json:"errors"`
	AlreadyStored []string `json:"alreadyStored"`
}

// ErrorResponse is the error body shared by all deal endpoints.
type ErrorResponse struct {
	ErrorCode string `json:"errorCode"`
	Message   string `json:"message"`
}

// ToDealResponse converts a domain.Deal to DealResponse DTO
func ToDealResponse(deal *domain.Deal) DealResponse {
	return DealResponse{
		ID:                  deal.ID,
		DealUniqueID:        deal.DealUniqueID,
		FromCurrencyISOCode: deal.FromCurrencyISOCode,
		ToCurrencyISOCode:   deal.ToCurrencyISOCode,
		DealTimestamp:       deal.DealTimestamp,
		DealAmount:          deal.DealAmount,
		CreatedAt:           deal.CreatedAt,
	}
}

// ToListDealResponse converts a slice of domain.Deal to a slice of DealResponse DTOs
func ToListDealResponse(deals []domain.Deal) []DealResponse {
	res := make([]DealResponse, len(deals))
	for i := range deals {
		res[i] = ToDealResponse(&deals[i])
	}
	return res
}

// ToBulkDealResponse converts a domain.BatchResult to BulkDealResponse DTO
func ToBulkDealResponse(result domain.BatchResult) BulkDealResponse {
	errs := result.Errors
	if errs == nil {
		errs = []string{}
	}
	return BulkDealResponse{
		TotalReceived:        result.TotalReceived,
		SuccessfullyImported: result.Imported,
		SkippedDuplicates:    result.Duplicates,
		Failed:               result.Failed,
		Errors:               errs,
		ImportedDeals:        ToListDealResponse(result.ImportedDeals),
	}
}
