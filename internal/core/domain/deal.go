package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Deal is a persisted FX deal. ID and CreatedAt are assigned by the store.
type Deal struct {
	ID                  int64           `json:"id"`
	DealUniqueID        string          `json:"dealUniqueId"`
	FromCurrencyISOCode string          `json:"fromCurrencyIsoCode"`
	ToCurrencyISOCode   string          `json:"toCurrencyIsoCode"`
	DealTimestamp       time.Time       `json:"dealTimestamp"`
	DealAmount          decimal.Decimal `json:"dealAmount"`
	CreatedAt           time.Time       `json:"createdAt"`
}

// NewDeal holds a validated, normalized deal that has not been stored yet.
type NewDeal struct {
	DealUniqueID        string
	FromCurrencyISOCode string
	ToCurrencyISOCode   string
	DealTimestamp       time.Time
	DealAmount          decimal.Decimal
}
