package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// FxDeal is a row of the fx_deals table.
type FxDeal struct {
	ID                  int64           `json:"id"`           // BIGSERIAL primary key
	DealUniqueID        string          `json:"dealUniqueId"` // UNIQUE, at most 100 chars
	FromCurrencyISOCode string          `json:"fromCurrencyIsoCode"`
	ToCurrencyISOCode   string          `json:"toCurrencyIsoCode"`
	DealTimestamp       time.Time       `json:"dealTimestamp"`
	DealAmount          decimal.Decimal `json:"dealAmount"` // NUMERIC(19,4)
	CreatedAt           time.Time       `json:"createdAt"`
}
