package mapping

import (
	"github.com/SscSPs/fxdeals_warehouse/internal/core/domain"
	"github.com/SscSPs/fxdeals_warehouse/internal/models"
)

// ToModelFxDeal converts a not-yet-stored domain deal to a row model.
func ToModelFxDeal(d domain.NewDeal) models.FxDeal {
	return models.FxDeal{
		DealUniqueID:        d.DealUniqueID,
		FromCurrencyISOCode: d.FromCurrencyISOCode,
		ToCurrencyISOCode:   d.ToCurrencyISOCode,
		DealTimestamp:       d.DealTimestamp,
		DealAmount:          d.DealAmount,
	}
}

// ToDomainDeal converts a row model to a domain Deal
func ToDomainDeal(m models.FxDeal) domain.Deal {
	return domain.Deal{
		ID:                  m.ID,
		DealUniqueID:        m.DealUniqueID,
		FromCurrencyISOCode: m.FromCurrencyISOCode,
		ToCurrencyISOCode:   m.ToCurrencyISOCode,
		DealTimestamp:       m.DealTimestamp,
		DealAmount:          m.DealAmount,
		CreatedAt:           m.CreatedAt,
	}
}

// ToDomainDealSlice converts a slice of row models to domain Deals
func ToDomainDealSlice(ms []models.FxDeal) []domain.Deal {
	ds := make([]domain.Deal, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainDeal(m)
	}
	return ds
}
