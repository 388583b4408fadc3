package domain

// CommonCurrencyCodes is a subset of ISO 4217 that is seen most often in deal feeds.
// Codes outside this list are still accepted when they are well formed.
var CommonCurrencyCodes = map[string]struct{}{
	"USD": {}, "EUR": {}, "GBP": {}, "JPY": {}, "AUD": {},
	"CAD": {}, "CHF": {}, "CNY": {}, "HKD": {}, "NZD": {},
	"SEK": {}, "NOK": {}, "DKK": {}, "PLN": {}, "ZAR": {},
	"SGD": {}, "MXN": {}, "INR": {}, "BRL": {}, "KRW": {},
}

// IsCommonCurrency reports whether code is in CommonCurrencyCodes.
func IsCommonCurrency(code string) bool {
	_, ok := CommonCurrencyCodes[code]
	return ok
}
