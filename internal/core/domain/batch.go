package domain

import "slices"

// BatchResult summarizes one bulk import call.
// Imported + Duplicates + Failed always equals TotalReceived.
type BatchResult struct {
	TotalReceived int
	Imported      int
	Duplicates    int
	Failed        int
	Errors        []string
	ImportedDeals []Deal
}

// OutcomeKind is the classification of a single record inside a batch.
type OutcomeKind int

const (
	OutcomeImported OutcomeKind = iota
	OutcomeDuplicate
	OutcomeFailed
)

// RecordOutcome is the result of importing the record at Index.
type RecordOutcome struct {
	Index int
	Kind  OutcomeKind
	Deal  *Deal
	Error string
}

// NewBatchResult starts an empty result for a batch of total records.
func NewBatchResult(total int) BatchResult {
	return BatchResult{
		TotalReceived: total,
		Errors:        []string{},
		ImportedDeals: []Deal{},
	}
}

// With returns a copy of r that accounts for o. r itself is left untouched.
func (r BatchResult) With(o RecordOutcome) BatchResult {
	next := r
	switch o.Kind {
	case OutcomeImported:
		next.Imported++
		if o.Deal != nil {
			next.ImportedDeals = append(slices.Clip(r.ImportedDeals), *o.Deal)
		}
		return next
	case OutcomeDuplicate:
		next.Duplicates++
	default:
		next.Failed++
	}
	next.Errors = append(slices.Clip(r.Errors), o.Error)
	return next
}

// Fold applies outcomes in order, starting from an empty result for total records.
func Fold(total int, outcomes []RecordOutcome) BatchResult {
	result := NewBatchResult(total)
	for _, o := range outcomes {
		result = result.With(o)
	}
	return result
}
