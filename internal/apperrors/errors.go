package apperrors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrPersistence indicates that the underlying store failed to persist a resource.
var ErrPersistence = errors.New("persistence error")

// Kind classifies why a single deal could not be imported.
type Kind int

const (
	KindValidation Kind = iota + 1
	KindDuplicate
	KindPersistence
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "VALIDATION_ERROR"
	case KindDuplicate:
		return "DUPLICATE_DEAL"
	case KindPersistence:
		return "PERSISTENCE_ERROR"
	default:
		return "UNKNOWN_ERROR"
	}
}

func (k Kind) sentinel() error {
	switch k {
	case KindValidation:
		return ErrValidation
	case KindDuplicate:
		return ErrDuplicate
	case KindPersistence:
		return ErrPersistence
	default:
		return nil
	}
}

// ImportError is the only error type returned by a single-deal import.
// errors.Is matches it against the sentinel of its Kind and against the wrapped cause.
type ImportError struct {
	Kind         Kind
	DealUniqueID string
	Violations   []string
	Err          error
}

func (e *ImportError) Error() string {
	switch e.Kind {
	case KindValidation:
		return "validation failed: " + strings.Join(e.Violations, "; ")
	case KindDuplicate:
		return fmt.Sprintf("deal with unique id %s already exists", e.DealUniqueID)
	case KindPersistence:
		if e.Err != nil {
			return "failed to save deal: " + e.Err.Error()
		}
		return "failed to save deal"
	default:
		return "import failed"
	}
}

func (e *ImportError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if s := e.Kind.sentinel(); s != nil {
		errs = append(errs, s)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// NewValidationError reports one or more rule violations for a deal.
func NewValidationError(dealUniqueID string, violations []string) *ImportError {
	return &ImportError{Kind: KindValidation, DealUniqueID: dealUniqueID, Violations: violations}
}

// NewDuplicateError reports a deal whose identifier is already taken.
func NewDuplicateError(dealUniqueID string) *ImportError {
	return &ImportError{Kind: KindDuplicate, DealUniqueID: dealUniqueID}
}

// NewPersistenceError wraps a store failure raised while saving a deal.
func NewPersistenceError(dealUniqueID string, cause error) *ImportError {
	return &ImportError{Kind: KindPersistence, DealUniqueID: dealUniqueID, Err: cause}
}

// KindOf returns the kind of the first ImportError in err's chain.
func KindOf(err error) (Kind, bool) {
	var importErr *ImportError
	if errors.As(err, &importErr) {
		return importErr.Kind, true
	}
	return 0, false
}
