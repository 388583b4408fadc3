package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestImportError_MatchesKindSentinel(t *testing.T) {
	cause := errors.New("connection refused")

	tests := []struct {
		name     string
		err      error
		kind     Kind
		sentinel error
		message  string
	}{
		{
			name:     "validation",
			err:      NewValidationError("D1", []string{"a", "b"}),
			kind:     KindValidation,
			sentinel: ErrValidation,
			message:  "validation failed: a; b",
		},
		{
			name:     "duplicate",
			err:      NewDuplicateError("D1"),
			kind:     KindDuplicate,
			sentinel: ErrDuplicate,
			message:  "deal with unique id D1 already exists",
		},
		{
			name:     "persistence",
			err:      NewPersistenceError("D1", cause),
			kind:     KindPersistence,
			sentinel: ErrPersistence,
			message:  "failed to save deal: connection refused",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.EqualError(t, tc.err, tc.message)
			assert.ErrorIs(t, tc.err, tc.sentinel)

			kind, ok := KindOf(fmt.Errorf("wrapped: %w", tc.err))
			assert.True(t, ok)
			assert.Equal(t, tc.kind, kind)

			for _, other := range []error{ErrValidation, ErrDuplicate, ErrPersistence} {
				if other != tc.sentinel {
					assert.NotErrorIs(t, tc.err, other)
				}
			}
		})
	}
}

func TestImportError_CauseStaysReachable(t *testing.T) {
	cause := fmt.Errorf("%w: lost race", ErrDuplicate)
	err := NewPersistenceError("D1", cause)

	assert.ErrorIs(t, err, ErrPersistence)
	assert.ErrorIs(t, err, cause)
	kind, _ := KindOf(err)
	assert.Equal(t, KindPersistence, kind)
}

func TestKindOf_PlainError(t *testing.T) {
	_, ok := KindOf(errors.New("boom"))
	assert.False(t, ok)
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "VALIDATION_ERROR", KindValidation.String())
	assert.Equal(t, "DUPLICATE_DEAL", KindDuplicate.String())
	assert.Equal(t, "PERSISTENCE_ERROR", KindPersistence.String())
	assert.Equal(t, "UNKNOWN_ERROR", Kind(0).String())
}
