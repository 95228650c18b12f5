package errors_test

import (
	// Go Internal Packages
	stderrors "errors"
	"testing"

	// Local Packages
	errors "bospay-gateway/errors"

	// External Packages
	"github.com/stretchr/testify/assert"
)

func TestE(t *testing.T) {
	err := errors.E(errors.NotFound, "transaction not found", nil)
	assert.Equal(t, "transaction not found", err.Error())
	assert.True(t, errors.Is(errors.NotFound, err))
	assert.False(t, errors.Is(errors.Unauthorized, err))
}

func TestE_WrapsCause(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := errors.E(errors.Remote, "upstream call failed", cause)

	assert.True(t, errors.Is(errors.Remote, err))
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "upstream call failed")
}

func TestIs_WalksWrappedChain(t *testing.T) {
	inner := errors.E(errors.Unauthorized, "authentication failed", nil)
	outer := errors.E(errors.Other, "listing transactions", inner)

	assert.True(t, errors.Is(errors.Unauthorized, outer))
	assert.True(t, errors.Is(errors.Other, outer))
	assert.False(t, errors.Is(errors.Remote, outer))
}

func TestIs_MatchesInnerKindThroughTwoLevels(t *testing.T) {
	inner := errors.E(errors.NotFound, "transaction not found", nil)
	mid := errors.E(errors.Other, "resolving detail", inner)
	outer := errors.E(errors.Other, "handling request", mid)

	assert.True(t, errors.Is(errors.NotFound, outer))
	assert.False(t, errors.Is(errors.Unauthorized, outer))
}

func TestIs_PlainError(t *testing.T) {
	assert.False(t, errors.Is(errors.Invalid, stderrors.New("plain")))
	assert.False(t, errors.Is(errors.Invalid, nil))
}

func TestValidationErrs(t *testing.T) {
	ve := errors.ValidationErrs()
	assert.NoError(t, ve.Err())

	ve.Add("email", "must be a valid email address")
	ve.Add("role", "is required")

	err := ve.Err()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "email: must be a valid email address")
	assert.Contains(t, err.Error(), "role: is required")

	wrapped := errors.ValidationFailedErr(err)
	assert.True(t, errors.Is(errors.Invalid, wrapped))
}
