package catasto_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MrJamesThe3rd/catasto/internal/catasto"
)

func TestKindOf(t *testing.T) {
	cause := errors.New("boom")

	type testCase struct {
		name string
		err  error
		want catasto.Kind
	}

	tests := []testCase{
		{name: "Nil", err: nil, want: catasto.KindUnknown},
		{name: "Plain", err: cause, want: catasto.KindUnknown},
		{name: "NotFound", err: catasto.NotFound("partita %d", 1), want: catasto.KindNotFound},
		{name: "Unique", err: catasto.Unique("comune_nome_key", "dup"), want: catasto.KindUniqueConstraint},
		{name: "Data", err: catasto.DataError("bad"), want: catasto.KindDataError},
		{name: "Store", err: catasto.StoreError(cause, "write"), want: catasto.KindStoreError},
		{name: "WrappedByFmt", err: fmt.Errorf("loading: %w", catasto.NotFound("x")), want: catasto.KindNotFound},
		{name: "OuterKindWins", err: catasto.Wrap(catasto.KindDataError, catasto.NotFound("x"), "row 3"), want: catasto.KindDataError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, catasto.KindOf(tt.err))
		})
	}
}

func TestError_Is(t *testing.T) {
	cause := errors.New("boom")
	err := catasto.Wrap(catasto.KindStoreError, cause, "committing")

	assert.ErrorIs(t, err, catasto.ErrStoreError)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, catasto.ErrNotFound)
	assert.Equal(t, "committing: boom", err.Error())

	assert.ErrorIs(t, catasto.NotFound("partita %d not found", 9), catasto.ErrNotFound)
	assert.Equal(t, "partita 9 not found", catasto.NotFound("partita %d not found", 9).Error())
}

func TestAsLedgerError(t *testing.T) {
	assert.NoError(t, catasto.AsLedgerError(nil, "op"))

	classified := catasto.DataError("bad quota")
	assert.Same(t, classified, catasto.AsLedgerError(classified, "op"))

	cause := errors.New("driver failure")
	err := catasto.AsLedgerError(cause, "partita.create")
	assert.ErrorIs(t, err, catasto.ErrStoreError)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "partita.create failed")
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "not_found", catasto.KindNotFound.String())
	assert.Equal(t, "unique_constraint", catasto.KindUniqueConstraint.String())
	assert.Equal(t, "data_error", catasto.KindDataError.String())
	assert.Equal(t, "store_error", catasto.KindStoreError.String())
	assert.Equal(t, "unknown", catasto.KindUnknown.String())
}
