package queries_test

import (
	"testing"

	"eligibility/internal/core/application/usecases/queries"
	"eligibility/internal/core/domain/model/kernel"
	"eligibility/internal/core/domain/model/parcel"
	"eligibility/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCheckEligibilityQuery(t *testing.T) {
	p := newParcel(t, 100, 10, 10, 10)

	q, err := queries.NewCheckEligibilityQuery(p, true)

	require.NoError(t, err)
	require.NoError(t, q.Validate())
	assert.True(t, q.Explain())
	assert.Equal(t, p, q.Parcel())

	_, err = queries.NewCheckEligibilityQuery(parcel.Parcel{}, false)
	require.ErrorIs(t, err, errs.ErrInvalidPackage)

	require.ErrorIs(t, queries.CheckEligibilityQuery{}.Validate(), queries.ErrCheckEligibilityQueryIsNotConstructed)
}

func TestNewCheckEligibilityBatchQuery(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		parcels := []parcel.Parcel{newParcel(t, 1, 1, 1, 1), newParcel(t, 2, 2, 2, 2)}

		q, err := queries.NewCheckEligibilityBatchQuery(parcels, false)

		require.NoError(t, err)
		assert.Len(t, q.Parcels(), 2)
	})

	t.Run("empty", func(t *testing.T) {
		_, err := queries.NewCheckEligibilityBatchQuery(nil, false)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("too_many", func(t *testing.T) {
		parcels := make([]parcel.Parcel, queries.MaxBatchSize+1)
		for i := range parcels {
			parcels[i] = newParcel(t, 1, 1, 1, 1)
		}

		_, err := queries.NewCheckEligibilityBatchQuery(parcels, false)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("invalid_member", func(t *testing.T) {
		_, err := queries.NewCheckEligibilityBatchQuery([]parcel.Parcel{newParcel(t, 1, 1, 1, 1), {}}, false)

		require.ErrorIs(t, err, errs.ErrInvalidPackage)
		assert.Contains(t, err.Error(), "package 1")
	})
}

func TestNewGetServiceRulesQuery(t *testing.T) {
	q := queries.NewGetServiceRulesQuery("  EVRI ")

	require.NoError(t, q.Validate())
	assert.Equal(t, "EVRI", q.Carrier())
	require.ErrorIs(t, queries.GetServiceRulesQuery{}.Validate(), queries.ErrGetServiceRulesQueryIsNotConstructed)
}

func newParcel(t *testing.T, w kernel.Grams, l, wd, h kernel.Millimeters) parcel.Parcel {
	t.Helper()
	p, err := parcel.NewParcel(w, l, wd, h)
	require.NoError(t, err)
	return p
}
