package services_test

import (
	"testing"

	"eligibility/internal/core/domain/model/kernel"
	"eligibility/internal/core/domain/model/parcel"
	"eligibility/internal/core/domain/model/rule"

	"github.com/stretchr/testify/require"
)

func ptr(v float64) *float64 { return &v }

func newParcel(t *testing.T, weight kernel.Grams, l, w, h kernel.Millimeters) parcel.Parcel {
	t.Helper()
	p, err := parcel.NewParcel(weight, l, w, h)
	require.NoError(t, err)
	return p
}

func newConstraints(t *testing.T, p rule.ConstraintParams) rule.ConstraintSet {
	t.Helper()
	c, err := rule.NewConstraintSet(p)
	require.NoError(t, err)
	return c
}

func newRule(t *testing.T, serviceID, validationType string, c rule.ConstraintParams) rule.ServiceRule {
	t.Helper()
	r, err := rule.NewServiceRule(kernel.NewUUID(), rule.ServiceRuleParams{
		ServiceID:      serviceID,
		ServiceName:    serviceID + " name",
		Carrier:        "TEST",
		ValidationType: validationType,
		Constraints:    c,
	})
	require.NoError(t, err)
	return r
}

func newDims(t *testing.T, l, w, h kernel.Millimeters) kernel.Dimensions {
	t.Helper()
	d, err := kernel.NewDimensions(l, w, h)
	require.NoError(t, err)
	return d
}

func permutations(d [3]kernel.Millimeters) [][3]kernel.Millimeters {
	return [][3]kernel.Millimeters{
		{d[0], d[1], d[2]}, {d[0], d[2], d[1]}, {d[1], d[0], d[2]},
		{d[1], d[2], d[0]}, {d[2], d[0], d[1]}, {d[2], d[1], d[0]},
	}
}
