// Package queries contains read operations over the rule table.
// Eligibility checks read the cached table snapshot; rule listings read the database directly.
package queries

import (
	"errors"

	"eligibility/internal/core/domain/model/parcel"
	"eligibility/internal/pkg/guard"
)

var ErrCheckEligibilityQueryIsNotConstructed = errors.New(
	"CheckEligibilityQuery must be created via NewCheckEligibilityQuery constructor",
)

// CheckEligibilityQuery asks which services accept one parcel.
// With explain set, rejected services are returned with the violations behind them.
type CheckEligibilityQuery struct { //nolint:recvcheck //using for validation
	parcel  parcel.Parcel
	explain bool

	guard guard.ConstructorGuard
}

func NewCheckEligibilityQuery(p parcel.Parcel, explain bool) (CheckEligibilityQuery, error) {
	q := CheckEligibilityQuery{
		explain: explain,
		guard:   guard.NewConstructorGuard(),
	}

	if err := q.setParcel(p); err != nil {
		return CheckEligibilityQuery{}, err
	}

	return q, nil
}

func (q CheckEligibilityQuery) Validate() error {
	return q.guard.Validate(ErrCheckEligibilityQueryIsNotConstructed)
}

func (q CheckEligibilityQuery) Parcel() parcel.Parcel {
	return q.parcel
}

func (q CheckEligibilityQuery) Explain() bool {
	return q.explain
}

func (q *CheckEligibilityQuery) setParcel(p parcel.Parcel) error {
	if err := p.Validate(); err != nil {
		return err
	}

	q.parcel = p
	return nil
}
