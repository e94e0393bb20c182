package queries

import (
	"errors"
	"fmt"
	"slices"

	"eligibility/internal/core/domain/model/parcel"
	"eligibility/internal/pkg/errs"
	"eligibility/internal/pkg/guard"
)

// MaxBatchSize caps the parcels evaluated by one batch query.
const MaxBatchSize = 1000

var ErrCheckEligibilityBatchQueryIsNotConstructed = errors.New(
	"CheckEligibilityBatchQuery must be created via NewCheckEligibilityBatchQuery constructor",
)

// CheckEligibilityBatchQuery evaluates many parcels against one table snapshot.
type CheckEligibilityBatchQuery struct { //nolint:recvcheck //using for validation
	parcels []parcel.Parcel
	explain bool

	guard guard.ConstructorGuard
}

func NewCheckEligibilityBatchQuery(parcels []parcel.Parcel, explain bool) (CheckEligibilityBatchQuery, error) {
	q := CheckEligibilityBatchQuery{
		explain: explain,
		guard:   guard.NewConstructorGuard(),
	}

	if err := q.setParcels(parcels); err != nil {
		return CheckEligibilityBatchQuery{}, err
	}

	return q, nil
}

func (q CheckEligibilityBatchQuery) Validate() error {
	return q.guard.Validate(ErrCheckEligibilityBatchQueryIsNotConstructed)
}

func (q CheckEligibilityBatchQuery) Parcels() []parcel.Parcel {
	return slices.Clone(q.parcels)
}

func (q CheckEligibilityBatchQuery) Explain() bool {
	return q.explain
}

func (q *CheckEligibilityBatchQuery) setParcels(parcels []parcel.Parcel) error {
	if len(parcels) == 0 {
		return errs.NewValueIsRequiredError("packages")
	}
	if len(parcels) > MaxBatchSize {
		return errs.NewValueIsOutOfRangeError("packages", len(parcels), 1, MaxBatchSize)
	}

	for i, p := range parcels {
		if err := p.Validate(); err != nil {
			return fmt.Errorf("package %d: %w", i, err)
		}
	}

	q.parcels = slices.Clone(parcels)
	return nil
}
