package rule

import (
	"fmt"

	"eligibility/internal/core/domain/model/kernel"
	"eligibility/internal/pkg/errs"
)

// CombinedLimit caps the combined size of a package computed with Method.
type CombinedLimit struct {
	maxMM  kernel.Millimeters
	method Method
}

// NewCombinedLimit rejects negative limits and methods without a formula.
// Custom is refused here: a rule that names it cannot be evaluated faithfully, so it must not load.
func NewCombinedLimit(maxMM kernel.Millimeters, method Method) (CombinedLimit, error) {
	if err := maxMM.Validate("max_combined_dimensions_mm"); err != nil {
		return CombinedLimit{}, err
	}
	if err := method.Validate(); err != nil {
		return CombinedLimit{}, err
	}
	if method == Custom {
		return CombinedLimit{}, errs.NewValueIsInvalidErrorWithCause(
			"combined_calculation_method", fmt.Errorf("%s has no built-in formula", method))
	}

	return CombinedLimit{maxMM: maxMM, method: method}, nil
}

func (l CombinedLimit) MaxMM() kernel.Millimeters {
	return l.maxMM
}

func (l CombinedLimit) Method() Method {
	return l.method
}
