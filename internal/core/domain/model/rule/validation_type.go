package rule

import (
	"fmt"

	"eligibility/internal/pkg/errs"
)

// ValidationType classifies a rule for reporting and grouping.
// It never decides which checks run: every populated constraint is evaluated regardless of the label.
type ValidationType int

const (
	UnknownValidationType ValidationType = iota
	BoxFit
	DimensionLimits
	Oversized
)

func getValidationTypeStrings() map[ValidationType]string {
	return map[ValidationType]string{
		UnknownValidationType: "unknown",
		BoxFit:                "box_fit",
		DimensionLimits:       "dimension_limits",
		Oversized:             "oversized",
	}
}

func ParseValidationType(s string) (ValidationType, error) {
	for vt, str := range getValidationTypeStrings() {
		if vt != UnknownValidationType && str == s {
			return vt, nil
		}
	}
	return UnknownValidationType, errs.NewValueIsInvalidErrorWithCause(
		"validation_type", fmt.Errorf("%q is not one of box_fit, dimension_limits, oversized", s))
}

func (vt ValidationType) Validate() error {
	if vt <= UnknownValidationType || vt > Oversized {
		return errs.NewValueIsInvalidErrorWithCause(
			"validation_type", fmt.Errorf("%d is not a valid validation type", vt))
	}
	return nil
}

func (vt ValidationType) String() string {
	if str, ok := getValidationTypeStrings()[vt]; ok {
		return str
	}
	return "unknown"
}
