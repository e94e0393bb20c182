package rule

import (
	"fmt"

	"eligibility/internal/pkg/errs"
)

// Method selects the formula that turns three dimensions into one "combined" size.
//
//   - StandardSum: length + 2×width + 2×height, in the order the dimensions were given
//   - LengthPlusGirth: largest + 2×(sum of the other two)
//   - Circumference: 2×(second + third largest), numerically the girth
//   - Custom: carrier specific, no formula is known
type Method int

const (
	// UnknownMethod is the zero value and is never valid.
	UnknownMethod Method = iota
	StandardSum
	LengthPlusGirth
	Circumference
	Custom
)

func getMethodStrings() map[Method]string {
	return map[Method]string{
		UnknownMethod:   "unknown",
		StandardSum:     "standard_sum",
		LengthPlusGirth: "length_plus_girth",
		Circumference:   "circumference",
		Custom:          "custom",
	}
}

// ParseMethod maps a document label to a Method. Custom parses successfully; whether it is
// acceptable inside a rule is decided by NewConstraintSet.
func ParseMethod(s string) (Method, error) {
	for m, str := range getMethodStrings() {
		if m != UnknownMethod && str == s {
			return m, nil
		}
	}
	return UnknownMethod, errs.NewValueIsInvalidErrorWithCause(
		"combined_calculation_method", fmt.Errorf("%q is not a known method", s))
}

// Validate accepts the four named methods.
func (m Method) Validate() error {
	if m <= UnknownMethod || m > Custom {
		return errs.NewValueIsInvalidErrorWithCause(
			"combined_calculation_method", fmt.Errorf("%d is not a valid method", m))
	}
	return nil
}

func (m Method) String() string {
	if str, ok := getMethodStrings()[m]; ok {
		return str
	}
	return "unknown"
}
