package kernel

import (
	"fmt"
	"math"
	"strconv"

	"eligibility/internal/pkg/errs"
)

// Millimeters is a linear package or envelope measurement.
type Millimeters float64

// Grams is a package weight or a weight bound.
type Grams float64

// Validate reports a negative or non-finite measurement under paramName.
func (m Millimeters) Validate(paramName string) error {
	return validateQuantity(paramName, float64(m))
}

// String formats the measurement without trailing zeros, e.g. "353mm".
func (m Millimeters) String() string {
	return strconv.FormatFloat(float64(m), 'f', -1, 64) + "mm"
}

// Validate reports a negative or non-finite weight under paramName.
func (g Grams) Validate(paramName string) error {
	return validateQuantity(paramName, float64(g))
}

// String formats the weight without trailing zeros, e.g. "999g".
func (g Grams) String() string {
	return strconv.FormatFloat(float64(g), 'f', -1, 64) + "g"
}

func validateQuantity(paramName string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return errs.NewValueIsInvalidErrorWithCause(paramName, fmt.Errorf("%v is not a finite number", v))
	}
	if v < 0 {
		return errs.NewValueIsInvalidErrorWithCause(paramName, fmt.Errorf("%v is negative", v))
	}
	return nil
}
