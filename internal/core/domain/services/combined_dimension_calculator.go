package services

import (
	"errors"
	"fmt"

	"eligibility/internal/core/domain/model/kernel"
	"eligibility/internal/core/domain/model/rule"
)

// ErrUnsupportedMethod is returned for a method without a built-in formula.
var ErrUnsupportedMethod = errors.New("combined calculation method is not supported")

// CombinedDimensionCalculator turns three dimensions into the scalar a carrier calls "combined size".
type CombinedDimensionCalculator struct{}

func NewCombinedDimensionCalculator() CombinedDimensionCalculator {
	return CombinedDimensionCalculator{}
}

// Calculate applies the formula selected by method.
//
// StandardSum is the only order dependent formula: it reads length, width and height as given,
// because that is how the carriers using it declare the measurement.
func (CombinedDimensionCalculator) Calculate(method rule.Method, dims kernel.Dimensions) (kernel.Millimeters, error) {
	switch method { //nolint:exhaustive // Custom and UnknownMethod have no formula
	case rule.StandardSum:
		return dims.Length() + 2*dims.Width() + 2*dims.Height(), nil
	case rule.LengthPlusGirth:
		return dims.LengthPlusGirth(), nil
	case rule.Circumference:
		return dims.Girth(), nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnsupportedMethod, method)
	}
}
