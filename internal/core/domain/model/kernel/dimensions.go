package kernel

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"eligibility/internal/pkg/errs"
	"eligibility/internal/pkg/guard"
)

// ErrDimensionsAreNotConstructed is returned when a zero-value Dimensions is used.
var ErrDimensionsAreNotConstructed = errs.NewValueIsRequiredError(
	"dimensions must be created via NewDimensions or DimensionsFromSlice constructors")

// Dimensions is an immutable triple of linear measurements.
//
// The triple keeps the order it was given in, because the "standard sum" carrier formula reads
// length, width and height positionally. Every other use is rotation invariant and goes through
// the sorted accessors: Largest, Middle, Smallest, Sorted, Girth and LengthPlusGirth.
//
// Example:
//
//	dims, err := kernel.NewDimensions(250, 353, 24)
//	if err != nil {
//	    // negative or non-finite measurement
//	}
//	dims.Largest()  // 353mm
//	dims.Girth()    // 2 × (250 + 24) = 548mm
type Dimensions struct { //nolint:recvcheck //using for validation
	given  [3]Millimeters
	sorted [3]Millimeters
	guard  guard.ConstructorGuard
}

// NewDimensions validates and builds Dimensions from length, width and height.
// All three must be finite and not negative; errors for several axes are joined.
func NewDimensions(length, width, height Millimeters) (Dimensions, error) {
	d := Dimensions{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setAxis(0, "length_mm", length),
		d.setAxis(1, "width_mm", width),
		d.setAxis(2, "height_mm", height),
	); err != nil {
		return Dimensions{}, err
	}

	d.sorted = d.given
	slices.SortFunc(d.sorted[:], func(a, b Millimeters) int {
		return cmp.Compare(b, a)
	})

	return d, nil
}

// DimensionsFromSlice builds Dimensions from raw configuration values.
// The slice must hold exactly three entries.
func DimensionsFromSlice(values []float64) (Dimensions, error) {
	if len(values) != 3 {
		return Dimensions{}, errs.NewValueIsInvalidErrorWithCause(
			"dimensions",
			fmt.Errorf("expected 3 entries, got %d", len(values)),
		)
	}
	return NewDimensions(Millimeters(values[0]), Millimeters(values[1]), Millimeters(values[2]))
}

// Validate reports whether Dimensions was built by a constructor.
func (d Dimensions) Validate() error {
	return d.guard.Validate(ErrDimensionsAreNotConstructed)
}

// Length returns the first measurement as given.
func (d Dimensions) Length() Millimeters {
	return d.given[0]
}

// Width returns the second measurement as given.
func (d Dimensions) Width() Millimeters {
	return d.given[1]
}

// Height returns the third measurement as given.
func (d Dimensions) Height() Millimeters {
	return d.given[2]
}

// Given returns the measurements in the order they were supplied.
func (d Dimensions) Given() [3]Millimeters {
	return d.given
}

// Sorted returns the measurements in descending order.
func (d Dimensions) Sorted() [3]Millimeters {
	return d.sorted
}

func (d Dimensions) Largest() Millimeters {
	return d.sorted[0]
}

func (d Dimensions) Middle() Millimeters {
	return d.sorted[1]
}

func (d Dimensions) Smallest() Millimeters {
	return d.sorted[2]
}

// Girth is twice the sum of the two smaller measurements: the perimeter of the
// cross-section around the longest axis, whichever axis that is.
func (d Dimensions) Girth() Millimeters {
	return 2 * (d.sorted[1] + d.sorted[2])
}

// LengthPlusGirth is the largest measurement plus Girth.
func (d Dimensions) LengthPlusGirth() Millimeters {
	return d.sorted[0] + d.Girth()
}

// IsEqual compares the measurements in their given order.
func (d Dimensions) IsEqual(other Dimensions) bool {
	return d.given == other.given
}

// String formats the measurements in their given order, e.g. "250x353x24mm".
func (d Dimensions) String() string {
	return fmt.Sprintf("%vx%vx%v",
		float64(d.given[0]), float64(d.given[1]), float64(d.given[2])) + "mm"
}

func (d *Dimensions) setAxis(i int, paramName string, value Millimeters) error {
	if err := value.Validate(paramName); err != nil {
		return err
	}

	d.given[i] = value
	return nil
}
