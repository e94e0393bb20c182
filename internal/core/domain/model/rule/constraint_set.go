package rule

import (
	"errors"
	"fmt"

	"eligibility/internal/core/domain/model/kernel"
	"eligibility/internal/pkg/errs"
)

// ConstraintParams is the raw, document shaped form of a ConstraintSet.
// Nil pointers and nil slices mean "not populated".
type ConstraintParams struct {
	WeightMinG                *float64
	WeightMaxG                *float64
	MaxSingleDimensionMM      *float64
	MaxCombinedDimensionsMM   *float64
	CombinedCalculationMethod string
	MaxGirthMM                *float64
	MaxLengthPlusGirthMM      *float64
	BoxDimensionsMM           []float64
	BoxDimensionsMinMM        []float64
}

// ConstraintSet is the atomic unit of a rule. Every populated field is a necessary condition;
// an unpopulated field imposes nothing, so the zero value accepts every package.
type ConstraintSet struct {
	weightMin   *kernel.Grams
	weightMax   *kernel.Grams
	maxSingle   *kernel.Millimeters
	combined    *CombinedLimit
	maxGirth    *kernel.Millimeters
	maxLenGirth *kernel.Millimeters
	boxMax      *kernel.Dimensions
	boxMin      *kernel.Dimensions
}

// NewConstraintSet validates raw params. Every problem found is returned, joined, as
// *errs.MalformedRuleError.
func NewConstraintSet(p ConstraintParams) (ConstraintSet, error) {
	return newConstraintSet("", p)
}

func newConstraintSet(serviceID string, p ConstraintParams) (ConstraintSet, error) {
	var c ConstraintSet
	malformed := func(field string, cause error) error {
		return errs.NewMalformedRuleErrorWithCause(serviceID, field, cause)
	}

	var all []error

	if p.WeightMinG != nil {
		w := kernel.Grams(*p.WeightMinG)
		if err := w.Validate("weight_min_g"); err != nil {
			all = append(all, malformed("weight_min_g", err))
		} else {
			c.weightMin = &w
		}
	}
	if p.WeightMaxG != nil {
		w := kernel.Grams(*p.WeightMaxG)
		if err := w.Validate("weight_max_g"); err != nil {
			all = append(all, malformed("weight_max_g", err))
		} else {
			c.weightMax = &w
		}
	}
	if c.weightMin != nil && c.weightMax != nil && *c.weightMin > *c.weightMax {
		all = append(all, malformed("weight_min_g",
			fmt.Errorf("%s is greater than weight_max_g %s", *c.weightMin, *c.weightMax)))
	}

	var err error
	if c.maxSingle, err = optionalLength("max_single_dimension_mm", p.MaxSingleDimensionMM); err != nil {
		all = append(all, malformed("max_single_dimension_mm", err))
	}
	if c.maxGirth, err = optionalLength("max_girth_mm", p.MaxGirthMM); err != nil {
		all = append(all, malformed("max_girth_mm", err))
	}
	if c.maxLenGirth, err = optionalLength("max_length_plus_girth_mm", p.MaxLengthPlusGirthMM); err != nil {
		all = append(all, malformed("max_length_plus_girth_mm", err))
	}

	var field string
	if c.combined, field, err = combinedLimit(p.MaxCombinedDimensionsMM, p.CombinedCalculationMethod); err != nil {
		all = append(all, malformed(field, err))
	}

	if c.boxMax, err = optionalBox(p.BoxDimensionsMM); err != nil {
		all = append(all, malformed("box_dimensions_mm", err))
	}
	if c.boxMin, err = optionalBox(p.BoxDimensionsMinMM); err != nil {
		all = append(all, malformed("box_dimensions_min_mm", err))
	}
	if c.boxMax != nil && c.boxMin != nil {
		lo, hi := c.boxMin.Sorted(), c.boxMax.Sorted()
		for i := range lo {
			if lo[i] > hi[i] {
				all = append(all, malformed("box_dimensions_min_mm",
					fmt.Errorf("sorted minimum %s exceeds maximum %s", c.boxMin, c.boxMax)))
				break
			}
		}
	}

	if err = errors.Join(all...); err != nil {
		return ConstraintSet{}, err
	}
	return c, nil
}

// combinedLimit also returns the document field an error belongs to.
func combinedLimit(maxMM *float64, method string) (*CombinedLimit, string, error) {
	const (
		limitField  = "max_combined_dimensions_mm"
		methodField = "combined_calculation_method"
	)

	switch {
	case maxMM == nil && method == "":
		return nil, "", nil
	case maxMM == nil:
		return nil, limitField, errors.New("required when combined_calculation_method is set")
	case method == "":
		return nil, methodField, errors.New("required when max_combined_dimensions_mm is set")
	}

	if err := kernel.Millimeters(*maxMM).Validate(limitField); err != nil {
		return nil, limitField, err
	}
	m, err := ParseMethod(method)
	if err != nil {
		return nil, methodField, err
	}
	limit, err := NewCombinedLimit(kernel.Millimeters(*maxMM), m)
	if err != nil {
		return nil, methodField, err
	}
	return &limit, "", nil
}

func optionalLength(name string, v *float64) (*kernel.Millimeters, error) {
	if v == nil {
		return nil, nil //nolint:nilnil // absent bound
	}
	mm := kernel.Millimeters(*v)
	if err := mm.Validate(name); err != nil {
		return nil, err
	}
	return &mm, nil
}

func optionalBox(values []float64) (*kernel.Dimensions, error) {
	if values == nil {
		return nil, nil //nolint:nilnil // absent envelope
	}
	d, err := kernel.DimensionsFromSlice(values)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// IsEmpty reports a constraint set with no populated field.
func (c ConstraintSet) IsEmpty() bool {
	return c.weightMin == nil && c.weightMax == nil && c.maxSingle == nil && c.combined == nil &&
		c.maxGirth == nil && c.maxLenGirth == nil && c.boxMax == nil && c.boxMin == nil
}

func (c ConstraintSet) WeightMin() (kernel.Grams, bool) { return deref(c.weightMin) }
func (c ConstraintSet) WeightMax() (kernel.Grams, bool) { return deref(c.weightMax) }

func (c ConstraintSet) MaxSingleDimension() (kernel.Millimeters, bool) { return deref(c.maxSingle) }
func (c ConstraintSet) MaxGirth() (kernel.Millimeters, bool)           { return deref(c.maxGirth) }
func (c ConstraintSet) MaxLengthPlusGirth() (kernel.Millimeters, bool) { return deref(c.maxLenGirth) }

func (c ConstraintSet) Combined() (CombinedLimit, bool) { return deref(c.combined) }

// BoxMax returns the envelope the package must fit inside.
func (c ConstraintSet) BoxMax() *kernel.Dimensions { return c.boxMax }

// BoxMin returns the envelope the package must be at least as large as.
func (c ConstraintSet) BoxMin() *kernel.Dimensions { return c.boxMin }

// Params converts the set back to its raw form, for persistence and API output.
func (c ConstraintSet) Params() ConstraintParams {
	var p ConstraintParams
	p.WeightMinG = toFloat(c.weightMin)
	p.WeightMaxG = toFloat(c.weightMax)
	p.MaxSingleDimensionMM = toFloat(c.maxSingle)
	p.MaxGirthMM = toFloat(c.maxGirth)
	p.MaxLengthPlusGirthMM = toFloat(c.maxLenGirth)
	if c.combined != nil {
		v := float64(c.combined.maxMM)
		p.MaxCombinedDimensionsMM = &v
		p.CombinedCalculationMethod = c.combined.method.String()
	}
	p.BoxDimensionsMM = boxValues(c.boxMax)
	p.BoxDimensionsMinMM = boxValues(c.boxMin)
	return p
}

func deref[T any](v *T) (T, bool) {
	if v == nil {
		var zero T
		return zero, false
	}
	return *v, true
}

func toFloat[T ~float64](v *T) *float64 {
	if v == nil {
		return nil
	}
	f := float64(*v)
	return &f
}

func boxValues(d *kernel.Dimensions) []float64 {
	if d == nil {
		return nil
	}
	g := d.Given()
	return []float64{float64(g[0]), float64(g[1]), float64(g[2])}
}
