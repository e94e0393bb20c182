package services

import (
	"eligibility/internal/core/domain/model/kernel"
	"eligibility/internal/core/domain/model/parcel"
	"eligibility/internal/core/domain/model/rule"
)

// Check names one constraint of a ConstraintSet, using the rule document's field names.
type Check string

const (
	CheckWeightMin          Check = "weight_min_g"
	CheckWeightMax          Check = "weight_max_g"
	CheckMaxSingleDimension Check = "max_single_dimension_mm"
	CheckCombinedDimensions Check = "max_combined_dimensions_mm"
	CheckMaxGirth           Check = "max_girth_mm"
	CheckMaxLengthPlusGirth Check = "max_length_plus_girth_mm"
	CheckBoxMax             Check = "box_dimensions_mm"
	CheckBoxMin             Check = "box_dimensions_min_mm"
)

// Violation describes one failed check. Limit and Actual are formatted with units.
type Violation struct {
	Check  Check
	Limit  string
	Actual string
}

// ConstraintEvaluator tests a parcel against a single ConstraintSet.
type ConstraintEvaluator struct {
	calculator CombinedDimensionCalculator
	matcher    BoxFitMatcher
}

func NewConstraintEvaluator() ConstraintEvaluator {
	return ConstraintEvaluator{
		calculator: NewCombinedDimensionCalculator(),
		matcher:    NewBoxFitMatcher(),
	}
}

// Evaluate is the AND of every populated check and stops at the first failure.
// An empty set accepts every parcel.
func (e ConstraintEvaluator) Evaluate(p parcel.Parcel, c rule.ConstraintSet) bool {
	accepted := true
	e.run(p, c, func(Violation) bool {
		accepted = false
		return false
	})
	return accepted
}

// Violations runs every populated check and reports each failure, in check order.
func (e ConstraintEvaluator) Violations(p parcel.Parcel, c rule.ConstraintSet) []Violation {
	var out []Violation
	e.run(p, c, func(v Violation) bool {
		out = append(out, v)
		return true
	})
	return out
}

// run walks the checks in a fixed order and hands each failure to report.
// Walking stops as soon as report returns false.
func (e ConstraintEvaluator) run(p parcel.Parcel, c rule.ConstraintSet, report func(Violation) bool) {
	weight := p.Weight()
	dims := p.Dimensions()

	if limit, ok := c.WeightMin(); ok && weight < limit {
		if !report(Violation{Check: CheckWeightMin, Limit: limit.String(), Actual: weight.String()}) {
			return
		}
	}
	if limit, ok := c.WeightMax(); ok && weight > limit {
		if !report(Violation{Check: CheckWeightMax, Limit: limit.String(), Actual: weight.String()}) {
			return
		}
	}

	if limit, ok := c.MaxSingleDimension(); ok && dims.Largest() > limit {
		if !report(Violation{Check: CheckMaxSingleDimension, Limit: limit.String(), Actual: dims.Largest().String()}) {
			return
		}
	}

	if limit, ok := c.Combined(); ok {
		if v, failed := e.combined(dims, limit); failed {
			if !report(v) {
				return
			}
		}
	}

	if limit, ok := c.MaxGirth(); ok && dims.Girth() > limit {
		if !report(Violation{Check: CheckMaxGirth, Limit: limit.String(), Actual: dims.Girth().String()}) {
			return
		}
	}

	if limit, ok := c.MaxLengthPlusGirth(); ok && dims.LengthPlusGirth() > limit {
		if !report(Violation{
			Check:  CheckMaxLengthPlusGirth,
			Limit:  limit.String(),
			Actual: dims.LengthPlusGirth().String(),
		}) {
			return
		}
	}

	if box := c.BoxMax(); box != nil && !e.matcher.Fits(dims, box, nil) {
		if !report(Violation{Check: CheckBoxMax, Limit: box.String(), Actual: dims.String()}) {
			return
		}
	}
	if box := c.BoxMin(); box != nil && !e.matcher.Fits(dims, nil, box) {
		report(Violation{Check: CheckBoxMin, Limit: box.String(), Actual: dims.String()})
	}
}

// combined fails closed: a method without a formula never accepts.
func (e ConstraintEvaluator) combined(dims kernel.Dimensions, limit rule.CombinedLimit) (Violation, bool) {
	total, err := e.calculator.Calculate(limit.Method(), dims)
	if err != nil {
		return Violation{
			Check:  CheckCombinedDimensions,
			Limit:  limit.MaxMM().String() + " (" + limit.Method().String() + ")",
			Actual: err.Error(),
		}, true
	}
	if total > limit.MaxMM() {
		return Violation{
			Check:  CheckCombinedDimensions,
			Limit:  limit.MaxMM().String() + " (" + limit.Method().String() + ")",
			Actual: total.String(),
		}, true
	}
	return Violation{}, false
}
