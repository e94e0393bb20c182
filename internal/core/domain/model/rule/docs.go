// Package rule models carrier packaging rules.
//
// A ServiceRule is one acceptance path for a carrier service: a label set (service id, name, carrier,
// validation type) plus a ConstraintSet. Several rules may share a service id; they are alternatives and
// a package qualifies for the service when any one of them accepts it.
//
// Everything in this package is validated on construction. A rule that violates its own invariants
// (wrong dimension arity, negative bounds, inverted min/max pairs, unknown enum labels) is reported as
// errs.MalformedRuleError and never reaches evaluation.
//
// Example:
//
//	maxMM := 1200.0
//	combined := 2250.0
//	r, err := rule.NewServiceRule(kernel.NewUUID(), rule.ServiceRuleParams{
//	    ServiceID:      "evri_48_parcels",
//	    ServiceName:    "EVRI 48 Parcels",
//	    Carrier:        "EVRI",
//	    ValidationType: "dimension_limits",
//	    Constraints: rule.ConstraintParams{
//	        MaxSingleDimensionMM:     &maxMM,
//	        MaxCombinedDimensionsMM:  &combined,
//	        CombinedCalculationMethod: "standard_sum",
//	    },
//	})
package rule
