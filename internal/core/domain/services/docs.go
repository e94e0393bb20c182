// Package services contains the eligibility engine.
//
// Components, leaves first:
//   - CombinedDimensionCalculator: the per-method "combined size" formulas
//   - BoxFitMatcher: rotation-invariant envelope check
//   - ConstraintEvaluator: one ConstraintSet against one parcel
//   - EligibilityAggregator: OR across a service's alternatives, for every service in a table
//
// All components are stateless values; a single instance may be shared by any number of goroutines.
package services
