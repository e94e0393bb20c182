package services

import (
	"eligibility/internal/core/domain/model/kernel"
	"eligibility/internal/core/domain/model/parcel"
	"eligibility/internal/core/domain/model/rule"
)

// Eligibility is one service a parcel qualifies for.
// ValidationType is taken from the first matching alternative.
type Eligibility struct {
	ServiceID      string
	ServiceName    string
	Carrier        string
	ValidationType rule.ValidationType
	MatchedRules   []kernel.UUID
}

// RuleRejection explains why one alternative did not accept the parcel.
type RuleRejection struct {
	RuleID         kernel.UUID
	ValidationType rule.ValidationType
	Violations     []Violation
}

// Rejection is a service the parcel does not qualify for, with every alternative's reasons.
type Rejection struct {
	ServiceID    string
	ServiceName  string
	Carrier      string
	Alternatives []RuleRejection
}

// EligibilityResult lists eligible services in the table's first-seen order.
// Rejections is only filled by Explain.
type EligibilityResult struct {
	Services   []Eligibility
	Rejections []Rejection
}

// ServiceIDs returns the eligible service ids in order.
func (r EligibilityResult) ServiceIDs() []string {
	ids := make([]string, 0, len(r.Services))
	for _, s := range r.Services {
		ids = append(ids, s.ServiceID)
	}
	return ids
}

func (r EligibilityResult) IsEmpty() bool {
	return len(r.Services) == 0
}

// EligibilityAggregator turns per-rule verdicts into per-service eligibility.
//
// A service is eligible when at least one of its alternatives accepts the parcel. Every
// alternative is still evaluated, so the result names all matching rules.
type EligibilityAggregator struct {
	evaluator ConstraintEvaluator
}

func NewEligibilityAggregator(evaluator ConstraintEvaluator) EligibilityAggregator {
	return EligibilityAggregator{evaluator: evaluator}
}

// Eligible validates the parcel and evaluates the whole table. An invalid parcel returns its
// error before any rule is looked at. An empty table, or a parcel nothing accepts, yields an
// empty result and no error.
func (a EligibilityAggregator) Eligible(p parcel.Parcel, t rule.Table) (EligibilityResult, error) {
	return a.aggregate(p, t, false)
}

// Explain is Eligible plus the violations behind every rejected service.
func (a EligibilityAggregator) Explain(p parcel.Parcel, t rule.Table) (EligibilityResult, error) {
	return a.aggregate(p, t, true)
}

func (a EligibilityAggregator) aggregate(p parcel.Parcel, t rule.Table, explain bool) (EligibilityResult, error) {
	if err := p.Validate(); err != nil {
		return EligibilityResult{}, err
	}

	result := EligibilityResult{Services: []Eligibility{}}
	for _, service := range t.Services() {
		var (
			matched  []kernel.UUID
			first    rule.ValidationType
			rejected []RuleRejection
		)

		for _, alt := range service.Alternatives {
			if a.evaluator.Evaluate(p, alt.Constraints()) {
				if len(matched) == 0 {
					first = alt.ValidationType()
				}
				matched = append(matched, alt.ID())
				continue
			}
			if explain {
				rejected = append(rejected, RuleRejection{
					RuleID:         alt.ID(),
					ValidationType: alt.ValidationType(),
					Violations:     a.evaluator.Violations(p, alt.Constraints()),
				})
			}
		}

		if len(matched) > 0 {
			result.Services = append(result.Services, Eligibility{
				ServiceID:      service.ID,
				ServiceName:    service.Name,
				Carrier:        service.Carrier,
				ValidationType: first,
				MatchedRules:   matched,
			})
			continue
		}
		if explain {
			result.Rejections = append(result.Rejections, Rejection{
				ServiceID:    service.ID,
				ServiceName:  service.Name,
				Carrier:      service.Carrier,
				Alternatives: rejected,
			})
		}
	}

	return result, nil
}
