package ruleconfig

import (
	"slices"

	"eligibility/internal/core/domain/model/rule"
)

// Document is the top level of a rule table file.
type Document struct {
	Version  int             `yaml:"version,omitempty"  json:"version,omitempty"`
	Services []ServiceRecord `yaml:"services"           json:"services"`
}

// ServiceRecord describes one carrier service. Constraints and every entry of
// AlternativeConstraints become separate rules sharing the service id, in that order.
type ServiceRecord struct {
	ServiceID              string              `yaml:"service_id"                        json:"service_id"`
	ServiceName            string              `yaml:"service_name,omitempty"            json:"service_name,omitempty"`
	Carrier                string              `yaml:"carrier,omitempty"                 json:"carrier,omitempty"`
	ValidationType         string              `yaml:"validation_type"                   json:"validation_type"`
	Constraints            *ConstraintsRecord  `yaml:"constraints,omitempty"             json:"constraints,omitempty"`
	AlternativeConstraints []ConstraintsRecord `yaml:"alternative_constraints,omitempty" json:"alternative_constraints,omitempty"`
}

type ConstraintsRecord struct {
	WeightMinG                *float64  `yaml:"weight_min_g,omitempty"                json:"weight_min_g,omitempty"`
	WeightMaxG                *float64  `yaml:"weight_max_g,omitempty"                json:"weight_max_g,omitempty"`
	MaxSingleDimensionMM      *float64  `yaml:"max_single_dimension_mm,omitempty"     json:"max_single_dimension_mm,omitempty"`
	MaxCombinedDimensionsMM   *float64  `yaml:"max_combined_dimensions_mm,omitempty"  json:"max_combined_dimensions_mm,omitempty"`
	CombinedCalculationMethod string    `yaml:"combined_calculation_method,omitempty" json:"combined_calculation_method,omitempty"`
	MaxGirthMM                *float64  `yaml:"max_girth_mm,omitempty"                json:"max_girth_mm,omitempty"`
	MaxLengthPlusGirthMM      *float64  `yaml:"max_length_plus_girth_mm,omitempty"    json:"max_length_plus_girth_mm,omitempty"`
	BoxDimensionsMM           []float64 `yaml:"box_dimensions_mm,omitempty"           json:"box_dimensions_mm,omitempty"`
	BoxDimensionsMinMM        []float64 `yaml:"box_dimensions_min_mm,omitempty"       json:"box_dimensions_min_mm,omitempty"`
}

func (c ConstraintsRecord) toParams() rule.ConstraintParams {
	return rule.ConstraintParams{
		WeightMinG:                c.WeightMinG,
		WeightMaxG:                c.WeightMaxG,
		MaxSingleDimensionMM:      c.MaxSingleDimensionMM,
		MaxCombinedDimensionsMM:   c.MaxCombinedDimensionsMM,
		CombinedCalculationMethod: c.CombinedCalculationMethod,
		MaxGirthMM:                c.MaxGirthMM,
		MaxLengthPlusGirthMM:      c.MaxLengthPlusGirthMM,
		BoxDimensionsMM:           slices.Clone(c.BoxDimensionsMM),
		BoxDimensionsMinMM:        slices.Clone(c.BoxDimensionsMinMM),
	}
}

// alternatives flattens the record into one params value per acceptance path.
func (r ServiceRecord) alternatives() []rule.ServiceRuleParams {
	sets := make([]ConstraintsRecord, 0, 1+len(r.AlternativeConstraints))
	if r.Constraints != nil {
		sets = append(sets, *r.Constraints)
	}
	sets = append(sets, r.AlternativeConstraints...)

	out := make([]rule.ServiceRuleParams, 0, len(sets))
	for _, c := range sets {
		out = append(out, rule.ServiceRuleParams{
			ServiceID:      r.ServiceID,
			ServiceName:    r.ServiceName,
			Carrier:        r.Carrier,
			ValidationType: r.ValidationType,
			Constraints:    c.toParams(),
		})
	}
	return out
}
