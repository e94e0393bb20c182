// Package rulerepo persists service rules in PostgreSQL through GORM.
package rulerepo

import (
	"eligibility/internal/core/domain/model/kernel"
	"eligibility/internal/core/domain/model/rule"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// ServiceRuleDTO is one row of service_rules. Position keeps insertion order, which the
// eligibility output follows. It is assigned by a database sequence, so concurrent inserts never share
// a position.
type ServiceRuleDTO struct {
	ID             uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Position       int64          `gorm:"autoIncrement;not null;uniqueIndex"`
	ServiceID      string         `gorm:"type:varchar(128);not null;index"`
	ServiceName    string         `gorm:"type:varchar(255)"`
	Carrier        string         `gorm:"type:varchar(64);index"`
	ValidationType string         `gorm:"type:varchar(32);not null"`
	Constraints    ConstraintsDTO `gorm:"embedded"`
}

func (ServiceRuleDTO) TableName() string {
	return "service_rules"
}

// ConstraintsDTO holds the optional bounds; NULL means "not populated".
type ConstraintsDTO struct {
	WeightMinG                *float64
	WeightMaxG                *float64
	MaxSingleDimensionMM      *float64        `gorm:"column:max_single_dimension_mm"`
	MaxCombinedDimensionsMM   *float64        `gorm:"column:max_combined_dimensions_mm"`
	CombinedCalculationMethod *string         `gorm:"type:varchar(32)"`
	MaxGirthMM                *float64        `gorm:"column:max_girth_mm"`
	MaxLengthPlusGirthMM      *float64        `gorm:"column:max_length_plus_girth_mm"`
	BoxDimensionsMM           pq.Float64Array `gorm:"type:double precision[];column:box_dimensions_mm"`
	BoxDimensionsMinMM        pq.Float64Array `gorm:"type:double precision[];column:box_dimensions_min_mm"`
}

func fromDomain(r rule.ServiceRule) ServiceRuleDTO {
	p := r.Constraints().Params()

	var method *string
	if p.CombinedCalculationMethod != "" {
		m := p.CombinedCalculationMethod
		method = &m
	}

	return ServiceRuleDTO{
		ID:             r.ID().Bytes(),
		ServiceID:      r.ServiceID(),
		ServiceName:    r.ServiceName(),
		Carrier:        r.Carrier(),
		ValidationType: r.ValidationType().String(),
		Constraints: ConstraintsDTO{
			WeightMinG:                p.WeightMinG,
			WeightMaxG:                p.WeightMaxG,
			MaxSingleDimensionMM:      p.MaxSingleDimensionMM,
			MaxCombinedDimensionsMM:   p.MaxCombinedDimensionsMM,
			CombinedCalculationMethod: method,
			MaxGirthMM:                p.MaxGirthMM,
			MaxLengthPlusGirthMM:      p.MaxLengthPlusGirthMM,
			BoxDimensionsMM:           pq.Float64Array(p.BoxDimensionsMM),
			BoxDimensionsMinMM:        pq.Float64Array(p.BoxDimensionsMinMM),
		},
	}
}

// ToParams converts stored constraint columns back to their raw form.
func (c ConstraintsDTO) ToParams() rule.ConstraintParams {
	var method string
	if c.CombinedCalculationMethod != nil {
		method = *c.CombinedCalculationMethod
	}

	return rule.ConstraintParams{
		WeightMinG:                c.WeightMinG,
		WeightMaxG:                c.WeightMaxG,
		MaxSingleDimensionMM:      c.MaxSingleDimensionMM,
		MaxCombinedDimensionsMM:   c.MaxCombinedDimensionsMM,
		CombinedCalculationMethod: method,
		MaxGirthMM:                c.MaxGirthMM,
		MaxLengthPlusGirthMM:      c.MaxLengthPlusGirthMM,
		BoxDimensionsMM:           []float64(c.BoxDimensionsMM),
		BoxDimensionsMinMM:        []float64(c.BoxDimensionsMinMM),
	}
}

// toDomain revalidates the row, so a hand edited table cannot smuggle a malformed rule
// into evaluation.
func toDomain(dto ServiceRuleDTO) (rule.ServiceRule, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return rule.ServiceRule{}, err
	}

	return rule.NewServiceRule(id, rule.ServiceRuleParams{
		ServiceID:      dto.ServiceID,
		ServiceName:    dto.ServiceName,
		Carrier:        dto.Carrier,
		ValidationType: dto.ValidationType,
		Constraints:    dto.Constraints.ToParams(),
	})
}
