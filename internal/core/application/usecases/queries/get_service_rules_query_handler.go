package queries

import (
	"context"

	"eligibility/internal/core/domain/model/kernel"
	"eligibility/internal/core/domain/model/rule"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type GetServiceRulesQueryHandler struct {
	db *gorm.DB
}

func NewGetServiceRulesQueryHandler(db *gorm.DB) GetServiceRulesQueryHandler {
	return GetServiceRulesQueryHandler{db: db}
}

func (h GetServiceRulesQueryHandler) Handle(
	ctx context.Context,
	query GetServiceRulesQuery,
) ([]GetServiceRulesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rules := make([]GetServiceRulesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			service_id,
			service_name,
			carrier,
			validation_type,
			weight_min_g,
			weight_max_g,
			max_single_dimension_mm,
			max_combined_dimensions_mm,
			combined_calculation_method,
			max_girth_mm,
			max_length_plus_girth_mm,
			box_dimensions_mm,
			box_dimensions_min_mm
		FROM service_rules
		WHERE @carrier = '' OR LOWER(carrier) = LOWER(@carrier)
		ORDER BY position
	`, map[string]any{"carrier": query.Carrier()}).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			r              GetServiceRulesQueryResponse
			id             uuid.UUID
			validationType string
			method         *string
			boxMax, boxMin pq.Float64Array
		)

		err = rows.Scan(
			&id,
			&r.ServiceID,
			&r.ServiceName,
			&r.Carrier,
			&validationType,
			&r.Constraints.WeightMinG,
			&r.Constraints.WeightMaxG,
			&r.Constraints.MaxSingleDimensionMM,
			&r.Constraints.MaxCombinedDimensionsMM,
			&method,
			&r.Constraints.MaxGirthMM,
			&r.Constraints.MaxLengthPlusGirthMM,
			&boxMax,
			&boxMin,
		)
		if err != nil {
			return nil, err
		}

		ruleID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		r.ID = ruleID

		vt, vtErr := rule.ParseValidationType(validationType)
		if vtErr != nil {
			return nil, vtErr
		}
		r.ValidationType = vt

		if method != nil {
			r.Constraints.CombinedCalculationMethod = *method
		}
		r.Constraints.BoxDimensionsMM = []float64(boxMax)
		r.Constraints.BoxDimensionsMinMM = []float64(boxMin)

		rules = append(rules, r)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return rules, nil
}
