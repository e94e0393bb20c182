package http

import (
	"fmt"
	"slices"

	"eligibility/internal/core/domain/model/kernel"
	"eligibility/internal/core/domain/model/parcel"
	"eligibility/internal/core/domain/model/rule"
	"eligibility/internal/core/domain/services"
	"eligibility/internal/generated/servers"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

func toParcel(p servers.Package) (parcel.Parcel, error) {
	return parcel.NewParcel(
		kernel.Grams(p.WeightG),
		kernel.Millimeters(p.LengthMm),
		kernel.Millimeters(p.WidthMm),
		kernel.Millimeters(p.HeightMm),
	)
}

func toParcels(packages []servers.Package) ([]parcel.Parcel, error) {
	parcels := make([]parcel.Parcel, 0, len(packages))
	for i, pkg := range packages {
		p, err := toParcel(pkg)
		if err != nil {
			return nil, fmt.Errorf("packages[%d]: %w", i, err)
		}
		parcels = append(parcels, p)
	}
	return parcels, nil
}

func toEligibilityResult(result services.EligibilityResult) servers.EligibilityResult {
	response := servers.EligibilityResult{
		Services: make([]servers.EligibleService, len(result.Services)),
	}

	for i, e := range result.Services {
		response.Services[i] = servers.EligibleService{
			ServiceId:      e.ServiceID,
			ServiceName:    e.ServiceName,
			Carrier:        e.Carrier,
			ValidationType: e.ValidationType.String(),
			MatchedRuleIds: toUUIDs(e.MatchedRules),
		}
	}

	if len(result.Rejections) > 0 {
		rejections := make([]servers.ServiceRejection, len(result.Rejections))
		for i, r := range result.Rejections {
			rejections[i] = toServiceRejection(r)
		}
		response.Rejections = &rejections
	}

	return response
}

func toServiceRejection(r services.Rejection) servers.ServiceRejection {
	alternatives := make([]servers.RuleRejection, len(r.Alternatives))
	for i, alt := range r.Alternatives {
		violations := make([]servers.Violation, len(alt.Violations))
		for j, v := range alt.Violations {
			violations[j] = servers.Violation{
				Check:  string(v.Check),
				Limit:  v.Limit,
				Actual: v.Actual,
			}
		}
		alternatives[i] = servers.RuleRejection{
			RuleId:         alt.RuleID.Bytes(),
			ValidationType: alt.ValidationType.String(),
			Violations:     violations,
		}
	}

	return servers.ServiceRejection{
		ServiceId:    r.ServiceID,
		ServiceName:  r.ServiceName,
		Carrier:      r.Carrier,
		Alternatives: alternatives,
	}
}

func toUUIDs(ids []kernel.UUID) []openapi_types.UUID {
	out := make([]openapi_types.UUID, len(ids))
	for i, id := range ids {
		out[i] = id.Bytes()
	}
	return out
}

func toServiceRule(id kernel.UUID, p rule.ServiceRuleParams) servers.ServiceRule {
	return servers.ServiceRule{
		Id:             id.Bytes(),
		ServiceId:      p.ServiceID,
		ServiceName:    optional(p.ServiceName),
		Carrier:        optional(p.Carrier),
		ValidationType: servers.NewServiceRuleValidationType(p.ValidationType),
		Constraints:    toConstraints(p.Constraints),
	}
}

func toConstraints(c rule.ConstraintParams) servers.Constraints {
	out := servers.Constraints{
		WeightMinG:              c.WeightMinG,
		WeightMaxG:              c.WeightMaxG,
		MaxSingleDimensionMm:    c.MaxSingleDimensionMM,
		MaxCombinedDimensionsMm: c.MaxCombinedDimensionsMM,
		MaxGirthMm:              c.MaxGirthMM,
		MaxLengthPlusGirthMm:    c.MaxLengthPlusGirthMM,
	}
	if c.CombinedCalculationMethod != "" {
		m := servers.ConstraintsCombinedCalculationMethod(c.CombinedCalculationMethod)
		out.CombinedCalculationMethod = &m
	}
	if c.BoxDimensionsMM != nil {
		box := slices.Clone(c.BoxDimensionsMM)
		out.BoxDimensionsMm = &box
	}
	if c.BoxDimensionsMinMM != nil {
		box := slices.Clone(c.BoxDimensionsMinMM)
		out.BoxDimensionsMinMm = &box
	}
	return out
}

func fromNewServiceRule(req servers.NewServiceRule) rule.ServiceRuleParams {
	c := req.Constraints
	params := rule.ConstraintParams{
		WeightMinG:              c.WeightMinG,
		WeightMaxG:              c.WeightMaxG,
		MaxSingleDimensionMM:    c.MaxSingleDimensionMm,
		MaxCombinedDimensionsMM: c.MaxCombinedDimensionsMm,
		MaxGirthMM:              c.MaxGirthMm,
		MaxLengthPlusGirthMM:    c.MaxLengthPlusGirthMm,
	}
	if c.CombinedCalculationMethod != nil {
		params.CombinedCalculationMethod = string(*c.CombinedCalculationMethod)
	}
	if c.BoxDimensionsMm != nil {
		params.BoxDimensionsMM = slices.Clone(*c.BoxDimensionsMm)
	}
	if c.BoxDimensionsMinMm != nil {
		params.BoxDimensionsMinMM = slices.Clone(*c.BoxDimensionsMinMm)
	}

	return rule.ServiceRuleParams{
		ServiceID:      req.ServiceId,
		ServiceName:    deref(req.ServiceName),
		Carrier:        deref(req.Carrier),
		ValidationType: string(req.ValidationType),
		Constraints:    params,
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
