package servers

import (
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Defines values for ConstraintsCombinedCalculationMethod.
const (
	Circumference   ConstraintsCombinedCalculationMethod = "circumference"
	Custom          ConstraintsCombinedCalculationMethod = "custom"
	LengthPlusGirth ConstraintsCombinedCalculationMethod = "length_plus_girth"
	StandardSum     ConstraintsCombinedCalculationMethod = "standard_sum"
)

// Defines values for NewServiceRuleValidationType.
const (
	BoxFit          NewServiceRuleValidationType = "box_fit"
	DimensionLimits NewServiceRuleValidationType = "dimension_limits"
	Oversized       NewServiceRuleValidationType = "oversized"
)

// BatchEligibilityRequest defines model for BatchEligibilityRequest.
type BatchEligibilityRequest struct {
	Explain  *bool     `json:"explain,omitempty"`
	Packages []Package `json:"packages"`
}

// BatchEligibilityResult defines model for BatchEligibilityResult.
type BatchEligibilityResult struct {
	Results []EligibilityResult `json:"results"`
}

// Constraints defines model for Constraints.
type Constraints struct {
	BoxDimensionsMinMm        *[]float64                            `json:"box_dimensions_min_mm,omitempty"`
	BoxDimensionsMm           *[]float64                            `json:"box_dimensions_mm,omitempty"`
	CombinedCalculationMethod *ConstraintsCombinedCalculationMethod `json:"combined_calculation_method,omitempty"`
	MaxCombinedDimensionsMm   *float64                              `json:"max_combined_dimensions_mm,omitempty"`
	MaxGirthMm                *float64                              `json:"max_girth_mm,omitempty"`
	MaxLengthPlusGirthMm      *float64                              `json:"max_length_plus_girth_mm,omitempty"`
	MaxSingleDimensionMm      *float64                              `json:"max_single_dimension_mm,omitempty"`
	WeightMaxG                *float64                              `json:"weight_max_g,omitempty"`
	WeightMinG                *float64                              `json:"weight_min_g,omitempty"`
}

// ConstraintsCombinedCalculationMethod defines model for Constraints.CombinedCalculationMethod.
type ConstraintsCombinedCalculationMethod string

// EligibilityRequest defines model for EligibilityRequest.
type EligibilityRequest struct {
	// Explain Also report why every other service rejected the package.
	Explain *bool   `json:"explain,omitempty"`
	Package Package `json:"package"`
}

// EligibilityResult defines model for EligibilityResult.
type EligibilityResult struct {
	Rejections *[]ServiceRejection `json:"rejections,omitempty"`
	Services   []EligibleService   `json:"services"`
}

// EligibleService defines model for EligibleService.
type EligibleService struct {
	Carrier        string               `json:"carrier"`
	MatchedRuleIds []openapi_types.UUID `json:"matched_rule_ids"`
	ServiceId      string               `json:"service_id"`
	ServiceName    string               `json:"service_name"`
	ValidationType string               `json:"validation_type"`
}

// Error defines model for Error.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewServiceRule defines model for NewServiceRule.
type NewServiceRule struct {
	Carrier        *string                      `json:"carrier,omitempty"`
	Constraints    Constraints                  `json:"constraints"`
	ServiceId      string                       `json:"service_id"`
	ServiceName    *string                      `json:"service_name,omitempty"`
	ValidationType NewServiceRuleValidationType `json:"validation_type"`
}

// NewServiceRuleValidationType defines model for NewServiceRule.ValidationType.
type NewServiceRuleValidationType string

// Package defines model for Package.
type Package struct {
	HeightMm float64 `json:"height_mm"`
	LengthMm float64 `json:"length_mm"`
	WeightG  float64 `json:"weight_g"`
	WidthMm  float64 `json:"width_mm"`
}

// RuleRejection defines model for RuleRejection.
type RuleRejection struct {
	RuleId         openapi_types.UUID `json:"rule_id"`
	ValidationType string             `json:"validation_type"`
	Violations     []Violation        `json:"violations"`
}

// RuleTableSummary defines model for RuleTableSummary.
type RuleTableSummary struct {
	Rules    int `json:"rules"`
	Services int `json:"services"`
}

// ServiceRejection defines model for ServiceRejection.
type ServiceRejection struct {
	Alternatives []RuleRejection `json:"alternatives"`
	Carrier      string          `json:"carrier"`
	ServiceId    string          `json:"service_id"`
	ServiceName  string          `json:"service_name"`
}

// ServiceRule defines model for ServiceRule.
type ServiceRule struct {
	Carrier        *string                      `json:"carrier,omitempty"`
	Constraints    Constraints                  `json:"constraints"`
	Id             openapi_types.UUID           `json:"id"`
	ServiceId      string                       `json:"service_id"`
	ServiceName    *string                      `json:"service_name,omitempty"`
	ValidationType NewServiceRuleValidationType `json:"validation_type"`
}

// Violation defines model for Violation.
type Violation struct {
	Actual string `json:"actual"`
	Check  string `json:"check"`
	Limit  string `json:"limit"`
}

// GetServicesParams defines parameters for GetServices.
type GetServicesParams struct {
	// Carrier Case-insensitive carrier filter.
	Carrier *string `form:"carrier,omitempty" json:"carrier,omitempty"`
}

// CheckEligibilityJSONRequestBody defines body for CheckEligibility for application/json ContentType.
type CheckEligibilityJSONRequestBody = EligibilityRequest

// CheckEligibilityBatchJSONRequestBody defines body for CheckEligibilityBatch for application/json ContentType.
type CheckEligibilityBatchJSONRequestBody = BatchEligibilityRequest

// CreateServiceRuleJSONRequestBody defines body for CreateServiceRule for application/json ContentType.
type CreateServiceRuleJSONRequestBody = NewServiceRule
