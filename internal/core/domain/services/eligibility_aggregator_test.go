package services_test

import (
	"testing"

	"eligibility/internal/core/domain/model/kernel"
	"eligibility/internal/core/domain/model/parcel"
	"eligibility/internal/core/domain/model/rule"
	"eligibility/internal/core/domain/services"
	"eligibility/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAggregator() services.EligibilityAggregator {
	return services.NewEligibilityAggregator(services.NewConstraintEvaluator())
}

func TestEligibilityAggregator_TwoRuleScenario(t *testing.T) {
	// Given
	strict := newRule(t, "evri_parcel", "dimension_limits", rule.ConstraintParams{
		WeightMaxG:                ptr(30000),
		MaxSingleDimensionMM:      ptr(1200),
		MaxCombinedDimensionsMM:   ptr(2250),
		CombinedCalculationMethod: "standard_sum",
	})
	oversized := newRule(t, "evri_parcel", "oversized", rule.ConstraintParams{
		WeightMaxG:           ptr(30000),
		MaxSingleDimensionMM: ptr(1800),
	})
	table := rule.NewTable(strict, oversized)
	pkg := newParcel(t, 5000, 1300, 200, 100)

	// When
	result, err := newAggregator().Eligible(pkg, table)

	// Then
	require.NoError(t, err)
	require.Len(t, result.Services, 1)
	got := result.Services[0]
	assert.Equal(t, "evri_parcel", got.ServiceID)
	assert.Equal(t, rule.Oversized, got.ValidationType)
	require.Len(t, got.MatchedRules, 1)
	assert.True(t, oversized.ID().IsEqual(got.MatchedRules[0]))
}

func TestEligibilityAggregator_BoxScenario(t *testing.T) {
	table := rule.NewTable(newRule(t, "large_letter", "box_fit", rule.ConstraintParams{
		BoxDimensionsMM: []float64{353, 250, 25},
	}))
	aggregator := newAggregator()

	accepted, err := aggregator.Eligible(newParcel(t, 100, 250, 353, 24), table)
	require.NoError(t, err)
	assert.Equal(t, []string{"large_letter"}, accepted.ServiceIDs())

	rejected, err := aggregator.Eligible(newParcel(t, 100, 250, 353, 26), table)
	require.NoError(t, err)
	assert.True(t, rejected.IsEmpty())
}

func TestEligibilityAggregator_OrSemantics(t *testing.T) {
	aggregator := newAggregator()
	light := newRule(t, "svc", "dimension_limits", rule.ConstraintParams{WeightMaxG: ptr(1000)})
	small := newRule(t, "svc", "box_fit", rule.ConstraintParams{BoxDimensionsMM: []float64{100, 100, 100}})
	table := rule.NewTable(light, small)

	t.Run("one_alternative_passes", func(t *testing.T) {
		result, err := aggregator.Eligible(newParcel(t, 5000, 50, 50, 50), table)

		require.NoError(t, err)
		assert.Equal(t, []string{"svc"}, result.ServiceIDs())
		assert.Equal(t, rule.BoxFit, result.Services[0].ValidationType)
	})

	t.Run("both_pass_and_both_are_reported", func(t *testing.T) {
		result, err := aggregator.Eligible(newParcel(t, 10, 50, 50, 50), table)

		require.NoError(t, err)
		require.Len(t, result.Services, 1)
		assert.Equal(t, []kernel.UUID{light.ID(), small.ID()}, result.Services[0].MatchedRules)
		assert.Equal(t, rule.DimensionLimits, result.Services[0].ValidationType)
	})

	t.Run("both_fail", func(t *testing.T) {
		result, err := aggregator.Eligible(newParcel(t, 5000, 500, 50, 50), table)

		require.NoError(t, err)
		assert.Empty(t, result.Services)
	})
}

func TestEligibilityAggregator_FirstSeenOrder(t *testing.T) {
	table := rule.NewTable(
		newRule(t, "c", "oversized", rule.ConstraintParams{}),
		newRule(t, "a", "oversized", rule.ConstraintParams{WeightMaxG: ptr(1)}),
		newRule(t, "b", "oversized", rule.ConstraintParams{}),
		newRule(t, "a", "oversized", rule.ConstraintParams{}),
	)

	result, err := newAggregator().Eligible(newParcel(t, 10, 1, 1, 1), table)

	require.NoError(t, err)
	assert.Equal(t, []string{"c", "a", "b"}, result.ServiceIDs())
}

func TestEligibilityAggregator_EmptyTable(t *testing.T) {
	result, err := newAggregator().Eligible(newParcel(t, 10, 1, 1, 1), rule.NewTable())

	require.NoError(t, err)
	assert.True(t, result.IsEmpty())
	assert.Equal(t, []string{}, result.ServiceIDs())
}

func TestEligibilityAggregator_InvalidParcel(t *testing.T) {
	table := rule.NewTable(newRule(t, "svc", "oversized", rule.ConstraintParams{}))

	_, err := newAggregator().Eligible(parcel.Parcel{}, table)

	require.ErrorIs(t, err, errs.ErrInvalidPackage)
}

func TestEligibilityAggregator_Explain(t *testing.T) {
	// Given
	tooSmall := newRule(t, "letter", "box_fit", rule.ConstraintParams{BoxDimensionsMM: []float64{353, 250, 25}})
	tooLight := newRule(t, "letter", "dimension_limits", rule.ConstraintParams{WeightMaxG: ptr(100)})
	accepts := newRule(t, "parcel", "dimension_limits", rule.ConstraintParams{MaxSingleDimensionMM: ptr(1200)})
	table := rule.NewTable(tooSmall, tooLight, accepts)

	// When
	result, err := newAggregator().Explain(newParcel(t, 500, 400, 300, 200), table)

	// Then
	require.NoError(t, err)
	assert.Equal(t, []string{"parcel"}, result.ServiceIDs())
	require.Len(t, result.Rejections, 1)
	rejection := result.Rejections[0]
	assert.Equal(t, "letter", rejection.ServiceID)
	require.Len(t, rejection.Alternatives, 2)
	assert.Equal(t, services.CheckBoxMax, rejection.Alternatives[0].Violations[0].Check)
	assert.Equal(t, services.CheckWeightMax, rejection.Alternatives[1].Violations[0].Check)
	assert.True(t, tooLight.ID().IsEqual(rejection.Alternatives[1].RuleID))
}

func TestEligibilityAggregator_EligibleHasNoRejections(t *testing.T) {
	table := rule.NewTable(newRule(t, "svc", "oversized", rule.ConstraintParams{WeightMaxG: ptr(1)}))

	result, err := newAggregator().Eligible(newParcel(t, 10, 1, 1, 1), table)

	require.NoError(t, err)
	assert.Nil(t, result.Rejections)
}
