package queries

import (
	"context"

	"eligibility/internal/core/domain/model/parcel"
	"eligibility/internal/core/domain/model/rule"
	"eligibility/internal/core/domain/services"
	"eligibility/internal/core/ports"
)

// CheckEligibilityQueryHandler evaluates a parcel against the current table snapshot.
type CheckEligibilityQueryHandler struct {
	tables     ports.RuleTableProvider
	aggregator services.EligibilityAggregator
}

func NewCheckEligibilityQueryHandler(
	tables ports.RuleTableProvider,
	aggregator services.EligibilityAggregator,
) CheckEligibilityQueryHandler {
	return CheckEligibilityQueryHandler{
		tables:     tables,
		aggregator: aggregator,
	}
}

func (h CheckEligibilityQueryHandler) Handle(
	ctx context.Context,
	query CheckEligibilityQuery,
) (services.EligibilityResult, error) {
	if err := query.Validate(); err != nil {
		return services.EligibilityResult{}, err
	}
	if err := ctx.Err(); err != nil {
		return services.EligibilityResult{}, err
	}

	return evaluate(h.aggregator, query.Parcel(), h.tables.Snapshot(), query.Explain())
}

func evaluate(
	aggregator services.EligibilityAggregator,
	p parcel.Parcel,
	table rule.Table,
	explain bool,
) (services.EligibilityResult, error) {
	if explain {
		return aggregator.Explain(p, table)
	}
	return aggregator.Eligible(p, table)
}
