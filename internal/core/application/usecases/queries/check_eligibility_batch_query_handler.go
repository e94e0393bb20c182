package queries

import (
	"context"
	"runtime"

	"eligibility/internal/core/domain/services"
	"eligibility/internal/core/ports"

	"golang.org/x/sync/errgroup"
)

// CheckEligibilityBatchQueryHandler evaluates parcels concurrently. Every parcel sees the same
// snapshot, and results keep the order of the query's parcels.
type CheckEligibilityBatchQueryHandler struct {
	tables      ports.RuleTableProvider
	aggregator  services.EligibilityAggregator
	concurrency int
}

func NewCheckEligibilityBatchQueryHandler(
	tables ports.RuleTableProvider,
	aggregator services.EligibilityAggregator,
) CheckEligibilityBatchQueryHandler {
	return CheckEligibilityBatchQueryHandler{
		tables:      tables,
		aggregator:  aggregator,
		concurrency: runtime.GOMAXPROCS(0),
	}
}

func (h CheckEligibilityBatchQueryHandler) Handle(
	ctx context.Context,
	query CheckEligibilityBatchQuery,
) ([]services.EligibilityResult, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	table := h.tables.Snapshot()
	parcels := query.Parcels()
	results := make([]services.EligibilityResult, len(parcels))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(h.concurrency)
	for i, p := range parcels {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			result, err := evaluate(h.aggregator, p, table, query.Explain())
			if err != nil {
				return err
			}
			results[i] = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
