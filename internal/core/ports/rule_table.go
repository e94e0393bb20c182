package ports

import (
	"context"

	"eligibility/internal/core/domain/model/rule"
)

// RuleTableProvider hands out the rule table evaluations run against.
// The returned table is immutable and may be shared between goroutines.
type RuleTableProvider interface {
	Snapshot() rule.Table
}

// RuleTableRefresher reloads the table from its source of truth.
type RuleTableRefresher interface {
	Refresh(ctx context.Context) error
}
