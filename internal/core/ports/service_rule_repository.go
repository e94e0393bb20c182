// Package ports defines the contracts between the eligibility core and its infrastructure.
package ports

import (
	"context"

	"eligibility/internal/core/domain/model/rule"
)

// ServiceRuleRepository persists service rules. Rules come back in insertion order, which is the
// order eligibility results are reported in.
type ServiceRuleRepository interface {
	// Add stores one rule. The rule must be valid.
	Add(ctx context.Context, r rule.ServiceRule) error

	// ReplaceAll removes every stored rule and stores rules in their slice order.
	ReplaceAll(ctx context.Context, rules []rule.ServiceRule) error

	// DeleteByServiceID removes every alternative of a service.
	// Returns errs.ObjectNotFoundError when the service has no rules.
	DeleteByServiceID(ctx context.Context, serviceID string) error

	// GetAll returns every rule in insertion order.
	GetAll(ctx context.Context) ([]rule.ServiceRule, error)
}
