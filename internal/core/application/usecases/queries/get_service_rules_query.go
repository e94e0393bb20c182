package queries

import (
	"errors"
	"strings"

	"eligibility/internal/core/domain/model/kernel"
	"eligibility/internal/core/domain/model/rule"
	"eligibility/internal/pkg/guard"
)

var ErrGetServiceRulesQueryIsNotConstructed = errors.New(
	"GetServiceRulesQuery must be created via NewGetServiceRulesQuery constructor",
)

// GetServiceRulesQuery lists stored rules in table order, optionally for one carrier.
// The carrier match ignores case; an empty carrier lists everything.
type GetServiceRulesQuery struct {
	carrier string

	guard guard.ConstructorGuard
}

func NewGetServiceRulesQuery(carrier string) GetServiceRulesQuery {
	return GetServiceRulesQuery{
		carrier: strings.TrimSpace(carrier),
		guard:   guard.NewConstructorGuard(),
	}
}

func (q GetServiceRulesQuery) Validate() error {
	return q.guard.Validate(ErrGetServiceRulesQueryIsNotConstructed)
}

func (q GetServiceRulesQuery) Carrier() string {
	return q.carrier
}

// GetServiceRulesQueryResponse is the read model of one stored rule.
type GetServiceRulesQueryResponse struct {
	ID             kernel.UUID
	ServiceID      string
	ServiceName    string
	Carrier        string
	ValidationType rule.ValidationType
	Constraints    rule.ConstraintParams
}
