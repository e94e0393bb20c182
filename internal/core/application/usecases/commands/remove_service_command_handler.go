package commands

import (
	"context"

	"eligibility/internal/core/ports"
)

// RemoveServiceCommandHandler returns errs.ObjectNotFoundError for an unknown service.
type RemoveServiceCommandHandler struct {
	uowFactory RuleUoWFactory
	refresher  ports.RuleTableRefresher
}

func NewRemoveServiceCommandHandler(
	uowFactory RuleUoWFactory,
	refresher ports.RuleTableRefresher,
) RemoveServiceCommandHandler {
	return RemoveServiceCommandHandler{
		uowFactory: uowFactory,
		refresher:  refresher,
	}
}

func (h RemoveServiceCommandHandler) Handle(ctx context.Context, cmd RemoveServiceCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return inTransaction(ctx, h.uowFactory, h.refresher, func(repo ports.ServiceRuleRepository) error {
		return repo.DeleteByServiceID(ctx, cmd.ServiceID())
	})
}
