package commands

import (
	"context"

	"eligibility/internal/core/ports"
)

type AddServiceRuleCommandHandler struct {
	uowFactory RuleUoWFactory
	refresher  ports.RuleTableRefresher
}

func NewAddServiceRuleCommandHandler(
	uowFactory RuleUoWFactory,
	refresher ports.RuleTableRefresher,
) AddServiceRuleCommandHandler {
	return AddServiceRuleCommandHandler{
		uowFactory: uowFactory,
		refresher:  refresher,
	}
}

func (h AddServiceRuleCommandHandler) Handle(ctx context.Context, cmd AddServiceRuleCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return inTransaction(ctx, h.uowFactory, h.refresher, func(repo ports.ServiceRuleRepository) error {
		return repo.Add(ctx, cmd.Rule())
	})
}
