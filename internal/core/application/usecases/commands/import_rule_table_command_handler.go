package commands

import (
	"context"

	"eligibility/internal/core/ports"
)

// ImportRuleTableCommandHandler swaps the stored table for the command's rules in one transaction.
// Either every rule is stored or none is.
type ImportRuleTableCommandHandler struct {
	uowFactory RuleUoWFactory
	refresher  ports.RuleTableRefresher
}

func NewImportRuleTableCommandHandler(
	uowFactory RuleUoWFactory,
	refresher ports.RuleTableRefresher,
) ImportRuleTableCommandHandler {
	return ImportRuleTableCommandHandler{
		uowFactory: uowFactory,
		refresher:  refresher,
	}
}

func (h ImportRuleTableCommandHandler) Handle(ctx context.Context, cmd ImportRuleTableCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return inTransaction(ctx, h.uowFactory, h.refresher, func(repo ports.ServiceRuleRepository) error {
		return repo.ReplaceAll(ctx, cmd.Rules())
	})
}
