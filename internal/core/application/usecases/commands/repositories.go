// Package commands contains the operations that change the stored rule table.
// Every command follows the same pattern: validate, run in a transaction, refresh the cached table.
package commands

import (
	"context"

	"eligibility/internal/core/ports"
)

type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// RuleRepoFactory provides access to the rule repository within a transaction.
	RuleRepoFactory interface {
		ServiceRuleRepository() ports.ServiceRuleRepository
	}

	// RuleUoW manages transactions for rule table changes.
	RuleUoW interface {
		TxManager
		RuleRepoFactory
	}

	// RuleUoWFactory creates new rule unit of work instances.
	RuleUoWFactory interface {
		Create() RuleUoW
	}
)

// inTransaction runs fn inside a fresh unit of work and refreshes the cached table after commit.
// Once the commit succeeds the command has succeeded: a failed refresh is logged by the cache
// and the scheduled refresh picks the change up later.
func inTransaction(
	ctx context.Context,
	factory RuleUoWFactory,
	refresher ports.RuleTableRefresher,
	fn func(repo ports.ServiceRuleRepository) error,
) error {
	uow := factory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := fn(uow.ServiceRuleRepository()); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	_ = refresher.Refresh(ctx)
	return nil
}
