// Package memory holds the in-process rule table cache that eligibility checks read from.
package memory

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"

	"eligibility/internal/core/domain/model/rule"
	"eligibility/internal/core/ports"
	"eligibility/internal/pkg/errs"
)

// RuleLoader reads the full, ordered rule list from the source of truth.
type RuleLoader interface {
	GetAll(ctx context.Context) ([]rule.ServiceRule, error)
}

var (
	_ ports.RuleTableProvider  = (*RuleTableCache)(nil)
	_ ports.RuleTableRefresher = (*RuleTableCache)(nil)
)

// RuleTableCache serves lock-free snapshots of the rule table.
// Refresh swaps in a whole new table; readers never see a partial update.
type RuleTableCache struct {
	loader RuleLoader
	logger *slog.Logger

	table     atomic.Pointer[rule.Table]
	refreshMu sync.Mutex
}

func NewRuleTableCache(loader RuleLoader, logger *slog.Logger, initial ...rule.ServiceRule) (*RuleTableCache, error) {
	if loader == nil {
		return nil, errs.NewValueIsRequiredError("loader")
	}
	if logger == nil {
		logger = slog.Default()
	}

	c := &RuleTableCache{
		loader: loader,
		logger: logger.With("component", "rule_table_cache"),
	}
	c.Store(rule.NewTable(initial...))
	return c, nil
}

// Snapshot returns the current table.
func (c *RuleTableCache) Snapshot() rule.Table {
	return *c.table.Load()
}

// Store replaces the current table.
func (c *RuleTableCache) Store(t rule.Table) {
	c.table.Store(&t)
}

// Refresh reloads the table. On failure the previous snapshot stays in place.
func (c *RuleTableCache) Refresh(ctx context.Context) error {
	c.refreshMu.Lock()
	defer c.refreshMu.Unlock()

	rules, err := c.loader.GetAll(ctx)
	if err != nil {
		c.logger.WarnContext(ctx, "Rule table refresh failed, serving previous snapshot", "error", err)
		return err
	}

	previous := c.Snapshot().Len()
	c.Store(rule.NewTable(rules...))

	if previous != len(rules) {
		c.logger.InfoContext(ctx, "Rule table reloaded", "previous_rules", previous, "rules", len(rules))
	}
	return nil
}
