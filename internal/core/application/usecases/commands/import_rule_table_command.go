package commands

import (
	"errors"
	"fmt"
	"slices"

	"eligibility/internal/core/domain/model/rule"
	"eligibility/internal/pkg/guard"
)

var ErrImportRuleTableCommandIsNotConstructed = errors.New(
	"ImportRuleTableCommand must be created via NewImportRuleTableCommand constructor",
)

// ImportRuleTableCommand replaces the whole stored rule table.
// An empty rule list is accepted and clears the table.
type ImportRuleTableCommand struct { //nolint:recvcheck //using for validation
	rules []rule.ServiceRule

	guard guard.ConstructorGuard
}

func NewImportRuleTableCommand(rules []rule.ServiceRule) (ImportRuleTableCommand, error) {
	cmd := ImportRuleTableCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setRules(rules); err != nil {
		return ImportRuleTableCommand{}, err
	}

	return cmd, nil
}

func (c ImportRuleTableCommand) Validate() error {
	return c.guard.Validate(ErrImportRuleTableCommandIsNotConstructed)
}

func (c ImportRuleTableCommand) Rules() []rule.ServiceRule {
	return slices.Clone(c.rules)
}

func (c *ImportRuleTableCommand) setRules(rules []rule.ServiceRule) error {
	var all []error
	seen := make(map[string]struct{}, len(rules))
	for i, r := range rules {
		if err := r.Validate(); err != nil {
			all = append(all, fmt.Errorf("rule %d: %w", i, err))
			continue
		}
		if _, dup := seen[r.ID().String()]; dup {
			all = append(all, fmt.Errorf("rule %d: duplicate rule id %s", i, r.ID()))
		}
		seen[r.ID().String()] = struct{}{}
	}
	if err := errors.Join(all...); err != nil {
		return err
	}

	c.rules = slices.Clone(rules)
	return nil
}
