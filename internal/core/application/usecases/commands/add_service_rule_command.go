package commands

import (
	"errors"

	"eligibility/internal/core/domain/model/rule"
	"eligibility/internal/pkg/guard"
)

var ErrAddServiceRuleCommandIsNotConstructed = errors.New(
	"AddServiceRuleCommand must be created via NewAddServiceRuleCommand constructor",
)

// AddServiceRuleCommand appends one alternative to the table. When the service id already
// exists the rule becomes another OR path of that service.
type AddServiceRuleCommand struct { //nolint:recvcheck //using for validation
	rule rule.ServiceRule

	guard guard.ConstructorGuard
}

func NewAddServiceRuleCommand(r rule.ServiceRule) (AddServiceRuleCommand, error) {
	cmd := AddServiceRuleCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setRule(r); err != nil {
		return AddServiceRuleCommand{}, err
	}

	return cmd, nil
}

func (c AddServiceRuleCommand) Validate() error {
	return c.guard.Validate(ErrAddServiceRuleCommandIsNotConstructed)
}

func (c AddServiceRuleCommand) Rule() rule.ServiceRule {
	return c.rule
}

func (c *AddServiceRuleCommand) setRule(r rule.ServiceRule) error {
	if err := r.Validate(); err != nil {
		return err
	}

	c.rule = r
	return nil
}
