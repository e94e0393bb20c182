package commands

import (
	"errors"
	"strings"

	"eligibility/internal/pkg/errs"
	"eligibility/internal/pkg/guard"
)

var ErrRemoveServiceCommandIsNotConstructed = errors.New(
	"RemoveServiceCommand must be created via NewRemoveServiceCommand constructor",
)

// RemoveServiceCommand deletes every alternative of one service.
type RemoveServiceCommand struct { //nolint:recvcheck //using for validation
	serviceID string

	guard guard.ConstructorGuard
}

func NewRemoveServiceCommand(serviceID string) (RemoveServiceCommand, error) {
	cmd := RemoveServiceCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setServiceID(serviceID); err != nil {
		return RemoveServiceCommand{}, err
	}

	return cmd, nil
}

func (c RemoveServiceCommand) Validate() error {
	return c.guard.Validate(ErrRemoveServiceCommandIsNotConstructed)
}

func (c RemoveServiceCommand) ServiceID() string {
	return c.serviceID
}

func (c *RemoveServiceCommand) setServiceID(serviceID string) error {
	serviceID = strings.TrimSpace(serviceID)
	if serviceID == "" {
		return errs.NewValueIsRequiredError("serviceId")
	}

	c.serviceID = serviceID
	return nil
}
