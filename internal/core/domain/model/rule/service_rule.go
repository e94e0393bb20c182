package rule

import (
	"errors"
	"strings"

	"eligibility/internal/core/domain/model/kernel"
	"eligibility/internal/pkg/errs"
	"eligibility/internal/pkg/guard"
)

// ErrServiceRuleIsNotConstructed is returned when a zero-value ServiceRule is used.
var ErrServiceRuleIsNotConstructed = errs.NewValueIsRequiredError(
	"ServiceRule must be created via NewServiceRule or RestoreServiceRule")

// ServiceRuleParams is the raw form of one rule record as found in a rule document or API request.
type ServiceRuleParams struct {
	ServiceID      string
	ServiceName    string
	Carrier        string
	ValidationType string
	Constraints    ConstraintParams
}

// ServiceRule is one acceptance path for a carrier service.
//
// Invariants:
//   - id is a non-nil UUID, unique per rule (not per service)
//   - serviceID is not blank
//   - validationType is one of box_fit, dimension_limits, oversized
//   - constraints passed NewConstraintSet
type ServiceRule struct { //nolint:recvcheck //using for validation
	id             kernel.UUID
	serviceID      string
	serviceName    string
	carrier        string
	validationType ValidationType
	constraints    ConstraintSet
	guard          guard.ConstructorGuard
}

// NewServiceRule validates a raw record. All problems are reported together as joined
// *errs.MalformedRuleError values tagged with the service id.
func NewServiceRule(id kernel.UUID, p ServiceRuleParams) (ServiceRule, error) {
	r := ServiceRule{
		serviceName: strings.TrimSpace(p.ServiceName),
		carrier:     strings.TrimSpace(p.Carrier),
		guard:       guard.NewConstructorGuard(),
	}
	serviceID := strings.TrimSpace(p.ServiceID)

	constraints, constraintsErr := newConstraintSet(serviceID, p.Constraints)
	if err := errors.Join(
		r.setID(serviceID, id),
		r.setServiceID(serviceID),
		r.setValidationType(serviceID, p.ValidationType),
		constraintsErr,
	); err != nil {
		return ServiceRule{}, err
	}
	r.constraints = constraints

	return r, nil
}

// RestoreServiceRule rebuilds a rule from already validated parts, e.g. a database row.
func RestoreServiceRule(
	id kernel.UUID,
	serviceID, serviceName, carrier string,
	validationType ValidationType,
	constraints ConstraintSet,
) ServiceRule {
	return ServiceRule{
		id:             id,
		serviceID:      serviceID,
		serviceName:    serviceName,
		carrier:        carrier,
		validationType: validationType,
		constraints:    constraints,
		guard:          guard.NewConstructorGuard(),
	}
}

func (r ServiceRule) Validate() error {
	return r.guard.Validate(ErrServiceRuleIsNotConstructed)
}

func (r ServiceRule) ID() kernel.UUID {
	return r.id
}

func (r ServiceRule) ServiceID() string {
	return r.serviceID
}

func (r ServiceRule) ServiceName() string {
	return r.serviceName
}

func (r ServiceRule) Carrier() string {
	return r.carrier
}

func (r ServiceRule) ValidationType() ValidationType {
	return r.validationType
}

func (r ServiceRule) Constraints() ConstraintSet {
	return r.constraints
}

// Params returns the raw form of the rule.
func (r ServiceRule) Params() ServiceRuleParams {
	return ServiceRuleParams{
		ServiceID:      r.serviceID,
		ServiceName:    r.serviceName,
		Carrier:        r.carrier,
		ValidationType: r.validationType.String(),
		Constraints:    r.constraints.Params(),
	}
}

func (r *ServiceRule) setID(serviceID string, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewMalformedRuleErrorWithCause(serviceID, "id", err)
	}

	r.id = id
	return nil
}

func (r *ServiceRule) setServiceID(serviceID string) error {
	if serviceID == "" {
		return errs.NewMalformedRuleErrorWithCause(serviceID, "service_id", errs.NewValueIsRequiredError("service_id"))
	}

	r.serviceID = serviceID
	return nil
}

func (r *ServiceRule) setValidationType(serviceID, raw string) error {
	vt, err := ParseValidationType(raw)
	if err != nil {
		return errs.NewMalformedRuleErrorWithCause(serviceID, "validation_type", err)
	}

	r.validationType = vt
	return nil
}
