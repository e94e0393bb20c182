package commands_test

import (
	"context"
	"testing"

	"eligibility/internal/core/application/usecases/commands"
	"eligibility/internal/core/domain/model/kernel"
	"eligibility/internal/core/domain/model/rule"
	"eligibility/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockServiceRuleRepository struct{ mock.Mock }

func (m *MockServiceRuleRepository) Add(ctx context.Context, r rule.ServiceRule) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockServiceRuleRepository) ReplaceAll(ctx context.Context, rules []rule.ServiceRule) error {
	args := m.Called(ctx, rules)
	return args.Error(0)
}

func (m *MockServiceRuleRepository) DeleteByServiceID(ctx context.Context, serviceID string) error {
	args := m.Called(ctx, serviceID)
	return args.Error(0)
}

func (m *MockServiceRuleRepository) GetAll(ctx context.Context) ([]rule.ServiceRule, error) {
	args := m.Called(ctx)
	rules, _ := args.Get(0).([]rule.ServiceRule)
	return rules, args.Error(1)
}

type MockRuleUoW struct{ mock.Mock }

func (m *MockRuleUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRuleUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRuleUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRuleUoW) ServiceRuleRepository() ports.ServiceRuleRepository {
	args := m.Called()
	return args.Get(0).(ports.ServiceRuleRepository)
}

type MockRuleUoWFactory struct{ mock.Mock }

func (m *MockRuleUoWFactory) Create() commands.RuleUoW {
	args := m.Called()
	return args.Get(0).(commands.RuleUoW)
}

type MockRefresher struct{ mock.Mock }

func (m *MockRefresher) Refresh(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func ptr(v float64) *float64 { return &v }

func newRule(t *testing.T, serviceID string) rule.ServiceRule {
	t.Helper()
	r, err := rule.NewServiceRule(kernel.NewUUID(), rule.ServiceRuleParams{
		ServiceID:      serviceID,
		ServiceName:    serviceID,
		Carrier:        "EVRI",
		ValidationType: "box_fit",
		Constraints: rule.ConstraintParams{
			WeightMaxG:      ptr(999),
			BoxDimensionsMM: []float64{350, 230, 30},
		},
	})
	require.NoError(t, err)
	return r
}
