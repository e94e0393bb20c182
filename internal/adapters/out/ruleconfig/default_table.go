package ruleconfig

import (
	_ "embed"

	"eligibility/internal/core/domain/model/rule"
)

//go:embed default_rules.yaml
var defaultRulesYAML []byte

// DefaultTable decodes the built-in carrier table used when no rule file is configured.
func DefaultTable() ([]rule.ServiceRule, error) {
	d, err := NewDecoder()
	if err != nil {
		return nil, err
	}

	return d.Decode(defaultRulesYAML)
}
