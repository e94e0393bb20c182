package rule

import "slices"

// Service groups the alternatives that share one service id.
type Service struct {
	ID           string
	Name         string
	Carrier      string
	Alternatives []ServiceRule
}

// Table is an ordered, read-only sequence of rules. Order only makes output deterministic;
// it never changes which services a package is eligible for.
type Table struct {
	rules []ServiceRule
}

// NewTable copies rules so later changes to the caller's slice do not leak into the table.
func NewTable(rules ...ServiceRule) Table {
	return Table{rules: slices.Clone(rules)}
}

func (t Table) Len() int {
	return len(t.rules)
}

func (t Table) Rules() []ServiceRule {
	return slices.Clone(t.rules)
}

// Services groups rules by service id in first-seen order. Name and carrier come from the first rule.
func (t Table) Services() []Service {
	index := make(map[string]int)
	var services []Service

	for _, r := range t.rules {
		i, ok := index[r.ServiceID()]
		if !ok {
			i = len(services)
			index[r.ServiceID()] = i
			services = append(services, Service{
				ID:      r.ServiceID(),
				Name:    r.ServiceName(),
				Carrier: r.Carrier(),
			})
		}
		services[i].Alternatives = append(services[i].Alternatives, r)
	}

	return services
}
