package ruleconfig_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"eligibility/internal/adapters/out/ruleconfig"
	"eligibility/internal/core/domain/model/kernel"
	"eligibility/internal/core/domain/model/rule"
	"eligibility/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDecoder(t *testing.T) *ruleconfig.Decoder {
	t.Helper()
	d, err := ruleconfig.NewDecoder()
	require.NoError(t, err)
	return d
}

func TestDecoder_DecodeYAML(t *testing.T) {
	doc := `
version: 1
services:
  - service_id: evri_48_packets
    service_name: EVRI 48 Packets
    carrier: EVRI
    validation_type: box_fit
    constraints:
      weight_max_g: 999
      box_dimensions_mm: [350, 230, 30]
  - service_id: royal_mail_small_parcel
    service_name: Royal Mail Small Parcel
    carrier: ROYAL
    validation_type: dimension_limits
    constraints:
      weight_max_g: 2000
      max_single_dimension_mm: 450
      max_combined_dimensions_mm: 900
      combined_calculation_method: standard_sum
`
	rules, err := newDecoder(t).Decode([]byte(doc))
	require.NoError(t, err)
	require.Len(t, rules, 2)

	assert.Equal(t, "evri_48_packets", rules[0].ServiceID())
	assert.Equal(t, rule.BoxFit, rules[0].ValidationType())
	require.NotNil(t, rules[0].Constraints().BoxMax())
	assert.True(t, rules[0].Constraints().BoxMax().IsEqual(mustDims(t, 350, 230, 30)))

	combined, ok := rules[1].Constraints().Combined()
	require.True(t, ok)
	assert.Equal(t, kernel.Millimeters(900), combined.MaxMM())
	assert.Equal(t, rule.StandardSum, combined.Method())
	assert.False(t, rules[0].ID().IsEqual(rules[1].ID()))
}

func TestDecoder_DecodeJSON(t *testing.T) {
	doc := `{"services":[{"service_id":"dhl_global_parcel","carrier":"DHL",
		"validation_type":"dimension_limits","constraints":{"max_single_dimension_mm":1200}}]}`

	rules, err := newDecoder(t).Decode([]byte(doc))
	require.NoError(t, err)
	require.Len(t, rules, 1)

	maxSingle, ok := rules[0].Constraints().MaxSingleDimension()
	require.True(t, ok)
	assert.Equal(t, kernel.Millimeters(1200), maxSingle)
}

func TestDecoder_FlattensAlternativeConstraints(t *testing.T) {
	doc := `
services:
  - service_id: svc_x
    validation_type: dimension_limits
    constraints:
      max_single_dimension_mm: 1200
      max_combined_dimensions_mm: 1800
      combined_calculation_method: standard_sum
    alternative_constraints:
      - max_single_dimension_mm: 1500
        max_combined_dimensions_mm: 1300
        combined_calculation_method: standard_sum
  - service_id: svc_y
    validation_type: box_fit
    alternative_constraints:
      - box_dimensions_mm: [350, 230, 30]
      - box_dimensions_mm: [450, 350, 160]
`
	rules, err := newDecoder(t).Decode([]byte(doc))
	require.NoError(t, err)
	require.Len(t, rules, 4)

	table := rule.NewTable(rules...)
	services := table.Services()
	require.Len(t, services, 2)
	assert.Equal(t, "svc_x", services[0].ID)
	assert.Len(t, services[0].Alternatives, 2)
	assert.Equal(t, "svc_y", services[1].ID)
	assert.Len(t, services[1].Alternatives, 2)

	first, _ := services[0].Alternatives[0].Constraints().MaxSingleDimension()
	second, _ := services[0].Alternatives[1].Constraints().MaxSingleDimension()
	assert.Equal(t, kernel.Millimeters(1200), first)
	assert.Equal(t, kernel.Millimeters(1500), second)
}

func TestDecoder_EmptyTable(t *testing.T) {
	rules, err := newDecoder(t).Decode([]byte("services: []"))
	require.NoError(t, err)
	assert.Empty(t, rules)
}

func TestDecoder_RejectsStructurallyInvalidDocuments(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{name: "not yaml", doc: "services: [\n  - {"},
		{name: "empty document", doc: ""},
		{name: "missing services", doc: "version: 1"},
		{name: "missing service id", doc: "services:\n  - validation_type: box_fit\n    constraints: {}"},
		{name: "unknown validation type", doc: "services:\n  - service_id: a\n    validation_type: letter\n    constraints: {}"},
		{name: "no constraints at all", doc: "services:\n  - service_id: a\n    validation_type: box_fit"},
		{name: "box with two values", doc: "services:\n  - service_id: a\n    validation_type: box_fit\n    constraints:\n      box_dimensions_mm: [350, 230]"},
		{name: "negative weight", doc: "services:\n  - service_id: a\n    validation_type: box_fit\n    constraints:\n      weight_max_g: -1"},
		{name: "weight as text", doc: "services:\n  - service_id: a\n    validation_type: box_fit\n    constraints:\n      weight_max_g: heavy"},
		{name: "unknown constraint", doc: "services:\n  - service_id: a\n    validation_type: box_fit\n    constraints:\n      max_volume_mm3: 10"},
		{name: "unknown method", doc: "services:\n  - service_id: a\n    validation_type: oversized\n    constraints:\n      max_combined_dimensions_mm: 10\n      combined_calculation_method: volume"},
	}

	d := newDecoder(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rules, err := d.Decode([]byte(tt.doc))
			require.Error(t, err)
			assert.Nil(t, rules)
			assert.ErrorIs(t, err, errs.ErrMalformedRule)
		})
	}
}

func TestDecoder_RejectsSemanticallyInvalidRules(t *testing.T) {
	tests := []struct {
		name  string
		doc   string
		field string
	}{
		{
			name:  "custom method",
			doc:   "services:\n  - service_id: a\n    validation_type: oversized\n    constraints:\n      max_combined_dimensions_mm: 10\n      combined_calculation_method: custom",
			field: "combined_calculation_method",
		},
		{
			name:  "combined limit without method",
			doc:   "services:\n  - service_id: a\n    validation_type: oversized\n    constraints:\n      max_combined_dimensions_mm: 10",
			field: "combined_calculation_method",
		},
		{
			name:  "min weight above max weight",
			doc:   "services:\n  - service_id: a\n    validation_type: box_fit\n    constraints:\n      weight_min_g: 2000\n      weight_max_g: 1000",
			field: "weight_min_g",
		},
		{
			name:  "blank service id",
			doc:   "services:\n  - service_id: '   '\n    validation_type: box_fit\n    constraints: {}",
			field: "service_id",
		},
	}

	d := newDecoder(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := d.Decode([]byte(tt.doc))
			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrMalformedRule)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestDecoder_OneBadRecordRejectsTheWholeDocument(t *testing.T) {
	doc := `
services:
  - service_id: good
    validation_type: box_fit
    constraints:
      box_dimensions_mm: [350, 230, 30]
  - service_id: bad
    validation_type: oversized
    constraints:
      max_combined_dimensions_mm: 100
      combined_calculation_method: custom
`
	rules, err := newDecoder(t).Decode([]byte(doc))
	require.Error(t, err)
	assert.Nil(t, rules)

	var malformed *errs.MalformedRuleError
	require.True(t, errors.As(err, &malformed))
	assert.Equal(t, "bad", malformed.ServiceID)
}

func TestDecoder_DecodeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"services:\n  - service_id: a\n    validation_type: box_fit\n    constraints: {}\n"), 0o600))

	rules, err := newDecoder(t).DecodeFile(path)
	require.NoError(t, err)
	require.Len(t, rules, 1)
	assert.True(t, rules[0].Constraints().IsEmpty())

	_, err = newDecoder(t).DecodeFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestDefaultTable(t *testing.T) {
	rules, err := ruleconfig.DefaultTable()
	require.NoError(t, err)

	table := rule.NewTable(rules...)
	assert.Len(t, table.Services(), 70)

	carriers := make(map[string]int)
	for _, s := range table.Services() {
		carriers[s.Carrier]++
	}
	assert.Equal(t, map[string]int{
		"EVRI": 12, "AMAZON": 14, "UPS": 10, "FEDEX": 9, "ROYAL": 6, "DHL": 17, "USPS": 2,
	}, carriers)

	for _, r := range rules {
		if r.ServiceID() != "dhl_service_point" {
			continue
		}
		assert.Nil(t, r.Constraints().BoxMax())
		require.NotNil(t, r.Constraints().BoxMin())
		combined, ok := r.Constraints().Combined()
		require.True(t, ok)
		assert.Equal(t, rule.Circumference, combined.Method())
	}
}

func mustDims(t *testing.T, a, b, c kernel.Millimeters) kernel.Dimensions {
	t.Helper()
	d, err := kernel.NewDimensions(a, b, c)
	require.NoError(t, err)
	return d
}
