// Package ruleconfig decodes rule table documents (YAML or JSON) into validated service rules.
//
// A document is checked in two passes: structurally against an embedded JSON Schema, then
// semantically by rule.NewServiceRule. Any failure rejects the whole document.
package ruleconfig

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"eligibility/internal/core/domain/model/kernel"
	"eligibility/internal/core/domain/model/rule"
	"eligibility/internal/pkg/errs"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"
)

const schemaURL = "https://eligibility.local/schemas/rules.schema.json"

//go:embed rules.schema.json
var schemaJSON []byte

// Decoder turns rule documents into rules. It is safe for concurrent use.
type Decoder struct {
	schema *jsonschema.Schema
	newID  func() kernel.UUID
}

func NewDecoder() (*Decoder, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaJSON))
	if err != nil {
		return nil, fmt.Errorf("failed to parse rule schema: %w", err)
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(schemaURL, doc); err != nil {
		return nil, fmt.Errorf("failed to add rule schema: %w", err)
	}

	schema, err := compiler.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("failed to compile rule schema: %w", err)
	}

	return &Decoder{
		schema: schema,
		newID:  kernel.NewUUID,
	}, nil
}

// DecodeFile reads and decodes a document from disk.
func (d *Decoder) DecodeFile(path string) ([]rule.ServiceRule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rule document %s: %w", path, err)
	}

	return d.Decode(data)
}

// Decode parses a YAML or JSON document. Every rule gets a fresh id; rules keep document order,
// with a record's constraints first and its alternative_constraints after.
func (d *Decoder) Decode(data []byte) ([]rule.ServiceRule, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errs.NewMalformedRuleErrorWithCause("", "document", err)
	}

	if err := d.validate(raw); err != nil {
		return nil, errs.NewMalformedRuleErrorWithCause("", "document", err)
	}

	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errs.NewMalformedRuleErrorWithCause("", "document", err)
	}

	return d.build(doc)
}

// validate runs the schema against the document in its JSON form, which is how the
// schema library expects numbers and maps to look.
func (d *Decoder) validate(raw any) error {
	asJSON, err := json.Marshal(raw)
	if err != nil {
		return err
	}

	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(asJSON))
	if err != nil {
		return err
	}

	return d.schema.Validate(inst)
}

func (d *Decoder) build(doc Document) ([]rule.ServiceRule, error) {
	rules := make([]rule.ServiceRule, 0, len(doc.Services))
	var all []error

	for i, record := range doc.Services {
		for j, params := range record.alternatives() {
			r, err := rule.NewServiceRule(d.newID(), params)
			if err != nil {
				all = append(all, fmt.Errorf("services[%d] alternative %d: %w", i, j, err))
				continue
			}
			rules = append(rules, r)
		}
	}

	if err := errors.Join(all...); err != nil {
		return nil, err
	}
	return rules, nil
}
