package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
)

// AmountRule describes where the invoice amount lives and how to parse
// it. Locale selects the decimal separator convention, Unsigned strips
// the sign before comparing against transaction amounts.
type AmountRule struct {
	MetadataType string `json:"metadatatype"`
	Unsigned     bool   `json:"unsigned"`
	Locale       string `json:"locale"`
}

type FieldRule struct {
	MetadataType string `json:"metadatatype"`
}

// DateRule points at the invoice date metadata; DateFormat is a Go
// reference-time layout.
type DateRule struct {
	MetadataType string `json:"metadatatype"`
	DateFormat   string `json:"dateformat"`
}

type MatchingRules struct {
	InvoiceAmount AmountRule `json:"invoice_amount"`
	InvoiceNumber FieldRule  `json:"invoice_number"`
	InvoiceDate   DateRule   `json:"invoice_date"`
}

type TaggingRules struct {
	Tags []string `json:"tags"`
}

// Rules bundles the three rule files: how to find a document's invoice
// fields, which transaction properties map to which metadata types, and
// which tags a matched document receives.
type Rules struct {
	Matching MatchingRules

	// Mapping maps transaction property names to metadata type names.
	Mapping map[string]string

	Tagging TaggingRules
}

func LoadRules(dir string) (*Rules, error) {
	var rules Rules

	if err := readJSON(filepath.Join(dir, "matching.json"), &rules.Matching); err != nil {
		return nil, err
	}
	if err := readJSON(filepath.Join(dir, "mapping.json"), &rules.Mapping); err != nil {
		return nil, err
	}
	if err := readJSON(filepath.Join(dir, "tagging.json"), &rules.Tagging); err != nil {
		return nil, err
	}

	return &rules, nil
}

func readJSON(path string, target interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "failed to read %s", path)
	}

	if err = json.Unmarshal(data, target); err != nil {
		return errors.Wrapf(err, "failed to parse %s", path)
	}

	return nil
}
