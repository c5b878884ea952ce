package specflow

import (
	"bytes"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// ValidateJSON decodes data as JSON and validates the result against n.
// Numbers are decoded as json.Number so integer fields keep exact semantics.
// A decode failure surfaces as a single parse_error issue.
func ValidateJSON(n Node, data []byte, opts ...ValidateOpt) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return Issues{{Code: CodeParseError, Message: err.Error(), Cause: err}}
	}
	return Validate(n, v, opts...)
}

// ValidateYAML decodes data as YAML and validates the result against n.
func ValidateYAML(n Node, data []byte, opts ...ValidateOpt) error {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return Issues{{Code: CodeParseError, Message: err.Error(), Cause: err}}
	}
	return Validate(n, v, opts...)
}

// ExportJSON serializes the canonical form of n as indented JSON.
func ExportJSON(n Node) ([]byte, error) {
	return json.MarshalIndent(Export(n), "", "  ")
}

// ExportYAML serializes the canonical form of n as YAML.
func ExportYAML(n Node) ([]byte, error) {
	return yaml.Marshal(Export(n))
}
