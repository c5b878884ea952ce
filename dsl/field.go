package dsl

import (
	"github.com/pedrojosemoragallegos/specflow"
)

// FieldOption populates the parameter bag consumed by specflow.NewField.
type FieldOption func(*specflow.FieldParams)

// Description sets the human-readable description.
func Description(d string) FieldOption {
	return func(p *specflow.FieldParams) { p.Description = d }
}

// Nullable marks the leaf as accepting null.
func Nullable() FieldOption {
	return func(p *specflow.FieldParams) { p.Nullable = true }
}

// Default sets the default value; it also drives kind inference.
func Default(v any) FieldOption {
	return func(p *specflow.FieldParams) { p.Default = v }
}

// Const fixes the only legal non-null value for the leaf.
func Const(v any) FieldOption {
	return func(p *specflow.FieldParams) { p.Const = v }
}

// Enum restricts the leaf to the given ordered set of values.
func Enum(vs ...any) FieldOption {
	return func(p *specflow.FieldParams) { p.Enum = vs }
}

// MinLength sets the minimum string length in runes.
func MinLength(n int) FieldOption {
	return func(p *specflow.FieldParams) { p.MinLength = &n }
}

// MaxLength sets the maximum string length in runes.
func MaxLength(n int) FieldOption {
	return func(p *specflow.FieldParams) { p.MaxLength = &n }
}

// Pattern sets the regular expression a string must match in full.
func Pattern(expr string) FieldOption {
	return func(p *specflow.FieldParams) { p.Pattern = expr }
}

// Minimum sets the inclusive lower numeric bound.
func Minimum(x float64) FieldOption {
	return func(p *specflow.FieldParams) { p.Minimum = &x }
}

// Maximum sets the inclusive upper numeric bound.
func Maximum(x float64) FieldOption {
	return func(p *specflow.FieldParams) { p.Maximum = &x }
}

// ExclusiveMinimum sets the exclusive lower numeric bound.
func ExclusiveMinimum(x float64) FieldOption {
	return func(p *specflow.FieldParams) { p.ExclusiveMinimum = &x }
}

// ExclusiveMaximum sets the exclusive upper numeric bound.
func ExclusiveMaximum(x float64) FieldOption {
	return func(p *specflow.FieldParams) { p.ExclusiveMaximum = &x }
}

// MultipleOf requires the value to be an exact multiple of the divisor
// (within a fixed tolerance for number fields).
func MultipleOf(x float64) FieldOption {
	return func(p *specflow.FieldParams) { p.MultipleOf = &x }
}

// Items sets the schema applied to array elements beyond any prefix.
func Items(n specflow.Node) FieldOption {
	return func(p *specflow.FieldParams) { p.Items = n }
}

// PrefixItems sets one schema per leading positional slot.
func PrefixItems(ns ...specflow.Node) FieldOption {
	return func(p *specflow.FieldParams) { p.PrefixItems = ns }
}

// MinItems sets the minimum element count.
func MinItems(n int) FieldOption {
	return func(p *specflow.FieldParams) { p.MinItems = &n }
}

// MaxItems sets the maximum element count.
func MaxItems(n int) FieldOption {
	return func(p *specflow.FieldParams) { p.MaxItems = &n }
}

// Field builds a leaf, inferring its kind from the supplied options; see
// specflow.NewField for the precedence rules.
func Field(title string, opts ...FieldOption) (*specflow.Field, error) {
	return typed(title, specflow.KindInvalid, opts)
}

// String builds a string leaf.
func String(title string, opts ...FieldOption) (*specflow.Field, error) {
	return typed(title, specflow.KindString, opts)
}

// Integer builds an integer leaf.
func Integer(title string, opts ...FieldOption) (*specflow.Field, error) {
	return typed(title, specflow.KindInteger, opts)
}

// Number builds a number leaf.
func Number(title string, opts ...FieldOption) (*specflow.Field, error) {
	return typed(title, specflow.KindNumber, opts)
}

// Boolean builds a boolean leaf.
func Boolean(title string, opts ...FieldOption) (*specflow.Field, error) {
	return typed(title, specflow.KindBoolean, opts)
}

// Array builds an array leaf.
func Array(title string, opts ...FieldOption) (*specflow.Field, error) {
	return typed(title, specflow.KindArray, opts)
}

func typed(title string, kind specflow.Kind, opts []FieldOption) (*specflow.Field, error) {
	p := specflow.FieldParams{Title: title, Type: kind}
	for _, o := range opts {
		o(&p)
	}
	return specflow.NewField(p)
}

// Must panics when err is non-nil. It is intended for package-level schema
// construction where a build failure is a programming error.
func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
