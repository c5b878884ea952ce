package specflow

import (
	"fmt"
	"regexp"
)

// Kind enumerates the leaf kinds a Field can resolve to.
type Kind int

const (
	KindInvalid Kind = iota
	KindString
	KindInteger
	KindNumber
	KindBoolean
	KindArray
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInteger:
		return "integer"
	case KindNumber:
		return "number"
	case KindBoolean:
		return "boolean"
	case KindArray:
		return "array"
	default:
		return "invalid"
	}
}

// FieldParams is the unvalidated parameter bag consumed by NewField. Leave
// Type unset to let the resolver infer the kind from the populated
// constraints; see NewField for the precedence rules.
type FieldParams struct {
	Title       string
	Type        Kind // Optional explicit kind; wins over inference.
	Description string
	Nullable    bool

	Default any
	Const   any
	Enum    []any

	// String
	MinLength *int
	MaxLength *int
	Pattern   string

	// Integer / Number
	Minimum          *float64
	Maximum          *float64
	ExclusiveMinimum *float64
	ExclusiveMaximum *float64
	MultipleOf       *float64

	// Array
	Items       Node
	PrefixItems []Node
	MinItems    *int
	MaxItems    *int
}

// Field is a leaf node: one scalar or array value with its constraint set.
// The kind is fixed at construction; validation never dispatches dynamically.
type Field struct {
	title       string
	description string
	kind        Kind
	nullable    bool

	defaultVal any
	constVal   any
	enum       []any

	minLength  *int
	maxLength  *int
	pattern    *regexp.Regexp // anchored form of patternSrc
	patternSrc string

	minimum          *float64
	maximum          *float64
	exclusiveMinimum *float64
	exclusiveMaximum *float64
	multipleOf       *float64

	items       Node
	prefixItems []Node
	minItems    *int
	maxItems    *int
}

// NewField resolves the leaf kind from p and returns an immutable Field.
// Every malformed-schema condition (ambiguous kind, foreign constraints,
// inconsistent bounds, uncompilable pattern) fails here, never at
// validation time.
func NewField(p FieldParams) (*Field, error) {
	if p.Title == "" {
		return nil, ErrMissingTitle
	}
	f, err := buildField(p)
	if err != nil {
		return nil, fmt.Errorf("field %q: %w", p.Title, err)
	}
	return f, nil
}

func buildField(p FieldParams) (*Field, error) {
	kind, err := resolveKind(p)
	if err != nil {
		return nil, err
	}
	if err := checkParams(p, kind); err != nil {
		return nil, err
	}

	f := &Field{
		title:       p.Title,
		description: p.Description,
		kind:        kind,
		nullable:    p.Nullable,
		defaultVal:  p.Default,
		constVal:    p.Const,

		minLength: p.MinLength,
		maxLength: p.MaxLength,

		minimum:          p.Minimum,
		maximum:          p.Maximum,
		exclusiveMinimum: p.ExclusiveMinimum,
		exclusiveMaximum: p.ExclusiveMaximum,
		multipleOf:       p.MultipleOf,

		items:    p.Items,
		minItems: p.MinItems,
		maxItems: p.MaxItems,
	}
	if len(p.Enum) > 0 {
		f.enum = make([]any, len(p.Enum))
		copy(f.enum, p.Enum)
	}
	if len(p.PrefixItems) > 0 {
		f.prefixItems = make([]Node, len(p.PrefixItems))
		for i, pre := range p.PrefixItems {
			if pre == nil {
				return nil, ErrNilNode
			}
			f.prefixItems[i] = pre
		}
	}
	if p.Pattern != "" {
		// Anchored: a pattern must describe the whole string, not a substring.
		re, err := regexp.Compile(`\A(?:` + p.Pattern + `)\z`)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidPattern, err)
		}
		f.pattern = re
		f.patternSrc = p.Pattern
	}
	return f, nil
}

// Title returns the field's identifier, unique among its composite siblings.
func (f *Field) Title() string { return f.title }

// Kind returns the resolved leaf kind.
func (f *Field) Kind() Kind { return f.kind }
