package specflow

import (
	"sort"

	"github.com/pedrojosemoragallegos/specflow/i18n"
)

// ValidateOpt configures a single validation call. The zero value is strict
// mode: object keys not declared by the schema are reported as unknown_key.
type ValidateOpt struct {
	AllowUnknown bool // Ignore undeclared object keys instead of reporting them.
}

// Validate checks value against the schema tree rooted at n. It returns nil
// when the value passes; otherwise the full ordered Issues list as an error
// whose message concatenates every failure with its path.
func Validate(n Node, value any, opts ...ValidateOpt) error {
	if iss := ValidateValue(n, value, opts...); len(iss) > 0 {
		return iss
	}
	return nil
}

// ValidateValue is the non-error variant: it returns the ordered failure list
// directly, empty meaning the value passed. Trees are read-only during
// validation and may be shared across goroutines.
func ValidateValue(n Node, value any, opts ...ValidateOpt) Issues {
	var opt ValidateOpt
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	if n == nil {
		return Issues{{Code: CodeParseError, Message: "nil schema"}}
	}
	return n.check(value, Path{}, opt)
}

func (s *Schema) check(v any, p Path, opt ValidateOpt) Issues {
	m, ok := v.(map[string]any)
	if !ok {
		return Issues{{Path: p, Code: CodeInvalidType, Message: i18n.T(CodeInvalidType, map[string]string{"expected": "object"}), Hint: "expected object"}}
	}

	var iss Issues
	for _, n := range s.properties {
		iss = AppendIssues(iss, checkMember(n, m, p, opt)...)
	}

	if !opt.AllowUnknown {
		var unknown []string
		for k := range m {
			if _, known := s.declared[k]; !known {
				unknown = append(unknown, k)
			}
		}
		sort.Strings(unknown)
		for _, k := range unknown {
			iss = AppendIssues(iss, Issue{Path: p.Key(k), Code: CodeUnknownKey, Message: i18n.T(CodeUnknownKey, nil)})
		}
	}

	for _, c := range s.conditions {
		iss = AppendIssues(iss, c.eval(m, p, opt)...)
	}
	return iss
}

// checkMember validates one declared member against the owning object.
// Titled Field/Schema nodes bind to their key and pass when the key is
// absent (required-ness is not a keyword here); compositions re-dispatch
// their children against the same object.
func checkMember(n Node, obj map[string]any, p Path, opt ValidateOpt) Issues {
	switch t := n.(type) {
	case *AnyOf:
		return anyOfOutcome(t.children, p, func(c Node) Issues { return checkMember(c, obj, p, opt) })
	case *OneOf:
		return oneOfOutcome(t.children, p, func(c Node) Issues { return checkMember(c, obj, p, opt) })
	case *Not:
		return notOutcome(t.child, p, func(c Node) Issues { return checkMember(c, obj, p, opt) })
	default: // *Field, *Schema
		mv, ok := obj[n.Title()]
		if !ok {
			return nil
		}
		return n.check(mv, p.Key(n.Title()), opt)
	}
}

// eval selects and applies the branch chosen by the if outcome. The if node
// is evaluated leniently so that branch selection never depends on the
// strictness of the surrounding call.
func (c *Condition) eval(obj map[string]any, p Path, opt ValidateOpt) Issues {
	lenient := opt
	lenient.AllowUnknown = true
	if len(checkMember(c.ifNode, obj, p, lenient)) == 0 {
		return checkMember(c.thenNode, obj, p, opt)
	}
	if c.elseNode != nil {
		return checkMember(c.elseNode, obj, p, opt)
	}
	return nil
}

func (a *AnyOf) check(v any, p Path, opt ValidateOpt) Issues {
	return anyOfOutcome(a.children, p, func(c Node) Issues { return c.check(v, p, opt) })
}

func (o *OneOf) check(v any, p Path, opt ValidateOpt) Issues {
	return oneOfOutcome(o.children, p, func(c Node) Issues { return c.check(v, p, opt) })
}

func (n *Not) check(v any, p Path, opt ValidateOpt) Issues {
	return notOutcome(n.child, p, func(c Node) Issues { return c.check(v, p, opt) })
}

func anyOfOutcome(children []Node, p Path, eval func(Node) Issues) Issues {
	for _, c := range children {
		if len(eval(c)) == 0 {
			return nil
		}
	}
	return Issues{{Path: p, Code: CodeNoVariantMatched, Message: i18n.T(CodeNoVariantMatched, nil), Hint: "anyOf: all variants failed"}}
}

func oneOfOutcome(children []Node, p Path, eval func(Node) Issues) Issues {
	matched := 0
	for _, c := range children {
		if len(eval(c)) == 0 {
			matched++
		}
	}
	switch matched {
	case 1:
		return nil
	case 0:
		return Issues{{Path: p, Code: CodeNoVariantMatched, Message: i18n.T(CodeNoVariantMatched, nil), Hint: "oneOf: all variants failed"}}
	default:
		return Issues{{Path: p, Code: CodeUnionAmbiguous, Message: i18n.T(CodeUnionAmbiguous, nil), Params: map[string]any{"matched": matched}}}
	}
}

func notOutcome(child Node, p Path, eval func(Node) Issues) Issues {
	if len(eval(child)) == 0 {
		return Issues{{Path: p, Code: CodeForbiddenValue, Message: i18n.T(CodeForbiddenValue, nil)}}
	}
	return nil
}
