package specflow

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"unicode/utf8"

	"github.com/pedrojosemoragallegos/specflow/i18n"
)

// multipleOfEps tolerates floating representation error in number multiple
// checks: a remainder this close to zero (or to the divisor) counts as exact.
const multipleOfEps = 1e-9

func (f *Field) check(v any, p Path, opt ValidateOpt) Issues {
	if v == nil {
		if f.nullable {
			return nil
		}
		return Issues{{Path: p, Code: CodeNullNotAllowed, Message: i18n.T(CodeNullNotAllowed, nil)}}
	}
	if !valueHasKind(f.kind, v) {
		// One issue per leaf on a shape mismatch; constraint checks need a
		// value of the right kind to be meaningful.
		return Issues{{
			Path:    p,
			Code:    CodeInvalidType,
			Message: i18n.T(CodeInvalidType, map[string]string{"expected": f.kind.String()}),
			Hint:    "expected " + f.kind.String(),
		}}
	}
	if f.constVal != nil {
		// const short-circuits every other constraint on this leaf.
		if looseEqual(f.constVal, v) {
			return nil
		}
		return Issues{{
			Path:    p,
			Code:    CodeConstMismatch,
			Message: i18n.T(CodeConstMismatch, map[string]string{"expected": fmt.Sprint(f.constVal)}),
			Params:  map[string]any{"expected": f.constVal, "got": v},
		}}
	}

	switch f.kind {
	case KindString:
		return f.checkString(v.(string), p)
	case KindInteger, KindNumber:
		return f.checkNumeric(v, p)
	case KindBoolean:
		return f.enumIssue(v, p)
	case KindArray:
		return f.checkArray(v.([]any), p, opt)
	}
	return nil
}

// checkString collects every violated string constraint; callers need the
// complete list for a single field.
func (f *Field) checkString(s string, p Path) Issues {
	var iss Issues
	n := utf8.RuneCountInString(s)
	if f.minLength != nil && n < *f.minLength {
		iss = AppendIssues(iss, Issue{
			Path:    p,
			Code:    CodeTooShort,
			Message: i18n.T(CodeTooShort, map[string]string{"min": strconv.Itoa(*f.minLength)}),
			Params:  map[string]any{"min": *f.minLength, "got": n},
		})
	}
	if f.maxLength != nil && n > *f.maxLength {
		iss = AppendIssues(iss, Issue{
			Path:    p,
			Code:    CodeTooLong,
			Message: i18n.T(CodeTooLong, map[string]string{"max": strconv.Itoa(*f.maxLength)}),
			Params:  map[string]any{"max": *f.maxLength, "got": n},
		})
	}
	if f.pattern != nil && !f.pattern.MatchString(s) {
		iss = AppendIssues(iss, Issue{
			Path:    p,
			Code:    CodePattern,
			Message: i18n.T(CodePattern, map[string]string{"pattern": f.patternSrc}),
			Params:  map[string]any{"pattern": f.patternSrc},
		})
	}
	return AppendIssues(iss, f.enumIssue(s, p)...)
}

func (f *Field) checkNumeric(v any, p Path) Issues {
	x, _ := numericValue(v)
	var iss Issues
	if f.minimum != nil && x < *f.minimum {
		iss = AppendIssues(iss, Issue{
			Path:    p,
			Code:    CodeTooSmall,
			Message: i18n.T(CodeTooSmall, nil),
			Params:  map[string]any{"minimum": *f.minimum, "got": x},
		})
	}
	if f.exclusiveMinimum != nil && x <= *f.exclusiveMinimum {
		iss = AppendIssues(iss, Issue{
			Path:    p,
			Code:    CodeTooSmall,
			Message: i18n.T(CodeTooSmall, nil),
			Hint:    "bound is exclusive",
			Params:  map[string]any{"exclusiveMinimum": *f.exclusiveMinimum, "got": x},
		})
	}
	if f.maximum != nil && x > *f.maximum {
		iss = AppendIssues(iss, Issue{
			Path:    p,
			Code:    CodeTooBig,
			Message: i18n.T(CodeTooBig, nil),
			Params:  map[string]any{"maximum": *f.maximum, "got": x},
		})
	}
	if f.exclusiveMaximum != nil && x >= *f.exclusiveMaximum {
		iss = AppendIssues(iss, Issue{
			Path:    p,
			Code:    CodeTooBig,
			Message: i18n.T(CodeTooBig, nil),
			Hint:    "bound is exclusive",
			Params:  map[string]any{"exclusiveMaximum": *f.exclusiveMaximum, "got": x},
		})
	}
	if f.multipleOf != nil && !isMultiple(f.kind, v, *f.multipleOf) {
		iss = AppendIssues(iss, Issue{
			Path:    p,
			Code:    CodeNotMultipleOf,
			Message: i18n.T(CodeNotMultipleOf, map[string]string{"multipleOf": fmt.Sprint(*f.multipleOf)}),
			Params:  map[string]any{"multipleOf": *f.multipleOf, "got": x},
		})
	}
	return AppendIssues(iss, f.enumIssue(v, p)...)
}

func (f *Field) checkArray(xs []any, p Path, opt ValidateOpt) Issues {
	var iss Issues
	n := len(xs)
	if f.minItems != nil && n < *f.minItems {
		iss = AppendIssues(iss, Issue{
			Path:    p,
			Code:    CodeTooShort,
			Message: i18n.T(CodeTooShort, map[string]string{"min": strconv.Itoa(*f.minItems)}),
			Params:  map[string]any{"minItems": *f.minItems, "got": n},
		})
	}
	if f.maxItems != nil && n > *f.maxItems {
		iss = AppendIssues(iss, Issue{
			Path:    p,
			Code:    CodeTooLong,
			Message: i18n.T(CodeTooLong, map[string]string{"max": strconv.Itoa(*f.maxItems)}),
			Params:  map[string]any{"maxItems": *f.maxItems, "got": n},
		})
	}
	for i, pre := range f.prefixItems {
		if i >= n {
			break
		}
		iss = AppendIssues(iss, pre.check(xs[i], p.Index(i), opt)...)
	}
	if f.items != nil {
		// Elements beyond the prefix; no items keyword means they are
		// unconstrained.
		for i := len(f.prefixItems); i < n; i++ {
			iss = AppendIssues(iss, f.items.check(xs[i], p.Index(i), opt)...)
		}
	}
	return AppendIssues(iss, f.enumIssue(xs, p)...)
}

func (f *Field) enumIssue(v any, p Path) Issues {
	if len(f.enum) == 0 {
		return nil
	}
	for _, e := range f.enum {
		if looseEqual(e, v) {
			return nil
		}
	}
	return Issues{{
		Path:    p,
		Code:    CodeInvalidEnum,
		Message: i18n.T(CodeInvalidEnum, nil),
		Params:  map[string]any{"got": v},
	}}
}

// valueHasKind reports whether the runtime shape of v matches the leaf kind.
// Values are decoded-JSON/YAML shaped: map[string]any, []any, string, bool,
// the native int family, floats, and json.Number. A float with no fractional
// part satisfies Integer, since wire formats do not distinguish 5 from 5.0.
func valueHasKind(k Kind, v any) bool {
	switch k {
	case KindString:
		return isTextual(v)
	case KindBoolean:
		_, ok := v.(bool)
		return ok
	case KindInteger:
		return isWholeNumber(v)
	case KindNumber:
		_, ok := numericValue(v)
		return ok
	case KindArray:
		_, ok := v.([]any)
		return ok
	}
	return false
}

// numericValue widens any numeric input to float64. Booleans are not numeric.
func numericValue(v any) (float64, bool) {
	switch t := v.(type) {
	case int:
		return float64(t), true
	case int8:
		return float64(t), true
	case int16:
		return float64(t), true
	case int32:
		return float64(t), true
	case int64:
		return float64(t), true
	case uint:
		return float64(t), true
	case uint8:
		return float64(t), true
	case uint16:
		return float64(t), true
	case uint32:
		return float64(t), true
	case uint64:
		return float64(t), true
	case float32:
		return float64(t), true
	case float64:
		return t, true
	case json.Number:
		f, err := t.Float64()
		return f, err == nil
	}
	return 0, false
}

// intValue narrows v to int64 when it carries no fractional component.
func intValue(v any) (int64, bool) {
	switch t := v.(type) {
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return i, true
		}
		if f, err := t.Float64(); err == nil && math.Trunc(f) == f {
			return int64(f), true
		}
		return 0, false
	case float32:
		f := float64(t)
		if math.Trunc(f) == f && !math.IsInf(f, 0) {
			return int64(f), true
		}
		return 0, false
	case float64:
		if math.Trunc(t) == t && !math.IsInf(t, 0) {
			return int64(t), true
		}
		return 0, false
	}
	if f, ok := numericValue(v); ok {
		return int64(f), true
	}
	return 0, false
}

func isWholeNumber(v any) bool {
	_, ok := intValue(v)
	return ok
}

// isMultiple is exact for integers and epsilon-tolerant for numbers.
func isMultiple(kind Kind, v any, m float64) bool {
	if kind == KindInteger {
		if iv, ok := intValue(v); ok {
			if im := int64(m); float64(im) == m && im != 0 {
				return iv%im == 0
			}
		}
	}
	x, _ := numericValue(v)
	rem := math.Abs(math.Mod(x, m))
	return rem < multipleOfEps || math.Abs(rem-m) < multipleOfEps
}

// looseEqual compares across numeric representations (int vs float64 vs
// json.Number) and falls back to deep equality for everything else.
func looseEqual(a, b any) bool {
	if fa, ok := numericValue(a); ok {
		fb, ok2 := numericValue(b)
		return ok2 && fa == fb
	}
	if _, ok := numericValue(b); ok {
		return false
	}
	return reflect.DeepEqual(a, b)
}
