package specflow

import "fmt"

// resolveKind deduces the leaf kind from an unvalidated parameter bag.
// Precedence, first match wins:
//
//  1. an explicit Type wins outright;
//  2. string constraints, or a textual default/const/enum ⇒ String;
//  3. array constraints ⇒ Array;
//  4. boolean default ⇒ Boolean (before the numeric rules: several wire
//     formats encode booleans as 0/1 and they must not land on Integer);
//  5. integral default ⇒ Integer;
//  6. fractional default ⇒ Number;
//  7. otherwise the bag is ambiguous.
func resolveKind(p FieldParams) (Kind, error) {
	if p.Type != KindInvalid {
		return p.Type, nil
	}
	if p.MinLength != nil || p.MaxLength != nil || p.Pattern != "" ||
		isTextual(p.Default) || isTextual(p.Const) || hasTextual(p.Enum) {
		return KindString, nil
	}
	if p.Items != nil || p.PrefixItems != nil || p.MinItems != nil || p.MaxItems != nil {
		return KindArray, nil
	}
	if p.Default != nil {
		if _, ok := p.Default.(bool); ok {
			return KindBoolean, nil
		}
		if _, ok := numericValue(p.Default); ok {
			if isWholeNumber(p.Default) {
				return KindInteger, nil
			}
			return KindNumber, nil
		}
	}
	return KindInvalid, ErrAmbiguousType
}

// checkParams rejects constraints foreign to the resolved kind and malformed
// bound relationships.
func checkParams(p FieldParams, kind Kind) error {
	hasString := p.MinLength != nil || p.MaxLength != nil || p.Pattern != ""
	hasNumeric := p.Minimum != nil || p.Maximum != nil ||
		p.ExclusiveMinimum != nil || p.ExclusiveMaximum != nil || p.MultipleOf != nil
	hasArray := p.Items != nil || p.PrefixItems != nil || p.MinItems != nil || p.MaxItems != nil

	if hasString && kind != KindString {
		return fmt.Errorf("%w: string constraints on %s field", ErrIncompatibleConstraint, kind)
	}
	if hasNumeric && kind != KindInteger && kind != KindNumber {
		return fmt.Errorf("%w: numeric bounds on %s field", ErrIncompatibleConstraint, kind)
	}
	if hasArray && kind != KindArray {
		return fmt.Errorf("%w: array constraints on %s field", ErrIncompatibleConstraint, kind)
	}

	if p.Default != nil && !valueHasKind(kind, p.Default) {
		return fmt.Errorf("%w: default %v is not a %s", ErrIncompatibleConstraint, p.Default, kind)
	}
	if p.Const != nil && !valueHasKind(kind, p.Const) {
		return fmt.Errorf("%w: const %v is not a %s", ErrIncompatibleConstraint, p.Const, kind)
	}
	for _, e := range p.Enum {
		if !valueHasKind(kind, e) {
			return fmt.Errorf("%w: enum value %v is not a %s", ErrIncompatibleConstraint, e, kind)
		}
	}

	if err := checkLengthBounds("minLength/maxLength", p.MinLength, p.MaxLength); err != nil {
		return err
	}
	if err := checkLengthBounds("minItems/maxItems", p.MinItems, p.MaxItems); err != nil {
		return err
	}

	if p.Minimum != nil && p.ExclusiveMinimum != nil {
		return fmt.Errorf("%w: minimum and exclusiveMinimum are mutually exclusive", ErrInvalidBounds)
	}
	if p.Maximum != nil && p.ExclusiveMaximum != nil {
		return fmt.Errorf("%w: maximum and exclusiveMaximum are mutually exclusive", ErrInvalidBounds)
	}
	lo, loSet := pickBound(p.Minimum, p.ExclusiveMinimum)
	hi, hiSet := pickBound(p.Maximum, p.ExclusiveMaximum)
	if loSet && hiSet && lo > hi {
		return fmt.Errorf("%w: lower bound %v above upper bound %v", ErrInvalidBounds, lo, hi)
	}
	if p.MultipleOf != nil && *p.MultipleOf <= 0 {
		return fmt.Errorf("%w: multipleOf must be positive", ErrInvalidBounds)
	}
	return nil
}

func checkLengthBounds(what string, min, max *int) error {
	if min != nil && *min < 0 {
		return fmt.Errorf("%w: %s must be non-negative", ErrInvalidBounds, what)
	}
	if max != nil && *max < 0 {
		return fmt.Errorf("%w: %s must be non-negative", ErrInvalidBounds, what)
	}
	if min != nil && max != nil && *min > *max {
		return fmt.Errorf("%w: %s min above max", ErrInvalidBounds, what)
	}
	return nil
}

func pickBound(inclusive, exclusive *float64) (float64, bool) {
	if inclusive != nil {
		return *inclusive, true
	}
	if exclusive != nil {
		return *exclusive, true
	}
	return 0, false
}

func isTextual(v any) bool {
	_, ok := v.(string)
	return ok
}

func hasTextual(vs []any) bool {
	for _, v := range vs {
		if isTextual(v) {
			return true
		}
	}
	return false
}
