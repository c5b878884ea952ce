package specflow

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeInvalidType      = "invalid_type"
	CodeNullNotAllowed   = "null_not_allowed"
	CodeTooShort         = "too_short"
	CodeTooLong          = "too_long"
	CodePattern          = "pattern"
	CodeTooSmall         = "too_small"
	CodeTooBig           = "too_big"
	CodeNotMultipleOf    = "not_multiple_of"
	CodeInvalidEnum      = "invalid_enum"
	CodeConstMismatch    = "const_mismatch"
	CodeUnknownKey       = "unknown_key"
	CodeNoVariantMatched = "no_variant_matched"
	CodeUnionAmbiguous   = "union_ambiguous"
	CodeForbiddenValue   = "forbidden_value"
	CodeParseError       = "parse_error"
)

// Construction-time errors. Schema building fails fast on these; a malformed
// tree never reaches validation.
var (
	ErrMissingTitle           = errors.New("specflow: title is required")
	ErrAmbiguousType          = errors.New("specflow: cannot infer field type")
	ErrIncompatibleConstraint = errors.New("specflow: constraint incompatible with field type")
	ErrInvalidBounds          = errors.New("specflow: malformed bounds")
	ErrInvalidPattern         = errors.New("specflow: invalid pattern")
	ErrEmptyComposition       = errors.New("specflow: composition requires at least one child")
	ErrDuplicateTitle         = errors.New("specflow: duplicate property title")
	ErrIncompleteCondition    = errors.New("specflow: condition requires if and then")
	ErrNilNode                = errors.New("specflow: nil node")
)

// Issue represents a single validation failure.
type Issue struct {
	Path    Path   // Location of the failure within the value.
	Code    string // One of the codes listed above.
	Message string
	Hint    string // Optional: remediation hints, expected shapes, etc.
	Cause   error  // Optional: underlying error.
	// Params carries structured parameters (e.g., {"min":1, "got":42})
	// for i18n and observability.
	Params map[string]any
}

// Issues is an ordered collection of validation failures that implements error.
type Issues []Issue

// Error renders every issue with its path, in the order validation produced them.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	b := &strings.Builder{}
	for i, it := range iss {
		if i > 0 {
			b.WriteString("; ")
		}
		// e.g. too_short at addresses[1].zipcode: too short
		fmt.Fprintf(b, "%s at %s: %s", it.Code, it.Path, it.Message)
	}
	return b.String()
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}
