package specflow

import (
	js "github.com/pedrojosemoragallegos/specflow/jsonschema"
)

// Node is one node of a schema tree: a constraint leaf (Field), a composite
// (Schema), or a composition (AnyOf/OneOf/Not). Nodes are immutable once
// constructed and safe for concurrent use; only this package implements the
// interface.
type Node interface {
	// Title returns the node's identifier. Compositions are positionless and
	// return "".
	Title() string

	check(v any, p Path, opt ValidateOpt) Issues
	export() *js.Schema
}
