package dsl

import (
	"github.com/pedrojosemoragallegos/specflow"
)

// AnyOf builds a composition that passes when at least one child passes.
func AnyOf(children ...specflow.Node) (*specflow.AnyOf, error) {
	return specflow.NewAnyOf(children...)
}

// OneOf builds a composition that passes when exactly one child passes.
func OneOf(children ...specflow.Node) (*specflow.OneOf, error) {
	return specflow.NewOneOf(children...)
}

// Not builds a composition that passes when its child fails.
func Not(child specflow.Node) (*specflow.Not, error) {
	return specflow.NewNot(child)
}
