package dsl

import (
	"github.com/pedrojosemoragallegos/specflow"
)

// ObjectBuilder assembles a composite schema. Property order is preserved for
// export; conditions are evaluated after properties in declaration order.
type ObjectBuilder struct {
	title string
	desc  string
	props []specflow.Node
	conds []*specflow.Condition
	err   error
}

// Object starts a composite schema with the given title.
func Object(title string) *ObjectBuilder {
	return &ObjectBuilder{title: title}
}

// Describe sets the schema description.
func (b *ObjectBuilder) Describe(d string) *ObjectBuilder {
	b.desc = d
	return b
}

// Prop appends a property node: a leaf, a nested schema, or a composition.
func (b *ObjectBuilder) Prop(n specflow.Node) *ObjectBuilder {
	b.props = append(b.props, n)
	return b
}

// When attaches an if/then condition evaluated against the object value.
func (b *ObjectBuilder) When(ifNode, thenNode specflow.Node) *ObjectBuilder {
	return b.WhenElse(ifNode, thenNode, nil)
}

// WhenElse attaches an if/then/else condition; elseNode may be nil.
func (b *ObjectBuilder) WhenElse(ifNode, thenNode, elseNode specflow.Node) *ObjectBuilder {
	c, err := specflow.NewCondition(ifNode, thenNode, elseNode)
	if err != nil {
		if b.err == nil {
			b.err = err
		}
		return b
	}
	b.conds = append(b.conds, c)
	return b
}

// Build returns the immutable composite, or the first construction error.
func (b *ObjectBuilder) Build() (*specflow.Schema, error) {
	if b.err != nil {
		return nil, b.err
	}
	return specflow.NewSchema(b.title, b.desc, b.props, b.conds)
}

// MustBuild panics when Build fails.
func (b *ObjectBuilder) MustBuild() *specflow.Schema {
	s, err := b.Build()
	if err != nil {
		panic(err)
	}
	return s
}
