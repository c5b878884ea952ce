package specflow

import (
	js "github.com/pedrojosemoragallegos/specflow/jsonschema"
)

// Export mirrors the schema tree rooted at n into its canonical nested form.
// It is a pure transform: it never validates, and every successfully
// constructed node exports.
func Export(n Node) *js.Schema { return n.export() }

func (f *Field) export() *js.Schema {
	out := &js.Schema{
		Type:        f.kind.String(),
		Title:       f.title,
		Description: f.description,
		Nullable:    f.nullable,
		Default:     f.defaultVal,
		Const:       f.constVal,
	}
	if len(f.enum) > 0 {
		out.Enum = make([]any, len(f.enum))
		copy(out.Enum, f.enum)
	}

	switch f.kind {
	case KindString:
		out.MinLength = intCopy(f.minLength)
		out.MaxLength = intCopy(f.maxLength)
		out.Pattern = f.patternSrc
	case KindInteger, KindNumber:
		out.Minimum = floatCopy(f.minimum)
		out.Maximum = floatCopy(f.maximum)
		out.ExclusiveMinimum = floatCopy(f.exclusiveMinimum)
		out.ExclusiveMaximum = floatCopy(f.exclusiveMaximum)
		out.MultipleOf = floatCopy(f.multipleOf)
	case KindArray:
		if f.items != nil {
			out.Items = f.items.export()
		}
		for _, pre := range f.prefixItems {
			out.PrefixItems = append(out.PrefixItems, pre.export())
		}
		out.MinItems = intCopy(f.minItems)
		out.MaxItems = intCopy(f.maxItems)
	}
	return out
}

func (s *Schema) export() *js.Schema {
	out := &js.Schema{
		Type:        "object",
		Title:       s.title,
		Description: s.description,
	}
	for _, n := range s.properties {
		if n.Title() == "" {
			// Positionless compositions attach beside the properties mapping.
			out.AllOf = append(out.AllOf, n.export())
			continue
		}
		out.Properties = append(out.Properties, js.Prop{Key: n.Title(), Schema: n.export()})
	}
	if len(s.conditions) == 1 {
		c := s.conditions[0]
		out.If = c.ifNode.export()
		out.Then = c.thenNode.export()
		if c.elseNode != nil {
			out.Else = c.elseNode.export()
		}
	} else {
		for _, c := range s.conditions {
			triple := &js.Schema{If: c.ifNode.export(), Then: c.thenNode.export()}
			if c.elseNode != nil {
				triple.Else = c.elseNode.export()
			}
			out.AllOf = append(out.AllOf, triple)
		}
	}
	return out
}

func (a *AnyOf) export() *js.Schema {
	out := &js.Schema{AnyOf: make([]*js.Schema, 0, len(a.children))}
	for _, c := range a.children {
		out.AnyOf = append(out.AnyOf, c.export())
	}
	return out
}

func (o *OneOf) export() *js.Schema {
	out := &js.Schema{OneOf: make([]*js.Schema, 0, len(o.children))}
	for _, c := range o.children {
		out.OneOf = append(out.OneOf, c.export())
	}
	return out
}

func (n *Not) export() *js.Schema {
	return &js.Schema{Not: n.child.export()}
}

func intCopy(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func floatCopy(p *float64) *float64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
