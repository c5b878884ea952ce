package specflow

import "fmt"

// Schema is a composite node grouping named properties and conditions. A
// property is a Field, a nested Schema, or a composition; titled properties
// bind to the matching key of an object value, compositions are positionless.
// Property order is significant for export only.
type Schema struct {
	title       string
	description string
	properties  []Node
	conditions  []*Condition

	// declared holds every key bindable anywhere beneath this composite
	// (through compositions and condition branches); strict mode reports
	// object keys outside this set.
	declared map[string]struct{}
}

// NewSchema returns an immutable composite. Titles of direct Field/Schema
// properties must be unique; conditions are evaluated after properties, in
// declaration order.
func NewSchema(title, description string, properties []Node, conditions []*Condition) (*Schema, error) {
	if title == "" {
		return nil, ErrMissingTitle
	}
	seen := make(map[string]struct{}, len(properties))
	for _, n := range properties {
		if n == nil {
			return nil, ErrNilNode
		}
		switch n.(type) {
		case *Field, *Schema:
			t := n.Title()
			if _, dup := seen[t]; dup {
				return nil, fmt.Errorf("%w: %q", ErrDuplicateTitle, t)
			}
			seen[t] = struct{}{}
		}
	}

	s := &Schema{
		title:       title,
		description: description,
		declared:    make(map[string]struct{}),
	}
	if len(properties) > 0 {
		s.properties = make([]Node, len(properties))
		copy(s.properties, properties)
	}
	if len(conditions) > 0 {
		s.conditions = make([]*Condition, len(conditions))
		for i, c := range conditions {
			if c == nil {
				return nil, ErrIncompleteCondition
			}
			s.conditions[i] = c
		}
	}
	for _, n := range s.properties {
		collectTitles(n, s.declared)
	}
	for _, c := range s.conditions {
		c.collectTitles(s.declared)
	}
	return s, nil
}

// Title returns the composite's identifier.
func (s *Schema) Title() string { return s.title }

// collectTitles gathers every key a node can bind within an object value.
func collectTitles(n Node, into map[string]struct{}) {
	switch t := n.(type) {
	case *AnyOf:
		for _, c := range t.children {
			collectTitles(c, into)
		}
	case *OneOf:
		for _, c := range t.children {
			collectTitles(c, into)
		}
	case *Not:
		collectTitles(t.child, into)
	default: // *Field, *Schema
		into[n.Title()] = struct{}{}
	}
}

// Condition is an if/then/else branch attached to a Schema and evaluated
// against the same object value. The if outcome only selects the branch;
// its own failures are never surfaced.
type Condition struct {
	ifNode   Node
	thenNode Node
	elseNode Node // optional
}

// NewCondition returns a Condition; ifNode and thenNode are required,
// elseNode may be nil.
func NewCondition(ifNode, thenNode, elseNode Node) (*Condition, error) {
	if ifNode == nil || thenNode == nil {
		return nil, ErrIncompleteCondition
	}
	return &Condition{ifNode: ifNode, thenNode: thenNode, elseNode: elseNode}, nil
}

func (c *Condition) collectTitles(into map[string]struct{}) {
	collectTitles(c.ifNode, into)
	collectTitles(c.thenNode, into)
	if c.elseNode != nil {
		collectTitles(c.elseNode, into)
	}
}
