package specflow

// AnyOf passes a value when at least one child passes it. Child failures are
// not surfaced individually; an all-fail outcome is reported as a single
// summary issue at the composition's path.
type AnyOf struct {
	children []Node
}

// NewAnyOf returns an AnyOf over the given children (at least one required).
func NewAnyOf(children ...Node) (*AnyOf, error) {
	cs, err := compositionChildren(children)
	if err != nil {
		return nil, err
	}
	return &AnyOf{children: cs}, nil
}

func (a *AnyOf) Title() string { return "" }

// OneOf passes a value when exactly one child passes it.
type OneOf struct {
	children []Node
}

// NewOneOf returns a OneOf over the given children (at least one required).
func NewOneOf(children ...Node) (*OneOf, error) {
	cs, err := compositionChildren(children)
	if err != nil {
		return nil, err
	}
	return &OneOf{children: cs}, nil
}

func (o *OneOf) Title() string { return "" }

// Not passes a value when its child fails it; the child's own failures are
// discarded, only the boolean outcome matters.
type Not struct {
	child Node
}

// NewNot returns a Not over the given child.
func NewNot(child Node) (*Not, error) {
	if child == nil {
		return nil, ErrNilNode
	}
	return &Not{child: child}, nil
}

func (n *Not) Title() string { return "" }

func compositionChildren(children []Node) ([]Node, error) {
	if len(children) == 0 {
		return nil, ErrEmptyComposition
	}
	cs := make([]Node, len(children))
	for i, c := range children {
		if c == nil {
			return nil, ErrNilNode
		}
		cs[i] = c
	}
	return cs, nil
}
