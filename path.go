package specflow

import (
	"strconv"
	"strings"
)

// Seg is a single step of a Path: an object key or an array index.
type Seg struct {
	Key     string
	Index   int
	IsIndex bool
}

// Path locates a failure within a nested value, e.g. addresses[1].zipcode.
// The empty Path is the value root.
type Path []Seg

// Key returns a copy of p extended by an object key segment. Extension copies
// so sibling branches never alias the same backing array.
func (p Path) Key(k string) Path {
	np := make(Path, len(p)+1)
	copy(np, p)
	np[len(p)] = Seg{Key: k}
	return np
}

// Index returns a copy of p extended by an array index segment.
func (p Path) Index(i int) Path {
	np := make(Path, len(p)+1)
	copy(np, p)
	np[len(p)] = Seg{Index: i, IsIndex: true}
	return np
}

// String renders the path in key[index] form; the root renders as "$".
func (p Path) String() string {
	if len(p) == 0 {
		return "$"
	}
	b := &strings.Builder{}
	for i, s := range p {
		if s.IsIndex {
			b.WriteByte('[')
			b.WriteString(strconv.Itoa(s.Index))
			b.WriteByte(']')
			continue
		}
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(s.Key)
	}
	return b.String()
}
