package behavior

// composite holds the ordered children shared by Selector and Sequence.
type composite struct {
	children []Node
}

func (c *composite) add(parent string, child Node) error {
	if isRoot(child) {
		return &StructuralViolation{Op: parent + " add child", Parent: KindComposite, Child: KindRoot}
	}
	c.children = append(c.children, child)
	return nil
}

func (c *composite) list() []Node {
	if len(c.children) == 0 {
		return nil
	}
	out := make([]Node, len(c.children))
	copy(out, c.children)
	return out
}

// execute is a nil-tolerant child call; an absent child fails, as for Root.
func execute(n Node) bool {
	return n != nil && n.Execute()
}

// Selector succeeds as soon as one child succeeds (logical OR). Children are
// tried in insertion order, and the ones after the first success are not run.
// A Selector without children fails.
type Selector struct {
	composite
}

var _ Node = (*Selector)(nil)

// NewSelector returns a Selector with the given children, or the first
// StructuralViolation encountered. On error no Selector is returned.
func NewSelector(children ...Node) (*Selector, error) {
	s := new(Selector)
	for _, child := range children {
		if err := s.AddChild(child); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// AddChild appends child. A Root is refused with a *StructuralViolation.
// The same node may be added more than once; it is then evaluated once per
// occurrence.
func (s *Selector) AddChild(child Node) error {
	return s.add("selector", child)
}

// Children returns a copy of the children, in evaluation order.
func (s *Selector) Children() []Node {
	if s == nil {
		return nil
	}
	return s.list()
}

// Len returns the number of children.
func (s *Selector) Len() int {
	if s == nil {
		return 0
	}
	return len(s.children)
}

// Kind implements Node.Kind. It is valid on a nil *Selector.
func (*Selector) Kind() Kind { return KindComposite }

// Execute implements Node.Execute. A nil *Selector fails.
func (s *Selector) Execute() bool {
	if s == nil {
		return false
	}
	for _, child := range s.children {
		if execute(child) {
			return true
		}
	}
	return false
}

// Sequence succeeds only if every child succeeds (logical AND). Children are
// run in insertion order, stopping at the first failure. A Sequence without
// children succeeds, as the empty conjunction is true.
type Sequence struct {
	composite
}

var _ Node = (*Sequence)(nil)

// NewSequence returns a Sequence with the given children, or the first
// StructuralViolation encountered. On error no Sequence is returned.
func NewSequence(children ...Node) (*Sequence, error) {
	s := new(Sequence)
	for _, child := range children {
		if err := s.AddChild(child); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// AddChild appends child. A Root is refused with a *StructuralViolation.
func (s *Sequence) AddChild(child Node) error {
	return s.add("sequence", child)
}

// Children returns a copy of the children, in evaluation order.
func (s *Sequence) Children() []Node {
	if s == nil {
		return nil
	}
	return s.list()
}

// Len returns the number of children.
func (s *Sequence) Len() int {
	if s == nil {
		return 0
	}
	return len(s.children)
}

// Kind implements Node.Kind. It is valid on a nil *Sequence.
func (*Sequence) Kind() Kind { return KindComposite }

// Execute implements Node.Execute. A nil *Sequence is an absent node and
// fails, unlike an empty one.
func (s *Sequence) Execute() bool {
	if s == nil {
		return false
	}
	for _, child := range s.children {
		if !execute(child) {
			return false
		}
	}
	return true
}
