package behavior

// Root anchors a Tree. It wraps at most one child, fixed at construction.
type Root struct {
	child Node
}

var _ Node = (*Root)(nil)

// NewRoot wraps child, which may be nil. A child that is itself a Root is
// refused with a *StructuralViolation.
func NewRoot(child Node) (*Root, error) {
	if isRoot(child) {
		return nil, &StructuralViolation{Op: "new root", Parent: KindRoot, Child: KindRoot}
	}
	return &Root{child: child}, nil
}

// Child returns the wrapped node, or nil.
func (r *Root) Child() Node {
	if r == nil {
		return nil
	}
	return r.child
}

// Kind implements Node.Kind.
func (*Root) Kind() Kind { return KindRoot }

// Execute returns the child's result, or false if there is no child.
func (r *Root) Execute() bool {
	return execute(r.Child())
}
