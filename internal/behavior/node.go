package behavior

import "fmt"

// Kind discriminates the structural role of a Node.
type Kind int

const (
	// KindLeaf is a childless node.
	KindLeaf Kind = iota
	// KindComposite is a Selector or a Sequence.
	KindComposite
	// KindRoot is the entry point of a Tree.
	KindRoot
)

// String returns the lower case name of the kind.
func (k Kind) String() string {
	switch k {
	case KindLeaf:
		return "leaf"
	case KindComposite:
		return "composite"
	case KindRoot:
		return "root"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Node is anything executable within a tree.
type Node interface {
	// Execute runs the node to completion, returning true on success.
	Execute() bool
	// Kind reports the structural role of the node. It must be constant for
	// the lifetime of the node.
	Kind() Kind
}

// Leaf is embedded by leaf implementations to mark them as KindLeaf.
//
//	type Ready struct {
//		behavior.Leaf
//		ok bool
//	}
//
//	func (r *Ready) Execute() bool { return r.ok }
type Leaf struct{}

// Kind implements Node.Kind.
func (Leaf) Kind() Kind { return KindLeaf }

// LeafFunc adapts a plain function to a leaf Node.
type LeafFunc func() bool

var _ Node = LeafFunc(nil)

// Execute calls f.
func (f LeafFunc) Execute() bool { return f() }

// Kind implements Node.Kind.
func (LeafFunc) Kind() Kind { return KindLeaf }

// isRoot is the discriminator check shared by NewRoot and AddChild.
func isRoot(n Node) bool {
	return n != nil && n.Kind() == KindRoot
}
