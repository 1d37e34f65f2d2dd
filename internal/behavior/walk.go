package behavior

// Walk visits n and its descendants depth-first, in evaluation order, calling
// fn with each node and its depth (n is depth 0). Returning false from fn skips
// the children of that node. A Root's absent child is visited as nil; nil
// nodes have no children.
//
// Walk only inspects structure, it never executes anything. A node reachable
// along several paths is visited once per path, and, like Execute, Walk does
// not terminate on a composite that contains itself.
func Walk(n Node, fn func(n Node, depth int) bool) {
	walk(n, 0, fn)
}

func walk(n Node, depth int, fn func(Node, int) bool) {
	if !fn(n, depth) || n == nil {
		return
	}
	for _, child := range childrenOf(n) {
		walk(child, depth+1, fn)
	}
}

// childrenOf lists the structural children of the built-in node types.
func childrenOf(n Node) []Node {
	switch v := n.(type) {
	case *Selector:
		return v.Children()
	case *Sequence:
		return v.Children()
	case *Root:
		return []Node{v.Child()}
	default:
		return nil
	}
}
