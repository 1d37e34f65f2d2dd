/*
Package behavior implements a synchronous, single-shot behavior tree.

# Node Kinds

Every node reports its Kind, a closed discriminator with three values:

  - KindLeaf: a childless unit of work. Leaf authors embed Leaf (or use
    LeafFunc); neither exposes any child-management method, so a leaf cannot
    be given children.
  - KindComposite: Selector (OR) and Sequence (AND). Children are evaluated in
    insertion order with short-circuiting.
  - KindRoot: the single-child wrapper that anchors a Tree.

# Structural Rules

Rules are checked when the structure is built, never during Execute:

  - A Root cannot wrap another Root (NewRoot returns a StructuralViolation).
  - A composite cannot receive a Root (AddChild returns a StructuralViolation,
    and the child list is left untouched).
  - A Tree requires a Root (NewTree returns a ConstructionError).
  - A Root may wrap nothing; executing it then fails.

# Execution

Execute is plain recursive dispatch. It returns true for success and false for
failure, and it never returns an error. A panic raised inside a leaf propagates
to the caller.

Empty composites: a Selector with no children fails (no option succeeded), a
Sequence with no children succeeds (vacuous conjunction).

Absent nodes fail wherever they appear: a nil child, or a nil *Selector,
*Sequence or *Root added as a child. Such nodes still report their Kind, so
they are accepted or refused by the structural rules like any other node.

# Thread Safety

After construction, Selector, Sequence, Root and Tree hold no mutable state
touched by Execute, so concurrent Execute calls are safe as long as every leaf
is. AddChild must not race with Execute.
*/
package behavior
