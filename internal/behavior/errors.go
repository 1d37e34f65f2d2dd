package behavior

import (
	"errors"
	"fmt"
)

var (
	// ErrStructuralViolation is matched by every *StructuralViolation.
	ErrStructuralViolation = errors.New("structural violation")
	// ErrConstruction is matched by every *ConstructionError.
	ErrConstruction = errors.New("construction error")
)

// StructuralViolation is returned when a node is placed where the tree shape
// forbids it. The target is left unmodified.
type StructuralViolation struct {
	// Op is the operation that was refused, e.g. "add child" or "new root".
	Op string
	// Parent is the kind of node that would have received the child.
	Parent Kind
	// Child is the kind of node that was refused.
	Child Kind
}

func (e *StructuralViolation) Error() string {
	return fmt.Sprintf("behavior: %s: a %s cannot have a %s as a child", e.Op, e.Parent, e.Child)
}

func (e *StructuralViolation) Unwrap() error { return ErrStructuralViolation }

// ConstructionError is returned when a mandatory part of a tree is missing.
type ConstructionError struct {
	Reason string
}

func (e *ConstructionError) Error() string {
	return "behavior: " + e.Reason
}

func (e *ConstructionError) Unwrap() error { return ErrConstruction }
