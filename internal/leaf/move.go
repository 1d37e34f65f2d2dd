package leaf

import (
	"fmt"

	"github.com/joeycumines/nodetree/internal/behavior"
)

// MoveTo advances a position one step at a time until it reaches a target,
// then reports success. It only moves forward: with a target behind the
// current position it succeeds immediately without moving.
//
// MoveTo mutates its position, so concurrent Execute calls must be
// synchronised by the caller.
type MoveTo struct {
	behavior.Leaf
	position int
	target   int
}

var _ behavior.Node = (*MoveTo)(nil)

// NewMoveTo returns a MoveTo starting at start.
func NewMoveTo(start, target int) *MoveTo {
	return &MoveTo{position: start, target: target}
}

// Execute always returns true.
func (m *MoveTo) Execute() bool {
	for m.position < m.target {
		m.position++
	}
	return true
}

// Position returns the current position.
func (m *MoveTo) Position() int { return m.position }

// Target returns the target position.
func (m *MoveTo) Target() int { return m.target }

func (m *MoveTo) String() string {
	return fmt.Sprintf("move %d -> %d", m.position, m.target)
}
