package leaf

import (
	"fmt"
	"time"

	"github.com/joeycumines/nodetree/internal/behavior"
)

// Distance succeeds when Value is within Threshold (Value <= Threshold).
type Distance struct {
	behavior.Leaf
	Value     int
	Threshold int
}

var _ behavior.Node = (*Distance)(nil)

// NewDistance returns a Distance check.
func NewDistance(value, threshold int) *Distance {
	return &Distance{Value: value, Threshold: threshold}
}

func (d *Distance) Execute() bool { return d.Value <= d.Threshold }

func (d *Distance) String() string {
	return fmt.Sprintf("distance %d <= %d", d.Value, d.Threshold)
}

// Parity succeeds when Value is even.
type Parity struct {
	behavior.Leaf
	Value int
}

var _ behavior.Node = (*Parity)(nil)

// NewParity returns a Parity check.
func NewParity(value int) *Parity {
	return &Parity{Value: value}
}

func (p *Parity) Execute() bool { return p.Value%2 == 0 }

func (p *Parity) String() string { return fmt.Sprintf("parity %d", p.Value) }

// Wait always succeeds. Duration is informational: Execute does not block.
type Wait struct {
	behavior.Leaf
	Duration time.Duration
}

var _ behavior.Node = (*Wait)(nil)

// NewWait returns a Wait for d.
func NewWait(d time.Duration) *Wait {
	return &Wait{Duration: d}
}

func (w *Wait) Execute() bool { return true }

func (w *Wait) String() string { return "wait " + w.Duration.String() }
