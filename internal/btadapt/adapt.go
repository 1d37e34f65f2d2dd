package btadapt

import (
	"errors"
	"fmt"
	"log/slog"

	bt "github.com/joeycumines/go-behaviortree"

	"github.com/joeycumines/nodetree/internal/behavior"
)

// ErrRunning is recorded by a wrapped node whose tick did not finish.
var ErrRunning = errors.New("btadapt: node is still running")

// Status maps an Execute result to a go-behaviortree status.
func Status(ok bool) bt.Status {
	if ok {
		return bt.Success
	}
	return bt.Failure
}

// failure is the converted form of an absent node.
func failure([]bt.Node) (bt.Status, error) { return bt.Failure, nil }

// ToBT converts n, and every node beneath it, to a go-behaviortree node.
// Selector and Sequence become bt.Selector and bt.Sequence composites, a Root
// collapses into its child, and any other node becomes a leaf that executes it.
// A nil node (such as an absent root child, or a nil *Selector or *Sequence)
// becomes a leaf that always fails.
func ToBT(n behavior.Node) bt.Node {
	switch v := n.(type) {
	case nil:
		return bt.New(failure)
	case *behavior.Selector:
		if v == nil {
			return bt.New(failure)
		}
		return bt.New(bt.Selector, convertAll(v.Children())...)
	case *behavior.Sequence:
		if v == nil {
			return bt.New(failure)
		}
		return bt.New(bt.Sequence, convertAll(v.Children())...)
	case *behavior.Root:
		return ToBT(v.Child())
	case *Leaf:
		// unwrap, rather than stacking adapters
		return v.node
	default:
		return bt.New(func([]bt.Node) (bt.Status, error) {
			return Status(n.Execute()), nil
		})
	}
}

// TreeToBT converts a whole tree, starting from its root.
func TreeToBT(t *behavior.Tree) bt.Node {
	return ToBT(t.Root())
}

func convertAll(children []behavior.Node) []bt.Node {
	if len(children) == 0 {
		return nil
	}
	out := make([]bt.Node, len(children))
	for i, child := range children {
		out[i] = ToBT(child)
	}
	return out
}

// Leaf is a behavior leaf backed by a go-behaviortree node.
type Leaf struct {
	behavior.Leaf
	node   bt.Node
	logger *slog.Logger
}

var _ behavior.Node = (*Leaf)(nil)

// FromBT wraps node as a leaf. Each Execute ticks node once; only Success
// counts as success. A nil logger defaults to slog.Default().
func FromBT(node bt.Node, logger *slog.Logger) *Leaf {
	if logger == nil {
		logger = slog.Default()
	}
	return &Leaf{node: node, logger: logger}
}

// Execute implements behavior.Node.
func (l *Leaf) Execute() bool {
	status, err := l.tick()
	if err != nil {
		l.logger.Debug("[BT] go-behaviortree leaf failed", "status", status, "error", err)
		return false
	}
	return status == bt.Success
}

func (l *Leaf) tick() (bt.Status, error) {
	if l.node == nil {
		return bt.Failure, errors.New("btadapt: nil node")
	}
	status, err := l.node.Tick()
	if err != nil {
		return status, err
	}
	switch status {
	case bt.Success, bt.Failure:
		return status, nil
	case bt.Running:
		return status, ErrRunning
	default:
		return status, fmt.Errorf("btadapt: unknown status %v", status)
	}
}

// Node returns the wrapped go-behaviortree node.
func (l *Leaf) Node() bt.Node { return l.node }

func (l *Leaf) String() string { return "go-behaviortree node" }
