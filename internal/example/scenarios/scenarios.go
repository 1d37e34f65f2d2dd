// Package scenarios holds the demonstration trees run by the nodetree
// command. Each scenario builds a tree in code and declares the outcome it
// must produce, either an Execute result or a construction error.
package scenarios

import (
	"errors"
	"log/slog"
	"time"

	bt "github.com/joeycumines/go-behaviortree"

	"github.com/joeycumines/nodetree/internal/behavior"
	"github.com/joeycumines/nodetree/internal/btadapt"
	"github.com/joeycumines/nodetree/internal/leaf"
)

// Scenario is a named, self-checking tree.
type Scenario struct {
	Name        string
	Description string
	// Build assembles the tree. Scenarios about construction failures return
	// the error instead.
	Build func(logger *slog.Logger) (*behavior.Tree, error)
	// Want is the expected Execute result when WantErr is nil.
	Want bool
	// WantErr is matched with errors.Is against the Build error.
	WantErr error
}

// Outcome is the result of running a Scenario.
type Outcome struct {
	Tree   *behavior.Tree
	Result bool
	Err    error
	// OK reports whether the outcome matched the scenario's expectation.
	OK bool
}

// Run builds and executes s.
func (s Scenario) Run(logger *slog.Logger) Outcome {
	tree, err := s.Build(logger)
	if err != nil {
		return Outcome{Err: err, OK: s.WantErr != nil && errors.Is(err, s.WantErr)}
	}
	if s.WantErr != nil {
		return Outcome{Tree: tree, Err: errors.New("expected construction to fail"), OK: false}
	}
	result := tree.Execute()
	return Outcome{Tree: tree, Result: result, OK: result == s.Want}
}

// Find returns the scenario with the given name.
func Find(name string) (Scenario, bool) {
	for _, s := range All() {
		if s.Name == name {
			return s, true
		}
	}
	return Scenario{}, false
}

// plant wraps n in a Root and a Tree.
func plant(logger *slog.Logger, n behavior.Node) (*behavior.Tree, error) {
	root, err := behavior.NewRoot(n)
	if err != nil {
		return nil, err
	}
	return behavior.NewTree(root, behavior.WithLogger(logger))
}

func leafScenario(name, description string, n func() behavior.Node, want bool) Scenario {
	return Scenario{
		Name:        name,
		Description: description,
		Build: func(logger *slog.Logger) (*behavior.Tree, error) {
			return plant(logger, n())
		},
		Want: want,
	}
}

// All returns every scenario, in presentation order.
func All() []Scenario {
	return []Scenario{
		leafScenario("distance-near", "distance 3 within threshold 5",
			func() behavior.Node { return leaf.NewDistance(3, 5) }, true),
		leafScenario("distance-far", "distance 6 beyond threshold 5",
			func() behavior.Node { return leaf.NewDistance(6, 5) }, false),
		leafScenario("parity-even", "2 is even",
			func() behavior.Node { return leaf.NewParity(2) }, true),
		leafScenario("parity-odd", "3 is odd",
			func() behavior.Node { return leaf.NewParity(3) }, false),
		leafScenario("move-and-wait", "move 0 -> 5 then wait",
			func() behavior.Node {
				seq := new(behavior.Sequence)
				_ = seq.AddChild(leaf.NewMoveTo(0, 5))
				_ = seq.AddChild(leaf.NewWait(2 * time.Second))
				return seq
			}, true),
		{
			Name:        "selector-first-success",
			Description: "selector stops at the first succeeding child",
			Build: func(logger *slog.Logger) (*behavior.Tree, error) {
				sel := new(behavior.Selector)
				if err := sel.AddChild(leaf.NewDistance(3, 5)); err != nil {
					return nil, err
				}
				if err := sel.AddChild(leaf.NewDistance(6, 5)); err != nil {
					return nil, err
				}
				return plant(logger, sel)
			},
			Want: true,
		},
		{
			Name:        "sequence-first-failure",
			Description: "sequence stops at the first failing child",
			Build: func(logger *slog.Logger) (*behavior.Tree, error) {
				seq, err := behavior.NewSequence(leaf.NewDistance(6, 5), leaf.NewMoveTo(0, 5))
				if err != nil {
					return nil, err
				}
				return plant(logger, seq)
			},
			Want: false,
		},
		leafScenario("selector-empty", "a selector without children fails",
			func() behavior.Node { return new(behavior.Selector) }, false),
		leafScenario("sequence-empty", "a sequence without children succeeds",
			func() behavior.Node { return new(behavior.Sequence) }, true),
		leafScenario("tree-root", "the tree passes its root's result through",
			func() behavior.Node { return leaf.NewDistance(3, 5) }, true),
		{
			Name:        "tree-empty-root",
			Description: "a root without a child fails",
			Build: func(logger *slog.Logger) (*behavior.Tree, error) {
				return plant(logger, nil)
			},
			Want: false,
		},
		{
			Name:        "selector-refuses-root",
			Description: "a composite cannot adopt a root",
			Build: func(logger *slog.Logger) (*behavior.Tree, error) {
				root, err := behavior.NewRoot(leaf.NewParity(2))
				if err != nil {
					return nil, err
				}
				sel := new(behavior.Selector)
				if err := sel.AddChild(root); err != nil {
					return nil, err
				}
				return plant(logger, sel)
			},
			WantErr: behavior.ErrStructuralViolation,
		},
		{
			Name:        "root-refuses-root",
			Description: "a root cannot wrap another root",
			Build: func(logger *slog.Logger) (*behavior.Tree, error) {
				inner, err := behavior.NewRoot(leaf.NewParity(2))
				if err != nil {
					return nil, err
				}
				return plant(logger, inner)
			},
			WantErr: behavior.ErrStructuralViolation,
		},
		{
			Name:        "tree-requires-root",
			Description: "a tree cannot be built without a root",
			Build: func(logger *slog.Logger) (*behavior.Tree, error) {
				return behavior.NewTree(nil, behavior.WithLogger(logger))
			},
			WantErr: behavior.ErrConstruction,
		},
		{
			Name:        "guarded-approach",
			Description: "expression guard, scripted range check, then move",
			Build: func(logger *slog.Logger) (*behavior.Tree, error) {
				healthy, err := leaf.NewExpr("hp > 10 && !fleeing",
					map[string]any{"hp": 42, "fleeing": false},
					leaf.WithLogger(logger))
				if err != nil {
					return nil, err
				}
				inRange, err := leaf.NewScript("in-range", "return Math.abs(target - position) <= reach;",
					map[string]any{"target": 9, "position": 4, "reach": 5},
					leaf.WithLogger(logger))
				if err != nil {
					return nil, err
				}
				seq, err := behavior.NewSequence(healthy, inRange, leaf.NewMoveTo(4, 9))
				if err != nil {
					return nil, err
				}
				return plant(logger, seq)
			},
			Want: true,
		},
		{
			Name:        "go-behaviortree-fallback",
			Description: "a go-behaviortree sequence as a leaf, with a fallback",
			Build: func(logger *slog.Logger) (*behavior.Tree, error) {
				pass := bt.New(func([]bt.Node) (bt.Status, error) { return bt.Success, nil })
				fail := bt.New(func([]bt.Node) (bt.Status, error) { return bt.Failure, nil })
				sel, err := behavior.NewSelector(
					btadapt.FromBT(bt.New(bt.Sequence, pass, fail), logger),
					leaf.NewParity(2),
				)
				if err != nil {
					return nil, err
				}
				return plant(logger, sel)
			},
			Want: true,
		},
	}
}
