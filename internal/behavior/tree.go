package behavior

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Tree is the public entry point of a behavior tree. It owns exactly one Root.
type Tree struct {
	root   *Root
	logger *slog.Logger
	runID  func() string
}

// Option configures a Tree.
type Option func(*Tree)

// WithLogger sets the logger used to report each run at debug level.
// A nil logger disables run logging.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Tree) {
		t.logger = logger
	}
}

// WithRunID overrides the generator of the per-run identifier attached to
// log records. The default is a random UUID.
func WithRunID(fn func() string) Option {
	return func(t *Tree) {
		if fn != nil {
			t.runID = fn
		}
	}
}

// NewTree returns a Tree anchored at root. A nil root is refused with a
// *ConstructionError and no Tree is returned.
func NewTree(root *Root, opts ...Option) (*Tree, error) {
	if root == nil {
		return nil, &ConstructionError{Reason: "a behavior tree requires a root node"}
	}
	t := &Tree{
		root:   root,
		logger: slog.Default(),
		runID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}

// Root returns the root node.
func (t *Tree) Root() *Root { return t.root }

// Execute runs the tree once and returns the root's result.
func (t *Tree) Execute() bool {
	if t.logger == nil || !t.logger.Enabled(context.Background(), slog.LevelDebug) {
		return t.root.Execute()
	}
	id := t.runID()
	start := time.Now()
	t.logger.Debug("[BT] tree run started", "run", id)
	ok := t.root.Execute()
	t.logger.Debug("[BT] tree run finished",
		"run", id,
		"success", ok,
		"elapsed", time.Since(start))
	return ok
}
