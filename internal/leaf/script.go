package leaf

import (
	"errors"
	"fmt"
	"sync"

	"github.com/dop251/goja"

	"github.com/joeycumines/nodetree/internal/behavior"
)

// Script is a leaf whose behavior is the body of a JavaScript function. The
// truthiness of the returned value is the result:
//
//	s, err := leaf.NewScript("ready", "return hp > 10 && !fleeing;", map[string]any{
//		"hp":      42,
//		"fleeing": false,
//	})
//
// State kept in JavaScript globals persists between runs. Runs are serialised,
// since a goja runtime may only be used by one goroutine at a time.
type Script struct {
	behavior.Leaf
	name string
	opts options

	mu sync.Mutex
	fn goja.Callable
}

var _ behavior.Node = (*Script)(nil)

// NewScript compiles source as a function body, in a new runtime with the
// given globals defined. Syntax errors are returned here.
func NewScript(name, source string, globals map[string]any, opts ...Option) (*Script, error) {
	program, err := goja.Compile(name, "(function() {\n"+source+"\n})", false)
	if err != nil {
		return nil, fmt.Errorf("leaf: compile script %q: %w", name, err)
	}
	vm := goja.New()
	for k, v := range globals {
		if err := vm.Set(k, v); err != nil {
			return nil, fmt.Errorf("leaf: script %q: set global %q: %w", name, k, err)
		}
	}
	value, err := vm.RunProgram(program)
	if err != nil {
		return nil, fmt.Errorf("leaf: script %q: %w", name, err)
	}
	fn, ok := goja.AssertFunction(value)
	if !ok {
		return nil, errors.New("leaf: script " + name + " did not compile to a function")
	}
	return &Script{
		name: name,
		opts: newOptions(opts),
		fn:   fn,
	}, nil
}

// Execute calls the script. A thrown exception is logged and reported as
// failure.
func (s *Script) Execute() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	result, err := s.fn(goja.Undefined())
	if err != nil {
		s.opts.logger.Error("[BT] script leaf threw",
			"script", s.name,
			"error", err)
		return false
	}
	return result.ToBoolean()
}

func (s *Script) String() string { return "script " + s.name }
