package testutil

import (
	"sync/atomic"

	"github.com/joeycumines/nodetree/internal/behavior"
)

// Stub is a leaf with a fixed result that counts how often it ran.
type Stub struct {
	behavior.Leaf
	Name   string
	Result bool
	calls  atomic.Int64
	trace  *[]string
}

// NewStub returns a Stub that always returns result.
func NewStub(name string, result bool) *Stub {
	return &Stub{Name: name, Result: result}
}

// Traced makes the stub append its name to log on every run. The log must not
// be shared between goroutines.
func (s *Stub) Traced(log *[]string) *Stub {
	s.trace = log
	return s
}

// Execute implements behavior.Node.
func (s *Stub) Execute() bool {
	s.calls.Add(1)
	if s.trace != nil {
		*s.trace = append(*s.trace, s.Name)
	}
	return s.Result
}

// Calls returns the number of Execute calls so far.
func (s *Stub) Calls() int { return int(s.calls.Load()) }

func (s *Stub) String() string { return "stub " + s.Name }
