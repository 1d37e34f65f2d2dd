package testutil

import (
	"fmt"
	"strings"
	"sync/atomic"
)

var runCounter int64

// NewTestRunID generates a deterministic, process-local unique run ID for
// tests. Pass in t.Name() from the caller to make IDs traceable per-test.
func NewTestRunID(prefix, tname string) string {
	id := atomic.AddInt64(&runCounter, 1)
	return fmt.Sprintf("%s-%s-%d", prefix, strings.ReplaceAll(tname, `/`, `-_-`), id)
}

// RunIDs returns a generator suitable for behavior.WithRunID, yielding IDs
// from NewTestRunID.
func RunIDs(prefix, tname string) func() string {
	return func() string {
		return NewTestRunID(prefix, tname)
	}
}
