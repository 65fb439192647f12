package core

import (
	"sync"
)

// ForTest returns the root mock for the given test, creating one if needed.
// Multiple calls with the same TestReporter return the same root, so helpers
// spread across a test can share one mock graph. Options apply only on
// first creation; the reporter is always attached.
//
// If the TestReporter supports Cleanup (like *testing.T), the root is
// automatically removed from the registry when the test completes.
func ForTest(t TestReporter, opts ...Option) *Node {
	registryMu.Lock()
	defer registryMu.Unlock()

	if root, ok := registry[t]; ok {
		return root
	}

	root := NewNode(nil, append(opts, WithReporter(t))...)
	registry[t] = root

	if cr, ok := t.(cleanupRegistrar); ok {
		cr.Cleanup(func() {
			registryMu.Lock()
			delete(registry, t)
			registryMu.Unlock()
		})
	}

	return root
}

// unexported variables.
var (
	//nolint:gochecknoglobals // Package-level registry is intentional for per-test roots
	registry = make(map[TestReporter]*Node)
	//nolint:gochecknoglobals // Mutex for registry
	registryMu sync.Mutex
)

// cleanupRegistrar is the interface needed for registering cleanup functions.
// This is satisfied by *testing.T and *testing.B.
type cleanupRegistrar interface {
	Cleanup(cleanupFunc func())
}
