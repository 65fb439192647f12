// Package core implements the lazy proxy-materialization engine behind
// deepmock: the mock node object model, the materialization policy, and the
// call-recorder collaborator they drive.
package core

import (
	"fmt"
	"reflect"
)

// TestReporter is the minimal interface deepmock needs from test frameworks.
type TestReporter interface {
	Helper()
	Fatalf(format string, args ...any)
}

// UnstubbedCallError reports a strict-mode invocation of an auto-created
// recorder that has no explicit implementation.
type UnstubbedCallError struct {
	Path string
}

// Error formats the failure with the debug path of the offending recorder.
func (e *UnstubbedCallError) Error() string {
	return fmt.Sprintf("Method %s was called without being explicitly stubbed", e.Path)
}

// Node is a mock node: a stand-in for a member of a mocked value that lazily
// and recursively materializes children on demand. A node is either seeded
// (backed by a user-supplied value) or auto-created (backed by a fresh
// call-recorder); the distinction is fixed at creation.
//
// Repeated reads of the same key yield the identical child until the key is
// written. All mutation assumes single-owner access from one goroutine; the
// recorder's call history is the only concurrency-safe part.
type Node struct {
	path   string
	strict bool
	t      TestReporter

	seed     *seedView // non-nil for seeded nodes
	recorder *Recorder // non-nil for auto nodes
	children map[string]any
}

// Option configures a root mock node.
type Option func(*Node)

// Strict makes unstubbed calls on the node and every descendant fail with an
// UnstubbedCallError instead of auto-materializing a return value.
func Strict() Option {
	return func(n *Node) {
		n.strict = true
	}
}

// WithName sets the debug name for the root node. Descendant paths derive
// from it. The default is "mock".
func WithName(name string) Option {
	return func(n *Node) {
		n.path = name
	}
}

// WithReporter routes strict-mode failures through the given test reporter
// instead of panicking.
func WithReporter(t TestReporter) Option {
	return func(n *Node) {
		n.t = t
	}
}

// NewNode creates a root mock node. A nil seed produces an auto node whose
// root is itself callable; otherwise seed's own members take priority over
// auto-materialization. Seed shape is not validated beyond what seedView can
// wrap.
func NewNode(seed any, opts ...Option) *Node {
	node := &Node{
		path:     "mock",
		children: map[string]any{},
	}

	for _, opt := range opts {
		opt(node)
	}

	if seed != nil {
		node.seed = newSeedView(seed)
	} else {
		node.recorder = NewRecorder(node.path, nil)
	}

	return node
}

// Call invokes the member named key with args and returns its results.
func (n *Node) Call(key string, args ...any) []any {
	switch child := n.Get(key).(type) {
	case *Node:
		return child.Invoke(args...)
	case *Recorder:
		return child.Invoke(args...)
	default:
		n.fail("Member %s.%s is not callable (it is %T)", n.path, key, child)

		return nil
	}
}

// Chain invokes the member named key and returns its first result as a mock
// node, so unstubbed call chains stay navigable to arbitrary depth. Every
// hop is stable: repeating the chain reaches the identical nodes.
func (n *Node) Chain(key string, args ...any) *Node {
	results := n.Call(key, args...)

	if len(results) > 0 {
		if child, ok := results[0].(*Node); ok {
			return child
		}
	}

	n.fail("Member %s.%s did not produce a mock node to chain from", n.path, key)

	return nil
}

// Get reads the member named key, materializing and caching a child on first
// access. Reserved host-protocol keys always read as absent; on auto nodes
// the recorder's control surface delegates straight to the recorder.
func (n *Node) Get(key string) any {
	if isReservedKey(key) {
		return nil
	}

	if n.recorder != nil {
		if member, ok := controlSurface(n.recorder, key); ok {
			return member
		}
	}

	if child, ok := n.children[key]; ok {
		return child
	}

	child := n.materialize(key)
	n.children[key] = child

	return child
}

// Invoke calls the node as a function. Seeded nodes are not callable; for
// auto nodes the unstubbed-call policy applies: an explicit implementation
// wins, strict mode fails, and lenient mode materializes one stable node per
// recorder that every subsequent unstubbed call returns again.
func (n *Node) Invoke(args ...any) []any {
	if n.recorder == nil {
		n.fail("Mock %s is backed by a seed value and is not callable", n.path)

		return nil
	}

	hadImpl := n.recorder.HasImpl()

	results := n.recorder.Invoke(args...)
	if hadImpl || len(results) > 0 {
		return results
	}

	if n.strict {
		err := &UnstubbedCallError{Path: n.path}
		if n.t != nil {
			n.t.Helper()
			n.t.Fatalf("%s", err.Error())

			return nil
		}

		panic(err)
	}

	if cached, ok := n.children[applyKey]; ok {
		return []any{cached}
	}

	child := n.newChild(n.path + "()")
	n.children[applyKey] = child

	return []any{child}
}

// Path returns the node's debug path label. It is only ever used in failure
// messages, never for identity.
func (n *Node) Path() string {
	return n.path
}

// Recorder returns the node's own call-recorder, or nil for seeded nodes.
func (n *Node) Recorder() *Recorder {
	return n.recorder
}

// Set stores value for key. The write overrides both the cache and the
// backing value: later reads return exactly value, and materialization never
// regenerates the key.
func (n *Node) Set(key string, value any) {
	n.children[key] = value

	if n.seed != nil {
		n.seed.set(key, value)
	}
}

// SetImpl stubs an explicit implementation on the node's recorder.
func (n *Node) SetImpl(impl func(args []any) []any) {
	if n.recorder == nil {
		n.fail("Mock %s is backed by a seed value and cannot be stubbed as a function", n.path)

		return
	}

	n.recorder.SetImpl(impl)
}

// SetReturn stubs fixed return values on the node's recorder.
func (n *Node) SetReturn(values ...any) {
	if n.recorder == nil {
		n.fail("Mock %s is backed by a seed value and cannot be stubbed as a function", n.path)

		return
	}

	n.recorder.SetReturn(values...)
}

// fail routes a programmer error through the test reporter when one is
// attached, and panics otherwise.
func (n *Node) fail(format string, args ...any) {
	if n.t != nil {
		n.t.Helper()
		n.t.Fatalf(format, args...)

		return
	}

	panic(fmt.Sprintf(format, args...))
}

// materialize produces the child for a key with no cache entry yet. Seeded
// members win over fabrication; seeded callables are wrapped as recorders
// that run the original behavior; already-recording values pass through
// untouched so composed mocks are never double-wrapped.
func (n *Node) materialize(key string) any {
	if n.seed != nil && n.seed.has(key) {
		value := n.seed.get(key)

		switch value.(type) {
		case *Recorder, *Node:
			return value
		}

		if value != nil && reflect.TypeOf(value).Kind() == reflect.Func {
			return NewRecorder(n.path+"."+key, implFromFunc(value))
		}

		return value
	}

	if key == constructorKey {
		return func() any { return nil }
	}

	return n.newChild(n.path + "." + key)
}

// newChild creates a fresh auto node, propagating strictness and the
// reporter unchanged.
func (n *Node) newChild(path string) *Node {
	return &Node{
		path:     path,
		strict:   n.strict,
		t:        n.t,
		recorder: NewRecorder(path, nil),
		children: map[string]any{},
	}
}
