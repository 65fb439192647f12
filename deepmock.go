// Package deepmock builds lazy, recursive, call-tracking deep mocks: every
// member of a mock that isn't explicitly provided is materialized on demand
// as a call-recording stand-in, while provided members behave exactly as
// given.
//
// This is the public API entry point. Implementation lives in internal/core.
package deepmock

import (
	"github.com/jakeklassen/deepmock/internal/core"
)

// CallRecord is a single recorded invocation of a Recorder.
type CallRecord = core.CallRecord

// Matcher defines the interface for flexible value matching.
type Matcher = core.Matcher

// Mock is a mock node: a stand-in that lazily and recursively materializes
// call-tracking children on demand.
type Mock = core.Node

// Option configures a root mock.
type Option = core.Option

// Recorder is the call-recording collaborator behind every callable member.
type Recorder = core.Recorder

// TestReporter is the minimal interface deepmock needs from test frameworks.
type TestReporter = core.TestReporter

// UnstubbedCallError reports a strict-mode call to a recorder with no
// explicit implementation.
type UnstubbedCallError = core.UnstubbedCallError

// Any returns a matcher that matches any value.
func Any() Matcher {
	return core.Any()
}

// Bind fills the exported func fields of the struct pointed to by target
// with trampolines routed through the mock, for statically typed call sites.
func Bind(mock *Mock, target any) {
	core.Bind(mock, target)
}

// ForTest returns the root mock for the given test, creating one if needed.
// Multiple calls with the same TestReporter return the same root.
func ForTest(t TestReporter, opts ...Option) *Mock {
	return core.ForTest(t, opts...)
}

// MatchValue checks if actual matches expected.
func MatchValue(actual, expected any) (bool, string) {
	return core.MatchValue(actual, expected)
}

// New creates a mock. A nil seed produces a fully auto-materialized mock
// whose root is itself callable; a map[string]any, struct, or struct-pointer
// seed provides the members that should behave as given.
func New(seed any, opts ...Option) *Mock {
	return core.NewNode(seed, opts...)
}

// Satisfies returns a matcher that uses a predicate function to check for a match.
func Satisfies[T any](predicate func(T) error) Matcher {
	return core.Satisfies(predicate)
}

// Strict makes unstubbed calls fail with an UnstubbedCallError instead of
// auto-materializing a return value.
func Strict() Option {
	return core.Strict()
}

// WithName sets the debug name for the root mock. The default is "mock".
func WithName(name string) Option {
	return core.WithName(name)
}

// WithReporter routes strict-mode failures through the given test reporter
// instead of panicking.
func WithReporter(t TestReporter) Option {
	return core.WithReporter(t)
}
