package core

import (
	"errors"
	"fmt"
	"strings"

	"github.com/akedrou/textdiff"
)

// ErrNeverCalled reports a history assertion against a recorder with no
// recorded invocations.
var ErrNeverCalled = errors.New("was never called")

// ErrNoMatchingCall reports that no recorded invocation matched.
var ErrNoMatchingCall = errors.New("was not called with matching arguments")

// AssertCalledWith fails the test unless some recorded invocation matches.
func (r *Recorder) AssertCalledWith(t TestReporter, expected ...any) {
	t.Helper()

	if err := r.CalledWith(expected...); err != nil {
		t.Fatalf("%v", err)
	}
}

// CalledWith reports whether any recorded invocation's arguments match the
// expected values. Each expected value may be a plain value (compared with
// DeepEqual) or a Matcher. On no match, the error renders a unified diff
// between the expected arguments and each recorded call.
func (r *Recorder) CalledWith(expected ...any) error {
	calls := r.Calls()
	if len(calls) == 0 {
		return fmt.Errorf("%s %w", r.name, ErrNeverCalled)
	}

	diffs := make([]string, 0, len(calls))

	for i, call := range calls {
		mismatch := matchArgs(call.Args, expected)
		if mismatch == "" {
			return nil
		}

		diff := textdiff.Unified(
			fmt.Sprintf("%s (expected)", r.name),
			fmt.Sprintf("%s (call %d)", r.name, i),
			dumpArgs(expected),
			dumpArgs(call.Args),
		)
		diffs = append(diffs, mismatch+"\n"+diff)
	}

	return fmt.Errorf("%s %w:\n%s", r.name, ErrNoMatchingCall, strings.Join(diffs, "\n"))
}

// dumpArgs renders one argument per line for diffing.
func dumpArgs(args []any) string {
	var builder strings.Builder

	for _, arg := range args {
		fmt.Fprintf(&builder, "%#v\n", arg)
	}

	return builder.String()
}

// matchArgs compares a recorded argument list against expected values and
// matchers. Returns an empty string on match, a description otherwise.
func matchArgs(actual, expected []any) string {
	if len(actual) != len(expected) {
		return fmt.Sprintf("expected %d args, got %d", len(expected), len(actual))
	}

	for i, want := range expected {
		ok, failureMsg := MatchValue(actual[i], want)
		if !ok {
			return fmt.Sprintf("arg %d: %s", i, failureMsg)
		}
	}

	return ""
}
