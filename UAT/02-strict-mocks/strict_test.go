// Package strict_test exercises strict-mode gating end to end.
package strict_test

import (
	"testing"

	"github.com/jakeklassen/deepmock"
	. "github.com/onsi/gomega"
)

func TestStrictMock_FailsUntilStubbed(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	mock := deepmock.New(map[string]any{}, deepmock.Strict(), deepmock.WithName("gateway"))

	charge, ok := mock.Get("Charge").(*deepmock.Mock)
	g.Expect(ok).To(BeTrue())

	// Unstubbed strict calls fail with the offending path.
	g.Expect(func() { charge.Invoke(100) }).To(PanicWith(
		MatchError("Method gateway.Charge was called without being explicitly stubbed"),
	))

	// Once stubbed, the recorder returns the stub and never throws again.
	charge.SetReturn("receipt-1")

	g.Expect(charge.Invoke(100)).To(Equal([]any{"receipt-1"}))
	g.Expect(charge.Invoke(200)).To(Equal([]any{"receipt-1"}))
}

func TestStrictMock_StrictnessPropagatesToDescendants(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	mock := deepmock.New(nil, deepmock.Strict(), deepmock.WithName("root"))

	deep, ok := mock.Get("a").(*deepmock.Mock)
	g.Expect(ok).To(BeTrue())

	deeper, ok := deep.Get("b").(*deepmock.Mock)
	g.Expect(ok).To(BeTrue())

	g.Expect(func() { deeper.Invoke() }).To(PanicWith(
		MatchError("Method root.a.b was called without being explicitly stubbed"),
	))
}

func TestStrictMock_SeededMembersAreExemptFromGating(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	mock := deepmock.New(map[string]any{
		"Ping": func() string { return "pong" },
	}, deepmock.Strict())

	// Seeded functions run as ordinary wrapped functions; the strict policy
	// only governs auto-created recorders.
	g.Expect(mock.Call("Ping")).To(Equal([]any{"pong"}))
}
