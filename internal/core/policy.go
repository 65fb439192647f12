package core

// Reserved host-protocol keys. Surrounding tooling probes these to decide
// whether a value is awaitable, printable via a custom hook, or matcher-like.
// A mock must never materialize a node for them, or fmt and matcher libraries
// would misinterpret the mock itself.
const (
	// fmt custom-inspection hooks.
	keyString   = "String"
	keyGoString = "GoString"
	keyFormat   = "Format"
	// gomega-style asymmetric matcher probe.
	keyMatch          = "Match"
	keyFailureMessage = "FailureMessage"
)

// constructorKey is the member every mock answers with a trivial no-argument
// function, so callers always see a well-defined, equality-comparable
// constructor reference without introspecting the original type.
const constructorKey = "constructor"

// applyKey is the internal cache key for the node materialized by an
// unstubbed call to an auto recorder. It is scoped per recorder: all
// unstubbed calls to the same recorder, regardless of arguments, share the
// one node cached under this key.
const applyKey = "__apply"

// isReservedKey reports whether key belongs to a host introspection protocol
// and must read as absent on every mock, seeded or auto.
func isReservedKey(key string) bool {
	switch key {
	case keyString, keyGoString, keyFormat, keyMatch, keyFailureMessage:
		return true
	default:
		return false
	}
}

// controlSurface resolves key against the recorder's own control surface:
// the implementation setters, the call-history accessors, and the name
// accessor. These delegate directly to the recorder and are never cached.
func controlSurface(rec *Recorder, key string) (any, bool) {
	switch key {
	case "Name":
		return rec.Name, true
	case "Calls":
		return rec.Calls, true
	case "CallCount":
		return rec.CallCount, true
	case "HasImpl":
		return rec.HasImpl, true
	case "SetImpl":
		return rec.SetImpl, true
	case "SetReturn":
		return rec.SetReturn, true
	case "Reset":
		return rec.Reset, true
	default:
		return nil, false
	}
}
