package core

import (
	"reflect"
	"sync"
)

// CallRecord is a single recorded invocation of a Recorder.
type CallRecord struct {
	Args     []any
	Returned []any
	Panicked any
}

// Recorder is the call-recording collaborator behind every callable member of
// a mock. It owns an ordered history of invocations and a replaceable
// implementation. The mock node decides at call time what an unstubbed
// invocation produces; the Recorder only records and runs.
type Recorder struct {
	name string

	mu      sync.Mutex
	impl    func(args []any) []any
	hasImpl bool
	calls   []CallRecord
}

// NewRecorder creates a recorder with the given name tag. A nil impl leaves
// the recorder unstubbed.
func NewRecorder(name string, impl func(args []any) []any) *Recorder {
	rec := &Recorder{name: name}
	if impl != nil {
		rec.impl = impl
		rec.hasImpl = true
	}

	return rec
}

// CallCount returns the number of recorded invocations.
func (r *Recorder) CallCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.calls)
}

// Calls returns a copy of the recorded invocation history, in call order.
func (r *Recorder) Calls() []CallRecord {
	r.mu.Lock()
	defer r.mu.Unlock()

	calls := make([]CallRecord, len(r.calls))
	copy(calls, r.calls)

	return calls
}

// HasImpl reports whether an explicit implementation has been set.
func (r *Recorder) HasImpl() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.hasImpl
}

// Invoke records the invocation and runs the implementation if one is set.
// Without an implementation it records the call and returns nil. A panic from
// the implementation is recorded and re-raised.
func (r *Recorder) Invoke(args ...any) []any {
	r.mu.Lock()
	impl := r.impl
	hasImpl := r.hasImpl
	index := len(r.calls)
	r.calls = append(r.calls, CallRecord{Args: args})
	r.mu.Unlock()

	if !hasImpl {
		return nil
	}

	defer func() {
		if panicVal := recover(); panicVal != nil {
			r.recordOutcome(index, nil, panicVal)
			panic(panicVal)
		}
	}()

	returned := impl(args)
	r.recordOutcome(index, returned, nil)

	return returned
}

// Name returns the recorder's name tag.
func (r *Recorder) Name() string {
	return r.name
}

// Reset clears the recorded history. The implementation is left in place.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.calls = nil
	r.mu.Unlock()
}

// SetImpl replaces the implementation. Subsequent invocations record and then
// run the new implementation. A nil impl returns the recorder to its
// unstubbed state.
func (r *Recorder) SetImpl(impl func(args []any) []any) {
	r.mu.Lock()
	r.impl = impl
	r.hasImpl = impl != nil
	r.mu.Unlock()
}

// SetReturn stubs fixed return values for every subsequent invocation.
func (r *Recorder) SetReturn(values ...any) {
	r.SetImpl(func([]any) []any {
		return values
	})
}

func (r *Recorder) recordOutcome(index int, returned []any, panicked any) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// A Reset during an in-flight invocation drops the outcome with the call.
	if index >= len(r.calls) {
		return
	}

	r.calls[index].Returned = returned
	r.calls[index].Panicked = panicked
}

// implFromFunc adapts an arbitrary Go function into the canonical recorder
// implementation shape, so seeded functions both record and run their
// original behavior when called through a mock.
func implFromFunc(function any) func([]any) []any {
	funcValue := reflect.ValueOf(function)

	return func(args []any) []any {
		return unreflectValues(funcValue.Call(reflectValuesOf(args)))
	}
}

// reflectValuesOf returns reflected values for all of the values.
func reflectValuesOf(args []any) []reflect.Value {
	rArgs := make([]reflect.Value, len(args))
	for i := range args {
		rArgs[i] = reflect.ValueOf(args[i])
	}

	return rArgs
}

// unreflectValues returns the actual values of the reflected values.
func unreflectValues(rVals []reflect.Value) []any {
	if len(rVals) == 0 {
		return nil
	}

	vals := make([]any, len(rVals))
	for i := range rVals {
		vals[i] = rVals[i].Interface()
	}

	return vals
}
