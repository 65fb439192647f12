package core

import (
	"reflect"
)

// Bind fills the exported func fields of the struct pointed to by target with
// trampolines that route through node's members, so statically typed call
// sites can drive the mock. Each field name is the member key: calling the
// typed function records on the same recorder node.Get returns for that key,
// and stubbed returns flow back out through the typed signature.
//
// Results the mock produces that don't fit the typed signature (including
// the auto-materialized node from an unstubbed lenient call) come back as
// the type's zero value.
func Bind(node *Node, target any) {
	ptr := reflect.ValueOf(target)
	if ptr.Kind() != reflect.Pointer || ptr.Elem().Kind() != reflect.Struct {
		node.fail("Bind target must be a pointer to a struct of func fields, got %T", target)

		return
	}

	structVal := ptr.Elem()
	structType := structVal.Type()

	for i := range structType.NumField() {
		field := structType.Field(i)
		if !field.IsExported() || field.Type.Kind() != reflect.Func {
			continue
		}

		name := field.Name
		funcType := field.Type

		trampoline := func(in []reflect.Value) []reflect.Value {
			results := node.Call(name, unreflectValues(in)...)

			return conformResults(funcType, results)
		}

		// Depending on MakeFunc to produce the field's exact type, as documented.
		structVal.Field(i).Set(reflect.MakeFunc(funcType, trampoline))
	}
}

// conformResults converts the mock's dynamic results to the typed signature,
// filling zero values where nothing assignable was produced.
func conformResults(funcType reflect.Type, results []any) []reflect.Value {
	out := make([]reflect.Value, funcType.NumOut())

	for i := range funcType.NumOut() {
		outType := funcType.Out(i)

		if i < len(results) && results[i] != nil {
			val := reflect.ValueOf(results[i])
			if val.Type().AssignableTo(outType) {
				out[i] = val

				continue
			}
		}

		out[i] = reflect.Zero(outType)
	}

	return out
}
