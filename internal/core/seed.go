package core

import (
	"fmt"
	"reflect"
)

// seedView abstracts the backing value of a seeded node. Key existence is
// structural: a map key that is present with a nil value, or a struct field
// whose value is the zero value, still counts as present.
type seedView struct {
	isMap    bool
	asMap    map[string]any
	asStruct reflect.Value // the struct value, addressable when seeded via pointer
	original reflect.Value // the seed as given, used for method lookup
}

// newSeedView wraps a user-supplied seed. Maps keyed by string and structs
// (by value or pointer) are supported; anything else cannot back a mock and
// fails fast.
func newSeedView(seed any) *seedView {
	if asMap, ok := seed.(map[string]any); ok {
		return &seedView{isMap: true, asMap: asMap}
	}

	original := reflect.ValueOf(seed)

	structVal := original
	if structVal.Kind() == reflect.Pointer {
		structVal = structVal.Elem()
	}

	if structVal.Kind() != reflect.Struct {
		panic(fmt.Sprintf("deepmock: cannot seed a mock with %T; use a map[string]any, a struct, or a struct pointer", seed))
	}

	return &seedView{asStruct: structVal, original: original}
}

// get returns the value at key. Only meaningful when has(key) is true.
func (s *seedView) get(key string) any {
	if s.isMap {
		return s.asMap[key]
	}

	if field := s.asStruct.FieldByName(key); field.IsValid() {
		return field.Interface()
	}

	if method := s.original.MethodByName(key); method.IsValid() {
		return method.Interface()
	}

	return nil
}

// has reports whether key structurally exists on the backing value.
func (s *seedView) has(key string) bool {
	if s.isMap {
		_, ok := s.asMap[key]

		return ok
	}

	if field, ok := s.asStruct.Type().FieldByName(key); ok {
		return field.IsExported()
	}

	return s.original.MethodByName(key).IsValid()
}

// set writes value through to the backing value where the backing value can
// hold it. The node's cache is authoritative either way; an unwritable field
// is not an error.
func (s *seedView) set(key string, value any) {
	if s.isMap {
		if s.asMap == nil {
			return
		}

		s.asMap[key] = value

		return
	}

	field := s.asStruct.FieldByName(key)
	if !field.IsValid() || !field.CanSet() {
		return
	}

	if value == nil {
		field.Set(reflect.Zero(field.Type()))

		return
	}

	val := reflect.ValueOf(value)
	if val.Type().AssignableTo(field.Type()) {
		field.Set(val)
	}
}
