package util

import (
	"errors"
	"fmt"
	"reflect"
)

var ErrNilPointer = errors.New("nil pointer encountered")

// UnwrapValue follows pointers down to the underlying value. A nil pointer along the way
// yields ErrNilPointer.
func UnwrapValue(v reflect.Value) (reflect.Value, error) {
	for v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return reflect.Value{}, ErrNilPointer
		}
		v = v.Elem()
	}
	return v, nil
}

// UnwrapType recursively unwraps pointer types and returns the underlying type
func UnwrapType(t reflect.Type) reflect.Type {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t
}

// StructValue returns the settable struct that target points to
func StructValue(target any) (reflect.Value, error) {
	v := reflect.ValueOf(target)
	if v.Kind() != reflect.Ptr {
		return reflect.Value{}, fmt.Errorf("%w: got %T", ErrPointerExpected, target)
	}
	v, err := UnwrapValue(v)
	if err != nil {
		return reflect.Value{}, err
	}
	if v.Kind() != reflect.Struct {
		return reflect.Value{}, fmt.Errorf("%w: %T does not point to a struct", ErrUnsupportedTypeConversion, target)
	}

	return v, nil
}
