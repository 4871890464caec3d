package utils

import (
	"errors"
	"fmt"
	"reflect"
)

var ErrNilParam = errors.New("safe cast: got nil value")

// SafeCast narrows an any to T, erroring instead of panicking on mismatch.
func SafeCast[T any](v any) (T, error) {
	var zero T

	if v == nil {
		return zero, ErrNilParam
	}

	cast, ok := v.(T)
	if !ok {
		return cast, fmt.Errorf("safe cast: have %s, want %s", reflect.TypeOf(v), reflect.TypeOf(zero))
	}

	return cast, nil
}
