package utils

import (
	"reflect"
	"testing"
)

func TestSafeCast(t *testing.T) {
	cast, err := SafeCast[int](12334)
	if err != nil {
		t.Fatal(err)
	}
	t.Log(cast, reflect.TypeOf(cast).String())

	_, err = SafeCast[string](nil)
	if err == nil {
		t.Fatal("want error for nil param")
	}

	_, err = SafeCast[string](42)
	if err == nil {
		t.Fatal("want error for wrong type")
	}
}
