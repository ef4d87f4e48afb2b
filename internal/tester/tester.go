package tester

import (
	"errors"
	"reflect"
	"testing"
)

// Eq asserts got == want, using reflect.DeepEqual so slices and structs work.
func Eq[T any](t *testing.T, got, want T, msgAndArgs ...any) {
	t.Helper()
	if !reflect.DeepEqual(got, want) {
		if len(msgAndArgs) > 0 {
			t.Fatalf("%v: got=%v want=%v", msgAndArgs[0], got, want)
		}
		t.Fatalf("got=%v want=%v", got, want)
	}
}

// True asserts that cond is true.
func True(t *testing.T, cond bool, msgAndArgs ...any) {
	t.Helper()
	if !cond {
		if len(msgAndArgs) > 0 {
			t.Fatalf("%v", msgAndArgs[0])
		}
		t.Fatalf("expected condition to be true")
	}
}

// False asserts that cond is false.
func False(t *testing.T, cond bool, msgAndArgs ...any) {
	t.Helper()
	if cond {
		if len(msgAndArgs) > 0 {
			t.Fatalf("%v", msgAndArgs[0])
		}
		t.Fatalf("expected condition to be false")
	}
}

// NoErr asserts that err is nil.
func NoErr(t *testing.T, err error, msgAndArgs ...any) {
	t.Helper()
	if err != nil {
		if len(msgAndArgs) > 0 {
			t.Fatalf("%v: %v", msgAndArgs[0], err)
		}
		t.Fatalf("unexpected error: %v", err)
	}
}

// Err asserts that err is non-nil and, when target is given, matches it
// per errors.Is.
func Err(t *testing.T, err error, target ...error) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected an error, got nil")
	}
	if len(target) > 0 && !errors.Is(err, target[0]) {
		t.Fatalf("error %v does not match %v", err, target[0])
	}
}

// Len asserts the length of a slice.
func Len[T any](t *testing.T, got []T, want int, msgAndArgs ...any) {
	t.Helper()
	if len(got) != want {
		if len(msgAndArgs) > 0 {
			t.Fatalf("%v: len=%d want=%d", msgAndArgs[0], len(got), want)
		}
		t.Fatalf("len=%d want=%d (%v)", len(got), want, got)
	}
}
