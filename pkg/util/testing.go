package util

import (
	"errors"
	"reflect"
	"testing"
)

func AssertExpected(t testing.TB, expected, got interface{}) bool {
	t.Helper()
	if !reflect.DeepEqual(expected, got) {
		t.Errorf("error, expected: %v, got: %v\n", expected, got)
		return false
	}
	return true
}

func AssertLen(t testing.TB, expected int, got interface{}) bool {
	t.Helper()
	return AssertExpected(t, expected, reflect.ValueOf(got).Len())
}

func AssertTrue(t testing.TB, got bool) bool {
	t.Helper()
	return AssertExpected(t, true, got)
}

func AssertFalse(t testing.TB, got bool) bool {
	t.Helper()
	return AssertExpected(t, false, got)
}

func AssertNoError(t testing.TB, err error) bool {
	t.Helper()
	if err != nil {
		t.Errorf("error, expected no error, got: %v\n", err)
		return false
	}
	return true
}

func AssertErrorIs(t testing.TB, err, target error) bool {
	t.Helper()
	if !errors.Is(err, target) {
		t.Errorf("error, expected: %v, got: %v\n", target, err)
		return false
	}
	return true
}
