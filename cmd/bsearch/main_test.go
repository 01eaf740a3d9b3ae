package main

import (
	"testing"

	"github.com/scottcagno/searchbench/pkg/util"
)

func TestParseFloats(t *testing.T) {
	floats, err := parseFloats(nil)
	util.AssertNoError(t, err)
	util.AssertExpected(t, defaultFloats, floats)

	// the defaults must not be shared with the caller
	floats[0] = 100
	util.AssertExpected(t, 1.1, defaultFloats[0])

	floats, err = parseFloats([]string{"3.5", "-1", "2e1"})
	util.AssertNoError(t, err)
	util.AssertExpected(t, []float64{3.5, -1, 20}, floats)

	_, err = parseFloats([]string{"1.0", "one"})
	util.AssertTrue(t, err != nil)
}
