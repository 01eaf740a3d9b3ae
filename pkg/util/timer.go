package util

import (
	"fmt"
	"time"
)

/*
	usage:

	func foo() {
		t1 := time.Now()
		// code to measure
		fmt.Print(FormatTime("foo", t1, time.Now()))
	}

*/

// Seconds renders d the way every report line does, six decimals.
func Seconds(d time.Duration) string {
	return fmt.Sprintf("%0.6f s", d.Seconds())
}

func FormatTime(msg string, t1, t2 time.Time) string {
	return fmt.Sprintf("%s: %s\n", msg, Seconds(t2.Sub(t1)))
}
