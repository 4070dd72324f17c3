package rrule_test

import (
	"fmt"

	"github.com/halvardcal/icalgo/rrule"
)

func ExampleParseRRule() {
	r, err := rrule.ParseRRule("FREQ=DAILY;INTERVAL=1;COUNT=10")
	if err != nil {
		panic(err)
	}
	fmt.Println(r.Frequency)
	fmt.Println(r.Interval)
	fmt.Println(*r.Count)
	// Output: DAILY
	// 1
	// 10
}
