package main

import (
	"errors"
	"strconv"
	"strings"
)

// atof converts s to a float64 with the leniency of C's atof: leading ASCII
// whitespace is skipped and the longest prefix that parses as a number
// supplies the value. Input without a usable prefix converts to 0, so the
// function never fails: "12abc" is 12, "-.5e1junk" is -5, "junk" is 0.
// Out-of-range magnitudes saturate to ±Inf and underflows to 0, the values
// strtod hands back in the same situations.
func atof(s string) float64 {
	s = strings.TrimLeft(s, " \t\n\v\f\r")
	for end := len(s); end > 0; end-- {
		v, err := strconv.ParseFloat(s[:end], 64)
		if err == nil || errors.Is(err, strconv.ErrRange) {
			return v
		}
	}

	return 0
}
