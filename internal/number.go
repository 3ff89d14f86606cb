package internal

import "strconv"

// R generic type
type R interface{}

// Value is what evaluating a program yields: a float64, or a
// formatted string produced by format.
type Value = R

// formatted is the display string produced by format. It can be printed
// and returned but never takes part in arithmetic.
type formatted string

func boolToNumber(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// maxFormatDecimals bounds the digits format may render after the point
const maxFormatDecimals = 100

func formatFixed(value float64, decimals int) formatted {
	if decimals < 0 {
		decimals = 0
	}
	return formatted(strconv.FormatFloat(value, 'f', decimals, 64))
}
