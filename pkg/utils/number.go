package utils

import (
	"math"
	"strconv"
)

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// FormatNumber imprime o número na menor forma possível (24, 7.5, 0.88)
func FormatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
