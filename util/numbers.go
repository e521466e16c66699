package util

import (
	"fmt"
	"math"
)

const epsilon = 0.000001

// RoundDecimal rounds to the given number of decimal digits. All
// monetary amounts in the engine are kept at 2 digits.
func RoundDecimal(num float64, digits int) float64 {
	switch digits {
	case 0:
		return math.Round(num)
	case 2:
		return math.Round(num*100) / 100
	default:
		panic(fmt.Sprintf("RoundDecimal digits not supported: %d", digits))
	}
}

// ToMoney rounds a chip amount to 2 decimal places.
func ToMoney(amount float64) float64 {
	return RoundDecimal(amount, 2)
}

// SplitCents splits total into numSplits shares rounded to whole cents.
// Earlier entries in result receive the remainder cents, so the shares
// always sum back to total.
func SplitCents(total float64, numSplits int, result []float64) {
	if numSplits <= 0 || len(result) < numSplits {
		panic(fmt.Sprintf("SplitCents invalid numSplits: %d", numSplits))
	}
	totalCents := int64(math.Round(total * 100))
	base := totalCents / int64(numSplits)
	remainder := totalCents % int64(numSplits)
	for i := 0; i < numSplits; i++ {
		cents := base
		if int64(i) < remainder {
			cents++
		}
		result[i] = float64(cents) / 100
	}
}

func NearlyEqual(a float64, b float64) bool {
	if a == b {
		return true
	}

	diff := math.Abs(a - b)
	if diff < epsilon {
		return true
	}

	return false
}

func Greater(a float64, b float64) bool {
	return a > b && !NearlyEqual(a, b)
}

func GreaterOrNearlyEqual(a float64, b float64) bool {
	if a > b || a == b {
		return true
	}

	return NearlyEqual(a, b)
}
