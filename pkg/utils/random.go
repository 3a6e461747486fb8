package utils

import (
	"math/rand"
	"time"
)

// NewRand создает детерминированный генератор. seed == 0 означает "случайный".
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// RandRange возвращает число из отрезка [min, max] включительно.
// Если max < min, возвращается min.
func RandRange(rng *rand.Rand, min, max int) int {
	if max <= min {
		return min
	}
	return rng.Intn(max-min+1) + min
}

// Chance - бросок процента: true с вероятностью percent/100.
func Chance(rng *rand.Rand, percent int) bool {
	if percent <= 0 {
		return false
	}
	if percent >= 100 {
		return true
	}
	return rng.Intn(100) < percent
}
