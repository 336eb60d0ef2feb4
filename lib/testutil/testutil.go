package testutil

import (
	"fmt"
	"math/rand"
	"sunburden/lib/telemetry"
	"testing"
)

// Setup initializes telemetry for a test, returning a cleanup function.
func Setup(t testing.TB, name string) func() {
	return telemetry.SetupForTesting(t, fmt.Sprintf("test:%s", name))
}

// RandomCountry generates a random lowercase name given the pseudo
// random source.
func RandomCountry(rndm *rand.Rand, length int) string {
	str := make([]rune, length)
	for i := 0; i < length; i++ {
		str[i] = 'a' + rune(rndm.Intn(26))
	}
	return string(str)
}

// RandomFloats generates n values uniformly distributed in [min, max).
func RandomFloats(rndm *rand.Rand, n int, min, max float64) []float64 {
	values := make([]float64, n)
	for i := 0; i < n; i++ {
		values[i] = min + rndm.Float64()*(max-min)
	}
	return values
}
