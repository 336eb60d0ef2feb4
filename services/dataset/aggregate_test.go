package dataset

import (
	"math/rand"
	"sunburden/lib/testutil"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAggregateMean(t *testing.T) {
	means := Aggregate(map[string][]float64{
		"Spain": {3000, 3200, 3400},
		"Kenya": {2600},
	})

	require.Equal(t, map[string]float64{
		"Spain": 3200,
		"Kenya": 2600,
	}, means)
}

func TestAggregatePreservesKeySet(t *testing.T) {
	rndm := rand.New(rand.NewSource(7))

	observations := make(map[string][]float64)
	for i := 0; i < 50; i++ {
		country := testutil.RandomCountry(rndm, 8)
		observations[country] = testutil.RandomFloats(rndm, 1+rndm.Intn(10), 1000, 4000)
	}

	means := Aggregate(observations)
	require.Len(t, means, len(observations))
	for country, values := range observations {
		mean, ok := means[country]
		require.True(t, ok, country)

		var sum float64
		for _, v := range values {
			sum += v
		}
		require.InDelta(t, sum/float64(len(values)), mean, 1e-9, country)
	}
}
