package dataset

import "gonum.org/v1/gonum/stat"

// Aggregate reduces each country's observations to their arithmetic
// mean. The output key set is exactly the input key set, a country with
// a single observation keeps that observation unchanged.
func Aggregate(observations map[string][]float64) map[string]float64 {
	means := make(map[string]float64, len(observations))
	for country, values := range observations {
		means[country] = stat.Mean(values, nil)
	}
	return means
}
