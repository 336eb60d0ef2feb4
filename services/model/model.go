// Package model fits the single-variable linear model relating
// normalized sun hours to normalized DALY rate.
package model

import (
	"errors"
	"math/rand"
	"sunburden/services/dataset"

	"gonum.org/v1/gonum/stat"
)

var ErrTooFewRecords = errors.New("not enough records to fit a model")

type SplitOptions struct {
	// fraction of records held out for scoring, defaults to 0.2
	TestFraction float64 `json:"test_fraction"`
	// seed for the shuffle split, fixed so runs are reproducible
	Seed int64 `json:"seed"`
}

type Fit struct {
	Intercept float64
	Slope     float64
	RSquared  float64
	TrainSize int
	TestSize  int
}

// FitLinear shuffle-splits the dataset, fits ordinary least squares of
// daly on sunhours over the training rows and reports R² over the
// held-out rows.
func FitLinear(ds dataset.NormalizedDataset, opts SplitOptions) (Fit, error) {
	n := ds.Len()
	if n < 4 {
		return Fit{}, ErrTooFewRecords
	}

	fraction := opts.TestFraction
	if fraction <= 0 || fraction >= 1 {
		fraction = 0.2
	}
	// R² over a single held-out row is undefined, keep at least two
	testSize := int(float64(n) * fraction)
	if testSize < 2 {
		testSize = 2
	}
	if testSize > n-2 {
		testSize = n - 2
	}

	perm := rand.New(rand.NewSource(opts.Seed)).Perm(n)

	trainX := make([]float64, 0, n-testSize)
	trainY := make([]float64, 0, n-testSize)
	testX := make([]float64, 0, testSize)
	testY := make([]float64, 0, testSize)
	for i, row := range perm {
		if i < testSize {
			testX = append(testX, ds.SunHours[row])
			testY = append(testY, ds.Daly[row])
			continue
		}
		trainX = append(trainX, ds.SunHours[row])
		trainY = append(trainY, ds.Daly[row])
	}

	alpha, beta := stat.LinearRegression(trainX, trainY, nil, false)
	r2 := stat.RSquared(testX, testY, nil, alpha, beta)

	return Fit{
		Intercept: alpha,
		Slope:     beta,
		RSquared:  r2,
		TrainSize: len(trainX),
		TestSize:  len(testX),
	}, nil
}
