package dataset

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
)

var ErrDegenerateColumn = errors.New("column cannot be min-max normalized")

// Normalize rescales both numeric columns into [0, 1] independently.
// Min and max are computed over the whole column before any value is
// rescaled. A column whose values are all identical (or an empty
// dataset) has no defined scale and is a hard error.
func Normalize(ds JoinedDataset) (NormalizedDataset, error) {
	daly := make([]float64, len(ds))
	sunHours := make([]float64, len(ds))
	for i, record := range ds {
		daly[i] = record.Daly
		sunHours[i] = record.SunHours
	}

	var err error
	daly, err = minMaxScale("daly", daly)
	if err != nil {
		return NormalizedDataset{}, err
	}
	sunHours, err = minMaxScale("sunhours", sunHours)
	if err != nil {
		return NormalizedDataset{}, err
	}

	return NormalizedDataset{
		Daly:     daly,
		SunHours: sunHours,
	}, nil
}

func minMaxScale(name string, values []float64) ([]float64, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("%w: %s is empty", ErrDegenerateColumn, name)
	}

	min := floats.Min(values)
	max := floats.Max(values)
	if min == max {
		return nil, fmt.Errorf(
			"%w: %s has a single distinct value %v",
			ErrDegenerateColumn, name, min,
		)
	}

	scaled := make([]float64, len(values))
	for i, v := range values {
		scaled[i] = (v - min) / (max - min)
	}
	return scaled, nil
}
