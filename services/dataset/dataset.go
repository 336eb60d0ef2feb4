// Package dataset holds the keyed-table operations of the pipeline:
// aggregation, joining, min-max normalization and the on-disk csv form
// of the joined data.
package dataset

// JoinedRecord is one country present in both source datasets.
type JoinedRecord struct {
	Country  string
	Daly     float64
	SunHours float64
}

type JoinedDataset []JoinedRecord

// NormalizedDataset is the joined data with the country column dropped
// and both numeric columns rescaled into [0, 1].
type NormalizedDataset struct {
	Daly     []float64
	SunHours []float64
}

func (n NormalizedDataset) Len() int {
	return len(n.Daly)
}
