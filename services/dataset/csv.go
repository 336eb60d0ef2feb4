package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

var csvHeader = []string{"country", "daly", "sunhours"}

// WriteFile persists the joined dataset as csv with a fixed header.
// Numeric columns are plain decimals, no separators. The data goes
// through a temp file renamed into place on success, a write that
// fails midway never leaves a truncated file at the cache path.
func WriteFile(path string, ds JoinedDataset) error {
	f, err := os.CreateTemp(filepath.Dir(path), ".joined-*.csv")
	if err != nil {
		return err
	}
	tmp := f.Name()

	err = writeRecords(f, ds)
	if err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	err = f.Close()
	if err != nil {
		os.Remove(tmp)
		return err
	}

	err = os.Rename(tmp, path)
	if err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}

func writeRecords(f *os.File, ds JoinedDataset) error {
	w := csv.NewWriter(f)
	err := w.Write(csvHeader)
	if err != nil {
		return err
	}
	for _, record := range ds {
		err = w.Write([]string{
			record.Country,
			strconv.FormatFloat(record.Daly, 'f', -1, 64),
			strconv.FormatFloat(record.SunHours, 'f', -1, 64),
		})
		if err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

// ReadFile reloads a csv written by WriteFile into the same logical
// shape. Values are equal to parsing precision, not bit-exact.
func ReadFile(path string) (JoinedDataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = len(csvHeader)

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: missing header row", path)
	}
	for i, name := range csvHeader {
		if rows[0][i] != name {
			return nil, fmt.Errorf(
				"%s: unexpected header %v, want %v",
				path, rows[0], csvHeader,
			)
		}
	}

	ds := make(JoinedDataset, 0, len(rows)-1)
	for _, row := range rows[1:] {
		daly, err := strconv.ParseFloat(row[1], 64)
		if err != nil {
			return nil, fmt.Errorf("%s: country %q: %w", path, row[0], err)
		}
		sunHours, err := strconv.ParseFloat(row[2], 64)
		if err != nil {
			return nil, fmt.Errorf("%s: country %q: %w", path, row[0], err)
		}
		ds = append(ds, JoinedRecord{
			Country:  row[0],
			Daly:     daly,
			SunHours: sunHours,
		})
	}
	return ds, nil
}
