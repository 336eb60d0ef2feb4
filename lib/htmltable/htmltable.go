package htmltable

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sunburden/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
)

var (
	ErrTableNotFound = errors.New("table not found")
	ErrCellMissing   = errors.New("row cell missing")
	ErrNotNumeric    = errors.New("cell text is not numeric")
)

// Selection describes where the rows of interest live inside a page.
// Table indexes and header skip counts are tied to the layout of a
// specific page snapshot, so they come from configuration rather than
// being baked into the extractors.
type Selection struct {
	// css selector used to locate candidate tables, defaults to "table"
	Selector string `json:"selector"`
	// index of the first table to read
	Index int `json:"index"`
	// read every table from Index onward instead of just the one at Index
	Rest bool `json:"rest"`
	// number of leading rows skipped in each table
	HeaderRows int `json:"header_rows"`
}

// Row is the ordered cell texts of one table row.
type Row []string

func (r Row) Cell(i int) (string, error) {
	if i < 0 || i >= len(r) {
		return "", fmt.Errorf("%w: index %d of %d cells", ErrCellMissing, i, len(r))
	}
	return r[i], nil
}

// Rows extracts the cell texts of every selected table body. Rows without
// any data (td) cells are skipped, the source tables use such rows as
// section separators.
func Rows(doc *goquery.Document, sel Selection) ([]Row, error) {
	selector := sel.Selector
	if selector == "" {
		selector = "table"
	}

	tables := doc.Find(selector)
	if tables.Length() <= sel.Index {
		return nil, fmt.Errorf(
			"%w: want index %d, found %d tables matching %q",
			ErrTableNotFound, sel.Index, tables.Length(), selector,
		)
	}

	end := sel.Index + 1
	if sel.Rest {
		end = tables.Length()
	}

	var rows []Row
	for i := sel.Index; i < end; i++ {
		tableRows(tables.Eq(i), sel.HeaderRows, &rows)
	}
	return rows, nil
}

func tableRows(table *goquery.Selection, headerRows int, out *[]Row) {
	table.Find("tr").Each(func(i int, tr *goquery.Selection) {
		if i < headerRows {
			return
		}
		if tr.Find("td").Length() == 0 {
			return
		}

		var row Row
		tr.Find("th, td").Each(func(_ int, cell *goquery.Selection) {
			for _, n := range cell.Nodes {
				row = append(row, htmlutil.CleanText(htmlutil.GetText(n)))
			}
		})
		*out = append(*out, row)
	})
}

var thousandsSeparators = strings.NewReplacer(",", "", " ", "")

// ParseNumber parses a scraped cell text as a float, tolerating
// thousands separators.
func ParseNumber(text string) (float64, error) {
	cleaned := thousandsSeparators.Replace(strings.TrimSpace(text))
	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNotNumeric, text)
	}
	return value, nil
}
