package dalyrate

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sunburden/lib/htmltable"
	"sunburden/lib/testutil"
	"testing"

	"github.com/stretchr/testify/require"
)

func servePage(t *testing.T, body string) *httptest.Server {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, "<html><body>%s</body></html>", body)
	}))
	t.Cleanup(server.Close)
	return server
}

const ratePage = `
<table class="wikitable">
	<tr><th>Rank</th><th>Country</th><th>DALY rate</th></tr>
	<tr><td>1</td><td>Norway</td><td>12,456.7</td></tr>
	<tr><td>2</td><td> Chad </td><td>800</td></tr>
	<tr><td>3</td><td>Chad</td><td>850</td></tr>
</table>`

func TestFetchRates(t *testing.T) {
	cleanup := testutil.Setup(t, "dalyrate")
	defer cleanup()

	server := servePage(t, ratePage)
	client := NewClient(DefaultOptions())

	rates, err := client.FetchRates(context.Background(), server.URL)
	require.NoError(t, err)

	// keys are trimmed, duplicate countries keep the last row
	require.Equal(t, map[string]float64{
		"Norway": 12456.7,
		"Chad":   850,
	}, rates)
}

func TestFetchRatesBadNumber(t *testing.T) {
	cleanup := testutil.Setup(t, "dalyrate")
	defer cleanup()

	server := servePage(t, `
<table class="wikitable">
	<tr><th>Rank</th><th>Country</th><th>DALY rate</th></tr>
	<tr><td>1</td><td>Norway</td><td>no data</td></tr>
</table>`)
	client := NewClient(DefaultOptions())

	_, err := client.FetchRates(context.Background(), server.URL)
	require.ErrorIs(t, err, htmltable.ErrNotNumeric)
}

func TestFetchRatesMissingTable(t *testing.T) {
	cleanup := testutil.Setup(t, "dalyrate")
	defer cleanup()

	server := servePage(t, `<p>the tables are gone</p>`)
	client := NewClient(DefaultOptions())

	_, err := client.FetchRates(context.Background(), server.URL)
	require.ErrorIs(t, err, htmltable.ErrTableNotFound)
}

func TestFetchRatesHttpError(t *testing.T) {
	cleanup := testutil.Setup(t, "dalyrate")
	defer cleanup()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	t.Cleanup(server.Close)
	client := NewClient(DefaultOptions())

	_, err := client.FetchRates(context.Background(), server.URL)
	require.Error(t, err)
}
