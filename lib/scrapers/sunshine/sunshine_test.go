package sunshine

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sunburden/lib/htmltable"
	"sunburden/lib/testutil"
	"testing"

	"github.com/stretchr/testify/require"
)

// cityRow renders one city row in the shape of the source tables:
// country, city, 12 monthly columns, then the yearly total at column 14.
func cityRow(country, city string, year float64) string {
	var b strings.Builder
	b.WriteString("<tr>")
	fmt.Fprintf(&b, "<td>%s</td><td>%s</td>", country, city)
	for i := 0; i < 12; i++ {
		b.WriteString("<td>0</td>")
	}
	fmt.Fprintf(&b, "<td>%.1f</td>", year)
	b.WriteString("</tr>")
	return b.String()
}

func sunPage(cityRows ...string) string {
	return fmt.Sprintf(`
<table><tr><td>lead-in</td></tr></table>
<table class="wikitable"><tr><td>still a lead-in</td></tr></table>
<table class="wikitable"><tr><td>another lead-in</td></tr></table>
<table class="wikitable">
	<tr><th>Country</th><th>City</th></tr>
	%s
</table>`, strings.Join(cityRows, "\n"))
}

func serve(t *testing.T, body string) *httptest.Server {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, "<html><body>%s</body></html>", body)
	}))
	t.Cleanup(server.Close)
	return server
}

func TestFetchSunHours(t *testing.T) {
	cleanup := testutil.Setup(t, "sunshine")
	defer cleanup()

	server := serve(t, sunPage(
		cityRow("Spain", "Madrid", 3000),
		cityRow("Spain", "Sevilla", 3200),
		cityRow("Spain", "Barcelona", 3400),
		cityRow("Kenya", "Nairobi", 2600),
	))

	// the fixture serves a single city table after two wikitable lead-ins,
	// matching the default table selection
	client := NewClient(DefaultOptions())

	hours, err := client.FetchSunHours(context.Background(), server.URL)
	require.NoError(t, err)
	require.Equal(t, map[string][]float64{
		"Spain": {3000, 3200, 3400},
		"Kenya": {2600},
	}, hours)
}

func TestFetchSunHoursShortRow(t *testing.T) {
	cleanup := testutil.Setup(t, "sunshine")
	defer cleanup()

	server := serve(t, sunPage(`<tr><td>Spain</td><td>Madrid</td></tr>`))

	client := NewClient(DefaultOptions())

	_, err := client.FetchSunHours(context.Background(), server.URL)
	require.ErrorIs(t, err, htmltable.ErrCellMissing)
}
