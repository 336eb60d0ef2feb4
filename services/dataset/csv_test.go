package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestCsvRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "joined.csv")

	ds := JoinedDataset{
		{Country: "Chad", Daly: 800, SunHours: 2900.25},
		{Country: "Norway", Daly: 512.125, SunHours: 1700},
	}

	require.NoError(t, WriteFile(path, ds))

	reloaded, err := ReadFile(path)
	require.NoError(t, err)
	require.Empty(t, cmp.Diff(ds, reloaded))
}

func TestCsvHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "joined.csv")
	require.NoError(t, WriteFile(path, nil))

	contents, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "country,daly,sunhours\n", string(contents))
}

func TestCsvWriteIsAtomic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "joined.csv")

	ds := JoinedDataset{
		{Country: "Chad", Daly: 800, SunHours: 2900},
	}
	require.NoError(t, WriteFile(path, ds))

	// the temp file is renamed into place, nothing else is left behind
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "joined.csv", entries[0].Name())
}

func TestCsvWriteFailureLeavesNoFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "missing", "joined.csv")

	err := WriteFile(path, nil)
	require.Error(t, err)

	_, err = os.Stat(path)
	require.True(t, os.IsNotExist(err))
}

func TestCsvRejectsForeignFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "other.csv")
	require.NoError(t, os.WriteFile(path, []byte("a,b,c\nx,1,2\n"), 0o644))

	_, err := ReadFile(path)
	require.Error(t, err)
}

func TestCsvRejectsBadNumbers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "joined.csv")
	require.NoError(t, os.WriteFile(
		path,
		[]byte("country,daly,sunhours\nChad,eight hundred,2900\n"),
		0o644,
	))

	_, err := ReadFile(path)
	require.Error(t, err)
}
