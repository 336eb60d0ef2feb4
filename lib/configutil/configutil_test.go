package configutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

type schemaConfig struct {
	CountryColumn int    `json:"country_column"`
	RateColumn    int    `json:"rate_column"`
	Url           string `json:"url"`
}

func writeConfig(t *testing.T, path, contents string) {
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
}

func TestReadConfigOrMissingFile(t *testing.T) {
	fallback := schemaConfig{CountryColumn: 1, RateColumn: 2}

	config, err := ReadConfigOr(filepath.Join(t.TempDir(), "config.json5"), fallback)
	require.NoError(t, err)
	require.Equal(t, fallback, config)
}

func TestReadConfigOrZeroValueOverridesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json5")
	writeConfig(t, path, `{country_column: 0}`)

	config, err := ReadConfigOr(path, schemaConfig{CountryColumn: 1, RateColumn: 2})
	require.NoError(t, err)

	// fields the file names win even when set to zero, the rest keep
	// their fallback values
	require.Equal(t, schemaConfig{CountryColumn: 0, RateColumn: 2}, config)
}

func TestReadConfigOrLocalOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json5")
	writeConfig(t, path, `{url: "http://default", rate_column: 3}`)
	writeConfig(t, filepath.Join(dir, "config.local.json5"), `{url: "http://local"}`)

	config, err := ReadConfigOr(path, schemaConfig{CountryColumn: 1})
	require.NoError(t, err)
	require.Equal(t, schemaConfig{
		CountryColumn: 1,
		RateColumn:    3,
		Url:           "http://local",
	}, config)
}

func TestReadConfigMissing(t *testing.T) {
	_, err := ReadConfig[schemaConfig](filepath.Join(t.TempDir(), "config.json5"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
