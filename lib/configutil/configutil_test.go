package configutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
	Inner struct {
		Path string `json:"path"`
	} `json:"inner"`
}

func writeFile(t testing.TB, path, contents string) {
	err := os.WriteFile(path, []byte(contents), 0600)
	if err != nil {
		t.Fatal(err)
	}
}

func TestLocalPath(t *testing.T) {
	require.Equal(t, filepath.Join("a", "config.local.json5"), LocalPath(filepath.Join("a", "config.json5")))
	require.Equal(t, filepath.Join("a", "config.local"), LocalPath(filepath.Join("a", "config")))
}

func TestReadConfigMergesLocal(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "techrank.json5")
	writeFile(t, name, `{
		// comments are allowed
		name: "base",
		count: 1,
		inner: { path: "base.db" },
	}`)
	writeFile(t, filepath.Join(dir, "techrank.local.json5"), `{ count: 5 }`)

	cfg, err := ReadConfig[testConfig](name)
	require.NoError(t, err)
	require.Equal(t, "base", cfg.Name)
	require.Equal(t, 5, cfg.Count)
	require.Equal(t, "base.db", cfg.Inner.Path)
}

func TestReadConfigMissing(t *testing.T) {
	_, err := ReadConfig[testConfig](filepath.Join(t.TempDir(), "nothing.json5"))
	require.True(t, os.IsNotExist(err))
}

func TestReadConfigWithDefaults(t *testing.T) {
	defaults := testConfig{Name: "default", Count: 3}
	defaults.Inner.Path = "default.db"

	cfg, err := ReadConfigWithDefaults(filepath.Join(t.TempDir(), "nothing.json5"), defaults)
	require.NoError(t, err)
	require.Equal(t, defaults, cfg)

	dir := t.TempDir()
	name := filepath.Join(dir, "techrank.json5")
	writeFile(t, name, `{ name: "custom" }`)

	cfg, err = ReadConfigWithDefaults(name, defaults)
	require.NoError(t, err)
	require.Equal(t, "custom", cfg.Name)
	require.Equal(t, 3, cfg.Count)
	require.Equal(t, "default.db", cfg.Inner.Path)
}

func TestReadConfigInvalid(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "broken.json5")
	writeFile(t, name, `{ name: `)

	_, err := ReadConfig[testConfig](name)
	require.Error(t, err)
}
