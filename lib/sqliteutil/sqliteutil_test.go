package sqliteutil

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOpenDBCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "out.db")

	db, err := Config{File: path}.OpenDB()
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(`create table t (v integer)`)
	require.NoError(t, err)
	_, err = db.Exec(`insert into t (v) values (1), (2)`)
	require.NoError(t, err)

	var count int
	err = db.QueryRow(`select count(*) from t`).Scan(&count)
	require.NoError(t, err)
	require.Equal(t, 2, count)
	require.FileExists(t, path)
}

func TestOpenDBRequiresPath(t *testing.T) {
	_, err := Config{}.OpenDB()
	require.Error(t, err)
}

func TestDescribe(t *testing.T) {
	require.Equal(t, "out.db", Config{File: "out.db"}.Describe())
	require.Equal(
		t,
		"libsql://example.turso.io",
		Config{Url: "libsql://example.turso.io?authToken=secret"}.Describe(),
	)
}
