package testutil

import (
	"database/sql"
	"testing"

	"techrank/lib/sqliteutil"
	"techrank/lib/telemetry"
)

type ServiceParams struct {
	// if unspecified, it will skip running a schema
	DbSchema string
	// if unspecified, it will use `:memory:`
	DbPath string
}

type ServiceResult struct {
	DB *sql.DB
}

// SetupService initializes test logging and opens a sqlite database that is
// closed when the test ends.
func SetupService(t testing.TB, params ServiceParams) ServiceResult {
	telemetry.SetupForTesting(t)

	dbpath := sqliteutil.Memory
	if params.DbPath != "" {
		dbpath = params.DbPath
	}
	db, err := sqliteutil.OpenDB(dbpath)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		db.Close()
	})

	if params.DbSchema != "" {
		_, err = db.Exec(params.DbSchema)
		if err != nil {
			t.Fatal(err)
		}
	}

	return ServiceResult{DB: db}
}
