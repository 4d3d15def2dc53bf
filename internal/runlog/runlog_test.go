package runlog

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLogAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "code_log.txt")
	clock := time.Date(2024, 3, 9, 7, 5, 2, 0, time.UTC)

	logger := New(path)
	logger.now = func() time.Time { return clock }

	require.NoError(t, logger.Log(context.Background(), "Preliminaries complete. Initiating ETL process"))
	clock = clock.Add(time.Minute)
	require.NoError(t, logger.Log(context.Background(), "Process Complete"))

	contents, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(
		t,
		"2024-03-09 07:05:02 - Preliminaries complete. Initiating ETL process\n"+
			"2024-03-09 07:06:02 - Process Complete\n",
		string(contents),
	)

	// a second logger on the same path keeps appending
	other := New(path)
	other.now = func() time.Time { return clock }
	require.NoError(t, other.Log(context.Background(), "again"))

	contents, err = os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(contents), "Process Complete\n2024-03-09 07:06:02 - again\n")
}
