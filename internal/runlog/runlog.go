// Package runlog appends one timestamped line per pipeline milestone to a
// plain text file.
package runlog

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

const TimeFormat = "2006-01-02 15:04:05"

type Logger struct {
	path string
	now  func() time.Time
}

func New(path string) *Logger {
	return &Logger{path: path, now: time.Now}
}

// Format renders a single log line, without the trailing newline.
func Format(t time.Time, message string) string {
	return fmt.Sprintf("%s - %s", t.Format(TimeFormat), message)
}

// Log appends `message` to the file, the file is opened and closed on every
// call so an aborted run keeps everything logged before it.
func (l *Logger) Log(ctx context.Context, message string) error {
	slog.InfoContext(ctx, message)

	err := os.MkdirAll(filepath.Dir(l.path), 0755)
	if err != nil {
		return err
	}
	file, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open run log: %w", err)
	}
	_, err = fmt.Fprintln(file, Format(l.now(), message))
	if err != nil {
		file.Close()
		return fmt.Errorf("write run log: %w", err)
	}
	return file.Close()
}
