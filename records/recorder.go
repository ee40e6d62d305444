// Package records appends timestamped action lines to a plain text file.
package records

import (
	"fmt"
	"log/slog"
	"os"
	"time"
)

const TimeLayout = "2006-01-02 15:04:05"

type Recorder struct {
	path   string
	now    func() time.Time
	logger *slog.Logger
}

func NewRecorder(path string, logger *slog.Logger) *Recorder {
	return &Recorder{
		path:   path,
		now:    time.Now,
		logger: logger,
	}
}

// WithClock returns a copy stamping records with now.
func (r *Recorder) WithClock(now func() time.Time) *Recorder {
	ret := *r
	ret.now = now
	return &ret
}

func (r *Recorder) Path() string {
	return r.path
}

// Record appends one line. The file is opened and closed on every call.
func (r *Recorder) Record(message string) (err error) {
	line := Format(r.now(), message)

	f, err := os.OpenFile(r.path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		return err
	}
	defer func() {
		if e := f.Close(); e != nil && err == nil {
			err = fmt.Errorf("close %s: %w", r.path, e)
		}
	}()

	if _, err := f.WriteString(line); err != nil {
		return fmt.Errorf("write %s: %w", r.path, err)
	}

	if r.logger != nil {
		r.logger.Debug("record", "path", r.path, "message", message)
	}
	return nil
}

func Format(t time.Time, message string) string {
	return "[" + t.Format(TimeLayout) + "] " + message + "\n"
}
