package logging

import (
	"bytes"
	"testing"
	"time"
)

func TestFileLoggerFormat(t *testing.T) {
	var buf bytes.Buffer
	l := NewFileLogger(&buf)
	l.now = func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }

	l.Infof("raster", "resolution %dx%d", 320, 200)
	l.Errorf("state", "save failed: %v", "disk full")

	want := "2024-05-01T12:00:00Z [INFO] raster: resolution 320x200\n" +
		"2024-05-01T12:00:00Z [ERROR] state: save failed: disk full\n"
	if got := buf.String(); got != want {
		t.Errorf("log output =\n%q\nwant\n%q", got, want)
	}
}

func TestNoopLoggerSatisfiesLogger(t *testing.T) {
	var l Logger = NoopLogger{}
	l.Infof("x", "%d", 1)
	l.Errorf("x", "%d", 1)
}
