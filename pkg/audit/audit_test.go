package audit

import (
	"errors"
	"path/filepath"
	"testing"
	"time"
)

func newTestLogger(t *testing.T) *FileLogger {
	t.Helper()
	l, err := NewFileLogger(filepath.Join(t.TempDir(), "audit.log"), RotationConfig{})
	if err != nil {
		t.Fatalf("NewFileLogger() error = %v", err)
	}
	t.Cleanup(func() { l.Close() })
	return l
}

func TestFileLogger_LogAndQuery(t *testing.T) {
	l := newTestLogger(t)

	ok := NewEvent("ftd-branch-01", OpDeployRoute).
		WithRoute("net-101", "gw-111", "inside", 1).
		WithSuccess()
	failed := NewEvent("ftd-branch-01", OpDeployRoute).
		WithRoute("net-202", "gw-111", "inside", 1).
		WithError(errors.New("HTTP 422"))

	for _, e := range []*Event{ok, failed} {
		if err := l.Log(e); err != nil {
			t.Fatalf("Log() error = %v", err)
		}
	}

	events, err := l.Query(Filter{Device: "ftd-branch-01"})
	if err != nil {
		t.Fatalf("Query() error = %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	if events[0].Network != "net-101" || !events[0].Success {
		t.Errorf("first event = %+v", events[0])
	}
}

func TestFileLogger_FailureFilter(t *testing.T) {
	l := newTestLogger(t)

	l.Log(NewEvent("ftd-1", OpDeployRoute).WithSuccess())
	l.Log(NewEvent("ftd-1", OpDeployRoute).WithError(errors.New("boom")))

	events, err := l.Query(Filter{FailureOnly: true})
	if err != nil {
		t.Fatalf("Query() error = %v", err)
	}
	if len(events) != 1 || events[0].Success {
		t.Errorf("FailureOnly should return only the failed event, got %+v", events)
	}
}

func TestFileLogger_DeviceAndOperationFilter(t *testing.T) {
	l := newTestLogger(t)

	l.Log(NewEvent("ftd-1", OpDeployRoute).WithSuccess())
	l.Log(NewEvent("ftd-2", OpDeployRoute).WithSuccess())
	l.Log(NewEvent("ftd-1", OpRunSummary).WithCounts(5, 5).WithSuccess())

	events, err := l.Query(Filter{Device: "ftd-1", Operation: OpRunSummary})
	if err != nil {
		t.Fatalf("Query() error = %v", err)
	}
	if len(events) != 1 || events[0].Deployed != 5 {
		t.Errorf("got %+v, want one run summary for ftd-1", events)
	}
}

func TestFileLogger_TimeFilter(t *testing.T) {
	l := newTestLogger(t)

	old := NewEvent("ftd-1", OpDeployRoute).WithSuccess()
	old.Timestamp = time.Now().Add(-48 * time.Hour)
	l.Log(old)
	l.Log(NewEvent("ftd-1", OpDeployRoute).WithSuccess())

	events, err := l.Query(Filter{StartTime: time.Now().Add(-time.Hour)})
	if err != nil {
		t.Fatalf("Query() error = %v", err)
	}
	if len(events) != 1 {
		t.Errorf("time filter should drop the 48h-old event, got %d", len(events))
	}
}

func TestDefaultLogger_NilSafe(t *testing.T) {
	SetDefaultLogger(nil)

	// Must not panic and must not error.
	Log(NewEvent("ftd-1", OpDeployRoute).WithSuccess())
	events, err := Query(Filter{})
	if err != nil || events != nil {
		t.Errorf("Query() with no logger = %v, %v", events, err)
	}
}

func TestDefaultLogger_Installed(t *testing.T) {
	l := newTestLogger(t)
	SetDefaultLogger(l)
	defer SetDefaultLogger(nil)

	Log(NewEvent("ftd-9", OpDeployRoute).WithSuccess())

	events, err := Query(Filter{Device: "ftd-9"})
	if err != nil {
		t.Fatalf("Query() error = %v", err)
	}
	if len(events) != 1 {
		t.Errorf("got %d events, want 1", len(events))
	}
}
