package clock

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestSyncLearnsOffset(t *testing.T) {
	remote := time.Now().Add(5 * time.Minute)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Date", remote.UTC().Format(http.TimeFormat))
	}))
	defer srv.Close()

	c := New()
	if err := c.Sync(context.Background(), srv.URL); err != nil {
		t.Fatalf("Sync() error = %v", err)
	}

	offset := c.Offset()
	// The Date header carries second resolution, allow generous slack.
	if offset < 4*time.Minute || offset > 6*time.Minute {
		t.Errorf("Offset() = %v, want about 5m", offset)
	}
	if c.LastSync().IsZero() {
		t.Error("LastSync() should be set after a successful sync")
	}

	drift := c.Now().Sub(time.Now())
	if drift < 4*time.Minute || drift > 6*time.Minute {
		t.Errorf("Now() drifts by %v, want about 5m", drift)
	}
}

func TestSyncMissingDateHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header()["Date"] = nil // suppress the automatic Date header
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := New()
	if err := c.Sync(context.Background(), srv.URL); err == nil {
		t.Error("Sync() without Date header should return error")
	}
	if !c.LastSync().IsZero() {
		t.Error("failed Sync() must not update LastSync")
	}
}

func TestSyncUnreachableSourceKeepsOffset(t *testing.T) {
	c := New()
	if err := c.Sync(context.Background(), "http://127.0.0.1:1"); err == nil {
		t.Error("Sync() against unreachable source should return error")
	}
	if c.Offset() != 0 {
		t.Errorf("Offset() after failed sync = %v, want 0", c.Offset())
	}
}

func TestUnsyncedClockTicksLocally(t *testing.T) {
	c := New()
	drift := c.Now().Sub(time.Now())
	if drift < -time.Second || drift > time.Second {
		t.Errorf("unsynced Now() drifts by %v, want local time", drift)
	}
}
