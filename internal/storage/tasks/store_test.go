package tasks

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/floos/floos/internal/domain"
	"github.com/floos/floos/internal/storage/kv"
)

// memSubstrate is an in-memory kv.Substrate for store tests.
type memSubstrate struct {
	data   map[string][]byte
	setErr error
	sets   int
}

func newMemSubstrate() *memSubstrate {
	return &memSubstrate{data: make(map[string][]byte)}
}

func (m *memSubstrate) Get(_ context.Context, key string) ([]byte, bool, error) {
	raw, ok := m.data[key]
	return raw, ok, nil
}

func (m *memSubstrate) Set(_ context.Context, key string, value []byte) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.sets++
	m.data[key] = value
	return nil
}

var testNow = time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

func fixedNow() time.Time { return testNow }

func draft(subject string) domain.TaskDraft {
	return domain.TaskDraft{Subject: subject}
}

func TestAddAndList(t *testing.T) {
	store := NewStore(newMemSubstrate(), fixedNow)
	ctx := context.Background()

	task, err := store.Add(ctx, "2026-08-28", draft("Write report"))
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if task.ID == "" {
		t.Error("Add() should assign an id")
	}
	if task.DateKey != "2026-08-28" {
		t.Errorf("task DateKey = %q, want 2026-08-28", task.DateKey)
	}
	if task.CreatedAt != testNow.UnixMilli() {
		t.Errorf("task CreatedAt = %d, want %d", task.CreatedAt, testNow.UnixMilli())
	}
	if task.UpdatedAt != testNow.UnixMilli() {
		t.Errorf("task UpdatedAt = %d, want %d", task.UpdatedAt, testNow.UnixMilli())
	}

	list := store.List(ctx, "2026-08-28")
	if len(list) != 1 {
		t.Fatalf("List() returned %d tasks, want 1", len(list))
	}
	if list[0].Subject != "Write report" {
		t.Errorf("task Subject = %q, want %q", list[0].Subject, "Write report")
	}
}

func TestAddKeepsDraftCreatedAt(t *testing.T) {
	store := NewStore(newMemSubstrate(), fixedNow)

	d := draft("Imported")
	d.CreatedAt = 1700000000000

	task, err := store.Add(context.Background(), "2026-08-28", d)
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if task.CreatedAt != 1700000000000 {
		t.Errorf("task CreatedAt = %d, want draft value preserved", task.CreatedAt)
	}
	if task.UpdatedAt != testNow.UnixMilli() {
		t.Errorf("task UpdatedAt = %d, want %d", task.UpdatedAt, testNow.UnixMilli())
	}
}

func TestAddPreservesInsertionOrder(t *testing.T) {
	store := NewStore(newMemSubstrate(), fixedNow)
	ctx := context.Background()

	for _, subject := range []string{"first", "second", "third"} {
		if _, err := store.Add(ctx, "2026-08-28", draft(subject)); err != nil {
			t.Fatalf("Add(%q) error = %v", subject, err)
		}
	}

	list := store.List(ctx, "2026-08-28")
	if len(list) != 3 {
		t.Fatalf("List() returned %d tasks, want 3", len(list))
	}
	for i, want := range []string{"first", "second", "third"} {
		if list[i].Subject != want {
			t.Errorf("List()[%d].Subject = %q, want %q", i, list[i].Subject, want)
		}
	}
}

func TestListUnknownDateReturnsEmpty(t *testing.T) {
	store := NewStore(newMemSubstrate(), fixedNow)

	list := store.List(context.Background(), "2026-01-01")
	if list == nil {
		t.Fatal("List() on unknown date should return empty slice, not nil")
	}
	if len(list) != 0 {
		t.Errorf("List() returned %d tasks, want 0", len(list))
	}
}

func TestListCorruptDocumentReadsAsEmpty(t *testing.T) {
	sub := newMemSubstrate()
	sub.data[kv.KeyTasks] = []byte("{broken")
	store := NewStore(sub, fixedNow)

	list := store.List(context.Background(), "2026-08-28")
	if len(list) != 0 {
		t.Errorf("List() over corrupt document returned %d tasks, want 0", len(list))
	}
}

func TestAddPersistenceFailurePropagates(t *testing.T) {
	sub := newMemSubstrate()
	sub.setErr = errors.New("disk full")
	store := NewStore(sub, fixedNow)

	if _, err := store.Add(context.Background(), "2026-08-28", draft("x")); err == nil {
		t.Fatal("Add() with failing substrate should return error")
	}
}

func TestHasTasks(t *testing.T) {
	store := NewStore(newMemSubstrate(), fixedNow)
	ctx := context.Background()

	if store.HasTasks(ctx, "2026-08-28") {
		t.Error("HasTasks() on empty store should be false")
	}

	if _, err := store.Add(ctx, "2026-08-28", draft("x")); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	if !store.HasTasks(ctx, "2026-08-28") {
		t.Error("HasTasks() after Add() should be true")
	}
	if store.HasTasks(ctx, "2026-08-29") {
		t.Error("HasTasks() on other date should be false")
	}
}

func TestTasksPartitionIsolation(t *testing.T) {
	store := NewStore(newMemSubstrate(), fixedNow)
	ctx := context.Background()

	if _, err := store.Add(ctx, "2026-08-28", draft("a")); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if _, err := store.Add(ctx, "2026-08-29", draft("b")); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	if got := len(store.List(ctx, "2026-08-28")); got != 1 {
		t.Errorf("List(2026-08-28) returned %d tasks, want 1", got)
	}
	if got := len(store.List(ctx, "2026-08-29")); got != 1 {
		t.Errorf("List(2026-08-29) returned %d tasks, want 1", got)
	}
}

func TestStoredDocumentShape(t *testing.T) {
	sub := newMemSubstrate()
	store := NewStore(sub, fixedNow)

	if _, err := store.Add(context.Background(), "2026-08-28", draft("x")); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	var doc map[string][]map[string]any
	if err := json.Unmarshal(sub.data[kv.KeyTasks], &doc); err != nil {
		t.Fatalf("stored document is not a flat date map: %v", err)
	}
	if _, ok := doc["2026-08-28"]; !ok {
		t.Error("stored document missing the date partition")
	}
}
