package tasks

import (
	"context"
	"testing"

	"github.com/floos/floos/internal/storage/kv"
)

func TestMigrateFlatLegacyStore(t *testing.T) {
	sub := newMemSubstrate()
	sub.data[kv.LegacyKeyTasksFlat] = []byte(`{
		"2025-12-01": [
			{"id": "t1", "subject": "Ship release", "description": "v2", "createdAt": 1750000000000, "updatedAt": 1750000000000}
		]
	}`)
	store := NewStore(sub, fixedNow)
	ctx := context.Background()

	list := store.List(ctx, "2025-12-01")
	if len(list) != 1 {
		t.Fatalf("List() after migration returned %d tasks, want 1", len(list))
	}
	if list[0].ID != "t1" || list[0].Subject != "Ship release" {
		t.Errorf("migrated task = %+v, want id t1 subject 'Ship release'", list[0])
	}
	if list[0].DateKey != "2025-12-01" {
		t.Errorf("migrated task DateKey = %q, want 2025-12-01", list[0].DateKey)
	}

	// Migration writes through to the current key and leaves legacy alone.
	if _, ok := sub.data[kv.KeyTasks]; !ok {
		t.Error("migration did not populate the current key")
	}
	if _, ok := sub.data[kv.LegacyKeyTasksFlat]; !ok {
		t.Error("migration must not delete the legacy key")
	}
}

func TestMigrateNestedCalendarDocument(t *testing.T) {
	sub := newMemSubstrate()
	sub.data[kv.LegacyKeyCalendar] = []byte(`{
		"version": 1,
		"tasksByDate": {
			"2025-11-15": [
				{"id": "t9", "title": "Old style entry", "link": "https://example.com"}
			]
		}
	}`)
	store := NewStore(sub, fixedNow)

	list := store.List(context.Background(), "2025-11-15")
	if len(list) != 1 {
		t.Fatalf("List() after migration returned %d tasks, want 1", len(list))
	}
	// The old schema spelled the subject "title".
	if list[0].Subject != "Old style entry" {
		t.Errorf("migrated Subject = %q, want title carried over", list[0].Subject)
	}
	if list[0].Link != "https://example.com" {
		t.Errorf("migrated Link = %q, want https://example.com", list[0].Link)
	}
}

func TestMigrateOrbitCalendarKey(t *testing.T) {
	sub := newMemSubstrate()
	sub.data[kv.LegacyKeyCalendarOrbit] = []byte(`{
		"version": 1,
		"tasksByDate": {"2025-10-01": [{"id": "o1", "subject": "orbit era"}]}
	}`)
	store := NewStore(sub, fixedNow)

	list := store.List(context.Background(), "2025-10-01")
	if len(list) != 1 {
		t.Fatalf("List() after migration returned %d tasks, want 1", len(list))
	}
	if list[0].Subject != "orbit era" {
		t.Errorf("migrated Subject = %q, want 'orbit era'", list[0].Subject)
	}
}

func TestMigrateProbeOrder(t *testing.T) {
	sub := newMemSubstrate()
	sub.data[kv.LegacyKeyTasksFlat] = []byte(`{"2025-09-09": [{"id": "new", "subject": "flat wins"}]}`)
	sub.data[kv.LegacyKeyCalendar] = []byte(`{"version": 1, "tasksByDate": {"2025-09-09": [{"id": "old", "title": "nested loses"}]}}`)
	store := NewStore(sub, fixedNow)

	list := store.List(context.Background(), "2025-09-09")
	if len(list) != 1 {
		t.Fatalf("List() after migration returned %d tasks, want 1", len(list))
	}
	if list[0].ID != "new" {
		t.Errorf("migration took id %q, want the flat store probed first", list[0].ID)
	}
}

func TestMigrationRunsOnce(t *testing.T) {
	sub := newMemSubstrate()
	sub.data[kv.LegacyKeyTasksFlat] = []byte(`{"2025-12-01": [{"id": "t1", "subject": "a"}]}`)
	store := NewStore(sub, fixedNow)
	ctx := context.Background()

	if got := len(store.List(ctx, "2025-12-01")); got != 1 {
		t.Fatalf("List() returned %d tasks, want 1", got)
	}

	// Later changes to the legacy key are invisible once migrated.
	sub.data[kv.LegacyKeyTasksFlat] = []byte(`{"2025-12-01": [{"id": "t1", "subject": "a"}, {"id": "t2", "subject": "b"}]}`)
	if got := len(store.List(ctx, "2025-12-01")); got != 1 {
		t.Errorf("List() after legacy mutation returned %d tasks, want 1 (no re-migration)", got)
	}
}

func TestCorruptCurrentKeyDoesNotTriggerMigration(t *testing.T) {
	sub := newMemSubstrate()
	sub.data[kv.KeyTasks] = []byte("{corrupt")
	sub.data[kv.LegacyKeyTasksFlat] = []byte(`{"2025-12-01": [{"id": "t1", "subject": "a"}]}`)
	store := NewStore(sub, fixedNow)

	// Corruption reads as empty; it never falls back to legacy data.
	if got := len(store.List(context.Background(), "2025-12-01")); got != 0 {
		t.Errorf("List() over corrupt current key returned %d tasks, want 0", got)
	}
}

func TestMigrateNoLegacyData(t *testing.T) {
	sub := newMemSubstrate()
	store := NewStore(sub, fixedNow)

	if got := len(store.List(context.Background(), "2025-12-01")); got != 0 {
		t.Errorf("List() with no data returned %d tasks, want 0", got)
	}
	if sub.sets != 0 {
		t.Errorf("store wrote %d times on pure reads, want 0", sub.sets)
	}
}

func TestNormalizeRejectsGarbage(t *testing.T) {
	if _, ok := normalize([]byte(`"just a string"`)); ok {
		t.Error("normalize() accepted a JSON string")
	}
	if _, ok := normalize([]byte(`{bad`)); ok {
		t.Error("normalize() accepted malformed JSON")
	}
}
