package history_test

import (
	"path/filepath"
	"testing"
	"time"

	"go.trai.ch/piper/internal/adapters/history"
	"go.trai.ch/piper/internal/core/domain"
)

func TestStore_AppendAndList(t *testing.T) {
	tmpDir := t.TempDir()
	storePath := filepath.Join(tmpDir, "piper_history.json")

	store, err := history.NewStore(storePath)
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}

	rec := domain.RunRecord{
		Target:    "photos/cat.jpg",
		Args:      []string{"photos/cat.jpg", "--quality", "82"},
		Outcome:   domain.ExitOutcome{Spawned: true, Code: 0},
		StartedAt: time.Now(),
		Duration:  2 * time.Second,
	}

	if err := store.Append(rec); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	got, err := store.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 record, got %d", len(got))
	}
	if got[0].Target != rec.Target {
		t.Errorf("expected Target %q, got %q", rec.Target, got[0].Target)
	}
}

func TestStore_Persistence(t *testing.T) {
	tmpDir := t.TempDir()
	storePath := filepath.Join(tmpDir, "piper_history.json")

	store, err := history.NewStore(storePath)
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}

	records := []domain.RunRecord{
		{Target: "a.jpg", Outcome: domain.ExitOutcome{Spawned: true, Code: 0}, StartedAt: time.Now()},
		{Target: "b.jpg", Outcome: domain.ExitOutcome{Spawned: true, Code: 1}, StartedAt: time.Now()},
		{Target: "c.jpg", Outcome: domain.ExitOutcome{Spawned: false}, StartedAt: time.Now()},
	}
	for _, rec := range records {
		if err := store.Append(rec); err != nil {
			t.Fatalf("Append failed: %v", err)
		}
	}

	// Reload from disk through a fresh store.
	reloaded, err := history.NewStore(storePath)
	if err != nil {
		t.Fatalf("NewStore reload failed: %v", err)
	}

	got, err := reloaded.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(got) != len(records) {
		t.Fatalf("expected %d records after reload, got %d", len(records), len(got))
	}
	for i, rec := range records {
		if got[i].Target != rec.Target {
			t.Errorf("record %d: expected Target %q, got %q", i, rec.Target, got[i].Target)
		}
		if got[i].Outcome.Code != rec.Outcome.Code {
			t.Errorf("record %d: expected Code %d, got %d", i, rec.Outcome.Code, got[i].Outcome.Code)
		}
		if got[i].Outcome.Spawned != rec.Outcome.Spawned {
			t.Errorf("record %d: expected Spawned %v, got %v", i, rec.Outcome.Spawned, got[i].Outcome.Spawned)
		}
	}
}

func TestStore_ListReturnsCopy(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := history.NewStore(filepath.Join(tmpDir, "h.json"))
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}

	if err := store.Append(domain.RunRecord{Target: "a.jpg"}); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	first, _ := store.List()
	first[0].Target = "mutated"

	second, _ := store.List()
	if second[0].Target != "a.jpg" {
		t.Errorf("List exposed internal state: got %q", second[0].Target)
	}
}
