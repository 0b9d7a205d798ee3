package history

import (
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("Close failed: %v", err)
		}
	})
	return store
}

func TestRecordGeneratesID(t *testing.T) {
	store := openTestStore(t)

	run, err := store.Record(Run{
		Keyword:  "CPI",
		Datasets: 1,
		IDBanks:  3,
		Files:    []string{"CPI_20240315_103000_results.json"},
	})
	if err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	if run.ID == "" {
		t.Error("expected a generated run ID")
	}
	if run.StartedAt.IsZero() {
		t.Error("expected a generated timestamp")
	}
}

func TestListNewestFirst(t *testing.T) {
	store := openTestStore(t)

	base := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	for i, kw := range []string{"CPI", "prix", "chomage"} {
		_, err := store.Record(Run{
			Keyword:   kw,
			StartedAt: base.Add(time.Duration(i) * time.Minute),
			Files:     []string{},
		})
		if err != nil {
			t.Fatalf("Record failed: %v", err)
		}
	}

	runs, err := store.List(2)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs with limit=2, got %d", len(runs))
	}
	if runs[0].Keyword != "chomage" || runs[1].Keyword != "prix" {
		t.Errorf("runs not ordered newest first: %q, %q", runs[0].Keyword, runs[1].Keyword)
	}
}

func TestRoundTripFiles(t *testing.T) {
	store := openTestStore(t)

	files := []string{"a_results.json", "a_summary.csv", "a_DS1_idbanks.csv"}
	if _, err := store.Record(Run{Keyword: "a", Files: files}); err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	runs, err := store.List(0)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(runs))
	}
	if len(runs[0].Files) != 3 || runs[0].Files[2] != "a_DS1_idbanks.csv" {
		t.Errorf("file list did not round-trip: %v", runs[0].Files)
	}
}

func TestSameSecondRunsStayDistinct(t *testing.T) {
	store := openTestStore(t)

	at := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)
	for i := 0; i < 2; i++ {
		if _, err := store.Record(Run{Keyword: "CPI", StartedAt: at, Files: []string{}}); err != nil {
			t.Fatalf("Record failed: %v", err)
		}
	}

	runs, err := store.List(0)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	if runs[0].ID == runs[1].ID {
		t.Error("same-second runs must get distinct IDs")
	}
}
