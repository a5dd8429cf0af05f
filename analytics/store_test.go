package analytics

import (
	"path/filepath"
	"testing"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "analytics.db"))
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRecordAndTotals(t *testing.T) {
	s := testStore(t)

	for i := 0; i < 3; i++ {
		if err := s.Record("/hello/"); err != nil {
			t.Fatalf("Record failed: %v", err)
		}
	}
	if err := s.Record("/other/"); err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	totals, err := s.Totals()
	if err != nil {
		t.Fatalf("Totals failed: %v", err)
	}
	if totals["/hello/"] != 3 {
		t.Errorf("totals[/hello/] = %d, want 3", totals["/hello/"])
	}
	if totals["/other/"] != 1 {
		t.Errorf("totals[/other/] = %d, want 1", totals["/other/"])
	}
}

func TestRecordOnceDedupes(t *testing.T) {
	s := testStore(t)

	// Same address and path: only the first view counts.
	for i := 0; i < 5; i++ {
		if err := s.RecordOnce("10.0.0.1", "/hello/"); err != nil {
			t.Fatalf("RecordOnce failed: %v", err)
		}
	}
	// Different address for the same path still counts.
	if err := s.RecordOnce("10.0.0.2", "/hello/"); err != nil {
		t.Fatalf("RecordOnce failed: %v", err)
	}
	// Same address but a different path also counts.
	if err := s.RecordOnce("10.0.0.1", "/other/"); err != nil {
		t.Fatalf("RecordOnce failed: %v", err)
	}

	count, err := s.PathTotal("/hello/")
	if err != nil {
		t.Fatalf("PathTotal failed: %v", err)
	}
	if count != 2 {
		t.Errorf("PathTotal(/hello/) = %d, want 2", count)
	}
}

func TestPathTotalUnknownPath(t *testing.T) {
	s := testStore(t)
	count, err := s.PathTotal("/nope/")
	if err != nil {
		t.Fatalf("PathTotal failed: %v", err)
	}
	if count != 0 {
		t.Errorf("PathTotal for unknown path = %d, want 0", count)
	}
}

func TestPrune(t *testing.T) {
	s := testStore(t)
	if err := s.Record("/hello/"); err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	// Today's row is inside any positive retention window.
	if err := s.Prune(30); err != nil {
		t.Fatalf("Prune failed: %v", err)
	}
	count, err := s.PathTotal("/hello/")
	if err != nil {
		t.Fatalf("PathTotal failed: %v", err)
	}
	if count != 1 {
		t.Errorf("PathTotal after prune = %d, want 1", count)
	}
}
