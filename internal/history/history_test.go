package history

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"
)

func openMemory(t *testing.T) *Store {
	t.Helper()
	s, err := Open(MemoryPath)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRecordAndRecent(t *testing.T) {
	s := openMemory(t)
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		e := Entry{
			ID:       fmt.Sprintf("run-%d", i),
			Code:     fmt.Sprintf("print %d", i),
			Output:   fmt.Sprintf("%d\n", i),
			Duration: time.Duration(i) * time.Millisecond,
			Created:  base.Add(time.Duration(i) * time.Second),
		}
		if err := s.Record(ctx, e); err != nil {
			t.Fatalf("Record: %v", err)
		}
	}

	got, err := s.Recent(ctx, 3)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d entries", len(got))
	}
	for i, want := range []string{"run-4", "run-3", "run-2"} {
		if got[i].ID != want {
			t.Errorf("entry %d = %s, want %s", i, got[i].ID, want)
		}
	}

	first := got[0]
	if first.Code != "print 4" || first.Output != "4\n" || first.Duration != 4*time.Millisecond {
		t.Errorf("entry = %+v", first)
	}
	if !first.Created.Equal(base.Add(4 * time.Second)) {
		t.Errorf("created = %v", first.Created)
	}

	n, err := s.Count(ctx)
	if err != nil || n != 5 {
		t.Errorf("Count() = %d, %v", n, err)
	}
}

func TestRecordKeepsErrors(t *testing.T) {
	s := openMemory(t)
	ctx := context.Background()

	if err := s.Record(ctx, Entry{ID: "bad", Code: "print x", Error: "Undefined variable: x"}); err != nil {
		t.Fatalf("Record: %v", err)
	}
	got, err := s.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(got) != 1 || got[0].Error != "Undefined variable: x" || got[0].Created.IsZero() {
		t.Errorf("got %+v", got)
	}
}

func TestDuplicateIDFails(t *testing.T) {
	s := openMemory(t)
	ctx := context.Background()

	if err := s.Record(ctx, Entry{ID: "same"}); err != nil {
		t.Fatal(err)
	}
	if err := s.Record(ctx, Entry{ID: "same"}); err == nil {
		t.Error("expected error on duplicate id")
	}
}

func TestRecentWithZeroLimit(t *testing.T) {
	s := openMemory(t)
	got, err := s.Recent(context.Background(), 0)
	if err != nil || len(got) != 0 {
		t.Errorf("Recent(0) = %v, %v", got, err)
	}
}

func TestReopenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs.db")
	ctx := context.Background()

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := s.Record(ctx, Entry{ID: "kept", Code: "1"}); err != nil {
		t.Fatal(err)
	}
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}

	s, err = Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()
	got, err := s.Recent(ctx, 1)
	if err != nil || len(got) != 1 || got[0].ID != "kept" {
		t.Errorf("Recent() = %v, %v", got, err)
	}
	if s.Path() != path {
		t.Errorf("Path() = %s", s.Path())
	}
}

func TestCancelledContext(t *testing.T) {
	s := openMemory(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := s.Record(ctx, Entry{ID: "late"})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Record with cancelled context = %v", err)
	}
}
