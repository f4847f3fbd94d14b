package audit

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func TestSQLiteRecordAndRecent(t *testing.T) {
	ctx := context.Background()
	s, err := Open(ctx, "sqlite", filepath.Join(t.TempDir(), "audit", "audit.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer s.Close()

	base := time.Date(2025, 2, 1, 10, 0, 0, 0, time.UTC)
	for i, title := range []string{"Charaka Samhita", "Sushruta Samhita", "Ashtanga Hridayam"} {
		err := s.Record(ctx, Entry{
			At:       base.Add(time.Duration(i) * time.Minute),
			Action:   ActionCreate,
			Kind:     "Book",
			TargetId: int64(i + 1),
			Title:    title,
		})
		if err != nil {
			t.Fatalf("Record: %v", err)
		}
	}

	entries, err := s.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0].Title != "Ashtanga Hridayam" || entries[1].Title != "Sushruta Samhita" {
		t.Fatalf("unexpected order: %+v", entries)
	}
	if !entries[0].At.Equal(base.Add(2 * time.Minute)) {
		t.Fatalf("At = %v", entries[0].At)
	}
}

func TestNoneDriver(t *testing.T) {
	s, err := Open(context.Background(), "none", "")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := s.Record(context.Background(), Entry{Action: ActionDelete}); err != nil {
		t.Fatalf("Record on nil store: %v", err)
	}
	entries, err := s.Recent(context.Background(), 5)
	if err != nil || len(entries) != 0 {
		t.Fatalf("Recent = %v, %v", entries, err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}

func TestUnknownDriver(t *testing.T) {
	if _, err := Open(context.Background(), "oracle", "x"); err == nil {
		t.Fatal("expected an error")
	}
}

func TestRebind(t *testing.T) {
	pg := &Store{dialect: "postgres"}
	if got := pg.rebind("SELECT ? , ?"); got != "SELECT $1 , $2" {
		t.Fatalf("rebind = %q", got)
	}
	lite := &Store{dialect: "sqlite"}
	if got := lite.rebind("SELECT ?"); got != "SELECT ?" {
		t.Fatalf("rebind = %q", got)
	}
}
