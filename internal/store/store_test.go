package store

import (
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	if err := s.Migrate(); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	return s
}

func TestDetectDriver(t *testing.T) {
	cases := []struct {
		in         string
		wantDriver string
		wantDSN    string
	}{
		{"postgres://user@host/db", "postgres", "postgres://user@host/db"},
		{"postgresql://user@host/db", "postgres", "postgresql://user@host/db"},
		{"sqlite:///tmp/x.db", "sqlite", "/tmp/x.db"},
		{"plain.db", "sqlite", "plain.db"},
	}
	for _, c := range cases {
		driver, dsn := detectDriver(c.in)
		if driver != c.wantDriver || dsn != c.wantDSN {
			t.Errorf("detectDriver(%q) = (%q, %q), want (%q, %q)", c.in, driver, dsn, c.wantDriver, c.wantDSN)
		}
	}
}

func TestCreateAndGetActor(t *testing.T) {
	s := openTestStore(t)

	if err := s.CreateActor(Actor{Handle: "alice", Name: "Alice", Summary: "hi", Published: "2024-01-01T00:00:00Z"}); err != nil {
		t.Fatalf("CreateActor: %v", err)
	}

	got, ok, err := s.GetActor("alice")
	if err != nil {
		t.Fatalf("GetActor: %v", err)
	}
	if !ok {
		t.Fatal("expected actor alice to exist")
	}
	if got.Name != "Alice" || got.Summary != "hi" {
		t.Errorf("GetActor(alice) = %+v", got)
	}

	if _, ok, err := s.GetActor("nobody"); err != nil || ok {
		t.Errorf("GetActor(nobody) = (ok=%v, err=%v), want (false, nil)", ok, err)
	}
}

func TestAddNoteAssignsIncreasingSeq(t *testing.T) {
	s := openTestStore(t)

	n1, err := s.AddNote("alice", "first", "2024-01-01T00:00:00Z")
	if err != nil {
		t.Fatalf("AddNote: %v", err)
	}
	n2, err := s.AddNote("alice", "second", "2024-01-02T00:00:00Z")
	if err != nil {
		t.Fatalf("AddNote: %v", err)
	}
	if n1.Seq != 0 || n2.Seq != 1 {
		t.Errorf("seqs = %d, %d, want 0, 1", n1.Seq, n2.Seq)
	}
	if n1.ID == "" || n2.ID == "" || n1.ID == n2.ID {
		t.Errorf("expected distinct non-empty note IDs, got %q and %q", n1.ID, n2.ID)
	}

	count, err := s.CountNotes("alice")
	if err != nil {
		t.Fatalf("CountNotes: %v", err)
	}
	if count != 2 {
		t.Errorf("CountNotes = %d, want 2", count)
	}
}

func TestNotesPagePagination(t *testing.T) {
	s := openTestStore(t)
	for i := 0; i < 5; i++ {
		if _, err := s.AddNote("alice", "note", "2024-01-01T00:00:00Z"); err != nil {
			t.Fatalf("AddNote: %v", err)
		}
	}

	first, ok, err := s.LastSeq("alice")
	if err != nil || !ok {
		t.Fatalf("LastSeq: ok=%v err=%v", ok, err)
	}
	if first != 4 {
		t.Errorf("LastSeq = %d, want 4", first)
	}

	page, hasMore, err := s.NotesPage("alice", first+1, 2)
	if err != nil {
		t.Fatalf("NotesPage: %v", err)
	}
	if len(page) != 2 || !hasMore {
		t.Fatalf("NotesPage(first page) = %d items, hasMore=%v, want 2 items, hasMore=true", len(page), hasMore)
	}
	if page[0].Seq != 4 || page[1].Seq != 3 {
		t.Errorf("expected descending seqs [4,3], got [%d,%d]", page[0].Seq, page[1].Seq)
	}

	last, ok, err := s.FirstSeq("alice")
	if err != nil || !ok {
		t.Fatalf("FirstSeq: ok=%v err=%v", ok, err)
	}
	if last != 0 {
		t.Errorf("FirstSeq = %d, want 0", last)
	}

	page, hasMore, err = s.NotesPage("alice", page[len(page)-1].Seq, 10)
	if err != nil {
		t.Fatalf("NotesPage: %v", err)
	}
	if hasMore {
		t.Error("expected no more pages once the remaining notes fit in one page")
	}
	if len(page) != 3 {
		t.Errorf("expected 3 remaining notes, got %d", len(page))
	}
}

func TestFirstLastSeqEmptyOutbox(t *testing.T) {
	s := openTestStore(t)
	if _, ok, err := s.FirstSeq("nobody"); err != nil || ok {
		t.Errorf("FirstSeq(empty) = (ok=%v, err=%v), want (false, nil)", ok, err)
	}
	if _, ok, err := s.LastSeq("nobody"); err != nil || ok {
		t.Errorf("LastSeq(empty) = (ok=%v, err=%v), want (false, nil)", ok, err)
	}
}
