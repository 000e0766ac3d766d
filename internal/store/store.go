// Package store is the worked example host application's persistence
// layer: a local actor and outbox store backing the fedikit-demo
// command. It persists only local data (handles, display names, and
// notes this demo authors itself), never remote entities.
package store

import (
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Store wraps a database connection holding local actors and the notes
// they have authored (the demo's outbox entries).
type Store struct {
	db     *sql.DB
	driver string
}

// Open opens a database connection. databaseURL may be a bare file path
// or "sqlite://..." (SQLite) or "postgres://..." (PostgreSQL).
func Open(databaseURL string) (*Store, error) {
	driver, dsn := detectDriver(databaseURL)

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("store: open: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("store: ping: %w", err)
	}

	if driver == "sqlite" {
		db.SetMaxOpenConns(4)
		db.SetMaxIdleConns(4)
		for _, pragma := range []string{
			"PRAGMA journal_mode=WAL",
			"PRAGMA busy_timeout=5000",
			"PRAGMA foreign_keys=ON",
			"PRAGMA synchronous=NORMAL",
		} {
			if _, err := db.Exec(pragma); err != nil {
				return nil, fmt.Errorf("store: sqlite pragma (%s): %w", pragma, err)
			}
		}
	}

	return &Store{db: db, driver: driver}, nil
}

func detectDriver(u string) (driver, dsn string) {
	if strings.HasPrefix(u, "postgres://") || strings.HasPrefix(u, "postgresql://") {
		return "postgres", u
	}
	if strings.HasPrefix(u, "sqlite://") {
		return "sqlite", strings.TrimPrefix(u, "sqlite://")
	}
	return "sqlite", u
}

var commonMigrations = []string{
	`CREATE TABLE IF NOT EXISTS actors (
		handle      TEXT NOT NULL PRIMARY KEY,
		name        TEXT NOT NULL DEFAULT '',
		summary     TEXT NOT NULL DEFAULT '',
		published   TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS notes (
		id          TEXT NOT NULL PRIMARY KEY,
		handle      TEXT NOT NULL,
		content     TEXT NOT NULL,
		published   TEXT NOT NULL,
		seq         INTEGER NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS notes_handle_seq ON notes(handle, seq)`,
}

// Migrate runs all pending migrations.
func (s *Store) Migrate() error {
	for _, m := range commonMigrations {
		if _, err := s.db.Exec(m); err != nil {
			if s.driver == "postgres" && strings.Contains(err.Error(), "already exists") {
				continue
			}
			return fmt.Errorf("store: migration failed: %w\nSQL: %s", err, m)
		}
	}
	slog.Debug("store: migrations complete")
	return nil
}

// Close closes the database connection.
func (s *Store) Close() error { return s.db.Close() }

func (s *Store) ph(n int) string {
	if s.driver == "postgres" {
		return fmt.Sprintf("$%d", n)
	}
	return "?"
}

// Actor is a locally hosted actor record.
type Actor struct {
	Handle    string
	Name      string
	Summary   string
	Published string
}

// CreateActor inserts a new local actor record.
func (s *Store) CreateActor(a Actor) error {
	q := fmt.Sprintf(`INSERT INTO actors (handle, name, summary, published) VALUES (%s, %s, %s, %s)`,
		s.ph(1), s.ph(2), s.ph(3), s.ph(4))
	_, err := s.db.Exec(q, a.Handle, a.Name, a.Summary, a.Published)
	return err
}

// GetActor returns the actor record for handle, if one exists.
func (s *Store) GetActor(handle string) (Actor, bool, error) {
	q := `SELECT handle, name, summary, published FROM actors WHERE handle = ` + s.ph(1)
	var a Actor
	err := s.db.QueryRow(q, handle).Scan(&a.Handle, &a.Name, &a.Summary, &a.Published)
	if err == sql.ErrNoRows {
		return Actor{}, false, nil
	}
	if err != nil {
		return Actor{}, false, err
	}
	return a, true, nil
}

// Note is one locally authored outbox entry.
type Note struct {
	ID        string
	Handle    string
	Content   string
	Published string
	Seq       int
}

// AddNote appends a note to handle's outbox, assigning it the next
// sequence number.
func (s *Store) AddNote(handle, content, published string) (Note, error) {
	var nextSeq int
	row := s.db.QueryRow(`SELECT COALESCE(MAX(seq), -1) + 1 FROM notes WHERE handle = `+s.ph(1), handle)
	if err := row.Scan(&nextSeq); err != nil {
		return Note{}, fmt.Errorf("store: add note: %w", err)
	}
	n := Note{ID: uuid.NewString(), Handle: handle, Content: content, Published: published, Seq: nextSeq}
	q := fmt.Sprintf(`INSERT INTO notes (id, handle, content, published, seq) VALUES (%s, %s, %s, %s, %s)`,
		s.ph(1), s.ph(2), s.ph(3), s.ph(4), s.ph(5))
	if _, err := s.db.Exec(q, n.ID, n.Handle, n.Content, n.Published, n.Seq); err != nil {
		return Note{}, fmt.Errorf("store: add note: %w", err)
	}
	return n, nil
}

// CountNotes reports the total number of notes in handle's outbox.
func (s *Store) CountNotes(handle string) (int, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM notes WHERE handle = `+s.ph(1), handle).Scan(&n)
	return n, err
}

// NotesPage returns up to pageSize notes for handle ordered by seq
// descending (newest first), keeping only notes whose seq is strictly
// below afterSeq (one past the highest seq for the first page), plus
// whether more notes remain beyond the page.
func (s *Store) NotesPage(handle string, afterSeq, pageSize int) ([]Note, bool, error) {
	q := fmt.Sprintf(`SELECT id, handle, content, published, seq FROM notes
		WHERE handle = %s AND seq < %s ORDER BY seq DESC LIMIT %s`,
		s.ph(1), s.ph(2), s.ph(3))
	rows, err := s.db.Query(q, handle, afterSeq, pageSize+1)
	if err != nil {
		return nil, false, err
	}
	defer rows.Close()

	var notes []Note
	for rows.Next() {
		var n Note
		if err := rows.Scan(&n.ID, &n.Handle, &n.Content, &n.Published, &n.Seq); err != nil {
			return nil, false, err
		}
		notes = append(notes, n)
	}
	hasMore := len(notes) > pageSize
	if hasMore {
		notes = notes[:pageSize]
	}
	return notes, hasMore, rows.Err()
}

// FirstSeq and LastSeq report the sequence numbers bounding handle's
// outbox, used to derive stable first/last cursors.
func (s *Store) FirstSeq(handle string) (int, bool, error) {
	return s.boundSeq(handle, "MIN")
}

func (s *Store) LastSeq(handle string) (int, bool, error) {
	return s.boundSeq(handle, "MAX")
}

func (s *Store) boundSeq(handle, agg string) (int, bool, error) {
	var seq sql.NullInt64
	q := fmt.Sprintf(`SELECT %s(seq) FROM notes WHERE handle = %s`, agg, s.ph(1))
	if err := s.db.QueryRow(q, handle).Scan(&seq); err != nil {
		return 0, false, err
	}
	if !seq.Valid {
		return 0, false, nil
	}
	return int(seq.Int64), true, nil
}
