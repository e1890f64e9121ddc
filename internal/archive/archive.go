// Package archive writes one-shot session dumps to SQLite files.
//
// Archives are write-only: the server never reads them back, so no session
// state survives a restart. Each export produces a self-contained database
// holding the session row, its thoughts, the knowledge graph, and the
// per-thought quality scores — convenient for offline inspection with any
// sqlite client.
package archive

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/noema-dev/noema/internal/session"
)

// openDB is a package-level var to allow test injection.
var openDB = sql.Open

const schema = `
	CREATE TABLE sessions (
		id          TEXT PRIMARY KEY,
		started_at  TEXT NOT NULL,
		exported_at TEXT NOT NULL
	);

	CREATE TABLE thoughts (
		session_id          TEXT    NOT NULL,
		thought_number      INTEGER NOT NULL,
		total_thoughts      INTEGER NOT NULL,
		content             TEXT    NOT NULL,
		next_thought_needed INTEGER NOT NULL,
		is_revision         INTEGER NOT NULL DEFAULT 0,
		revises_thought     INTEGER,
		branch_from_thought INTEGER,
		branch_id           TEXT
	);

	CREATE TABLE concepts (
		session_id      TEXT    NOT NULL,
		id              TEXT    NOT NULL,
		label           TEXT    NOT NULL,
		type            TEXT    NOT NULL,
		confidence      REAL    NOT NULL,
		first_mentioned INTEGER NOT NULL,
		frequency       INTEGER NOT NULL
	);

	CREATE TABLE relationships (
		session_id   TEXT    NOT NULL,
		source       TEXT    NOT NULL,
		target       TEXT    NOT NULL,
		relationship TEXT    NOT NULL,
		strength     INTEGER NOT NULL,
		occurrences  TEXT    NOT NULL
	);

	CREATE TABLE scores (
		session_id     TEXT    NOT NULL,
		thought_number INTEGER NOT NULL,
		coherence      REAL    NOT NULL,
		relevance      REAL    NOT NULL,
		novelty        REAL    NOT NULL,
		depth          REAL    NOT NULL,
		clarity        REAL    NOT NULL,
		overall        REAL    NOT NULL
	);
`

// Writer writes session exports under a data directory.
type Writer struct {
	dir string
}

// NewWriter creates a Writer rooted at dir. The directory is created on
// first export, not here.
func NewWriter(dir string) *Writer {
	return &Writer{dir: dir}
}

// Counts reports how many rows of each kind an export wrote.
type Counts struct {
	Thoughts      int `json:"thoughts"`
	Concepts      int `json:"concepts"`
	Relationships int `json:"relationships"`
	Scores        int `json:"scores"`
}

// Export writes the session snapshot to a new timestamped SQLite file and
// returns its path and row counts.
func (w *Writer) Export(snap session.Export) (string, Counts, error) {
	if err := os.MkdirAll(w.dir, 0o700); err != nil {
		return "", Counts{}, fmt.Errorf("archive: create data dir: %w", err)
	}

	name := fmt.Sprintf("noema-%s-%s.db", snap.SessionID, time.Now().UTC().Format("20060102T150405Z"))
	path := filepath.Join(w.dir, name)

	db, err := openDB("sqlite", path)
	if err != nil {
		return "", Counts{}, fmt.Errorf("archive: open database: %w", err)
	}
	defer db.Close()

	if _, err := db.Exec(schema); err != nil {
		return "", Counts{}, fmt.Errorf("archive: create schema: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return "", Counts{}, fmt.Errorf("archive: begin tx: %w", err)
	}
	defer tx.Rollback()

	counts, err := writeSnapshot(tx, snap)
	if err != nil {
		return "", Counts{}, err
	}

	if err := tx.Commit(); err != nil {
		return "", Counts{}, fmt.Errorf("archive: commit: %w", err)
	}

	return path, counts, nil
}

func writeSnapshot(tx *sql.Tx, snap session.Export) (Counts, error) {
	var counts Counts

	_, err := tx.Exec(
		`INSERT INTO sessions (id, started_at, exported_at) VALUES (?, ?, ?)`,
		snap.SessionID,
		snap.StartedAt.UTC().Format(time.RFC3339),
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return counts, fmt.Errorf("archive: insert session: %w", err)
	}

	for _, t := range snap.Thoughts {
		_, err := tx.Exec(
			`INSERT INTO thoughts
				(session_id, thought_number, total_thoughts, content,
				 next_thought_needed, is_revision, revises_thought,
				 branch_from_thought, branch_id)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			snap.SessionID, t.ThoughtNumber, t.TotalThoughts, t.Thought,
			boolInt(t.NextThoughtNeeded), boolInt(t.IsRevision),
			nullableInt(t.RevisesThought), nullableInt(t.BranchFromThought),
			nullableString(t.BranchID),
		)
		if err != nil {
			return counts, fmt.Errorf("archive: insert thought %d: %w", t.ThoughtNumber, err)
		}
		counts.Thoughts++
	}

	for _, n := range snap.Nodes {
		_, err := tx.Exec(
			`INSERT INTO concepts
				(session_id, id, label, type, confidence, first_mentioned, frequency)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			snap.SessionID, n.ID, n.Label, n.Type, n.Confidence, n.FirstMentioned, n.Frequency,
		)
		if err != nil {
			return counts, fmt.Errorf("archive: insert concept %q: %w", n.ID, err)
		}
		counts.Concepts++
	}

	for _, e := range snap.Edges {
		_, err := tx.Exec(
			`INSERT INTO relationships
				(session_id, source, target, relationship, strength, occurrences)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			snap.SessionID, e.Source, e.Target, e.Relationship, e.Strength,
			joinInts(e.ThoughtNumbers),
		)
		if err != nil {
			return counts, fmt.Errorf("archive: insert relationship %s->%s: %w", e.Source, e.Target, err)
		}
		counts.Relationships++
	}

	for number, s := range snap.Scores {
		_, err := tx.Exec(
			`INSERT INTO scores
				(session_id, thought_number, coherence, relevance, novelty, depth, clarity, overall)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			snap.SessionID, number, s.Coherence, s.Relevance, s.Novelty, s.Depth, s.Clarity, s.Overall,
		)
		if err != nil {
			return counts, fmt.Errorf("archive: insert score for thought %d: %w", number, err)
		}
		counts.Scores++
	}

	return counts, nil
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func nullableInt(v int) any {
	if v == 0 {
		return nil
	}
	return v
}

func nullableString(v string) any {
	if v == "" {
		return nil
	}
	return v
}

func joinInts(values []int) string {
	out := ""
	for i, v := range values {
		if i > 0 {
			out += ","
		}
		out += fmt.Sprintf("%d", v)
	}
	return out
}
