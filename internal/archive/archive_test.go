package archive

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/noema-dev/noema/internal/session"
)

func buildSnapshot(t *testing.T) session.Export {
	t.Helper()
	state := session.New(3, 6)
	state.Process(session.Thought{
		Thought:           "caching reduces database pressure",
		ThoughtNumber:     1,
		TotalThoughts:     2,
		NextThoughtNeeded: true,
	})
	state.Process(session.Thought{
		Thought:           "therefore caching pays off under load",
		ThoughtNumber:     2,
		TotalThoughts:     2,
		BranchFromThought: 1,
		BranchID:          "alt",
	})
	return state.Export()
}

func countRows(t *testing.T, db *sql.DB, table string) int {
	t.Helper()
	var n int
	if err := db.QueryRow(fmt.Sprintf("SELECT COUNT(*) FROM %s", table)).Scan(&n); err != nil {
		t.Fatalf("counting %s: %v", table, err)
	}
	return n
}

func TestExport_WritesReadableDatabase(t *testing.T) {
	snap := buildSnapshot(t)
	writer := NewWriter(t.TempDir())

	path, counts, err := writer.Export(snap)
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	if !strings.Contains(filepath.Base(path), snap.SessionID) {
		t.Errorf("archive name %q does not carry the session id", path)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("reopening archive: %v", err)
	}
	defer db.Close()

	if got := countRows(t, db, "sessions"); got != 1 {
		t.Errorf("session rows = %d, want 1", got)
	}
	if got := countRows(t, db, "thoughts"); got != counts.Thoughts {
		t.Errorf("thought rows = %d, counts say %d", got, counts.Thoughts)
	}
	if got := countRows(t, db, "concepts"); got != counts.Concepts {
		t.Errorf("concept rows = %d, counts say %d", got, counts.Concepts)
	}
	if got := countRows(t, db, "relationships"); got != counts.Relationships {
		t.Errorf("relationship rows = %d, counts say %d", got, counts.Relationships)
	}
	if got := countRows(t, db, "scores"); got != counts.Scores {
		t.Errorf("score rows = %d, counts say %d", got, counts.Scores)
	}

	if counts.Thoughts != 2 || counts.Scores != 2 {
		t.Errorf("counts = %+v, want 2 thoughts and 2 scores", counts)
	}
	if counts.Concepts == 0 || counts.Relationships == 0 {
		t.Errorf("counts = %+v, want a populated graph", counts)
	}
}

func TestExport_ThoughtColumns(t *testing.T) {
	snap := buildSnapshot(t)
	writer := NewWriter(t.TempDir())

	path, _, err := writer.Export(snap)
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("reopening archive: %v", err)
	}
	defer db.Close()

	var content string
	var branchID sql.NullString
	var branchFrom sql.NullInt64
	err = db.QueryRow(
		`SELECT content, branch_id, branch_from_thought FROM thoughts WHERE thought_number = 2`,
	).Scan(&content, &branchID, &branchFrom)
	if err != nil {
		t.Fatalf("reading thought row: %v", err)
	}
	if content != "therefore caching pays off under load" {
		t.Errorf("content = %q", content)
	}
	if !branchID.Valid || branchID.String != "alt" {
		t.Errorf("branch_id = %+v, want alt", branchID)
	}
	if !branchFrom.Valid || branchFrom.Int64 != 1 {
		t.Errorf("branch_from_thought = %+v, want 1", branchFrom)
	}

	err = db.QueryRow(
		`SELECT branch_id FROM thoughts WHERE thought_number = 1`,
	).Scan(&branchID)
	if err != nil {
		t.Fatalf("reading first thought row: %v", err)
	}
	if branchID.Valid {
		t.Errorf("branch_id = %+v, want NULL for a non-branch thought", branchID)
	}
}

func TestExport_CreatesDataDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	writer := NewWriter(dir)

	path, _, err := writer.Export(buildSnapshot(t))
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("archive file missing: %v", err)
	}
}

func TestExport_OpenFailure(t *testing.T) {
	orig := openDB
	openDB = func(driver, dsn string) (*sql.DB, error) {
		return nil, fmt.Errorf("injected open failure")
	}
	defer func() { openDB = orig }()

	writer := NewWriter(t.TempDir())
	_, _, err := writer.Export(buildSnapshot(t))
	if err == nil || !strings.Contains(err.Error(), "injected open failure") {
		t.Errorf("err = %v, want the injected failure wrapped", err)
	}
}
