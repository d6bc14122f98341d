// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package knowledge persists nuclide facts and computed results and
// builds a retrieval index over them. It is a cache, not a database of
// record: every calculation entry can be reproduced from its inputs.
package knowledge

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/nuclide-engine/pkg/types"
)

const (
	factsDir = "facts"
	indexDir = "index"
	dbFile   = "nuclide.db"
)

// Store manages the knowledge base SQLite database.
type Store struct {
	db           *sql.DB
	knowledgeDir string
	maxResults   int
}

// NewStore opens or creates the knowledge base SQLite database at
// knowledgeDir/index/nuclide.db, creating the schema if needed.
func NewStore(cfg types.KnowledgeBaseConfig) (*Store, error) {
	dbDir := filepath.Join(cfg.KnowledgeDir, indexDir)
	if err := os.MkdirAll(dbDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating index directory: %w", err)
	}

	dbPath := filepath.Join(dbDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 20
	}

	s := &Store{
		db:           db,
		knowledgeDir: cfg.KnowledgeDir,
		maxResults:   maxResults,
	}

	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS nuclides (
			id TEXT PRIMARY KEY,
			atomic_number INTEGER,
			mass_number INTEGER,
			symbol TEXT,
			name TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS facts (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			id TEXT NOT NULL UNIQUE,
			kind TEXT NOT NULL,
			nuclide_id TEXT NOT NULL REFERENCES nuclides(id),
			content TEXT NOT NULL,
			source TEXT,
			confidence REAL,
			tags TEXT,
			created_at TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_facts_nuclide_id ON facts(nuclide_id)`,
		`CREATE INDEX IF NOT EXISTS idx_facts_kind ON facts(kind)`,
		`CREATE TABLE IF NOT EXISTS ingest_status (
			file TEXT PRIMARY KEY,
			file_mod_time TEXT
		)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}

	// FTS5 virtual table with triggers for sync.
	var ftsExists int
	if err := s.db.QueryRow(
		`SELECT count(*) FROM sqlite_master WHERE type='table' AND name='facts_fts'`,
	).Scan(&ftsExists); err != nil {
		return fmt.Errorf("checking FTS table: %w", err)
	}

	if ftsExists == 0 {
		ftsStatements := []string{
			`CREATE VIRTUAL TABLE facts_fts USING fts5(content, content=facts, content_rowid=rowid)`,
			`CREATE TRIGGER facts_ai AFTER INSERT ON facts BEGIN
				INSERT INTO facts_fts(rowid, content) VALUES (new.rowid, new.content);
			END`,
			`CREATE TRIGGER facts_ad AFTER DELETE ON facts BEGIN
				INSERT INTO facts_fts(facts_fts, rowid, content) VALUES('delete', old.rowid, old.content);
			END`,
			`CREATE TRIGGER facts_au AFTER UPDATE ON facts BEGIN
				INSERT INTO facts_fts(facts_fts, rowid, content) VALUES('delete', old.rowid, old.content);
				INSERT INTO facts_fts(rowid, content) VALUES (new.rowid, new.content);
			END`,
		}
		for _, stmt := range ftsStatements {
			if _, err := s.db.Exec(stmt); err != nil {
				return fmt.Errorf("creating FTS infrastructure: %w", err)
			}
		}
	}

	return nil
}

// RecordCalculation caches one engine result as a calculation fact. The
// payload is stored JSON-encoded so Retrieve can full-text match on
// field names and values.
func (s *Store) RecordCalculation(ctx context.Context, n types.Nuclide, id string, payload any, confidence float64, tags []string) error {
	content, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encoding result payload: %w", err)
	}
	fact := types.Fact{
		ID:         id,
		Kind:       types.FactCalculation,
		Nuclide:    n.String(),
		Content:    string(content),
		Source:     "engine",
		Confidence: confidence,
		Tags:       tags,
	}
	return s.insertFacts(ctx, n, []types.Fact{fact})
}

// RecordReference caches an external data response as a reference fact
// with the given provenance source.
func (s *Store) RecordReference(ctx context.Context, n types.Nuclide, id string, payload any, source string, tags []string) error {
	content, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encoding reference payload: %w", err)
	}
	fact := types.Fact{
		ID:         id,
		Kind:       types.FactReference,
		Nuclide:    n.String(),
		Content:    string(content),
		Source:     source,
		Confidence: 0.95,
		Tags:       tags,
	}
	return s.insertFacts(ctx, n, []types.Fact{fact})
}

// IngestSummary holds counts from a knowledge base ingest run.
type IngestSummary struct {
	Indexed int
	Updated int
	Skipped int
	Failed  int
}

// Total returns the number of fact files processed.
func (s IngestSummary) Total() int {
	return s.Indexed + s.Updated + s.Skipped + s.Failed
}

// Ingest reads fact YAML files from knowledgeDir/facts/ and populates
// the database. It detects new, changed, and unchanged files by
// mod-time for incremental updates. On success it writes export.yaml.
func (s *Store) Ingest(ctx context.Context, w io.Writer) (IngestSummary, error) {
	dir := filepath.Join(s.knowledgeDir, factsDir)

	entries, err := os.ReadDir(dir)
	if err != nil {
		return IngestSummary{}, fmt.Errorf("reading facts directory %s: %w", dir, err)
	}

	var summary IngestSummary

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}

		select {
		case <-ctx.Done():
			return summary, ctx.Err()
		default:
		}

		name := entry.Name()
		filePath := filepath.Join(dir, name)

		info, err := entry.Info()
		if err != nil {
			fmt.Fprintf(w, "failed  %s: %v\n", name, err)
			summary.Failed++
			continue
		}
		modTime := info.ModTime().UTC().Format(time.RFC3339Nano)

		var storedModTime string
		err = s.db.QueryRowContext(ctx,
			`SELECT file_mod_time FROM ingest_status WHERE file = ?`, name,
		).Scan(&storedModTime)

		if err == nil && storedModTime == modTime {
			fmt.Fprintf(w, "skipped %s\n", name)
			summary.Skipped++
			continue
		}

		isUpdate := err == nil

		data, err := os.ReadFile(filePath)
		if err != nil {
			fmt.Fprintf(w, "failed  %s: %v\n", name, err)
			summary.Failed++
			continue
		}

		var ff types.FactFile
		if err := yaml.Unmarshal(data, &ff); err != nil {
			fmt.Fprintf(w, "failed  %s: parse error: %v\n", name, err)
			summary.Failed++
			continue
		}

		if err := s.ingestFile(ctx, name, &ff, modTime); err != nil {
			fmt.Fprintf(w, "failed  %s: %v\n", name, err)
			summary.Failed++
			continue
		}

		if isUpdate {
			fmt.Fprintf(w, "updated %s (%d facts)\n", name, len(ff.Facts))
			summary.Updated++
		} else {
			fmt.Fprintf(w, "indexing %s (%d facts)\n", name, len(ff.Facts))
			summary.Indexed++
		}
	}

	fmt.Fprintf(w, "\nindexed: %d, updated: %d, skipped: %d, failed: %d\n",
		summary.Indexed, summary.Updated, summary.Skipped, summary.Failed)

	if summary.Indexed > 0 || summary.Updated > 0 {
		if err := s.ExportYAML(ctx, QueryOptions{}); err != nil {
			fmt.Fprintf(w, "warning: export.yaml write failed: %v\n", err)
		}
	}

	return summary, nil
}

func (s *Store) ingestFile(ctx context.Context, file string, ff *types.FactFile, modTime string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	// Update in place on id conflict; a REPLACE would delete-and-insert
	// without firing facts_ad, stranding stale rows in facts_fts.
	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO facts (id, kind, nuclide_id, content, source, confidence, tags, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
			kind=excluded.kind, nuclide_id=excluded.nuclide_id,
			content=excluded.content, source=excluded.source,
			confidence=excluded.confidence, tags=excluded.tags,
			created_at=excluded.created_at`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	now := time.Now().UTC().Format(time.RFC3339)
	for _, fact := range ff.Facts {
		if fact.ID == "" || fact.Nuclide == "" {
			return fmt.Errorf("fact missing id or nuclide")
		}
		source := fact.Source
		if source == "" {
			source = ff.Source
		}

		if _, err := tx.ExecContext(ctx,
			`INSERT OR IGNORE INTO nuclides (id) VALUES (?)`, fact.Nuclide,
		); err != nil {
			return fmt.Errorf("inserting nuclide stub: %w", err)
		}

		tagsJSON, _ := json.Marshal(fact.Tags)
		if _, err := stmt.ExecContext(ctx,
			fact.ID, string(fact.Kind), fact.Nuclide, fact.Content,
			source, fact.Confidence, string(tagsJSON), now,
		); err != nil {
			return fmt.Errorf("inserting fact %s: %w", fact.ID, err)
		}
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO ingest_status (file, file_mod_time) VALUES (?, ?)
		 ON CONFLICT(file) DO UPDATE SET file_mod_time=excluded.file_mod_time`,
		file, modTime,
	); err != nil {
		return fmt.Errorf("updating ingest status: %w", err)
	}

	return tx.Commit()
}

// insertFacts upserts the nuclide record and a batch of facts outside
// the file-ingest path.
func (s *Store) insertFacts(ctx context.Context, n types.Nuclide, facts []types.Fact) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO nuclides (id, atomic_number, mass_number, symbol)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
			atomic_number=excluded.atomic_number,
			mass_number=excluded.mass_number,
			symbol=excluded.symbol`,
		n.String(), n.Z, n.A, n.Symbol(),
	); err != nil {
		return fmt.Errorf("upserting nuclide: %w", err)
	}

	now := time.Now().UTC().Format(time.RFC3339)
	for _, fact := range facts {
		tagsJSON, _ := json.Marshal(fact.Tags)
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO facts (id, kind, nuclide_id, content, source, confidence, tags, created_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)
			 ON CONFLICT(id) DO UPDATE SET
				kind=excluded.kind, nuclide_id=excluded.nuclide_id,
				content=excluded.content, source=excluded.source,
				confidence=excluded.confidence, tags=excluded.tags,
				created_at=excluded.created_at`,
			fact.ID, string(fact.Kind), fact.Nuclide, fact.Content,
			fact.Source, fact.Confidence, string(tagsJSON), now,
		); err != nil {
			return fmt.Errorf("inserting fact %s: %w", fact.ID, err)
		}
	}

	return tx.Commit()
}
