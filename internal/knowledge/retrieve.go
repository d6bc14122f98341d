// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package knowledge

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pdiddy/nuclide-engine/pkg/types"
)

// QueryOptions holds parameters for knowledge base queries.
type QueryOptions struct {
	// Query is the FTS5 full-text search string.
	Query string

	// Kind filters by FactKind.
	Kind types.FactKind

	// Tags filters by one or more tags with AND semantics.
	Tags []string

	// Nuclide filters by nuclide identifier ("U-235").
	Nuclide string

	// MaxResults limits result count. Zero uses the store default.
	MaxResults int
}

// IsEmpty reports whether the query has no search terms or filters.
func (q QueryOptions) IsEmpty() bool {
	return q.Query == "" && q.Kind == "" && len(q.Tags) == 0 && q.Nuclide == ""
}

// QueryResult is a Fact with its creation time.
type QueryResult struct {
	types.Fact
	CreatedAt string `json:"created_at" yaml:"created_at"`
}

// Retrieve queries the knowledge base with optional full-text search
// and structured filters. Results are ranked by relevance for full-text
// queries or sorted by nuclide and id for structured-only queries.
func (s *Store) Retrieve(ctx context.Context, opts QueryOptions) ([]QueryResult, error) {
	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = s.maxResults
	}

	var (
		qb     strings.Builder
		args   []any
		useFTS = opts.Query != ""
	)

	if useFTS {
		qb.WriteString(
			`SELECT f.id, f.kind, f.nuclide_id, f.content, f.source,
				f.confidence, f.tags, f.created_at, facts_fts.rank
			FROM facts_fts
			JOIN facts f ON f.rowid = facts_fts.rowid
			WHERE facts_fts MATCH ?`)
		args = append(args, opts.Query)
	} else {
		qb.WriteString(
			`SELECT f.id, f.kind, f.nuclide_id, f.content, f.source,
				f.confidence, f.tags, f.created_at, 0 AS rank
			FROM facts f
			WHERE 1=1`)
	}

	if opts.Kind != "" {
		qb.WriteString(` AND f.kind = ?`)
		args = append(args, string(opts.Kind))
	}

	if opts.Nuclide != "" {
		qb.WriteString(` AND f.nuclide_id = ?`)
		args = append(args, opts.Nuclide)
	}

	for _, tag := range opts.Tags {
		qb.WriteString(` AND EXISTS (SELECT 1 FROM json_each(f.tags) WHERE value = ?)`)
		args = append(args, tag)
	}

	if useFTS {
		qb.WriteString(` ORDER BY facts_fts.rank`)
	} else {
		qb.WriteString(` ORDER BY f.nuclide_id, f.id`)
	}

	qb.WriteString(` LIMIT ?`)
	args = append(args, maxResults)

	rows, err := s.db.QueryContext(ctx, qb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("querying knowledge base: %w", err)
	}
	defer rows.Close()

	var results []QueryResult
	for rows.Next() {
		var (
			qr        QueryResult
			kind      string
			source    sql.NullString
			tagsJSON  sql.NullString
			createdAt sql.NullString
			rank      float64
		)

		if err := rows.Scan(
			&qr.ID, &kind, &qr.Nuclide, &qr.Content, &source,
			&qr.Confidence, &tagsJSON, &createdAt, &rank,
		); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}

		qr.Kind = types.FactKind(kind)

		if source.Valid {
			qr.Source = source.String
		}
		if tagsJSON.Valid {
			json.Unmarshal([]byte(tagsJSON.String), &qr.Tags)
		}
		if createdAt.Valid {
			qr.CreatedAt = createdAt.String
		}

		results = append(results, qr)
	}

	return results, rows.Err()
}

// Show returns the full fact for a given ID. Retrieve output truncates
// content for table display; Show is the expansion path.
func (s *Store) Show(ctx context.Context, factID string) (*QueryResult, error) {
	var (
		qr        QueryResult
		kind      string
		source    sql.NullString
		tagsJSON  sql.NullString
		createdAt sql.NullString
	)

	err := s.db.QueryRowContext(ctx,
		`SELECT id, kind, nuclide_id, content, source, confidence, tags, created_at
		 FROM facts WHERE id = ?`, factID,
	).Scan(&qr.ID, &kind, &qr.Nuclide, &qr.Content, &source, &qr.Confidence, &tagsJSON, &createdAt)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("fact %s not found", factID)
		}
		return nil, fmt.Errorf("looking up fact: %w", err)
	}

	qr.Kind = types.FactKind(kind)
	if source.Valid {
		qr.Source = source.String
	}
	if tagsJSON.Valid {
		json.Unmarshal([]byte(tagsJSON.String), &qr.Tags)
	}
	if createdAt.Valid {
		qr.CreatedAt = createdAt.String
	}

	return &qr, nil
}
