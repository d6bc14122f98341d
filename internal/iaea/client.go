// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package iaea fetches nuclide records from the IAEA Nuclear Data
// Services Livechart API. The service returns CSV; an unreachable or
// erroring service is a reported outcome, not a fatal condition — the
// engine's own dataset remains the fallback.
package iaea

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/pdiddy/nuclide-engine/internal/httputil"
	"github.com/pdiddy/nuclide-engine/pkg/types"
)

// apiBase is the NDS Livechart endpoint. Declared as a var so tests can
// substitute an httptest server.
var apiBase = "https://nds.iaea.org/relnsd/v1/data"

// Field names accepted by the NDS API.
const (
	FieldLevels = "levels"
	FieldDecay  = "decay_rads"
	FieldGammas = "gammas"
	FieldGround = "ground_states"
)

// Record is a parsed NDS CSV response.
type Record struct {
	Nuclide string `json:"nuclide" yaml:"nuclide"`

	// NuclideID is the NDS identifier form, e.g. "235u".
	NuclideID string `json:"nuclide_id" yaml:"nuclide_id"`

	Field   string     `json:"field" yaml:"field"`
	Headers []string   `json:"headers" yaml:"headers"`
	Rows    [][]string `json:"rows" yaml:"rows"`

	// Raw preserves the response body for single-value replies the CSV
	// parser cannot table-ize (the API returns bare record counts for
	// some field/nuclide combinations).
	Raw string `json:"raw,omitempty" yaml:"raw,omitempty"`
}

// Client queries the NDS API.
type Client struct {
	HTTP *http.Client
	Cfg  types.FetchConfig
}

// Fetch requests one field for one nuclide. The NDS identifier is the
// mass number followed by the lower-cased element symbol ("235u").
func (c *Client) Fetch(ctx context.Context, n types.Nuclide, field string) (*Record, error) {
	id := fmt.Sprintf("%d%s", n.A, strings.ToLower(n.Symbol()))
	url := fmt.Sprintf("%s?fields=%s&nuclides=%s", apiBase, field, id)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.Cfg.UserAgent)

	resp, err := httputil.DoWithRetry(ctx, c.HTTP, req, c.Cfg.MaxRetries)
	if err != nil {
		return nil, fmt.Errorf("NDS request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("NDS API returned HTTP %d for %s", resp.StatusCode, n)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading NDS response: %w", err)
	}

	rec := &Record{
		Nuclide:   n.String(),
		NuclideID: id,
		Field:     field,
	}
	parseCSV(rec, string(body))
	return rec, nil
}

// parseCSV splits an NDS reply into headers and rows. A reply with a
// single line carries no table; it is kept verbatim in Raw.
func parseCSV(rec *Record, body string) {
	var lines []string
	for _, line := range strings.Split(body, "\n") {
		if s := strings.TrimSpace(line); s != "" {
			lines = append(lines, s)
		}
	}

	if len(lines) < 2 {
		rec.Raw = strings.TrimSpace(body)
		return
	}

	rec.Headers = strings.Split(lines[0], ",")
	for _, line := range lines[1:] {
		rec.Rows = append(rec.Rows, strings.Split(line, ","))
	}
}
