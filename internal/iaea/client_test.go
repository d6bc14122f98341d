// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package iaea

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/nuclide-engine/pkg/types"
)

const groundStatesCSV = `z,n,symbol,half_life_sec,decay_1
92,143,U,2.221E16,A
`

func testClient() *Client {
	cfg := types.FetchConfig{MaxRetries: 1}
	cfg.Timeout = 5 * time.Second
	cfg.UserAgent = "nuclide-engine/test"
	return &Client{
		HTTP: &http.Client{Timeout: cfg.Timeout},
		Cfg:  cfg,
	}
}

// withServer points the package at an httptest server for one test.
func withServer(t *testing.T, handler http.HandlerFunc) {
	t.Helper()
	ts := httptest.NewServer(handler)
	old := apiBase
	apiBase = ts.URL
	t.Cleanup(func() {
		apiBase = old
		ts.Close()
	})
}

func TestFetchParsesCSV(t *testing.T) {
	var gotQuery string
	withServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		fmt.Fprint(w, groundStatesCSV)
	})

	rec, err := testClient().Fetch(context.Background(), types.Nuclide{Z: 92, A: 235}, FieldGround)
	require.NoError(t, err)

	assert.Equal(t, "fields=ground_states&nuclides=235u", gotQuery)
	assert.Equal(t, "U-235", rec.Nuclide)
	assert.Equal(t, "235u", rec.NuclideID)
	assert.Equal(t, []string{"z", "n", "symbol", "half_life_sec", "decay_1"}, rec.Headers)
	require.Len(t, rec.Rows, 1)
	assert.Equal(t, "2.221E16", rec.Rows[0][3])
	assert.Empty(t, rec.Raw)
}

func TestFetchKeepsBareReplies(t *testing.T) {
	// Some field/nuclide combinations answer with a bare record count
	// instead of a CSV table.
	withServer(t, func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, "0\n")
	})

	rec, err := testClient().Fetch(context.Background(), types.Nuclide{Z: 94, A: 239}, FieldGammas)
	require.NoError(t, err)

	assert.Empty(t, rec.Headers)
	assert.Equal(t, "0", rec.Raw)
}

func TestFetchSendsUserAgent(t *testing.T) {
	var gotUA string
	withServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		fmt.Fprint(w, groundStatesCSV)
	})

	_, err := testClient().Fetch(context.Background(), types.Nuclide{Z: 92, A: 238}, FieldGround)
	require.NoError(t, err)
	assert.Equal(t, "nuclide-engine/test", gotUA)
}

func TestFetchHTTPError(t *testing.T) {
	withServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := testClient().Fetch(context.Background(), types.Nuclide{Z: 92, A: 235}, FieldLevels)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}
