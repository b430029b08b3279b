package app

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"job-dash/internal/config"
	"job-dash/internal/middleware"
	"job-dash/internal/service/search"
)

const rawCSV = `Uniq Id,Crawl Timestamp,Job Title,Location
1,2019-07-05,Data Engineer,Pune
2,2019-07-05,Data Engineer,Pune
3,2019-07-06,Sales Manager,
`

const processedCSV = `Job Title,Location,Job Salary,Key Skills,Role Category,Job Experience Required
Data Engineer,Pune,"5,00,000 PA",SQL| Python,Programming,2 - 5 yrs
Data Analyst,Mumbai,Not Disclosed by Recruiter,Excel,Analytics,0 - 1 yrs
Sales Manager,Pune,"3,00,000 PA",Sales,Retail,5 - 8 yrs
`

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	raw := filepath.Join(dir, "data.csv")
	processed := filepath.Join(dir, "processed_data.csv")
	require.NoError(t, os.WriteFile(raw, []byte(rawCSV), 0o600))
	require.NoError(t, os.WriteFile(processed, []byte(processedCSV), 0o600))

	return &config.Config{
		ListenAddr:         "127.0.0.1:0",
		RawDataPath:        raw,
		ProcessedDataPath:  processed,
		Dataset:            config.DefaultDataset(),
		SearchEmptyPattern: search.EmptyAsAbsent,
		TableCache:         true,
		RateLimitRPS:       1000,
		RateLimitBurst:     1000,
		CORSAllowedOrigins: []string{"https://example.com"},
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNew_TableCache(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		cache     bool
		wantCache bool
	}{
		{name: "enabled", cache: true, wantCache: true},
		{name: "disabled", cache: false, wantCache: false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			cfg := testConfig(t)
			cfg.TableCache = tc.cache
			a := New(Deps{Cfg: cfg, Logger: testLogger()})
			assert.Equal(t, tc.wantCache, a.Cache != nil)
			assert.Equal(t, []string{"Uniq Id", "Crawl Timestamp"}, a.Loader.Prune)
		})
	}
}

func TestRouter_EndToEnd(t *testing.T) {
	t.Parallel()
	a := New(Deps{Cfg: testConfig(t), Logger: testLogger()})
	srv := httptest.NewServer(a.NewRouter(middleware.NewRateLimiter(middleware.RateLimitConfig{RequestsPerSecond: 1000, Burst: 1000})))
	t.Cleanup(srv.Close)

	client := &http.Client{CheckRedirect: func(*http.Request, []*http.Request) error { return http.ErrUseLastResponse }}

	t.Run("root_redirects_to_ui", func(t *testing.T) {
		resp, err := client.Get(srv.URL + "/")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusFound, resp.StatusCode)
		assert.Equal(t, "/ui", resp.Header.Get("Location"))
	})

	t.Run("overview_prunes_identifiers", func(t *testing.T) {
		resp, err := client.Get(srv.URL + "/api/v1/overview")
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.NotEmpty(t, resp.Header.Get(middleware.RequestIDHeader))

		var body struct {
			Rows    int `json:"rows"`
			Columns int `json:"columns"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, 3, body.Rows)
		assert.Equal(t, 2, body.Columns)
	})

	t.Run("search", func(t *testing.T) {
		resp, err := client.Get(srv.URL + "/api/v1/search?title=data&location=pune")
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var body struct {
			Message   string `json:"message"`
			Positions []int  `json:"positions"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "Found 1 jobs", body.Message)
		assert.Equal(t, []int{0}, body.Positions)
	})

	t.Run("cors_on_api", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodGet, srv.URL+"/api/v1/health", nil)
		require.NoError(t, err)
		req.Header.Set("Origin", "https://example.com")
		resp, err := client.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, "https://example.com", resp.Header.Get("Access-Control-Allow-Origin"))
	})

	t.Run("ui_pages", func(t *testing.T) {
		for _, path := range []string{"/ui", "/ui/overview", "/ui/visualizations", "/ui/search"} {
			resp, err := client.Get(srv.URL + path)
			require.NoError(t, err)
			resp.Body.Close()
			assert.Equal(t, http.StatusOK, resp.StatusCode, path)
		}
	})

	t.Run("missing_file_is_unavailable", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.ProcessedDataPath = filepath.Join(t.TempDir(), "missing.csv")
		broken := httptest.NewServer(New(Deps{Cfg: cfg, Logger: testLogger()}).NewRouter(nil))
		defer broken.Close()

		resp, err := client.Get(broken.URL + "/ui/search")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	})
}

func TestServe_StopsOnCancel(t *testing.T) {
	t.Parallel()
	a := New(Deps{Cfg: testConfig(t), Logger: testLogger()})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.Serve(ctx) }()
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}
}

func TestBrowseHost(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		listenAddr string
		want       string
	}{
		{name: "port only", listenAddr: ":8080", want: "localhost:8080"},
		{name: "ipv4 host and port", listenAddr: "127.0.0.1:8080", want: "127.0.0.1:8080"},
		{name: "wildcard ipv4", listenAddr: "0.0.0.0:8080", want: "localhost:8080"},
		{name: "wildcard ipv6", listenAddr: "[::]:8080", want: "localhost:8080"},
		{name: "ipv6 loopback", listenAddr: "[::1]:8080", want: "[::1]:8080"},
		{name: "trim host and port", listenAddr: " localhost:9090 ", want: "localhost:9090"},
		{name: "empty falls back", listenAddr: "", want: "localhost:8080"},
		{name: "malformed passes through", listenAddr: "localhost", want: "localhost"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, BrowseHost(tt.listenAddr))
		})
	}
}
