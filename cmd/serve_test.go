package cmd

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/mycolab/genbank/models"
	"github.com/mycolab/genbank/models/dtos"
	"github.com/mycolab/genbank/models/genbank"
	"github.com/mycolab/genbank/repositories/audit"
	"github.com/mycolab/genbank/services/execution/executiontest"
	"github.com/mycolab/genbank/services/search"

	"github.com/labstack/echo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, runner *executiontest.FixtureRunner) (*echo.Echo, *Services) {
	dir := t.TempDir()

	var cfg models.Config
	cfg.Api.WorkDir = filepath.Join(dir, "work")
	cfg.Blast.Path = "/usr/local/bin/blastn"
	cfg.Blast.Database = "nt"
	cfg.Blast.WordSize = 28
	cfg.Efetch.Path = "/usr/local/bin/efetch"
	cfg.Efetch.Database = "nuccore"
	cfg.Stamp.Label = "MycoLab"
	cfg.Stamp.WithId = true
	cfg.Audit.DbPath = filepath.Join(dir, "audit.db")

	svc, err := NewServices(&cfg, runner)
	require.NoError(t, err)
	t.Cleanup(func() { svc.Close() })

	return NewServer(&cfg, svc), svc
}

func do(e *echo.Echo, method string, path string, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSONCharsetUTF8)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestServiceRoutes(t *testing.T) {
	e, _ := newTestServer(t, &executiontest.FixtureRunner{Dir: "testdata"})

	t.Run("should welcome", func(t *testing.T) {
		rec := do(e, http.MethodGet, "/", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Welcome")
		assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
	})

	t.Run("should describe the service", func(t *testing.T) {
		rec := do(e, http.MethodGet, "/service-info", "")

		require.Equal(t, http.StatusOK, rec.Code)
		var info map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &info))
		assert.Equal(t, "org.mycolab:genbank", info["id"])
	})

	t.Run("should serve the route document", func(t *testing.T) {
		rec := do(e, http.MethodGet, "/openapi.json", "")

		require.Equal(t, http.StatusOK, rec.Code)
		var document map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &document))
		paths, ok := document["paths"].(map[string]interface{})
		require.True(t, ok)
		assert.Contains(t, paths, "/sequence/query")
		assert.Contains(t, paths, "/specimen/{id}")
	})

	t.Run("should keep the caller's request id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Request-Id", "req-42")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, "req-42", rec.Header().Get("X-Request-Id"))
	})
}

func TestIdRoutes(t *testing.T) {
	e, _ := newTestServer(t, &executiontest.FixtureRunner{Dir: "testdata"})
	body := `{"sequence": "ACGT"}`

	for _, path := range []string{"/sequence", "/specimen"} {
		t.Run("should derive the id on "+path, func(t *testing.T) {
			rec := do(e, http.MethodPost, path, body)

			require.Equal(t, http.StatusOK, rec.Code)
			var id dtos.IdResponseDto
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &id))
			assert.Equal(t, search.DeriveId([]byte(body)), id.Id)
		})

		t.Run("should reject a non JSON body on "+path, func(t *testing.T) {
			rec := do(e, http.MethodPost, path, "ACGT")
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}

	t.Run("should reject other media types", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/sequence", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMETextPlain)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
	})

	for _, route := range []struct{ method, path string }{
		{http.MethodGet, "/sequence/abc"},
		{http.MethodPut, "/sequence/abc"},
		{http.MethodDelete, "/sequence/abc"},
		{http.MethodGet, "/specimen/abc"},
		{http.MethodPut, "/specimen/abc"},
		{http.MethodDelete, "/specimen/abc"},
	} {
		t.Run("should stub "+route.method+" "+route.path, func(t *testing.T) {
			rec := do(e, route.method, route.path, "")

			require.Equal(t, http.StatusNotImplemented, rec.Code)
			var dto dtos.GeneralErrorResponseDto
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dto))
			assert.Equal(t, http.StatusNotImplemented, dto.Code)
		})
	}
}

func TestQueryRoute(t *testing.T) {
	t.Run("should return the query and the best hit", func(t *testing.T) {
		e, svc := newTestServer(t, &executiontest.FixtureRunner{Dir: "testdata"})
		body := `{"sequence": ">ITS1\nACGT-ACGT", "results": 1, "match": 95, "location": false, "stamp": false}`

		rec := do(e, http.MethodPost, "/sequence/query", body)

		require.Equal(t, http.StatusOK, rec.Code)
		var results []genbank.ResultRecord
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &results))
		require.Len(t, results, 2)
		assert.Equal(t, genbank.ResultRecord{Description: "ITS1", Sequence: "ACGTACGT"}, results[0])
		assert.Equal(t, "MN123456.1 Psilocybe cubensis", results[1].Description)

		recorded, err := svc.Ledger.Get(context.Background(), search.DeriveId([]byte(body)))
		require.NoError(t, err)
		assert.Equal(t, audit.Completed, recorded.Status)
		assert.Equal(t, 8, recorded.QueryLength)
	})

	t.Run("should reject invalid queries", func(t *testing.T) {
		e, _ := newTestServer(t, &executiontest.FixtureRunner{Dir: "testdata"})

		for _, body := range []string{
			`{"clean": true}`,
			`{"sequence": "   "}`,
			`{"sequence": "ACGT", "sort_key": "pct_identity,organism"}`,
			`{"sequence": "ACGT", "sort_dir": "up"}`,
			`{"sequence": "ACGT", "filters": [{"key": "taxid"}]}`,
			`{"sequence": "ACGT", "filters": [{"key": "gaps", "min": 5, "max": 1}]}`,
			`{"sequence": "ACGT", "results": -3}`,
		} {
			rec := do(e, http.MethodPost, "/sequence/query", body)
			assert.Equal(t, http.StatusBadRequest, rec.Code, body)
		}
	})

	t.Run("should report a failed alignment as bad gateway", func(t *testing.T) {
		e, _ := newTestServer(t, &executiontest.FixtureRunner{Dir: "testdata", FailAlignment: true})

		rec := do(e, http.MethodPost, "/sequence/query", `{"sequence": "ACGT"}`)

		require.Equal(t, http.StatusBadGateway, rec.Code)
		var dto dtos.GeneralErrorResponseDto
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dto))
		require.Len(t, dto.Errors, 1)
		assert.Contains(t, dto.Errors[0].Message, "alignment failed")
	})
}

func TestPruner(t *testing.T) {
	t.Run("should be nil without a ledger", func(t *testing.T) {
		svc := &Services{}

		assert.True(t, svc.Pruner() == nil)
	})

	t.Run("should prune through the ledger", func(t *testing.T) {
		_, svc := newTestServer(t, &executiontest.FixtureRunner{Dir: "testdata"})

		pruner := svc.Pruner()

		require.NotNil(t, pruner)
		rows, err := pruner.DeleteBefore(context.Background(), time.Now())
		require.NoError(t, err)
		assert.Zero(t, rows)
	})
}
