package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nrgchamp/sensormon/internal/pipeline"
)

func TestHealthzReturnsOK(t *testing.T) {
	coord := pipeline.New(pipeline.Deps{})
	router := NewRouter(coord)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestStatsReflectsProcessedRecords(t *testing.T) {
	coord := pipeline.New(pipeline.Deps{})
	coord.ProcessRecord("serial:S1 type:temp temp:22")
	router := NewRouter(coord)

	req := httptest.NewRequest(http.MethodGet, "/stats", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"RecordsProcessed":1`)
}

func TestAlertsEndpointRespondsOK(t *testing.T) {
	coord := pipeline.New(pipeline.Deps{})
	router := NewRouter(coord)

	req := httptest.NewRequest(http.MethodGet, "/alerts", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
