package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schedsim/schedsim/sim"
)

func postJSON(t *testing.T, app *fiber.App, path string, body any) *http.Response {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func convoyRequest() map[string]any {
	return map[string]any{
		"quantum": 4,
		"processes": []map[string]any{
			{"id": "P1", "arrival_time": 0, "burst_time": 24},
			{"id": "P2", "arrival_time": 1, "burst_time": 3},
			{"id": "P3", "arrival_time": 2, "burst_time": 3},
		},
	}
}

func TestHealthz(t *testing.T) {
	app := New()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestSchedule_SinglePolicy(t *testing.T) {
	app := New()
	resp := postJSON(t, app, "/api/v1/schedule/fcfs", convoyRequest())
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result sim.Result
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &result))

	assert.Equal(t, sim.PolicyFCFS, result.Policy)
	require.NotEmpty(t, result.Segments)
	assert.Equal(t, sim.Segment{Label: "P1", Start: 0, End: 24}, result.Segments[0])
	assert.InDelta(t, 16.0, result.Report.AvgWaiting, 1e-9)
	assert.Equal(t, int64(30), result.Report.Makespan)
}

func TestSchedule_AllPolicies(t *testing.T) {
	app := New()
	resp := postJSON(t, app, "/api/v1/schedule", convoyRequest())
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var results []sim.Result
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &results))

	require.Len(t, results, len(sim.ValidPolicies))
	for _, res := range results {
		assert.True(t, sim.ValidPolicies[res.Policy], "unknown policy %q in response", res.Policy)
		assert.Equal(t, int64(30), res.Report.BusyTime, "%s must account for every burst tick", res.Policy)
	}
}

func TestSchedule_UnknownPolicy(t *testing.T) {
	app := New()
	resp := postJSON(t, app, "/api/v1/schedule/lottery", convoyRequest())
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSchedule_InvalidWorkload(t *testing.T) {
	app := New()
	body := map[string]any{
		"processes": []map[string]any{
			{"id": "P1", "arrival_time": 0, "burst_time": 0},
		},
	}
	resp := postJSON(t, app, "/api/v1/schedule/fcfs", body)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var payload map[string]string
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &payload))
	assert.Contains(t, payload["error"], "burst time")
}

func TestSchedule_MalformedBody(t *testing.T) {
	app := New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/schedule/fcfs", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
