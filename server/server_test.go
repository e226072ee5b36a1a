package server

import (
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"svm"
	"svm/config"
	"svm/debug"
	"svm/geometry"
	"svm/types"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
)

func newTestServer() *Server {
	cfg := &config.Config{
		Port:         8080,
		Udc:          12,
		BoxSizeVolts: 1,
		ShowPhases:   true,
		SweepSteps:   36,
	}
	return New(cfg, zerolog.Nop())
}

func get(s *Server, target string, header ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	w := get(newTestServer(), "/health")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestSVM(t *testing.T) {
	w := get(newTestServer(), "/api/svm?alpha=8&beta=0&udc=12")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), contentJSON)

	var r svm.Result
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &r))
	assert.Equal(t, types.Sector(1), r.Sector)
	assert.Equal(t, types.PhaseDutyCycle{U: 100, V: 0, W: 0}, r.Duty)
	assert.Equal(t, "100", r.States[0].String())
	assert.Equal(t, types.PassThrough, r.Params.OverModulation)
}

func TestSVMMsgpack(t *testing.T) {
	w := get(newTestServer(), "/api/svm?alpha=0&beta=0", "Accept", contentMsgpack)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, contentMsgpack, w.Header().Get("Content-Type"))

	var r struct {
		Sector int                  `json:"sector"`
		Duty   types.PhaseDutyCycle `json:"duty"`
	}
	dec := msgpack.NewDecoder(w.Body)
	dec.SetCustomStructTag("json")
	require.NoError(t, dec.Decode(&r))
	assert.Equal(t, 1, r.Sector)
	assert.Equal(t, types.PhaseDutyCycle{U: 50, V: 50, W: 50}, r.Duty)
}

func TestSVMBadRequest(t *testing.T) {
	s := newTestServer()
	for _, target := range []string{
		"/api/svm?udc=-12",
		"/api/svm?alpha=abc",
		"/api/svm?box=0",
		"/api/svm?overmod=clamp",
		"/api/sweep?steps=0",
		"/api/scale?width=-1",
	} {
		w := get(s, target)
		assert.Equal(t, http.StatusBadRequest, w.Code, target)
		assert.Contains(t, w.Body.String(), "error", target)
	}
}

func TestSVMOutOfRange(t *testing.T) {
	s := newTestServer()
	huge := "17" + strings.Repeat("0", 307)
	for _, target := range []string{
		"/api/svm?alpha=" + huge,
		"/api/svm?beta=-" + huge,
		"/api/svm?udc=" + huge,
		"/diagram.svg?alpha=" + huge,
		"/api/sweep?magnitude=1e300",
	} {
		w := get(s, target)
		require.Equal(t, http.StatusBadRequest, w.Code, target)
		var body map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), target)
		assert.NotEmpty(t, body["error"], target)
	}
}

// TestWriteDataEncodeFailure 编码失败时不发送 200 空响应
func TestWriteDataEncodeFailure(t *testing.T) {
	s := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/api/svm", nil)
	w := httptest.NewRecorder()
	s.writeData(w, req, http.StatusOK, map[string]float64{"t1": math.Inf(1)})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Header().Get("Content-Type"), contentJSON)
}

func TestScale(t *testing.T) {
	w := get(newTestServer(), "/api/scale?udc=12&width=840&height=680")
	require.Equal(t, http.StatusOK, w.Code)
	var s geometry.Scaling
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &s))
	assert.InDelta(t, 300.0, s.CircumscribedRadiusPx, 1e-9)
}

func TestSweep(t *testing.T) {
	w := get(newTestServer(), "/api/sweep?magnitude=5&steps=12")
	require.Equal(t, http.StatusOK, w.Code)
	var record debug.Record
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &record))
	assert.Equal(t, 12, record.Len())
	assert.Equal(t, 5.0, record.Magnitude)
}

func TestCharts(t *testing.T) {
	w := get(newTestServer(), "/charts?steps=24")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "echarts")
}

func TestDiagram(t *testing.T) {
	s := newTestServer()
	w := get(s, "/diagram.svg?alpha=3&beta=2&svm=true")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/svg+xml", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Body.String(), "<svg")

	w = get(s, "/diagram.gif")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = get(s, "/diagram.svg?udc=0")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCORS(t *testing.T) {
	w := get(newTestServer(), "/health", "Origin", "http://example.com")
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
