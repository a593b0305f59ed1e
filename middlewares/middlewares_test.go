package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"ClinicAdmin/metrics"

	"github.com/gin-gonic/gin"
	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(r *gin.Engine, method, path string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range header {
		req.Header[k] = v
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimiter_PerClient(t *testing.T) {
	r := gin.New()
	r.Use(NewRateLimiterMiddleware(RateLimiterConfig{RequestsPerSecond: 0.001, Burst: 2}))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 2; i++ {
		if w := serve(r, http.MethodGet, "/", nil); w.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i, w.Code)
		}
	}
	w := serve(r, http.MethodGet, "/", nil)
	if w.Code != http.StatusTooManyRequests || w.Header().Get("Retry-After") == "" {
		t.Errorf("expected 429 with Retry-After, got %d", w.Code)
	}

	other := httptest.NewRequest(http.MethodGet, "/", nil)
	other.RemoteAddr = "10.0.0.9:1234"
	w = httptest.NewRecorder()
	r.ServeHTTP(w, other)
	if w.Code != http.StatusOK {
		t.Errorf("another client should have its own bucket, got %d", w.Code)
	}
}

func TestCorsMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(CorsMiddleware(DefaultCorsConfig([]string{"http://localhost:8930"})))
	r.GET("/patients", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := serve(r, http.MethodOptions, "/patients", http.Header{"Origin": {"http://localhost:8930"}})
	if w.Code != http.StatusNoContent {
		t.Errorf("expected 204 for preflight, got %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:8930" {
		t.Errorf("unexpected allow origin %q", got)
	}

	w = serve(r, http.MethodGet, "/patients", http.Header{"Origin": {"http://evil.example"}})
	if w.Header().Get("Access-Control-Allow-Origin") != "" {
		t.Error("unknown origin must not be allowed")
	}
	if w.Header().Get("X-Frame-Options") != "deny" {
		t.Error("security headers missing")
	}
}

func TestMetrics(t *testing.T) {
	m := metrics.NewCollector("clinic")
	r := gin.New()
	r.Use(Metrics(m))
	r.GET("/bill_details/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	serve(r, http.MethodGet, "/bill_details/1", nil)
	serve(r, http.MethodGet, "/bill_details/2", nil)
	serve(r, http.MethodGet, "/nowhere", nil)

	if got := promtest.ToFloat64(m.RequestsTotal.WithLabelValues("GET", "/bill_details/:id", "200")); got != 2 {
		t.Errorf("expected 2 requests on the route template, got %v", got)
	}
	if got := promtest.ToFloat64(m.RequestsTotal.WithLabelValues("GET", "unmatched", "404")); got != 1 {
		t.Errorf("expected 1 unmatched request, got %v", got)
	}
	if got := promtest.ToFloat64(m.InFlightGauge); got != 0 {
		t.Errorf("in-flight gauge should return to 0, got %v", got)
	}
}

func TestRequestLogger(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	r := gin.New()
	r.Use(RequestLogger(zap.New(core)))
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/boom", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })

	serve(r, http.MethodGet, "/ok", nil)
	serve(r, http.MethodGet, "/boom", nil)

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("expected 2 log entries, got %d", len(entries))
	}
	if entries[0].Level != zapcore.InfoLevel || entries[1].Level != zapcore.ErrorLevel {
		t.Errorf("unexpected levels %v, %v", entries[0].Level, entries[1].Level)
	}
	if entries[1].ContextMap()["path"] != "/boom" {
		t.Errorf("unexpected fields %v", entries[1].ContextMap())
	}
}

func TestTracing_PassesThrough(t *testing.T) {
	r := gin.New()
	r.Use(Tracing())
	r.GET("/", func(c *gin.Context) {
		if c.Request.Context() == nil {
			t.Error("request context lost")
		}
		c.Status(http.StatusOK)
	})
	if w := serve(r, http.MethodGet, "/", nil); w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}
