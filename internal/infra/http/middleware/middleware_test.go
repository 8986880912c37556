package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestMetricsUsesRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Metrics)
	r.Get("/items/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/items/{id}", "418"))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/items/42", nil))

	assert.Equal(t, http.StatusTeapot, w.Code)
	after := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/items/{id}", "418"))
	assert.Equal(t, before+1, after)
}

func TestMetricsDefaultStatus(t *testing.T) {
	h := Metrics(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	}))

	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/plain", "200"))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/plain", nil))

	assert.Equal(t, before+1, testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/plain", "200")))
}

func TestGenerationMetrics(t *testing.T) {
	m := GenerationMetrics{}

	okBefore := testutil.ToFloat64(emailGenerations.WithLabelValues("success"))
	errBefore := testutil.ToFloat64(integrationErrors.WithLabelValues("azure_openai"))

	m.RecordGeneration("success")
	m.RecordIntegrationError("azure_openai")
	m.ObserveStage("subject", 300*time.Millisecond)

	assert.Equal(t, okBefore+1, testutil.ToFloat64(emailGenerations.WithLabelValues("success")))
	assert.Equal(t, errBefore+1, testutil.ToFloat64(integrationErrors.WithLabelValues("azure_openai")))
	assert.Equal(t, 1, testutil.CollectAndCount(generationStageDuration))
}

func TestRequestLogger(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)

	h := chimw.RequestID(RequestLogger(zap.New(core))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/v1/email", nil))

	entries := logs.FilterMessage("request completed").All()
	if assert.Len(t, entries, 1) {
		fields := entries[0].ContextMap()
		assert.Equal(t, "POST", fields["method"])
		assert.Equal(t, "/v1/email", fields["path"])
		assert.EqualValues(t, http.StatusCreated, fields["status"])
		assert.NotEmpty(t, fields["request_id"])
	}
}
