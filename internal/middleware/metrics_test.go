package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_RouteAndRole(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Metrics)
	r.With(Actor).Post("/api/seller/orders/{order_id}/accept", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
	})

	const route = "/api/seller/orders/{order_id}/accept"
	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodPost, route, "409", "SELLER"))
	anonymous := testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodPost, route, "401", "none"))

	req := httptest.NewRequest(http.MethodPost, "/api/seller/orders/ORD-1/accept", nil)
	req.Header.Set(HeaderActorID, "s1")
	req.Header.Set(HeaderActorRole, "SELLER")
	r.ServeHTTP(httptest.NewRecorder(), req)

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/seller/orders/ORD-2/accept", nil))

	assert.Equal(t, before+1, testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodPost, route, "409", "SELLER")))
	assert.Equal(t, anonymous+1, testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodPost, route, "401", "none")))
}

func TestWithActorSlot_Reuses(t *testing.T) {
	req, first := withActorSlot(httptest.NewRequest(http.MethodGet, "/", nil))
	_, second := withActorSlot(req)

	assert.Same(t, first, second)
}
