package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

func TestMetricsPassthrough(t *testing.T) {
	mw := Metrics(WithRegistry(prometheus.NewRegistry()))

	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		w.Write([]byte("ok"))
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))

	if rec.Code != http.StatusTeapot {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusTeapot)
	}
	if got := rec.Body.String(); got != "ok" {
		t.Errorf("body = %q, want %q", got, "ok")
	}
}

func TestMetricsRecordsRequests(t *testing.T) {
	reg := prometheus.NewRegistry()
	mw := Metrics(WithRegistry(reg))
	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/page", nil))
	}

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather() error = %v", err)
	}

	var found bool
	for _, mf := range families {
		if mf.GetName() != "sdom_http_requests_total" {
			continue
		}
		found = true
		for _, m := range mf.GetMetric() {
			if got := m.GetCounter().GetValue(); got != 3 {
				t.Errorf("requests_total = %v, want 3", got)
			}
		}
	}
	if !found {
		t.Error("sdom_http_requests_total not gathered")
	}
}

func TestMetricsPerRegistryCollectors(t *testing.T) {
	regA := prometheus.NewRegistry()
	regB := prometheus.NewRegistry()

	serve := func(mw func(http.Handler) http.Handler, n int) {
		handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))
		for i := 0; i < n; i++ {
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/p", nil))
		}
	}

	serve(Metrics(WithRegistry(regA)), 2)
	serve(Metrics(WithRegistry(regB)), 1)
	// A second middleware against an already-seen registry reuses its
	// collectors instead of panicking on duplicate registration.
	serve(Metrics(WithRegistry(regA)), 1)

	count := func(reg *prometheus.Registry) float64 {
		families, err := reg.Gather()
		if err != nil {
			t.Fatalf("Gather() error = %v", err)
		}
		var total float64
		for _, mf := range families {
			if mf.GetName() != "sdom_http_requests_total" {
				continue
			}
			for _, m := range mf.GetMetric() {
				total += m.GetCounter().GetValue()
			}
		}
		return total
	}

	if got := count(regA); got != 3 {
		t.Errorf("registry A requests_total = %v, want 3", got)
	}
	if got := count(regB); got != 1 {
		t.Errorf("registry B requests_total = %v, want 1", got)
	}
}

func TestStatusRecorderDefault(t *testing.T) {
	rec := &statusRecorder{ResponseWriter: httptest.NewRecorder(), status: http.StatusOK}
	if rec.status != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.status, http.StatusOK)
	}
	rec.WriteHeader(http.StatusNotFound)
	if rec.status != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.status, http.StatusNotFound)
	}
}
