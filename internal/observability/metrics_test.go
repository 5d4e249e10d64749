package observability

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetricsCount(t *testing.T) {
	m := NewMetrics()
	m.ResultRecorded("reaction")
	m.ResultRecorded("reaction")
	m.PersonalityRecorded("INTJ")
	m.ObserveReport(time.Now())

	if got := testutil.ToFloat64(m.resultsRecorded.WithLabelValues("reaction")); got != 2 {
		t.Fatalf("results = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.personalityTypes.WithLabelValues("INTJ")); got != 1 {
		t.Fatalf("types = %v, want 1", got)
	}

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	body, _ := io.ReadAll(rec.Body)
	if !strings.Contains(string(body), `cognition_results_recorded_total{game_id="reaction"} 2`) {
		t.Fatalf("exposition missing counter:\n%s", body)
	}
}

func TestNilMetrics(t *testing.T) {
	var m *Metrics
	m.ResultRecorded("x")
	m.PersonalityRecorded("x")
	m.ObserveReport(time.Now())
}
