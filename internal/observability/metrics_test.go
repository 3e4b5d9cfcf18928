package observability

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/danmuck/sepdata/internal/testutil/testlog"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRegisterMetricsAndRecordersAreSafe(t *testing.T) {
	testlog.Start(t)
	RegisterMetrics()
	RegisterMetrics()

	before := testutil.ToFloat64(skippedBytes.WithLabelValues("test-reader"))
	RecordPacket("test-reader", 16)
	RecordInvalidPacket("test-reader")
	RecordSkippedBytes("test-reader", 5)
	RecordWouldBlock("test-reader")
	RecordHTTPRequest("GET", "/healthz", 200, 3*time.Millisecond)

	if got := testutil.ToFloat64(skippedBytes.WithLabelValues("test-reader")) - before; got != 5 {
		t.Fatalf("skipped bytes delta = %v, want 5", got)
	}
	if got := testutil.ToFloat64(invalidPackets.WithLabelValues("test-reader")); got < 1 {
		t.Fatalf("invalid packets = %v", got)
	}
}

func TestHandlerServesMetricsAndHealth(t *testing.T) {
	testlog.Start(t)
	RecordPacket("handler-reader", 24)
	srv := httptest.NewServer(Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/healthz")
	if err != nil {
		t.Fatalf("healthz: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("healthz status %d", resp.StatusCode)
	}

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body := rec.Body.String()
	if !strings.Contains(body, `sepd_reader_packets_total{reader="handler-reader"}`) {
		t.Fatalf("metrics output missing packet counter")
	}
	if !strings.Contains(body, `sepd_http_requests_total{method="GET",path="/healthz",status="200"}`) {
		t.Fatalf("metrics output missing http counter")
	}
}
