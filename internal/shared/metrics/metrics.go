package metrics

import (
	"bytes"
	"fmt"
	"net/http"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/gin-gonic/gin"
)

var (
	applicationsSubmittedTotal atomic.Uint64
	applicationsRejectedTotal  atomic.Uint64
	resumesStoredTotal         atomic.Uint64

	submissionDuration = newHistogram([]float64{1, 5, 10, 25, 50, 100, 250, 500, 1000, 5000})
)

// IncApplicationsSubmitted increments the accepted-submission counter.
func IncApplicationsSubmitted() {
	applicationsSubmittedTotal.Add(1)
}

// IncApplicationsRejected increments the rejected-submission counter.
func IncApplicationsRejected() {
	applicationsRejectedTotal.Add(1)
}

// IncResumesStored increments the stored-resume counter.
func IncResumesStored() {
	resumesStoredTotal.Add(1)
}

// ObserveSubmissionDurationMs records a submission duration in milliseconds.
func ObserveSubmissionDurationMs(value float64) {
	if value < 0 {
		value = 0
	}
	submissionDuration.Observe(value)
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Content-Type", "text/plain; version=0.0.4")
		c.String(http.StatusOK, Render())
	}
}

// Render renders metrics in Prometheus text format.
func Render() string {
	var buf bytes.Buffer
	writeCounter(&buf, "applications_submitted_total", "Total applications accepted", applicationsSubmittedTotal.Load())
	writeCounter(&buf, "applications_rejected_total", "Total applications rejected", applicationsRejectedTotal.Load())
	writeCounter(&buf, "resumes_stored_total", "Total resume files stored", resumesStoredTotal.Load())
	writeHistogram(&buf, "application_submission_duration_ms", "Application submission duration in milliseconds", submissionDuration.Snapshot())
	return buf.String()
}

func writeCounter(buf *bytes.Buffer, name, help string, value uint64) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s counter\n", name)
	fmt.Fprintf(buf, "%s %d\n", name, value)
}

func writeHistogram(buf *bytes.Buffer, name, help string, snap histogramSnapshot) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s histogram\n", name)
	cumulative := uint64(0)
	for i, bound := range snap.bounds {
		cumulative += snap.counts[i]
		fmt.Fprintf(buf, "%s_bucket{le=\"%g\"} %d\n", name, bound, cumulative)
	}
	cumulative += snap.overflow
	fmt.Fprintf(buf, "%s_bucket{le=\"+Inf\"} %d\n", name, cumulative)
	fmt.Fprintf(buf, "%s_sum %g\n", name, snap.sum)
	fmt.Fprintf(buf, "%s_count %d\n", name, cumulative)
}

type histogram struct {
	mu       sync.Mutex
	bounds   []float64
	counts   []uint64
	overflow uint64
	sum      float64
}

type histogramSnapshot struct {
	bounds   []float64
	counts   []uint64
	overflow uint64
	sum      float64
}

func newHistogram(bounds []float64) *histogram {
	sorted := append([]float64(nil), bounds...)
	sort.Float64s(sorted)
	return &histogram{
		bounds: sorted,
		counts: make([]uint64, len(sorted)),
	}
}

func (h *histogram) Observe(value float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.sum += value
	for i, bound := range h.bounds {
		if value <= bound {
			h.counts[i]++
			return
		}
	}
	h.overflow++
}

func (h *histogram) Snapshot() histogramSnapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	counts := append([]uint64(nil), h.counts...)
	return histogramSnapshot{
		bounds:   h.bounds,
		counts:   counts,
		overflow: h.overflow,
		sum:      h.sum,
	}
}
