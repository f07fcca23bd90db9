// Package metrics exposes scan results as Prometheus metrics written to a
// node_exporter textfile.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/younsl/lbghost/internal/models"
)

// Metrics wraps Prometheus collectors for lbghost
type Metrics struct {
	registry            *prometheus.Registry
	loadBalancersTotal  *prometheus.GaugeVec
	ghostScore          *prometheus.GaugeVec
	scanDurationSeconds prometheus.Gauge
	lastScanTimestamp   prometheus.Gauge
	compartmentsScanned prometheus.Gauge
}

// New initializes a Metrics registry with all collectors registered
func New() *Metrics {
	registry := prometheus.NewRegistry()
	m := &Metrics{
		registry: registry,
		loadBalancersTotal: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "lbghost_load_balancers",
			Help: "Scanned load balancers by type and ghost status.",
		}, []string{"type", "status"}),
		ghostScore: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "lbghost_ghost_score",
			Help: "Ghost score of each suspicious load balancer.",
		}, []string{"compartment", "name", "id", "type"}),
		scanDurationSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "lbghost_scan_duration_seconds",
			Help: "Duration of the last scan in seconds.",
		}),
		lastScanTimestamp: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "lbghost_last_scan_timestamp",
			Help: "Unix timestamp of the last completed scan.",
		}),
		compartmentsScanned: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "lbghost_compartments_scanned",
			Help: "Number of compartments included in the last scan.",
		}),
	}

	registry.MustRegister(
		m.loadBalancersTotal,
		m.ghostScore,
		m.scanDurationSeconds,
		m.lastScanTimestamp,
		m.compartmentsScanned,
	)

	return m
}

// RecordVerdicts sets the per-status counts and the score of every
// suspicious load balancer
func (m *Metrics) RecordVerdicts(verdicts []models.GhostVerdict) {
	if m == nil {
		return
	}

	m.loadBalancersTotal.Reset()
	m.ghostScore.Reset()

	for _, v := range verdicts {
		m.loadBalancersTotal.WithLabelValues(string(v.Type), string(v.Status)).Inc()
		if v.IsSuspicious() {
			m.ghostScore.WithLabelValues(v.Compartment, v.Name, v.ID, string(v.Type)).Set(float64(v.Score))
		}
	}
}

// RecordScan records the timing and breadth of a completed scan
func (m *Metrics) RecordScan(finishedAt time.Time, duration time.Duration, compartments int) {
	if m == nil {
		return
	}
	m.scanDurationSeconds.Set(duration.Seconds())
	m.lastScanTimestamp.Set(float64(finishedAt.Unix()))
	m.compartmentsScanned.Set(float64(compartments))
}

// WriteTextfile writes all metrics in the text exposition format to path
func (m *Metrics) WriteTextfile(path string) error {
	if m == nil {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("failed to write metrics textfile: %w", err)
	}
	return nil
}
