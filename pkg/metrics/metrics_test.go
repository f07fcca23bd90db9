package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/younsl/lbghost/internal/models"
)

func TestRecordVerdicts(t *testing.T) {
	m := New()
	m.RecordVerdicts([]models.GhostVerdict{
		{Name: "orphan", ID: "ocid1.orphan", Compartment: "prod", Type: models.TypeClassic, Score: 95, Status: models.StatusDefiniteGhost},
		{Name: "web", ID: "ocid1.web", Compartment: "prod", Type: models.TypeClassic, Score: 0, Status: models.StatusActive},
		{Name: "nlb", ID: "ocid1.nlb", Compartment: "dev", Type: models.TypeNetwork, Score: 45, Status: models.StatusSuspicious},
	})

	if got := testutil.ToFloat64(m.loadBalancersTotal.WithLabelValues("Classic", "DEFINITE GHOST")); got != 1 {
		t.Errorf("expected 1 definite Classic ghost, got %v", got)
	}
	if got := testutil.ToFloat64(m.loadBalancersTotal.WithLabelValues("Network", "SUSPICIOUS")); got != 1 {
		t.Errorf("expected 1 suspicious Network LB, got %v", got)
	}
	if got := testutil.CollectAndCount(m.ghostScore); got != 2 {
		t.Errorf("expected 2 score series, got %d", got)
	}
	if got := testutil.ToFloat64(m.ghostScore.WithLabelValues("prod", "orphan", "ocid1.orphan", "Classic")); got != 95 {
		t.Errorf("expected score 95, got %v", got)
	}
}

func TestRecordVerdicts_ResetsPreviousRun(t *testing.T) {
	m := New()
	m.RecordVerdicts([]models.GhostVerdict{
		{Name: "orphan", Type: models.TypeClassic, Score: 95, Status: models.StatusDefiniteGhost},
	})
	m.RecordVerdicts(nil)

	if got := testutil.CollectAndCount(m.loadBalancersTotal); got != 0 {
		t.Errorf("expected no series after reset, got %d", got)
	}
}

func TestRecordScan(t *testing.T) {
	m := New()
	finished := time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)
	m.RecordScan(finished, 1500*time.Millisecond, 3)

	if got := testutil.ToFloat64(m.scanDurationSeconds); got != 1.5 {
		t.Errorf("expected duration 1.5, got %v", got)
	}
	if got := testutil.ToFloat64(m.lastScanTimestamp); got != float64(finished.Unix()) {
		t.Errorf("unexpected timestamp %v", got)
	}
	if got := testutil.ToFloat64(m.compartmentsScanned); got != 3 {
		t.Errorf("expected 3 compartments, got %v", got)
	}
}

func TestWriteTextfile(t *testing.T) {
	m := New()
	m.RecordVerdicts([]models.GhostVerdict{
		{Name: "orphan", ID: "ocid1.orphan", Compartment: "prod", Type: models.TypeClassic, Score: 95, Status: models.StatusDefiniteGhost},
	})

	path := filepath.Join(t.TempDir(), "lbghost.prom")
	if err := m.WriteTextfile(path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read textfile: %v", err)
	}
	if !strings.Contains(string(data), `lbghost_ghost_score{compartment="prod",id="ocid1.orphan",name="orphan",type="Classic"} 95`) {
		t.Errorf("textfile missing score series:\n%s", data)
	}
}

func TestNilMetrics(t *testing.T) {
	var m *Metrics
	m.RecordVerdicts([]models.GhostVerdict{{Name: "x"}})
	m.RecordScan(time.Now(), time.Second, 1)
	if err := m.WriteTextfile(filepath.Join(t.TempDir(), "x.prom")); err != nil {
		t.Errorf("expected nil error, got %v", err)
	}
}
