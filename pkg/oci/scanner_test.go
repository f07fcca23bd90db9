package oci

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/younsl/lbghost/internal/models"
	"github.com/younsl/lbghost/pkg/ghost"
)

var scanNow = time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)

func loadProd(t *testing.T) Compartment {
	t.Helper()
	snapshot, err := LoadSnapshot(filepath.Join("testdata", "snapshot.json"))
	if err != nil {
		t.Fatalf("LoadSnapshot returned error: %v", err)
	}
	return snapshot.Compartments[0]
}

func TestScanCompartment(t *testing.T) {
	scanner := NewScanner(ghost.New(), zerolog.Nop())

	verdicts, err := scanner.ScanCompartment(context.Background(), loadProd(t), scanNow)
	if err != nil {
		t.Fatalf("ScanCompartment returned error: %v", err)
	}
	if len(verdicts) != 4 {
		t.Fatalf("expected 4 verdicts, got %d", len(verdicts))
	}

	byName := make(map[string]models.GhostVerdict)
	for _, v := range verdicts {
		byName[v.Name] = v
	}

	web := byName["web-lb"]
	if web.Score != 0 || web.Status != models.StatusActive {
		t.Errorf("web-lb: expected active with score 0, got %d %s (%v)", web.Score, web.Status, web.Reasons)
	}
	if web.Compartment != "prod" || web.Tags != "team=core; ops.owner=alice" {
		t.Errorf("web-lb: unexpected echo fields: %+v", web)
	}

	orphan := byName["orphan-lb"]
	if orphan.Score != 100 || orphan.Status != models.StatusDefiniteGhost {
		t.Errorf("orphan-lb: expected 100 definite ghost, got %d %s", orphan.Score, orphan.Status)
	}
	if len(orphan.Reasons) != 3 || !strings.HasPrefix(orphan.Reasons[2], "Created 501 days ago") {
		t.Errorf("orphan-lb: unexpected reasons %v", orphan.Reasons)
	}

	broken := byName["broken-lb"]
	if broken.Status != models.StatusAnalysisFailed || broken.Score != 0 {
		t.Errorf("broken-lb: expected analysis failure, got %d %s", broken.Score, broken.Status)
	}
	if broken.ID != "ocid1.loadbalancer.oc1..broken" {
		t.Errorf("broken-lb: expected salvaged id, got %q", broken.ID)
	}
	if len(broken.Reasons) != 1 || !strings.HasPrefix(broken.Reasons[0], "Failed to analyze:") {
		t.Errorf("broken-lb: unexpected reasons %v", broken.Reasons)
	}

	nlb := byName["tcp-nlb"]
	if nlb.Type != models.TypeNetwork || nlb.Score != 45 || nlb.Status != models.StatusSuspicious {
		t.Errorf("tcp-nlb: expected network suspicious 45, got %s %d %s", nlb.Type, nlb.Score, nlb.Status)
	}
	if nlb.ListenerDetails != "tls:TCP:443->>pool" {
		t.Errorf("tcp-nlb: unexpected listener details %q", nlb.ListenerDetails)
	}
}

func TestScanCompartment_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	verdicts, err := NewScanner(nil, zerolog.Nop()).ScanCompartment(ctx, loadProd(t), scanNow)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if len(verdicts) != 0 {
		t.Errorf("expected no verdicts after cancellation, got %d", len(verdicts))
	}
}

func TestScanCompartment_Empty(t *testing.T) {
	verdicts, err := NewScanner(nil, zerolog.Nop()).ScanCompartment(context.Background(), Compartment{Name: "dev"}, scanNow)
	if err != nil {
		t.Fatalf("ScanCompartment returned error: %v", err)
	}
	if len(verdicts) != 0 {
		t.Errorf("expected no verdicts, got %d", len(verdicts))
	}
}
