package oci

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/younsl/lbghost/internal/models"
)

func TestDecodeClassic(t *testing.T) {
	raw := json.RawMessage(`{
		"id": "ocid1.loadbalancer.oc1..web",
		"displayName": "web-lb",
		"lifecycleState": "ACTIVE",
		"timeCreated": "2026-01-10T08:00:00.000Z",
		"shapeName": "flexible",
		"backendSets": {
			"web": {"name": "web", "backends": [
				{"ipAddress": "10.0.0.5", "port": 8080, "offline": false},
				{"ipAddress": "10.0.0.6", "port": 8080}
			]}
		},
		"listeners": {"https": {"name": "https", "defaultBackendSetName": "web", "port": 443, "protocol": "HTTPS"}},
		"certificates": {"site": {"certificateName": "site"}},
		"freeformTags": {"team": "core"},
		"definedTags": {"ops": {"owner": "alice"}}
	}`)

	record, err := DecodeClassic(raw, "prod")
	if err != nil {
		t.Fatalf("DecodeClassic returned error: %v", err)
	}

	if record.Type != models.TypeClassic {
		t.Errorf("expected classic type, got %s", record.Type)
	}
	if record.Name != "web-lb" || record.ID != "ocid1.loadbalancer.oc1..web" || record.Compartment != "prod" {
		t.Errorf("unexpected identity: %+v", record)
	}
	if record.TimeCreated != "2026-01-10T08:00:00Z" {
		t.Errorf("unexpected time created %q", record.TimeCreated)
	}
	if record.Shape != "flexible" || record.LifecycleState != "ACTIVE" {
		t.Errorf("unexpected shape/state: %q %q", record.Shape, record.LifecycleState)
	}

	backends := record.BackendSets["web"].Backends
	if len(backends) != 2 {
		t.Fatalf("expected 2 backends, got %d", len(backends))
	}
	if backends[0].Offline == nil || *backends[0].Offline {
		t.Errorf("expected first backend explicitly online, got %v", backends[0].Offline)
	}
	if backends[1].Offline != nil {
		t.Errorf("expected unknown offline state for second backend, got %v", *backends[1].Offline)
	}

	listener := record.Listeners["https"]
	if listener.Protocol != "HTTPS" || listener.Port != 443 || listener.DefaultBackendSetName != "web" {
		t.Errorf("unexpected listener: %+v", listener)
	}
	if _, ok := record.Certificates["site"]; !ok {
		t.Errorf("expected certificate to be recorded")
	}
	if record.FreeformTags["team"] != "core" || record.DefinedTags["ops"]["owner"] != "alice" {
		t.Errorf("unexpected tags: %v %v", record.FreeformTags, record.DefinedTags)
	}
}

func TestDecodeNetwork(t *testing.T) {
	raw := json.RawMessage(`{
		"id": "ocid1.networkloadbalancer.oc1..nlb",
		"displayName": "tcp-nlb",
		"lifecycleState": "UPDATING",
		"backendSets": {
			"pool": {"name": "pool", "backends": [{"ipAddress": "10.0.1.1", "port": 443, "isOffline": true}]}
		},
		"listeners": {"tls": {"name": "tls", "defaultBackendSetName": "pool", "port": 443, "protocol": "TCP"}}
	}`)

	record, err := DecodeNetwork(raw, "prod")
	if err != nil {
		t.Fatalf("DecodeNetwork returned error: %v", err)
	}

	if record.Type != models.TypeNetwork {
		t.Errorf("expected network type, got %s", record.Type)
	}
	if record.LifecycleState != "UPDATING" {
		t.Errorf("unexpected lifecycle state %q", record.LifecycleState)
	}
	if record.TimeCreated != "" {
		t.Errorf("expected empty time created, got %q", record.TimeCreated)
	}
	if record.Certificates == nil || len(record.Certificates) != 0 {
		t.Errorf("expected empty certificate map, got %v", record.Certificates)
	}
	backend := record.BackendSets["pool"].Backends[0]
	if backend.Offline == nil || !*backend.Offline {
		t.Errorf("expected backend to be offline")
	}
	if record.Listeners["tls"].Protocol != "TCP" {
		t.Errorf("unexpected listener protocol %q", record.Listeners["tls"].Protocol)
	}
}

func TestDecode_MalformedSalvagesIdentity(t *testing.T) {
	raw := json.RawMessage(`{"id": "ocid1.bad", "displayName": "broken", "backendSets": "not-a-map"}`)

	record, err := DecodeClassic(raw, "prod")
	if err == nil {
		t.Fatalf("expected decode error")
	}
	if !strings.Contains(err.Error(), "error decoding load balancer") {
		t.Errorf("unexpected error: %v", err)
	}
	if record.Name != "broken" || record.ID != "ocid1.bad" || record.Type != models.TypeClassic || record.Compartment != "prod" {
		t.Errorf("unexpected salvaged record: %+v", record)
	}
}

func TestDecode_GarbageDocument(t *testing.T) {
	record, err := DecodeNetwork(json.RawMessage(`"just a string"`), "dev")
	if err == nil {
		t.Fatalf("expected decode error")
	}
	if record.Name != "" || record.Type != models.TypeNetwork {
		t.Errorf("unexpected salvaged record: %+v", record)
	}
}
