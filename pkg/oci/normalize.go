package oci

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/oracle/oci-go-sdk/v65/common"
	"github.com/oracle/oci-go-sdk/v65/loadbalancer"
	"github.com/oracle/oci-go-sdk/v65/networkloadbalancer"

	"github.com/younsl/lbghost/internal/models"
	"github.com/younsl/lbghost/pkg/utils"
)

// NormalizeClassic converts a classic load balancer document into a record
func NormalizeClassic(lb loadbalancer.LoadBalancer, compartment string) models.LoadBalancerRecord {
	record := models.LoadBalancerRecord{
		Name:           utils.SafeDeref(lb.DisplayName),
		ID:             utils.SafeDeref(lb.Id),
		Type:           models.TypeClassic,
		Compartment:    compartment,
		LifecycleState: string(lb.LifecycleState),
		TimeCreated:    formatSDKTime(lb.TimeCreated),
		Shape:          utils.SafeDeref(lb.ShapeName),
		BackendSets:    make(map[string]models.BackendSet, len(lb.BackendSets)),
		Listeners:      make(map[string]models.Listener, len(lb.Listeners)),
		Certificates:   make(map[string]struct{}, len(lb.Certificates)),
		FreeformTags:   lb.FreeformTags,
		DefinedTags:    lb.DefinedTags,
	}

	for name, bs := range lb.BackendSets {
		set := models.BackendSet{Backends: make([]models.Backend, 0, len(bs.Backends))}
		for _, b := range bs.Backends {
			set.Backends = append(set.Backends, models.Backend{
				IPAddress: utils.SafeDeref(b.IpAddress),
				Port:      utils.SafeDerefInt(b.Port),
				Offline:   utils.CloneBool(b.Offline),
			})
		}
		record.BackendSets[name] = set
	}

	for name, l := range lb.Listeners {
		record.Listeners[name] = models.Listener{
			Protocol:              utils.SafeDeref(l.Protocol),
			Port:                  utils.SafeDerefInt(l.Port),
			DefaultBackendSetName: utils.SafeDeref(l.DefaultBackendSetName),
		}
	}

	for name := range lb.Certificates {
		record.Certificates[name] = struct{}{}
	}

	return record
}

// NormalizeNetwork converts a network load balancer document into a record.
// Network load balancers carry no certificates; the map is left empty.
// Backend offline state is passed through as reported, including when absent.
func NormalizeNetwork(nlb networkloadbalancer.NetworkLoadBalancer, compartment string) models.LoadBalancerRecord {
	record := models.LoadBalancerRecord{
		Name:           utils.SafeDeref(nlb.DisplayName),
		ID:             utils.SafeDeref(nlb.Id),
		Type:           models.TypeNetwork,
		Compartment:    compartment,
		LifecycleState: string(nlb.LifecycleState),
		TimeCreated:    formatSDKTime(nlb.TimeCreated),
		BackendSets:    make(map[string]models.BackendSet, len(nlb.BackendSets)),
		Listeners:      make(map[string]models.Listener, len(nlb.Listeners)),
		Certificates:   map[string]struct{}{},
		FreeformTags:   nlb.FreeformTags,
		DefinedTags:    nlb.DefinedTags,
	}

	for name, bs := range nlb.BackendSets {
		set := models.BackendSet{Backends: make([]models.Backend, 0, len(bs.Backends))}
		for _, b := range bs.Backends {
			set.Backends = append(set.Backends, models.Backend{
				IPAddress: utils.SafeDeref(b.IpAddress),
				Port:      utils.SafeDerefInt(b.Port),
				Offline:   utils.CloneBool(b.IsOffline),
			})
		}
		record.BackendSets[name] = set
	}

	for name, l := range nlb.Listeners {
		record.Listeners[name] = models.Listener{
			Protocol:              string(l.Protocol),
			Port:                  utils.SafeDerefInt(l.Port),
			DefaultBackendSetName: utils.SafeDeref(l.DefaultBackendSetName),
		}
	}

	return record
}

// DecodeClassic decodes a raw classic load balancer document
func DecodeClassic(raw json.RawMessage, compartment string) (models.LoadBalancerRecord, error) {
	var lb loadbalancer.LoadBalancer
	if err := json.Unmarshal(raw, &lb); err != nil {
		return salvageIdentity(raw, models.TypeClassic, compartment), fmt.Errorf("error decoding load balancer: %w", err)
	}
	return NormalizeClassic(lb, compartment), nil
}

// DecodeNetwork decodes a raw network load balancer document
func DecodeNetwork(raw json.RawMessage, compartment string) (models.LoadBalancerRecord, error) {
	var nlb networkloadbalancer.NetworkLoadBalancer
	if err := json.Unmarshal(raw, &nlb); err != nil {
		return salvageIdentity(raw, models.TypeNetwork, compartment), fmt.Errorf("error decoding network load balancer: %w", err)
	}
	return NormalizeNetwork(nlb, compartment), nil
}

// salvageIdentity recovers whatever naming a malformed document still has,
// so the failed entry in the report can be traced back to a resource.
func salvageIdentity(raw json.RawMessage, lbType models.LoadBalancerType, compartment string) models.LoadBalancerRecord {
	record := models.LoadBalancerRecord{Type: lbType, Compartment: compartment}

	data, err := utils.ParseJSON(raw)
	if err != nil {
		return record
	}
	if name, err := utils.GetNestedString(data, "displayName"); err == nil {
		record.Name = name
	}
	if id, err := utils.GetNestedString(data, "id"); err == nil {
		record.ID = id
	}
	return record
}

func formatSDKTime(t *common.SDKTime) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
