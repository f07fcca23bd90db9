package models

// LoadBalancerType distinguishes the two load balancer variants a tenancy can hold
type LoadBalancerType string

const (
	TypeClassic LoadBalancerType = "Classic" // Flexible/classic load balancer (L7)
	TypeNetwork LoadBalancerType = "Network" // Network load balancer (L4)
)

// Valid reports whether t is one of the known variants
func (t LoadBalancerType) Valid() bool {
	return t == TypeClassic || t == TypeNetwork
}

// LoadBalancerRecord is the normalized shape of a scanned load balancer.
// Both variants are converted into this record before classification;
// variant-specific rules are gated on Type.
type LoadBalancerRecord struct {
	Name           string
	ID             string
	Type           LoadBalancerType
	Compartment    string // Compartment display name
	LifecycleState string
	TimeCreated    string // ISO 8601, empty if unknown
	Shape          string // Classic shape name
	Bandwidth      string // Network bandwidth in Mbps, descriptive only

	BackendSets  map[string]BackendSet
	Listeners    map[string]Listener
	Certificates map[string]struct{} // Only presence matters

	FreeformTags map[string]string
	DefinedTags  map[string]map[string]any
}

// BackendSet is a named group of backends behind a load balancer
type BackendSet struct {
	Backends []Backend
}

// Backend is a single target in a backend set
type Backend struct {
	IPAddress string
	Port      int
	Offline   *bool // nil when the provider did not report a state
}

// Listener routes traffic on a protocol/port to a default backend set
type Listener struct {
	Protocol              string
	Port                  int // 0 when unknown
	DefaultBackendSetName string
}
