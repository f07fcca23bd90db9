// Package oci reads OCI inventory snapshots and normalizes classic and
// network load balancer documents into records for classification.
package oci

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

var (
	// ErrUnsupportedFormat is returned for snapshot files that are neither JSON nor YAML
	ErrUnsupportedFormat = errors.New("unsupported snapshot format")
	// ErrEmptySnapshot is returned when no compartment is left to scan
	ErrEmptySnapshot = errors.New("no compartments to scan")
)

// Format is the encoding of a snapshot file
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

const compartmentStateActive = "ACTIVE"

// Snapshot is an exported inventory of load balancers grouped by compartment
type Snapshot struct {
	Tenancy      string        `json:"tenancy"`
	GeneratedAt  string        `json:"generatedAt,omitempty"`
	Compartments []Compartment `json:"compartments"`
}

// Compartment holds the raw load balancer documents of one compartment.
// Documents stay raw so a malformed one only affects its own verdict.
type Compartment struct {
	ID                   string            `json:"id"`
	Name                 string            `json:"name"`
	Description          string            `json:"description,omitempty"`
	LifecycleState       string            `json:"lifecycleState,omitempty"`
	LoadBalancers        []json.RawMessage `json:"loadBalancers"`
	NetworkLoadBalancers []json.RawMessage `json:"networkLoadBalancers"`
}

// DisplayName returns the compartment name, falling back to its ID
func (c Compartment) DisplayName() string {
	if c.Name != "" {
		return c.Name
	}
	return c.ID
}

// Active reports whether the compartment should be scanned. A snapshot
// that omits the state is trusted to contain only live compartments.
func (c Compartment) Active() bool {
	return c.LifecycleState == "" || strings.EqualFold(c.LifecycleState, compartmentStateActive)
}

// LoadBalancerCount returns the number of documents of both variants
func (c Compartment) LoadBalancerCount() int {
	return len(c.LoadBalancers) + len(c.NetworkLoadBalancers)
}

// DetectFormat picks the snapshot format from the file extension. "-" means JSON on stdin.
func DetectFormat(path string) (Format, error) {
	if path == "-" {
		return FormatJSON, nil
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// LoadSnapshot reads a snapshot from path, or from stdin when path is "-"
func LoadSnapshot(path string) (*Snapshot, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}

	if path == "-" {
		return ReadSnapshot(os.Stdin, format)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open snapshot: %w", err)
	}
	defer f.Close()

	return ReadSnapshot(f, format)
}

// ReadSnapshot decodes a snapshot in the given format
func ReadSnapshot(r io.Reader, format Format) (*Snapshot, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}

	switch format {
	case FormatJSON:
	case FormatYAML:
		data, err = yamlToJSON(data)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}

	var snapshot Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot: %w", err)
	}
	return &snapshot, nil
}

// yamlToJSON re-encodes YAML as JSON so provider documents can be decoded
// with the SDK's JSON field names regardless of the snapshot format.
func yamlToJSON(data []byte) ([]byte, error) {
	var doc interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot: %w", err)
	}

	out, err := json.Marshal(stringifyKeys(doc))
	if err != nil {
		return nil, fmt.Errorf("failed to convert snapshot to JSON: %w", err)
	}
	return out, nil
}

// stringifyKeys converts mappings with non-string keys, such as an unquoted
// "8080:" backend set name, into string-keyed maps that JSON can encode.
func stringifyKeys(value interface{}) interface{} {
	switch v := value.(type) {
	case map[interface{}]interface{}:
		out := make(map[string]interface{}, len(v))
		for key, item := range v {
			out[fmt.Sprint(key)] = stringifyKeys(item)
		}
		return out
	case map[string]interface{}:
		for key, item := range v {
			v[key] = stringifyKeys(item)
		}
		return v
	case []interface{}:
		for i, item := range v {
			v[i] = stringifyKeys(item)
		}
		return v
	default:
		return value
	}
}

// SelectCompartments returns the active compartments to scan. When filters
// is non-empty only compartments whose ID or name matches are kept;
// filters that match nothing are logged and skipped.
func (s *Snapshot) SelectCompartments(filters []string, logger zerolog.Logger) ([]Compartment, error) {
	var selected []Compartment

	if len(filters) == 0 {
		for _, c := range s.Compartments {
			if !c.Active() {
				logger.Debug().Str("compartment", c.DisplayName()).Str("state", c.LifecycleState).Msg("skipping inactive compartment")
				continue
			}
			selected = append(selected, c)
		}
	} else {
		seen := make(map[string]bool)
		for _, filter := range filters {
			c, ok := s.findCompartment(filter)
			if !ok {
				logger.Warn().Str("compartment", filter).Msg("could not access compartment")
				continue
			}
			if seen[c.ID] {
				continue
			}
			seen[c.ID] = true
			if !c.Active() {
				logger.Warn().Str("compartment", c.DisplayName()).Str("state", c.LifecycleState).Msg("compartment is not active")
				continue
			}
			selected = append(selected, c)
		}
	}

	if len(selected) == 0 {
		return nil, ErrEmptySnapshot
	}
	return selected, nil
}

func (s *Snapshot) findCompartment(idOrName string) (Compartment, bool) {
	for _, c := range s.Compartments {
		if c.ID == idOrName || c.Name == idOrName {
			return c, true
		}
	}
	return Compartment{}, false
}
