// Package ghost scores load balancers for signs of abandonment.
//
// Classification is a pure function of one normalized record and the
// current time: the classifier keeps no state between calls and performs
// no I/O, so it is safe to call from multiple goroutines.
package ghost

import (
	"fmt"
	"strings"
	"time"

	"github.com/younsl/lbghost/internal/models"
	"github.com/younsl/lbghost/pkg/utils"
)

// Rule weights
const (
	scoreNoBackendSets         = 50
	scoreAllBackendSetsEmpty   = 45
	scoreSomeBackendSetsEmpty  = 25
	scoreNoListeners           = 40
	scoreAllListenersDangling  = 35
	scoreSomeListenersDangling = 20
	scoreMissingCertificates   = 15
	scoreInactiveLifecycle     = 30
	scoreStaleWithIssues       = 10
)

const (
	// staleAfterDays is the age past which an already suspicious LB gets the stale bonus
	staleAfterDays = 30
	// staleMinScore must be exceeded by the structural checks before the stale bonus applies
	staleMinScore = 40

	unknownLifecycleState = "UNKNOWN"
)

// Lifecycle states that do not count against a load balancer
var healthyLifecycleStates = map[string]bool{
	"ACTIVE":   true,
	"CREATING": true,
}

// Option configures a Classifier
type Option func(*Classifier)

// WithUnknownBackendOffline sets whether a backend with no reported offline
// state is treated as offline. The policy applies to both variants.
func WithUnknownBackendOffline(offline bool) Option {
	return func(c *Classifier) {
		c.unknownBackendOffline = offline
	}
}

// WithScoreCap clamps final scores to max. Zero or negative leaves scores unbounded.
func WithScoreCap(max int) Option {
	return func(c *Classifier) {
		c.scoreCap = max
	}
}

// Classifier turns load balancer records into ghost verdicts
type Classifier struct {
	unknownBackendOffline bool
	scoreCap              int
}

// New returns a Classifier. By default unknown backends count as offline
// and scores are unbounded.
func New(opts ...Option) *Classifier {
	c := &Classifier{unknownBackendOffline: true}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var defaultClassifier = New()

// Classify classifies record using the default policy
func Classify(record models.LoadBalancerRecord, now time.Time) models.GhostVerdict {
	return defaultClassifier.Classify(record, now)
}

// Classify scores a single load balancer. It always returns a verdict:
// any failure while evaluating the record degrades it to ANALYSIS FAILED.
func (c *Classifier) Classify(record models.LoadBalancerRecord, now time.Time) (verdict models.GhostVerdict) {
	defer func() {
		if r := recover(); r != nil {
			verdict = Failed(record, fmt.Sprintf("Error during analysis: %v", r))
		}
	}()

	verdict, err := c.classify(record, now)
	if err != nil {
		return Failed(record, fmt.Sprintf("Error during analysis: %v", err))
	}
	return verdict
}

// scorecard accumulates rule contributions in evaluation order
type scorecard struct {
	score   int
	reasons []string
}

func (s *scorecard) add(points int, reason string) {
	s.score += points
	s.reasons = append(s.reasons, reason)
}

func (c *Classifier) classify(record models.LoadBalancerRecord, now time.Time) (models.GhostVerdict, error) {
	if !record.Type.Valid() {
		return models.GhostVerdict{}, fmt.Errorf("unsupported load balancer type %q", record.Type)
	}

	lifecycleState := record.LifecycleState
	if lifecycleState == "" {
		lifecycleState = unknownLifecycleState
	}

	// checkAge reads the score accumulated by the checks before it.
	var card scorecard
	c.checkBackendSets(record.BackendSets, &card)
	checkListeners(record.Listeners, record.BackendSets, &card)
	if record.Type == models.TypeClassic {
		checkCertificates(record.Listeners, record.Certificates, &card)
	}
	checkLifecycle(lifecycleState, &card)
	checkAge(record.TimeCreated, now, &card)

	score := card.score
	if c.scoreCap > 0 && score > c.scoreCap {
		score = c.scoreCap
	}

	return models.GhostVerdict{
		Name:              valueOr(record.Name, models.UnknownValue),
		Type:              record.Type,
		Compartment:       record.Compartment,
		Shape:             shapeLabel(record),
		LifecycleState:    lifecycleState,
		Score:             score,
		Status:            StatusForScore(score),
		Reasons:           card.reasons,
		BackendSetCount:   len(record.BackendSets),
		ListenerCount:     len(record.Listeners),
		CertificateCount:  len(record.Certificates),
		TimeCreated:       valueOr(record.TimeCreated, models.UnknownValue),
		ID:                valueOr(record.ID, models.UnknownValue),
		Tags:              TagDetails(record.FreeformTags, record.DefinedTags),
		BackendSetDetails: c.BackendSetDetails(record.BackendSets),
		ListenerDetails:   ListenerDetails(record.Listeners),
	}, nil
}

func (c *Classifier) checkBackendSets(sets map[string]models.BackendSet, card *scorecard) {
	if len(sets) == 0 {
		card.add(scoreNoBackendSets, "No backend sets configured")
		return
	}

	empty := 0
	for _, set := range sets {
		if c.healthyBackends(set) == 0 {
			empty++
		}
	}

	switch {
	case empty == len(sets):
		card.add(scoreAllBackendSetsEmpty, "All backend sets are empty or offline")
	case empty > 0:
		card.add(scoreSomeBackendSetsEmpty, fmt.Sprintf("Some backend sets are empty (%d/%d)", empty, len(sets)))
	}
}

func checkListeners(listeners map[string]models.Listener, sets map[string]models.BackendSet, card *scorecard) {
	if len(listeners) == 0 {
		card.add(scoreNoListeners, "No listeners configured")
		return
	}

	dangling := 0
	for _, listener := range listeners {
		if _, ok := sets[listener.DefaultBackendSetName]; listener.DefaultBackendSetName == "" || !ok {
			dangling++
		}
	}

	switch {
	case dangling == len(listeners):
		card.add(scoreAllListenersDangling, "All listeners lack valid backend sets")
	case dangling > 0:
		card.add(scoreSomeListenersDangling, fmt.Sprintf("Some listeners lack backend sets (%d/%d)", dangling, len(listeners)))
	}
}

func checkCertificates(listeners map[string]models.Listener, certificates map[string]struct{}, card *scorecard) {
	if len(certificates) > 0 {
		return
	}
	for _, listener := range listeners {
		if isTLSProtocol(listener.Protocol) {
			card.add(scoreMissingCertificates, "HTTPS listeners without SSL certificates")
			return
		}
	}
}

func checkLifecycle(state string, card *scorecard) {
	if !healthyLifecycleStates[state] {
		card.add(scoreInactiveLifecycle, fmt.Sprintf("Load balancer in %s state", state))
	}
}

// checkAge adds the stale bonus. An absent or unparseable timestamp is not an error.
func checkAge(timeCreated string, now time.Time, card *scorecard) {
	if timeCreated == "" {
		return
	}
	created, err := utils.ParseTimestamp(timeCreated)
	if err != nil {
		return
	}

	days := utils.CalculateElapsedDays(created, now)
	if days > staleAfterDays && card.score > staleMinScore {
		card.add(scoreStaleWithIssues, fmt.Sprintf("Created %d days ago with issues", days))
	}
}

// StatusForScore maps a score to its status tier
func StatusForScore(score int) models.GhostStatus {
	switch {
	case score >= models.ThresholdDefiniteGhost:
		return models.StatusDefiniteGhost
	case score >= models.ThresholdLikelyGhost:
		return models.StatusLikelyGhost
	case score >= models.ThresholdSuspicious:
		return models.StatusSuspicious
	case score >= models.ThresholdReviewNeeded:
		return models.StatusReviewNeeded
	default:
		return models.StatusActive
	}
}

// Failed builds the degraded verdict reported when a load balancer cannot be analyzed
func Failed(record models.LoadBalancerRecord, reason string) models.GhostVerdict {
	return models.GhostVerdict{
		Name:           valueOr(record.Name, models.UnknownValue),
		Type:           record.Type,
		Compartment:    record.Compartment,
		Shape:          models.UnknownValue,
		LifecycleState: models.UnknownValue,
		Score:          0,
		Status:         models.StatusAnalysisFailed,
		Reasons:        []string{reason},
		TimeCreated:    models.UnknownValue,
		ID:             valueOr(record.ID, models.UnknownValue),
	}
}

func (c *Classifier) isOffline(b models.Backend) bool {
	if b.Offline == nil {
		return c.unknownBackendOffline
	}
	return *b.Offline
}

func (c *Classifier) healthyBackends(set models.BackendSet) int {
	healthy := 0
	for _, b := range set.Backends {
		if !c.isOffline(b) {
			healthy++
		}
	}
	return healthy
}

func isTLSProtocol(protocol string) bool {
	p := strings.TrimSpace(protocol)
	return strings.EqualFold(p, "HTTPS") || strings.EqualFold(p, "SSL")
}

func shapeLabel(record models.LoadBalancerRecord) string {
	if record.Type == models.TypeNetwork {
		if record.Bandwidth == "" {
			return "Network"
		}
		return fmt.Sprintf("Network-%sMbps", record.Bandwidth)
	}
	return valueOr(record.Shape, models.UnknownValue)
}

func valueOr(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
