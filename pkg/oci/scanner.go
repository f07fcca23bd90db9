package oci

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/younsl/lbghost/internal/models"
	"github.com/younsl/lbghost/pkg/ghost"
)

// Scanner classifies the load balancers of snapshot compartments
type Scanner struct {
	classifier *ghost.Classifier
	logger     zerolog.Logger
}

// NewScanner creates a Scanner that classifies with the given classifier
func NewScanner(classifier *ghost.Classifier, logger zerolog.Logger) *Scanner {
	if classifier == nil {
		classifier = ghost.New()
	}
	return &Scanner{
		classifier: classifier,
		logger:     logger,
	}
}

// ScanCompartment normalizes and classifies every load balancer in the
// compartment. Documents that cannot be decoded are reported as failed
// verdicts rather than errors; only cancellation stops the scan early,
// in which case the verdicts gathered so far are returned with ctx's error.
func (s *Scanner) ScanCompartment(ctx context.Context, compartment Compartment, now time.Time) ([]models.GhostVerdict, error) {
	name := compartment.DisplayName()
	logger := s.logger.With().Str("compartment", name).Logger()

	verdicts := make([]models.GhostVerdict, 0, compartment.LoadBalancerCount())

	scan := func(docs []json.RawMessage, decode func(json.RawMessage, string) (models.LoadBalancerRecord, error)) error {
		for _, raw := range docs {
			if err := ctx.Err(); err != nil {
				return fmt.Errorf("scan of compartment %s interrupted: %w", name, err)
			}

			record, err := decode(raw, name)
			if err != nil {
				logger.Warn().Err(err).Str("load_balancer", record.Name).Str("type", string(record.Type)).Msg("failed to analyze load balancer")
				verdicts = append(verdicts, ghost.Failed(record, fmt.Sprintf("Failed to analyze: %v", err)))
				continue
			}

			verdict := s.classifier.Classify(record, now)
			logVerdict(logger, verdict)
			verdicts = append(verdicts, verdict)
		}
		return nil
	}

	if err := scan(compartment.LoadBalancers, DecodeClassic); err != nil {
		return verdicts, err
	}
	if err := scan(compartment.NetworkLoadBalancers, DecodeNetwork); err != nil {
		return verdicts, err
	}

	return verdicts, nil
}

func logVerdict(logger zerolog.Logger, v models.GhostVerdict) {
	event := logger.Debug()
	if v.Failed() {
		event = logger.Warn()
	}
	event.
		Str("load_balancer", v.Name).
		Str("type", string(v.Type)).
		Int("score", v.Score).
		Str("status", string(v.Status)).
		Strs("reasons", v.Reasons).
		Msg("analyzed load balancer")
}
