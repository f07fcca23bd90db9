package main

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/briandowns/spinner"
	"github.com/rs/zerolog"

	"github.com/younsl/lbghost/internal/config"
	"github.com/younsl/lbghost/internal/logging"
	"github.com/younsl/lbghost/internal/models"
	"github.com/younsl/lbghost/internal/version"
	"github.com/younsl/lbghost/pkg/formatter"
	"github.com/younsl/lbghost/pkg/ghost"
	"github.com/younsl/lbghost/pkg/metrics"
	"github.com/younsl/lbghost/pkg/oci"
	"github.com/younsl/lbghost/pkg/report"
)

// compartmentResult holds the outcome of scanning one compartment
type compartmentResult struct {
	compartment oci.Compartment
	verdicts    []models.GhostVerdict
	err         error
}

// startHuntSpinner creates and starts a spinner for the compartment scan
func startHuntSpinner(w io.Writer, compartments int) *spinner.Spinner {
	s := spinner.New(spinner.CharSets[9], 200*time.Millisecond, spinner.WithWriter(w))
	s.Suffix = fmt.Sprintf(" Hunting ghosts in %d compartment(s) ...", compartments)
	s.Start()
	return s
}

// runHunt loads the snapshot, classifies every selected compartment and
// writes the console summary and report files
func runHunt(ctx context.Context, out io.Writer, cfg config.Config, startedAt time.Time) error {
	logger := logging.NewWithLevel(cfg.EffectiveLogLevel())

	formatter.PrintBanner(out)

	snapshot, err := oci.LoadSnapshot(cfg.SnapshotPath)
	if err != nil {
		return fmt.Errorf("failed to load snapshot %s: %w", cfg.SnapshotPath, err)
	}
	if snapshot.Tenancy != "" {
		fmt.Fprintln(out, formatter.InfoStyle.Render(fmt.Sprintf("👤 OCI Tenancy: %s", snapshot.Tenancy)))
		fmt.Fprintln(out)
	}

	compartments, err := snapshot.SelectCompartments(cfg.Compartments, logger)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, formatter.SuccessStyle.Render(fmt.Sprintf("🔍 Found %d compartment(s) to scan", len(compartments))))
	fmt.Fprintln(out)

	classifier := ghost.New(
		ghost.WithUnknownBackendOffline(cfg.UnknownBackendOffline),
		ghost.WithScoreCap(cfg.ScoreCap),
	)
	scanner := oci.NewScanner(classifier, logger)

	var s *spinner.Spinner
	if !cfg.NoSpinner {
		s = startHuntSpinner(out, len(compartments))
	}

	results := scanCompartments(ctx, scanner, compartments, startedAt)
	scanDuration := time.Since(startedAt)

	run := report.NewRun()
	for _, result := range results {
		run.Add(result.verdicts...)
	}

	if s != nil {
		s.FinalMSG = fmt.Sprintf("✓ [%d load balancers analyzed] %d compartment(s) scanned - Completed in %.2f seconds\n\n",
			run.Len(), len(compartments), scanDuration.Seconds())
		s.Stop()
	}

	for _, result := range results {
		c := result.compartment
		formatter.PrintCompartmentScan(out, c.DisplayName(), len(c.LoadBalancers), len(c.NetworkLoadBalancers), result.verdicts)
		if result.err != nil {
			logger.Error().Err(result.err).Str("compartment", c.DisplayName()).Msg("compartment scan incomplete")
		}
	}

	summary := run.Summary()
	suspicious := run.Suspicious()

	formatter.PrintHuntSummary(out, summary)
	formatter.PrintGhostTable(out, suspicious, startedAt)
	fmt.Fprintln(out)
	formatter.PrintGhostDetails(out, suspicious, startedAt)

	exportReports(out, logger, cfg, run, snapshot.Tenancy, startedAt)
	exportMetrics(logger, cfg, run, len(compartments), scanDuration)

	formatter.PrintScanCompleted(out, startedAt, scanDuration)
	fmt.Fprintln(out)
	fmt.Fprintln(out, formatter.SuccessStyle.Render("🎉 Ghost hunt complete!"))

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("ghost hunt interrupted: %w", err)
	}
	return nil
}

// scanCompartments classifies each compartment in parallel. Results keep
// the order of compartments.
func scanCompartments(ctx context.Context, scanner *oci.Scanner, compartments []oci.Compartment, now time.Time) []compartmentResult {
	results := make([]compartmentResult, len(compartments))

	var wg sync.WaitGroup
	for i, compartment := range compartments {
		wg.Add(1)
		go func(idx int, c oci.Compartment) {
			defer wg.Done()

			verdicts, err := scanner.ScanCompartment(ctx, c, now)
			results[idx] = compartmentResult{
				compartment: c,
				verdicts:    verdicts,
				err:         err,
			}
		}(i, compartment)
	}

	wg.Wait()
	return results
}

// exportReports writes the CSV and HTML reports. A failed export is logged
// and does not stop the other one.
func exportReports(out io.Writer, logger zerolog.Logger, cfg config.Config, run *report.Run, tenancy string, startedAt time.Time) {
	if cfg.CSVEnabled() {
		rows, size, err := report.ExportCSV(cfg.CSVPath, run)
		if err != nil {
			logger.Error().Err(err).Str("path", cfg.CSVPath).Msg("failed to export CSV")
			fmt.Fprintln(out, formatter.ErrorStyle.Render(fmt.Sprintf("❌ Failed to export CSV: %v", err)))
		} else {
			formatter.PrintCSVExport(out, cfg.CSVPath, rows, size)
		}
		fmt.Fprintln(out)
	}

	if cfg.HTMLEnabled() {
		fmt.Fprintln(out, formatter.InfoStyle.Render("📄 Generating HTML report..."))
		size, err := report.ExportHTML(cfg.HTMLPath, run, report.HTMLMeta{
			Tenancy:     tenancy,
			Version:     version.Get().Version,
			GeneratedAt: startedAt,
		})
		if err != nil {
			logger.Error().Err(err).Str("path", cfg.HTMLPath).Msg("failed to generate HTML report")
			fmt.Fprintln(out, formatter.ErrorStyle.Render(fmt.Sprintf("❌ Failed to generate HTML report: %v", err)))
		} else {
			formatter.PrintHTMLExport(out, cfg.HTMLPath, size)
		}
	}
}

// exportMetrics writes the Prometheus textfile when one is configured
func exportMetrics(logger zerolog.Logger, cfg config.Config, run *report.Run, compartments int, scanDuration time.Duration) {
	if cfg.MetricsFile == "" {
		return
	}

	m := metrics.New()
	m.RecordVerdicts(run.All())
	m.RecordScan(time.Now(), scanDuration, compartments)

	if err := m.WriteTextfile(cfg.MetricsFile); err != nil {
		logger.Error().Err(err).Str("path", cfg.MetricsFile).Msg("failed to write metrics")
		return
	}
	logger.Info().Str("path", cfg.MetricsFile).Msg("metrics written")
}
