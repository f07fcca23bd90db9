package report

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"os"
	"strings"
	"time"

	"github.com/younsl/lbghost/internal/models"
)

//go:embed templates/report.html.tmpl
var templateFS embed.FS

var htmlTemplate = template.Must(
	template.New("report.html.tmpl").
		Funcs(template.FuncMap{"scoreClass": scoreClass}).
		ParseFS(templateFS, "templates/report.html.tmpl"),
)

const reportDateLayout = "January 02, 2006 at 15:04"

// HTMLMeta carries run metadata shown in the HTML report
type HTMLMeta struct {
	Tenancy     string
	Version     string
	GeneratedAt time.Time
}

type htmlData struct {
	Tenancy        string
	Version        string
	ReportDate     string
	Compartments   string
	Threshold      int
	TotalScanned   int
	TotalGhosts    int
	DefiniteGhosts int
	Failed         int
	Ghosts         []models.GhostVerdict
}

// RenderHTML renders the run as an HTML report listing the suspicious load balancers
func RenderHTML(w io.Writer, run *Run, meta HTMLMeta) error {
	summary := run.Summary()

	data := htmlData{
		Tenancy:        meta.Tenancy,
		Version:        meta.Version,
		ReportDate:     meta.GeneratedAt.Format(reportDateLayout),
		Compartments:   strings.Join(summary.Compartments, ", "),
		Threshold:      models.ThresholdSuspicious,
		TotalScanned:   summary.TotalScanned,
		TotalGhosts:    summary.Suspicious,
		DefiniteGhosts: summary.DefiniteGhosts,
		Failed:         summary.Failed,
		Ghosts:         run.Suspicious(),
	}

	if err := htmlTemplate.Execute(w, data); err != nil {
		return fmt.Errorf("failed to render HTML report: %w", err)
	}
	return nil
}

// ExportHTML writes the HTML report to path and returns its size in bytes
func ExportHTML(path string, run *Run, meta HTMLMeta) (int64, error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("failed to create HTML file: %w", err)
	}
	defer f.Close()

	if err := RenderHTML(f, run, meta); err != nil {
		return 0, err
	}

	info, err := f.Stat()
	if err != nil {
		return 0, fmt.Errorf("failed to stat HTML file: %w", err)
	}
	return info.Size(), nil
}

func scoreClass(score int) string {
	switch {
	case score >= models.ThresholdDefiniteGhost:
		return "score-definite"
	case score >= models.ThresholdLikelyGhost:
		return "score-likely"
	default:
		return "score-suspicious"
	}
}
