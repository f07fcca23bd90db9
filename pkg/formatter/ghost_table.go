package formatter

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/younsl/lbghost/internal/models"
	"github.com/younsl/lbghost/pkg/utils"
)

const (
	maxNameWidth   = 40
	maxReasonWidth = 60
)

// PrintGhostTable prints the suspicious load balancers in a table, highest score first
func PrintGhostTable(w io.Writer, ghosts []models.GhostVerdict, now time.Time) {
	if len(ghosts) == 0 {
		fmt.Fprintln(w, SuccessStyle.Render("🎉 No ghost load balancers found."))
		return
	}

	tw := table.NewWriter()
	tw.AppendHeader(table.Row{"Name", "Type", "Compartment", "Shape", "State", "Score", "Status", "Created", "Top Reason"})

	for _, g := range ghosts {
		topReason := ""
		if len(g.Reasons) > 0 {
			topReason = g.Reasons[0]
		}
		tw.AppendRow(table.Row{
			TruncateString(g.Name, maxNameWidth),
			g.Type,
			g.Compartment,
			g.Shape,
			g.LifecycleState,
			strconv.Itoa(g.Score),
			DisplayStatus(g.Status),
			Age(g.TimeCreated, now),
			TruncateString(topReason, maxReasonWidth),
		})
	}

	tw.SetStyle(table.StyleRounded)
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 6, Align: text.AlignRight},
	})
	fmt.Fprintln(w, tw.Render())
}

// Age renders a creation timestamp relative to now, e.g. "2 months ago".
// Unparseable timestamps are returned unchanged.
func Age(timeCreated string, now time.Time) string {
	created, err := utils.ParseTimestamp(timeCreated)
	if err != nil {
		return timeCreated
	}
	return humanize.RelTime(created, now, "ago", "from now")
}
