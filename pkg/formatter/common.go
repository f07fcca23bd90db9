package formatter

import (
	"fmt"
	"io"
	"time"
)

// printTimestamp prints the scan timestamp and duration
func printTimestamp(w io.Writer, scanStartTime time.Time, scanDuration time.Duration) {
	timeStr := scanStartTime.Format("2006-01-02 15:04:05")
	durationStr := fmt.Sprintf("%.2fs", scanDuration.Seconds())

	fmt.Fprintf(w, "Scan completed at %s (took %s)\n", timeStr, durationStr)
}

// PrintScanCompleted prints the completion line shown after the hunt summary
func PrintScanCompleted(w io.Writer, scanStartTime time.Time, scanDuration time.Duration) {
	fmt.Fprintln(w)
	printTimestamp(w, scanStartTime, scanDuration)
}
