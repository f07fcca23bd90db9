package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/younsl/lbghost/internal/config"
	"github.com/younsl/lbghost/internal/version"
	"github.com/younsl/lbghost/pkg/formatter"
)

// Flags handled by the command itself rather than the config layer
const (
	flagVersion      = "version"
	flagListStatuses = "list-statuses"
)

func main() {
	rootCmd, err := newRootCmd()
	if err == nil {
		err = rootCmd.Execute()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, formatter.ErrorStyle.Render(fmt.Sprintf("❌ Ghost hunt failed: %v", err)))
		os.Exit(1)
	}
}

func newRootCmd() (*cobra.Command, error) {
	v := viper.New()

	var (
		showVersion    bool
		showStatusList bool
	)

	rootCmd := &cobra.Command{
		Use:   "lbghost",
		Short: "CLI tool to find ghost OCI load balancers",
		Long: `lbghost scores every classic and network load balancer in an OCI
inventory snapshot for signs of abandonment and reports the likely ghosts
as a console summary, a CSV export and an HTML report.`,
		Example: `  lbghost --snapshot inventory.json
  lbghost --snapshot inventory.yaml --compartments prod,staging --csv-path /tmp/ghosts.csv
  oci-export | lbghost --snapshot - --html-path -`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if showVersion {
				fmt.Fprintln(out, version.Get())
				return nil
			}

			if showStatusList {
				formatter.PrintStatusTiers(out)
				return nil
			}

			startedAt := time.Now()
			cfg, err := config.Load(v, startedAt)
			if err != nil {
				return err
			}

			return runHunt(cmd.Context(), out, cfg, startedAt)
		},
	}

	flags := rootCmd.Flags()
	flags.String(config.KeyConfigFile, "", "Config file (default $XDG_CONFIG_HOME/lbghost/config.yaml)")
	flags.StringP(config.KeySnapshot, "s", "", "Inventory snapshot to analyze (.json, .yaml, or - for stdin)")
	flags.StringSliceP(config.KeyCompartments, "c", nil, "Compartment OCIDs or names to scan (default: all active compartments)")
	flags.String(config.KeyCSVPath, "", `CSV export path (default oci_ghost_loadbalancers_<timestamp>.csv, "-" disables)`)
	flags.String(config.KeyHTMLPath, "", `HTML report path (default oci_ghost_loadbalancers_report_<timestamp>.html, "-" disables)`)
	flags.String(config.KeyMetricsFile, "", "Write Prometheus metrics to this textfile")
	flags.String(config.KeyLogLevel, "info", "Log level (trace, debug, info, warn, error)")
	flags.Bool(config.KeyVerbose, false, "Enable debug logging")
	flags.Bool(config.KeyUnknownBackendOffline, true, "Treat backends without an offline flag as offline")
	flags.Int(config.KeyScoreCap, 0, "Clamp ghost scores to this maximum (0 = unbounded)")
	flags.Bool(config.KeyNoSpinner, false, "Disable the progress spinner")
	flags.BoolVarP(&showVersion, flagVersion, "v", false, "Show version information")
	flags.BoolVarP(&showStatusList, flagListStatuses, "l", false, "List ghost status tiers and their score ranges")

	if err := bindFlags(v, flags); err != nil {
		return nil, err
	}

	return rootCmd, nil
}

// bindFlags binds every config flag into v and returns the first bind error
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	var bindErr error
	flags.VisitAll(func(f *pflag.Flag) {
		if bindErr != nil || f.Name == flagVersion || f.Name == flagListStatuses {
			return
		}
		if err := v.BindPFlag(f.Name, f); err != nil {
			bindErr = fmt.Errorf("failed to bind flag --%s: %w", f.Name, err)
		}
	})
	return bindErr
}
