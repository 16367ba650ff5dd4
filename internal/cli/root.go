// Package cli provides the command-line interface for the uptime example
// binary.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"uptime"
	"uptime/internal/format"
	"uptime/internal/schema"

	"github.com/spf13/cobra"
)

var (
	jsonOut   bool
	showAwake bool
	showBoot  bool
)

// rootCmd prints the host's uptime when invoked without arguments.
var rootCmd = &cobra.Command{
	Use:   "uptime",
	Short: "Print how long this machine has been running",
	Long: `uptime queries the operating system once for the time elapsed since boot
and prints it. The measurement is a single point-in-time read; nothing is
sampled, cached, or retried. On failure the error is reported and the exit
status is non-zero.`,
	Args:         cobra.NoArgs,
	RunE:         runUptime,
	SilenceUsage: true,
}

// Execute runs the root command. It is called once by main.main().
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.Flags().BoolVar(&jsonOut, "json", false, "emit a JSON report instead of text")
	rootCmd.Flags().BoolVar(&showAwake, "awake", false, "also print time awake (excludes sleep)")
	rootCmd.Flags().BoolVar(&showBoot, "boot-time", false, "also print the boot timestamp")
}

func runUptime(cmd *cobra.Command, args []string) error {
	d, err := uptime.Get()
	if err != nil {
		return fmt.Errorf("query uptime: %w", err)
	}
	queriedAt := time.Now()

	// The awake clock is optional per platform; its absence is not a failure.
	var awake *time.Duration
	if showAwake || jsonOut {
		a, err := uptime.Awake()
		switch {
		case err == nil:
			awake = &a
		case errors.Is(err, uptime.ErrUnsupported):
		default:
			return fmt.Errorf("query awake time: %w", err)
		}
	}

	if jsonOut {
		info := uptime.Backend()
		report := schema.NewReport(d, awake, queriedAt, info.Name, info.Precision)
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "up %s\n", format.Duration(d))
	if showAwake && awake != nil {
		fmt.Fprintf(out, "awake %s\n", format.Duration(*awake))
	}
	if showBoot {
		fmt.Fprintf(out, "booted %s\n", queriedAt.Add(-d).UTC().Format(time.RFC3339))
	}
	return nil
}
