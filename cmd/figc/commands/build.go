package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/figc/internal/app"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build <source-root> <output-root>",
		Short: "Recompile stale figures from source-root into output-root",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			timeout, _ := cmd.Flags().GetDuration("timeout")
			ignoreFailures, _ := cmd.Flags().GetBool("ignore-failures")
			reportPath, _ := cmd.Flags().GetString("report")

			// Jobs falls back to the profile unless the flag was given.
			jobs := 0
			if cmd.Flags().Changed("jobs") {
				jobs, _ = cmd.Flags().GetInt("jobs")
			}

			return c.app.Run(cmd.Context(), args[0], args[1], app.RunOptions{
				ConfigPath:     configPath,
				Jobs:           jobs,
				Timeout:        timeout,
				IgnoreFailures: ignoreFailures,
				ReportPath:     reportPath,
			})
		},
	}
	cmd.Flags().IntP("jobs", "j", 32, "Maximum number of concurrent renderer processes")
	cmd.Flags().Duration("timeout", 0, "Per-job timeout (0 disables it)")
	cmd.Flags().Bool("ignore-failures", false, "Exit zero even when some jobs failed")
	cmd.Flags().String("report", "", "Write a JSON run report to this path")
	return cmd
}
