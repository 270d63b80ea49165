package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"econmap/internal/app"
	"econmap/internal/config"
)

// ExecuteMapgen runs the mapgen CLI.
func ExecuteMapgen() int {
	if err := newMapgenCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func newMapgenCmd() *cobra.Command {
	var (
		g             globalFlags
		input, output string
		fromMirror    bool
	)

	cmd := &cobra.Command{
		Use:   "mapgen",
		Short: "Render the interactive economic map",
		Long: "Reads the pipeline output (the CSV, or the mirror table with --from-mirror) and writes\n" +
			"a self-contained HTML dashboard with an animated choropleth per year.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := g.load(cmd, func(cfg *config.Config) {
				flags := cmd.Flags()
				if flags.Changed("input") {
					cfg.Map.Input = input
				}
				if flags.Changed("output") {
					cfg.Map.Output = output
				}
				if flags.Changed("from-mirror") {
					cfg.Map.FromMirror = fromMirror
				}
			})
			if err != nil {
				return err
			}

			ctx, stop := signalContext(cmd.Context())
			defer stop()

			a := app.New(cfg)
			if cfg.Map.FromMirror {
				if err := a.Startup(ctx); err != nil {
					return err
				}
				defer a.Shutdown()
			}

			gen, err := a.MapGenerator()
			if err != nil {
				return err
			}
			report, err := gen.Generate(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d countries, %d years)\n", report.Output, report.Countries, len(report.Years))
			return nil
		},
	}
	g.register(cmd)

	cmd.Flags().StringVar(&input, "input", "", "Pipeline output CSV (defaults to output.path)")
	cmd.Flags().StringVar(&output, "output", "", "HTML file to write")
	cmd.Flags().BoolVar(&fromMirror, "from-mirror", false, "Read rows from the mirror table instead of the CSV")
	return cmd
}
