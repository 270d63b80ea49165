package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"econmap/internal/domain"
	"econmap/internal/storage"
)

func newRunsCmd(g *globalFlags) *cobra.Command {
	var (
		limit  int
		format string
	)

	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List recent pipeline runs",
		Long:  "List recent pipeline runs from the run history database (history.path).",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := validateFormat(format); err != nil {
				return err
			}
			cfg, err := g.load(cmd, nil)
			if err != nil {
				return err
			}
			if cfg.History.Path == "" {
				return errors.New("run history is disabled: set history.path or ECONMAP_HISTORY_PATH")
			}

			db, err := storage.New(cfg.History.Path)
			if err != nil {
				return fmt.Errorf("open run history: %w", err)
			}
			defer db.Close()

			logs, err := storage.NewRunStore(db).ListRunLogs(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if format == "json" {
				return printJSON(cmd.OutOrStdout(), logs)
			}
			printRuns(cmd.OutOrStdout(), logs)
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of runs to show")
	cmd.Flags().StringVar(&format, "format", "table", "Output format: table or json")
	return cmd
}

func validateFormat(format string) error {
	if format != "table" && format != "json" {
		return fmt.Errorf("unsupported output format %q: use 'table' or 'json'", format)
	}
	return nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printRuns(w io.Writer, logs []domain.RunLog) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "STARTED\tSTATUS\tTRIGGER\tROWS\tCOUNTRIES\tUNRESOLVED\tDURATION\tERROR")
	for _, l := range logs {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			l.StartedAt.Local().Format(time.DateTime),
			l.Status,
			l.Trigger,
			strconv.Itoa(l.Rows),
			strconv.Itoa(l.Countries),
			strconv.Itoa(l.Unresolved),
			l.Duration().Round(time.Millisecond),
			l.Error,
		)
	}
	tw.Flush()
}
