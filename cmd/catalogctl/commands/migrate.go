package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"

	"github.com/youbeemuhwan/commercial/migrations/catalog"
	"github.com/youbeemuhwan/commercial/pkg/migrator"
)

var jsonOutput bool

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations",
	Long: `Apply or inspect the embedded catalog schema migrations.

Subcommands:
  up      - Apply pending migrations
  status  - Show migration status`,
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply pending migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDatabase(cmd.Context())
		if err != nil {
			return err
		}
		defer d.Close() //nolint:errcheck

		if err := migrator.Up(cmd.Context(), d.DB(), catalog.FS); err != nil {
			return err
		}
		log.Info("migrations applied")
		return nil
	},
}

var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show migration status",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDatabase(cmd.Context())
		if err != nil {
			return err
		}
		defer d.Close() //nolint:errcheck

		status, err := migrator.Status(cmd.Context(), d.DB(), catalog.FS)
		if err != nil {
			return err
		}
		return printStatus(cmd.OutOrStdout(), status, jsonOutput)
	},
}

type statusRow struct {
	Version   int64  `json:"version"`
	Source    string `json:"source"`
	State     string `json:"state"`
	AppliedAt string `json:"applied_at,omitempty"`
}

func printStatus(w io.Writer, status []*goose.MigrationStatus, asJSON bool) error {
	rows := make([]statusRow, 0, len(status))
	for _, s := range status {
		row := statusRow{
			Version: s.Source.Version,
			Source:  s.Source.Path,
			State:   string(s.State),
		}
		if !s.AppliedAt.IsZero() {
			row.AppliedAt = s.AppliedAt.UTC().Format("2006-01-02 15:04:05")
		}
		rows = append(rows, row)
	}

	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "VERSION\tSTATE\tAPPLIED AT\tSOURCE")
	for _, r := range rows {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", r.Version, r.State, r.AppliedAt, r.Source)
	}
	return tw.Flush()
}

func init() {
	migrateStatusCmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	migrateCmd.AddCommand(migrateUpCmd, migrateStatusCmd)
	rootCmd.AddCommand(migrateCmd)
}
