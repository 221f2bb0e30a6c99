package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/sells-group/agency-dashboard/internal/dashboard"
	"github.com/sells-group/agency-dashboard/internal/export"
)

var (
	exportFormat string
	exportOutput string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the enriched agency table as csv, json, yaml or xlsx",
	Long: `Loads and enriches the dataset, then writes every agency with its
derived profit and coordinates.

Examples:
  agency-dashboard export --format json
  agency-dashboard export --format xlsx --output agencies.xlsx`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		format, err := export.ParseFormat(exportFormat)
		if err != nil {
			return err
		}
		if err := cfg.Validate("export"); err != nil {
			return err
		}

		page, err := dashboard.New(dashboard.OptionsFromConfig(cfg)).Build(cmd.Context())
		if err != nil {
			return err
		}

		return withOutput(cmd.OutOrStdout(), exportOutput, func(w io.Writer) error {
			return export.Write(w, format, page.Agencies)
		})
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "csv", "output format: csv, json, yaml or xlsx")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default stdout)")
	rootCmd.AddCommand(exportCmd)
}
