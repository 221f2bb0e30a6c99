package main

import (
	"io"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/agency-dashboard/internal/dashboard"
	"github.com/sells-group/agency-dashboard/internal/web"
)

var renderOutput string

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Build the dashboard once and write it as static HTML",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := cfg.Validate("render"); err != nil {
			return err
		}

		renderer, err := web.NewRenderer()
		if err != nil {
			return err
		}
		page, err := dashboard.New(dashboard.OptionsFromConfig(cfg)).Build(cmd.Context())
		if err != nil {
			return err
		}

		return withOutput(cmd.OutOrStdout(), renderOutput, func(w io.Writer) error {
			return renderer.Render(w, page)
		})
	},
}

func init() {
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "", "output file (default stdout)")
	rootCmd.AddCommand(renderCmd)
}

// withOutput runs write against path, or against stdout when path is empty.
func withOutput(stdout io.Writer, path string, write func(io.Writer) error) error {
	if path == "" {
		return write(stdout)
	}

	f, err := os.Create(path)
	if err != nil {
		return eris.Wrapf(err, "create %s", path)
	}
	if err := write(f); err != nil {
		f.Close() //nolint:errcheck
		return err
	}
	if err := f.Close(); err != nil {
		return eris.Wrapf(err, "close %s", path)
	}
	zap.L().Info("wrote output", zap.String("path", path))
	return nil
}
