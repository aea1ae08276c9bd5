package expenses

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Kjohnson1213/outfitter-finance/cmd/root"
	"github.com/Kjohnson1213/outfitter-finance/internal/apperror"
	"github.com/Kjohnson1213/outfitter-finance/internal/fileutils"
	"github.com/Kjohnson1213/outfitter-finance/internal/logging"
)

var importInput string

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import expenses from a CSV or XLSX file, or a directory of them",
	Long: `Import expenses from a bank or card export.

The first row must be a header naming at least "date" and "amount"; "vendor",
"description", "category" and "external_id" are optional. Dates may be
YYYY-MM-DD or MM/DD/YYYY and amounts may carry "$" and "," separators. Rows
whose date or amount cannot be read are skipped. Rows with an external_id
already imported for the organization are skipped, so re-importing a file is
safe.

Given a directory, every .csv and .xlsx file in it is imported in name order.

Example:
  outfitter expenses import -i statements/2026-01.csv
  outfitter expenses import -i statements/`,
	RunE: runImport,
}

func init() {
	importCmd.Flags().StringVarP(&importInput, "input", "i", "", "Input file or directory")
	_ = importCmd.MarkFlagRequired("input")
}

func runImport(cmd *cobra.Command, args []string) error {
	scope := root.Scope()
	if err := scope.RequireOrg(); err != nil {
		return err
	}

	files, err := fileutils.ListImportFiles(importInput)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no .csv or .xlsx files in %s", importInput)
	}

	app, err := root.Container()
	if err != nil {
		return err
	}
	pipeline := app.GetPipeline()
	logger := root.Logger()
	out := cmd.OutOrStdout()

	failed := 0
	for _, file := range files {
		res, err := pipeline.IngestFile(cmd.Context(), file, scope)
		if err != nil {
			failed++
			logger.WithError(err).Warn("Import failed", logging.F(logging.FieldFile, file))

			var bwe *apperror.BatchWriteError
			if errors.As(err, &bwe) {
				_, _ = fmt.Fprintf(out, "%s: %s; stopped: %v\n", file, res, err)
			} else {
				_, _ = fmt.Fprintf(out, "%s: %v\n", file, err)
			}
			continue
		}
		_, _ = fmt.Fprintf(out, "%s: %s\n", file, res)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files failed to import", failed, len(files))
	}
	return nil
}
