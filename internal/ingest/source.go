package ingest

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/Kjohnson1213/outfitter-finance/internal/fileutils"
	"github.com/Kjohnson1213/outfitter-finance/internal/logging"
	"github.com/Kjohnson1213/outfitter-finance/internal/models"
	"github.com/Kjohnson1213/outfitter-finance/internal/xlsxparser"
)

// IngestFile imports a .csv or .xlsx file.
func (p *Pipeline) IngestFile(ctx context.Context, path string, scope models.Scope) (Result, error) {
	if err := scope.RequireOrg(); err != nil {
		return Result{}, err
	}

	f, err := fileutils.OpenFile(path)
	if err != nil {
		return Result{}, err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			p.logger.WithError(cerr).Warn("Failed to close input file", logging.F(logging.FieldFile, path))
		}
	}()

	p.logger.Debug("Importing file", logging.F(logging.FieldFile, path))

	if strings.EqualFold(filepath.Ext(path), fileutils.ExtXLSX) {
		rows, err := xlsxparser.ParseReader(f)
		if err != nil {
			return Result{}, err
		}
		return p.IngestGrid(ctx, rows, scope)
	}
	return p.IngestReader(ctx, f, scope)
}
