// Package export streams every page of a list fetch into an xlsx
// workbook, the download-as-spreadsheet feature of the list views.
package export

import (
	"context"
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	"github.com/xetasuite/xetasuite-go/pkg/listpage"
	"github.com/xetasuite/xetasuite-go/pkg/query"
)

// Column maps one spreadsheet column onto an entity field.
type Column[T any] struct {
	Header string
	Value  func(T) any
}

// Excel sheet names are capped at 31 characters.
const maxSheetName = 31

// Options control workbook layout.
type Options struct {
	SheetName string
	// PageSize is the per_page used while draining pages; zero keeps
	// the server default.
	PageSize int
}

// Write drains every page the fetch function yields, starting from the
// given filters, and writes one sheet to w. The filters' page field is
// overridden while draining.
func Write[T any](ctx context.Context, w io.Writer, fetch listpage.FetchFunc[T], filters query.Filters, columns []Column[T], opts Options) error {
	if len(columns) == 0 {
		return errors.New("export: no columns defined")
	}

	sheet := opts.SheetName
	if sheet == "" {
		sheet = "Export"
	}
	if len(sheet) > maxSheetName {
		sheet = sheet[:maxSheetName]
	}

	file := excelize.NewFile()
	defer func() { _ = file.Close() }()
	if err := file.SetSheetName(file.GetSheetName(0), sheet); err != nil {
		return errors.Wrap(err, "naming sheet")
	}

	header := make([]any, len(columns))
	for i, col := range columns {
		header[i] = col.Header
	}
	if err := setRow(file, sheet, 1, header); err != nil {
		return err
	}

	row := 2
	filters = filters.Clone()
	if opts.PageSize > 0 {
		filters.PerPage = opts.PageSize
	}
	filters.Page = 1

	for {
		page, err := fetch(ctx, filters)
		if err != nil {
			return err
		}
		for _, entity := range page.Data {
			values := make([]any, len(columns))
			for i, col := range columns {
				values[i] = col.Value(entity)
			}
			if err := setRow(file, sheet, row, values); err != nil {
				return err
			}
			row++
		}
		if !page.Meta.HasNext() {
			break
		}
		filters.Page = page.Meta.CurrentPage + 1
	}

	if err := file.Write(w); err != nil {
		return errors.Wrap(err, "writing workbook")
	}
	return nil
}

func setRow(file *excelize.File, sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return errors.Wrap(err, "computing cell name")
	}
	if err := file.SetSheetRow(sheet, cell, &values); err != nil {
		return errors.Wrapf(err, "writing row %d", row)
	}
	return nil
}

// Filename builds the conventional download name for an entity export.
func Filename(entity string) string {
	return fmt.Sprintf("xetasuite_%s.xlsx", entity)
}
