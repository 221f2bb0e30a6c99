package loader

import (
	"context"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/sells-group/agency-dashboard/internal/model"
)

// readXLSX reads the first sheet of a workbook. The first row is the header;
// blank rows are skipped and short rows are padded.
func readXLSX(ctx context.Context, path string) (*model.Dataset, error) {
	f, err := xlsx.OpenFile(path)
	if err != nil {
		return nil, eris.Wrap(err, "loader: xlsx: open file")
	}
	if len(f.Sheets) == 0 {
		return nil, eris.New("loader: xlsx: workbook has no sheets")
	}
	sheet := f.Sheets[0]
	if len(sheet.Rows) == 0 {
		return nil, eris.Errorf("loader: xlsx: sheet %q is empty", sheet.Name)
	}

	header := rowToStrings(sheet.Rows[0], 0)
	for len(header) > 0 && header[len(header)-1] == "" {
		header = header[:len(header)-1]
	}
	header = uniqueHeader(header)
	if err := checkColumns(header); err != nil {
		return nil, err
	}

	index := make(map[string]int, len(header))
	for i, col := range header {
		index[col] = i
	}

	ds := &model.Dataset{Columns: header}
	for _, row := range sheet.Rows[1:] {
		if ctx.Err() != nil {
			return nil, eris.Wrap(ctx.Err(), "loader: xlsx: context cancelled")
		}

		cells := rowToStrings(row, len(header))
		if isBlank(cells) {
			continue
		}
		decoded := agencyRow{
			Name:     cells[index[model.ColumnName]],
			Address:  cells[index[model.ColumnAddress]],
			Locality: cells[index[model.ColumnLocality]],
			Profit:   cells[index[model.ColumnProfit]],
		}
		ds.Agencies = append(ds.Agencies, decoded.agency(cells))
	}
	return ds, nil
}

// rowToStrings returns the cell texts of row, padded or cut to width when
// width is positive.
func rowToStrings(row *xlsx.Row, width int) []string {
	if row == nil {
		return make([]string, width)
	}
	n := len(row.Cells)
	if width > 0 {
		n = width
	}
	cells := make([]string, n)
	for j, cell := range row.Cells {
		if j >= n {
			break
		}
		cells[j] = cell.String()
	}
	return cells
}

func isBlank(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
