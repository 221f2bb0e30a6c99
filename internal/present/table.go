// Package present turns enriched agencies into the documents the dashboard
// views render: a data grid, a Plotly bar figure and a Leaflet map.
package present

import (
	"slices"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/sells-group/agency-dashboard/internal/model"
)

// TableView is the data grid: source columns in file order plus the derived
// profit. Coordinates are never included.
type TableView struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// Table builds the grid for rows loaded from ds.
func Table(ds *model.Dataset, rows []model.EnrichedAgency) TableView {
	columns := slices.Clone(ds.Columns)
	profitIdx := slices.Index(columns, model.ColumnDerivedProfit)
	if profitIdx < 0 {
		columns = append(columns, model.ColumnDerivedProfit)
		profitIdx = len(columns) - 1
	}

	p := message.NewPrinter(language.English)
	view := TableView{Columns: columns, Rows: make([][]string, 0, len(rows))}
	for _, r := range rows {
		cells := make([]string, len(columns))
		copy(cells, sourceCells(ds.Columns, r.Agency))
		cells[profitIdx] = formatProfit(p, r.Profit)
		view.Rows = append(view.Rows, cells)
	}
	return view
}

// sourceCells returns the raw row, or rebuilds it from the named fields when
// the agency was not read from a file.
func sourceCells(columns []string, a model.Agency) []string {
	if len(a.Row) == len(columns) {
		return a.Row
	}
	cells := make([]string, len(columns))
	for i, col := range columns {
		switch col {
		case model.ColumnName:
			cells[i] = a.Name
		case model.ColumnAddress:
			cells[i] = a.Address
		case model.ColumnLocality:
			cells[i] = a.Locality
		case model.ColumnProfit:
			cells[i] = a.ProfitText
		}
	}
	return cells
}

func formatProfit(p *message.Printer, a model.Amount) string {
	if !a.Valid {
		return ""
	}
	return p.Sprint(number.Decimal(a.Value, number.MaxFractionDigits(2)))
}
