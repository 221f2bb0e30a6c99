// Package export writes enriched agencies as CSV, JSON, YAML or XLSX.
package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strings"

	"github.com/jszwec/csvutil"
	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"
	"gopkg.in/yaml.v3"

	"github.com/sells-group/agency-dashboard/internal/model"
)

// Format is an output encoding.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatXLSX Format = "xlsx"
)

// Formats lists the supported formats.
var Formats = []Format{FormatCSV, FormatJSON, FormatYAML, FormatXLSX}

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	switch f {
	case FormatCSV, FormatJSON, FormatYAML, FormatXLSX:
		return f, nil
	case "yml":
		return FormatYAML, nil
	}
	return "", eris.Errorf("export: unknown format %q", s)
}

// Columns is the header of the flat formats.
var Columns = []string{
	model.ColumnName,
	model.ColumnAddress,
	model.ColumnLocality,
	model.ColumnProfit,
	model.ColumnDerivedProfit,
	"Latitude",
	"Longitude",
}

// Write encodes rows to w in format f.
func Write(w io.Writer, f Format, rows []model.EnrichedAgency) error {
	if rows == nil {
		rows = []model.EnrichedAgency{}
	}
	switch f {
	case FormatCSV:
		return writeCSV(w, rows)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return eris.Wrap(enc.Encode(rows), "export: json")
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rows); err != nil {
			return eris.Wrap(err, "export: yaml")
		}
		return eris.Wrap(enc.Close(), "export: yaml close")
	case FormatXLSX:
		return writeXLSX(w, rows)
	}
	return eris.Errorf("export: unknown format %q", f)
}

func writeCSV(w io.Writer, rows []model.EnrichedAgency) error {
	cw := csv.NewWriter(w)
	enc := csvutil.NewEncoder(cw)
	if err := enc.EncodeHeader(model.EnrichedAgency{}); err != nil {
		return eris.Wrap(err, "export: csv header")
	}
	for _, r := range rows {
		if err := enc.Encode(r); err != nil {
			return eris.Wrapf(err, "export: csv row %q", r.Name)
		}
	}
	cw.Flush()
	return eris.Wrap(cw.Error(), "export: csv flush")
}

func writeXLSX(w io.Writer, rows []model.EnrichedAgency) error {
	f := xlsx.NewFile()
	sheet, err := f.AddSheet("Agencies")
	if err != nil {
		return eris.Wrap(err, "export: xlsx add sheet")
	}

	header := sheet.AddRow()
	for _, col := range Columns {
		header.AddCell().SetString(col)
	}

	for _, r := range rows {
		row := sheet.AddRow()
		row.AddCell().SetString(r.Name)
		row.AddCell().SetString(r.Address)
		row.AddCell().SetString(r.Locality)
		row.AddCell().SetString(r.ProfitText)
		profit := row.AddCell()
		if r.Profit.Valid {
			profit.SetFloat(r.Profit.Value)
		}
		row.AddCell().SetFloat(r.Latitude)
		row.AddCell().SetFloat(r.Longitude)
	}

	return eris.Wrap(f.Write(w), "export: xlsx write")
}
