// Package loader reads the agency dataset from CSV or XLSX files and derives
// the numeric profit column.
package loader

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/sells-group/agency-dashboard/internal/model"
)

const xlsxMIME = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Options configures Load.
type Options struct {
	// Encoding names the CSV charset (WHATWG label). Empty means UTF-8.
	Encoding string
}

// Load reads the dataset at path. It fails only when the file cannot be
// opened or is not usable tabular data; unparseable profit values become
// missing amounts.
func Load(ctx context.Context, path string, opts Options) (*model.Dataset, error) {
	var (
		ds  *model.Dataset
		err error
	)
	if isXLSX(path) {
		ds, err = readXLSX(ctx, path)
	} else {
		ds, err = readCSVFile(ctx, path, opts)
	}
	if err != nil {
		return nil, err
	}
	ds.Source = path

	missing := 0
	for _, a := range ds.Agencies {
		if !a.Profit.Valid {
			missing++
		}
	}
	zap.L().Debug("loader: dataset loaded",
		zap.String("path", path),
		zap.Int("rows", len(ds.Agencies)),
		zap.Int("missing_profit", missing),
	)
	return ds, nil
}

// isXLSX sniffs the file content. A plain zip archive counts only when it
// carries the .xlsx extension.
func isXLSX(path string) bool {
	mt, err := mimetype.DetectFile(path)
	if err != nil {
		return false
	}
	for m := mt; m != nil; m = m.Parent() {
		if m.Is(xlsxMIME) {
			return true
		}
		if m.Is("application/zip") {
			return strings.EqualFold(filepath.Ext(path), ".xlsx")
		}
	}
	return false
}

func readCSVFile(ctx context.Context, path string, opts Options) (*model.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, eris.Wrapf(err, "loader: open %s", path)
	}
	defer f.Close() //nolint:errcheck

	r, err := decodeCharset(f, opts.Encoding)
	if err != nil {
		return nil, err
	}
	return ReadCSV(ctx, r)
}

// decodeCharset converts r to UTF-8 and drops a leading byte order mark.
func decodeCharset(r io.Reader, label string) (io.Reader, error) {
	if label == "" || strings.EqualFold(label, "utf-8") || strings.EqualFold(label, "utf8") {
		return transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder())), nil
	}
	enc, err := htmlindex.Get(label)
	if err != nil {
		return nil, eris.Wrapf(err, "loader: unsupported encoding %q", label)
	}
	return transform.NewReader(r, unicode.BOMOverride(enc.NewDecoder())), nil
}

// checkColumns fails when header lacks any required column.
func checkColumns(header []string) error {
	var missing []string
	for _, col := range model.RequiredColumns {
		if !slices.Contains(header, col) {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return eris.Errorf("loader: missing columns %q", missing)
	}
	return nil
}

// uniqueHeader renames repeated column names to "name.1", "name.2" and so on,
// so the first occurrence keeps its name and binds the record fields.
func uniqueHeader(header []string) []string {
	out := make([]string, len(header))
	seen := make(map[string]bool, len(header))
	for _, col := range header {
		seen[col] = true
	}
	counts := make(map[string]int, len(header))
	for i, col := range header {
		if counts[col] == 0 {
			counts[col] = 1
			out[i] = col
			continue
		}
		name := col
		for seen[name] {
			name = col + "." + strconv.Itoa(counts[col])
			counts[col]++
		}
		seen[name] = true
		out[i] = name
	}
	return out
}

// agencyRow is the decoded shape of one source row.
type agencyRow struct {
	Name     string `csv:"Name"`
	Address  string `csv:"Address"`
	Locality string `csv:"Locality"`
	Profit   string `csv:"Latest profit after tax (€)"`
}

func (r agencyRow) agency(record []string) model.Agency {
	return model.Agency{
		Name:       r.Name,
		Address:    r.Address,
		Locality:   r.Locality,
		ProfitText: r.Profit,
		Profit:     ParseProfit(r.Profit),
		Row:        slices.Clone(record),
	}
}
