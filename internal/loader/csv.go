package loader

import (
	"context"
	"encoding/csv"
	"errors"
	"io"
	"slices"

	"github.com/jszwec/csvutil"
	"github.com/rotisserie/eris"

	"github.com/sells-group/agency-dashboard/internal/model"
)

// ReadCSV decodes a comma-separated dataset with a header row. Short rows are
// padded with empty cells and stray quotes are kept as literal text; a row
// longer than the header fails the load.
func ReadCSV(ctx context.Context, r io.Reader) (*model.Dataset, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, eris.New("loader: csv: empty file")
	}
	if err != nil {
		return nil, eris.Wrap(err, "loader: csv: read header")
	}
	header = uniqueHeader(header)
	if err := checkColumns(header); err != nil {
		return nil, err
	}

	dec, err := csvutil.NewDecoder(&paddedReader{r: cr, width: len(header)}, header...)
	if err != nil {
		return nil, eris.Wrap(err, "loader: csv: read header")
	}

	ds := &model.Dataset{Columns: header}
	for {
		if ctx.Err() != nil {
			return nil, eris.Wrap(ctx.Err(), "loader: csv: context cancelled")
		}

		var row agencyRow
		err := dec.Decode(&row)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, eris.Wrapf(err, "loader: csv: row %d", len(ds.Agencies)+1)
		}
		ds.Agencies = append(ds.Agencies, row.agency(dec.Record()))
	}
	return ds, nil
}

// paddedReader extends records shorter than width with empty cells.
type paddedReader struct {
	r     *csv.Reader
	width int
}

func (p *paddedReader) Read() ([]string, error) {
	record, err := p.r.Read()
	if err != nil {
		return nil, err
	}
	if n := len(record); n < p.width {
		record = append(slices.Clip(record), make([]string, p.width-n)...)
	}
	return record, nil
}
