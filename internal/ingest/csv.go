// Package ingest reads survey exports into datasets.
//
// The only supported input is delimited text (CSV or a close cousin).
// Export tools are sloppy about row widths, so short rows are padded
// with empty cells rather than rejected; only a missing or empty header
// is fatal.
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/fieldlearn/personas/internal/domain"
)

// ReadCSV parses one delimited export into a dataset. The first record
// is the header; every later record becomes one row keyed by header
// name. Rows shorter than the header are padded with empty strings, and
// cells beyond the header width are dropped.
func ReadCSV(r io.Reader, comma rune) (domain.Dataset, error) {
	cr := csv.NewReader(r)
	cr.Comma = comma
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err == io.EOF {
		return domain.Dataset{}, fmt.Errorf("%w: missing header row", domain.ErrMalformedInput)
	}
	if err != nil {
		return domain.Dataset{}, fmt.Errorf("%w: %v", domain.ErrMalformedInput, err)
	}

	columns := make([]string, len(header))
	empty := true
	for i, name := range header {
		columns[i] = strings.TrimSpace(name)
		if columns[i] != "" {
			empty = false
		}
	}
	if empty {
		return domain.Dataset{}, fmt.Errorf("%w: header row has no column names", domain.ErrMalformedInput)
	}

	var rows []domain.Row
	for line := 2; ; line++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return domain.Dataset{}, fmt.Errorf("%w: line %d: %v", domain.ErrMalformedInput, line, err)
		}

		row := make(domain.Row, len(columns))
		for i, name := range columns {
			if i < len(record) {
				row[name] = record[i]
			} else {
				row[name] = ""
			}
		}
		rows = append(rows, row)
	}

	return domain.Dataset{Columns: columns, Rows: rows}, nil
}
