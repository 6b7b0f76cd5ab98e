// Package tableio reads and writes tables as CSV files
package tableio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/ajitpratap0/tabular/pkg/errors"
	"github.com/ajitpratap0/tabular/pkg/schema"
	"github.com/ajitpratap0/tabular/pkg/table"
)

// CSVOptions configures CSV reading
type CSVOptions struct {
	// Delimiter is the field separator (default comma)
	Delimiter rune
	// HasHeader indicates the first row holds column names; otherwise
	// names col0..colN are generated
	HasHeader bool
	// Infer configures dtype inference over the parsed rows
	Infer schema.InferOptions
}

// DefaultCSVOptions returns the default CSV reading configuration
func DefaultCSVOptions() CSVOptions {
	return CSVOptions{
		Delimiter: ',',
		HasHeader: true,
		Infer:     schema.DefaultInferOptions(),
	}
}

// ReadCSV reads a CSV file into a typed table, inferring the schema from
// the data
func ReadCSV(path string, opts CSVOptions) (*table.Table, *schema.Schema, error) {
	f, err := os.Open(path) //nolint:gosec // G304: path is controlled by the caller
	if err != nil {
		return nil, nil, errors.Wrap(err, errors.ErrorTypeFile, "cannot open csv file")
	}
	defer f.Close()

	return ReadCSVFrom(f, opts)
}

// ReadCSVFrom reads CSV data from r into a typed table
func ReadCSVFrom(r io.Reader, opts CSVOptions) (*table.Table, *schema.Schema, error) {
	reader := csv.NewReader(r)
	if opts.Delimiter != 0 {
		reader.Comma = opts.Delimiter
	}

	records, err := reader.ReadAll()
	if err != nil {
		return nil, nil, errors.Wrap(err, errors.ErrorTypeData, "cannot parse csv")
	}
	if len(records) == 0 {
		return nil, nil, errors.New(errors.ErrorTypeData, "csv input is empty")
	}

	var headers []string
	var rows [][]string
	if opts.HasHeader {
		headers = records[0]
		rows = records[1:]
	} else {
		headers = make([]string, len(records[0]))
		for i := range headers {
			headers[i] = fmt.Sprintf("col%d", i)
		}
		rows = records
	}

	s := schema.Infer(headers, rows, opts.Infer)

	t := table.New()
	for _, field := range s.Fields {
		if err := t.AddColumn(field.Name, table.NewColumnOfType(field.Type)); err != nil {
			return nil, nil, err
		}
	}

	values := make([]interface{}, len(s.Fields))
	for i, row := range rows {
		for j, field := range s.Fields {
			v, err := parseCell(field.Type, row[j])
			if err != nil {
				return nil, nil, errors.Wrap(err, errors.ErrorTypeData,
					fmt.Sprintf("row %d, column %q", i+1, field.Name))
			}
			values[j] = v
		}
		if err := t.AppendRow(values); err != nil {
			return nil, nil, err
		}
	}

	return t, s, nil
}

// parseCell parses a raw cell according to the column type
func parseCell(colType table.ColumnType, raw string) (interface{}, error) {
	switch colType {
	case table.ColumnTypeInt:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, err
		}
		return n, nil
	case table.ColumnTypeFloat:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, err
		}
		return f, nil
	case table.ColumnTypeBool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, err
		}
		return b, nil
	default:
		return raw, nil
	}
}

// WriteCSV writes a table to a CSV file with a header row
func WriteCSV(t *table.Table, path string) error {
	f, err := os.Create(path) //nolint:gosec // G304: path is controlled by the caller
	if err != nil {
		return errors.Wrap(err, errors.ErrorTypeFile, "cannot create csv file")
	}

	if err := WriteCSVTo(f, t); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// WriteCSVTo writes a table as CSV to w
func WriteCSVTo(w io.Writer, t *table.Table) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(t.Names()); err != nil {
		return errors.Wrap(err, errors.ErrorTypeFile, "cannot write csv header")
	}

	record := make([]string, t.NumCols())
	for i := 0; i < t.NumRows(); i++ {
		row, err := t.Row(i)
		if err != nil {
			return err
		}
		for j, v := range row {
			record[j] = formatCell(v)
		}
		if err := writer.Write(record); err != nil {
			return errors.Wrap(err, errors.ErrorTypeFile, "cannot write csv row")
		}
	}

	writer.Flush()
	return writer.Error()
}

// formatCell renders a typed value as a CSV field
func formatCell(v interface{}) string {
	switch val := v.(type) {
	case string:
		return val
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'g', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	default:
		return fmt.Sprintf("%v", val)
	}
}
