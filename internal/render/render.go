// Package render encodes CLI results as JSON, YAML, CSV or an aligned table.
package render

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
)

// Format names an output encoding.
type Format string

const (
	JSON  Format = "json"
	YAML  Format = "yaml"
	CSV   Format = "csv"
	Table Format = "table"
)

// Tabular is a result that can also be laid out as rows of cells. JSON and
// YAML encode the value itself; CSV and Table use Header and Rows.
type Tabular interface {
	Header() []string
	Rows() [][]any
}

// Writer encodes Tabular values in one format.
type Writer struct {
	format  Format
	printer *message.Printer
}

// New returns a Writer. The language only affects Table (digit grouping).
func New(format Format, lang language.Tag) (*Writer, error) {
	switch format {
	case JSON, YAML, CSV, Table:
	default:
		return nil, fmt.Errorf("render: unknown format %q", format)
	}

	return &Writer{format: format, printer: message.NewPrinter(lang)}, nil
}

// Write encodes data to w.
func (r *Writer) Write(w io.Writer, data Tabular) error {
	switch r.format {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(data)
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(data); err != nil {
			return err
		}
		return enc.Close()
	case CSV:
		return writeCSV(w, data)
	default:
		return r.writeTable(w, data)
	}
}

func writeCSV(w io.Writer, data Tabular) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(data.Header()); err != nil {
		return err
	}
	for _, row := range data.Rows() {
		rec := make([]string, len(row))
		for i, cell := range row {
			rec[i] = plainCell(cell)
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

func (r *Writer) writeTable(w io.Writer, data Tabular) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for i, h := range data.Header() {
		if i > 0 {
			fmt.Fprint(tw, "\t")
		}
		fmt.Fprint(tw, h)
	}
	fmt.Fprintln(tw)
	for _, row := range data.Rows() {
		for i, cell := range row {
			if i > 0 {
				fmt.Fprint(tw, "\t")
			}
			fmt.Fprint(tw, r.localCell(cell))
		}
		fmt.Fprintln(tw)
	}

	return tw.Flush()
}

// plainCell renders a cell for machine consumption (no grouping, full precision).
func plainCell(cell any) string {
	switch v := cell.(type) {
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case int:
		return strconv.Itoa(v)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

// localCell renders a cell for humans: grouped integers, 6-decimal floats.
func (r *Writer) localCell(cell any) string {
	switch v := cell.(type) {
	case float64:
		return r.printer.Sprintf("%.6f", v)
	case int:
		return r.printer.Sprintf("%d", v)
	default:
		return plainCell(v)
	}
}
