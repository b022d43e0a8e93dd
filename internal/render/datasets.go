package render

import (
	"github.com/katalvlaran/timewave/datemap"
	"github.com/katalvlaran/timewave/hexagram"
)

// Symbols lists the King Wen sequence with its display metadata.
type Symbols []SymbolRow

// SymbolRow is one hexagram as shown by the sequence command.
type SymbolRow struct {
	Position int    `json:"position" yaml:"position"`
	Code     string `json:"code" yaml:"code"`
	Value    int    `json:"value" yaml:"value"`
	Glyph    string `json:"glyph" yaml:"glyph"`
	Name     string `json:"name" yaml:"name"`
}

// NewSymbols converts symbols to rows.
func NewSymbols(seq []hexagram.Symbol) Symbols {
	out := make(Symbols, len(seq))
	for i, s := range seq {
		out[i] = SymbolRow{
			Position: s.Position,
			Code:     string(s.Code),
			Value:    s.Code.Value(),
			Glyph:    s.Glyph(),
			Name:     s.Name(),
		}
	}

	return out
}

func (s Symbols) Header() []string { return []string{"position", "code", "value", "glyph", "name"} }

func (s Symbols) Rows() [][]any {
	rows := make([][]any, len(s))
	for i, r := range s {
		rows[i] = []any{r.Position, r.Code, r.Value, r.Glyph, r.Name}
	}

	return rows
}

// Differences is the difference wave with the pair behind every value.
type Differences []DifferenceRow

// DifferenceRow is one value of the difference wave.
type DifferenceRow struct {
	Index    int `json:"index" yaml:"index"`
	From     int `json:"from" yaml:"from"`
	To       int `json:"to" yaml:"to"`
	Distance int `json:"distance" yaml:"distance"`
}

func (d Differences) Header() []string { return []string{"index", "from", "to", "distance"} }

func (d Differences) Rows() [][]any {
	rows := make([][]any, len(d))
	for i, r := range d {
		rows[i] = []any{r.Index, r.From, r.To, r.Distance}
	}

	return rows
}

// Layered is a recursive wave with the layer of every value.
type Layered []LayeredRow

// LayeredRow is one value of a recursive wave.
type LayeredRow struct {
	Index int     `json:"index" yaml:"index"`
	Layer int     `json:"layer" yaml:"layer"`
	Value float64 `json:"value" yaml:"value"`
}

// NewLayered zips values and layers; both must have the same length.
func NewLayered(values []float64, layers []int) Layered {
	out := make(Layered, len(values))
	for i, v := range values {
		out[i] = LayeredRow{Index: i, Layer: layers[i], Value: v}
	}

	return out
}

func (l Layered) Header() []string { return []string{"index", "layer", "value"} }

func (l Layered) Rows() [][]any {
	rows := make([][]any, len(l))
	for i, r := range l {
		rows[i] = []any{r.Index, r.Layer, r.Value}
	}

	return rows
}

// Points is a dated wave.
type Points []datemap.DatedPoint

func (p Points) Header() []string { return []string{"date", "value"} }

func (p Points) Rows() [][]any {
	rows := make([][]any, len(p))
	for i, pt := range p {
		rows[i] = []any{pt.Date, pt.Value}
	}

	return rows
}

// Comparison is the result of the compare command.
type Comparison struct {
	Left       WaveSpec `json:"left" yaml:"left"`
	Right      WaveSpec `json:"right" yaml:"right"`
	Window     int      `json:"window" yaml:"window"`
	Distance   float64  `json:"distance" yaml:"distance"`
	Normalized float64  `json:"normalized" yaml:"normalized"`
}

// WaveSpec identifies one side of a comparison.
type WaveSpec struct {
	Iterations  int     `json:"iterations" yaml:"iterations"`
	Compression float64 `json:"compression" yaml:"compression"`
	Len         int     `json:"len" yaml:"len"`
}

func (c Comparison) Header() []string {
	return []string{"left_iterations", "left_compression", "right_iterations", "right_compression", "window", "distance", "normalized"}
}

func (c Comparison) Rows() [][]any {
	return [][]any{{
		c.Left.Iterations, c.Left.Compression,
		c.Right.Iterations, c.Right.Compression,
		c.Window, c.Distance, c.Normalized,
	}}
}
