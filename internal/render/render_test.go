package render_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/katalvlaran/timewave/datemap"
	"github.com/katalvlaran/timewave/hexagram"
	"github.com/katalvlaran/timewave/internal/render"
)

func samplePoints(t *testing.T) render.Points {
	t.Helper()
	pts, err := datemap.MapWaveToDates([]float64{1, 2.5, 1234.5}, datemap.MustDate(2020, time.January, 10), 1)
	require.NoError(t, err)
	return render.Points(pts)
}

func write(t *testing.T, f render.Format, data render.Tabular) string {
	t.Helper()
	w, err := render.New(f, language.English)
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, w.Write(&buf, data))
	return buf.String()
}

func TestWrite_JSON(t *testing.T) {
	out := write(t, render.JSON, samplePoints(t))
	assert.JSONEq(t, `[
		{"date":"2020-01-07","value":1},
		{"date":"2020-01-08","value":2.5},
		{"date":"2020-01-09","value":1234.5}
	]`, out)
}

func TestWrite_YAML(t *testing.T) {
	out := write(t, render.YAML, samplePoints(t))
	assert.Contains(t, out, "2020-01-07")
	assert.Contains(t, out, "value: 2.5")
}

func TestWrite_CSV(t *testing.T) {
	out := write(t, render.CSV, samplePoints(t))
	assert.Equal(t, "date,value\n2020-01-07,1\n2020-01-08,2.5\n2020-01-09,1234.5\n", out)
}

func TestWrite_Table(t *testing.T) {
	out := write(t, render.Table, samplePoints(t))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "date"))
	assert.Contains(t, lines[3], "1,234.500000", "English grouping")
}

func TestWrite_TableLocale(t *testing.T) {
	w, err := render.New(render.Table, language.German)
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, w.Write(&buf, samplePoints(t)))
	assert.Contains(t, buf.String(), "1.234,500000")
}

func TestWrite_Symbols(t *testing.T) {
	out := write(t, render.CSV, render.NewSymbols(hexagram.Sequence()[:2]))
	assert.Equal(t, "position,code,value,glyph,name\n1,111111,63,䷀,The Creative\n2,000000,0,䷁,The Receptive\n", out)
}

func TestWrite_Layered(t *testing.T) {
	out := write(t, render.CSV, render.NewLayered([]float64{6, 4.5}, []int{0, 1}))
	assert.Equal(t, "index,layer,value\n0,0,6\n1,1,4.5\n", out)
}

func TestWrite_Comparison(t *testing.T) {
	c := render.Comparison{
		Left:     render.WaveSpec{Iterations: 10, Compression: 1.315, Len: 630},
		Right:    render.WaveSpec{Iterations: 10, Compression: 2, Len: 630},
		Window:   -1,
		Distance: 12.5,
	}
	out := write(t, render.JSON, c)
	assert.Contains(t, out, `"distance": 12.5`)
	assert.Contains(t, out, `"compression": 1.315`)
}

func TestNew_UnknownFormat(t *testing.T) {
	_, err := render.New("xml", language.English)
	assert.Error(t, err)
}
