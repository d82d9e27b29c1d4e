package digest_report

import (
	"bytes"
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

type IntegerTicks struct{}

func (IntegerTicks) Ticks(min, max float64) []plot.Tick {
	var ticks []plot.Tick
	for i := int(math.Ceil(min)); i <= int(math.Floor(max)); i++ {
		ticks = append(ticks, plot.Tick{
			Value: float64(i),
			Label: fmt.Sprintf("%d", i),
		})
	}
	return ticks
}

// GenerateLengthPlotSVG draws candidate, emitted and duplicate counts per
// peptide length and returns the SVG document.
func GenerateLengthPlotSVG(rows []LengthRow) (string, error) {
	if len(rows) == 0 {
		return "", fmt.Errorf("no peptide lengths to plot")
	}

	p := plot.New()
	p.Title.Text = "Peptides per Length"
	p.X.Label.Text = "Peptide Length"
	p.Y.Label.Text = "Peptide Count"
	p.X.Tick.Marker = IntegerTicks{}

	candidates := make(plotter.XYs, len(rows))
	emitted := make(plotter.XYs, len(rows))
	duplicates := make(plotter.XYs, len(rows))
	for i, r := range rows {
		x := float64(r.Length)
		candidates[i] = plotter.XY{X: x, Y: float64(r.Candidates)}
		emitted[i] = plotter.XY{X: x, Y: float64(r.Emitted)}
		duplicates[i] = plotter.XY{X: x, Y: float64(r.Duplicates)}
	}

	series := []struct {
		name  string
		xys   plotter.XYs
		color color.Color
		dash  []vg.Length
	}{
		{"Candidates", candidates, color.RGBA{R: 128, G: 128, B: 128, A: 255}, []vg.Length{vg.Points(4), vg.Points(2)}},
		{"Emitted", emitted, color.RGBA{R: 50, G: 100, B: 200, A: 255}, nil},
		{"Duplicates", duplicates, color.RGBA{R: 200, G: 50, B: 50, A: 255}, nil},
	}
	for _, s := range series {
		line, err := plotter.NewLine(s.xys)
		if err != nil {
			return "", err
		}
		line.LineStyle.Color = s.color
		line.LineStyle.Width = vg.Points(2)
		line.LineStyle.Dashes = s.dash
		p.Add(line)
		p.Legend.Add(s.name, line)
	}
	p.Legend.Top = true

	// Write to SVG
	var buf bytes.Buffer
	writer, err := p.WriterTo(10*vg.Inch, 4*vg.Inch, "svg")
	if err != nil {
		return "", err
	}
	_, err = writer.WriteTo(&buf)
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}
