// Package presenter renders the diagnostic figure and prints the report.
package presenter

import (
	"fmt"
	"image/color"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"prngcheck/internal/stats"
)

// FigureFile is the image artifact written on every run. The name is
// constant so repeated runs overwrite the previous figure and external
// tooling can rely on the path.
const FigureFile = "prng_quality.png"

// SaveFigure composes the histogram and the lag-1 scatter into a single
// two-panel PNG at filename.
func SaveFigure(h *stats.Histogram, pairs []stats.Pair, filename string) error {
	histPlot, err := histogramPlot(h)
	if err != nil {
		return fmt.Errorf("histogram panel: %v", err)
	}
	scatterPlot, err := lagScatterPlot(pairs)
	if err != nil {
		return fmt.Errorf("scatter panel: %v", err)
	}

	img := vgimg.NewWith(
		vgimg.UseWH(12*vg.Inch, 5*vg.Inch),
		vgimg.UseDPI(150),
	)
	dc := draw.New(img)

	plots := [][]*plot.Plot{{histPlot, scatterPlot}}
	tiles := draw.Tiles{
		Rows: 1,
		Cols: 2,
		PadX: vg.Millimeter * 5,
		PadY: vg.Millimeter * 2,
	}
	canvases := plot.Align(plots, tiles, dc)
	plots[0][0].Draw(canvases[0][0])
	plots[0][1].Draw(canvases[0][1])

	w, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create figure file: %v", err)
	}
	defer w.Close()

	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write figure: %v", err)
	}
	return nil
}

func histogramPlot(h *stats.Histogram) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Histogram"
	p.X.Label.Text = "Value"
	p.Y.Label.Text = "Frequency"

	bins := make([]plotter.HistogramBin, len(h.Bins))
	for i, b := range h.Bins {
		bins[i] = plotter.HistogramBin{
			Min:    b.Low,
			Max:    b.High,
			Weight: float64(b.Count),
		}
	}

	// the bins come from stats.NewHistogram; constructing the plotter
	// directly keeps its own binning out of the picture
	bars := &plotter.Histogram{
		Bins:      bins,
		FillColor: color.NRGBA{R: 100, G: 149, B: 237, A: 178},
		LineStyle: draw.LineStyle{
			Color: color.Black,
			Width: vg.Points(0.25),
		},
	}
	p.Add(bars)

	return p, nil
}

func lagScatterPlot(pairs []stats.Pair) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Consecutive pairs"
	p.X.Label.Text = "x_i"
	p.Y.Label.Text = "x_{i+1}"

	xys := make(plotter.XYs, len(pairs))
	for i, pr := range pairs {
		xys[i].X = pr.X
		xys[i].Y = pr.Y
	}

	s, err := plotter.NewScatter(xys)
	if err != nil {
		return nil, err
	}
	// tiny translucent markers: with many points the density is the
	// signal, not individual points
	s.GlyphStyle = draw.GlyphStyle{
		Color:  color.NRGBA{R: 31, G: 119, B: 180, A: 153},
		Radius: vg.Points(0.5),
		Shape:  draw.CircleGlyph{},
	}
	p.Add(s)

	return p, nil
}
