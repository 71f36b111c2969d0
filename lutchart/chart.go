// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lutchart draws comparison charts of lookup-table benchmark
// results.
//
// A Chart is a plain description of a multi-series line chart over a
// sequence of named test data sets. TimeChart, SizeChart and
// SpeedChart build the three standard charts; Render and Save draw a
// Chart to a PNG image.
package lutchart

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"io"
	"math"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/brewer"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// A Series is one line of a Chart. Values[i] is plotted against
// the Chart's Names[i].
type Series struct {
	Label  string
	Values []float64
}

// A Chart describes a line chart with one point per test data set.
type Chart struct {
	Title  string
	XLabel string
	YLabel string

	// Names labels the x axis, in plot order.
	Names []string

	Series []Series

	// YTicks places and labels the y axis ticks. If nil, the
	// plot's default ticker is used.
	YTicks plot.Ticker

	// Note is an optional footnote drawn below the chart. It may
	// span several lines.
	Note string
}

// Options controls the size and resolution of rendered charts.
type Options struct {
	Width, Height vg.Length // size of the plot area, excluding any footnote
	DPI           int
}

// DefaultOptions returns a 10×6 inch chart at 100 dots per inch.
func DefaultOptions() Options {
	return Options{Width: 10 * vg.Inch, Height: 6 * vg.Inch, DPI: 100}
}

// A SaveError reports a chart that could not be written.
type SaveError struct {
	Path string
	Err  error
}

func (e *SaveError) Error() string {
	return fmt.Sprintf("saving chart %s: %v", e.Path, e.Err)
}

func (e *SaveError) Unwrap() error {
	return e.Err
}

const glyphRadius = 3

// Plot builds the gonum plot for c.
func (c *Chart) Plot() (*plot.Plot, error) {
	if len(c.Names) == 0 {
		return nil, errors.New("chart has no data")
	}
	for _, s := range c.Series {
		if len(s.Values) != len(c.Names) {
			return nil, fmt.Errorf("series %q has %d values for %d names", s.Label, len(s.Values), len(c.Names))
		}
	}

	p := plot.New()
	p.Title.Text = c.Title
	p.X.Label.Text = c.XLabel
	p.Y.Label.Text = c.YLabel
	p.Add(plotter.NewGrid())

	// Qualitative brewer palettes start at three colors.
	palette, err := brewer.GetPalette(brewer.TypeQualitative, "Set1", max(3, len(c.Series)))
	if err != nil {
		return nil, err
	}
	colors := palette.Colors()

	for i, s := range c.Series {
		xys := make(plotter.XYs, len(s.Values))
		for j, v := range s.Values {
			xys[j].X = float64(j)
			xys[j].Y = v
		}
		line, points, err := plotter.NewLinePoints(xys)
		if err != nil {
			return nil, fmt.Errorf("series %q: %w", s.Label, err)
		}
		line.Color = colors[i]
		points.Color = colors[i]
		points.Shape = draw.CircleGlyph{}
		points.Radius = vg.Points(glyphRadius)
		p.Add(line, points)
		p.Legend.Add(s.Label, line, points)
	}
	p.NominalX(c.Names...)

	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = draw.XRight
	p.X.Tick.Label.YAlign = draw.YTop
	if c.YTicks != nil {
		p.Y.Tick.Marker = c.YTicks
	}
	p.Legend.Top = true
	p.Legend.Left = true
	p.Legend.Padding = vg.Millimeter

	return p, nil
}

// Render draws c as a PNG image to w.
func (c *Chart) Render(w io.Writer, opts Options) error {
	p, err := c.Plot()
	if err != nil {
		return err
	}

	noteStyle := p.X.Label.TextStyle
	noteStyle.XAlign = draw.XCenter
	noteStyle.YAlign = draw.YBottom
	pad := vg.Points(8)
	var noteHeight vg.Length
	if c.Note != "" {
		noteHeight = noteStyle.Height(c.Note) + 2*pad
	}

	img := vgimg.NewWith(
		vgimg.UseWH(opts.Width, opts.Height+noteHeight),
		vgimg.UseDPI(opts.DPI),
		vgimg.UseBackgroundColor(color.White),
	)
	dc := draw.New(img)
	p.Draw(draw.Crop(dc, 0, 0, noteHeight, 0))
	if c.Note != "" {
		at := vg.Point{X: (dc.Min.X + dc.Max.X) / 2, Y: dc.Min.Y + pad}
		dc.FillText(noteStyle, at, c.Note)
	}

	_, err = vgimg.PngCanvas{Canvas: img}.WriteTo(w)
	return err
}

// Save renders c to the file at path, replacing any existing file.
// The file is not touched unless rendering succeeds.
// Errors are reported as *SaveError.
func (c *Chart) Save(path string, opts Options) error {
	var buf bytes.Buffer
	if err := c.Render(&buf, opts); err != nil {
		return &SaveError{path, err}
	}
	f, err := os.Create(path)
	if err != nil {
		return &SaveError{path, err}
	}
	if _, err := buf.WriteTo(f); err != nil {
		f.Close()
		return &SaveError{path, err}
	}
	if err := f.Close(); err != nil {
		return &SaveError{path, err}
	}
	return nil
}
