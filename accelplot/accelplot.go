// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package accelplot records acceleration readings and renders them as a
// line chart with one trace per axis.
package accelplot

import (
	"fmt"
	"image"
	"io"

	"github.com/GermanBionicSystems/accel/adxl343"
	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"
)

// Opts represents the options of the chart.
type Opts struct {
	Width  int
	Height int
	// FullScale is the acceleration in g at the top and bottom edges.
	FullScale float64
}

// DefaultOpts is a 800x300 chart spanning ±2g.
var DefaultOpts = Opts{Width: 800, Height: 300, FullScale: 2}

const margin = 20

// Trace colors, X Y Z.
var traceRGB = [3][3]float64{{0.8, 0, 0}, {0, 0.6, 0}, {0, 0, 0.8}}

// Trace accumulates readings.
type Trace struct {
	opts    Opts
	samples []adxl343.Acceleration
}

// New returns an empty Trace. opts may be nil.
func New(opts *Opts) *Trace {
	if opts == nil {
		opts = &DefaultOpts
	}
	o := *opts
	if o.Width <= 2*margin {
		o.Width = DefaultOpts.Width
	}
	if o.Height <= 2*margin {
		o.Height = DefaultOpts.Height
	}
	if o.FullScale <= 0 {
		o.FullScale = DefaultOpts.FullScale
	}
	return &Trace{opts: o}
}

// Add appends a reading.
func (t *Trace) Add(a adxl343.Acceleration) {
	t.samples = append(t.samples, a)
}

// Len returns the number of readings.
func (t *Trace) Len() int {
	return len(t.samples)
}

// y maps an acceleration to a row, clamped to the plot area.
func (t *Trace) y(v float64) float64 {
	if v > t.opts.FullScale {
		v = t.opts.FullScale
	} else if v < -t.opts.FullScale {
		v = -t.opts.FullScale
	}
	half := float64(t.opts.Height)/2 - margin
	return float64(t.opts.Height)/2 - v/t.opts.FullScale*half
}

// x maps a sample index to a column.
func (t *Trace) x(i int) float64 {
	if len(t.samples) < 2 {
		return margin
	}
	return margin + float64(i)*float64(t.opts.Width-2*margin)/float64(len(t.samples)-1)
}

func (t *Trace) draw() *gg.Context {
	w := float64(t.opts.Width)
	dc := gg.NewContext(t.opts.Width, t.opts.Height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	// Grid at 0g and at full scale.
	dc.SetRGB(0.8, 0.8, 0.8)
	dc.SetLineWidth(1)
	for _, v := range []float64{-t.opts.FullScale, 0, t.opts.FullScale} {
		dc.DrawLine(margin, t.y(v), w-margin, t.y(v))
		dc.Stroke()
	}
	dc.SetFontFace(basicfont.Face7x13)
	dc.SetRGB(0.3, 0.3, 0.3)
	dc.DrawString(fmt.Sprintf("%+gg", t.opts.FullScale), 2, t.y(t.opts.FullScale)-2)
	dc.DrawString(fmt.Sprintf("%+gg", -t.opts.FullScale), 2, t.y(-t.opts.FullScale)+13)

	dc.SetLineWidth(2)
	for axis := 0; axis < 3; axis++ {
		rgb := traceRGB[axis]
		dc.SetRGB(rgb[0], rgb[1], rgb[2])
		dc.DrawString("XYZ"[axis:axis+1], w-margin+4, margin+float64(axis)*14)
		for i, a := range t.samples {
			v := [3]float64{a.X, a.Y, a.Z}[axis]
			if i == 0 {
				dc.MoveTo(t.x(i), t.y(v))
			} else {
				dc.LineTo(t.x(i), t.y(v))
			}
		}
		dc.Stroke()
	}
	return dc
}

// Image renders the chart.
func (t *Trace) Image() image.Image {
	return t.draw().Image()
}

// EncodePNG renders the chart as PNG into w.
func (t *Trace) EncodePNG(w io.Writer) error {
	return t.draw().EncodePNG(w)
}

// SavePNG renders the chart as PNG into the file at path.
func (t *Trace) SavePNG(path string) error {
	return t.draw().SavePNG(path)
}
