// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package accelbar draws an acceleration reading as three horizontal bars on
// a terminal using ANSI color codes.
//
// Each bar is centered on 0g and grows to the left for negative values and
// to the right for positive values.
package accelbar

import (
	"bytes"
	"fmt"
	"image/color"
	"io"
	"math"
	"os"

	"github.com/GermanBionicSystems/accel/adxl343"
	"github.com/maruel/ansi256"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

// Opts represents the options available for the bars.
type Opts struct {
	// Width is the number of cells on each side of 0g.
	Width int
	// FullScale is the acceleration in g reached at the end of a bar.
	FullScale float64
	// Palette defaults to ansi256.Default.
	Palette *ansi256.Palette
	// W defaults to stdout, in which case color is only used on a terminal.
	W io.Writer
	// Plain disables ANSI codes.
	Plain bool

	_ struct{}
}

// DefaultOpts draws ±2g over 16 cells per side.
var DefaultOpts = Opts{Width: 16, FullScale: 2}

var (
	positive = color.NRGBA{0x00, 0xC0, 0x00, 0xFF}
	negative = color.NRGBA{0xC0, 0x00, 0x00, 0xFF}
	empty    = color.NRGBA{0x30, 0x30, 0x30, 0xFF}
)

// Dev renders readings to a terminal.
type Dev struct {
	w       io.Writer
	width   int
	scale   float64
	palette ansi256.Palette
	plain   bool

	buf bytes.Buffer
}

// New returns a Dev. opts may be nil.
func New(opts *Opts) *Dev {
	if opts == nil {
		opts = &DefaultOpts
	}
	p := opts.Palette
	if p == nil {
		p = ansi256.Default
	}
	d := &Dev{
		w:       opts.W,
		width:   opts.Width,
		scale:   opts.FullScale,
		palette: *p,
		plain:   opts.Plain,
	}
	if d.width <= 0 {
		d.width = DefaultOpts.Width
	}
	if d.scale <= 0 {
		d.scale = DefaultOpts.FullScale
	}
	if d.w == nil {
		d.w = colorable.NewColorableStdout()
		fd := os.Stdout.Fd()
		if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
			d.plain = true
		}
	}
	return d
}

func (d *Dev) String() string {
	return "AccelBar"
}

// Halt implements conn.Resource.
//
// It terminates the line and resets the terminal colors.
func (d *Dev) Halt() error {
	s := "\n"
	if !d.plain {
		s = "\n\033[0m"
	}
	_, err := io.WriteString(d.w, s)
	return err
}

// Show redraws the line with reading a.
func (d *Dev) Show(a adxl343.Acceleration) error {
	d.buf.Reset()
	_, _ = d.buf.WriteString("\r")
	if !d.plain {
		_, _ = d.buf.WriteString("\033[0m")
	}
	for i, v := range [3]float64{a.X, a.Y, a.Z} {
		if i != 0 {
			_ = d.buf.WriteByte(' ')
		}
		_ = d.buf.WriteByte("XYZ"[i])
		d.bar(v)
		fmt.Fprintf(&d.buf, "%+6.2fg", v)
	}
	_, err := d.buf.WriteTo(d.w)
	return err
}

// cells returns the number of filled cells for v, clamped to the width.
func (d *Dev) cells(v float64) int {
	n := int(math.Round(math.Abs(v) / d.scale * float64(d.width)))
	if n > d.width {
		n = d.width
	}
	return n
}

func (d *Dev) bar(v float64) {
	n := d.cells(v)
	if d.plain {
		_ = d.buf.WriteByte('[')
	}
	for i := 0; i < 2*d.width; i++ {
		var on bool
		c := positive
		if i < d.width {
			on = v < 0 && i >= d.width-n
			c = negative
		} else {
			on = v > 0 && i < d.width+n
		}
		switch {
		case d.plain && on:
			_ = d.buf.WriteByte('#')
		case d.plain:
			_ = d.buf.WriteByte('.')
		case on:
			_, _ = d.buf.WriteString(d.palette.Block(c))
		default:
			_, _ = d.buf.WriteString(d.palette.Block(empty))
		}
	}
	if d.plain {
		_ = d.buf.WriteByte(']')
	} else {
		_, _ = d.buf.WriteString("\033[0m")
	}
}
