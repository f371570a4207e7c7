// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package adxl343

import "fmt"

// Sample is one raw reading as stored in DATAX0 through DATAZ1:
// X low, X high, Y low, Y high, Z low, Z high.
type Sample [6]byte

// Axes splits s into its X, Y and Z register pairs, low byte first.
func (s Sample) Axes() [3][2]byte {
	return [3][2]byte{{s[0], s[1]}, {s[2], s[3]}, {s[4], s[5]}}
}

// RawAxis decodes one register pair into a signed count at the active
// resolution.
//
// Right justified data is first moved to the left justified position so that
// both packings go through the same arithmetic shift, which sign extends from
// the top bit and discards the padding.
func (s Settings) RawAxis(pair [2]byte) int16 {
	w := uint16(pair[1])<<8 | uint16(pair[0])
	shift := 16 - s.ResolutionBits()
	if s.justification == RightJustified {
		// 6 in 10-bit mode; full resolution at ±4g and above has more bits.
		w <<= shift
	}
	return int16(w) >> shift
}

// ToG converts a signed count into g.
func (s Settings) ToG(raw int16) float64 {
	return float64(raw) * s.GPerLSB()
}

// Raw decodes a whole sample into signed counts.
func (s Settings) Raw(smp Sample) RawAcceleration {
	a := smp.Axes()
	return RawAcceleration{X: s.RawAxis(a[0]), Y: s.RawAxis(a[1]), Z: s.RawAxis(a[2])}
}

// Accel decodes a whole sample into g.
func (s Settings) Accel(smp Sample) Acceleration {
	r := s.Raw(smp)
	return Acceleration{X: s.ToG(r.X), Y: s.ToG(r.Y), Z: s.ToG(r.Z)}
}

// RawAcceleration is a reading in counts at the active resolution.
type RawAcceleration struct {
	X int16
	Y int16
	Z int16
}

func (a RawAcceleration) String() string {
	return fmt.Sprintf("X:%d Y:%d Z:%d", a.X, a.Y, a.Z)
}

// Acceleration is a reading in g.
type Acceleration struct {
	X float64
	Y float64
	Z float64
}

func (a Acceleration) String() string {
	return fmt.Sprintf("X:%.3fg Y:%.3fg Z:%.3fg", a.X, a.Y, a.Z)
}
