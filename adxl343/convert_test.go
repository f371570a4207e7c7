// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package adxl343

import (
	"encoding/binary"
	"testing"
)

func le(v uint16) [2]byte {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	return b
}

// Full resolution, ±16g, left justified: 13 significant bits at the top of
// the word.
func TestRawAxisLeftJustified16G(t *testing.T) {
	s := DefaultSettings().
		WithRange(Range16G).
		WithJustification(LeftJustified).
		WithResolution(FullResolution)

	plus9 := s.RawAxis(le(9 * 256 << 3))
	if plus9 != 2304 {
		t.Fatalf("+9g decoded to %d", plus9)
	}
	if got := s.ToG(plus9); got != 9.0 {
		t.Fatalf("+9g converted to %v", got)
	}

	minus9 := s.RawAxis(le(0b1_0111_0000_0000 << 3))
	if minus9 != -2304 {
		t.Fatalf("-9g decoded to %d", minus9)
	}
	if got := s.ToG(minus9); got != -9.0 {
		t.Fatalf("-9g converted to %v", got)
	}
}

func TestRawAxisRightJustified10Bit(t *testing.T) {
	s := DefaultSettings()
	for _, test := range []struct {
		pair [2]byte
		want int16
	}{
		{[2]byte{0x00, 0x00}, 0},
		{[2]byte{0x01, 0x00}, 1},
		{[2]byte{0xFF, 0x01}, 511},
		{[2]byte{0xFF, 0xFF}, -1},
		{[2]byte{0x00, 0xFE}, -512},
		{[2]byte{0x00, 0x01}, 256},
	} {
		if got := s.RawAxis(test.pair); got != test.want {
			t.Fatalf("RawAxis(%#v) = %d, want %d", test.pair, got, test.want)
		}
	}
	if got := s.ToG(256); got != 1.0 {
		t.Fatalf("ToG(256) = %v", got)
	}
}

func TestRawAxisFixedResolutionScale(t *testing.T) {
	// 10-bit mode at ±16g: 32 LSB/g.
	s := DefaultSettings().WithRange(Range16G)
	raw := s.RawAxis([2]byte{0x20, 0x00})
	if raw != 32 {
		t.Fatalf("RawAxis = %d", raw)
	}
	if got := s.ToG(raw); got != 1.0 {
		t.Fatalf("ToG = %v", got)
	}
}

// The same reading packed by the device in either justification decodes to
// the same signed count.
func TestJustificationInvariance(t *testing.T) {
	for _, rng := range []Range{Range2G, Range4G, Range8G, Range16G} {
		for _, res := range []Resolution{Resolution10Bit, FullResolution} {
			right := DefaultSettings().WithRange(rng).WithResolution(res)
			left := right.WithJustification(LeftJustified)
			bits := right.ResolutionBits()
			lo, hi := -(1 << (bits - 1)), 1<<(bits-1)
			for v := lo; v < hi; v++ {
				rightWord := uint16(int16(v))
				leftWord := uint16(int16(v)) << (16 - bits)
				r := right.RawAxis(le(rightWord))
				l := left.RawAxis(le(leftWord))
				if r != int16(v) || l != int16(v) {
					t.Fatalf("%s %s: %d decoded right=%d left=%d", rng, res, v, r, l)
				}
			}
		}
	}
}

// Padding bits below the reading in left justified mode are discarded.
func TestRawAxisIgnoresPadding(t *testing.T) {
	s := DefaultSettings().WithJustification(LeftJustified)
	if got := s.RawAxis(le(1<<6 | 0x3F)); got != 1 {
		t.Fatalf("RawAxis = %d", got)
	}
}

func TestSampleDecode(t *testing.T) {
	smp := Sample{0x00, 0x01, 0x00, 0xFF, 0x00, 0x00}
	s := DefaultSettings()
	raw := s.Raw(smp)
	if raw != (RawAcceleration{X: 256, Y: -256, Z: 0}) {
		t.Fatalf("Raw = %s", raw)
	}
	a := s.Accel(smp)
	if a != (Acceleration{X: 1, Y: -1, Z: 0}) {
		t.Fatalf("Accel = %s", a)
	}
	if got, want := a.String(), "X:1.000g Y:-1.000g Z:0.000g"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}
