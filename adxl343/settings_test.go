// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package adxl343

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"periph.io/x/conn/v3/physic"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	if got := s.BWRateByte(); got != 0b00001010 {
		t.Fatalf("BW_RATE = %#08b", got)
	}
	if got := s.DataFormatByte(); got != 0 {
		t.Fatalf("DATA_FORMAT = %#08b", got)
	}
	if got := s.PowerCtlByte(); got != 0 {
		t.Fatalf("POWER_CTL = %#08b", got)
	}
	if s.Rate() != Rate100Hz || s.Range() != Range2G || s.Justification() != RightJustified ||
		s.Resolution() != Resolution10Bit || s.LowPower() || s.InMeasurementMode() {
		t.Fatalf("unexpected defaults: %s", s)
	}
	if got, want := s.String(), "100Hz ±2g right 10-bit standby"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestSettingsWithReturnsCopy(t *testing.T) {
	base := DefaultSettings()
	changed := base.
		WithRate(Rate12_5Hz).
		WithRange(Range8G).
		WithJustification(LeftJustified).
		WithResolution(FullResolution).
		WithLowPower(true)
	if diff := cmp.Diff(DefaultSettings(), base, cmp.AllowUnexported(Settings{})); diff != "" {
		t.Fatalf("receiver mutated (-want +got):\n%s", diff)
	}
	if got := changed.BWRateByte(); got != 1<<4|0b0111 {
		t.Fatalf("BW_RATE = %#08b", got)
	}
	if got := changed.DataFormatByte(); got != 1<<3|1<<2|0b10 {
		t.Fatalf("DATA_FORMAT = %#08b", got)
	}
	if got := changed.WithMeasurementMode(true).PowerCtlByte(); got != 1<<3 {
		t.Fatalf("POWER_CTL = %#08b", got)
	}
}

func TestSettingsToggleMeasurementMode(t *testing.T) {
	s := DefaultSettings()
	s.toggleMeasurementMode()
	if !s.InMeasurementMode() {
		t.Fatal("expected measurement mode")
	}
	s.toggleMeasurementMode()
	if s.InMeasurementMode() {
		t.Fatal("expected standby")
	}
}

func TestSettingsScale(t *testing.T) {
	for _, test := range []struct {
		rng     Range
		res     Resolution
		bits    uint
		gPerLSB float64
		lsbPerG uint16
	}{
		{Range2G, Resolution10Bit, 10, 1.0 / 256.0, 256},
		{Range4G, Resolution10Bit, 10, 1.0 / 128.0, 128},
		{Range8G, Resolution10Bit, 10, 1.0 / 64.0, 64},
		{Range16G, Resolution10Bit, 10, 1.0 / 32.0, 32},
		{Range2G, FullResolution, 10, 1.0 / 256.0, 256},
		{Range4G, FullResolution, 11, 1.0 / 256.0, 256},
		{Range8G, FullResolution, 12, 1.0 / 256.0, 256},
		{Range16G, FullResolution, 13, 1.0 / 256.0, 256},
	} {
		t.Run(test.rng.String()+" "+test.res.String(), func(t *testing.T) {
			s := DefaultSettings().WithRange(test.rng).WithResolution(test.res)
			if got := s.ResolutionBits(); got != test.bits {
				t.Fatalf("ResolutionBits() = %d, want %d", got, test.bits)
			}
			if got := s.GPerLSB(); got != test.gPerLSB {
				t.Fatalf("GPerLSB() = %v, want %v", got, test.gPerLSB)
			}
			if got := s.LSBPerG(); got != test.lsbPerG {
				t.Fatalf("LSBPerG() = %d, want %d", got, test.lsbPerG)
			}
		})
	}
}

func TestRateFrequency(t *testing.T) {
	if got := Rate100Hz.Frequency(); got != 100*physic.Hertz {
		t.Fatalf("Rate100Hz = %s", got)
	}
	if got := Rate12_5Hz.Frequency(); got != 12500*physic.MilliHertz {
		t.Fatalf("Rate12_5Hz = %s", got)
	}
	for r := Rate0_10Hz; r <= Rate3200Hz; r++ {
		got, err := RateFromFrequency(r.Frequency())
		if err != nil {
			t.Fatal(err)
		}
		if got != r {
			t.Fatalf("RateFromFrequency(%s) = %d, want %d", r.Frequency(), got, r)
		}
		if r > Rate0_10Hz && r.Frequency() <= (r-1).Frequency() {
			t.Fatalf("rate %d is not above rate %d", r, r-1)
		}
	}
	if _, err := RateFromFrequency(42 * physic.Hertz); err == nil {
		t.Fatal("expected error for 42Hz")
	}
}

func TestRangeG(t *testing.T) {
	for r, want := range map[Range]int{Range2G: 2, Range4G: 4, Range8G: 8, Range16G: 16} {
		if got := r.G(); got != want {
			t.Fatalf("%s.G() = %d, want %d", r, got, want)
		}
	}
}
