// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package adxl343

import (
	"fmt"

	"periph.io/x/conn/v3/physic"
)

var rateFrequency = [16]physic.Frequency{
	Rate0_10Hz: 97656250 * physic.NanoHertz,
	Rate0_20Hz: 195312500 * physic.NanoHertz,
	Rate0_39Hz: 390625 * physic.MicroHertz,
	Rate0_78Hz: 781250 * physic.MicroHertz,
	Rate1_56Hz: 1562500 * physic.MicroHertz,
	Rate3_13Hz: 3125 * physic.MilliHertz,
	Rate6_25Hz: 6250 * physic.MilliHertz,
	Rate12_5Hz: 12500 * physic.MilliHertz,
	Rate25Hz:   25 * physic.Hertz,
	Rate50Hz:   50 * physic.Hertz,
	Rate100Hz:  100 * physic.Hertz,
	Rate200Hz:  200 * physic.Hertz,
	Rate400Hz:  400 * physic.Hertz,
	Rate800Hz:  800 * physic.Hertz,
	Rate1600Hz: 1600 * physic.Hertz,
	Rate3200Hz: 3200 * physic.Hertz,
}

// Frequency returns the nominal output data rate.
func (r Rate) Frequency() physic.Frequency {
	return rateFrequency[r&bwRateMask]
}

func (r Rate) String() string {
	return r.Frequency().String()
}

// RateFromFrequency returns the Rate whose nominal frequency is f.
func RateFromFrequency(f physic.Frequency) (Rate, error) {
	for i, v := range rateFrequency {
		if v == f {
			return Rate(i), nil
		}
	}
	return 0, fmt.Errorf("adxl343: unsupported output data rate %s", f)
}

func (r Range) String() string {
	switch r {
	case Range2G:
		return "±2g"
	case Range4G:
		return "±4g"
	case Range8G:
		return "±8g"
	case Range16G:
		return "±16g"
	default:
		return fmt.Sprintf("Range(%d)", byte(r))
	}
}

// G returns the full scale of the range in g.
func (r Range) G() int {
	return 2 << (r & dfRangeMask)
}

func (j Justification) String() string {
	if j == LeftJustified {
		return "left"
	}
	return "right"
}

func (r Resolution) String() string {
	if r == FullResolution {
		return "full-res"
	}
	return "10-bit"
}

// Settings is the device configuration.
//
// It is a value; the With methods return a modified copy and never touch the
// receiver.
type Settings struct {
	rate          Rate
	rng           Range
	justification Justification
	resolution    Resolution
	lowPower      bool
	measuring     bool
}

// DefaultSettings returns the power-on configuration of the device: 100Hz,
// ±2g, right justified, 10-bit resolution, normal power, standby.
func DefaultSettings() Settings {
	return Settings{rate: Rate100Hz}
}

// WithRate returns s with the output data rate set to r.
func (s Settings) WithRate(r Rate) Settings {
	s.rate = r & bwRateMask
	return s
}

// WithRange returns s with the g range set to r.
func (s Settings) WithRange(r Range) Settings {
	s.rng = r & dfRangeMask
	return s
}

// WithJustification returns s with the data justification set to j.
func (s Settings) WithJustification(j Justification) Settings {
	s.justification = j & 1
	return s
}

// WithResolution returns s with the resolution mode set to r.
func (s Settings) WithResolution(r Resolution) Settings {
	s.resolution = r & 1
	return s
}

// WithLowPower returns s with reduced power operation enabled or disabled.
func (s Settings) WithLowPower(on bool) Settings {
	s.lowPower = on
	return s
}

// WithMeasurementMode returns s with the measurement flag set.
//
// Such a value is refused by Dev.WithSettings; it exists so a snapshot taken
// from a measuring Dev can be represented faithfully.
func (s Settings) WithMeasurementMode(on bool) Settings {
	s.measuring = on
	return s
}

// Rate returns the output data rate.
func (s Settings) Rate() Rate { return s.rate }

// Range returns the g range.
func (s Settings) Range() Range { return s.rng }

// Justification returns the data justification.
func (s Settings) Justification() Justification { return s.justification }

// Resolution returns the resolution mode.
func (s Settings) Resolution() Resolution { return s.resolution }

// LowPower reports whether reduced power operation is enabled.
func (s Settings) LowPower() bool { return s.lowPower }

// InMeasurementMode reports whether the measure bit is set.
func (s Settings) InMeasurementMode() bool { return s.measuring }

// toggleMeasurementMode flips the measurement flag. Only Dev calls it, right
// before it writes POWER_CTL.
func (s *Settings) toggleMeasurementMode() {
	s.measuring = !s.measuring
}

// BWRateByte returns the BW_RATE register value for s.
func (s Settings) BWRateByte() byte {
	return BWRate{Rate: s.rate, LowPower: s.lowPower}.Encode()
}

// DataFormatByte returns the DATA_FORMAT register value for s.
func (s Settings) DataFormatByte() byte {
	return DataFormat{Range: s.rng, Justify: s.justification, Resolution: s.resolution}.Encode()
}

// PowerCtlByte returns the POWER_CTL register value for s. Only the measure
// bit is ever set.
func (s Settings) PowerCtlByte() byte {
	return PowerCtl{Measure: s.measuring}.Encode()
}

// ResolutionBits returns the number of significant bits in a reading.
func (s Settings) ResolutionBits() uint {
	if s.resolution == Resolution10Bit {
		return 10
	}
	return 10 + uint(s.rng&dfRangeMask)
}

// GPerLSB returns the scale factor of a reading in g.
func (s Settings) GPerLSB() float64 {
	return 1.0 / float64(s.LSBPerG())
}

// LSBPerG returns the number of counts per g.
func (s Settings) LSBPerG() uint16 {
	if s.resolution == FullResolution {
		return 256
	}
	return 256 >> (s.rng & dfRangeMask)
}

func (s Settings) String() string {
	m := "standby"
	if s.measuring {
		m = "measuring"
	}
	lp := ""
	if s.lowPower {
		lp = " low-power"
	}
	return fmt.Sprintf("%s %s %s %s%s %s", s.rate, s.rng, s.justification, s.resolution, lp, m)
}
