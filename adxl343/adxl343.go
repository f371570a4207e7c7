// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package adxl343

import (
	"fmt"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/i2c"
)

// State is the lifecycle stage of a Dev.
type State int

const (
	// Uninitialized means Settings were assigned but not written to the
	// device yet.
	Uninitialized State = iota
	// Configured means BW_RATE and DATA_FORMAT hold the current Settings.
	Configured
	// Measuring means the POWER_CTL measure bit was set.
	Measuring
	// Released means Destroy was called; the bus belongs to the caller.
	Released
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Configured:
		return "configured"
	case Measuring:
		return "measuring"
	case Released:
		return "released"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Dev is a handle to an ADXL343 on an I²C bus.
//
// Dev owns the bus exclusively and is not safe for concurrent use.
type Dev struct {
	c          *i2c.Dev
	settings   Settings
	configured bool
	released   bool
}

// NewI2C returns an uninitialized Dev with DefaultSettings. Nothing is sent
// on the bus until Init, ConfirmDevice or BeginMeasurements is called.
func NewI2C(b i2c.Bus) *Dev {
	return &Dev{
		c:        &i2c.Dev{Bus: b, Addr: I2CAddr},
		settings: DefaultSettings(),
	}
}

func (d *Dev) String() string {
	return fmt.Sprintf("ADXL343{%s %s %s %s}", d.settings.rate, d.settings.rng, d.settings.justification, d.settings.resolution)
}

// State returns the lifecycle stage of the Dev.
func (d *Dev) State() State {
	switch {
	case d.released:
		return Released
	case d.settings.measuring:
		return Measuring
	case d.configured:
		return Configured
	default:
		return Uninitialized
	}
}

// Settings returns a copy of the current settings.
func (d *Dev) Settings() Settings {
	return d.settings
}

// WithSettings replaces the settings of the Dev. The device registers are
// only updated by a following Init.
//
// The device must be in standby: while the Dev is measuring, or when s claims
// measurement mode, ErrMeasurementModeBeforeConfig is returned and the current
// settings are kept.
func (d *Dev) WithSettings(s Settings) error {
	if d.released {
		return ErrReleased
	}
	if s.measuring || d.settings.measuring {
		return ErrMeasurementModeBeforeConfig
	}
	d.settings = s
	d.configured = false
	return nil
}

// Init writes BW_RATE and then DATA_FORMAT from the current settings. It
// never enables measurement.
//
// The writes are not atomic. If the second one fails the first stays applied
// and Init can simply be called again.
func (d *Dev) Init() error {
	if err := d.WriteRegister(BWRateReg, d.settings.BWRateByte()); err != nil {
		return err
	}
	if err := d.WriteRegister(DataFormatReg, d.settings.DataFormatByte()); err != nil {
		return err
	}
	d.configured = true
	return nil
}

// ConfirmDevice verifies that DEVID reads DeviceIDValue.
func (d *Dev) ConfirmDevice() error {
	id, err := d.ReadRegister(DevID)
	if err != nil {
		return err
	}
	if id != DeviceIDValue {
		return &DeviceIDMismatchError{Got: id}
	}
	return nil
}

// BeginMeasurements sets the measure bit in POWER_CTL. It does nothing if
// the Dev is already measuring.
func (d *Dev) BeginMeasurements() error {
	if d.settings.measuring {
		return nil
	}
	return d.toggleMeasurement()
}

// TurnOffMeasurements clears the measure bit in POWER_CTL, putting the
// device in standby. It does nothing if the Dev is not measuring.
func (d *Dev) TurnOffMeasurements() error {
	if !d.settings.measuring {
		return nil
	}
	return d.toggleMeasurement()
}

// toggleMeasurement flips the measurement flag and writes the matching
// POWER_CTL value. The flag is only committed once the write succeeded.
func (d *Dev) toggleMeasurement() error {
	next := d.settings
	next.toggleMeasurementMode()
	if err := d.WriteRegister(PowerCtlReg, next.PowerCtlByte()); err != nil {
		return err
	}
	d.settings = next
	return nil
}

// Halt implements conn.Resource. It puts the device in standby.
func (d *Dev) Halt() error {
	return d.TurnOffMeasurements()
}

// ReadFullSample reads DATAX0 through DATAZ1 in a single burst.
func (d *Dev) ReadFullSample() (Sample, error) {
	var s Sample
	if err := d.tx(DataX0, []byte{DataX0}, s[:]); err != nil {
		return Sample{}, err
	}
	return s, nil
}

// ReadRawAccel reads one sample and returns it as signed counts.
func (d *Dev) ReadRawAccel() (RawAcceleration, error) {
	s, err := d.ReadFullSample()
	if err != nil {
		return RawAcceleration{}, err
	}
	return d.settings.Raw(s), nil
}

// ReadAccel reads one sample and returns it in g.
func (d *Dev) ReadAccel() (Acceleration, error) {
	s, err := d.ReadFullSample()
	if err != nil {
		return Acceleration{}, err
	}
	return d.settings.Accel(s), nil
}

// RawAxis decodes a register pair with the current settings.
func (d *Dev) RawAxis(pair [2]byte) int16 {
	return d.settings.RawAxis(pair)
}

// Axis converts a signed count into g with the current settings.
func (d *Dev) Axis(raw int16) float64 {
	return d.settings.ToG(raw)
}

// ReadRegister reads a single register.
func (d *Dev) ReadRegister(reg byte) (byte, error) {
	var r [1]byte
	if err := d.tx(reg, []byte{reg}, r[:]); err != nil {
		return 0, err
	}
	return r[0], nil
}

// WriteRegister writes a single register.
func (d *Dev) WriteRegister(reg, value byte) error {
	return d.tx(reg, []byte{reg, value}, nil)
}

// Destroy stops measurements and hands the bus and the settings back to the
// caller. The Dev is unusable afterwards.
//
// A failure to stop measurements is ignored; the device may keep sampling.
func (d *Dev) Destroy() (i2c.Bus, Settings) {
	if d.released {
		return nil, d.settings
	}
	_ = d.TurnOffMeasurements()
	d.released = true
	b := d.c.Bus
	d.c = nil
	return b, d.settings
}

func (d *Dev) tx(reg byte, w, r []byte) error {
	if d.released {
		return ErrReleased
	}
	if err := d.c.Tx(w, r); err != nil {
		return &BusError{Reg: reg, Err: err}
	}
	return nil
}

var _ conn.Resource = &Dev{}
var _ fmt.Stringer = &Dev{}
