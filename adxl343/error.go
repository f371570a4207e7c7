// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package adxl343

import (
	"errors"
	"fmt"
)

// ErrMeasurementModeBeforeConfig is returned when Settings are assigned to a
// Dev that is measuring, or when the Settings already claim measurement mode.
var ErrMeasurementModeBeforeConfig = errors.New("adxl343: attempted to turn on measurement mode prior to configuration")

// ErrReleased is returned by every bus operation of a Dev after Destroy.
var ErrReleased = errors.New("adxl343: device released")

// BusError wraps an error returned by the I²C transport.
type BusError struct {
	Reg byte
	Err error
}

func (e *BusError) Error() string {
	return fmt.Sprintf("adxl343: bus error on register %#04x: %v", e.Reg, e.Err)
}

func (e *BusError) Unwrap() error {
	return e.Err
}

// DeviceIDMismatchError is returned when DEVID does not hold DeviceIDValue.
type DeviceIDMismatchError struct {
	Got byte
}

func (e *DeviceIDMismatchError) Error() string {
	return fmt.Sprintf("adxl343: wrong device ID returned: got %#04x, want %#04x", e.Got, DeviceIDValue)
}
