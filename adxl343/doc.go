// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package adxl343 controls an Analog Devices ADXL343 3-axis accelerometer
// over I²C. The ADXL345 shares the same register map and device ID and is
// driven by this package as well.
//
// The device is configured from a Settings value. Configuration always
// happens while the device is in standby; measurement is then switched on
// explicitly with BeginMeasurements:
//
//	d := adxl343.NewI2C(bus)
//	s := adxl343.DefaultSettings().
//		WithRange(adxl343.Range16G).
//		WithResolution(adxl343.FullResolution)
//	if err := d.WithSettings(s); err != nil { ... }
//	if err := d.ConfirmDevice(); err != nil { ... }
//	if err := d.Init(); err != nil { ... }
//	if err := d.BeginMeasurements(); err != nil { ... }
//	a, err := d.ReadAccel()
//
// # Datasheet
//
// https://www.analog.com/media/en/technical-documentation/data-sheets/adxl343.pdf
//
// https://www.analog.com/media/en/technical-documentation/data-sheets/ADXL345.pdf
package adxl343
