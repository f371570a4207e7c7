// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package accel is a container for the ADXL343 accelerometer driver and the
// tools built on it.
//
// The driver lives in adxl343. accelbar, accelplot and accelmqtt present
// readings on a terminal, in a PNG chart and on an MQTT broker; cmd/adxl343
// wires them together.
package accel
