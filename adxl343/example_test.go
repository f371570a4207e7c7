// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package adxl343_test

import (
	"fmt"
	"log"
	"time"

	"github.com/GermanBionicSystems/accel/adxl343"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"
)

// Example reads the acceleration every 30ms for 3 seconds at ±16g full
// resolution.
func Example() {
	// Make sure periph is initialized.
	if _, err := host.Init(); err != nil {
		log.Fatal(err)
	}

	// Use i2creg I²C bus registry to find the first available I²C bus.
	b, err := i2creg.Open("")
	if err != nil {
		log.Fatal(err)
	}
	defer b.Close()

	d := adxl343.NewI2C(b)
	s := adxl343.DefaultSettings().
		WithRange(adxl343.Range16G).
		WithResolution(adxl343.FullResolution)
	if err := d.WithSettings(s); err != nil {
		log.Fatal(err)
	}
	if err := d.ConfirmDevice(); err != nil {
		log.Fatal(err)
	}
	if err := d.Init(); err != nil {
		log.Fatal(err)
	}
	if err := d.BeginMeasurements(); err != nil {
		log.Fatal(err)
	}
	defer d.Destroy()

	fmt.Println(d)

	ticker := time.NewTicker(30 * time.Millisecond)
	defer ticker.Stop()
	stop := time.After(3 * time.Second)
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			a, err := d.ReadAccel()
			if err != nil {
				log.Fatal(err)
			}
			fmt.Println(a)
		}
	}
}
