// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// adxl343 reads an ADXL343 accelerometer on an I²C bus and prints, draws,
// plots or publishes the readings.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/GermanBionicSystems/accel/accelbar"
	"github.com/GermanBionicSystems/accel/accelmqtt"
	"github.com/GermanBionicSystems/accel/accelplot"
	"github.com/GermanBionicSystems/accel/adxl343"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/host/v3"
)

type config struct {
	bus      string
	settings adxl343.Settings
	interval time.Duration
	duration time.Duration
	bars     bool
	png      string
	broker   string
	topic    string
	verbose  bool
}

func parseFlags(args []string) (*config, error) {
	fs := flag.NewFlagSet("adxl343", flag.ContinueOnError)
	c := &config{}
	rate := 100 * physic.Hertz
	fs.StringVar(&c.bus, "bus", "", "I²C bus to use")
	fs.Var(&rate, "rate", "output data rate, from 97.656mHz to 3.2kHz")
	g := fs.Int("range", 2, "range in g: 2, 4, 8 or 16")
	left := fs.Bool("left", false, "use left justified data")
	full := fs.Bool("full", false, "use full resolution")
	lowPower := fs.Bool("lowpower", false, "use reduced power operation")
	fs.DurationVar(&c.interval, "interval", 100*time.Millisecond, "time between readings")
	fs.DurationVar(&c.duration, "duration", 0, "stop after this long; 0 runs until interrupted")
	fs.BoolVar(&c.bars, "bars", false, "draw readings as bars")
	fs.StringVar(&c.png, "png", "", "write a chart of the readings to this PNG file on exit")
	fs.StringVar(&c.broker, "mqtt", "", "publish readings to this MQTT broker, e.g. tcp://localhost:1883")
	fs.StringVar(&c.topic, "topic", accelmqtt.DefaultOpts.Topic, "MQTT topic")
	fs.BoolVar(&c.verbose, "v", false, "verbose mode")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		return nil, errors.New("unexpected argument, try -help")
	}
	if c.interval <= 0 {
		return nil, errors.New("-interval must be positive")
	}

	r, err := adxl343.RateFromFrequency(rate)
	if err != nil {
		return nil, err
	}
	var rng adxl343.Range
	switch *g {
	case 2:
		rng = adxl343.Range2G
	case 4:
		rng = adxl343.Range4G
	case 8:
		rng = adxl343.Range8G
	case 16:
		rng = adxl343.Range16G
	default:
		return nil, fmt.Errorf("invalid -range %d; valid values are 2, 4, 8, 16", *g)
	}
	s := adxl343.DefaultSettings().WithRate(r).WithRange(rng).WithLowPower(*lowPower)
	if *left {
		s = s.WithJustification(adxl343.LeftJustified)
	}
	if *full {
		s = s.WithResolution(adxl343.FullResolution)
	}
	c.settings = s
	return c, nil
}

func run(c *config) error {
	if _, err := host.Init(); err != nil {
		return err
	}
	b, err := i2creg.Open(c.bus)
	if err != nil {
		return err
	}
	defer b.Close()

	d := adxl343.NewI2C(b)
	if err := d.WithSettings(c.settings); err != nil {
		return err
	}
	if err := d.ConfirmDevice(); err != nil {
		return err
	}
	if err := d.Init(); err != nil {
		return err
	}
	if err := d.BeginMeasurements(); err != nil {
		return err
	}
	defer d.Destroy()
	log.Printf("%s on %s", d, b)

	var pub *accelmqtt.Publisher
	if c.broker != "" {
		mc, err := accelmqtt.Connect(c.broker, fmt.Sprintf("adxl343-%d", os.Getpid()))
		if err != nil {
			return err
		}
		defer mc.Disconnect(250)
		pub = accelmqtt.New(mc, &accelmqtt.Opts{Topic: c.topic, Timeout: accelmqtt.DefaultOpts.Timeout})
		log.Printf("publishing to %s on %s", c.topic, c.broker)
	}

	var bars *accelbar.Dev
	if c.bars {
		bars = accelbar.New(&accelbar.Opts{Width: 16, FullScale: float64(c.settings.Range().G())})
		defer bars.Halt()
	}

	var plot *accelplot.Trace
	if c.png != "" {
		plot = accelplot.New(&accelplot.Opts{
			Width:     accelplot.DefaultOpts.Width,
			Height:    accelplot.DefaultOpts.Height,
			FullScale: float64(c.settings.Range().G()),
		})
		defer func() {
			if err := plot.SavePNG(c.png); err != nil {
				log.Printf("plot: %v", err)
				return
			}
			log.Printf("wrote %d readings to %s", plot.Len(), c.png)
		}()
	}

	var stop <-chan time.Time
	if c.duration > 0 {
		stop = time.After(c.duration)
	}
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sig)
	return loop(d, c.interval, stop, sig, func(now time.Time, a adxl343.Acceleration) error {
		if plot != nil {
			plot.Add(a)
		}
		if pub != nil {
			if err := pub.Publish(now, a); err != nil {
				log.Printf("mqtt: %v", err)
			}
		}
		if bars != nil {
			return bars.Show(a)
		}
		fmt.Println(a)
		return nil
	})
}

type accelReader interface {
	ReadAccel() (adxl343.Acceleration, error)
}

// loop reads r every interval and hands each reading to emit. It returns nil
// once stop fires or a signal is received so the caller's deferred clean-up
// runs.
func loop(r accelReader, interval time.Duration, stop <-chan time.Time, sig <-chan os.Signal, emit func(time.Time, adxl343.Acceleration) error) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return nil
		case s := <-sig:
			log.Printf("%s, shutting down", s)
			return nil
		case now := <-ticker.C:
			a, err := r.ReadAccel()
			if err != nil {
				return err
			}
			if err := emit(now, a); err != nil {
				return err
			}
		}
	}
}

func mainImpl() error {
	c, err := parseFlags(os.Args[1:])
	if err != nil {
		return err
	}
	log.SetFlags(0)
	if c.verbose {
		log.SetFlags(log.Lmicroseconds)
	}
	return run(c)
}

func main() {
	if err := mainImpl(); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "adxl343: %s.\n", err)
		os.Exit(1)
	}
}
