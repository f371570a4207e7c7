// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package accelmqtt publishes acceleration readings as JSON messages on an
// MQTT broker.
package accelmqtt

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/GermanBionicSystems/accel/adxl343"
	mqtt "github.com/eclipse/paho.mqtt.golang"
)

// Client is the part of mqtt.Client used to publish.
type Client interface {
	Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token
}

// Opts holds the publishing options.
type Opts struct {
	Topic string
	QoS   byte
	// Timeout bounds the wait for each publish acknowledgement. 0 means no
	// timeout.
	Timeout time.Duration
}

// DefaultOpts publishes on "adxl343/accel" at QoS 0.
var DefaultOpts = Opts{
	Topic:   "adxl343/accel",
	Timeout: 2 * time.Second,
}

// ErrTimeout is returned when the broker did not acknowledge in time.
var ErrTimeout = errors.New("accelmqtt: publish timed out")

// Reading is the JSON payload of a message.
type Reading struct {
	Time time.Time `json:"time"`
	X    float64   `json:"x"`
	Y    float64   `json:"y"`
	Z    float64   `json:"z"`
}

// Publisher sends readings to a topic.
type Publisher struct {
	c    Client
	opts Opts
}

// New returns a Publisher on c. opts may be nil.
func New(c Client, opts *Opts) *Publisher {
	if opts == nil {
		opts = &DefaultOpts
	}
	return &Publisher{c: c, opts: *opts}
}

// Connect opens a connection to broker, e.g. "tcp://localhost:1883".
func Connect(broker, clientID string) (mqtt.Client, error) {
	opts := mqtt.NewClientOptions().
		AddBroker(broker).
		SetClientID(clientID)
	c := mqtt.NewClient(opts)
	if token := c.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("accelmqtt: connect to %s: %w", broker, token.Error())
	}
	return c, nil
}

// Publish sends reading a taken at t and waits for the acknowledgement.
func (p *Publisher) Publish(t time.Time, a adxl343.Acceleration) error {
	payload, err := json.Marshal(Reading{Time: t, X: a.X, Y: a.Y, Z: a.Z})
	if err != nil {
		return err
	}
	token := p.c.Publish(p.opts.Topic, p.opts.QoS, false, payload)
	if p.opts.Timeout > 0 {
		if !token.WaitTimeout(p.opts.Timeout) {
			return ErrTimeout
		}
	} else {
		token.Wait()
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("accelmqtt: publish to %s: %w", p.opts.Topic, err)
	}
	return nil
}
