//go:build linux

package audio

import (
	"fmt"

	"github.com/jfreymuth/pulse"
)

type pulseContext struct {
	client *pulse.Client
}

func NewContext() (Context, error) {
	c, err := pulse.NewClient()
	if err != nil {
		return nil, fmt.Errorf("pulse: %w", err)
	}
	return &pulseContext{client: c}, nil
}

func (p *pulseContext) Devices() ([]Device, error) {
	sinks, err := p.client.ListSinks()
	if err != nil {
		return nil, fmt.Errorf("pulse list sinks: %w", err)
	}
	var devices []Device
	for _, s := range sinks {
		// Sink IDs carry the transport markers (bluez_sink, usb, analog);
		// the human-readable description carries the vendor name. Type
		// against both.
		devices = append(devices, Device{
			ID:   s.ID(),
			Name: s.Name(),
			Type: TypeFromName(s.ID() + " " + s.Name()),
		})
	}
	return devices, nil
}

func (p *pulseContext) Close() {
	p.client.Close()
}
