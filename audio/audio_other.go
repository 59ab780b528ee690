//go:build !linux

package audio

import (
	"encoding/hex"
	"fmt"

	"github.com/gen2brain/malgo"
)

type malgoContext struct {
	ctx *malgo.AllocatedContext
}

func NewContext() (Context, error) {
	ctx, err := malgo.InitContext(nil, malgo.ContextConfig{}, nil)
	if err != nil {
		return nil, err
	}
	return &malgoContext{ctx: ctx}, nil
}

func (m *malgoContext) Devices() ([]Device, error) {
	infos, err := m.ctx.Devices(malgo.Playback)
	if err != nil {
		return nil, fmt.Errorf("malgo devices: %w", err)
	}
	var result []Device
	for _, d := range infos {
		name := d.Name()
		result = append(result, Device{
			ID:   hex.EncodeToString(d.ID.Pointer()[:]),
			Name: name,
			Type: TypeFromName(name),
		})
	}
	return result, nil
}

func (m *malgoContext) Close() {
	m.ctx.Uninit()
	m.ctx.Free()
}
