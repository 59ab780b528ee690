// Package route classifies the platform's active audio outputs into a
// single logical route and reports route changes to subscribers.
package route

import "audioroute/audio"

// Route is the logical category of the current primary audio output.
type Route string

const (
	Speaker      Route = "speaker"
	WiredHeadset Route = "wiredHeadset"
	Bluetooth    Route = "bluetooth"
	Unknown      Route = "unknown"
)

// The three recognized buckets. An explicit physical connection is
// reported over a wireless one, and wireless over the device's own
// speaker, so the priority order is wired > bluetooth > speaker.
var (
	wiredTypes = map[audio.DeviceType]bool{
		audio.TypeWiredHeadphones: true,
		audio.TypeWiredHeadset:    true,
		audio.TypeUSBHeadset:      true,
	}
	bluetoothTypes = map[audio.DeviceType]bool{
		audio.TypeBluetoothA2DP: true,
		audio.TypeBluetoothLE:   true,
		audio.TypeBluetoothHFP:  true,
	}
	speakerTypes = map[audio.DeviceType]bool{
		audio.TypeBuiltinSpeaker:  true,
		audio.TypeBuiltinEarpiece: true,
	}
)

var priority = []struct {
	types map[audio.DeviceType]bool
	route Route
}{
	{wiredTypes, WiredHeadset},
	{bluetoothTypes, Bluetooth},
	{speakerTypes, Speaker},
}

// Classify maps the current set of active output devices to exactly one
// Route. Pure function; always returns a value. The empty set and sets
// containing only unrecognized types (HDMI, AirPlay) both classify as
// Unknown.
func Classify(devices []audio.Device) Route {
	for _, p := range priority {
		for _, d := range devices {
			if p.types[d.Type] {
				return p.route
			}
		}
	}
	return Unknown
}
