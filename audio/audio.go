package audio

import "strings"

// DeviceType is the coarse platform-level type tag of one output endpoint.
type DeviceType int

const (
	TypeUnknown DeviceType = iota
	TypeWiredHeadphones
	TypeWiredHeadset
	TypeUSBHeadset
	TypeBluetoothA2DP
	TypeBluetoothLE
	TypeBluetoothHFP
	TypeBuiltinSpeaker
	TypeBuiltinEarpiece
)

func (t DeviceType) String() string {
	switch t {
	case TypeWiredHeadphones:
		return "wiredHeadphones"
	case TypeWiredHeadset:
		return "wiredHeadset"
	case TypeUSBHeadset:
		return "usbHeadset"
	case TypeBluetoothA2DP:
		return "bluetoothA2DP"
	case TypeBluetoothLE:
		return "bluetoothLE"
	case TypeBluetoothHFP:
		return "bluetoothHFP"
	case TypeBuiltinSpeaker:
		return "builtinSpeaker"
	case TypeBuiltinEarpiece:
		return "builtinEarpiece"
	default:
		return "unknown"
	}
}

// Device describes one currently active output endpoint. Read-only;
// produced fresh on every enumeration pass.
type Device struct {
	ID   string // opaque platform-specific identifier
	Name string
	Type DeviceType
}

// Context enumerates the platform's active playback endpoints.
type Context interface {
	Devices() ([]Device, error)
	Close()
}

// Token is an opaque handle for one change-callback registration.
type Token int

// Notifier signals whenever the set of active output devices changes.
// Callbacks carry no payload and may run on an arbitrary goroutine.
type Notifier interface {
	Register(fn func()) Token
	Unregister(tok Token)
}

// Neither miniaudio nor the PulseAudio client expose transport metadata
// for playback endpoints, so device typing rides on the naming
// conventions vendors and the sound servers use. Checked in order: a
// match in an earlier list wins.
var (
	btLEKeywords = []string{
		"le audio", "le-audio", "_le.", " le)",
	}
	btHFPKeywords = []string{
		"handsfree", "hands-free", "head_unit", "headset profile",
		"hfp", "hsp",
	}
	btKeywords = []string{
		"airpods", "beats", "bose", "wh-1000", "wf-1000",
		"sony wh-", "sony wf-",
		"jabra", "galaxy buds", "pixel buds", "powerbeats",
		"jbl ", "sennheiser momentum", "plantronics",
		"tozo", "anker soundcore", "skullcandy",
		"bluetooth", "bluez", "a2dp", " bt ", " bt)", " bt]",
	}
	usbKeywords = []string{
		"usb",
	}
	wiredHeadsetKeywords = []string{
		"headset",
	}
	wiredKeywords = []string{
		"headphone", "earphone", "earbuds", "wired",
		"line out", "line-out", "aux",
	}
	earpieceKeywords = []string{
		"earpiece", "receiver", "handset",
	}
	speakerKeywords = []string{
		"speaker", "built-in", "builtin", "internal",
		"analog stereo", "analog-stereo",
	}
)

func containsAny(lower string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// TypeFromName infers a device type from the platform-reported name.
// Names that match nothing (HDMI, DisplayPort, AirPlay) come back as
// TypeUnknown.
func TypeFromName(name string) DeviceType {
	lower := strings.ToLower(name)
	switch {
	case containsAny(lower, btLEKeywords):
		return TypeBluetoothLE
	case containsAny(lower, btHFPKeywords):
		return TypeBluetoothHFP
	case containsAny(lower, btKeywords):
		return TypeBluetoothA2DP
	case containsAny(lower, usbKeywords):
		return TypeUSBHeadset
	case containsAny(lower, wiredHeadsetKeywords):
		return TypeWiredHeadset
	case containsAny(lower, wiredKeywords):
		return TypeWiredHeadphones
	case containsAny(lower, earpieceKeywords):
		return TypeBuiltinEarpiece
	case containsAny(lower, speakerKeywords):
		return TypeBuiltinSpeaker
	default:
		return TypeUnknown
	}
}
