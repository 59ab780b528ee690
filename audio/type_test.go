package audio

import "testing"

func TestTypeFromName(t *testing.T) {
	cases := []struct {
		name string
		want DeviceType
	}{
		{"AirPods Pro", TypeBluetoothA2DP},
		{"WH-1000XM5", TypeBluetoothA2DP},
		{"Bose QuietComfort 45", TypeBluetoothA2DP},
		{"bluez_sink.AC_12_2F_00_11_22.a2dp_sink Galaxy Buds2", TypeBluetoothA2DP},
		{"bluez_sink.AC_12_2F_00_11_22.handsfree_head_unit Jabra Evolve", TypeBluetoothHFP},
		{"Pixel Buds Pro (LE Audio)", TypeBluetoothLE},
		{"USB Audio Device", TypeUSBHeadset},
		{"Logitech USB Headset H390", TypeUSBHeadset},
		{"Gaming Headset (3.5mm)", TypeWiredHeadset},
		{"External Headphones", TypeWiredHeadphones},
		{"Line Out (rear)", TypeWiredHeadphones},
		{"MacBook Pro Speakers", TypeBuiltinSpeaker},
		{"alsa_output.pci-0000_00_1f.3.analog-stereo Built-in Audio Analog Stereo", TypeBuiltinSpeaker},
		{"Internal Audio", TypeBuiltinSpeaker},
		{"Phone Earpiece", TypeBuiltinEarpiece},
		{"HDMI / DisplayPort 1", TypeUnknown},
		{"AirPlay", TypeUnknown},
		{"", TypeUnknown},
	}
	for _, tc := range cases {
		if got := TypeFromName(tc.name); got != tc.want {
			t.Errorf("TypeFromName(%q) = %s, want %s", tc.name, got, tc.want)
		}
	}
}

func TestDeviceTypeString(t *testing.T) {
	// Every defined tag has a distinct, non-empty label; out-of-range
	// tags fold into "unknown".
	types := []DeviceType{
		TypeUnknown, TypeWiredHeadphones, TypeWiredHeadset, TypeUSBHeadset,
		TypeBluetoothA2DP, TypeBluetoothLE, TypeBluetoothHFP,
		TypeBuiltinSpeaker, TypeBuiltinEarpiece,
	}
	seen := make(map[string]DeviceType)
	for _, typ := range types {
		s := typ.String()
		if s == "" {
			t.Errorf("%d: empty label", typ)
		}
		if prev, dup := seen[s]; dup {
			t.Errorf("label %q shared by %d and %d", s, prev, typ)
		}
		seen[s] = typ
	}
	if got := DeviceType(99).String(); got != "unknown" {
		t.Errorf("out-of-range tag label = %q, want unknown", got)
	}
}
