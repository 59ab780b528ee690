package route

import (
	"testing"

	"audioroute/audio"
)

func dev(t audio.DeviceType) audio.Device {
	return audio.Device{ID: t.String(), Name: t.String(), Type: t}
}

func TestClassifyEmpty(t *testing.T) {
	if got := Classify(nil); got != Unknown {
		t.Errorf("Classify(nil) = %q, want %q", got, Unknown)
	}
	if got := Classify([]audio.Device{}); got != Unknown {
		t.Errorf("Classify([]) = %q, want %q", got, Unknown)
	}
}

func TestClassifySingleDevice(t *testing.T) {
	cases := []struct {
		typ  audio.DeviceType
		want Route
	}{
		{audio.TypeWiredHeadphones, WiredHeadset},
		{audio.TypeWiredHeadset, WiredHeadset},
		{audio.TypeUSBHeadset, WiredHeadset},
		{audio.TypeBluetoothA2DP, Bluetooth},
		{audio.TypeBluetoothLE, Bluetooth},
		{audio.TypeBluetoothHFP, Bluetooth},
		{audio.TypeBuiltinSpeaker, Speaker},
		{audio.TypeBuiltinEarpiece, Speaker},
		{audio.TypeUnknown, Unknown},
	}
	for _, tc := range cases {
		if got := Classify([]audio.Device{dev(tc.typ)}); got != tc.want {
			t.Errorf("Classify([%s]) = %q, want %q", tc.typ, got, tc.want)
		}
	}
}

func TestClassifyPriorityOrder(t *testing.T) {
	wired := dev(audio.TypeWiredHeadphones)
	bt := dev(audio.TypeBluetoothA2DP)
	spk := dev(audio.TypeBuiltinSpeaker)

	cases := []struct {
		name    string
		devices []audio.Device
		want    Route
	}{
		{"bluetooth over speaker", []audio.Device{spk, bt}, Bluetooth},
		{"bluetooth over speaker reversed", []audio.Device{bt, spk}, Bluetooth},
		{"wired over all", []audio.Device{wired, bt, spk}, WiredHeadset},
		{"wired over all reversed", []audio.Device{spk, bt, wired}, WiredHeadset},
		{"wired over all shuffled", []audio.Device{bt, wired, spk}, WiredHeadset},
		{"wired over bluetooth", []audio.Device{bt, wired}, WiredHeadset},
		{"wired over speaker", []audio.Device{spk, wired}, WiredHeadset},
		{"usb counts as wired", []audio.Device{bt, dev(audio.TypeUSBHeadset)}, WiredHeadset},
		{"hfp counts as bluetooth", []audio.Device{spk, dev(audio.TypeBluetoothHFP)}, Bluetooth},
	}
	for _, tc := range cases {
		if got := Classify(tc.devices); got != tc.want {
			t.Errorf("%s: got %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestClassifyUnrecognizedOnly(t *testing.T) {
	devices := []audio.Device{
		{ID: "hdmi", Name: "HDMI / DisplayPort 1", Type: audio.TypeUnknown},
		{ID: "airplay", Name: "AirPlay", Type: audio.TypeUnknown},
	}
	if got := Classify(devices); got != Unknown {
		t.Errorf("got %q, want %q", got, Unknown)
	}
}

func TestClassifyUnrecognizedDoesNotMask(t *testing.T) {
	devices := []audio.Device{
		{ID: "hdmi", Name: "HDMI", Type: audio.TypeUnknown},
		dev(audio.TypeBuiltinSpeaker),
	}
	if got := Classify(devices); got != Speaker {
		t.Errorf("got %q, want %q", got, Speaker)
	}
}

// Every input, including junk, must land on one of the four defined
// routes.
func TestClassifyTotality(t *testing.T) {
	valid := map[Route]bool{Speaker: true, WiredHeadset: true, Bluetooth: true, Unknown: true}
	allTypes := []audio.DeviceType{
		audio.TypeUnknown, audio.TypeWiredHeadphones, audio.TypeWiredHeadset,
		audio.TypeUSBHeadset, audio.TypeBluetoothA2DP, audio.TypeBluetoothLE,
		audio.TypeBluetoothHFP, audio.TypeBuiltinSpeaker, audio.TypeBuiltinEarpiece,
		audio.DeviceType(99), // out-of-range tag
	}

	var sets [][]audio.Device
	sets = append(sets, nil)
	for _, a := range allTypes {
		sets = append(sets, []audio.Device{dev(a)})
		for _, b := range allTypes {
			sets = append(sets, []audio.Device{dev(a), dev(b)})
		}
	}
	for _, s := range sets {
		got := Classify(s)
		if !valid[got] {
			t.Fatalf("Classify(%v) returned %q, not one of the four routes", s, got)
		}
	}
}
