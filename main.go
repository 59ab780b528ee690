package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"audioroute/audio"
	"audioroute/log"
	"audioroute/route"

	"golang.org/x/term"
)

var version = "dev"

func main() {
	watchFlag := flag.Bool("watch", false, "Subscribe to route changes and stream them")
	tuiFlag := flag.Bool("tui", true, "Render watch mode with a terminal UI (needs a terminal)")
	jsonFlag := flag.Bool("json", false, "Machine-readable output")
	listFlag := flag.Bool("list", false, "List output devices with their inferred types and exit")
	intervalFlag := flag.Duration("interval", 250*time.Millisecond, "Device poll interval for change detection")
	fakeFlag := flag.Bool("fake", false, "Use a scripted fake backend instead of the system audio (demo mode)")
	logPathFlag := flag.String("logpath", "", "log directory path (default: OS-specific location, use ./ for current dir)")
	versionFlag := flag.Bool("version", false, "Print version and exit")
	flag.Parse()

	if *versionFlag {
		fmt.Printf("audioroute %s\n", version)
		os.Exit(0)
	}

	logPath, err := log.ResolveDir(*logPathFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to resolve log directory: %v\n", err)
		os.Exit(1)
	}
	log.SetDir(logPath)

	ctx, notifier := newBackend(*fakeFlag, *intervalFlag)
	if ctx != nil {
		defer ctx.Close()
	}

	bridge := route.New(ctx, notifier)
	defer bridge.Close()

	if *listFlag {
		listDevices(ctx, *jsonFlag)
		return
	}

	if !*watchFlag {
		printRoute(bridge.CurrentRoute(), *jsonFlag)
		return
	}

	if err := log.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not init logging: %v\n", err)
	} else {
		defer log.Close()
		log.SessionStart(backendName(*fakeFlag), *intervalFlag)
	}

	if *tuiFlag && term.IsTerminal(int(os.Stdout.Fd())) {
		runTUI(bridge, ctx)
		return
	}
	watchPlain(bridge, *jsonFlag)
}

// newBackend builds the platform context and the change notification
// source. When the platform context cannot be acquired, both come back
// nil: queries then resolve to unknown and subscriptions stay silent
// until restart, rather than failing.
func newBackend(fake bool, interval time.Duration) (audio.Context, audio.Notifier) {
	if fake {
		f := audio.NewFakeContext(audio.Device{ID: "spk", Name: "Built-in Speaker", Type: audio.TypeBuiltinSpeaker})
		go runFakeScript(f)
		return f, f
	}

	ctx, err := audio.NewContext()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: audio context init failed: %v\n", err)
		return nil, nil
	}

	w := audio.NewWatcher(ctx)
	if err := w.SetInterval(interval); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return ctx, w
}

func backendName(fake bool) string {
	if fake {
		return "fake"
	}
	return "system"
}

// runFakeScript cycles the fake backend through a plug/unplug sequence
// so watch mode has something to show: speaker, then bluetooth arrives,
// then wired outranks both, then everything unplugs again.
func runFakeScript(f *audio.FakeContext) {
	spk := audio.Device{ID: "spk", Name: "Built-in Speaker", Type: audio.TypeBuiltinSpeaker}
	bt := audio.Device{ID: "bt", Name: "AirPods Pro", Type: audio.TypeBluetoothA2DP}
	wired := audio.Device{ID: "jack", Name: "External Headphones", Type: audio.TypeWiredHeadphones}

	steps := [][]audio.Device{
		{spk},
		{spk, bt},
		{spk, bt, wired},
		{spk, bt},
		{spk},
		{},
	}
	for i := 0; ; i++ {
		time.Sleep(2 * time.Second)
		f.SetDevices(steps[i%len(steps)]...)
	}
}

func listDevices(ctx audio.Context, asJSON bool) {
	var devices []audio.Device
	if ctx != nil {
		var err error
		devices, err = ctx.Devices()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error enumerating devices: %v\n", err)
			os.Exit(1)
		}
	}

	if asJSON {
		type deviceJSON struct {
			ID   string `json:"id"`
			Name string `json:"name"`
			Type string `json:"type"`
		}
		out := make([]deviceJSON, 0, len(devices))
		for _, d := range devices {
			out = append(out, deviceJSON{ID: d.ID, Name: d.Name, Type: d.Type.String()})
		}
		json.NewEncoder(os.Stdout).Encode(out)
		return
	}

	if len(devices) == 0 {
		fmt.Println("No output devices found.")
		return
	}
	for _, d := range devices {
		fmt.Printf("%-44s %s\n", d.Name, d.Type)
	}
}

func printRoute(r route.Route, asJSON bool) {
	if asJSON {
		json.NewEncoder(os.Stdout).Encode(struct {
			Route route.Route `json:"route"`
		}{r})
		return
	}
	fmt.Println(r)
}

func watchPlain(bridge *route.Bridge, asJSON bool) {
	sub := bridge.Subscribe()
	defer sub.Cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	events := 0
	for {
		select {
		case ev := <-sub.Events():
			events++
			log.RouteChange(string(ev.Route))
			if asJSON {
				json.NewEncoder(os.Stdout).Encode(struct {
					Route route.Route `json:"route"`
					Time  time.Time   `json:"time"`
				}{ev.Route, time.Now()})
			} else {
				fmt.Printf("%s  %s\n", time.Now().Format("15:04:05"), ev.Route)
			}
		case <-sigChan:
			log.SessionEnd(events)
			return
		}
	}
}
