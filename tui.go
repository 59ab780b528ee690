package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"audioroute/audio"
	"audioroute/log"
	"audioroute/route"
)

// TUI message types
type RouteMsg struct{ Route route.Route }
type DevicesMsg struct{ Devices []audio.Device }

const historyLimit = 12

type historyEntry struct {
	at    time.Time
	route route.Route
}

type tuiModel struct {
	current       route.Route
	devices       []audio.Device
	history       []historyEntry
	width, height int
}

var routeStyles = map[route.Route]lipgloss.Style{
	route.Speaker:      lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true),
	route.WiredHeadset: lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
	route.Bluetooth:    lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
	route.Unknown:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Bold(true),
}

var (
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("239"))
)

func (m tuiModel) Init() tea.Cmd {
	return nil
}

func (m tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		}

	case RouteMsg:
		m.current = msg.Route
		m.history = append(m.history, historyEntry{at: time.Now(), route: msg.Route})
		if len(m.history) > historyLimit {
			m.history = m.history[len(m.history)-historyLimit:]
		}

	case DevicesMsg:
		m.devices = msg.Devices
	}
	return m, nil
}

func (m tuiModel) View() string {
	var b strings.Builder

	b.WriteString(labelStyle.Render("Audio route") + "\n\n")
	cur := m.current
	if cur == "" {
		cur = route.Unknown
	}
	b.WriteString("  " + routeStyles[cur].Render(string(cur)) + "\n\n")

	b.WriteString(labelStyle.Render("Output devices") + "\n")
	if len(m.devices) == 0 {
		b.WriteString(dimStyle.Render("  (none found)") + "\n")
	} else {
		for _, d := range m.devices {
			b.WriteString(dimStyle.Render(fmt.Sprintf("  %s [%s]", d.Name, d.Type)) + "\n")
		}
	}

	b.WriteString("\n" + labelStyle.Render("Changes") + "\n")
	if len(m.history) == 0 {
		b.WriteString(dimStyle.Render("  waiting for events...") + "\n")
	} else {
		for i := len(m.history) - 1; i >= 0; i-- {
			e := m.history[i]
			b.WriteString(dimStyle.Render("  "+e.at.Format("15:04:05")+"  ") +
				routeStyles[e.route].Render(string(e.route)) + "\n")
		}
	}

	b.WriteString("\n" + helpStyle.Render("q to quit — audioroute "+version) + "\n")
	return b.String()
}

func runTUI(bridge *route.Bridge, ctx audio.Context) {
	p := tea.NewProgram(tuiModel{}, tea.WithAltScreen())

	sub := bridge.Subscribe()
	defer sub.Cancel()

	stop := make(chan struct{})
	go func() {
		for {
			select {
			case ev := <-sub.Events():
				log.RouteChange(string(ev.Route))
				p.Send(RouteMsg{Route: ev.Route})
				if ctx != nil {
					if devices, err := ctx.Devices(); err == nil {
						p.Send(DevicesMsg{Devices: devices})
					}
				}
			case <-stop:
				return
			}
		}
	}()

	if _, err := p.Run(); err != nil {
		log.Errorf("TUI error: %v", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	close(stop)
}
