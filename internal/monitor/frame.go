package monitor

import (
	"fmt"

	"glltail/internal/gll"
	"glltail/internal/ui"
)

// statusFrame builds the normal one-line status block (plus the optional
// raw-echo line). The renderer strips the color codes when stdout is not a
// terminal.
func (m *Monitor) statusFrame(clock string, fix Fix, stale bool) []string {
	// A hemisphere can be empty on a no-fix sentence; drop the comma
	// after the value then, so the gap does not read like a field.
	latComma, lonComma := "", ""
	if fix.LatHemi != "" {
		latComma = ui.White + ","
	}
	if fix.LonHemi != "" {
		lonComma = ui.White + ","
	}

	line := fmt.Sprintf("%s%s %s| %sLat: %s%s%s %s%s %s| %sLong: %s%s%s %s%s",
		ui.Yellow, clock,
		ui.White, ui.Green, ui.Gray, fix.Lat, latComma, ui.Gray, fix.LatHemi,
		ui.White, ui.Green, ui.Gray, fix.Lon, lonComma, ui.Gray, fix.LonHemi)

	if fix.Clock != "" && fix.Clock != gll.NoFixTime {
		line += fmt.Sprintf(" %s| %sfix %s%s", ui.White, ui.Green, ui.Gray, fix.Clock)
	}
	if fix.Valid == "V" {
		line += " " + ui.Yellow + "(no fix)"
	}
	if stale {
		line += " " + ui.Yellow + "(stale)"
	}

	lines := []string{line}
	if m.cfg.ShowRaw {
		lines = append(lines, ui.Gray+"raw: "+fix.Raw)
	}
	return lines
}

// waitingFrame is shown before the first GLL line ever appears.
func (m *Monitor) waitingFrame(clock string) []string {
	return []string{fmt.Sprintf("%s%s %s| %s%s",
		ui.Yellow, clock, ui.White, ui.Gray,
		ui.Waiting("Waiting for data", m.step))}
}

// errorFrame is the two-line diagnostic block. The extra height is cleaned
// up automatically on the next frame by the renderer's line accounting.
func (m *Monitor) errorFrame(clock string, err error) []string {
	return []string{
		fmt.Sprintf("%s%s %s| Bits lost... Looping again...", ui.Yellow, clock, ui.White),
		fmt.Sprintf("Error: %v", err),
	}
}
