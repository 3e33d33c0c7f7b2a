package monitor

import (
	"fmt"
	"os"

	"glltail/internal/ui"
)

// appendRecord appends one converted fix to the record file. The file is
// opened and closed per write so an external `tail -f` or rotation never
// fights a held descriptor. Only fully converted fixes reach this point.
func appendRecord(path, clock string, fix Fix) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open record file: %w", err)
	}
	defer f.Close()

	_, err = fmt.Fprintf(f, "%s%s, %s, %s, %s, %s\n",
		ui.Yellow, clock, fix.Lat, fix.LatHemi, fix.Lon, fix.LonHemi)
	if err != nil {
		return fmt.Errorf("append record: %w", err)
	}
	return nil
}
