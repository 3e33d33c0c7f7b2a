package gll

import (
	"fmt"
	"strconv"
)

// NoFixTime is shown when the fix time field cannot be parsed.
const NoFixTime = "--:--:--"

// FixClock formats a raw hhmmss(.ss) fix time field as HH:MM:SS, shifted by
// a whole-hour UTC offset. GLL carries no date, so rollover just wraps the
// hour modulo 24.
func FixClock(field string, utcOffsetHours int) string {
	if len(field) < 6 {
		return NoFixTime
	}
	hour, err1 := strconv.Atoi(field[0:2])
	minute, err2 := strconv.Atoi(field[2:4])
	second, err3 := strconv.Atoi(field[4:6])
	if err1 != nil || err2 != nil || err3 != nil {
		return NoFixTime
	}
	hour = (hour + utcOffsetHours) % 24
	if hour < 0 {
		hour += 24
	}
	return fmt.Sprintf("%02d:%02d:%02d", hour, minute, second)
}
