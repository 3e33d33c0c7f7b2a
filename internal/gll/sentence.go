package gll

import (
	"fmt"
	"strings"

	nmea "github.com/adrianmo/go-nmea"
)

// Prefix is the literal token a significant capture line starts with.
const Prefix = "$GPGLL"

// Field positions within the comma split of a GLL line.
const (
	fieldTag = iota
	fieldLat
	fieldLatHemi
	fieldLon
	fieldLonHemi
	fieldTime
	fieldValidity

	minFields = fieldLonHemi + 1
)

// Sentence is the positional comma split of a single GLL capture line.
type Sentence struct {
	Line   string
	Fields []string
}

// Split tokenizes a raw capture line. The line is already known to start
// with Prefix; no checksum validation happens here.
func Split(line string) Sentence {
	return Sentence{Line: line, Fields: strings.Split(line, ",")}
}

// Coordinates returns the raw latitude and longitude fields with their
// hemisphere letters. A line with fewer than five fields is malformed.
func (s Sentence) Coordinates() (lat, latHemi, lon, lonHemi string, err error) {
	if len(s.Fields) < minFields {
		return "", "", "", "", fmt.Errorf("%w: %d field(s) in %q", ErrMalformed, len(s.Fields), s.Line)
	}
	return s.Fields[fieldLat], s.Fields[fieldLatHemi], s.Fields[fieldLon], s.Fields[fieldLonHemi], nil
}

// TimeField returns the raw UTC fix time field (hhmmss.ss), if present.
func (s Sentence) TimeField() string {
	if len(s.Fields) > fieldTime {
		return s.Fields[fieldTime]
	}
	return ""
}

// Validity reports the A/V status of the fix. When the line carries a
// checksum it is parsed with go-nmea; otherwise the raw field is used.
// ok is false when the line carries neither.
func (s Sentence) Validity() (validity string, ok bool) {
	if strings.ContainsRune(s.Line, '*') {
		if parsed, err := nmea.Parse(strings.TrimSpace(s.Line)); err == nil {
			if g, isGLL := parsed.(nmea.GLL); isGLL {
				return g.Validity, true
			}
		}
	}
	if len(s.Fields) > fieldValidity {
		return strings.TrimRight(s.Fields[fieldValidity], "\r\n"), true
	}
	return "", false
}
