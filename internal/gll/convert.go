package gll

import (
	"fmt"
	"math"
	"strconv"
)

// Axis selects the fixed-width layout of a coordinate field.
type Axis int

const (
	// Lat is DDMM.mmmm: two degree digits, minutes from offset 2, the
	// decimal point at offset 4.
	Lat Axis = iota
	// Lon is DDDMM.mmmm: three degree digits, minutes from offset 3, the
	// decimal point at offset 5.
	Lon
)

func (a Axis) String() string {
	if a == Lat {
		return "lat"
	}
	return "lon"
}

// DecimalDegrees converts a degrees-minutes coordinate field to decimal
// degrees rounded to 3 places, formatted with the fewest digits that
// round-trip. Only the first two fractional-minute digits take part, matching
// the receiver's fixed-width layout. The hemisphere letter is carried
// separately by the caller and never folded into the sign here.
func DecimalDegrees(term string, axis Axis) (string, error) {
	degEnd := 2
	if axis == Lon {
		degEnd = 3
	}
	// Layout: <deg digits><2 minute digits>.<2+ fractional digits>
	if len(term) < degEnd+5 {
		return "", fmt.Errorf("%w: %s field %q too short", ErrMalformed, axis, term)
	}
	if term[degEnd+2] != '.' {
		return "", fmt.Errorf("%w: %s field %q missing decimal point", ErrMalformed, axis, term)
	}

	deg, err := strconv.ParseFloat(term[:degEnd], 64)
	if err != nil {
		return "", fmt.Errorf("%w: %s degrees %q: %v", ErrConvert, axis, term[:degEnd], err)
	}
	minutes, err := strconv.ParseFloat(term[degEnd:degEnd+2]+"."+term[degEnd+3:degEnd+5], 64)
	if err != nil {
		return "", fmt.Errorf("%w: %s minutes in %q: %v", ErrConvert, axis, term, err)
	}

	v := math.Round((deg+minutes/60)*1000) / 1000
	return strconv.FormatFloat(v, 'f', -1, 64), nil
}
