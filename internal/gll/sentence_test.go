package gll

import (
	"errors"
	"fmt"
	"testing"
)

func framed(payload string) string {
	ck := byte(0)
	for i := 0; i < len(payload); i++ {
		ck ^= payload[i]
	}
	return fmt.Sprintf("$%s*%02X", payload, ck)
}

func TestCoordinates_ShortLine(t *testing.T) {
	s := Split("$GPGLL,4807.038")
	_, _, _, _, err := s.Coordinates()
	if !errors.Is(err, ErrMalformed) {
		t.Fatalf("err=%v want ErrMalformed", err)
	}
}

func TestTimeField(t *testing.T) {
	s := Split("$GPGLL,4807.038,N,01131.000,E,225444,A")
	if got := s.TimeField(); got != "225444" {
		t.Fatalf("TimeField()=%q want %q", got, "225444")
	}
	if got := Split("$GPGLL,4807.038,N,01131.000,E").TimeField(); got != "" {
		t.Fatalf("TimeField()=%q want empty", got)
	}
}

func TestValidity_ChecksummedLine(t *testing.T) {
	s := Split(framed("GPGLL,4807.038,N,01131.000,E,104820.22,A,A"))
	v, ok := s.Validity()
	if !ok || v != "A" {
		t.Fatalf("Validity()=%q,%v want A,true", v, ok)
	}
}

func TestValidity_RawFallback(t *testing.T) {
	// No checksum: go-nmea refuses the line, the raw field is used.
	s := Split("$GPGLL,,,,,123519.00,V,N")
	v, ok := s.Validity()
	if !ok || v != "V" {
		t.Fatalf("Validity()=%q,%v want V,true", v, ok)
	}
}

func TestValidity_Absent(t *testing.T) {
	s := Split("$GPGLL,4807.038,N,01131.000,E")
	if _, ok := s.Validity(); ok {
		t.Fatalf("expected no validity")
	}
}
