// Package sim appends synthetic GLL sentences to a capture file so the
// viewer can be exercised without a receiver attached.
package sim

import (
	"context"
	"fmt"
	"os"
	"time"
)

// Example positions cycled by the writer. The fifth entry is a valid
// sentence with no fix, to exercise the viewer's waiting animation.
var payloads = []string{
	"GPGLL,4043.9620,N,07959.0350,W,235959.00,A,A", // Pittsburgh
	"GPGLL,3403.7658,S,15052.9787,E,123045.10,A,A", // Sydney
	"GPGLL,4807.038,N,01131.000,E,104820.22,A,A",   // Munich
	"GPGLL,2237.0000,N,11408.0000,E,081530.00,A,A", // Hong Kong
	"GPGLL,,,,,123519.00,V,N",                      // no fix, time only
	"GPGLL,5130.0000,N,00007.0000,W,140000.00,A,A", // Greenwich
}

// Frame wraps an NMEA payload with '$' and its XOR checksum.
func Frame(payload string) string {
	ck := byte(0)
	for i := 0; i < len(payload); i++ {
		ck ^= payload[i]
	}
	return fmt.Sprintf("$%s*%02X", payload, ck)
}

// Writer appends one framed sentence per interval to the capture file.
type Writer struct {
	Path     string
	Interval time.Duration

	next int
}

// Sentences returns the full framed cycle, in order.
func Sentences() []string {
	out := make([]string, len(payloads))
	for i, p := range payloads {
		out[i] = Frame(p)
	}
	return out
}

// WriteNext appends the next sentence in the cycle and returns it.
func (w *Writer) WriteNext() (string, error) {
	line := Frame(payloads[w.next])
	w.next = (w.next + 1) % len(payloads)

	f, err := os.OpenFile(w.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return "", fmt.Errorf("open capture file: %w", err)
	}
	defer f.Close()
	if _, err := fmt.Fprintf(f, "%s\r\n", line); err != nil {
		return "", fmt.Errorf("append sentence: %w", err)
	}
	return line, nil
}

// Run appends sentences until ctx is cancelled. The first write happens
// immediately so a watching viewer has something to show.
func (w *Writer) Run(ctx context.Context) error {
	interval := w.Interval
	if interval <= 0 {
		interval = time.Second
	}
	for {
		if _, err := w.WriteNext(); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(interval):
		}
	}
}
