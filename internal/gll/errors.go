package gll

import "errors"

// Failure kinds, so the caller can pick retry policy and display text per
// kind instead of treating every failure alike.
var (
	// ErrFileUnavailable wraps open/read failures on the capture file.
	ErrFileUnavailable = errors.New("capture file unavailable")

	// ErrNoSentence means the file was readable but held no GLL line.
	ErrNoSentence = errors.New("no GLL sentence found")

	// ErrMalformed means a matched line did not have the expected
	// positional field layout.
	ErrMalformed = errors.New("malformed GLL field layout")

	// ErrConvert means a coordinate field could not be converted.
	ErrConvert = errors.New("coordinate conversion failed")
)
