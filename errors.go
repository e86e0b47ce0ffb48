package apng

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput is returned when there are no frames to assemble.
	ErrEmptyInput = errors.New("apng: no frames to assemble")

	// ErrFrameRate is returned when the frame rate cannot be expressed as an
	// fcTL delay fraction.
	ErrFrameRate = errors.New("apng: frame rate out of range")
)

// Causes carried by a FormatError.
var (
	ErrSignature   = errors.New("missing PNG signature")
	ErrTruncated   = errors.New("truncated chunk")
	ErrChunkLength = errors.New("chunk length out of range")
	ErrChecksum    = errors.New("chunk checksum mismatch")
	ErrNoHeader    = errors.New("missing or short IHDR chunk")
	ErrGeometry    = errors.New("frame size differs from first frame")
)

// FormatError reports a source file that is not a well-formed PNG.
type FormatError struct {
	Path   string // Source file, empty when parsing an anonymous reader
	Offset int64  // Byte offset of the offending chunk
	Err    error  // One of the Err* causes above
}

func (e *FormatError) Error() string {
	name := e.Path
	if name == "" {
		name = "<input>"
	}
	if e.Offset > 0 {
		return fmt.Sprintf("apng: %s: %v at offset %d", name, e.Err, e.Offset)
	}
	return fmt.Sprintf("apng: %s: %v", name, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }

// IOError reports a failure to open, read, write or close a file.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	if e.Path == "" {
		return "apng: " + e.Op + ": " + e.Err.Error()
	}
	return "apng: " + e.Op + " " + e.Path + ": " + e.Err.Error()
}

func (e *IOError) Unwrap() error { return e.Err }
