package splitter

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when the input file does not exist.
	ErrNotFound = errors.New("input file not found")

	// ErrInvalidUTF8 is returned when the input file is not valid UTF-8 text.
	ErrInvalidUTF8 = errors.New("stream did not contain valid UTF-8")

	// ErrParse is returned when a fragment is not a well-formed XML document.
	ErrParse = errors.New("fragment is not well-formed XML")

	// ErrMissingCommand is returned when a fragment has no direct command child.
	ErrMissingCommand = errors.New("fragment has no command element")

	// ErrEmptyCommand is returned when the command element carries no text.
	ErrEmptyCommand = errors.New("command element has no text")
)

// ReadError reports a failure while reading the input file.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("error while reading file '%s': %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// MarkerCountMismatchError reports unequal opening and closing marker counts.
type MarkerCountMismatchError struct {
	Open  int
	Close int
}

func (e *MarkerCountMismatchError) Error() string {
	return fmt.Sprintf("marker count mismatch: %d %s vs %d %s", e.Open, OpeningMarker, e.Close, ClosingMarker)
}

// MisorderedMarkersError reports a positional pair whose closing marker comes
// before its opening marker.
type MisorderedMarkersError struct {
	Index int
	Open  int
	Close int
}

func (e *MisorderedMarkersError) Error() string {
	return fmt.Sprintf("fragment %d: closing marker at offset %d precedes opening marker at offset %d", e.Index, e.Close, e.Open)
}

// FragmentError wraps an inspection failure with the fragment it belongs to.
type FragmentError struct {
	Index int
	Err   error
}

func (e *FragmentError) Error() string {
	return fmt.Sprintf("fragment %d: %v", e.Index, e.Err)
}

func (e *FragmentError) Unwrap() error { return e.Err }

// DirectoryCreateError reports that the output directory could not be created.
type DirectoryCreateError struct {
	Dir string
	Err error
}

func (e *DirectoryCreateError) Error() string {
	return fmt.Sprintf("failed to create directory '%s': %v", e.Dir, e.Err)
}

func (e *DirectoryCreateError) Unwrap() error { return e.Err }

// FileWriteError reports that a single fragment could not be written.
type FileWriteError struct {
	Path string
	Err  error
}

func (e *FileWriteError) Error() string {
	return fmt.Sprintf("error while writing '%s': %v", e.Path, e.Err)
}

func (e *FileWriteError) Unwrap() error { return e.Err }
