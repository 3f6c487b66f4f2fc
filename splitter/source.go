package splitter

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"unicode/utf8"
)

// ReadInput reads r until EOF and returns the trimmed text.
// Any read failure or invalid UTF-8 yields an empty string.
func ReadInput(r io.Reader) string {
	b, err := io.ReadAll(r)
	if err != nil || !utf8.Valid(b) {
		return ""
	}
	return strings.TrimSpace(string(b))
}

// ReadFile returns the whole content of the file at path, untrimmed.
func ReadFile(path string) (string, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("%s: %w", path, ErrNotFound)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return "", &ReadError{Path: path, Err: err}
	}
	if !utf8.Valid(b) {
		return "", &ReadError{Path: path, Err: ErrInvalidUTF8}
	}
	return string(b), nil
}
