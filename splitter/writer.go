package splitter

import (
	"fmt"
	"os"
	"path/filepath"
)

// Writer stores fragments as files under a single output directory.
type Writer struct {
	dir string
}

func NewWriter(dir string) *Writer {
	return &Writer{dir: dir}
}

// Dir returns the output directory.
func (w *Writer) Dir() string { return w.dir }

// EnsureDir creates the output directory and any missing parents.
func (w *Writer) EnsureDir() error {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return &DirectoryCreateError{Dir: w.dir, Err: err}
	}
	return nil
}

// FileName builds the output file name for the fragment at index. The index
// is padded to two digits and grows past that without truncation.
func FileName(index int, command string) string {
	return fmt.Sprintf("%02d_%s", index, command)
}

// Path returns the full output path for the fragment at index.
func (w *Writer) Path(index int, command string) string {
	return filepath.Join(w.dir, FileName(index, command))
}

// Write stores the fragment text, markers included, overwriting any existing
// file, and returns the path written.
func (w *Writer) Write(f Fragment, command string) (string, error) {
	path := w.Path(f.Index, command)
	if err := os.WriteFile(path, []byte(f.Text), 0o644); err != nil {
		return path, &FileWriteError{Path: path, Err: err}
	}
	return path, nil
}
