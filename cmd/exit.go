package cmd

import (
	"errors"

	"github.com/clems4ever/pjdsplit/config"
	"github.com/clems4ever/pjdsplit/splitter"
)

// Exit codes, one per error category.
const (
	ExitOK             = 0
	ExitUnexpected     = 1
	ExitConfig         = 2
	ExitNotFound       = 3
	ExitRead           = 4
	ExitMarkerMismatch = 5
	ExitFragmentParse  = 6
	ExitDirCreate      = 7
	ExitFileWrite      = 8
)

// ExitCode maps an error returned by the root command to a process exit code.
func ExitCode(err error) int {
	var (
		readErr     *splitter.ReadError
		mismatchErr *splitter.MarkerCountMismatchError
		orderErr    *splitter.MisorderedMarkersError
		fragErr     *splitter.FragmentError
		dirErr      *splitter.DirectoryCreateError
		writeErr    *splitter.FileWriteError
	)
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, config.ErrConfig):
		return ExitConfig
	case errors.Is(err, splitter.ErrNotFound):
		return ExitNotFound
	case errors.As(err, &readErr):
		return ExitRead
	case errors.As(err, &mismatchErr), errors.As(err, &orderErr):
		return ExitMarkerMismatch
	case errors.As(err, &fragErr):
		return ExitFragmentParse
	case errors.As(err, &dirErr):
		return ExitDirCreate
	case errors.As(err, &writeErr):
		return ExitFileWrite
	}
	return ExitUnexpected
}
