package splitter

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/gosimple/slug"
	"github.com/rs/zerolog"
	"go.uber.org/multierr"
)

// Policy decides what happens when a fragment cannot be inspected.
type Policy string

const (
	// PolicyAbort fails the whole run on the first bad fragment, before any
	// file is written.
	PolicyAbort Policy = "abort"
	// PolicySkip records the bad fragment as skipped and writes the rest.
	PolicySkip Policy = "skip"
)

// ParsePolicy accepts "abort"/"abort-on-error" and "skip"/"skip-and-report".
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "abort", "abort-on-error":
		return PolicyAbort, nil
	case "skip", "skip-and-report":
		return PolicySkip, nil
	}
	return "", fmt.Errorf("unknown fragment error policy %q (want abort or skip)", s)
}

type Options struct {
	HTMLDecode bool
	Policy     Policy
	Slug       bool
}

type Status string

const (
	StatusWritten Status = "written"
	StatusSkipped Status = "skipped"
	StatusFailed  Status = "failed"
)

// Result is the outcome for a single fragment.
type Result struct {
	Fragment Fragment
	Command  string
	Path     string
	Status   Status
	Err      error
}

// Summary collects the per-fragment results of one run, in extraction order.
type Summary struct {
	Results []Result
}

func (s *Summary) count(st Status) int {
	n := 0
	for _, r := range s.Results {
		if r.Status == st {
			n++
		}
	}
	return n
}

func (s *Summary) Written() int { return s.count(StatusWritten) }
func (s *Summary) Skipped() int { return s.count(StatusSkipped) }
func (s *Summary) Failed() int  { return s.count(StatusFailed) }

// Err combines the errors of all skipped and failed fragments, or returns nil.
func (s *Summary) Err() error {
	var err error
	for _, r := range s.Results {
		err = multierr.Append(err, r.Err)
	}
	return err
}

// Listing renders the results as text: a header line per fragment, followed
// by the fragment text for written ones.
func (s *Summary) Listing() string {
	var sb strings.Builder
	for _, r := range s.Results {
		switch r.Status {
		case StatusWritten:
			fmt.Fprintf(&sb, "== %s\n%s\n", filepath.Base(r.Path), r.Fragment.Text)
		case StatusSkipped:
			fmt.Fprintf(&sb, "== skipped %02d: %v\n", r.Fragment.Index, r.Err)
		case StatusFailed:
			fmt.Fprintf(&sb, "== failed %s\n", filepath.Base(r.Path))
		}
	}
	return sb.String()
}

// Splitter runs the extraction pipeline over one source text.
type Splitter struct {
	opts     Options
	writer   *Writer
	progress io.Writer
	log      zerolog.Logger
}

func New(opts Options, w *Writer, progress io.Writer, log zerolog.Logger) *Splitter {
	if opts.Policy == "" {
		opts.Policy = PolicyAbort
	}
	if progress == nil {
		progress = io.Discard
	}
	return &Splitter{opts: opts, writer: w, progress: progress, log: log}
}

// Run decodes, extracts, inspects and writes every fragment found in text.
// Setup failures and, under PolicyAbort, inspection failures are returned
// before anything is written. Write failures are reported per fragment in
// the summary.
func (s *Splitter) Run(text string) (*Summary, error) {
	if s.opts.HTMLDecode {
		text = DecodeEntities(text)
	}

	fragments, err := Extract(text)
	if err != nil {
		return nil, err
	}
	s.log.Debug().Int("fragments", len(fragments)).Msg("extracted fragments")

	summary := &Summary{Results: make([]Result, 0, len(fragments))}
	for _, f := range fragments {
		name, err := s.command(f)
		if err != nil {
			ferr := &FragmentError{Index: f.Index, Err: err}
			if s.opts.Policy == PolicyAbort {
				return nil, ferr
			}
			s.log.Warn().Err(ferr).Int("index", f.Index).Msg("skipping fragment")
			summary.Results = append(summary.Results, Result{Fragment: f, Status: StatusSkipped, Err: ferr})
			continue
		}
		summary.Results = append(summary.Results, Result{Fragment: f, Command: name})
	}

	if err := s.writer.EnsureDir(); err != nil {
		return nil, err
	}

	for i := range summary.Results {
		r := &summary.Results[i]
		if r.Status == StatusSkipped {
			continue
		}
		r.Path, r.Err = s.writer.Write(r.Fragment, r.Command)
		if r.Err != nil {
			r.Status = StatusFailed
			cause := r.Err
			var werr *FileWriteError
			if errors.As(r.Err, &werr) {
				cause = werr.Err
			}
			s.log.Error().Err(cause).Str("path", r.Path).Msg("write failed")
			fmt.Fprintf(s.progress, "Error while writing '%s': %v\n", r.Path, cause)
			continue
		}
		r.Status = StatusWritten
		fmt.Fprintf(s.progress, "Done: %s\n", r.Path)
	}

	s.log.Debug().
		Int("written", summary.Written()).
		Int("skipped", summary.Skipped()).
		Int("failed", summary.Failed()).
		Msg("run finished")
	return summary, nil
}

func (s *Splitter) command(f Fragment) (string, error) {
	name, err := CommandName(f.Text)
	if err != nil {
		return "", err
	}
	if s.opts.Slug {
		name = slug.Make(name)
		if name == "" {
			return "", ErrEmptyCommand
		}
	}
	return name, nil
}
