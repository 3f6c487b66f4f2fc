package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"

	"github.com/clems4ever/pjdsplit/config"
	"github.com/clems4ever/pjdsplit/splitter"
)

func run(cmd *cobra.Command, cfg config.Config) error {
	log := newLogger(cmd.ErrOrStderr(), cfg.Verbose)
	log.Debug().
		Str("input", cfg.Input).
		Bool("stdin", cfg.Stdin).
		Bool("html_decode", cfg.HTMLDecode).
		Str("output", cfg.Output).
		Str("on_error", string(cfg.Policy)).
		Bool("slug", cfg.Slug).
		Msg("configuration")

	var text string
	if cfg.Stdin {
		text = splitter.ReadInput(cmd.InOrStdin())
	} else {
		var err error
		if text, err = splitter.ReadFile(cfg.Input); err != nil {
			return err
		}
	}

	s := splitter.New(cfg.Options(), splitter.NewWriter(cfg.Output), cmd.OutOrStdout(), log)
	summary, err := s.Run(text)
	if err != nil {
		return err
	}

	log.Info().
		Int("written", summary.Written()).
		Int("skipped", summary.Skipped()).
		Int("failed", summary.Failed()).
		Msg("split complete")

	var writeErr error
	for _, r := range summary.Results {
		if r.Status == splitter.StatusFailed {
			writeErr = multierr.Append(writeErr, r.Err)
		}
	}
	if writeErr != nil {
		return fmt.Errorf("%d of %d fragments could not be written: %w", summary.Failed(), len(summary.Results), writeErr)
	}
	return nil
}
