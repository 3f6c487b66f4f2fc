package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/clems4ever/pjdsplit/config"
	"github.com/clems4ever/pjdsplit/splitter"
)

// NewRootCmd builds the pjdsplit command.
func NewRootCmd() *cobra.Command {
	cfg := config.DefaultConfig()
	var cfgPath string
	onError := string(cfg.Policy)

	cmd := &cobra.Command{
		Use:   "pjdsplit [input]",
		Short: "Split <pjd> fragments of a text stream into separate files",
		Long: `pjdsplit reads a file or standard input, finds every fragment starting
with <pjd> and ending with </pjd>, and writes each one to its own file
named after its position and the text of its <command> element.`,
		Example: `  pjdsplit dump.txt -o out
  curl -s https://example.com/log | pjdsplit --stdin --html-decode -o out`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				cfg.Input = args[0]
			}
			if err := cfg.ValidateSource(); err != nil {
				return err
			}

			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

			cfgFile := cfgPath
			if cfgFile == "" {
				cfgFile = config.DefaultConfigPath()
			}
			if cfgFile != "" && config.FileExists(cfgFile) {
				fc, err := config.LoadFileConfig(cfgFile)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				if err := config.ApplyFileConfig(&cfg, fc, changed); err != nil {
					return err
				}
			} else if cfgPath != "" {
				return fmt.Errorf("%w: config file %s not found", config.ErrConfig, cfgPath)
			}
			if err := config.ApplyEnvConfig(&cfg, changed); err != nil {
				return err
			}
			if changed["on-error"] {
				p, err := splitter.ParsePolicy(onError)
				if err != nil {
					return fmt.Errorf("%w: %v", config.ErrConfig, err)
				}
				cfg.Policy = p
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			return run(cmd, cfg)
		},
	}

	f := cmd.Flags()
	f.BoolVarP(&cfg.HTMLDecode, "html-decode", "h", cfg.HTMLDecode, "decode HTML entities before searching for fragments")
	f.BoolVarP(&cfg.Stdin, "stdin", "s", cfg.Stdin, "read data from standard input")
	f.StringVarP(&cfg.Output, "output", "o", cfg.Output, "directory where results are stored (created if missing)")
	f.StringVar(&onError, "on-error", onError, "what to do with a fragment that cannot be parsed: abort or skip")
	f.BoolVar(&cfg.Slug, "slug", cfg.Slug, "sanitize command names before using them in file names")
	f.StringVarP(&cfgPath, "config", "c", "", "path to TOML config file (default $HOME/.pjdsplit/config.toml)")
	f.BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "enable debug logging")
	// -h is taken by --html-decode, so help gets no shorthand.
	f.Bool("help", false, "help for pjdsplit")

	return cmd
}

// Execute runs the root command and exits with the code matching the error.
func Execute() {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(ExitCode(err))
	}
}
