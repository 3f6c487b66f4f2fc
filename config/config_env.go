package config

import "os"

// ApplyEnvConfig applies PJDSPLIT_* environment variables. They override the
// config file but not flags set on the command line.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)
	s.setBoolFromString("html-decode", os.Getenv("PJDSPLIT_HTML_DECODE"), &cfg.HTMLDecode)
	s.setString("output", os.Getenv("PJDSPLIT_OUTPUT"), &cfg.Output)
	s.setBoolFromString("slug", os.Getenv("PJDSPLIT_SLUG"), &cfg.Slug)
	s.setBoolFromString("verbose", os.Getenv("PJDSPLIT_VERBOSE"), &cfg.Verbose)
	return s.setPolicy("on-error", os.Getenv("PJDSPLIT_ON_ERROR"), &cfg.Policy)
}
