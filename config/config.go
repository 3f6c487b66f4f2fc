package config

import (
	"errors"
	"fmt"

	"github.com/clems4ever/pjdsplit/splitter"
)

// DefaultOutput is the output directory used when none is configured.
const DefaultOutput = "."

// ErrConfig marks every configuration error. Check with errors.Is.
var ErrConfig = errors.New("configuration error")

// Config holds the settings for one pjdsplit run.
type Config struct {
	Input      string
	Stdin      bool
	HTMLDecode bool
	Output     string
	Policy     splitter.Policy
	Slug       bool
	Verbose    bool
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Output: DefaultOutput,
		Policy: splitter.PolicyAbort,
	}
}

// ValidateSource checks that exactly one input source is selected.
func (c *Config) ValidateSource() error {
	if c.Stdin && c.Input != "" {
		return fmt.Errorf("%w: please provide path OR set stdin flag", ErrConfig)
	}
	if !c.Stdin && c.Input == "" {
		return fmt.Errorf("%w: file path is empty", ErrConfig)
	}
	return nil
}

// Validate checks the whole configuration.
func (c *Config) Validate() error {
	if err := c.ValidateSource(); err != nil {
		return err
	}
	if c.Output == "" {
		return fmt.Errorf("%w: output directory is empty", ErrConfig)
	}
	if _, err := splitter.ParsePolicy(string(c.Policy)); err != nil {
		return fmt.Errorf("%w: %v", ErrConfig, err)
	}
	return nil
}

// Options converts the configuration to pipeline options.
func (c *Config) Options() splitter.Options {
	policy, _ := splitter.ParsePolicy(string(c.Policy))
	return splitter.Options{
		HTMLDecode: c.HTMLDecode,
		Policy:     policy,
		Slug:       c.Slug,
	}
}

// configSetter applies values only when the matching flag was not set
// explicitly on the command line.
type configSetter struct {
	changed map[string]bool
}

func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

func (s *configSetter) setPolicy(flag, value string, dst *splitter.Policy) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	p, err := splitter.ParsePolicy(value)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrConfig, flag, err)
	}
	*dst = p
	return nil
}

func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setBoolFromString accepts "true" and "1" as true, anything else as false.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value == "true" || value == "1"
}
