// Package config handles bfg.toml interpreter configuration.
package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// FILE is the configuration file name.
const FILE = "bfg.toml"

// Config represents a bfg.toml interpreter configuration.
type Config struct {
	Modes  Modes             `toml:"modes"`
	Shell  Shell             `toml:"shell"`
	Expand map[string]string `toml:"expand"`

	// Dir is the directory containing the bfg.toml file (set at load time).
	Dir string `toml:"-"`
}

// Modes contains the execution mode defaults. Command line flags
// override them.
type Modes struct {
	Strict     bool `toml:"strict"`
	Persistent bool `toml:"persistent"`
	Debug      bool `toml:"debug"`
}

// Shell configures the interactive shell prompts.
type Shell struct {
	Prompt string `toml:"prompt"`
	Input  string `toml:"input"`
}

// Default returns the built-in configuration.
func Default() (c *Config) {
	c = &Config{}
	c.defaults()

	return
}

func (c *Config) defaults() {
	if len(c.Shell.Prompt) == 0 {
		c.Shell.Prompt = " > "
	}
	if len(c.Shell.Input) == 0 {
		c.Shell.Input = "\n?> "
	}
}

// Load parses a bfg.toml file from the given directory.
func Load(dir string) (c *Config, err error) {
	path := filepath.Join(dir, FILE)
	data, err := os.ReadFile(path)
	if err != nil {
		err = errors.Join(ErrConfigRead, err)
		return
	}

	c = &Config{}
	err = toml.Unmarshal(data, c)
	if err != nil {
		c = nil
		err = errors.Join(ErrConfigParse, err)
		return
	}

	c.Dir, err = filepath.Abs(dir)
	if err != nil {
		c = nil
		return
	}

	c.defaults()

	return
}

// FindAndLoad walks up from startDir to find a bfg.toml file, then
// loads and returns the configuration. Returns the built-in defaults
// if no file is found.
func FindAndLoad(startDir string) (c *Config, err error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return
	}

	for {
		path := filepath.Join(dir, FILE)
		if _, err := os.Stat(path); err == nil {
			return Load(dir)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root
			c = Default()
			return
		}
		dir = parent
	}
}
