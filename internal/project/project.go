// Package project turns a declarative workspace description into the
// ordered tmux commands that build it: one session, its windows, their
// panes, with working directories cascading down the tree.
package project

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// DefaultFile is the project file looked up in the working directory when
// no explicit path is given.
const DefaultFile = ".tma.toml"

// Config is one workspace definition. Loaded once per run, never mutated.
type Config struct {
	Name    string   `toml:"name"`
	Root    string   `toml:"root"`
	Attach  *bool    `toml:"attach"`
	Windows []Window `toml:"window"`
}

// Window is an ordered container of panes, addressed by its index within
// the session.
type Window struct {
	Name  string `toml:"name"`
	Root  string `toml:"root"`
	Panes []Pane `toml:"pane"`
}

// Pane is a single viewport, addressed as session:window.pane.
type Pane struct {
	Root    string `toml:"root"`
	Command string `toml:"command"`
	Split   string `toml:"split"`
}

// Load reads and decodes a project file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		// The os error already names the file.
		return nil, &ConfigError{Err: err}
	}
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, &ConfigError{Path: path, Err: err}
	}
	return &cfg, nil
}

// SessionName is the configured name, or the base name of dir when the
// project leaves it unset.
func (c *Config) SessionName(dir string) string {
	if c.Name != "" {
		return c.Name
	}
	return filepath.Base(dir)
}

// attachEnabled defaults to true; only an explicit attach = false opts out.
func (c *Config) attachEnabled() bool {
	return c.Attach == nil || *c.Attach
}

// horizontal reports whether the pane asked for a horizontal split.
func (p *Pane) horizontal() bool { return p.Split == "horizontal" }
