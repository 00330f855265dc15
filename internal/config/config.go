package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// HostConfig describes a remote machine whose tmux this tool may drive.
type HostConfig struct {
	Host   string `yaml:"host"`
	User   string `yaml:"user"`
	SSHKey string `yaml:"ssh_key"`
}

// Config holds the user-level settings, as opposed to the per-project
// workspace file.
type Config struct {
	// Tmux pins the tmux binary; empty means PATH lookup.
	Tmux  string                `yaml:"tmux"`
	Hosts map[string]HostConfig `yaml:"hosts"`
}

// Load reads the settings from ~/.config/tma/config.yaml.
// Returns an empty config if the file doesn't exist.
func Load() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return &Config{}, nil
	}
	return loadFrom(filepath.Join(home, ".config", "tma", "config.yaml"), home)
}

func loadFrom(path, home string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	// Expand ~ in ssh_key paths
	for name, h := range cfg.Hosts {
		if len(h.SSHKey) > 0 && h.SSHKey[0] == '~' {
			h.SSHKey = filepath.Join(home, h.SSHKey[1:])
		}
		cfg.Hosts[name] = h
	}

	return &cfg, nil
}
