package project

import "github.com/ndarilek/tma/internal/tmux"

// Kill tears down the configured session. Exactly one tmux command runs,
// however elaborate the workspace definition is.
func Kill(cfg *Config, r tmux.Runner, opts Options) error {
	s, err := newRun(cfg, r, opts)
	if err != nil {
		return err
	}
	return s.step("kill-session", "", tmux.KillSession(s.name))
}
