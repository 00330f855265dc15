package project

import (
	"errors"
	"fmt"
)

// ErrSessionExists reports a start against a session name the server
// already has. Recreating it would clobber someone's workspace, so the run
// stops before any creation command.
var ErrSessionExists = errors.New("session already exists, set an explicit session name")

// ConfigError reports a project file that cannot be used: unreadable, not
// valid TOML, or structurally invalid.
type ConfigError struct {
	Path string
	Err  error
}

func (e *ConfigError) Error() string {
	if e.Path == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// EnvironmentError reports a process environment the run cannot work
// against: the working directory is gone, or unusable as a session name
// source.
type EnvironmentError struct {
	Err error
}

func (e *EnvironmentError) Error() string { return e.Err.Error() }

func (e *EnvironmentError) Unwrap() error { return e.Err }

// StepError reports a tmux command that failed partway through a run.
// Whatever earlier steps built stays in place; nothing is rolled back.
type StepError struct {
	Step string // tmux subcommand, e.g. "split-window"
	At   string // position in the workspace, e.g. "window 2, pane 1"
	Err  error
}

func (e *StepError) Error() string {
	if e.At == "" {
		return fmt.Sprintf("%s: %v", e.Step, e.Err)
	}
	return fmt.Sprintf("%s (%s): %v", e.Step, e.At, e.Err)
}

func (e *StepError) Unwrap() error { return e.Err }
