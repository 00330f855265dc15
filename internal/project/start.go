package project

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/ndarilek/tma/internal/tmux"
)

// Options adjust how a run executes, never what it would build.
type Options struct {
	// DryRun prints every command instead of running it. The existence
	// probe still executes so name collisions surface.
	DryRun bool
	// Dir overrides the directory all paths resolve against. Empty means
	// the process working directory.
	Dir string
	// Out receives the dry-run command listing. Defaults to stdout.
	Out io.Writer
	// Log receives step-by-step progress. Defaults to a discard logger.
	Log *slog.Logger
}

// run is one start or kill pass over a loaded config.
type run struct {
	cfg    *Config
	name   string
	dir    string
	r      tmux.Runner
	dryRun bool
	out    io.Writer
	log    *slog.Logger
}

func newRun(cfg *Config, r tmux.Runner, opts Options) (*run, error) {
	dir, err := resolveDir(opts.Dir)
	if err != nil {
		return nil, err
	}
	name := cfg.SessionName(dir)
	// The default name is the directory's base name, which baseless paths
	// like the filesystem root cannot provide.
	if cfg.Name == "" && (name == "/" || name == "." || name == "..") {
		return nil, &EnvironmentError{Err: fmt.Errorf("cannot derive a session name from %q, set name in the project file", dir)}
	}
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	log := opts.Log
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &run{
		cfg:    cfg,
		name:   name,
		dir:    dir,
		r:      r,
		dryRun: opts.DryRun,
		out:    out,
		log:    log,
	}, nil
}

func resolveDir(dir string) (string, error) {
	if dir != "" {
		return dir, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", &EnvironmentError{Err: fmt.Errorf("working directory unavailable: %w", err)}
	}
	return wd, nil
}

// Start materializes the configured workspace. On success with attach
// enabled it does not return: the process image becomes the attach command.
func Start(cfg *Config, r tmux.Runner, opts Options) error {
	if len(cfg.Windows) == 0 {
		return &ConfigError{Err: errors.New("configure at least one window")}
	}
	s, err := newRun(cfg, r, opts)
	if err != nil {
		return err
	}
	exists, err := s.probe(tmux.HasSession(s.name))
	if err != nil {
		return &StepError{Step: "has-session", Err: err}
	}
	if exists {
		return ErrSessionExists
	}
	return s.create()
}

// create walks the window list in order. Ordering is load-bearing: every
// command addresses entities the previous commands created, so nothing here
// may be reordered or parallelized.
func (s *run) create() error {
	s.log.Info("creating session", "name", s.name, "windows", len(s.cfg.Windows))
	for i, w := range s.cfg.Windows {
		at := fmt.Sprintf("window %d", i)
		if i == 0 {
			// Window 0 and its first pane are born with the session.
			if err := s.step("new-session", "", tmux.NewSession(s.name, s.cfg.windowRoot(s.dir, 0))); err != nil {
				return err
			}
		} else {
			if err := s.step("new-window", at, tmux.NewWindow(s.name, s.cfg.windowRoot(s.dir, i))); err != nil {
				return err
			}
		}
		if w.Name != "" {
			// Targets the session's current window, which is the one
			// just created.
			if err := s.step("rename-window", at, tmux.RenameWindow(s.name, w.Name)); err != nil {
				return err
			}
		}
		for j := 1; j < len(w.Panes); j++ {
			paneAt := fmt.Sprintf("window %d, pane %d", i, j)
			args := tmux.SplitWindow(s.name, i, s.cfg.paneRoot(s.dir, i, j), w.Panes[j].horizontal())
			if err := s.step("split-window", paneAt, args); err != nil {
				return err
			}
		}
		// Commands go in only after the window's panes all exist.
		for j, p := range w.Panes {
			if p.Command == "" {
				continue
			}
			paneAt := fmt.Sprintf("window %d, pane %d", i, j)
			if err := s.step("send-keys", paneAt, tmux.SendKeys(p.Command)); err != nil {
				return err
			}
		}
	}
	if err := s.step("select-pane", "", tmux.SelectPane(s.name)); err != nil {
		return err
	}
	return s.attach()
}

// attach is the terminal step: on success the process is gone. Dry runs and
// attach = false stop short of it.
func (s *run) attach() error {
	if !s.cfg.attachEnabled() {
		return nil
	}
	args := tmux.Attach(s.name)
	if s.dryRun {
		fmt.Fprintln(s.out, display(args))
		return nil
	}
	s.log.Debug("tmux", "args", args)
	if err := s.r.Exec(args...); err != nil {
		return &StepError{Step: "attach", Err: err}
	}
	return nil
}

// probe runs the has-session check. It executes even in dry-run mode, the
// one command that does.
func (s *run) probe(args []string) (bool, error) {
	if s.dryRun {
		fmt.Fprintln(s.out, display(args))
	}
	s.log.Debug("tmux", "args", args)
	return s.r.Probe(args...)
}

// step runs one tmux command, or prints it in dry-run mode.
func (s *run) step(step, at string, args []string) error {
	if s.dryRun {
		fmt.Fprintln(s.out, display(args))
		return nil
	}
	s.log.Debug("tmux", "args", args)
	if err := s.r.Run(args...); err != nil {
		return &StepError{Step: step, At: at, Err: err}
	}
	return nil
}

// display renders an argument vector the way a user would type it.
func display(args []string) string {
	var b strings.Builder
	b.WriteString("tmux")
	for _, a := range args {
		b.WriteByte(' ')
		if a == "" || strings.ContainsAny(a, " \t\n\"'") {
			b.WriteString(strconv.Quote(a))
		} else {
			b.WriteString(a)
		}
	}
	return b.String()
}
