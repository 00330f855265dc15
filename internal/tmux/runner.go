package tmux

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"syscall"
)

// Runner executes the command vectors built by this package, either on this
// machine or somewhere else.
type Runner interface {
	// Run invokes tmux with args and waits for it to exit.
	Run(args ...string) error
	// Output invokes tmux with args and returns its stdout.
	Output(args ...string) (string, error)
	// Probe invokes tmux with args and reports whether it exited zero.
	// The error is non-nil only when the command could not run at all.
	Probe(args ...string) (bool, error)
	// Interactive runs tmux with the caller's terminal attached and
	// returns once it exits, detach included.
	Interactive(args ...string) error
	// Exec replaces the current process image with tmux. It returns
	// only on failure.
	Exec(args ...string) error
	// Host names the machine this runner drives; empty means local.
	Host() string
}

var (
	_ Runner = (*Local)(nil)
	_ Runner = (*SSH)(nil)
)

// Local drives the tmux binary on this machine.
type Local struct {
	bin string
}

// NewLocal locates the tmux binary. An explicit non-empty path skips the
// PATH lookup, letting the settings file pin a specific binary.
func NewLocal(bin string) (*Local, error) {
	if bin == "" {
		found, err := exec.LookPath("tmux")
		if err != nil {
			return nil, fmt.Errorf("tmux not found: %w", err)
		}
		bin = found
	}
	return &Local{bin: bin}, nil
}

func (l *Local) Host() string { return "" }

func (l *Local) Run(args ...string) error {
	out, err := exec.Command(l.bin, args...).CombinedOutput()
	if err != nil {
		return withOutput(err, out)
	}
	return nil
}

func (l *Local) Output(args ...string) (string, error) {
	out, err := exec.Command(l.bin, args...).Output()
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func (l *Local) Probe(args ...string) (bool, error) {
	err := exec.Command(l.bin, args...).Run()
	if err == nil {
		return true, nil
	}
	var exit *exec.ExitError
	if errors.As(err, &exit) {
		return false, nil
	}
	return false, err
}

func (l *Local) Interactive(args ...string) error {
	cmd := exec.Command(l.bin, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = filterTMUX(os.Environ())
	return cmd.Run()
}

func (l *Local) Exec(args ...string) error {
	argv := append([]string{"tmux"}, args...)
	return syscall.Exec(l.bin, argv, filterTMUX(os.Environ()))
}

// withOutput folds a command's trailing output into its error so tmux's own
// complaint ("can't find window", ...) survives into the message.
func withOutput(err error, out []byte) error {
	if msg := strings.TrimSpace(string(out)); msg != "" {
		return fmt.Errorf("%w: %s", err, msg)
	}
	return err
}

// filterTMUX removes the TMUX env var so attach works from inside tmux.
func filterTMUX(env []string) []string {
	filtered := make([]string, 0, len(env))
	for _, e := range env {
		if !strings.HasPrefix(e, "TMUX=") {
			filtered = append(filtered, e)
		}
	}
	return filtered
}
