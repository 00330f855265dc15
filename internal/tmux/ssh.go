package tmux

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"syscall"
)

// SSH drives tmux on a remote host. Each command rides one ssh invocation;
// connection multiplexing keeps that cheap after the first.
type SSH struct {
	Nickname string
	Hostname string
	User     string
	KeyFile  string
}

func (s *SSH) Host() string { return s.Nickname }

func (s *SSH) sshArgs() []string {
	args := []string{
		"-o", "ControlMaster=auto",
		"-o", "ControlPath=/tmp/tma-ssh-%r@%h:%p",
		"-o", "ControlPersist=60",
		"-o", "StrictHostKeyChecking=accept-new",
	}
	if s.KeyFile != "" {
		args = append(args, "-i", s.KeyFile)
	}
	if s.User != "" {
		args = append(args, fmt.Sprintf("%s@%s", s.User, s.Hostname))
	} else {
		args = append(args, s.Hostname)
	}
	return args
}

func (s *SSH) Run(args ...string) error {
	cmd := exec.Command("ssh", append(s.sshArgs(), remoteCommand(args))...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return withOutput(err, out)
	}
	return nil
}

func (s *SSH) Output(args ...string) (string, error) {
	cmd := exec.Command("ssh", append(s.sshArgs(), remoteCommand(args))...)
	out, err := cmd.Output()
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func (s *SSH) Probe(args ...string) (bool, error) {
	err := exec.Command("ssh", append(s.sshArgs(), remoteCommand(args))...).Run()
	if err == nil {
		return true, nil
	}
	var exit *exec.ExitError
	// ssh reserves 255 for its own failures; anything else is the
	// remote command's exit status.
	if errors.As(err, &exit) && exit.ExitCode() != 255 {
		return false, nil
	}
	return false, err
}

func (s *SSH) Interactive(args ...string) error {
	sshArgs := append([]string{"-t"}, s.sshArgs()...)
	cmd := exec.Command("ssh", append(sshArgs, remoteCommand(args))...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = filterTMUX(os.Environ())
	return cmd.Run()
}

func (s *SSH) Exec(args ...string) error {
	ssh, err := exec.LookPath("ssh")
	if err != nil {
		return fmt.Errorf("ssh not found: %w", err)
	}
	argv := append([]string{"ssh", "-t"}, s.sshArgs()...)
	argv = append(argv, remoteCommand(args))
	return syscall.Exec(ssh, argv, filterTMUX(os.Environ()))
}

// remoteCommand renders a tmux invocation as one shell line. Every argument
// is single-quoted so command lines and newlines survive the remote shell.
func remoteCommand(args []string) string {
	parts := make([]string, 0, len(args)+1)
	parts = append(parts, "tmux")
	for _, a := range args {
		parts = append(parts, shellQuote(a))
	}
	return strings.Join(parts, " ")
}

// shellQuote wraps a string in single quotes, escaping any single quotes inside.
func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "'\"'\"'") + "'"
}
