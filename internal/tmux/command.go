package tmux

import "fmt"

// sessionFormat is the list-sessions format string the session model parses.
const sessionFormat = "#{session_name}|#{session_attached}|#{session_created}"

// HasSession builds the existence probe for a session name.
func HasSession(name string) []string {
	return []string{"has-session", "-t", name}
}

// NewSession builds the detached session creation command. The session's
// first window and pane come into existence with it, so root is the working
// directory of window 0, pane 0.
func NewSession(name, root string) []string {
	return []string{"new", "-d", "-s", name, "-c", root}
}

// NewWindow appends a window to an existing session.
func NewWindow(name, root string) []string {
	return []string{"new-window", "-t", name, "-c", root}
}

// RenameWindow renames the session's current window, which right after
// new-window is the window just created.
func RenameWindow(name, windowName string) []string {
	return []string{"rename-window", "-t", name, windowName}
}

// SplitWindow creates one more pane in the given window. Horizontal splits
// pass -h; the default is tmux's vertical split.
func SplitWindow(name string, window int, root string, horizontal bool) []string {
	args := []string{"split-window", "-t", fmt.Sprintf("%s:%d", name, window), "-c", root}
	if horizontal {
		args = append(args, "-h")
	}
	return args
}

// SendKeys types a command line, newline included, into the active pane.
func SendKeys(command string) []string {
	return []string{"send-keys", command + "\n"}
}

// TypeKeys types literal text into a session's active pane and submits it.
// The text goes in with -l so tmux doesn't interpret key names, the Enter
// key goes separately.
func TypeKeys(name, text string) [][]string {
	return [][]string{
		{"send-keys", "-t", name, "-l", text},
		{"send-keys", "-t", name, "Enter"},
	}
}

// SelectPane focuses the first pane of the first window.
func SelectPane(name string) []string {
	return []string{"select-pane", "-t", name + ":0.0"}
}

// Attach brings a session to the foreground.
func Attach(name string) []string {
	return []string{"attach", "-t", name}
}

// KillSession tears a session down.
func KillSession(name string) []string {
	return []string{"kill-session", "-t", name}
}

// ListSessions reports all sessions in the name|attached|created format.
func ListSessions() []string {
	return []string{"list-sessions", "-F", sessionFormat}
}

// CapturePane grabs the last n lines of a session's active pane.
func CapturePane(name string, n int) []string {
	return []string{"capture-pane", "-t", name, "-p", "-S", fmt.Sprintf("-%d", n)}
}

// CurrentPath asks for the working directory of a session's active pane.
func CurrentPath(name string) []string {
	return []string{"display-message", "-t", name, "-p", "#{pane_current_path}"}
}
