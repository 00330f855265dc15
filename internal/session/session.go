package session

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/ndarilek/tma/internal/tmux"
)

// Session is one live tmux session as the server reports it.
type Session struct {
	Name     string
	Host     string // empty for local, nickname for remote
	Attached int
	Created  time.Time
	WorkDir  string
}

// List asks one runner for its sessions. A host without a running server
// has no sessions; that is an empty list, not an error.
func List(r tmux.Runner) []Session {
	out, err := r.Output(tmux.ListSessions()...)
	if err != nil {
		return nil
	}
	sessions := Parse(out)
	for i := range sessions {
		sessions[i].Host = r.Host()
		if path, err := r.Output(tmux.CurrentPath(sessions[i].Name)...); err == nil {
			sessions[i].WorkDir = strings.TrimSpace(path)
		}
	}
	return sessions
}

// Parse decodes list-sessions output in name|attached|created format.
func Parse(output string) []Session {
	var sessions []Session
	for _, line := range strings.Split(strings.TrimSpace(output), "\n") {
		if line == "" {
			continue
		}
		parts := strings.SplitN(line, "|", 3)
		if len(parts) != 3 {
			continue
		}
		attached, _ := strconv.Atoi(parts[1])
		createdUnix, _ := strconv.ParseInt(parts[2], 10, 64)

		sessions = append(sessions, Session{
			Name:     parts[0],
			Attached: attached,
			Created:  time.Unix(createdUnix, 0),
		})
	}
	return sessions
}

// Sort orders sessions local before remote, newest first within a host.
func Sort(sessions []Session) {
	sort.SliceStable(sessions, func(i, j int) bool {
		iLocal := sessions[i].Host == ""
		jLocal := sessions[j].Host == ""
		if iLocal != jLocal {
			return iLocal
		}
		return sessions[i].Created.After(sessions[j].Created)
	})
}

// FormatDuration formats an age using only its largest unit.
func FormatDuration(d time.Duration) string {
	switch {
	case d < time.Minute:
		return strconv.Itoa(int(d.Seconds())) + "s"
	case d < time.Hour:
		return strconv.Itoa(int(d.Minutes())) + "m"
	case d < 24*time.Hour:
		return strconv.Itoa(int(d.Hours())) + "h"
	default:
		return strconv.Itoa(int(d.Hours())/24) + "d"
	}
}
