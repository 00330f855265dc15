package cmd

import (
	"fmt"
	"sort"

	"github.com/ndarilek/tma/internal/config"
	"github.com/ndarilek/tma/internal/tmux"
)

// resolveRunner picks the runner for a host nickname. Empty means local.
func resolveRunner(host string, settings *config.Config) (tmux.Runner, error) {
	if host == "" {
		return tmux.NewLocal(settings.Tmux)
	}
	h, ok := settings.Hosts[host]
	if !ok {
		return nil, fmt.Errorf("host %q not in the config file", host)
	}
	return &tmux.SSH{
		Nickname: host,
		Hostname: h.Host,
		User:     h.User,
		KeyFile:  h.SSHKey,
	}, nil
}

// allRunners returns the local runner followed by one per configured host,
// in nickname order.
func allRunners(settings *config.Config) ([]tmux.Runner, error) {
	local, err := tmux.NewLocal(settings.Tmux)
	if err != nil {
		return nil, err
	}
	runners := []tmux.Runner{local}

	nicknames := make([]string, 0, len(settings.Hosts))
	for nick := range settings.Hosts {
		nicknames = append(nicknames, nick)
	}
	sort.Strings(nicknames)

	for _, nick := range nicknames {
		h := settings.Hosts[nick]
		runners = append(runners, &tmux.SSH{
			Nickname: nick,
			Hostname: h.Host,
			User:     h.User,
			KeyFile:  h.SSHKey,
		})
	}
	return runners, nil
}

func runnerFor(runners []tmux.Runner, host string) tmux.Runner {
	for _, r := range runners {
		if r.Host() == host {
			return r
		}
	}
	return runners[0]
}
