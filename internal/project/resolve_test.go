package project

import "testing"

func TestJoinRoots(t *testing.T) {
	tests := []struct {
		name      string
		base      string
		overrides []string
		want      string
	}{
		{
			name: "no overrides",
			base: "/home/u/proj",
			want: "/home/u/proj",
		},
		{
			name:      "relative chain joins left to right",
			base:      "/cwd",
			overrides: []string{"s", "w", "p"},
			want:      "/cwd/s/w/p",
		},
		{
			name:      "empty levels are skipped",
			base:      "/cwd",
			overrides: []string{"", "w", ""},
			want:      "/cwd/w",
		},
		{
			name:      "absolute final override wins outright",
			base:      "/cwd",
			overrides: []string{"s", "w", "/opt/app"},
			want:      "/opt/app",
		},
		{
			name:      "absolute middle override resets the chain",
			base:      "/cwd",
			overrides: []string{"s", "/srv", "logs"},
			want:      "/srv/logs",
		},
		{
			name:      "dotted segments are cleaned",
			base:      "/cwd",
			overrides: []string{"a/../b"},
			want:      "/cwd/b",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := joinRoots(tt.base, tt.overrides...); got != tt.want {
				t.Errorf("joinRoots(%q, %v) = %q, want %q", tt.base, tt.overrides, got, tt.want)
			}
		})
	}
}

func TestWindowRootFoldsFirstPane(t *testing.T) {
	cfg := &Config{
		Root: "srv",
		Windows: []Window{
			{Root: "api", Panes: []Pane{{Root: "cmd"}, {Root: "ignored"}}},
			{Root: "web"},
		},
	}

	if got, want := cfg.windowRoot("/cwd", 0), "/cwd/srv/api/cmd"; got != want {
		t.Errorf("windowRoot(0) = %q, want %q", got, want)
	}
	if got, want := cfg.windowRoot("/cwd", 1), "/cwd/srv/web"; got != want {
		t.Errorf("windowRoot(1) = %q, want %q", got, want)
	}
}

func TestPaneRootSkipsFirstPaneOverride(t *testing.T) {
	// Only the pane's own override applies on top of session and window;
	// pane 0's override belongs to the window creation, not to siblings.
	cfg := &Config{
		Root: "srv",
		Windows: []Window{
			{Root: "api", Panes: []Pane{{Root: "cmd"}, {Root: "logs"}, {}}},
		},
	}

	if got, want := cfg.paneRoot("/cwd", 0, 1), "/cwd/srv/api/logs"; got != want {
		t.Errorf("paneRoot(0,1) = %q, want %q", got, want)
	}
	if got, want := cfg.paneRoot("/cwd", 0, 2), "/cwd/srv/api"; got != want {
		t.Errorf("paneRoot(0,2) = %q, want %q", got, want)
	}
}
