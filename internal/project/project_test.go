package project

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultFile)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
name = "api"
root = "srv"
attach = false

[[window]]
name = "edit"
root = "code"

  [[window.pane]]
  command = "vim"

  [[window.pane]]
  root = "logs"
  command = "tail -f app.log"
  split = "horizontal"

[[window]]
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Name != "api" || cfg.Root != "srv" {
		t.Errorf("session = %q/%q, want api/srv", cfg.Name, cfg.Root)
	}
	if cfg.Attach == nil || *cfg.Attach {
		t.Error("attach = true, want explicit false")
	}
	if len(cfg.Windows) != 2 {
		t.Fatalf("windows = %d, want 2", len(cfg.Windows))
	}

	w := cfg.Windows[0]
	if w.Name != "edit" || w.Root != "code" {
		t.Errorf("window 0 = %q/%q, want edit/code", w.Name, w.Root)
	}
	if len(w.Panes) != 2 {
		t.Fatalf("window 0 panes = %d, want 2", len(w.Panes))
	}
	if w.Panes[0].Command != "vim" || w.Panes[0].Split != "" {
		t.Errorf("pane 0 = %+v", w.Panes[0])
	}
	p := w.Panes[1]
	if p.Root != "logs" || p.Command != "tail -f app.log" || p.Split != "horizontal" {
		t.Errorf("pane 1 = %+v", p)
	}

	if len(cfg.Windows[1].Panes) != 0 {
		t.Errorf("window 1 panes = %d, want 0", len(cfg.Windows[1].Panes))
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "[[window]]\n"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Name != "" || cfg.Root != "" || cfg.Attach != nil {
		t.Errorf("unexpected non-defaults: %+v", cfg)
	}
	if !cfg.attachEnabled() {
		t.Error("attach should default to enabled")
	}
}

func TestLoadIgnoresUnknownKeys(t *testing.T) {
	// Older project files may carry fields this tool never acted on.
	cfg, err := Load(writeConfig(t, `
pre_window = "rbenv shell 2.4"

[[window]]
`))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(cfg.Windows) != 1 {
		t.Errorf("windows = %d, want 1", len(cfg.Windows))
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("err = %v, want *ConfigError", err)
	}
}

func TestLoadMalformed(t *testing.T) {
	path := writeConfig(t, "name = [broken\n")
	_, err := Load(path)
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("err = %v, want *ConfigError", err)
	}
	if cfgErr.Path != path {
		t.Errorf("Path = %q, want %q", cfgErr.Path, path)
	}
}

func TestSessionName(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		dir  string
		want string
	}{
		{"explicit name wins", Config{Name: "work"}, "/home/u/proj", "work"},
		{"falls back to dir base", Config{}, "/home/u/proj", "proj"},
		{"trailing slash", Config{}, "/home/u/proj/", "proj"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cfg.SessionName(tt.dir); got != tt.want {
				t.Errorf("SessionName(%q) = %q, want %q", tt.dir, got, tt.want)
			}
		})
	}
}

func TestPaneSplit(t *testing.T) {
	if (&Pane{Split: "horizontal"}).horizontal() != true {
		t.Error("horizontal split not recognized")
	}
	if (&Pane{Split: "vertical"}).horizontal() {
		t.Error("vertical treated as horizontal")
	}
	if (&Pane{}).horizontal() {
		t.Error("default treated as horizontal")
	}
}
