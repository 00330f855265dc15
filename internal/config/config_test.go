package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFrom(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
tmux: /opt/homebrew/bin/tmux
hosts:
  build:
    host: build.internal
    user: deploy
    ssh_key: ~/.ssh/id_build
  scratch:
    host: 10.0.0.7
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadFrom(path, "/home/u")
	if err != nil {
		t.Fatalf("loadFrom: %v", err)
	}

	if cfg.Tmux != "/opt/homebrew/bin/tmux" {
		t.Errorf("Tmux = %q", cfg.Tmux)
	}

	b, ok := cfg.Hosts["build"]
	if !ok {
		t.Fatal("host build missing")
	}
	if b.Host != "build.internal" || b.User != "deploy" {
		t.Errorf("build = %+v", b)
	}
	if b.SSHKey != "/home/u/.ssh/id_build" {
		t.Errorf("SSHKey = %q, want ~ expanded", b.SSHKey)
	}

	s := cfg.Hosts["scratch"]
	if s.Host != "10.0.0.7" || s.User != "" || s.SSHKey != "" {
		t.Errorf("scratch = %+v", s)
	}
}

func TestLoadFromMissingFile(t *testing.T) {
	cfg, err := loadFrom(filepath.Join(t.TempDir(), "config.yaml"), "/home/u")
	if err != nil {
		t.Fatalf("loadFrom: %v", err)
	}
	if cfg == nil || cfg.Tmux != "" || len(cfg.Hosts) != 0 {
		t.Errorf("cfg = %+v, want empty defaults", cfg)
	}
}

func TestLoadFromMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("hosts: ["), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := loadFrom(path, "/home/u"); err == nil {
		t.Error("want error for malformed yaml")
	}
}
