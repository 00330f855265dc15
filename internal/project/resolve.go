package project

import "path/filepath"

// joinRoots layers optional directory overrides onto a base. A relative
// override joins onto the accumulated path; an absolute one replaces it.
// Empty overrides are skipped.
func joinRoots(base string, overrides ...string) string {
	root := base
	for _, o := range overrides {
		switch {
		case o == "":
		case filepath.IsAbs(o):
			root = o
		default:
			root = filepath.Join(root, o)
		}
	}
	return root
}

// windowRoot is the working directory a window starts in. A window's first
// pane never gets a creation command of its own (tmux makes it along with
// the window), so that pane's override folds in here.
func (c *Config) windowRoot(dir string, i int) string {
	w := c.Windows[i]
	first := ""
	if len(w.Panes) > 0 {
		first = w.Panes[0].Root
	}
	return joinRoots(dir, c.Root, w.Root, first)
}

// paneRoot is the working directory for one split pane.
func (c *Config) paneRoot(dir string, i, j int) string {
	w := c.Windows[i]
	return joinRoots(dir, c.Root, w.Root, w.Panes[j].Root)
}
