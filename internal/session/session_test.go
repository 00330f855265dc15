package session

import (
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		expect []Session
	}{
		{
			name:  "two sessions",
			input: "proj|1|1700000000\nscratch|0|1700003600\n",
			expect: []Session{
				{Name: "proj", Attached: 1, Created: time.Unix(1700000000, 0)},
				{Name: "scratch", Attached: 0, Created: time.Unix(1700003600, 0)},
			},
		},
		{
			name:   "empty output",
			input:  "",
			expect: nil,
		},
		{
			name:   "malformed lines are skipped",
			input:  "garbage\nproj|1|1700000000\nalso|garbage\n",
			expect: []Session{{Name: "proj", Attached: 1, Created: time.Unix(1700000000, 0)}},
		},
		{
			name:   "name with spaces",
			input:  "with spaces ok|2|1700000000",
			expect: []Session{{Name: "with spaces ok", Attached: 2, Created: time.Unix(1700000000, 0)}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.input)
			if len(got) != len(tt.expect) {
				t.Fatalf("Parse() returned %d sessions, want %d", len(got), len(tt.expect))
			}
			for i := range got {
				if got[i] != tt.expect[i] {
					t.Errorf("session %d = %+v, want %+v", i, got[i], tt.expect[i])
				}
			}
		})
	}
}

func TestSortLocalBeforeRemoteNewestFirst(t *testing.T) {
	sessions := []Session{
		{Name: "remote-new", Host: "bay1", Created: time.Unix(400, 0)},
		{Name: "local-old", Created: time.Unix(100, 0)},
		{Name: "remote-old", Host: "bay1", Created: time.Unix(50, 0)},
		{Name: "local-new", Created: time.Unix(300, 0)},
	}
	Sort(sessions)

	expected := []string{"local-new", "local-old", "remote-new", "remote-old"}
	for i, s := range sessions {
		if s.Name != expected[i] {
			t.Errorf("position %d: got %q, want %q", i, s.Name, expected[i])
		}
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		seconds int
		expect  string
	}{
		{30, "30s"},
		{90, "1m"},
		{3600, "1h"},
		{7260, "2h"},
		{86400, "1d"},
		{90000, "1d"},
	}

	for _, tt := range tests {
		t.Run(tt.expect, func(t *testing.T) {
			d := time.Duration(tt.seconds) * time.Second
			if got := FormatDuration(d); got != tt.expect {
				t.Errorf("FormatDuration(%ds) = %q, want %q", tt.seconds, got, tt.expect)
			}
		})
	}
}
