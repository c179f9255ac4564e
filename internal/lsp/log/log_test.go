package log

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestLogOutput(t *testing.T) {
	type tc struct {
		level   string
		write   func()
		want    []string
		wantOut bool
	}

	tests := map[string]tc{
		"server message carries component": {
			level:   "debug",
			write:   func() { Server("opened %d documents", 2) },
			want:    []string{`"component":"server"`, "opened 2 documents"},
			wantOut: true,
		},
		"session message carries uri": {
			level:   "debug",
			write:   func() { Session("file:///a.rmc.xml", "closed") },
			want:    []string{`"uri":"file:///a.rmc.xml"`, "closed"},
			wantOut: true,
		},
		"warn carries error": {
			level:   "debug",
			write:   func() { Warn(errors.New("boom"), "publish failed") },
			want:    []string{`"error":"boom"`, "publish failed"},
			wantOut: true,
		},
		"debug suppressed at warn level": {
			level: "warn",
			write: func() { Debug("noisy") },
		},
		"provider suppressed at info level": {
			level: "info",
			write: func() { Provider("completion", "kind=%s", "None") },
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			SetOutput(&buf)
			defer SetOutput(nil)
			if err := SetLevel(tt.level); err != nil {
				t.Fatalf("SetLevel(%q): %v", tt.level, err)
			}
			defer SetLevel("debug")

			tt.write()

			got := buf.String()
			if !tt.wantOut {
				if got != "" {
					t.Errorf("expected no output, got %q", got)
				}
				return
			}
			for _, w := range tt.want {
				if !strings.Contains(got, w) {
					t.Errorf("output %q missing %q", got, w)
				}
			}
		})
	}
}

func TestEnabled(t *testing.T) {
	SetOutput(nil)
	if Enabled() {
		t.Error("expected logging disabled with nil output")
	}
	var buf bytes.Buffer
	SetOutput(&buf)
	if !Enabled() {
		t.Error("expected logging enabled after SetOutput")
	}
	SetOutput(nil)
	Server("dropped")
	if buf.Len() != 0 {
		t.Errorf("expected nothing written after disabling, got %q", buf.String())
	}
}

func TestSetLevelInvalid(t *testing.T) {
	if err := SetLevel("loud"); err == nil {
		t.Error("expected error for unknown level")
	}
}
