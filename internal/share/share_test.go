package share

import (
	"bytes"
	"strings"
	"testing"
)

func TestMessageForms(t *testing.T) {
	plain, html := Message(7, "https://pulse.example.com")

	if !strings.Contains(plain, "7") || !strings.Contains(plain, "https://pulse.example.com") {
		t.Fatalf("plain message missing score or URL: %q", plain)
	}
	if strings.Contains(plain, "<") {
		t.Fatalf("plain message contains markup: %q", plain)
	}
	if !strings.Contains(html, `<a href="https://pulse.example.com">`) {
		t.Fatalf("html message missing anchor: %q", html)
	}
}

func fakeEnv(vars map[string]string) func(string) string {
	return func(key string) string { return vars[key] }
}

func TestProbeSelectsStrategy(t *testing.T) {
	tests := []struct {
		name string
		vars map[string]string
		want Strategy
	}{
		{"plain terminal", map[string]string{"TERM": "xterm-256color"}, StrategyClipboard},
		{"inside tmux", map[string]string{"TMUX": "/tmp/tmux-0/default,123,0", "TERM": "screen"}, StrategyTmux},
		{"gnu screen", map[string]string{"TERM": "screen-256color"}, StrategyScreen},
		{"empty env", map[string]string{}, StrategyClipboard},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Probe(fakeEnv(tt.vars)); got != tt.want {
				t.Fatalf("Probe = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCopyWritesOSC52(t *testing.T) {
	var buf bytes.Buffer
	c := NewCopierEnv(&buf, fakeEnv(map[string]string{"TERM": "xterm"}))

	if err := c.Copy("hello"); err != nil {
		t.Fatalf("copy: %v", err)
	}
	if !strings.Contains(buf.String(), "\x1b]52;") {
		t.Fatalf("output is not an OSC 52 sequence: %q", buf.String())
	}
}

func TestCopyWrapsForTmux(t *testing.T) {
	var buf bytes.Buffer
	c := NewCopierEnv(&buf, fakeEnv(map[string]string{"TMUX": "1"}))

	if err := c.Copy("hello"); err != nil {
		t.Fatalf("copy: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "\x1bPtmux;") {
		t.Fatalf("tmux output not passthrough-wrapped: %q", buf.String())
	}
}
