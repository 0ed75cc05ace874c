// Package share builds the post-match brag message and delivers it to the
// player's clipboard. Delivery uses OSC 52, the terminal-native clipboard
// escape, which works transparently through SSH; the concrete escape
// framing is a strategy picked per invocation by probing the environment.
package share

import (
	"fmt"
	"io"
	"os"

	"github.com/aymanbagabas/go-osc52/v2"
)

// Message returns the plain-text and HTML-fragment forms of the share
// message for a final score.
func Message(score int, url string) (plain, html string) {
	plain = fmt.Sprintf("I scored %d in pulse! Can you beat me? %s", score, url)
	html = fmt.Sprintf(`I scored %d in <a href=%q>pulse</a>! Can you beat me?`, score, url)
	return plain, html
}

// Strategy is the escape framing used to reach the system clipboard.
type Strategy int

const (
	StrategyClipboard Strategy = iota // Plain OSC 52 to the system clipboard
	StrategyTmux                      // OSC 52 wrapped for tmux passthrough
	StrategyScreen                    // OSC 52 chunked for GNU screen
)

// String returns the strategy name for log output.
func (s Strategy) String() string {
	switch s {
	case StrategyTmux:
		return "tmux"
	case StrategyScreen:
		return "screen"
	default:
		return "clipboard"
	}
}

// Probe inspects the terminal environment and picks the escape framing.
// tmux and screen both swallow unknown escapes unless wrapped.
func Probe(env func(string) string) Strategy {
	if env("TMUX") != "" {
		return StrategyTmux
	}
	term := env("TERM")
	if len(term) >= 6 && term[:6] == "screen" {
		return StrategyScreen
	}
	return StrategyClipboard
}

// Copier writes clipboard escapes to a terminal writer.
type Copier struct {
	w        io.Writer
	strategy Strategy
}

// NewCopier creates a copier for the given terminal writer, probing the
// process environment for the right escape framing.
func NewCopier(w io.Writer) *Copier {
	return NewCopierEnv(w, os.Getenv)
}

// NewCopierEnv is NewCopier with an injectable environment lookup.
func NewCopierEnv(w io.Writer, env func(string) string) *Copier {
	return &Copier{w: w, strategy: Probe(env)}
}

// Strategy returns the framing the copier selected.
func (c *Copier) Strategy() Strategy {
	return c.strategy
}

// Copy writes text to the system clipboard through the terminal. The
// returned error only matters as the absence of a confirmation: there is
// no way to observe whether the terminal honored the escape, so a nil
// error means "delivered to the terminal", not "pasted successfully".
func (c *Copier) Copy(text string) error {
	seq := osc52.New(text)
	switch c.strategy {
	case StrategyTmux:
		seq = seq.Tmux()
	case StrategyScreen:
		seq = seq.Screen()
	}
	_, err := seq.WriteTo(c.w)
	return err
}
