package loop

import (
	"fmt"
	"time"

	"github.com/x444dyx/pulse/internal/game"
)

// drawOverlay draws the text overlay for the current phase on top of the
// rendered canvas.
func (s *Session) drawOverlay() {
	termWidth := s.canvas.TerminalWidth()
	termHeight := s.canvas.TerminalHeight()
	centerX := termWidth / 2
	centerY := termHeight / 2

	switch s.match.Phase() {
	case game.PhaseStart:
		s.drawStartScreen(centerX, centerY)
	case game.PhaseCountdown:
		s.drawCountdown(centerX, centerY)
	case game.PhasePlaying:
		s.drawPlayingHUD(termWidth, centerX)
	case game.PhaseGameOver:
		s.drawGameOverScreen(centerX, centerY)
	}
}

// drawStartScreen draws the title screen.
func (s *Session) drawStartScreen(centerX, centerY int) {
	// ASCII art title (figlet "small" font)
	titleArt := []string{
		`  ___ _   _ _    ___ ___ `,
		` | _ \ | | | |  / __| __|`,
		` |  _/ |_| | |__\__ \ _| `,
		` |_|  \___/|____|___/___|`,
	}

	titleWidth := 0
	for _, line := range titleArt {
		if len(line) > titleWidth {
			titleWidth = len(line)
		}
	}

	cw := s.cw
	titleStartY := centerY - 9
	for i, line := range titleArt {
		cw.WriteAt(centerX-titleWidth/2, titleStartY+i, line)
	}

	subtitle := "~ hit the ring at the right moment ~"
	cw.WriteAt(centerX-len(subtitle)/2, titleStartY+len(titleArt)+1, subtitle)

	shapeLine := fmt.Sprintf("Target shape: %s", s.sel)
	cw.WriteAt(centerX-len(shapeLine)/2, titleStartY+len(titleArt)+3, shapeLine)

	controlsY := titleStartY + len(titleArt) + 5
	controlLines := []string{
		"SPACE  . . . . Start / hit",
		"S  . . . . .  Cycle shape",
		"Q  . . . . . . . . . Quit",
	}
	for i, line := range controlLines {
		cw.WriteAt(centerX-len(line)/2, controlsY+i, line)
	}

	if best := s.match.Score().Best; best > 0 {
		bestLine := fmt.Sprintf("Your best: %d", best)
		cw.WriteAt(centerX-len(bestLine)/2, controlsY+len(controlLines)+1, bestLine)
	}

	if s.opts.Registry != nil {
		lobby := fmt.Sprintf("%d playing now - best since boot: %d",
			s.opts.Registry.Players(), s.opts.Registry.Best())
		cw.WriteAt(centerX-len(lobby)/2, controlsY+len(controlLines)+2, lobby)
	}

	// Blinking start prompt
	if time.Now().UnixMilli()/600%2 == 0 {
		prompt := ">>  Press SPACE to Start  <<"
		cw.WriteAt(centerX-len(prompt)/2, controlsY+len(controlLines)+4, prompt)
	}
}

// countdownDigits holds the big 3-2-1 digits (figlet "small" font).
var countdownDigits = map[int][]string{
	3: {
		` ____ `,
		`|__ / `,
		` |_ \ `,
		`|___/ `,
	},
	2: {
		` ___  `,
		`|_  ) `,
		` / /  `,
		`/___| `,
	},
	1: {
		` _  `,
		`/ | `,
		`| | `,
		`|_| `,
	},
}

// drawCountdown draws the big pre-match digit in the ring center.
func (s *Session) drawCountdown(centerX, centerY int) {
	art, ok := countdownDigits[s.match.CountdownRemaining()]
	if !ok {
		return
	}
	for i, line := range art {
		s.cw.WriteAt(centerX-len(line)/2, centerY-len(art)/2+i, line)
	}

	ready := "get ready..."
	s.cw.WriteAt(centerX-len(ready)/2, centerY+3, ready)
}

// drawPlayingHUD draws the in-game HUD: scores in the corners and the
// outcome flash near the ring.
func (s *Session) drawPlayingHUD(termWidth, centerX int) {
	score := s.match.Score()

	scoreText := fmt.Sprintf("Score: %d", score.Current)
	s.cw.WriteAt(2, 1, scoreText)

	bestText := fmt.Sprintf("Best: %d", score.Best)
	s.cw.WriteAt(termWidth-len(bestText)-1, 1, bestText)

	if s.outcomeTime > 0 && s.outcomeText != "" {
		s.cw.WriteAt(centerX-len(s.outcomeText)/2, 2, s.outcomeText)
	}
}

// drawGameOverScreen draws the result panel. The frozen pulse stays on
// the canvas underneath, showing where the match ended.
func (s *Session) drawGameOverScreen(centerX, centerY int) {
	cw := s.cw
	score := s.match.Score()

	title := "GAME OVER"
	cw.WriteAt(centerX-len(title)/2, centerY-4, title)

	scoreText := fmt.Sprintf("Score: %d", score.Current)
	cw.WriteAt(centerX-len(scoreText)/2, centerY-2, scoreText)

	var bestText string
	if score.Current > 0 && score.Current == score.Best {
		bestText = "NEW BEST!"
	} else {
		bestText = fmt.Sprintf("Best: %d", score.Best)
	}
	cw.WriteAt(centerX-len(bestText)/2, centerY-1, bestText)

	prompts := []string{
		"SPACE - try again",
		"S - change shape",
		"C - copy share message",
		"Q - quit",
	}
	for i, line := range prompts {
		cw.WriteAt(centerX-len(line)/2, centerY+1+i, line)
	}

	if s.noticeTime > 0 {
		notice := "Copied to clipboard!"
		cw.WriteAt(centerX-len(notice)/2, centerY+len(prompts)+2, notice)
	}
}
