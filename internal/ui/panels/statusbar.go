package panels

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/rollwright/d20roll/internal/ui/styles"
)

// Version is set via -ldflags at build time. Falls back to "dev".
var Version = "dev"

// FlashLevel controls the icon and color of a status bar flash message.
type FlashLevel int

const (
	FlashInfo    FlashLevel = iota // blue ●
	FlashSuccess                   // green ✓
	FlashWarning                   // yellow ⚠
	FlashError                     // red ✗
)

type StatusBar struct {
	width      int
	rolls      int
	flash      string
	flashLevel FlashLevel
	flashUntil time.Time
	flashFor   time.Duration
}

func NewStatusBar(flashFor time.Duration) StatusBar {
	return StatusBar{flashFor: flashFor}
}

// FlashDuration returns how long a flash stays visible.
func (s StatusBar) FlashDuration() time.Duration { return s.flashFor }

func (s StatusBar) View() string {
	sep := styles.TextDimStyle.Render(" │ ")

	name := styles.TextSecondaryStyle.Render("d20roll " + Version)

	noun := "rolls"
	if s.rolls == 1 {
		noun = "roll"
	}
	counts := styles.TextSecondaryStyle.Render(fmt.Sprintf("%d %s this session", s.rolls, noun))

	left := " " + name + sep + counts

	if s.flash != "" && time.Now().Before(s.flashUntil) {
		var icon string
		var color lipgloss.TerminalColor
		switch s.flashLevel {
		case FlashSuccess:
			icon, color = "✓", styles.StatusSuccess
		case FlashError:
			icon, color = "✗", styles.StatusError
		case FlashWarning:
			icon, color = "⚠", styles.StatusWarning
		default: // FlashInfo
			icon, color = "●", styles.StatusInfo
		}
		flashStr := lipgloss.NewStyle().Foreground(color).Bold(true).Render(icon + " " + s.flash)
		left += sep + flashStr
	}

	right := styles.TextSecondaryStyle.Render("?:help") + " "

	gap := s.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}

	return left + strings.Repeat(" ", gap) + right
}

// SetRolls updates the session roll count shown in the bar.
func (s *StatusBar) SetRolls(n int) {
	s.rolls = n
}

func (s *StatusBar) SetFlash(msg string) {
	s.SetFlashWithLevel(msg, FlashInfo)
}

func (s *StatusBar) SetFlashWithLevel(msg string, level FlashLevel) {
	s.flash = msg
	s.flashLevel = level
	s.flashUntil = time.Now().Add(s.flashFor)
}

func (s *StatusBar) ClearFlash() {
	s.flash = ""
	s.flashLevel = FlashInfo
	s.flashUntil = time.Time{}
}

func (s *StatusBar) SetSize(w int) {
	s.width = w
}
