package level

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	sess "github.com/abhisek/newton/internal/session"
	"github.com/abhisek/newton/internal/ui/components"
	"github.com/abhisek/newton/internal/ui/layout"
	"github.com/abhisek/newton/internal/ui/theme"
)

func (s *LevelScreen) View(width, height int) string {
	if s.session.Phase() == sess.PhaseIntro {
		return s.renderIntro(width, height)
	}
	return s.renderPlay(width, height)
}

func (s *LevelScreen) renderIntro(width, height int) string {
	lvl := s.deps.Level

	var b strings.Builder
	b.WriteString(theme.Title.Render(lvl.Name))
	b.WriteString("\n")
	if lvl.Description != "" {
		b.WriteString(theme.Subtitle.Render(lvl.Description))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(theme.Body.Render(fmt.Sprintf("Answer %d sums correctly to finish the level.", lvl.TargetScore)))
	b.WriteString("\n\n")
	b.WriteString(theme.Hint.Render("Press Enter to start"))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}

func (s *LevelScreen) renderPlay(width, height int) string {
	var sections []string

	sections = append(sections, s.scoreBar().View())
	question := strings.TrimSuffix(s.question, "?")
	sections = append(sections, lipgloss.JoinHorizontal(lipgloss.Center,
		theme.Problem.Render(question),
		theme.AnswerBox.Render(s.display),
	))

	switch {
	case s.feedback == "":
		sections = append(sections, " ")
	case s.correct:
		sections = append(sections, theme.Correct.Render(s.feedback))
	default:
		sections = append(sections, theme.Incorrect.Render(s.feedback))
	}

	// The pad is decoration; drop it when vertical space is tight.
	if !layout.IsCompactHeight(height + layout.HeaderHeight + layout.FooterHeight) {
		sections = append(sections, components.NumPad{Enabled: s.padEnabled(), Pressed: s.pressed}.View())
	}

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
