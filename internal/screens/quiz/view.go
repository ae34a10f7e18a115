package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/quizforge/quizforge/internal/ui/components"
	"github.com/quizforge/quizforge/internal/ui/theme"
)

func (s *QuizScreen) View(width, height int) string {
	if s.errMsg != "" {
		return s.renderError(width)
	}
	if s.batch == nil {
		return s.renderGenerating(width)
	}
	if s.persisting {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Saving results...")
	}
	return s.renderQuestion(width)
}

func (s *QuizScreen) renderGenerating(width int) string {
	msg := fmt.Sprintf("Generating %d %s questions about %q...",
		s.params.Count, s.params.Difficulty, s.params.Topic)
	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).Foreground(theme.Text).
		Render(msg))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
		Render("This can take a few seconds."))
	return b.String()
}

func (s *QuizScreen) renderError(width int) string {
	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).Foreground(theme.Error).Bold(true).
		Render("Quiz generation failed"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
		Render(s.errMsg))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
		Render("Press Esc to go back and try again."))
	return b.String()
}

func (s *QuizScreen) renderQuestion(width int) string {
	total := s.session.Total()
	index := s.session.CurrentIndex()
	if s.showFeedback {
		// The session already advanced past the answered question.
		index = s.session.AnsweredCount() - 1
	}

	var b strings.Builder
	b.WriteString("\n")

	topicLine := fmt.Sprintf("%s · %s", s.batch.Topic, s.batch.Difficulty)
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render("  " + topicLine))
	b.WriteString("\n\n")

	progress := components.NewProgressBar(
		fmt.Sprintf("  Question %d of %d", index+1, total),
		float64(s.session.AnsweredCount())/float64(total),
		false,
		min(width-4, 60),
	)
	b.WriteString(progress.View())
	b.WriteString("\n\n")

	card := theme.Card.Width(min(width-8, 76)).Render(s.mc.View())
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Left, "  "+strings.ReplaceAll(card, "\n", "\n  ")))
	b.WriteString("\n")

	if s.mc.Submitted {
		b.WriteString(s.renderFeedback(width))
	}

	return b.String()
}

func (s *QuizScreen) renderFeedback(width int) string {
	var b strings.Builder
	b.WriteString("\n")

	if s.mc.IsCorrect() {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Success).Bold(true).
			Render("  ✓ Correct!"))
	} else {
		wrong := fmt.Sprintf("  ✗ Incorrect. The right answer is %s) %s.",
			s.question.CorrectLabel, s.question.CorrectOption())
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Bold(true).
			Render(wrong))
	}
	b.WriteString("\n")

	if s.question.Explanation != "" {
		expl := lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Width(min(width-6, 74)).
			Render(s.question.Explanation)
		b.WriteString("\n  " + strings.ReplaceAll(expl, "\n", "\n  "))
		b.WriteString("\n")
	}

	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
