package analytics

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/quizforge/quizforge/internal/ledger"
	"github.com/quizforge/quizforge/internal/quiz"
	"github.com/quizforge/quizforge/internal/screen"
	"github.com/quizforge/quizforge/internal/ui/components"
	"github.com/quizforge/quizforge/internal/ui/layout"
	"github.com/quizforge/quizforge/internal/ui/theme"
)

const maxTrendPoints = 10

// AnalyticsScreen shows aggregate performance across past quizzes.
type AnalyticsScreen struct {
	ledger *ledger.Ledger
}

var _ screen.Screen = (*AnalyticsScreen)(nil)
var _ screen.KeyHintProvider = (*AnalyticsScreen)(nil)

// New creates a new AnalyticsScreen.
func New(ledger *ledger.Ledger) *AnalyticsScreen {
	return &AnalyticsScreen{ledger: ledger}
}

func (s *AnalyticsScreen) Init() tea.Cmd {
	return nil
}

func (s *AnalyticsScreen) Title() string {
	return "Analytics"
}

func (s *AnalyticsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (s *AnalyticsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return s, nil
}

func (s *AnalyticsScreen) View(width, height int) string {
	history := s.ledger.History()
	if len(history) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No quizzes yet. Take one to see your stats!")
	}

	var b strings.Builder
	b.WriteString("\n")

	overall := ledger.Summarize(history)
	b.WriteString(s.sectionTitle("Overall", width))
	overallLine := fmt.Sprintf("%d quizzes   %d topics   %.0f%% mean accuracy",
		overall.Quizzes, overall.TopicsCovered, overall.MeanAccuracy*100)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Text).Render(overallLine)))
	b.WriteString("\n\n")

	counts := ledger.DifficultyCounts(history)
	countParts := make([]string, 0, len(quiz.Difficulties))
	for _, d := range quiz.Difficulties {
		countParts = append(countParts, fmt.Sprintf("%s: %d", d, counts[d]))
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(strings.Join(countParts, "    "))))
	b.WriteString("\n\n")

	b.WriteString(s.sectionTitle("By topic", width))
	for _, ts := range ledger.ByTopic(history) {
		line := fmt.Sprintf("  %-24s  %2d quizzes  %3d/%-3d  %3.0f%%",
			truncate(ts.Topic, 24), ts.Quizzes, ts.Score, ts.Total, ts.MeanAccuracy*100)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Text).Render(line)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(s.sectionTitle("Recent accuracy", width))
	trend := ledger.Trend(history)
	if len(trend) > maxTrendPoints {
		trend = trend[len(trend)-maxTrendPoints:]
	}
	for _, tp := range trend {
		bar := components.NewProgressBar(
			fmt.Sprintf("%-16s", truncate(tp.Topic, 16)),
			tp.Accuracy,
			true,
			min(width-20, 50),
		)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
		b.WriteString("\n")
	}

	return b.String()
}

func (s *AnalyticsScreen) sectionTitle(title string, width int) string {
	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))
	return lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(title)) +
		"\n" + lipgloss.PlaceHorizontal(width, lipgloss.Center, divider) + "\n\n"
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
