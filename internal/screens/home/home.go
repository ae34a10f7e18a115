package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/quizforge/quizforge/internal/ledger"
	"github.com/quizforge/quizforge/internal/quizgen"
	"github.com/quizforge/quizforge/internal/router"
	"github.com/quizforge/quizforge/internal/screen"
	"github.com/quizforge/quizforge/internal/screens/analytics"
	"github.com/quizforge/quizforge/internal/screens/setup"
	"github.com/quizforge/quizforge/internal/store"
	"github.com/quizforge/quizforge/internal/ui/components"
	"github.com/quizforge/quizforge/internal/ui/theme"
)

const logo = `
  ██████  ██    ██ ██ ███████ ███████  ██████  ██████   ██████  ███████
 ██    ██ ██    ██ ██    ███  ██      ██    ██ ██   ██ ██       ██
 ██    ██ ██    ██ ██   ███   █████   ██    ██ ██████  ██   ███ █████
 ██ ▄▄ ██ ██    ██ ██  ███    ██      ██    ██ ██   ██ ██    ██ ██
  ██████   ██████  ██ ███████ ██       ██████  ██   ██  ██████  ███████
     ▀▀`

// HomeScreen is the main menu.
type HomeScreen struct {
	generator quizgen.Generator
	eventRepo store.EventRepo
	ledger    *ledger.Ledger
	menu      components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen. A nil generator disables quiz creation.
func New(generator quizgen.Generator, eventRepo store.EventRepo, ledger *ledger.Ledger) *HomeScreen {
	s := &HomeScreen{
		generator: generator,
		eventRepo: eventRepo,
		ledger:    ledger,
	}

	items := []components.MenuItem{
		{
			Label:    "Start Quiz",
			Disabled: generator == nil,
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{
						Screen: setup.New(generator, eventRepo, ledger),
					}
				}
			},
		},
		{
			Label: "Analytics",
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: analytics.New(ledger)}
				}
			},
		},
		{
			Label: "Quit",
			Action: func() tea.Cmd {
				return tea.Quit
			},
		},
	}

	s.menu = components.NewMenu(items)
	return s
}

func (s *HomeScreen) Init() tea.Cmd {
	return nil
}

func (s *HomeScreen) Title() string {
	return "Home"
}

func (s *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *HomeScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Width(width).
		Align(lipgloss.Center).
		Render(logo))
	b.WriteString("\n")

	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Width(width).
		Align(lipgloss.Center).
		Render("AI-generated quizzes on any topic"))
	b.WriteString("\n\n")

	if s.ledger.Len() > 0 {
		overall := ledger.Summarize(s.ledger.History())
		stats := fmt.Sprintf("%d quizzes  ·  %d topics  ·  %.0f%% mean accuracy",
			overall.Quizzes, overall.TopicsCovered, overall.MeanAccuracy*100)
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.Text).
			Width(width).
			Align(lipgloss.Center).
			Render(stats))
		b.WriteString("\n\n")
	}

	menuView := s.menu.View()
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, menuView))

	if s.generator == nil {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Width(width).
			Align(lipgloss.Center).
			Render("Set an API key (e.g. QUIZFORGE_ANTHROPIC_API_KEY) to enable quiz generation."))
	}

	return b.String()
}
