package setup

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/quizforge/quizforge/internal/ledger"
	"github.com/quizforge/quizforge/internal/quiz"
	quizscreen "github.com/quizforge/quizforge/internal/screens/quiz"
	"github.com/quizforge/quizforge/internal/quizgen"
	"github.com/quizforge/quizforge/internal/router"
	"github.com/quizforge/quizforge/internal/screen"
	"github.com/quizforge/quizforge/internal/store"
	"github.com/quizforge/quizforge/internal/ui/components"
	"github.com/quizforge/quizforge/internal/ui/layout"
	"github.com/quizforge/quizforge/internal/ui/theme"
)

// Fields in focus order.
const (
	fieldTopic = iota
	fieldDifficulty
	fieldCount
	fieldStart
)

const defaultCount = 5

// SetupScreen collects topic, difficulty, and question count before a quiz.
type SetupScreen struct {
	generator quizgen.Generator
	eventRepo store.EventRepo
	ledger    *ledger.Ledger

	topicInput components.TextInput
	countInput components.TextInput
	startBtn   components.Button

	focus       int
	difficulty  int // index into quiz.Difficulties
	recommended int // index into quiz.Difficulties, -1 until known
	errMsg      string
}

var _ screen.Screen = (*SetupScreen)(nil)
var _ screen.KeyHintProvider = (*SetupScreen)(nil)

// New creates a new SetupScreen.
func New(generator quizgen.Generator, eventRepo store.EventRepo, ledger *ledger.Ledger) *SetupScreen {
	s := &SetupScreen{
		generator:   generator,
		eventRepo:   eventRepo,
		ledger:      ledger,
		topicInput:  components.NewTextInput("e.g. Roman history", false, 60),
		countInput:  components.NewTextInput(fmt.Sprintf("%d", defaultCount), true, 2),
		difficulty:  difficultyIndex(quiz.Medium),
		recommended: -1,
	}
	s.startBtn = components.NewButton("Start Quiz", false, s.start)
	return s
}

func (s *SetupScreen) Init() tea.Cmd {
	return s.topicInput.Init()
}

func (s *SetupScreen) Title() string {
	return "New Quiz"
}

func (s *SetupScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Enter", Description: "Confirm"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SetupScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "tab", "enter":
			if s.focus == fieldStart {
				if kmsg.String() == "enter" {
					return s, s.start()
				}
				s.setFocus(fieldTopic)
				return s, nil
			}
			s.setFocus(s.focus + 1)
			return s, nil
		case "shift+tab":
			if s.focus > fieldTopic {
				s.setFocus(s.focus - 1)
			}
			return s, nil
		}

		if s.focus == fieldDifficulty {
			switch kmsg.String() {
			case "left", "h":
				if s.difficulty > 0 {
					s.difficulty--
				}
				return s, nil
			case "right", "l":
				if s.difficulty < len(quiz.Difficulties)-1 {
					s.difficulty++
				}
				return s, nil
			}
		}
	}

	var cmd tea.Cmd
	switch s.focus {
	case fieldTopic:
		s.topicInput, cmd = s.topicInput.Update(msg)
	case fieldCount:
		s.countInput, cmd = s.countInput.Update(msg)
	}
	return s, cmd
}

// setFocus moves focus and recomputes the recommended difficulty when
// leaving the topic field, seeding the selector from past performance.
func (s *SetupScreen) setFocus(field int) {
	if s.focus == fieldTopic && field != fieldTopic {
		s.recommend()
	}
	s.focus = field
	s.startBtn.Active = field == fieldStart
}

func (s *SetupScreen) recommend() {
	topic := strings.TrimSpace(s.topicInput.Value())
	if topic == "" {
		return
	}
	next := quiz.Medium
	if prev, ok := s.ledger.LatestForTopic(topic); ok {
		next = quiz.NextDifficulty(prev.Difficulty, prev.Score, prev.Total)
	}
	s.recommended = difficultyIndex(next)
	s.difficulty = s.recommended
}

func difficultyIndex(d quiz.Difficulty) int {
	for i, cand := range quiz.Difficulties {
		if cand == d {
			return i
		}
	}
	return 0
}

// start validates the form and pushes the quiz screen.
func (s *SetupScreen) start() tea.Cmd {
	count := defaultCount
	if s.countInput.Value() != "" {
		n, err := s.countInput.NumericValue()
		if err != nil {
			s.errMsg = "question count must be a number"
			return nil
		}
		count = n
	}

	params := quizgen.Params{
		Topic:      strings.TrimSpace(s.topicInput.Value()),
		Difficulty: quiz.Difficulties[s.difficulty],
		Count:      count,
		History:    s.ledger.History(),
	}
	if err := params.Validate(); err != nil {
		s.errMsg = err.Error()
		return nil
	}

	s.errMsg = ""
	return func() tea.Msg {
		return router.PushScreenMsg{
			Screen: quizscreen.New(s.generator, s.eventRepo, s.ledger, params),
		}
	}
}

func (s *SetupScreen) View(width, height int) string {
	labelStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	focusedLabel := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)

	label := func(field int, text string) string {
		if s.focus == field {
			return focusedLabel.Render("▸ " + text)
		}
		return labelStyle.Render("  " + text)
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(label(fieldTopic, "Topic"))
	b.WriteString("\n  ")
	b.WriteString(s.topicInput.View())
	b.WriteString("\n\n")

	b.WriteString(label(fieldDifficulty, "Difficulty"))
	b.WriteString("\n  ")
	b.WriteString(s.difficultyView())
	b.WriteString("\n\n")

	b.WriteString(label(fieldCount, fmt.Sprintf("Questions (%d-%d)", quizgen.MinQuestions, quizgen.MaxQuestions)))
	b.WriteString("\n  ")
	b.WriteString(s.countInput.View())
	b.WriteString("\n\n")

	b.WriteString(s.startBtn.View())
	b.WriteString("\n")

	if s.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Render("  " + s.errMsg))
		b.WriteString("\n")
	}

	card := theme.Card.Width(min(width-8, 70)).Render(b.String())
	return "\n" + lipgloss.PlaceHorizontal(width, lipgloss.Center, card)
}

func (s *SetupScreen) difficultyView() string {
	parts := make([]string, 0, len(quiz.Difficulties))
	for i, d := range quiz.Difficulties {
		text := string(d)
		if i == s.recommended {
			text += " ★"
		}
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.difficulty {
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Underline(true)
		}
		parts = append(parts, style.Render(text))
	}
	row := strings.Join(parts, "    ")
	if s.recommended >= 0 {
		row += lipgloss.NewStyle().Foreground(theme.TextDim).Render("   ★ recommended")
	}
	return row
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
