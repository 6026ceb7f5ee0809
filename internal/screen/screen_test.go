package screen

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Another0Noob/recipe-browser/internal/recipes"
)

type stubService struct {
	mu        sync.Mutex
	liked     map[recipes.ID]bool
	statusErr map[recipes.ID]error
	toggleErr error
	state     *bool // fixed toggle answer, nil means none reported

	statusCalls atomic.Int32
	toggleCalls atomic.Int32
}

func (s *stubService) LikeStatus(_ context.Context, _ string, id recipes.ID) (bool, error) {
	s.statusCalls.Add(1)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.statusErr[id]; err != nil {
		return false, err
	}
	return s.liked[id], nil
}

func (s *stubService) ToggleLike(_ context.Context, _ string, _ recipes.ID) (*bool, error) {
	s.toggleCalls.Add(1)
	if s.toggleErr != nil {
		return nil, s.toggleErr
	}
	return s.state, nil
}

type navRecorder struct {
	screen string
	params any
	backs  int
}

func (n *navRecorder) Navigate(screen string, params any) tea.Cmd {
	n.screen, n.params = screen, params
	return nil
}

func (n *navRecorder) GoBack() tea.Cmd {
	n.backs++
	return nil
}

type timerRecorder struct {
	durations []time.Duration
	fire      []func(time.Time) tea.Msg
}

func (t *timerRecorder) after(d time.Duration, fn func(time.Time) tea.Msg) tea.Cmd {
	t.durations = append(t.durations, d)
	t.fire = append(t.fire, fn)
	return nil
}

// collect runs cmd and any batches it expands to and returns the messages.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

// deliver feeds the messages produced by cmd to s. Commands returned by s are
// not run.
func deliver(s Screen, cmd tea.Cmd) {
	for _, msg := range collect(cmd) {
		s.Update(msg)
	}
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func sampleRecipes() []recipes.Recipe {
	return []recipes.Recipe{
		{ID: "1", Title: "Pasta Carbonara", RecipePicture: "https://img.example/1.jpg"},
		{ID: "2", Title: "Tomato Soup"},
		{ID: "3", Title: "pasta salad"},
	}
}
