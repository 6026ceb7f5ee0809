package screen

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

const (
	RecipeListScreen   = "RecipeList"
	RecipeDetailScreen = "DetailRecipe"
)

// Screen is one entry of the App's navigation stack.
type Screen interface {
	Name() string
	Init() tea.Cmd
	Update(msg tea.Msg) tea.Cmd
	View(width, height int) string
	// Typing reports whether key presses go to a text field.
	Typing() bool
	// Unmount releases everything the screen started.
	Unmount()
}

// Navigator moves between screens.
type Navigator interface {
	Navigate(screen string, params any) tea.Cmd
	GoBack() tea.Cmd
}

// Factory builds a screen from navigation params.
type Factory func(params any, nav Navigator) (Screen, error)

// App is the root tea.Model. It owns a stack of screens; key presses go to the
// top screen, every other message goes to all of them so results started by a
// covered screen still reach it.
type App struct {
	factories map[string]Factory
	stack     []Screen
	logger    *zap.Logger

	width  int
	height int
}

func NewApp(logger *zap.Logger) *App {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &App{
		factories: make(map[string]Factory),
		logger:    logger.Named("screen"),
	}
}

// Register makes name a navigation target.
func (a *App) Register(name string, f Factory) {
	a.factories[name] = f
}

// Push puts s on top of the stack without running its Init.
func (a *App) Push(s Screen) {
	a.stack = append(a.stack, s)
}

// Open builds and pushes the screen registered as name.
func (a *App) Open(name string, params any) (Screen, error) {
	f, ok := a.factories[name]
	if !ok {
		return nil, fmt.Errorf("unknown screen %q", name)
	}
	s, err := f(params, a)
	if err != nil {
		return nil, fmt.Errorf("failed to build screen %q: %w", name, err)
	}
	a.Push(s)
	return s, nil
}

func (a *App) Navigate(name string, params any) tea.Cmd {
	return func() tea.Msg {
		return NavigateMsg{Screen: name, Params: params}
	}
}

func (a *App) GoBack() tea.Cmd {
	return func() tea.Msg {
		return BackMsg{}
	}
}

// Top returns the visible screen, or nil when the stack is empty.
func (a *App) Top() Screen {
	if len(a.stack) == 0 {
		return nil
	}
	return a.stack[len(a.stack)-1]
}

// Depth is the number of stacked screens.
func (a *App) Depth() int { return len(a.stack) }

func (a *App) Init() tea.Cmd {
	if top := a.Top(); top != nil {
		return top.Init()
	}
	return nil
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		top := a.Top()
		if msg.String() == "ctrl+c" || top == nil || (msg.String() == "q" && !top.Typing()) {
			a.Close()
			return a, tea.Quit
		}
		return a, top.Update(msg)

	case NavigateMsg:
		s, err := a.Open(msg.Screen, msg.Params)
		if err != nil {
			a.logger.Warn("Navigation failed", zap.String("screen", msg.Screen), zap.Error(err))
			return a, nil
		}
		a.logger.Debug("Navigated", zap.String("screen", s.Name()), zap.Int("depth", len(a.stack)))
		return a, s.Init()

	case BackMsg:
		top := a.Top()
		if top == nil {
			return a, tea.Quit
		}
		top.Unmount()
		a.stack = a.stack[:len(a.stack)-1]
		if len(a.stack) == 0 {
			return a, tea.Quit
		}
		return a, nil

	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
	}

	var cmds []tea.Cmd
	for _, s := range a.stack {
		cmds = append(cmds, s.Update(msg))
	}
	return a, tea.Batch(cmds...)
}

func (a *App) View() string {
	top := a.Top()
	if top == nil {
		return ""
	}
	return top.View(a.width, a.height)
}

// Close unmounts every screen, top first.
func (a *App) Close() {
	for i := len(a.stack) - 1; i >= 0; i-- {
		a.stack[i].Unmount()
	}
	a.stack = nil
}
