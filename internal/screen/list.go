package screen

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Another0Noob/recipe-browser/internal/likes"
	"github.com/Another0Noob/recipe-browser/internal/recipes"
	"github.com/Another0Noob/recipe-browser/internal/session"
)

type Phase int

const (
	PhaseLoading Phase = iota
	PhaseReady
)

func (p Phase) String() string {
	if p == PhaseReady {
		return "ready"
	}
	return "loading"
}

const suggestionCount = 3

// ListOptions configures a RecipeList.
type ListOptions struct {
	Recipes   []recipes.Recipe
	Service   likes.Service
	Session   session.Provider
	Navigator Navigator
	Logger    *zap.Logger
	// Search is the initial search text; a non-empty value opens the search bar.
	Search string
}

// RecipeList shows recipes with their like state. On mount it checks the like
// status of every recipe and stays in PhaseLoading until all checks settled.
type RecipeList struct {
	recipes []recipes.Recipe
	known   map[recipes.ID]struct{}
	svc     likes.Service
	sess    session.Provider
	nav     Navigator
	logger  *zap.Logger

	liked   likes.Set
	phase   Phase
	pending int
	readies int

	mountID string
	ctx     context.Context
	cancel  context.CancelFunc
	active  bool

	showSearch bool
	search     textinput.Model
	cursor     int
	spinner    spinner.Model
	notice     Notice
}

func NewRecipeList(opts ListOptions) *RecipeList {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	known := make(map[recipes.ID]struct{}, len(opts.Recipes))
	for _, r := range opts.Recipes {
		known[r.ID] = struct{}{}
	}

	ti := textinput.New()
	ti.Placeholder = "Search recipes"
	ti.Prompt = "🔍 "
	ti.CharLimit = 100

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = likedStyle

	m := &RecipeList{
		recipes: opts.Recipes,
		known:   known,
		svc:     opts.Service,
		sess:    opts.Session,
		nav:     opts.Navigator,
		logger:  logger.Named("recipe_list"),
		liked:   likes.NewSet(),
		search:  ti,
		spinner: sp,
		notice:  newNotice(),
	}
	if opts.Search != "" {
		m.showSearch = true
		m.search.SetValue(opts.Search)
	}
	return m
}

// ListFactory returns a Factory that builds RecipeLists from opts. params may
// be a search string.
func ListFactory(opts ListOptions) Factory {
	return func(params any, nav Navigator) (Screen, error) {
		o := opts
		o.Navigator = nav
		if s, ok := params.(string); ok {
			o.Search = s
		}
		return NewRecipeList(o), nil
	}
}

func (m *RecipeList) Name() string { return RecipeListScreen }

func (m *RecipeList) Typing() bool { return m.showSearch && m.search.Focused() }

func (m *RecipeList) Phase() Phase { return m.phase }

// Liked returns the liked recipe ids, sorted.
func (m *RecipeList) Liked() []recipes.ID { return m.liked.IDs() }

func (m *RecipeList) Init() tea.Cmd {
	return tea.Batch(m.mount(), m.spinner.Tick)
}

// mount starts a fresh lifecycle: new mount id, empty liked set and one
// status check per recipe.
func (m *RecipeList) mount() tea.Cmd {
	if m.cancel != nil {
		m.cancel()
	}
	m.ctx, m.cancel = context.WithCancel(context.Background())
	m.mountID = uuid.NewString()
	m.active = true
	m.liked = likes.NewSet()
	m.phase = PhaseLoading
	m.pending = len(m.recipes)

	token, _ := currentToken(m.sess)
	m.logger.Debug("Mounting recipe list",
		zap.String("mount_id", m.mountID),
		zap.Int("recipes", len(m.recipes)),
		zap.Bool("logged_in", token != ""))

	cmds := make([]tea.Cmd, 0, len(m.recipes)+1)
	for _, r := range m.recipes {
		if token == "" {
			cmds = append(cmds, m.notice.Show())
			m.settle()
			continue
		}
		cmds = append(cmds, m.checkStatus(token, r.ID))
	}
	m.readyIfSettled()
	return tea.Batch(cmds...)
}

// Unmount cancels outstanding requests; their results are dropped.
func (m *RecipeList) Unmount() {
	m.active = false
	if m.cancel != nil {
		m.cancel()
	}
	m.logger.Debug("Unmounted recipe list", zap.String("mount_id", m.mountID))
}

func (m *RecipeList) checkStatus(token string, id recipes.ID) tea.Cmd {
	ctx, svc, mountID := m.ctx, m.svc, m.mountID
	return func() tea.Msg {
		liked, err := likes.CheckStatus(ctx, svc, token, id)
		return statusMsg{mountID: mountID, id: id, liked: liked, err: err}
	}
}

func (m *RecipeList) toggleLike(id recipes.ID) tea.Cmd {
	token, ok := currentToken(m.sess)
	if !ok {
		return nil
	}
	ctx, svc, mountID := m.ctx, m.svc, m.mountID
	return func() tea.Msg {
		state, err := likes.Toggle(ctx, svc, token, id)
		return toggledMsg{mountID: mountID, id: id, state: state, err: err}
	}
}

func (m *RecipeList) current(mountID string) bool {
	return m.active && mountID == m.mountID
}

func (m *RecipeList) settle() {
	if m.pending > 0 {
		m.pending--
	}
	m.readyIfSettled()
}

func (m *RecipeList) readyIfSettled() {
	if m.pending == 0 && m.phase == PhaseLoading {
		m.phase = PhaseReady
		m.readies++
		m.logger.Debug("Recipe list ready",
			zap.String("mount_id", m.mountID),
			zap.Int("liked", len(m.liked)))
	}
}

func (m *RecipeList) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case statusMsg:
		if !m.current(msg.mountID) {
			return nil
		}
		var cmd tea.Cmd
		switch {
		case msg.err != nil:
			if likes.Report(m.logger, likes.OpStatus, msg.id, msg.err) == likes.KindNoSession {
				cmd = m.notice.Show()
			}
		case msg.liked:
			if _, ok := m.known[msg.id]; ok {
				m.liked.Add(msg.id)
			}
		}
		m.settle()
		return cmd

	case toggledMsg:
		if !m.current(msg.mountID) {
			return nil
		}
		if msg.err != nil {
			if likes.Report(m.logger, likes.OpToggle, msg.id, msg.err) == likes.KindNoSession {
				return m.notice.Show()
			}
			return nil
		}
		if _, ok := m.known[msg.id]; ok {
			m.liked.Apply(msg.id, msg.state)
		}
		return nil

	case noticeExpiredMsg:
		m.notice.Update(msg)
		return nil

	case spinner.TickMsg:
		if m.phase != PhaseLoading || !m.active {
			return nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.Typing() {
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return cmd
	}
	return nil
}

func (m *RecipeList) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.Typing() {
		switch msg.String() {
		case "esc":
			m.toggleSearch()
			return nil
		case "enter", "down", "tab":
			m.search.Blur()
			return nil
		}
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		m.clampCursor()
		return cmd
	}

	switch msg.String() {
	case "/":
		return m.toggleSearch()
	case "esc", "backspace":
		if m.showSearch {
			m.toggleSearch()
			return nil
		}
		if m.nav != nil {
			return m.nav.GoBack()
		}
		return nil
	case "x":
		m.notice.Dismiss()
		return nil
	}

	// list interaction is gated until every status check settled
	if m.phase != PhaseReady {
		return nil
	}

	visible := m.Visible()
	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		} else if m.showSearch {
			return m.search.Focus()
		}
	case "down", "j":
		if m.cursor < len(visible)-1 {
			m.cursor++
		}
	case "home", "g":
		m.cursor = 0
	case "end", "G":
		m.cursor = max(len(visible)-1, 0)
	case "enter":
		if len(visible) > 0 && m.nav != nil {
			return m.nav.Navigate(RecipeDetailScreen, visible[m.cursor])
		}
	case "l", " ":
		if len(visible) > 0 {
			return m.toggleLike(visible[m.cursor].ID)
		}
	}
	return nil
}

// toggleSearch shows or hides the search bar. The text is cleared either way.
func (m *RecipeList) toggleSearch() tea.Cmd {
	m.showSearch = !m.showSearch
	m.search.Reset()
	m.cursor = 0
	if m.showSearch {
		return m.search.Focus()
	}
	m.search.Blur()
	return nil
}

// Visible is the recipe list after the search filter.
func (m *RecipeList) Visible() []recipes.Recipe {
	if !m.showSearch {
		return m.recipes
	}
	return recipes.Filter(m.recipes, m.search.Value())
}

func (m *RecipeList) clampCursor() {
	n := len(m.Visible())
	if m.cursor >= n {
		m.cursor = max(n-1, 0)
	}
}

func (m *RecipeList) View(width, height int) string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("‹  New Recipes"))
	b.WriteString("\n")
	if m.showSearch {
		b.WriteString(searchStyle.Render(m.search.View()))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if m.phase == PhaseLoading {
		fmt.Fprintf(&b, "%s Loading recipes...\n", m.spinner.View())
	} else {
		b.WriteString(m.renderRows(height))
	}

	if m.notice.Visible() {
		b.WriteString("\n")
		b.WriteString(noticeStyle.Render(noticeText))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	help := "/ search • enter open • esc back • q quit"
	if session.LoggedIn(m.sess) {
		help = "/ search • enter open • l like • esc back • q quit"
	}
	if m.notice.Visible() {
		help += " • x dismiss"
	}
	b.WriteString(helpStyle.Render(help))
	return b.String()
}

func (m *RecipeList) renderRows(height int) string {
	visible := m.Visible()
	if len(visible) == 0 {
		out := helpStyle.Render("No recipes found.") + "\n"
		if s := recipes.Suggest(m.recipes, m.search.Value(), suggestionCount); len(s) > 0 {
			titles := make([]string, len(s))
			for i, r := range s {
				titles[i] = r.Title
			}
			out += helpStyle.Render("Did you mean: "+strings.Join(titles, ", ")+"?") + "\n"
		}
		return out
	}

	rows := len(visible)
	if height > 0 {
		// header, search, notice and help take the rest
		rows = max(height-8, 1)
	}
	start := 0
	if m.cursor >= rows {
		start = m.cursor - rows + 1
	}
	end := min(start+rows, len(visible))

	loggedIn := session.LoggedIn(m.sess)
	var b strings.Builder
	for i := start; i < end; i++ {
		r := visible[i]
		cursor, style := "  ", titleStyle
		if i == m.cursor {
			cursor, style = "› ", selectedStyle
		}
		line := cursor + style.Render(r.Title)
		if loggedIn {
			if m.liked.Has(r.ID) {
				line += "  " + likedStyle.Render("♥ liked")
			} else {
				line += "  " + unlikedStyle.Render("♡")
			}
		}
		if r.RecipePicture != "" {
			line += "  " + pictureStyle.Render(r.RecipePicture)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func currentToken(p session.Provider) (string, bool) {
	if p == nil {
		return "", false
	}
	return p.CurrentToken()
}
