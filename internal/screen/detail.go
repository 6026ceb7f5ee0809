package screen

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Another0Noob/recipe-browser/internal/recipes"
)

// RecipeDetail shows a single recipe.
type RecipeDetail struct {
	recipe recipes.Recipe
	nav    Navigator
}

// DetailFactory builds a RecipeDetail from a recipes.Recipe param.
func DetailFactory(params any, nav Navigator) (Screen, error) {
	switch r := params.(type) {
	case recipes.Recipe:
		return &RecipeDetail{recipe: r, nav: nav}, nil
	case *recipes.Recipe:
		if r != nil {
			return &RecipeDetail{recipe: *r, nav: nav}, nil
		}
	}
	return nil, fmt.Errorf("expected a recipe, got %T", params)
}

func (d *RecipeDetail) Name() string  { return RecipeDetailScreen }
func (d *RecipeDetail) Init() tea.Cmd { return nil }
func (d *RecipeDetail) Typing() bool  { return false }
func (d *RecipeDetail) Unmount()      {}

func (d *RecipeDetail) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch key.String() {
	case "esc", "backspace", "left", "h":
		return d.nav.GoBack()
	}
	return nil
}

func (d *RecipeDetail) View(width, height int) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("‹  " + d.recipe.Title))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "%s %s\n", helpStyle.Render("id:"), d.recipe.ID)
	if d.recipe.RecipePicture != "" {
		fmt.Fprintf(&b, "%s %s\n", helpStyle.Render("picture:"), pictureStyle.Render(d.recipe.RecipePicture))
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("esc back • q quit"))
	return b.String()
}
