package screen

import (
	"github.com/Another0Noob/recipe-browser/internal/recipes"
)

// Bubble Tea message types

// NavigateMsg asks the App to push a screen.
type NavigateMsg struct {
	Screen string
	Params any
}

// BackMsg asks the App to pop the top screen.
type BackMsg struct{}

// statusMsg carries the settled like-status check of one recipe.
type statusMsg struct {
	mountID string
	id      recipes.ID
	liked   bool
	err     error
}

// toggledMsg carries the answer to a toggle request.
type toggledMsg struct {
	mountID string
	id      recipes.ID
	state   *bool
	err     error
}

// noticeExpiredMsg hides the notice shown under seq.
type noticeExpiredMsg struct {
	seq int
}
