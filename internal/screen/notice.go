package screen

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	noticeDuration = 4 * time.Second
	noticeText     = "You need to be logged in to see the like status of a recipe"
)

// Notice is a transient banner that hides itself after noticeDuration.
type Notice struct {
	visible bool
	seq     int
	shown   int // hidden -> visible transitions

	after func(time.Duration, func(time.Time) tea.Msg) tea.Cmd
}

func newNotice() Notice {
	return Notice{after: tea.Tick}
}

// Show makes the notice visible and schedules its dismissal. Showing a notice
// that is already visible is a no-op; its timer keeps running.
func (n *Notice) Show() tea.Cmd {
	if n.visible {
		return nil
	}
	n.visible = true
	n.shown++
	n.seq++
	seq := n.seq
	return n.after(noticeDuration, func(time.Time) tea.Msg {
		return noticeExpiredMsg{seq: seq}
	})
}

// Dismiss hides the notice early. A timer started for it is ignored.
func (n *Notice) Dismiss() {
	n.visible = false
}

// Update handles expiry and reports whether it hid the notice. Expiry of an
// earlier showing never hides a later one.
func (n *Notice) Update(msg tea.Msg) bool {
	m, ok := msg.(noticeExpiredMsg)
	if !ok || m.seq != n.seq || !n.visible {
		return false
	}
	n.visible = false
	return true
}

func (n Notice) Visible() bool { return n.visible }
