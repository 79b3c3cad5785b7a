package state

type Screen int

const (
	ScreenList Screen = iota
	ScreenArticle
)

func (s Screen) String() string {
	switch s {
	case ScreenList:
		return "list"
	case ScreenArticle:
		return "article"
	default:
		return "unknown"
	}
}

// Input is a key event already decoded into a navigation intent.
type Input int

const (
	InputNone Input = iota
	InputQuit
	InputCancel
	InputDown
	InputUp
	InputSelect
)

// Navigation tracks which screen is shown, the selected post and the article
// scroll offset. Selection clamps at both ends of the list.
type Navigation struct {
	screen   Screen
	selected int
	scroll   int
	count    int
	quitting bool
}

func NewNavigation(count int) *Navigation {
	if count < 0 {
		count = 0
	}
	return &Navigation{count: count}
}

func (n *Navigation) Screen() Screen { return n.screen }
func (n *Navigation) Selected() int  { return n.selected }
func (n *Navigation) Scroll() int    { return n.scroll }
func (n *Navigation) Quitting() bool { return n.quitting }

// Handle applies one input and reports whether it changed or consumed state.
// Unhandled inputs leave the navigation untouched so callers can fall back to
// other bindings.
func (n *Navigation) Handle(in Input) bool {
	if n.quitting {
		return false
	}
	switch n.screen {
	case ScreenList:
		return n.handleList(in)
	case ScreenArticle:
		return n.handleArticle(in)
	}
	return false
}

func (n *Navigation) handleList(in Input) bool {
	switch in {
	case InputQuit:
		n.quitting = true
		return true
	case InputDown:
		n.selected = ClampCursor(n.selected+1, n.count)
		return true
	case InputUp:
		n.selected = ClampCursor(n.selected-1, n.count)
		return true
	case InputSelect:
		if n.count == 0 {
			return false
		}
		n.screen = ScreenArticle
		n.scroll = 0
		return true
	}
	return false
}

func (n *Navigation) handleArticle(in Input) bool {
	switch in {
	case InputCancel, InputQuit:
		n.screen = ScreenList
		n.scroll = 0
		return true
	case InputDown:
		n.scroll++
		return true
	case InputUp:
		if n.scroll > 0 {
			n.scroll--
		}
		return true
	}
	return false
}
