package shell

// MenuState is the expanded/collapsed status of the mobile navigation panel.
type MenuState int

const (
	MenuCollapsed MenuState = iota
	MenuExpanded
)

// Toggle flips the state.
func (m MenuState) Toggle() MenuState {
	if m == MenuExpanded {
		return MenuCollapsed
	}
	return MenuExpanded
}

func (m MenuState) Expanded() bool {
	return m == MenuExpanded
}

// Visible reports whether the mobile panel should be drawn. Wide layouts
// always show the full navigation bar and ignore the menu state.
func (m MenuState) Visible(wide bool) bool {
	return !wide && m == MenuExpanded
}

func (m MenuState) String() string {
	if m == MenuExpanded {
		return "expanded"
	}
	return "collapsed"
}

// MarshalText lets the state appear as a string in JSON snapshots.
func (m MenuState) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}
