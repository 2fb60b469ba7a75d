// Package shell implements the site chrome's routing state: the current
// route, the mobile menu, scroll reset, and the enter/exit lifecycle of the
// page view in the page slot. It holds no I/O; the HTTP handlers and the
// terminal preview drive it and render what it reports.
package shell

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultTransitionDuration matches the page wrapper animation.
const DefaultTransitionDuration = 400 * time.Millisecond

// View is an independently owned page view. It renders with no arguments
// and needs no teardown beyond removal. templ.Component satisfies it.
type View interface {
	Render(ctx context.Context, w io.Writer) error
}

// Pages maps every route to its view.
type Pages map[Route]View

// Options configures a Shell. Zero values fall back to defaults.
type Options struct {
	TransitionDuration time.Duration
	Now                func() time.Time
	NewID              func() string
}

// Shell owns the current route, the menu state and the page mounts.
// Methods are safe for concurrent use.
type Shell struct {
	mu       sync.Mutex
	pages    Pages
	duration time.Duration
	now      func() time.Time
	newID    func() string

	current Route
	menu    MenuState
	scroll  int
	// active is the entering or settled mount; exiting is the outgoing one.
	active  *Mount
	exiting *Mount
}

// New creates a shell showing initial. Every known route must have a view.
func New(pages Pages, initial Route, opts Options) (*Shell, error) {
	for _, r := range Routes {
		if pages[r] == nil {
			return nil, fmt.Errorf("no view registered for %s: %w", r, ErrUnknownRoute)
		}
	}
	if !initial.Valid() {
		return nil, fmt.Errorf("initial route %q: %w", initial, ErrUnknownRoute)
	}
	if opts.TransitionDuration <= 0 {
		opts.TransitionDuration = DefaultTransitionDuration
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.NewID == nil {
		opts.NewID = uuid.NewString
	}

	s := &Shell{
		pages:    pages,
		duration: opts.TransitionDuration,
		now:      opts.Now,
		newID:    opts.NewID,
		current:  initial,
		menu:     MenuCollapsed,
	}
	s.active = s.mount(initial)
	return s, nil
}

func (s *Shell) mount(r Route) *Mount {
	return &Mount{
		ID:        s.newID(),
		Route:     r,
		Phase:     PhaseEntering,
		StartedAt: s.now(),
		View:      s.pages[r],
	}
}

// Navigate makes r the current route. It always resets the scroll offset and
// collapses the menu, even when r is already current. When the route
// changes, the displayed mount starts exiting, any mount still exiting from
// an earlier navigation is disposed, and a new entering mount is created.
func (s *Shell) Navigate(r Route) (Transition, error) {
	if !r.Valid() {
		return Transition{}, fmt.Errorf("navigate to %q: %w", r, ErrUnknownRoute)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.scroll = 0
	s.menu = MenuCollapsed

	t := Transition{Route: r, ScrollReset: true}
	if r == s.current {
		return t, nil
	}

	now := s.now()
	if s.exiting != nil {
		s.exiting.Phase = PhaseDisposed
		t.Disposed = append(t.Disposed, s.exiting.ID)
		s.exiting = nil
	}
	if s.active != nil {
		s.active.exit(now)
		s.exiting = s.active
		exiting := *s.exiting
		t.Exiting = &exiting
	}

	s.active = s.mount(r)
	s.current = r
	entering := *s.active
	t.Entering = &entering
	t.Changed = true
	return t, nil
}

// NavigatePath resolves a request path and navigates to it.
func (s *Shell) NavigatePath(path string) (Transition, error) {
	r, ok := ParseRoute(path)
	if !ok {
		return Transition{}, fmt.Errorf("navigate to %q: %w", path, ErrUnknownRoute)
	}
	return s.Navigate(r)
}

// CurrentRoute returns the route presently displayed.
func (s *Shell) CurrentRoute() Route {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// ToggleMenu flips the menu state and returns the new value.
func (s *Shell) ToggleMenu() MenuState {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.menu = s.menu.Toggle()
	return s.menu
}

// Menu returns the current menu state.
func (s *Shell) Menu() MenuState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.menu
}

// ScrollOffset returns the last known vertical scroll offset.
func (s *Shell) ScrollOffset() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.scroll
}

// ReportScroll records a scroll position observed by the viewport.
func (s *Shell) ReportScroll(offset int) {
	if offset < 0 {
		offset = 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scroll = offset
}

// ActiveLink returns the index of the link for the current route, or -1.
func (s *Shell) ActiveLink(links []NavLink) int {
	return ActiveLinkIndex(links, s.CurrentRoute())
}

// Complete delivers a transition-complete signal for a mount. An entering
// mount settles; an exiting mount is disposed. Settling the incoming mount
// also disposes the outgoing one, since its exit has already played out by
// then. Signals for unknown, superseded or already settled mounts return
// false and change nothing.
func (s *Shell) Complete(mountID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active != nil && s.active.ID == mountID {
		if !s.active.complete() {
			return false
		}
		if s.exiting != nil {
			s.exiting.Phase = PhaseDisposed
			s.exiting = nil
		}
		return true
	}
	if s.exiting != nil && s.exiting.ID == mountID {
		s.exiting.complete()
		s.exiting = nil
		return true
	}
	return false
}

// CompleteOverdue finishes every transition that has run longer than the
// configured duration at now. It covers clients that never send a
// completion signal. It returns the number of mounts advanced.
func (s *Shell) CompleteOverdue(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	advanced := 0
	if s.exiting != nil && now.Sub(s.exiting.StartedAt) >= s.duration {
		s.exiting.complete()
		s.exiting = nil
		advanced++
	}
	if s.active != nil && s.active.Phase == PhaseEntering && now.Sub(s.active.StartedAt) >= s.duration {
		s.active.complete()
		advanced++
	}
	return advanced
}

// Active returns a copy of the entering or settled mount.
func (s *Shell) Active() Mount {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.active
}

// Mounts returns copies of the live mounts, outgoing first.
func (s *Shell) Mounts() []Mount {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mountsLocked()
}

func (s *Shell) mountsLocked() []Mount {
	var mounts []Mount
	if s.exiting != nil {
		mounts = append(mounts, *s.exiting)
	}
	if s.active != nil {
		mounts = append(mounts, *s.active)
	}
	return mounts
}

// TransitionDuration is the configured length of one enter or exit.
func (s *Shell) TransitionDuration() time.Duration {
	return s.duration
}

// State is a point-in-time snapshot of the shell.
type State struct {
	Route  Route     `json:"route"`
	Menu   MenuState `json:"menu"`
	Scroll int       `json:"scroll"`
	Mounts []Mount   `json:"mounts"`
}

// Snapshot returns the shell state under a single lock.
func (s *Shell) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return State{
		Route:  s.current,
		Menu:   s.menu,
		Scroll: s.scroll,
		Mounts: s.mountsLocked(),
	}
}
