package shell

import "time"

// Phase is the lifecycle stage of one mounted page view.
//
//	entering -> settled -> exiting -> disposed
//
// An entering mount that is superseded skips settled and goes straight to
// exiting.
type Phase int

const (
	PhaseEntering Phase = iota
	PhaseSettled
	PhaseExiting
	PhaseDisposed
)

func (p Phase) String() string {
	switch p {
	case PhaseEntering:
		return "entering"
	case PhaseSettled:
		return "settled"
	case PhaseExiting:
		return "exiting"
	case PhaseDisposed:
		return "disposed"
	default:
		return "unknown"
	}
}

func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// Mount is one page view placed in the page slot.
type Mount struct {
	ID        string    `json:"id"`
	Route     Route     `json:"route"`
	Phase     Phase     `json:"phase"`
	StartedAt time.Time `json:"started_at"`
	View      View      `json:"-"`
}

// exit moves an entering or settled mount to exiting.
func (m *Mount) exit(now time.Time) {
	if m.Phase == PhaseEntering || m.Phase == PhaseSettled {
		m.Phase = PhaseExiting
		m.StartedAt = now
	}
}

// complete applies a transition-complete signal. It reports whether the
// phase changed.
func (m *Mount) complete() bool {
	switch m.Phase {
	case PhaseEntering:
		m.Phase = PhaseSettled
		return true
	case PhaseExiting:
		m.Phase = PhaseDisposed
		return true
	default:
		return false
	}
}

// Transition describes the effects of one Navigate call.
type Transition struct {
	Route Route `json:"route"`
	// Changed is false when navigating to the route already displayed.
	Changed bool `json:"changed"`
	// ScrollReset is always true; the viewport returns to the top on every navigation.
	ScrollReset bool   `json:"scroll_reset"`
	Entering    *Mount `json:"entering,omitempty"`
	Exiting     *Mount `json:"exiting,omitempty"`
	// Disposed holds ids of exiting mounts cut short by this navigation.
	Disposed []string `json:"disposed,omitempty"`
}
