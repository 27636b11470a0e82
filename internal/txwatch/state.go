package txwatch

// WatchState is the position of one watch in the confirmation state machine.
//
//	NotStarted -> Checking -> Resolved
//	                       -> Subscribed -> Resolved
//	any non-terminal state -> Failed
type WatchState int

const (
	StateNotStarted WatchState = iota
	StateChecking
	StateSubscribed
	StateResolved
	StateFailed
)

func (s WatchState) String() string {
	switch s {
	case StateNotStarted:
		return "not_started"
	case StateChecking:
		return "checking"
	case StateSubscribed:
		return "subscribed"
	case StateResolved:
		return "resolved"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// IsTerminal reports whether no further transition can leave s.
func (s WatchState) IsTerminal() bool {
	return s == StateResolved || s == StateFailed
}
