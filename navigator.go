package biztrack

// Route names one of the two mutually exclusive top-level screen trees, or
// the neutral waiting state while a session operation is in flight.
type Route uint8

const (
	// RouteLoading renders a waiting indicator and nothing else; neither
	// screen tree is mounted.
	RouteLoading Route = iota

	// RouteMain is the authenticated tree.
	RouteMain

	// RouteAuth is the unauthenticated login/register tree.
	RouteAuth
)

func (r Route) String() string {
	switch r {
	case RouteLoading:
		return "loading"
	case RouteMain:
		return "main"
	case RouteAuth:
		return "auth"
	default:
		return "invalid"
	}
}

// RouteFor projects a session snapshot onto a route. It is a pure function
// of token presence and the loading flag; no other navigation state may
// keep the authenticated tree mounted after logout, or vice versa.
func RouteFor(s Session) Route {
	if s.Loading() || s.State == StateUnknown {
		return RouteLoading
	}
	if s.Authenticated() {
		return RouteMain
	}
	return RouteAuth
}

// Navigator tracks the current route for a presentation layer. Feed it
// session snapshots (polled, or driven by a ChannelSink consumer) and
// render whatever Route reports.
type Navigator struct {
	session func() Session
}

// NewNavigator returns a navigator reading from the given manager.
func NewNavigator(m *Manager) *Navigator {
	return &Navigator{session: m.Current}
}

// Route returns the route for the manager's current session state.
func (n *Navigator) Route() Route {
	return RouteFor(n.session())
}
