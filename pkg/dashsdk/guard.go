package dashsdk

// RouteKind classifies a route for guarding purposes.
type RouteKind int

const (
	// RoutePublic renders for everyone (e.g. marketing or error pages).
	RoutePublic RouteKind = iota
	// RouteLogin is the login page; authenticated users are bounced away.
	RouteLogin
	// RouteProtected requires an authenticated session.
	RouteProtected
	// RouteRoot redirects by auth state and never renders itself.
	RouteRoot
)

// Decision is the guard's verdict for a route.
type Decision int

const (
	// Pending: the startup check has not completed, render nothing yet.
	// Protected content must not flash a logged-out view while a legitimate
	// session is still being restored.
	Pending Decision = iota
	// Render the requested route.
	Render
	// RedirectToLogin: the caller is anonymous on a protected route.
	RedirectToLogin
	// RedirectToDashboard: the caller is authenticated on login/root.
	RedirectToDashboard
)

// Evaluate applies the route guard for the session's current state.
func (s *Session) Evaluate(kind RouteKind) Decision {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.checkDone {
		return Pending
	}

	authed := s.state == StateAuthenticated
	switch kind {
	case RouteProtected:
		if authed {
			return Render
		}
		return RedirectToLogin
	case RouteLogin:
		if authed {
			return RedirectToDashboard
		}
		return Render
	case RouteRoot:
		if authed {
			return RedirectToDashboard
		}
		return RedirectToLogin
	default:
		return Render
	}
}
