package client

// RouteClass declares what a route requires from the session.
type RouteClass int

const (
	// RoutePublic renders for anyone.
	RoutePublic RouteClass = iota
	// RouteRequiresAuth renders only for a signed-in user.
	RouteRequiresAuth
	// RouteRequiresAuthAndBusiness renders only after onboarding is done.
	RouteRequiresAuthAndBusiness
)

// Decision is what a caller should do with a route given the session state.
type Decision int

const (
	// Render shows the route.
	Render Decision = iota
	// RenderPlaceholder shows a neutral placeholder while resolution is
	// still in flight. Never redirect off a transient state.
	RenderPlaceholder
	// RedirectLogin sends the visitor to the sign-in route.
	RedirectLogin
	// RedirectOnboarding sends the user to the business setup route.
	RedirectOnboarding
	// RedirectApp sends the user forward into the application shell.
	RedirectApp
)

// Decide is the pure routing rule. It depends only on its inputs, so the
// same state and class always produce the same decision.
func Decide(state State, class RouteClass) Decision {
	if class == RoutePublic {
		return Render
	}

	switch state {
	case StateLoading:
		return RenderPlaceholder
	case StateUnauthenticated:
		return RedirectLogin
	case StateAuthenticatedNoBusiness:
		if class == RouteRequiresAuthAndBusiness {
			return RedirectOnboarding
		}
		return Render
	case StateAuthenticatedWithBusiness:
		return Render
	default:
		return RedirectLogin
	}
}

// DecideOnboarding is the rule for the onboarding route itself. It is an
// auth-only route, but a user who already owns a business is sent forward
// into the app instead of being shown setup again. Keeping this here rather
// than in each view avoids a redirect loop with Decide.
func DecideOnboarding(state State) Decision {
	if state == StateAuthenticatedWithBusiness {
		return RedirectApp
	}
	return Decide(state, RouteRequiresAuth)
}
