package router

import "fmt"

// Route identifies a screen by the same string the navigation destinations
// carry. Applications define their routes as string constants.
//
// Example:
//
//	const (
//	    RouteLeads    router.Route = "leads"
//	    RouteContacts router.Route = "contacts"
//	)
type Route string

// RouteExit is a special Route value that signals the router to exit.
const RouteExit Route = ""

// ScreenFunc is a function that runs a screen.
// It takes an input and returns a result.
// The input and result types are screen-specific.
type ScreenFunc func(input any) (result any, err error)

// TransitionFunc is called after each screen completes to determine the next
// route. It receives the route that just completed, its result, and the
// navigation stack.
//
// Return (route, input) to navigate to a new screen.
// Return stack.Pop() values to go back.
// Return (RouteExit, nil) to exit the router.
type TransitionFunc func(from Route, result any, stack *Stack) (next Route, input any)

// Router manages screen navigation with explicit data flow.
// Screens are registered against routes, and a single transition function
// handles all routing logic in one place. Navigation widgets report the
// selected destination's route, so a host typically feeds NavResult routes
// straight into the transition function.
type Router struct {
	screens    map[Route]ScreenFunc
	transition TransitionFunc
	stack      *Stack
}

// New creates a new Router.
func New() *Router {
	return &Router{
		screens: make(map[Route]ScreenFunc),
		stack:   NewStack(),
	}
}

// Register adds a screen to the router.
// The screen function will be called when navigating to this route.
func (r *Router) Register(route Route, fn ScreenFunc) *Router {
	r.screens[route] = fn
	return r
}

// OnTransition sets the transition function that determines navigation flow.
// This function is called after each screen completes.
func (r *Router) OnTransition(fn TransitionFunc) *Router {
	r.transition = fn
	return r
}

// Run starts the router at the given route with the given input.
// It continues running until the transition function returns RouteExit
// or an error occurs.
func (r *Router) Run(start Route, input any) error {
	if r.transition == nil {
		return fmt.Errorf("router: no transition function set")
	}

	current := start
	currentInput := input

	for {
		fn, ok := r.screens[current]
		if !ok {
			return fmt.Errorf("router: route %q not registered", current)
		}

		result, err := fn(currentInput)
		if err != nil {
			return fmt.Errorf("router: route %q error: %w", current, err)
		}

		next, nextInput := r.transition(current, result, r.stack)

		if next == RouteExit {
			return nil
		}

		current = next
		currentInput = nextInput
	}
}

// Stack returns the navigation stack for use in transition functions.
// This allows the transition function to push/pop for back navigation.
func (r *Router) Stack() *Stack {
	return r.stack
}
