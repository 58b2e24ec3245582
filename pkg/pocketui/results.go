package pocketui

// NavAction represents how a navigation widget was resolved.
type NavAction int

const (
	NavActionSelected  NavAction = iota // User selected a destination
	NavActionDismissed                  // User dismissed without selecting (sheet backdrop, back button)
	NavActionMore                       // User asked for the overflow sheet from the tab bar
)

// NavResult is the standardized return type of the navigation widgets.
// After a selection the widget has already applied the ordering contract
// (promotion, collapse) to NavigationState; the host only needs to route.
type NavResult struct {
	Destination Destination // The selected destination (valid when Action is NavActionSelected)
	Action      NavAction
}
