// Package router provides screen navigation with explicit data flow.
//
// Routes are plain strings, matching the Route field on navigation
// destinations, so the result of a navigation widget maps directly onto a
// registered screen. A centralized transition function owns all routing
// logic, which keeps data flow traceable and avoids hidden global state.
//
// # Basic Usage
//
//	const (
//	    RouteLeads      router.Route = "leads"
//	    RouteLeadDetail router.Route = "leads/detail"
//	)
//
//	// Define input/output types for each screen
//	type LeadListInput struct {
//	    Leads  []Lead
//	    Resume *LeadListResume // nil if fresh, populated if returning
//	}
//
//	type LeadListResult struct {
//	    Action   LeadListAction
//	    Selected *Lead
//	    Resume   *LeadListResume // position state for back navigation
//	}
//
//	// Create and configure router
//	r := router.New()
//
//	r.Register(RouteLeads, func(input any) (any, error) {
//	    in := input.(LeadListInput)
//	    return leadListScreen(in), nil
//	})
//
//	r.Register(RouteLeadDetail, func(input any) (any, error) {
//	    in := input.(LeadDetailInput)
//	    return leadDetailScreen(in), nil
//	})
//
//	r.OnTransition(func(from router.Route, result any, stack *router.Stack) (router.Route, any) {
//	    switch from {
//	    case RouteLeads:
//	        res := result.(LeadListResult)
//	        switch res.Action {
//	        case LeadListActionSelected:
//	            // Push current state for back navigation
//	            stack.Push(from, input, res.Resume)
//	            return RouteLeadDetail, LeadDetailInput{Lead: res.Selected}
//	        case LeadListActionBack:
//	            if stack.IsEmpty() {
//	                return router.RouteExit, nil
//	            }
//	            entry := stack.Pop()
//	            in := entry.Input.(LeadListInput)
//	            in.Resume = entry.Resume.(*LeadListResume)
//	            return entry.Route, in
//	        }
//	    case RouteLeadDetail:
//	        // ...
//	    }
//	    return router.RouteExit, nil
//	})
//
//	r.Run(RouteLeads, LeadListInput{Leads: leads})
//
// # Resume State
//
// Screens can return resume state (like scroll position) that gets stored
// on the stack when navigating forward. When navigating back, this state
// is passed back to the screen via its input, allowing it to restore
// position.
//
// The Resume field should be nil for stateless screens (dialogs,
// confirmations).
package router
