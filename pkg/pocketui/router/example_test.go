package router_test

import (
	"fmt"

	"github.com/pocketcrm/pocketui/pkg/pocketui"
	"github.com/pocketcrm/pocketui/pkg/pocketui/router"
)

const (
	routeLeads      router.Route = "leads"
	routeTasks      router.Route = "tasks"
	routeSettings   router.Route = "settings"
	routeLeadDetail router.Route = "leads/detail"
)

// Example shows the intended wiring between the navigation widgets and the
// router: each workspace screen returns the NavResult of a drawer
// interaction, and the transition function feeds the selected destination's
// route straight back into the router.
func Example() {
	registry, _ := pocketui.NewScreenRegistry([]pocketui.Destination{
		{ID: "leads", Title: "Leads", Route: string(routeLeads)},
		{ID: "tasks", Title: "Tasks", Route: string(routeTasks)},
		{ID: "contacts", Title: "Contacts", Route: "contacts"},
		{ID: "companies", Title: "Companies", Route: "companies"},
		{ID: "settings", Title: "Settings", Route: string(routeSettings)},
	})
	nav, _ := pocketui.NewNavigationState(registry, "leads")

	// In the real client each workspace calls pocketui.NavigationDrawer and
	// returns its result; here the drawer interaction is simulated by
	// selecting directly on the shared state.
	pickFromDrawer := func(id string) (any, error) {
		dest, _ := registry.Lookup(id)
		if err := nav.SelectScreen(id); err != nil {
			return nil, err
		}
		return &pocketui.NavResult{Destination: dest, Action: pocketui.NavActionSelected}, nil
	}

	r := router.New()

	r.Register(routeLeads, func(any) (any, error) {
		fmt.Println("leads workspace: user picks settings from the drawer")
		return pickFromDrawer("settings")
	})

	r.Register(routeSettings, func(any) (any, error) {
		// settings sat outside the first row, so selecting it promoted it.
		fmt.Println("settings workspace, first row now", nav.Order()[:4])
		return &pocketui.NavResult{Action: pocketui.NavActionDismissed}, nil
	})

	r.OnTransition(func(from router.Route, result any, _ *router.Stack) (router.Route, any) {
		res := result.(*pocketui.NavResult)
		if res.Action != pocketui.NavActionSelected {
			return router.RouteExit, nil
		}
		return router.Route(res.Destination.Route), nil
	})

	_ = r.Run(routeLeads, nil)

	// Output:
	// leads workspace: user picks settings from the drawer
	// settings workspace, first row now [leads tasks contacts settings]
}

// Example_drillDown shows stack-based back navigation inside one workspace:
// opening a record pushes the list position, going back restores it.
func Example_drillDown() {
	r := router.New()

	type listPosition struct {
		Offset int
	}

	r.Register(routeLeads, func(input any) (any, error) {
		pos := input.(listPosition)
		if pos.Offset == 0 {
			fmt.Println("lead list at top, opening record 41")
			return 41, nil
		}
		fmt.Printf("lead list restored at offset %d, done\n", pos.Offset)
		return nil, nil
	})

	r.Register(routeLeadDetail, func(input any) (any, error) {
		fmt.Printf("record %d: logging a call, then back\n", input.(int))
		return nil, nil
	})

	r.OnTransition(func(from router.Route, result any, stack *router.Stack) (router.Route, any) {
		switch from {
		case routeLeads:
			recordID, ok := result.(int)
			if !ok {
				return router.RouteExit, nil
			}
			stack.Push(from, nil, listPosition{Offset: 12})
			return routeLeadDetail, recordID

		case routeLeadDetail:
			if entry := stack.Pop(); entry != nil {
				return entry.Route, entry.Resume.(listPosition)
			}
		}
		return router.RouteExit, nil
	})

	_ = r.Run(routeLeads, listPosition{})

	// Output:
	// lead list at top, opening record 41
	// record 41: logging a call, then back
	// lead list restored at offset 12, done
}
