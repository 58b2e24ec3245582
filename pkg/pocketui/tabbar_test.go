package pocketui

import "testing"

func testTabBar(t *testing.T, initialID string) (*tabBarController, *NavigationState) {
	t.Helper()
	nav, err := NewNavigationState(testRegistry(t), initialID)
	if err != nil {
		t.Fatalf("navigation state: %v", err)
	}
	return &tabBarController{
		nav:      nav,
		settings: TabBarSettings{MoreLabel: "More"},
	}, nav
}

func TestTabBarSlotsAreFirstRowPlusOverflow(t *testing.T) {
	tc, _ := testTabBar(t, "leads")

	slots := tc.slots()
	if len(slots) != 5 {
		t.Fatalf("got %d slots, want 4 tabs + overflow", len(slots))
	}
	want := []string{"leads", "tasks", "contacts", "companies"}
	for i, id := range want {
		if slots[i].ID != id {
			t.Fatalf("slot %d = %q, want %q", i, slots[i].ID, id)
		}
	}
	if slots[4].ID != moreSlotID || slots[4].Title != "More" {
		t.Fatalf("overflow slot = %+v", slots[4])
	}
}

func TestTabBarOverflowRelabelsForOutOfWindowActive(t *testing.T) {
	// A host can start on a destination the first row does not show;
	// nothing promotes it until the user selects something.
	tc, nav := testTabBar(t, "settings")

	if tc.activeInFirstRow() {
		t.Fatal("settings should not be in the first row yet")
	}

	slots := tc.slots()
	overflow := slots[len(slots)-1]
	if overflow.ID != moreSlotID {
		t.Fatalf("overflow id = %q", overflow.ID)
	}
	if overflow.Title != "Settings" {
		t.Fatalf("overflow title = %q, want the active destination's title", overflow.Title)
	}

	// Selecting the active destination promotes it into the first row and
	// the overflow slot reverts to the generic affordance.
	if err := nav.SelectScreen("settings"); err != nil {
		t.Fatalf("select: %v", err)
	}
	if !tc.activeInFirstRow() {
		t.Fatal("settings should be in the first row after promotion")
	}
	overflow = tc.slots()[4]
	if overflow.Title != "More" {
		t.Fatalf("overflow title = %q, want More after promotion", overflow.Title)
	}
}

func TestTabBarOverflowActivationAsksForSheet(t *testing.T) {
	tc, nav := testTabBar(t, "settings")

	slots := tc.slots()
	tc.activate(slots[len(slots)-1])

	if tc.result.Action != NavActionMore {
		t.Fatalf("action = %v, want NavActionMore", tc.result.Action)
	}
	// The overflow slot never selects, even while relabeled, so the order
	// is untouched.
	if nav.ActiveID() != "settings" || nav.Order()[0] != "leads" {
		t.Fatalf("overflow activation mutated state: active %q order %v", nav.ActiveID(), nav.Order())
	}
}

func TestTabBarTabActivationSelects(t *testing.T) {
	tc, nav := testTabBar(t, "leads")

	tc.activate(tc.slots()[1])

	if tc.result.Action != NavActionSelected || tc.result.Destination.ID != "tasks" {
		t.Fatalf("result = %+v", tc.result)
	}
	if nav.ActiveID() != "tasks" {
		t.Fatalf("active = %q, want tasks", nav.ActiveID())
	}
}

func TestTabBarNoOverflowForSmallCatalog(t *testing.T) {
	registry, err := NewScreenRegistry([]Destination{
		{ID: "leads", Title: "Leads", Route: "leads"},
		{ID: "tasks", Title: "Tasks", Route: "tasks"},
	})
	if err != nil {
		t.Fatalf("registry: %v", err)
	}
	nav, err := NewNavigationState(registry, "leads")
	if err != nil {
		t.Fatalf("navigation state: %v", err)
	}
	tc := &tabBarController{nav: nav, settings: TabBarSettings{MoreLabel: "More"}}

	slots := tc.slots()
	if len(slots) != 2 {
		t.Fatalf("got %d slots, want 2 with no overflow", len(slots))
	}
	for _, slot := range slots {
		if slot.ID == moreSlotID {
			t.Fatal("overflow slot present for a one-row catalog")
		}
	}
}
