package pocketui

import (
	"errors"
	"testing"
)

func TestWidgetsRejectUninitializedShell(t *testing.T) {
	nav := testNav(t)

	widgets := map[string]func() (*NavResult, error){
		"drawer": func() (*NavResult, error) { return NavigationDrawer(nav, DrawerSettings{}) },
		"tabbar": func() (*NavResult, error) { return TabBar(nav, TabBarSettings{}) },
		"sheet":  func() (*NavResult, error) { return BottomSheet(nav, SheetSettings{}) },
	}

	for name, widget := range widgets {
		result, err := widget()
		if result != nil {
			t.Fatalf("%s returned a result without an initialized shell", name)
		}
		var infra *InfrastructureError
		if !errors.As(err, &infra) {
			t.Fatalf("%s error = %v, want InfrastructureError", name, err)
		}
		if !errors.Is(err, ErrNotInitialized) {
			t.Fatalf("%s error = %v, want ErrNotInitialized cause", name, err)
		}
	}
}

func TestInfrastructureErrorWrapsCause(t *testing.T) {
	cause := errors.New("renderer gone")
	err := NewInfrastructureError("render", cause)

	if !errors.Is(err, cause) {
		t.Fatal("Unwrap lost the cause")
	}
	if err.Error() != "pocketui: render: renderer gone" {
		t.Fatalf("message = %q", err.Error())
	}
}

func TestCancellationHelpers(t *testing.T) {
	if !IsCancelled(ErrCancelled) || IsCancelled(ErrUnknownDestination) {
		t.Fatal("IsCancelled misclassified")
	}
	if !IsUnknownDestination(ErrUnknownDestination) || IsUnknownDestination(ErrCancelled) {
		t.Fatal("IsUnknownDestination misclassified")
	}
}
