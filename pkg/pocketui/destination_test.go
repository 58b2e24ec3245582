package pocketui

import "testing"

func TestNewScreenRegistryRejectsEmptyCatalog(t *testing.T) {
	if _, err := NewScreenRegistry(nil); err == nil {
		t.Fatal("expected error for empty catalog")
	}
}

func TestNewScreenRegistryRejectsEmptyID(t *testing.T) {
	_, err := NewScreenRegistry([]Destination{
		{ID: "leads", Title: "Leads"},
		{Title: "Anonymous"},
	})
	if err == nil {
		t.Fatal("expected error for empty id")
	}
}

func TestNewScreenRegistryRejectsDuplicateID(t *testing.T) {
	_, err := NewScreenRegistry([]Destination{
		{ID: "leads", Title: "Leads"},
		{ID: "leads", Title: "Leads again"},
	})
	if err == nil {
		t.Fatal("expected error for duplicate id")
	}
}

func TestRegistryPreservesDeclarationOrder(t *testing.T) {
	registry, err := NewScreenRegistry([]Destination{
		{ID: "contacts", Title: "Contacts"},
		{ID: "leads", Title: "Leads"},
		{ID: "tasks", Title: "Tasks"},
	})
	if err != nil {
		t.Fatalf("registry: %v", err)
	}

	want := []string{"contacts", "leads", "tasks"}
	for i, id := range registry.IDs() {
		if id != want[i] {
			t.Fatalf("IDs()[%d] = %q, want %q", i, id, want[i])
		}
	}

	if registry.Len() != 3 {
		t.Fatalf("Len() = %d", registry.Len())
	}
	if !registry.Contains("leads") || registry.Contains("invoices") {
		t.Fatal("Contains gave wrong answers")
	}

	tasks, ok := registry.Lookup("tasks")
	if !ok || tasks.Title != "Tasks" {
		t.Fatalf("Lookup(tasks) = %+v, %v", tasks, ok)
	}
}

func TestRegistryAllReturnsCopy(t *testing.T) {
	registry, err := NewScreenRegistry([]Destination{
		{ID: "leads", Title: "Leads"},
	})
	if err != nil {
		t.Fatalf("registry: %v", err)
	}

	all := registry.All()
	all[0].Title = "tampered"

	fresh, _ := registry.Lookup("leads")
	if fresh.Title != "Leads" {
		t.Fatal("mutating All() leaked into the registry")
	}
}
