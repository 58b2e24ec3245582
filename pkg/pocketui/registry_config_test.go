package pocketui

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

const registryTOML = `
initial = "tasks"

[tuning]
velocity_threshold = 0.45
distance_threshold = 64

[[destinations]]
id = "leads"
title = "Leads"
icon = "icons/leads.svg"
icon_color = "#FF8800"
route = "leads"

[[destinations]]
id = "tasks"
title = "Tasks"
subtitle = "Due today"
route = "tasks"

[[destinations]]
id = "contacts"
title = "Contacts"
route = "contacts"
`

func TestLoadRegistryConfig(t *testing.T) {
	path := writeTempFile(t, "registry.toml", registryTOML)

	rc, err := LoadRegistryConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if rc.Initial != "tasks" {
		t.Fatalf("initial = %q, want tasks", rc.Initial)
	}
	if len(rc.Destinations) != 3 {
		t.Fatalf("got %d destinations, want 3", len(rc.Destinations))
	}
	if rc.Destinations[1].Subtitle != "Due today" {
		t.Fatalf("subtitle = %q", rc.Destinations[1].Subtitle)
	}
}

func TestLoadRegistryConfigDefaultsInitialToFirst(t *testing.T) {
	path := writeTempFile(t, "registry.toml", `
[[destinations]]
id = "leads"
title = "Leads"
route = "leads"
`)

	rc, err := LoadRegistryConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if rc.Initial != "leads" {
		t.Fatalf("initial = %q, want leads", rc.Initial)
	}
}

func TestLoadRegistryConfigRejectsEmpty(t *testing.T) {
	path := writeTempFile(t, "registry.toml", `initial = "leads"`)

	if _, err := LoadRegistryConfig(path); err == nil {
		t.Fatal("expected error for config with no destinations")
	}
}

func TestBuildRegistryResolvesColors(t *testing.T) {
	path := writeTempFile(t, "registry.toml", registryTOML)

	rc, err := LoadRegistryConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	registry, err := rc.BuildRegistry()
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	leads, ok := registry.Lookup("leads")
	if !ok {
		t.Fatal("leads missing from registry")
	}
	if leads.IconColor.R != 0xFF || leads.IconColor.G != 0x88 || leads.IconColor.B != 0x00 {
		t.Fatalf("icon color = %+v, want #FF8800", leads.IconColor)
	}
	if leads.Icon != "icons/leads.svg" {
		t.Fatalf("icon = %q", leads.Icon)
	}
}

func TestBuildRegistryRejectsBadColor(t *testing.T) {
	path := writeTempFile(t, "registry.toml", `
[[destinations]]
id = "leads"
title = "Leads"
icon_color = "not-a-color"
route = "leads"
`)

	rc, err := LoadRegistryConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if _, err := rc.BuildRegistry(); err == nil {
		t.Fatal("expected error for malformed icon color")
	}
}

func TestGestureTuningOverrides(t *testing.T) {
	path := writeTempFile(t, "registry.toml", registryTOML)

	rc, err := LoadRegistryConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	tuning := rc.GestureTuning()
	if tuning.VelocityThreshold != 0.45 {
		t.Fatalf("velocity threshold = %v, want 0.45", tuning.VelocityThreshold)
	}
	if tuning.DistanceThreshold != 64 {
		t.Fatalf("distance threshold = %v, want 64", tuning.DistanceThreshold)
	}

	// Fields absent from the file keep the defaults.
	defaults := DefaultGestureTuning()
	if tuning.TapEpsilon != defaults.TapEpsilon {
		t.Fatalf("tap epsilon = %v, want default %v", tuning.TapEpsilon, defaults.TapEpsilon)
	}
	if tuning.SpringStiffness != defaults.SpringStiffness {
		t.Fatalf("spring stiffness = %v, want default %v", tuning.SpringStiffness, defaults.SpringStiffness)
	}
}

func TestLocalizeRegistryTranslatesMessageIDs(t *testing.T) {
	messages := writeTempFile(t, "active.es.toml", `
[nav_leads_title]
other = "Clientes potenciales"
`)

	bundle, err := NewMessageBundle(language.English, messages)
	if err != nil {
		t.Fatalf("bundle: %v", err)
	}
	localizer := i18n.NewLocalizer(bundle, "es")

	registry, err := NewScreenRegistry([]Destination{
		{ID: "leads", Title: "nav_leads_title", Route: "leads"},
		{ID: "tasks", Title: "Tasks", Route: "tasks"},
	})
	if err != nil {
		t.Fatalf("registry: %v", err)
	}

	localized, err := LocalizeRegistry(registry, localizer)
	if err != nil {
		t.Fatalf("localize: %v", err)
	}

	leads, _ := localized.Lookup("leads")
	if leads.Title != "Clientes potenciales" {
		t.Fatalf("title = %q, want translated", leads.Title)
	}

	// Literal strings with no matching message id pass through unchanged.
	tasks, _ := localized.Lookup("tasks")
	if tasks.Title != "Tasks" {
		t.Fatalf("title = %q, want literal passthrough", tasks.Title)
	}

	// The source registry is untouched.
	original, _ := registry.Lookup("leads")
	if original.Title != "nav_leads_title" {
		t.Fatalf("source registry mutated: %q", original.Title)
	}
}
