package pocketui

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pocketcrm/pocketui/pkg/pocketui/internal"
	"golang.org/x/text/language"
)

// RegistryConfig is the on-disk description of the navigation catalog plus
// gesture tuning overrides. The host application ships this next to its
// theme file and loads it at startup.
type RegistryConfig struct {
	Initial      string              `toml:"initial"`
	Tuning       tuningConfig        `toml:"tuning"`
	Destinations []destinationConfig `toml:"destinations"`
}

type destinationConfig struct {
	ID        string `toml:"id"`
	Title     string `toml:"title"`
	Subtitle  string `toml:"subtitle"`
	Icon      string `toml:"icon"`
	IconColor string `toml:"icon_color"`
	Route     string `toml:"route"`
}

// tuningConfig mirrors GestureTuning with optional fields: zero values keep
// the defaults. The decision structure is fixed in code; only the constants
// are configurable.
type tuningConfig struct {
	VelocityThreshold float64 `toml:"velocity_threshold"`
	DistanceThreshold float64 `toml:"distance_threshold"`
	TapEpsilon        float64 `toml:"tap_epsilon"`
	SpringStiffness   float64 `toml:"spring_stiffness"`
	SpringDamping     float64 `toml:"spring_damping"`
}

// LoadRegistryConfig reads and validates a TOML registry config.
func LoadRegistryConfig(path string) (*RegistryConfig, error) {
	var rc RegistryConfig
	if _, err := toml.DecodeFile(path, &rc); err != nil {
		return nil, fmt.Errorf("registry config %s: %w", path, err)
	}
	if len(rc.Destinations) == 0 {
		return nil, fmt.Errorf("registry config %s: no destinations", path)
	}
	if rc.Initial == "" {
		rc.Initial = rc.Destinations[0].ID
	}
	return &rc, nil
}

// BuildRegistry resolves the config into an immutable ScreenRegistry.
func (rc *RegistryConfig) BuildRegistry() (*ScreenRegistry, error) {
	destinations := make([]Destination, 0, len(rc.Destinations))
	for _, dc := range rc.Destinations {
		d := Destination{
			ID:       dc.ID,
			Title:    dc.Title,
			Subtitle: dc.Subtitle,
			Icon:     dc.Icon,
			Route:    dc.Route,
		}
		if dc.IconColor != "" {
			color, err := internal.ParseHexColor(dc.IconColor)
			if err != nil {
				return nil, fmt.Errorf("destination %q: %w", dc.ID, err)
			}
			d.IconColor = color
		} else {
			d.IconColor = internal.GetTheme().TextColor
		}
		destinations = append(destinations, d)
	}
	return NewScreenRegistry(destinations)
}

// GestureTuning returns the default tuning with the config's non-zero
// overrides applied.
func (rc *RegistryConfig) GestureTuning() GestureTuning {
	tuning := DefaultGestureTuning()
	if rc.Tuning.VelocityThreshold > 0 {
		tuning.VelocityThreshold = float32(rc.Tuning.VelocityThreshold)
	}
	if rc.Tuning.DistanceThreshold > 0 {
		tuning.DistanceThreshold = float32(rc.Tuning.DistanceThreshold)
	}
	if rc.Tuning.TapEpsilon > 0 {
		tuning.TapEpsilon = float32(rc.Tuning.TapEpsilon)
	}
	if rc.Tuning.SpringStiffness > 0 {
		tuning.SpringStiffness = float32(rc.Tuning.SpringStiffness)
	}
	if rc.Tuning.SpringDamping > 0 {
		tuning.SpringDamping = float32(rc.Tuning.SpringDamping)
	}
	return tuning
}

// NewMessageBundle creates an i18n bundle that loads TOML message files.
func NewMessageBundle(defaultLanguage language.Tag, messageFiles ...string) (*i18n.Bundle, error) {
	bundle := i18n.NewBundle(defaultLanguage)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	for _, path := range messageFiles {
		if _, err := bundle.LoadMessageFile(path); err != nil {
			return nil, fmt.Errorf("message file %s: %w", path, err)
		}
	}
	return bundle, nil
}

// LocalizeRegistry returns a copy of the registry with destination titles
// and subtitles resolved through the localizer. Strings with no matching
// message id pass through unchanged, so hosts can mix literal strings and
// message ids freely.
func LocalizeRegistry(registry *ScreenRegistry, localizer *i18n.Localizer) (*ScreenRegistry, error) {
	destinations := registry.All()
	for i := range destinations {
		destinations[i].Title = localizeOrKeep(localizer, destinations[i].Title)
		destinations[i].Subtitle = localizeOrKeep(localizer, destinations[i].Subtitle)
	}
	return NewScreenRegistry(destinations)
}

func localizeOrKeep(localizer *i18n.Localizer, messageID string) string {
	if messageID == "" {
		return ""
	}
	translated, err := localizer.Localize(&i18n.LocalizeConfig{MessageID: messageID})
	if err != nil {
		return messageID
	}
	return translated
}
