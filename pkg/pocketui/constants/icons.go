package constants

// Icon glyphs for use with icon fonts (Material Design Icons).
// These Unicode code points render as icons when used with the theme's icon font.
// Used as fallbacks when a destination has no SVG icon configured.
const (
	Leads     = "\U000F0020" // Account/person icon
	Tasks     = "\U000F05E0" // Checkbox list icon
	Contacts  = "\U000F06CB" // Contacts book icon
	Companies = "\U000F0E8B" // Office building icon
	Assistant = "\U000F1C4D" // Chat/sparkle icon
	Calendar  = "\U000F00ED" // Calendar icon
	Settings  = "\U000F0493" // Gear icon

	More   = "\U000F01D9" // Horizontal dots icon for the overflow tab slot
	Handle = "\U000F0140" // Chevron-up icon for the drawer handle hint
)
