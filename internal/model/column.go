package model

// Column is a board lane that items can belong to (e.g., "Planned",
// "In Progress", "Done").
type Column struct {
	// ID is the opaque stable identifier for this column. It is the only
	// key used to resolve drop targets; Name is purely a display label.
	ID string `json:"id"`

	// Name is the human-facing label shown in the lane header.
	Name string `json:"name"`

	// Color is the primary accent used for the lane header.
	Color string `json:"color"`

	// LightColor is the muted shade of Color used for lane backgrounds.
	LightColor string `json:"light_color,omitempty"`

	// TextColor is the foreground color paired with Color.
	TextColor string `json:"text_color,omitempty"`
}
