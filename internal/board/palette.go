package board

import "github.com/anshpatel080/kanban/internal/model"

// Accent is the (primary, light, text) color set given to a column for
// display. New columns get one chosen at random from Palette.
type Accent struct {
	Color      string
	LightColor string
	TextColor  string
}

// Palette is the fixed set of accents available to new columns.
var Palette = []Accent{
	{Color: "#5B9BD5", LightColor: "#DCEAF7", TextColor: "#1A365D"}, // blue
	{Color: "#6BCB77", LightColor: "#DFF5E2", TextColor: "#1C4532"}, // green
	{Color: "#FFD93D", LightColor: "#FFF7D6", TextColor: "#5F4B00"}, // yellow
	{Color: "#FF6B6B", LightColor: "#FFE0E0", TextColor: "#63171B"}, // red
	{Color: "#FFA94D", LightColor: "#FFEBD6", TextColor: "#652B19"}, // orange
	{Color: "#CC5DE8", LightColor: "#F3DFF9", TextColor: "#44337A"}, // magenta
	{Color: "#38B2AC", LightColor: "#D9F1F0", TextColor: "#234E52"}, // teal
	{Color: "#868E96", LightColor: "#E9ECEF", TextColor: "#212529"}, // gray
}

// AccentFor returns the palette accent matching a column's primary color,
// or false when the color is not from the palette.
func AccentFor(color string) (Accent, bool) {
	for _, a := range Palette {
		if a.Color == color {
			return a, true
		}
	}
	return Accent{}, false
}

func (a Accent) apply(c *model.Column) {
	c.Color = a.Color
	c.LightColor = a.LightColor
	c.TextColor = a.TextColor
}
