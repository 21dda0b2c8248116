package domain

// Icon is the symbolic icon name attached to a category
type Icon string

const (
	IconSmartphone Icon = "Smartphone"
	IconShirt      Icon = "Shirt"
	IconHome       Icon = "Home"
	IconBook       Icon = "Book"
	IconDumbbell   Icon = "Dumbbell"
	IconSparkles   Icon = "Sparkles"

	// IconTag is the default for unknown symbolic names
	IconTag Icon = "Tag"
)

var iconGlyphs = map[Icon]string{
	IconSmartphone: "📱",
	IconShirt:      "👕",
	IconHome:       "🏠",
	IconBook:       "📚",
	IconDumbbell:   "🏋️",
	IconSparkles:   "✨",
	IconTag:        "🏷️",
}

// ResolveIcon maps a symbolic icon name to a known icon, defaulting to
// IconTag for names outside the enumerated set
func ResolveIcon(name string) Icon {
	icon := Icon(name)
	if _, ok := iconGlyphs[icon]; ok {
		return icon
	}
	return IconTag
}

// Glyph returns the display glyph for the icon
func (i Icon) Glyph() string {
	if g, ok := iconGlyphs[i]; ok {
		return g
	}
	return iconGlyphs[IconTag]
}
