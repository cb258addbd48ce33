package stylize

import "strings"

// Style describes one rendering treatment the service can apply. Subject is
// the fragment spliced into the prompt template and Directives are the
// rendering notes appended after the scene.
type Style struct {
	ID         string
	Label      string
	Subject    string
	Directives []string
}

var registry = []Style{
	{
		ID:      "inkwash",
		Label:   "Ink Wash",
		Subject: "a traditional East Asian ink-wash painting",
		Directives: []string{
			"Dilute ink washes in layered shades of grey with sparse accents of muted colour.",
			"Visible brush grain, soft bleeding edges, and generous negative space.",
			"Calm, contemplative mood on textured rice paper.",
		},
	},
	{
		ID:      "watercolor",
		Label:   "Watercolor Storybook",
		Subject: "a hand-painted watercolor storybook illustration",
		Directives: []string{
			"Loose pigment gradients with soft wet-on-wet blooms.",
			"Warm, gentle palette and visible paper texture.",
			"Whimsical children's book atmosphere.",
		},
	},
	{
		ID:      "gouache",
		Label:   "Gouache Matte",
		Subject: "a flat gouache animation background painting",
		Directives: []string{
			"Matte opaque layers with painterly light and simplified shapes.",
			"Nostalgic colour grading reminiscent of classic animated films.",
			"Soft atmospheric depth between foreground and horizon.",
		},
	},
	{
		ID:      "woodblock",
		Label:   "Woodblock Print",
		Subject: "a Japanese ukiyo-e woodblock print",
		Directives: []string{
			"Bold contour lines with flat planes of colour.",
			"Limited palette of indigo, ochre, and faded vermilion.",
			"Subtle wood grain and registration offsets of a hand-pressed print.",
		},
	},
}

// Registry returns the styles the service offers, in display order.
func Registry() []Style {
	out := make([]Style, len(registry))
	copy(out, registry)
	return out
}

// Lookup finds a style by its identifier. Matching is case-insensitive.
func Lookup(id string) (Style, bool) {
	needle := strings.ToLower(strings.TrimSpace(id))
	for _, s := range registry {
		if s.ID == needle {
			return s, true
		}
	}
	return Style{}, false
}
