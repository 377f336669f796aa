// Package palette holds the fixed category-to-color mappings used by every
// composer. Colors are partitioned into disjoint namespaces (investments,
// agents, ui button states, kingdoms, terrain, controller glyphs) plus the
// ambient theme shared across all asset families.
package palette

import (
	"fmt"
	"image/color"
)

// Theme is the ambient color set shared by all composers.
type Theme struct {
	Primary    color.NRGBA // deep purple
	Secondary  color.NRGBA // bone white
	Accent     color.NRGBA // gold
	Background color.NRGBA // near black
	Text       color.NRGBA // off-white
}

// Namespace names accepted by Registry.ColorOf.
const (
	NSInvestments = "investments"
	NSAgents      = "agents"
	NSUI          = "ui"
	NSKingdoms    = "kingdoms"
	NSTerrain     = "terrain"
	NSController  = "controller"
)

// UnknownCategoryError reports a category key absent from a namespace.
// An unknown key is a configuration error, never a silent fallback.
type UnknownCategoryError struct {
	Namespace string
	Key       string
}

func (e *UnknownCategoryError) Error() string {
	return fmt.Sprintf("unknown category %q in namespace %q", e.Key, e.Namespace)
}

// Registry is the read-only palette configuration. Construct it once with
// Default and pass it into the composers and the catalog driver; it is
// never mutated after construction.
type Registry struct {
	theme      Theme
	namespaces map[string]map[string]color.NRGBA
}

// Default builds the registry with the project palette.
func Default() *Registry {
	theme := Theme{
		Primary:    color.NRGBA{45, 27, 78, 255},
		Secondary:  color.NRGBA{232, 224, 213, 255},
		Accent:     color.NRGBA{201, 162, 39, 255},
		Background: color.NRGBA{10, 10, 15, 255},
		Text:       color.NRGBA{212, 208, 200, 255},
	}
	return &Registry{
		theme: theme,
		namespaces: map[string]map[string]color.NRGBA{
			NSInvestments: {
				"property":  {139, 90, 43, 255},   // brown - earth/land
				"trade":     {65, 105, 225, 255},  // royal blue - commerce
				"financial": {201, 162, 39, 255},  // gold - money
				"magical":   {148, 0, 211, 255},   // purple - arcane
				"political": {178, 34, 34, 255},   // dark red - power
				"dark":      {20, 20, 25, 255},    // near black - forbidden
			},
			NSAgents: {
				"individual": {169, 169, 169, 255}, // gray - mortal
				"family":     {218, 165, 32, 255},  // goldenrod - dynasty
				"cult":       {75, 0, 130, 255},    // indigo - devotion
				"bound":      {0, 100, 0, 255},     // dark green - undeath
			},
			NSUI: {
				"normal":  theme.Primary,
				"hover":   {65, 47, 98, 255}, // lighter purple
				"pressed": {25, 17, 58, 255}, // darker purple
			},
			NSKingdoms: {
				"valdris":   {178, 34, 34, 255},
				"meridia":   {65, 105, 225, 255},
				"thornwood": {34, 85, 34, 255},
				"ashmark":   {128, 128, 128, 255},
				"sunhold":   {218, 165, 32, 255},
				"neutral":   {169, 169, 169, 255},
			},
			NSTerrain: {
				"coastal":  {100, 149, 237, 255},
				"inland":   {107, 142, 35, 255},
				"mountain": {119, 136, 153, 255},
				"forest":   {34, 85, 34, 255},
			},
			NSController: {
				"a":       {106, 175, 80, 255},
				"b":       {215, 85, 65, 255},
				"x":       {85, 160, 210, 255},
				"y":       {245, 185, 55, 255},
				"lb":      theme.Secondary,
				"rb":      theme.Secondary,
				"lt":      theme.Secondary,
				"rt":      theme.Secondary,
				"dpad":    theme.Secondary,
				"start":   theme.Secondary,
				"back":    theme.Secondary,
				"stick_l": theme.Secondary,
				"stick_r": theme.Secondary,
			},
		},
	}
}

// Theme returns the ambient theme colors.
func (r *Registry) Theme() Theme { return r.theme }

// ColorOf resolves a category key inside a namespace.
func (r *Registry) ColorOf(namespace, key string) (color.NRGBA, error) {
	ns, ok := r.namespaces[namespace]
	if !ok {
		return color.NRGBA{}, &UnknownCategoryError{Namespace: namespace, Key: key}
	}
	c, ok := ns[key]
	if !ok {
		return color.NRGBA{}, &UnknownCategoryError{Namespace: namespace, Key: key}
	}
	return c, nil
}

// Keys returns the category keys of a namespace, nil if the namespace is
// unknown. Order is unspecified.
func (r *Registry) Keys(namespace string) []string {
	ns, ok := r.namespaces[namespace]
	if !ok {
		return nil
	}
	keys := make([]string, 0, len(ns))
	for k := range ns {
		keys = append(keys, k)
	}
	return keys
}

// Shade offsets each RGB channel of c and clamps the result to [0,255].
// Alpha is preserved.
func Shade(c color.NRGBA, dr, dg, db int) color.NRGBA {
	return color.NRGBA{
		R: clampChannel(int(c.R) + dr),
		G: clampChannel(int(c.G) + dg),
		B: clampChannel(int(c.B) + db),
		A: c.A,
	}
}

func clampChannel(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
