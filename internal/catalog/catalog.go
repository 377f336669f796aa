// Package catalog defines the fixed asset catalog and drives generation:
// it enumerates every (category, size) pair, invokes the composers, writes
// the files and builds the manifest. The catalog is a compile-time
// contract; its keys and sizes must stay stable for the game to keep
// finding its textures.
package catalog

import (
	"fmt"
	"image"
	"path"

	"github.com/lichworks/assetforge/internal/compose"
	"github.com/lichworks/assetforge/internal/palette"
)

// Families, in manifest order.
const (
	FamilyInvestments = "investments"
	FamilyAgents      = "agents"
	FamilyUI          = "ui"
	FamilyWorld       = "world"
	FamilyGlyphs      = "glyphs"
)

// Asset kinds, used for render dispatch.
const (
	kindInvestment = "investment"
	kindAgent      = "agent"
	kindPanel      = "panel"
	kindButton     = "button"
	kindMeter      = "meter"
	kindLogo       = "logo"
	kindMap        = "map"
	kindKingdom    = "kingdom"
	kindTerrain    = "terrain"
	kindGlyph      = "glyph"
)

// Entry is one output image of the catalog.
type Entry struct {
	Family string // manifest grouping
	Kind   string // render dispatch
	Key    string // category key within the kind's namespace
	Name   string // logical asset name listed in the manifest
	Path   string // output path relative to the output directory
	W, H   int
}

var (
	investmentKeys = []string{"property", "trade", "financial", "magical", "political", "dark"}
	agentKeys      = []string{"individual", "family", "cult", "bound"}
	buttonStates   = []string{"normal", "hover", "pressed"}
	kingdomKeys    = []string{"valdris", "meridia", "thornwood", "ashmark", "sunhold", "neutral"}
	terrainKeys    = []string{"coastal", "inland", "mountain", "forest"}
	glyphKeys      = []string{"a", "b", "x", "y", "lb", "rb", "lt", "rt", "dpad", "start", "back", "stick_l", "stick_r"}

	iconSizes    = []int{32, 64, 128}
	panelSizes   = [][2]int{{256, 128}, {256, 256}, {512, 256}}
	logoSizes    = []int{128, 256}
	kingdomSizes = []int{24, 32, 48}
	glyphSizes   = []int{32, 48, 64}
)

// Entries returns the full catalog in generation order.
func Entries() []Entry {
	var out []Entry
	for _, key := range investmentKeys {
		for _, s := range iconSizes {
			out = append(out, Entry{
				Family: FamilyInvestments, Kind: kindInvestment, Key: key, Name: key,
				Path: path.Join("textures", "icons", "investments", fmt.Sprintf("%s_%d.png", key, s)),
				W:    s, H: s,
			})
		}
	}
	for _, key := range agentKeys {
		for _, s := range iconSizes {
			out = append(out, Entry{
				Family: FamilyAgents, Kind: kindAgent, Key: key, Name: key,
				Path: path.Join("textures", "icons", "agents", fmt.Sprintf("%s_%d.png", key, s)),
				W:    s, H: s,
			})
		}
	}
	for _, ps := range panelSizes {
		name := fmt.Sprintf("panel_%dx%d", ps[0], ps[1])
		out = append(out, Entry{
			Family: FamilyUI, Kind: kindPanel, Key: name, Name: name,
			Path: path.Join("textures", "ui", name+".png"),
			W:    ps[0], H: ps[1],
		})
	}
	for _, state := range buttonStates {
		out = append(out, Entry{
			Family: FamilyUI, Kind: kindButton, Key: state, Name: "button_" + state,
			Path: path.Join("textures", "ui", "button_"+state+".png"),
			W:    128, H: 48,
		})
	}
	out = append(out, Entry{
		Family: FamilyUI, Kind: kindMeter, Key: "exposure_meter_bg", Name: "exposure_meter_bg",
		Path: path.Join("textures", "ui", "exposure_meter_bg.png"),
		W:    200, H: 24,
	})
	for _, s := range logoSizes {
		name := fmt.Sprintf("logo_%d", s)
		out = append(out, Entry{
			Family: FamilyUI, Kind: kindLogo, Key: name, Name: name,
			Path: path.Join("textures", "ui", name+".png"),
			W:    s, H: s,
		})
	}
	out = append(out, Entry{
		Family: FamilyWorld, Kind: kindMap, Key: "map_background", Name: "map_background",
		Path: path.Join("textures", "world", "map_background.png"),
		W:    512, H: 512,
	})
	for _, key := range kingdomKeys {
		for _, s := range kingdomSizes {
			out = append(out, Entry{
				Family: FamilyWorld, Kind: kindKingdom, Key: key, Name: "kingdom_" + key,
				Path: path.Join("textures", "world", fmt.Sprintf("kingdom_%s_%d.png", key, s)),
				W:    s, H: s,
			})
		}
	}
	for _, key := range terrainKeys {
		out = append(out, Entry{
			Family: FamilyWorld, Kind: kindTerrain, Key: key, Name: "terrain_" + key,
			Path: path.Join("textures", "world", "terrain_"+key+".png"),
			W:    64, H: 64,
		})
	}
	for _, key := range glyphKeys {
		for _, s := range glyphSizes {
			out = append(out, Entry{
				Family: FamilyGlyphs, Kind: kindGlyph, Key: key, Name: "xbox_" + key,
				Path: path.Join("textures", "glyphs", fmt.Sprintf("xbox_%s_%d.png", key, s)),
				W:    s, H: s,
			})
		}
	}
	return out
}

// Filter keeps the entries whose family is in families. An empty filter
// keeps everything.
func Filter(entries []Entry, families []string) []Entry {
	if len(families) == 0 {
		return entries
	}
	want := make(map[string]bool, len(families))
	for _, f := range families {
		want[f] = true
	}
	var out []Entry
	for _, e := range entries {
		if want[e.Family] {
			out = append(out, e)
		}
	}
	return out
}

// Renderer maps catalog entries to pixel images.
type Renderer struct {
	pal *palette.Registry
	cp  *compose.Composer
}

// NewRenderer builds a Renderer over the given palette.
func NewRenderer(pal *palette.Registry) *Renderer {
	return &Renderer{pal: pal, cp: compose.New(pal)}
}

type renderFunc func(r *Renderer, e Entry) (image.Image, error)

var renderers = map[string]renderFunc{
	kindInvestment: func(r *Renderer, e Entry) (image.Image, error) {
		col, err := r.pal.ColorOf(palette.NSInvestments, e.Key)
		if err != nil {
			return nil, err
		}
		return r.cp.Investment(e.Key, col, e.W)
	},
	kindAgent: func(r *Renderer, e Entry) (image.Image, error) {
		col, err := r.pal.ColorOf(palette.NSAgents, e.Key)
		if err != nil {
			return nil, err
		}
		return r.cp.Agent(e.Key, col, e.W)
	},
	kindPanel: func(r *Renderer, e Entry) (image.Image, error) {
		return r.cp.Panel(e.W, e.H)
	},
	kindButton: func(r *Renderer, e Entry) (image.Image, error) {
		return r.cp.Button(e.Key, e.W, e.H)
	},
	kindMeter: func(r *Renderer, e Entry) (image.Image, error) {
		return r.cp.Meter(e.W, e.H)
	},
	kindLogo: func(r *Renderer, e Entry) (image.Image, error) {
		return r.cp.Logo(e.W)
	},
	kindMap: func(r *Renderer, e Entry) (image.Image, error) {
		return r.cp.MapBackground(e.W, e.H)
	},
	kindKingdom: func(r *Renderer, e Entry) (image.Image, error) {
		col, err := r.pal.ColorOf(palette.NSKingdoms, e.Key)
		if err != nil {
			return nil, err
		}
		return r.cp.KingdomMarker(col, e.W)
	},
	kindTerrain: func(r *Renderer, e Entry) (image.Image, error) {
		col, err := r.pal.ColorOf(palette.NSTerrain, e.Key)
		if err != nil {
			return nil, err
		}
		return r.cp.Terrain(e.Key, col, e.W)
	},
	kindGlyph: func(r *Renderer, e Entry) (image.Image, error) {
		col, err := r.pal.ColorOf(palette.NSController, e.Key)
		if err != nil {
			return nil, err
		}
		return r.cp.Glyph(e.Key, col, e.W)
	},
}

// Render produces the image for one catalog entry.
func (r *Renderer) Render(e Entry) (image.Image, error) {
	fn, ok := renderers[e.Kind]
	if !ok {
		return nil, fmt.Errorf("no renderer for kind %q", e.Kind)
	}
	return fn(r, e)
}
