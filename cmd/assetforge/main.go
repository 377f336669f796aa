// Command assetforge generates the full procedural asset catalog:
// investment and agent icons, UI chrome, world map elements and
// controller glyphs, plus the manifest describing the output set.
//
//	assetforge -out assets
//	assetforge -out assets -only world,glyphs
package main

import (
	"flag"
	"log"
	"strings"

	"github.com/lichworks/assetforge/internal/catalog"
	"github.com/lichworks/assetforge/internal/palette"
)

func main() {
	out := flag.String("out", "assets", "output directory")
	only := flag.String("only", "", "comma-separated families to generate (investments,agents,ui,world,glyphs)")
	flag.Parse()

	var families []string
	if *only != "" {
		for _, f := range strings.Split(*only, ",") {
			if f = strings.TrimSpace(f); f != "" {
				families = append(families, f)
			}
		}
	}

	entries := catalog.Filter(catalog.Entries(), families)
	if len(entries) == 0 {
		log.Fatalf("no catalog entries match families %q", *only)
	}

	log.Printf("generating %d assets into %s", len(entries), *out)
	ren := catalog.NewRenderer(palette.Default())
	if err := catalog.Generate(ren, *out, entries); err != nil {
		log.Fatalf("generation finished with errors: %v", err)
	}
	log.Printf("asset generation complete")
}
