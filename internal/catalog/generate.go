package catalog

import (
	"errors"
	"fmt"
	"log"
	"path/filepath"

	"github.com/disintegration/imaging"

	"github.com/lichworks/assetforge/internal/util"
)

// Generate renders every entry into outDir and writes manifest.yaml.
// A failing entry is logged with enough context to reproduce it and does
// not stop the remaining entries; the aggregate error covers all
// failures. The manifest always describes the full entry set, since the
// catalog itself is fixed.
func Generate(r *Renderer, outDir string, entries []Entry) error {
	var errs []error
	written := 0
	for _, e := range entries {
		img, err := r.Render(e)
		if err != nil {
			errs = append(errs, fmt.Errorf("render %s/%s (%dx%d): %w", e.Family, e.Key, e.W, e.H, err))
			log.Printf("  FAILED %s/%s (%dx%d): %v", e.Family, e.Key, e.W, e.H, err)
			continue
		}
		dst := filepath.Join(outDir, filepath.FromSlash(e.Path))
		if err := util.EnsureDir(filepath.Dir(dst)); err != nil {
			errs = append(errs, fmt.Errorf("write %s: %w", e.Path, err))
			continue
		}
		if err := imaging.Save(img, dst); err != nil {
			errs = append(errs, fmt.Errorf("write %s: %w", e.Path, err))
			log.Printf("  FAILED write %s: %v", e.Path, err)
			continue
		}
		written++
		log.Printf("  wrote %s (%dx%d)", e.Path, e.W, e.H)
	}

	m := BuildManifest(entries)
	if err := m.WriteFile(filepath.Join(outDir, "manifest.yaml")); err != nil {
		errs = append(errs, fmt.Errorf("write manifest: %w", err))
	} else {
		log.Printf("  wrote manifest.yaml")
	}

	log.Printf("generated %d of %d assets", written, len(entries))
	return errors.Join(errs...)
}
