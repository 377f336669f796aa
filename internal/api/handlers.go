package api

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"net/http"
	"strconv"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/gin-gonic/gin"

	"github.com/lichworks/assetforge/internal/catalog"
	"github.com/lichworks/assetforge/internal/compose"
	"github.com/lichworks/assetforge/internal/palette"
)

// Handler renders catalog assets on demand for the preview server.
// Nothing touches disk; every request composes a fresh image.
type Handler struct {
	pal *palette.Registry
	cp  *compose.Composer
}

// NewHandler builds a Handler over the given palette.
func NewHandler(pal *palette.Registry) *Handler {
	return &Handler{pal: pal, cp: compose.New(pal)}
}

var errBadRequest = errors.New("bad request")

// health
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// manifest returns the catalog manifest as YAML.
func (h *Handler) manifest(c *gin.Context) {
	data, err := catalog.BuildManifest(catalog.Entries()).Encode()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "application/x-yaml", data)
}

// asset renders one catalog asset as PNG. Square assets take a "size"
// query param, the panel and map background take "w"/"h".
func (h *Handler) asset(c *gin.Context) {
	img, err := h.render(c, c.Param("family"), c.Param("name"))
	var unknown *palette.UnknownCategoryError
	switch {
	case errors.As(err, &unknown):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	case errors.Is(err, errBadRequest):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	buf := new(bytes.Buffer)
	if err := imaging.Encode(buf, img, imaging.PNG); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/png", buf.Bytes())
}

func (h *Handler) render(c *gin.Context, family, name string) (image.Image, error) {
	switch family {
	case catalog.FamilyInvestments:
		size, err := queryDim(c, "size", 64)
		if err != nil {
			return nil, err
		}
		col, err := h.pal.ColorOf(palette.NSInvestments, name)
		if err != nil {
			return nil, err
		}
		return h.cp.Investment(name, col, size)
	case catalog.FamilyAgents:
		size, err := queryDim(c, "size", 64)
		if err != nil {
			return nil, err
		}
		col, err := h.pal.ColorOf(palette.NSAgents, name)
		if err != nil {
			return nil, err
		}
		return h.cp.Agent(name, col, size)
	case catalog.FamilyGlyphs:
		size, err := queryDim(c, "size", 64)
		if err != nil {
			return nil, err
		}
		key := strings.TrimPrefix(name, "xbox_")
		col, err := h.pal.ColorOf(palette.NSController, key)
		if err != nil {
			return nil, err
		}
		return h.cp.Glyph(key, col, size)
	case catalog.FamilyUI:
		return h.renderUI(c, name)
	case catalog.FamilyWorld:
		return h.renderWorld(c, name)
	}
	return nil, &palette.UnknownCategoryError{Namespace: family, Key: name}
}

func (h *Handler) renderUI(c *gin.Context, name string) (image.Image, error) {
	switch {
	case name == "panel":
		w, h2, err := queryDims(c, 256, 128)
		if err != nil {
			return nil, err
		}
		return h.cp.Panel(w, h2)
	case strings.HasPrefix(name, "button_"):
		w, h2, err := queryDims(c, 128, 48)
		if err != nil {
			return nil, err
		}
		return h.cp.Button(strings.TrimPrefix(name, "button_"), w, h2)
	case name == "exposure_meter_bg":
		w, h2, err := queryDims(c, 200, 24)
		if err != nil {
			return nil, err
		}
		return h.cp.Meter(w, h2)
	case name == "logo":
		size, err := queryDim(c, "size", 256)
		if err != nil {
			return nil, err
		}
		return h.cp.Logo(size)
	case strings.HasPrefix(name, "panel_"):
		// manifest-listed form, e.g. panel_256x128
		var w, h2 int
		if n, err := fmt.Sscanf(name, "panel_%dx%d", &w, &h2); err == nil && n == 2 && dimOK(w) && dimOK(h2) {
			return h.cp.Panel(w, h2)
		}
	case strings.HasPrefix(name, "logo_"):
		// manifest-listed form, e.g. logo_128
		var size int
		if n, err := fmt.Sscanf(name, "logo_%d", &size); err == nil && n == 1 && dimOK(size) {
			return h.cp.Logo(size)
		}
	}
	return nil, &palette.UnknownCategoryError{Namespace: catalog.FamilyUI, Key: name}
}

func (h *Handler) renderWorld(c *gin.Context, name string) (image.Image, error) {
	switch {
	case name == "map_background":
		w, h2, err := queryDims(c, 512, 512)
		if err != nil {
			return nil, err
		}
		return h.cp.MapBackground(w, h2)
	case strings.HasPrefix(name, "kingdom_"):
		size, err := queryDim(c, "size", 32)
		if err != nil {
			return nil, err
		}
		key := strings.TrimPrefix(name, "kingdom_")
		col, err := h.pal.ColorOf(palette.NSKingdoms, key)
		if err != nil {
			return nil, err
		}
		return h.cp.KingdomMarker(col, size)
	case strings.HasPrefix(name, "terrain_"):
		size, err := queryDim(c, "size", 64)
		if err != nil {
			return nil, err
		}
		key := strings.TrimPrefix(name, "terrain_")
		col, err := h.pal.ColorOf(palette.NSTerrain, key)
		if err != nil {
			return nil, err
		}
		return h.cp.Terrain(key, col, size)
	}
	return nil, &palette.UnknownCategoryError{Namespace: catalog.FamilyWorld, Key: name}
}

func dimOK(v int) bool { return v >= 1 && v <= 4096 }

// queryDim parses an integer dimension query param with a default.
func queryDim(c *gin.Context, param string, def int) (int, error) {
	s := c.Query(param)
	if s == "" {
		return def, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil || !dimOK(v) {
		return 0, fmt.Errorf("%w: %s must be an integer in [1,4096]", errBadRequest, param)
	}
	return v, nil
}

func queryDims(c *gin.Context, defW, defH int) (int, int, error) {
	w, err := queryDim(c, "w", defW)
	if err != nil {
		return 0, 0, err
	}
	h, err := queryDim(c, "h", defH)
	if err != nil {
		return 0, 0, err
	}
	return w, h, nil
}
