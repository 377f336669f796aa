// Command server runs the asset preview server: every catalog asset is
// rendered on demand and returned as PNG, and the manifest is served as
// YAML. Nothing is written to disk.
package main

import (
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/lichworks/assetforge/internal/api"
	"github.com/lichworks/assetforge/internal/palette"
)

func main() {
	r := gin.Default()
	api.RegisterRoutes(r, api.NewHandler(palette.Default()))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Println("starting preview server on http://localhost:" + port)
	if err := r.Run(":" + port); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
