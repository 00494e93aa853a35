package dashboard

import (
	"io/fs"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Frenkieli/car-dispatch/internal/board"
	"github.com/Frenkieli/car-dispatch/internal/ingest"
)

// registerRoutes sets up all board routes on the Gin router.
func registerRoutes(router *gin.Engine, store *board.Store, alerter *board.Alerter) {
	// Embedded static assets (served from assets/ subdir of the embed.FS).
	staticFS, _ := fs.Sub(assetsFS, "assets")
	router.StaticFS("/static", http.FS(staticFS))

	router.GET("/", handleIndex())

	api := router.Group("/api")
	api.GET("/records", handleRecords(store))
	api.POST("/upload", handleUpload(store))
	api.POST("/records/:id/confirm", handleConfirm(store))
	api.POST("/sound/enable", handleEnableSound(alerter))
	api.GET("/events", handleSSE(store, alerter))
}

func handleIndex() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, "board.html", gin.H{})
	}
}

func handleRecords(store *board.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		now := time.Now()
		c.JSON(http.StatusOK, gin.H{
			"records":     buildRows(store.Records(), now),
			"lastUpdated": store.LastUpdated(),
		})
	}
}

// handleUpload ingests a spreadsheet and replaces the board. A request
// without a file is a no-op, not an error.
func handleUpload(store *board.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		fh, err := c.FormFile("file")
		if err != nil {
			c.Status(http.StatusNoContent)
			return
		}

		f, err := fh.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable upload"})
			return
		}
		defer f.Close()

		rows, err := ingest.ReadFile(fh.Filename, f)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		n, err := store.Load(rows)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"loaded": n})
	}
}

func handleConfirm(store *board.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		n, err := store.Confirm(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"updated": n})
	}
}

// handleEnableSound flips the one-way sound gate. The browser calls this from
// the user gesture that also unlocks audio playback.
func handleEnableSound(alerter *board.Alerter) gin.HandlerFunc {
	return func(c *gin.Context) {
		alerter.EnableSound()
		c.Status(http.StatusNoContent)
	}
}
