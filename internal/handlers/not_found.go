package handlers

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
)

// NotFoundHandler serves the front-end for every path without a route.
// Existing files under staticDir are sent as-is; anything else gets
// index.html so client-side routing can take over. Unknown API paths
// stay JSON 404s.
type NotFoundHandler struct {
	staticDir string
}

func NewNotFoundHandler(staticDir string) *NotFoundHandler {
	return &NotFoundHandler{staticDir: staticDir}
}

// NotFound handles requests that matched no route
func (h *NotFoundHandler) NotFound(c *gin.Context) {
	requested := c.Request.URL.Path

	if isAPIPath(requested) || !isReadMethod(c.Request.Method) || h.staticDir == "" {
		h.notFoundJSON(c)
		return
	}

	// Clean against a rooted path so ".." cannot leave staticDir
	rel := strings.TrimPrefix(path.Clean("/"+requested), "/")
	if rel != "" {
		file := filepath.Join(h.staticDir, filepath.FromSlash(rel))
		if isFile(file) {
			c.File(file)
			return
		}
	}

	index := filepath.Join(h.staticDir, "index.html")
	if isFile(index) {
		c.File(index)
		return
	}

	c.JSON(http.StatusNotFound, gin.H{
		"error": "index.html not found",
		"path":  requested,
	})
}

func (h *NotFoundHandler) notFoundJSON(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{
		"error": "Not found",
		"path":  c.Request.URL.Path,
	})
}

func isAPIPath(p string) bool {
	return p == "/api" || strings.HasPrefix(p, "/api/")
}

func isReadMethod(method string) bool {
	return method == http.MethodGet || method == http.MethodHead
}

func isFile(name string) bool {
	info, err := os.Stat(name)
	return err == nil && !info.IsDir()
}
