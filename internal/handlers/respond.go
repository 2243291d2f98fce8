package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
)

const jsonContentType = "application/json; charset=utf-8"

// writePayload sends an already encoded JSON document
func writePayload(c *gin.Context, payload json.RawMessage) {
	c.Data(http.StatusOK, jsonContentType, payload)
}

// writeFallback reports a degraded response. Upstream failures keep the 200
// status; clients look at the fallback flag.
func writeFallback(c *gin.Context, err error, data interface{}) {
	c.JSON(http.StatusOK, gin.H{
		"error":    err.Error(),
		"fallback": true,
		"data":     data,
	})
}
