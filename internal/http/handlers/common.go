package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// BindJSONOrError ensures body is present and parsable.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Request body is required."})
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid request body."})
		return false
	}
	return true
}

// PathID parses the :id segment; 0 means it was missing or malformed.
func PathID(c *gin.Context) int64 {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid id."})
		return 0
	}
	return id
}
