package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	intconfig "holidays/internal/config"
)

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func DBCheck(c *gin.Context) {
	if intconfig.DB == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "database not connected"})
		return
	}
	if err := intconfig.DB.Ping(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "database ping failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
