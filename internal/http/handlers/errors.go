package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"holidays/internal/domain"
	"holidays/internal/http/middleware"
	"holidays/internal/utils"
)

// RespondDomainError maps domain errors onto the wire convention the
// frontend parses: field errors as {"field": ["message"]}, everything else
// as {"detail": "message"}.
func RespondDomainError(c *gin.Context, err error) {
	var v domain.ValidationError
	if errors.As(err, &v) {
		if v.Field != "" {
			msg := v.Msg
			if msg == "" {
				msg = "Invalid value"
			}
			c.JSON(http.StatusBadRequest, gin.H{v.Field: []string{msg}})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"detail": v.Error()})
		return
	}

	switch {
	case domain.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"detail": "Not found."})
	case domain.IsConflict(err):
		c.JSON(http.StatusConflict, gin.H{"detail": err.Error()})
	default:
		utils.LogEvent(middleware.GetRequestID(c), "http", "internal_error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "An error occurred. Please try again later."})
	}
}
