package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"holidays/internal/auth"
	"holidays/internal/domain"
	"holidays/internal/repositories"
)

type tokenRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// ObtainToken handles POST /api/token/. Wrong credentials and non-staff
// accounts get the same answer so usernames cannot be probed.
func ObtainToken(m auth.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req tokenRequest
		if !BindJSONOrError(c, &req) {
			return
		}

		repo := repositories.UserRepository{}
		user, err := repo.Authenticate(req.Username, req.Password)
		if err != nil {
			if domain.IsNotFound(err) || domain.IsConflict(err) || domain.IsValidation(err) {
				c.JSON(http.StatusUnauthorized, gin.H{"detail": "No active account found with the given credentials"})
				return
			}
			RespondDomainError(c, err)
			return
		}

		pair, err := m.Mint(user.ID, user.Username, user.IsSuperuser)
		if err != nil {
			RespondDomainError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"access":  pair.Access,
			"refresh": pair.Refresh,
			"user":    user,
		})
	}
}

type refreshRequest struct {
	Refresh string `json:"refresh"`
}

// RefreshToken handles POST /api/token/refresh/.
func RefreshToken(m auth.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req refreshRequest
		if !BindJSONOrError(c, &req) {
			return
		}

		claims, err := m.VerifyRefresh(req.Refresh)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"detail": "Token is invalid or expired"})
			return
		}

		userID, _ := claims["user_id"].(float64)
		user, err := repositories.UserRepository{}.Get(int64(userID))
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"detail": "Token is invalid or expired"})
			return
		}

		pair, err := m.Mint(user.ID, user.Username, user.IsSuperuser)
		if err != nil {
			RespondDomainError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"access": pair.Access})
	}
}
