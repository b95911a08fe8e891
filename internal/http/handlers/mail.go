package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"holidays/internal/config"
	"holidays/internal/http/middleware"
	"holidays/internal/services"
)

type sendVisaDetailsRequest struct {
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// SendVisaDetails handles POST /api/send-visa-details/: the back office
// emails a visa summary to an enquirer.
func SendVisaDetails(env config.Env) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req sendVisaDetailsRequest
		if !BindJSONOrError(c, &req) {
			return
		}

		svc := services.MailService{RequestID: middleware.GetRequestID(c), Env: env}
		if err := svc.SendVisaDetails(req.Email, req.Subject, req.Body); err != nil {
			RespondDomainError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"detail": "Email sent."})
	}
}
