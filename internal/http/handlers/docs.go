package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"holidays/internal/http/middleware"
	"holidays/internal/repositories"
	"holidays/internal/services"
)

// GET /api/packages/:id/brochure/ streams the brochure PDF inline.
func GetPackageBrochure(c *gin.Context) {
	id := PathID(c)
	if id == 0 {
		return
	}

	pkg, err := repositories.PackageRepository{}.Get(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	svc := services.DocsService{RequestID: middleware.GetRequestID(c)}
	pdfBytes, filename, err := svc.Brochure(pkg)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}

// GET /api/packages/:id/summary/ returns the shareable text block and the
// WhatsApp deep link for it.
func GetPackageSummary(c *gin.Context) {
	id := PathID(c)
	if id == 0 {
		return
	}

	pkg, err := repositories.PackageRepository{}.Get(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	svc := services.DocsService{RequestID: middleware.GetRequestID(c)}
	c.JSON(http.StatusOK, gin.H{
		"summary":       svc.Summary(pkg),
		"whatsapp_link": svc.WhatsAppLink(pkg, c.Query("phone")),
	})
}
