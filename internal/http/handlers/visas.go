package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"holidays/internal/domain/models"
	"holidays/internal/repositories"
)

// GET /api/visas/?country=Dubai
// Public listing: active products only, country matched case-insensitively.
func GetVisas(c *gin.Context) {
	list, err := repositories.VisaRepository{}.List(c.Query("country"), true)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GET /api/admin/visas/ includes retired products.
func GetAllVisas(c *gin.Context) {
	list, err := repositories.VisaRepository{}.List(c.Query("country"), false)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GET /api/countries/ lists countries that have an active visa product.
func GetVisaCountries(c *gin.Context) {
	list, err := repositories.VisaRepository{}.Countries()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func GetVisaByID(c *gin.Context) {
	id := PathID(c)
	if id == 0 {
		return
	}
	v, err := repositories.VisaRepository{}.Get(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

func CreateVisa(c *gin.Context) {
	var v models.Visa
	if !BindJSONOrError(c, &v) {
		return
	}
	id, err := repositories.VisaRepository{}.Create(v)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	v.ID = id
	c.JSON(http.StatusCreated, v)
}

func UpdateVisa(c *gin.Context) {
	id := PathID(c)
	if id == 0 {
		return
	}
	var v models.Visa
	if !BindJSONOrError(c, &v) {
		return
	}
	v.ID = id
	if err := (repositories.VisaRepository{}).Update(v); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

func DeleteVisa(c *gin.Context) {
	id := PathID(c)
	if id == 0 {
		return
	}
	if err := (repositories.VisaRepository{}).Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
