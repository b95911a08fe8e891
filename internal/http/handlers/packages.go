package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"holidays/internal/catalog"
	"holidays/internal/domain"
	"holidays/internal/domain/models"
	"holidays/internal/repositories"
)

// GET /api/packages/
// Query params narrow the listing with the same predicates the browse page
// uses: category, destination, nights, starting_city, budget, with_flight.
func GetPackages(c *gin.Context) {
	repo := repositories.PackageRepository{}
	list, err := repo.List(true)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	crit := criteriaFromQuery(c)
	c.JSON(http.StatusOK, catalog.Visible(list, crit))
}

// GET /api/admin/packages/ returns every package, retired ones included.
func GetAllPackages(c *gin.Context) {
	list, err := repositories.PackageRepository{}.List(false)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GET /api/packages/:id/
func GetPackageByID(c *gin.Context) {
	id := PathID(c)
	if id == 0 {
		return
	}
	pkg, err := repositories.PackageRepository{}.Get(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, pkg)
}

// POST /api/packages/
func CreatePackage(c *gin.Context) {
	var pkg models.HolidayPackage
	if !BindJSONOrError(c, &pkg) {
		return
	}
	if err := validatePackage(pkg); err != nil {
		RespondDomainError(c, err)
		return
	}

	id, err := repositories.PackageRepository{}.Create(pkg)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	pkg.ID = id
	c.JSON(http.StatusCreated, pkg)
}

// PUT /api/packages/:id/
func UpdatePackage(c *gin.Context) {
	id := PathID(c)
	if id == 0 {
		return
	}
	var pkg models.HolidayPackage
	if !BindJSONOrError(c, &pkg) {
		return
	}
	pkg.ID = id
	if err := validatePackage(pkg); err != nil {
		RespondDomainError(c, err)
		return
	}

	if err := (repositories.PackageRepository{}).Update(pkg); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, pkg)
}

// DELETE /api/packages/:id/
func DeletePackage(c *gin.Context) {
	id := PathID(c)
	if id == 0 {
		return
	}
	if err := (repositories.PackageRepository{}).Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func validatePackage(p models.HolidayPackage) error {
	if strings.TrimSpace(p.Title) == "" {
		return domain.ValidationError{Field: "title", Msg: "Required"}
	}
	switch p.Category {
	case models.CategoryDomestic, models.CategoryInternational, models.CategoryUmrah:
	default:
		return domain.ValidationError{Field: "category", Msg: "Must be Domestic, International or Umrah"}
	}
	if p.Nights < 0 || p.Days < 0 {
		return domain.ValidationError{Field: "nights", Msg: "Must not be negative"}
	}
	if p.OfferPrice < 0 {
		return domain.ValidationError{Field: "offer_price", Msg: "Must not be negative"}
	}
	return nil
}

func criteriaFromQuery(c *gin.Context) catalog.Criteria {
	crit := catalog.Criteria{
		Category:     c.Query("category"),
		Destination:  c.Query("destination"),
		StartingCity: c.Query("starting_city"),
	}
	if n, err := strconv.Atoi(c.Query("nights")); err == nil && n > 0 {
		crit.Nights = n
	}
	if b, err := strconv.ParseInt(c.Query("budget"), 10, 64); err == nil {
		crit.BudgetMax = b
		crit.ClampBudget()
	}
	switch strings.ToLower(c.Query("with_flight")) {
	case "true", "1":
		crit.Flight = catalog.FlightWith
	case "false", "0":
		crit.Flight = catalog.FlightWithout
	}
	return crit
}
