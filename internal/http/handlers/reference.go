package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"holidays/internal/domain/models"
	"holidays/internal/repositories"
)

// Lookup endpoints behind the public dropdowns. Reads are open; writes sit
// behind the staff guard in the router.

func GetDestinations(c *gin.Context) {
	list, err := repositories.ReferenceRepository{}.Destinations()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func CreateDestination(c *gin.Context) {
	var d models.Destination
	if !BindJSONOrError(c, &d) {
		return
	}
	id, err := repositories.ReferenceRepository{}.CreateDestination(d)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	d.ID = id
	c.JSON(http.StatusCreated, d)
}

func DeleteDestination(c *gin.Context) {
	id := PathID(c)
	if id == 0 {
		return
	}
	if err := (repositories.ReferenceRepository{}).DeleteDestination(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func GetStartingCities(c *gin.Context) {
	list, err := repositories.ReferenceRepository{}.StartingCities()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func CreateStartingCity(c *gin.Context) {
	var s models.StartingCity
	if !BindJSONOrError(c, &s) {
		return
	}
	id, err := repositories.ReferenceRepository{}.CreateStartingCity(s)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	s.ID = id
	c.JSON(http.StatusCreated, s)
}

func DeleteStartingCity(c *gin.Context) {
	id := PathID(c)
	if id == 0 {
		return
	}
	if err := (repositories.ReferenceRepository{}).DeleteStartingCity(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func GetNationalities(c *gin.Context) {
	list, err := repositories.ReferenceRepository{}.Nationalities()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func GetUmrahDestinations(c *gin.Context) {
	list, err := repositories.ReferenceRepository{}.UmrahDestinations()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func CreateUmrahDestination(c *gin.Context) {
	var u models.UmrahDestination
	if !BindJSONOrError(c, &u) {
		return
	}
	id, err := repositories.ReferenceRepository{}.CreateUmrahDestination(u)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	u.ID = id
	c.JSON(http.StatusCreated, u)
}

func DeleteUmrahDestination(c *gin.Context) {
	id := PathID(c)
	if id == 0 {
		return
	}
	if err := (repositories.ReferenceRepository{}).DeleteUmrahDestination(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GET /api/itinerary-masters/?destination_id=N
func GetItineraryMasters(c *gin.Context) {
	var destID int64
	if v := c.Query("destination_id"); v != "" {
		destID, _ = strconv.ParseInt(v, 10, 64)
	}
	list, err := repositories.ReferenceRepository{}.ItineraryMasters(destID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func CreateItineraryMaster(c *gin.Context) {
	var m models.ItineraryMaster
	if !BindJSONOrError(c, &m) {
		return
	}
	id, err := repositories.ReferenceRepository{}.CreateItineraryMaster(m)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	m.ID = id
	c.JSON(http.StatusCreated, m)
}

func DeleteItineraryMaster(c *gin.Context) {
	id := PathID(c)
	if id == 0 {
		return
	}
	if err := (repositories.ReferenceRepository{}).DeleteItineraryMaster(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
