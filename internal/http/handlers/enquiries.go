package handlers

import (
	"net/http"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"

	"holidays/internal/domain"
	"holidays/internal/domain/models"
	"holidays/internal/repositories"
)

var (
	emailRe = regexp.MustCompile(`^\S+@\S+\.\S+$`)
	phoneRe = regexp.MustCompile(`^[\d+\-\s]{10,20}$`)
)

// POST /api/enquiry-form/
func CreateEnquiry(c *gin.Context) {
	var e models.Enquiry
	if !BindJSONOrError(c, &e) {
		return
	}
	if strings.TrimSpace(e.Name) == "" {
		RespondDomainError(c, domain.ValidationError{Field: "name", Msg: "Required"})
		return
	}
	if !phoneRe.MatchString(e.Phone) {
		RespondDomainError(c, domain.ValidationError{Field: "phone", Msg: "Enter a valid phone number."})
		return
	}
	if e.Email != "" && !emailRe.MatchString(e.Email) {
		RespondDomainError(c, domain.ValidationError{Field: "email", Msg: "Enter a valid email."})
		return
	}
	if strings.TrimSpace(e.EnquiryType) == "" {
		e.EnquiryType = "General"
	}

	id, err := repositories.EnquiryRepository{}.CreateSimple(e)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	e.ID = id
	c.JSON(http.StatusCreated, e)
}

// POST /api/holiday-form/
func CreateHolidayEnquiry(c *gin.Context) {
	var e models.HolidayEnquiry
	if !BindJSONOrError(c, &e) {
		return
	}
	if err := validateTrip(e.StartCity, e.TravelDate, e.Nationality, e.Cities); err != nil {
		RespondDomainError(c, err)
		return
	}
	if err := validateContact(e.FullName, e.Email, e.Phone); err != nil {
		RespondDomainError(c, err)
		return
	}

	id, err := repositories.EnquiryRepository{}.CreateHoliday(e)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	e.ID = id
	c.JSON(http.StatusCreated, e)
}

// POST /api/umrah-form/
func CreateUmrahEnquiry(c *gin.Context) {
	var e models.UmrahEnquiry
	if !BindJSONOrError(c, &e) {
		return
	}
	if err := validateTrip(e.StartCity, e.TravelDate, e.Nationality, e.Cities); err != nil {
		RespondDomainError(c, err)
		return
	}
	if err := validateContact(e.FullName, e.Email, e.Phone); err != nil {
		RespondDomainError(c, err)
		return
	}
	if e.Infants < 0 {
		RespondDomainError(c, domain.ValidationError{Field: "infants", Msg: "Must not be negative"})
		return
	}

	id, err := repositories.EnquiryRepository{}.CreateUmrah(e)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	e.ID = id
	c.JSON(http.StatusCreated, e)
}

// Admin listings.

func GetEnquiries(c *gin.Context) {
	list, err := repositories.EnquiryRepository{}.ListSimple()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func GetHolidayEnquiries(c *gin.Context) {
	list, err := repositories.EnquiryRepository{}.ListHoliday()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func GetUmrahEnquiries(c *gin.Context) {
	list, err := repositories.EnquiryRepository{}.ListUmrah()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func validateTrip(startCity, travelDate, nationality string, cities []models.CityStay) error {
	if len(cities) == 0 {
		return domain.ValidationError{Field: "cities", Msg: "Add at least one destination"}
	}
	for _, stay := range cities {
		if strings.TrimSpace(stay.Destination) == "" || stay.Nights < 1 {
			return domain.ValidationError{Field: "cities", Msg: "Complete all destination fields"}
		}
	}
	if strings.TrimSpace(startCity) == "" {
		return domain.ValidationError{Field: "start_city", Msg: "Required"}
	}
	if strings.TrimSpace(travelDate) == "" {
		return domain.ValidationError{Field: "travel_date", Msg: "Required"}
	}
	if strings.TrimSpace(nationality) == "" {
		return domain.ValidationError{Field: "nationality", Msg: "Required"}
	}
	return nil
}

func validateContact(fullName, email, phone string) error {
	if strings.TrimSpace(fullName) == "" {
		return domain.ValidationError{Field: "full_name", Msg: "Required"}
	}
	if !emailRe.MatchString(email) {
		return domain.ValidationError{Field: "email", Msg: "Enter a valid email."}
	}
	if !phoneRe.MatchString(phone) {
		return domain.ValidationError{Field: "phone", Msg: "Enter a valid phone number."}
	}
	return nil
}
