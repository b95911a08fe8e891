package enquiry

import "holidays/internal/domain/models"

// Payload is the flattened JSON body sent to /api/holiday-form/ or
// /api/umrah-form/: the per-room detail is kept and the adult/child totals
// are carried alongside it.
type Payload struct {
	PackageType string `json:"package_type,omitempty"`

	Cities      []models.CityStay    `json:"cities"`
	StartCity   string               `json:"start_city"`
	TravelDate  string               `json:"travel_date"`
	Nationality string               `json:"nationality"`
	Rooms       int                  `json:"rooms"`
	RoomDetails []models.RoomDetail  `json:"room_details"`
	Adults      int                  `json:"adults"`
	Children    int                  `json:"children"`
	Infants     int                  `json:"infants,omitempty"`

	StarRating      string `json:"star_rating"`
	HolidayType     string `json:"holiday_type,omitempty"`
	RoomType        string `json:"room_type,omitempty"`
	MealPlan        string `json:"meal_plan,omitempty"`
	TransferDetails string `json:"transfer_details,omitempty"`
	OtherInclusions string `json:"other_inclusions,omitempty"`
	Budget          string `json:"budget,omitempty"`

	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Message  string `json:"message,omitempty"`
}

func (w *Wizard) payload() Payload {
	p := Payload{
		PackageType: w.trip.PackageType,
		Cities:      w.trip.Cities,
		StartCity:   w.trip.StartCity,
		TravelDate:  w.trip.TravelDate,
		Nationality: w.trip.Nationality,
		Rooms:       len(w.trip.Rooms),
		RoomDetails: w.trip.Rooms,
		Adults:      w.trip.TotalAdults(),
		Children:    w.trip.TotalChildren(),

		StarRating:      w.trip.StarRating,
		RoomType:        w.trip.RoomType,
		MealPlan:        w.trip.MealPlan,
		TransferDetails: w.trip.TransferDetails,
		OtherInclusions: w.trip.OtherInclusions,
		Budget:          w.trip.Budget,

		FullName: w.contact.FullName,
		Email:    w.contact.Email,
		Phone:    w.contact.Phone,
		Message:  w.contact.Message,
	}

	switch w.variant {
	case VariantUmrah:
		p.Infants = w.infants
	default:
		p.HolidayType = w.trip.HolidayType
	}
	return p
}
