package models

// Enquiry is the simple "call me back" form: General, Cab or Cruise.
type Enquiry struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone"`
	Destination string `json:"destination,omitempty"`
	Purpose     string `json:"purpose,omitempty"`
	EnquiryType string `json:"enquiry_type"`
	CreatedAt   string `json:"created_at,omitempty"`
}

// CityStay is one row of the multi-city trip planner.
type CityStay struct {
	Destination string `json:"destination"`
	Nights      int    `json:"nights"`
}

// RoomDetail carries the traveler breakdown for one room. ChildAges always
// has exactly Children entries; unfilled ages stay "".
type RoomDetail struct {
	Adults    int      `json:"adults"`
	Children  int      `json:"children"`
	ChildAges []string `json:"child_ages"`
}

// HolidayEnquiry is the full customized-holiday request captured by the
// two-step wizard.
type HolidayEnquiry struct {
	ID          int64  `json:"id"`
	PackageType string `json:"package_type,omitempty"`
	StartCity   string `json:"start_city"`
	Nationality string `json:"nationality"`
	TravelDate  string `json:"travel_date"`

	Rooms       int          `json:"rooms"`
	RoomDetails []RoomDetail `json:"room_details"`
	Adults      int          `json:"adults"`
	Children    int          `json:"children"`
	Cities      []CityStay   `json:"cities"`

	StarRating      string `json:"star_rating"`
	HolidayType     string `json:"holiday_type,omitempty"`
	RoomType        string `json:"room_type,omitempty"`
	MealPlan        string `json:"meal_plan,omitempty"`
	TransferDetails string `json:"transfer_details,omitempty"`
	OtherInclusions string `json:"other_inclusions,omitempty"`
	Budget          string `json:"budget,omitempty"`

	FullName  string `json:"full_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Message   string `json:"message,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
}

// UmrahEnquiry mirrors HolidayEnquiry without holiday type and with infants.
type UmrahEnquiry struct {
	ID          int64  `json:"id"`
	PackageType string `json:"package_type,omitempty"`
	StartCity   string `json:"start_city"`
	Nationality string `json:"nationality"`
	TravelDate  string `json:"travel_date"`

	Rooms       int          `json:"rooms"`
	RoomDetails []RoomDetail `json:"room_details"`
	Adults      int          `json:"adults"`
	Children    int          `json:"children"`
	Infants     int          `json:"infants"`
	Cities      []CityStay   `json:"cities"`

	StarRating string `json:"star_rating"`
	Budget     string `json:"budget,omitempty"`

	FullName  string `json:"full_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Message   string `json:"message,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
}
