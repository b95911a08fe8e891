package enquiry

import "holidays/internal/domain/models"

const (
	minRooms = 1
	maxRooms = 6
)

// TripDetails accumulates everything the customer picks on step one.
type TripDetails struct {
	PackageType string
	Cities      []models.CityStay
	StartCity   string
	TravelDate  string
	Nationality string

	Rooms []models.RoomDetail

	StarRating      string
	HolidayType     string
	RoomType        string
	MealPlan        string
	TransferDetails string
	OtherInclusions string
	Budget          string
}

func defaultTrip(packageType string) TripDetails {
	return TripDetails{
		PackageType: packageType,
		Cities:      []models.CityStay{{Destination: "", Nights: 1}},
		Nationality: "Indian",
		Rooms:       []models.RoomDetail{{Adults: 2, Children: 0}},
	}
}

// AddCity appends an empty destination row.
func (t *TripDetails) AddCity() {
	t.Cities = append(t.Cities, models.CityStay{Destination: "", Nights: 1})
}

// RemoveCity drops a row. At least one destination row always remains.
func (t *TripDetails) RemoveCity(i int) bool {
	if len(t.Cities) <= 1 || i < 0 || i >= len(t.Cities) {
		return false
	}
	t.Cities = append(t.Cities[:i], t.Cities[i+1:]...)
	return true
}

func (t *TripDetails) SetCity(i int, destination string, nights int) {
	if i < 0 || i >= len(t.Cities) {
		return
	}
	t.Cities[i].Destination = destination
	t.Cities[i].Nights = nights
}

// SetRoomCount resizes the per-room breakdown. Counts outside 1..6 are
// ignored. New rooms start at 2 adults, no children; removed rooms' data is
// discarded for good.
func (t *TripDetails) SetRoomCount(count int) {
	if count < minRooms || count > maxRooms {
		return
	}
	for len(t.Rooms) < count {
		t.Rooms = append(t.Rooms, models.RoomDetail{Adults: 2, Children: 0})
	}
	if len(t.Rooms) > count {
		t.Rooms = t.Rooms[:count]
	}
}

// AdjustAdults changes a room's adult count, never below one.
func (t *TripDetails) AdjustAdults(room, delta int) {
	if room < 0 || room >= len(t.Rooms) {
		return
	}
	n := t.Rooms[room].Adults + delta
	if n < 1 {
		n = 1
	}
	t.Rooms[room].Adults = n
}

// AdjustChildren changes a room's child count, never below zero, and keeps
// ChildAges the same length: existing ages survive by index, new slots are
// padded empty, shrinking truncates from the end.
func (t *TripDetails) AdjustChildren(room, delta int) {
	if room < 0 || room >= len(t.Rooms) {
		return
	}
	r := &t.Rooms[room]
	n := r.Children + delta
	if n < 0 {
		n = 0
	}
	r.Children = n

	for len(r.ChildAges) < n {
		r.ChildAges = append(r.ChildAges, "")
	}
	if len(r.ChildAges) > n {
		r.ChildAges = r.ChildAges[:n]
	}
}

func (t *TripDetails) SetChildAge(room, child int, age string) {
	if room < 0 || room >= len(t.Rooms) {
		return
	}
	if child < 0 || child >= len(t.Rooms[room].ChildAges) {
		return
	}
	t.Rooms[room].ChildAges[child] = age
}

// TotalAdults sums adults across rooms.
func (t TripDetails) TotalAdults() int {
	total := 0
	for _, r := range t.Rooms {
		total += r.Adults
	}
	return total
}

// TotalChildren sums children across rooms.
func (t TripDetails) TotalChildren() int {
	total := 0
	for _, r := range t.Rooms {
		total += r.Children
	}
	return total
}
