package repositories

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"holidays/internal/domain"
	"holidays/internal/domain/models"
)

func TestCreateHolidayEnquiryEncodesTripJSON(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	cities := []models.CityStay{{Destination: "Bali", Nights: 3}, {Destination: "Ubud", Nights: 2}}
	rooms := []models.RoomDetail{{Adults: 2, Children: 1, ChildAges: []string{"7"}}}
	citiesJSON, _ := json.Marshal(cities)
	roomsJSON, _ := json.Marshal(rooms)

	mock.ExpectExec("INSERT INTO holiday_enquiries").
		WithArgs("International", "Delhi", "Indian", "2026-10-01", 1, roomsJSON,
			2, 1, citiesJSON, "4", "Family", "Deluxe", "Breakfast",
			"Airport transfers", "", "50000", "A Traveller", "a@b.com", "9876543210", "").
		WillReturnResult(sqlmock.NewResult(7, 1))

	repo := EnquiryRepository{DB: db}
	id, err := repo.CreateHoliday(models.HolidayEnquiry{
		PackageType: "International",
		StartCity:   "Delhi",
		Nationality: "Indian",
		TravelDate:  "2026-10-01",
		Rooms:       1,
		RoomDetails: rooms,
		Adults:      2,
		Children:    1,
		Cities:      cities,
		StarRating:  "4",
		HolidayType: "Family",
		RoomType:    "Deluxe",
		MealPlan:    "Breakfast",
		TransferDetails: "Airport transfers",
		Budget:          "50000",
		FullName:        "A Traveller",
		Email:           "a@b.com",
		Phone:           "9876543210",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if id != 7 {
		t.Fatalf("id = %d, want 7", id)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateSimpleEnquiryInsertIDFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO enquiries").
		WillReturnResult(sqlmock.NewErrorResult(errors.New("no LastInsertId available")))

	repo := EnquiryRepository{DB: db}
	if _, err := repo.CreateSimple(models.Enquiry{Name: "C", Phone: "9111111111"}); !domain.IsInternal(err) {
		t.Fatalf("driver failure should surface as internal, got %v", err)
	}
}

func TestListHolidayEnquiriesDecodesTripJSON(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	cols := []string{
		"id", "package_type", "start_city", "nationality", "travel_date", "rooms", "room_details",
		"adults", "children", "cities", "star_rating", "holiday_type", "room_type",
		"meal_plan", "transfer_details", "other_inclusions", "budget",
		"full_name", "email", "phone", "message", "created_at",
	}
	mock.ExpectQuery("FROM holiday_enquiries").
		WillReturnRows(sqlmock.NewRows(cols).AddRow(
			3, "Domestic", "Mumbai", "Indian", "2026-09-15", 2, `[{"adults":2,"children":0,"child_ages":[]},{"adults":1,"children":0,"child_ages":[]}]`,
			3, 0, `[{"destination":"Goa","nights":4}]`, "3", "Beach", "", "",
			"", "", "30000",
			"B Traveller", "b@c.com", "9000000000", "", "2026-08-01 10:00:00"))

	repo := EnquiryRepository{DB: db}
	list, err := repo.ListHoliday()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("got %d rows", len(list))
	}
	e := list[0]
	if len(e.Cities) != 1 || e.Cities[0].Destination != "Goa" || e.Cities[0].Nights != 4 {
		t.Fatalf("cities not decoded: %+v", e.Cities)
	}
	if len(e.RoomDetails) != 2 || e.RoomDetails[0].Adults != 2 {
		t.Fatalf("room details not decoded: %+v", e.RoomDetails)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateSimpleEnquiry(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO enquiries").
		WithArgs("C", "", "9111111111", "Kerala", "Family trip", "Cab").
		WillReturnResult(sqlmock.NewResult(11, 1))

	repo := EnquiryRepository{DB: db}
	id, err := repo.CreateSimple(models.Enquiry{
		Name: "C", Phone: "9111111111", Destination: "Kerala", Purpose: "Family trip", EnquiryType: "Cab",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if id != 11 {
		t.Fatalf("id = %d, want 11", id)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
