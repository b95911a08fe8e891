package repositories

import (
	"database/sql"
	"encoding/json"

	intconfig "holidays/internal/config"
	"holidays/internal/domain"
	"holidays/internal/domain/models"
)

// EnquiryRepository persists the three enquiry shapes. The multi-city rows
// and room breakdowns are stored as JSON columns, mirroring how they travel
// on the wire.
type EnquiryRepository struct {
	DB *sql.DB
}

func (r EnquiryRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r EnquiryRepository) CreateSimple(e models.Enquiry) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO enquiries (name, email, phone, destination, purpose, enquiry_type)
		VALUES (?,?,?,?,?,?)`,
		e.Name, e.Email, e.Phone, e.Destination, e.Purpose, e.EnquiryType)
	if err != nil {
		return 0, domain.InternalError{Msg: "insert enquiry", Err: err}
	}
	return insertedID(res, "enquiry")
}

func (r EnquiryRepository) CreateHoliday(e models.HolidayEnquiry) (int64, error) {
	cities, rooms, err := marshalTripJSON(e.Cities, e.RoomDetails)
	if err != nil {
		return 0, err
	}
	res, err := r.db().Exec(`
		INSERT INTO holiday_enquiries
			(package_type, start_city, nationality, travel_date, rooms, room_details,
			 adults, children, cities, star_rating, holiday_type, room_type, meal_plan,
			 transfer_details, other_inclusions, budget, full_name, email, phone, message)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		e.PackageType, e.StartCity, e.Nationality, e.TravelDate, e.Rooms, rooms,
		e.Adults, e.Children, cities, e.StarRating, e.HolidayType, e.RoomType, e.MealPlan,
		e.TransferDetails, e.OtherInclusions, e.Budget, e.FullName, e.Email, e.Phone, e.Message)
	if err != nil {
		return 0, domain.InternalError{Msg: "insert holiday enquiry", Err: err}
	}
	return insertedID(res, "holiday enquiry")
}

func (r EnquiryRepository) CreateUmrah(e models.UmrahEnquiry) (int64, error) {
	cities, rooms, err := marshalTripJSON(e.Cities, e.RoomDetails)
	if err != nil {
		return 0, err
	}
	res, err := r.db().Exec(`
		INSERT INTO umrah_enquiries
			(package_type, start_city, nationality, travel_date, rooms, room_details,
			 adults, children, infants, cities, star_rating, budget,
			 full_name, email, phone, message)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		e.PackageType, e.StartCity, e.Nationality, e.TravelDate, e.Rooms, rooms,
		e.Adults, e.Children, e.Infants, cities, e.StarRating, e.Budget,
		e.FullName, e.Email, e.Phone, e.Message)
	if err != nil {
		return 0, domain.InternalError{Msg: "insert umrah enquiry", Err: err}
	}
	return insertedID(res, "umrah enquiry")
}

// ListSimple returns the short enquiries newest-first for the back office.
func (r EnquiryRepository) ListSimple() ([]models.Enquiry, error) {
	rows, err := r.db().Query(`
		SELECT id, COALESCE(name,''), COALESCE(email,''), COALESCE(phone,''),
		       COALESCE(destination,''), COALESCE(purpose,''), COALESCE(enquiry_type,''),
		       COALESCE(created_at,'')
		FROM enquiries ORDER BY id DESC`)
	if err != nil {
		return nil, domain.InternalError{Msg: "list enquiries", Err: err}
	}
	defer rows.Close()

	out := []models.Enquiry{}
	for rows.Next() {
		var e models.Enquiry
		if err := rows.Scan(&e.ID, &e.Name, &e.Email, &e.Phone, &e.Destination, &e.Purpose, &e.EnquiryType, &e.CreatedAt); err != nil {
			return out, domain.InternalError{Msg: "scan enquiry", Err: err}
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r EnquiryRepository) ListHoliday() ([]models.HolidayEnquiry, error) {
	rows, err := r.db().Query(`
		SELECT id, COALESCE(package_type,''), COALESCE(start_city,''), COALESCE(nationality,''),
		       COALESCE(travel_date,''), COALESCE(rooms,0), COALESCE(room_details,'[]'),
		       COALESCE(adults,0), COALESCE(children,0), COALESCE(cities,'[]'),
		       COALESCE(star_rating,''), COALESCE(holiday_type,''), COALESCE(room_type,''),
		       COALESCE(meal_plan,''), COALESCE(transfer_details,''), COALESCE(other_inclusions,''),
		       COALESCE(budget,''), COALESCE(full_name,''), COALESCE(email,''), COALESCE(phone,''),
		       COALESCE(message,''), COALESCE(created_at,'')
		FROM holiday_enquiries ORDER BY id DESC`)
	if err != nil {
		return nil, domain.InternalError{Msg: "list holiday enquiries", Err: err}
	}
	defer rows.Close()

	out := []models.HolidayEnquiry{}
	for rows.Next() {
		var e models.HolidayEnquiry
		var roomsJSON, citiesJSON []byte
		if err := rows.Scan(&e.ID, &e.PackageType, &e.StartCity, &e.Nationality,
			&e.TravelDate, &e.Rooms, &roomsJSON,
			&e.Adults, &e.Children, &citiesJSON,
			&e.StarRating, &e.HolidayType, &e.RoomType,
			&e.MealPlan, &e.TransferDetails, &e.OtherInclusions,
			&e.Budget, &e.FullName, &e.Email, &e.Phone,
			&e.Message, &e.CreatedAt); err != nil {
			return out, domain.InternalError{Msg: "scan holiday enquiry", Err: err}
		}
		if err := unmarshalTripJSON(citiesJSON, roomsJSON, &e.Cities, &e.RoomDetails); err != nil {
			return out, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r EnquiryRepository) ListUmrah() ([]models.UmrahEnquiry, error) {
	rows, err := r.db().Query(`
		SELECT id, COALESCE(package_type,''), COALESCE(start_city,''), COALESCE(nationality,''),
		       COALESCE(travel_date,''), COALESCE(rooms,0), COALESCE(room_details,'[]'),
		       COALESCE(adults,0), COALESCE(children,0), COALESCE(infants,0), COALESCE(cities,'[]'),
		       COALESCE(star_rating,''), COALESCE(budget,''),
		       COALESCE(full_name,''), COALESCE(email,''), COALESCE(phone,''),
		       COALESCE(message,''), COALESCE(created_at,'')
		FROM umrah_enquiries ORDER BY id DESC`)
	if err != nil {
		return nil, domain.InternalError{Msg: "list umrah enquiries", Err: err}
	}
	defer rows.Close()

	out := []models.UmrahEnquiry{}
	for rows.Next() {
		var e models.UmrahEnquiry
		var roomsJSON, citiesJSON []byte
		if err := rows.Scan(&e.ID, &e.PackageType, &e.StartCity, &e.Nationality,
			&e.TravelDate, &e.Rooms, &roomsJSON,
			&e.Adults, &e.Children, &e.Infants, &citiesJSON,
			&e.StarRating, &e.Budget,
			&e.FullName, &e.Email, &e.Phone,
			&e.Message, &e.CreatedAt); err != nil {
			return out, domain.InternalError{Msg: "scan umrah enquiry", Err: err}
		}
		if err := unmarshalTripJSON(citiesJSON, roomsJSON, &e.Cities, &e.RoomDetails); err != nil {
			return out, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func marshalTripJSON(cities []models.CityStay, rooms []models.RoomDetail) ([]byte, []byte, error) {
	if cities == nil {
		cities = []models.CityStay{}
	}
	if rooms == nil {
		rooms = []models.RoomDetail{}
	}
	c, err := json.Marshal(cities)
	if err != nil {
		return nil, nil, domain.InternalError{Msg: "encode cities", Err: err}
	}
	r, err := json.Marshal(rooms)
	if err != nil {
		return nil, nil, domain.InternalError{Msg: "encode room details", Err: err}
	}
	return c, r, nil
}

func unmarshalTripJSON(citiesJSON, roomsJSON []byte, cities *[]models.CityStay, rooms *[]models.RoomDetail) error {
	if len(citiesJSON) > 0 {
		if err := json.Unmarshal(citiesJSON, cities); err != nil {
			return domain.InternalError{Msg: "decode cities", Err: err}
		}
	}
	if len(roomsJSON) > 0 {
		if err := json.Unmarshal(roomsJSON, rooms); err != nil {
			return domain.InternalError{Msg: "decode room details", Err: err}
		}
	}
	return nil
}
