package repositories

import (
	"database/sql"
	"strings"

	intconfig "holidays/internal/config"
	"holidays/internal/domain"
	"holidays/internal/domain/models"
)

// ReferenceRepository serves the dropdown lookup tables the public forms
// and the admin package editor share.
type ReferenceRepository struct {
	DB *sql.DB
}

func (r ReferenceRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r ReferenceRepository) Destinations() ([]models.Destination, error) {
	rows, err := r.db().Query(`
		SELECT id, COALESCE(name,''), COALESCE(region,''), COALESCE(city,''), COALESCE(country,'')
		FROM destinations ORDER BY name ASC`)
	if err != nil {
		return nil, domain.InternalError{Msg: "list destinations", Err: err}
	}
	defer rows.Close()

	out := []models.Destination{}
	for rows.Next() {
		var d models.Destination
		if err := rows.Scan(&d.ID, &d.Name, &d.Region, &d.City, &d.Country); err != nil {
			return out, domain.InternalError{Msg: "scan destination", Err: err}
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r ReferenceRepository) CreateDestination(d models.Destination) (int64, error) {
	if strings.TrimSpace(d.Name) == "" {
		return 0, domain.ValidationError{Field: "name", Msg: "Required"}
	}
	res, err := r.db().Exec(`INSERT INTO destinations (name, region, city, country) VALUES (?,?,?,?)`,
		d.Name, d.Region, d.City, d.Country)
	if err != nil {
		return 0, domain.InternalError{Msg: "insert destination", Err: err}
	}
	return insertedID(res, "destination")
}

func (r ReferenceRepository) DeleteDestination(id int64) error {
	return deleteByID(r.db(), "destinations", "destination", id)
}

func (r ReferenceRepository) StartingCities() ([]models.StartingCity, error) {
	rows, err := r.db().Query(`SELECT id, COALESCE(name,''), COALESCE(region,'') FROM starting_cities ORDER BY name ASC`)
	if err != nil {
		return nil, domain.InternalError{Msg: "list starting cities", Err: err}
	}
	defer rows.Close()

	out := []models.StartingCity{}
	for rows.Next() {
		var s models.StartingCity
		if err := rows.Scan(&s.ID, &s.Name, &s.Region); err != nil {
			return out, domain.InternalError{Msg: "scan starting city", Err: err}
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r ReferenceRepository) CreateStartingCity(s models.StartingCity) (int64, error) {
	if strings.TrimSpace(s.Name) == "" {
		return 0, domain.ValidationError{Field: "name", Msg: "Required"}
	}
	res, err := r.db().Exec(`INSERT INTO starting_cities (name, region) VALUES (?,?)`, s.Name, s.Region)
	if err != nil {
		return 0, domain.InternalError{Msg: "insert starting city", Err: err}
	}
	return insertedID(res, "starting city")
}

func (r ReferenceRepository) DeleteStartingCity(id int64) error {
	return deleteByID(r.db(), "starting_cities", "starting city", id)
}

func (r ReferenceRepository) Nationalities() ([]models.Nationality, error) {
	rows, err := r.db().Query(`
		SELECT id, COALESCE(country,''), COALESCE(nationality,''), COALESCE(continent,'')
		FROM nationalities ORDER BY nationality ASC`)
	if err != nil {
		return nil, domain.InternalError{Msg: "list nationalities", Err: err}
	}
	defer rows.Close()

	out := []models.Nationality{}
	for rows.Next() {
		var n models.Nationality
		if err := rows.Scan(&n.ID, &n.Country, &n.Nationality, &n.Continent); err != nil {
			return out, domain.InternalError{Msg: "scan nationality", Err: err}
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

func (r ReferenceRepository) UmrahDestinations() ([]models.UmrahDestination, error) {
	rows, err := r.db().Query(`SELECT id, COALESCE(name,''), COALESCE(country,'') FROM umrah_destinations ORDER BY name ASC`)
	if err != nil {
		return nil, domain.InternalError{Msg: "list umrah destinations", Err: err}
	}
	defer rows.Close()

	out := []models.UmrahDestination{}
	for rows.Next() {
		var u models.UmrahDestination
		if err := rows.Scan(&u.ID, &u.Name, &u.Country); err != nil {
			return out, domain.InternalError{Msg: "scan umrah destination", Err: err}
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (r ReferenceRepository) CreateUmrahDestination(u models.UmrahDestination) (int64, error) {
	if strings.TrimSpace(u.Name) == "" {
		return 0, domain.ValidationError{Field: "name", Msg: "Required"}
	}
	res, err := r.db().Exec(`INSERT INTO umrah_destinations (name, country) VALUES (?,?)`, u.Name, u.Country)
	if err != nil {
		return 0, domain.InternalError{Msg: "insert umrah destination", Err: err}
	}
	return insertedID(res, "umrah destination")
}

func (r ReferenceRepository) DeleteUmrahDestination(id int64) error {
	return deleteByID(r.db(), "umrah_destinations", "umrah destination", id)
}

// ItineraryMasters lists reusable day templates, optionally narrowed to one
// destination.
func (r ReferenceRepository) ItineraryMasters(destinationID int64) ([]models.ItineraryMaster, error) {
	query := `
		SELECT id, COALESCE(destination_id,0), COALESCE(name,''), COALESCE(title,''),
		       COALESCE(description,''), COALESCE(image,'')
		FROM itinerary_masters`
	args := []any{}
	if destinationID > 0 {
		query += ` WHERE destination_id=?`
		args = append(args, destinationID)
	}
	query += ` ORDER BY name ASC, id ASC`

	rows, err := r.db().Query(query, args...)
	if err != nil {
		return nil, domain.InternalError{Msg: "list itinerary masters", Err: err}
	}
	defer rows.Close()

	out := []models.ItineraryMaster{}
	for rows.Next() {
		var m models.ItineraryMaster
		if err := rows.Scan(&m.ID, &m.DestinationID, &m.Name, &m.Title, &m.Description, &m.Image); err != nil {
			return out, domain.InternalError{Msg: "scan itinerary master", Err: err}
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r ReferenceRepository) CreateItineraryMaster(m models.ItineraryMaster) (int64, error) {
	if strings.TrimSpace(m.Name) == "" {
		return 0, domain.ValidationError{Field: "name", Msg: "Required"}
	}
	res, err := r.db().Exec(`INSERT INTO itinerary_masters (destination_id, name, title, description, image) VALUES (?,?,?,?,?)`,
		m.DestinationID, m.Name, m.Title, m.Description, m.Image)
	if err != nil {
		return 0, domain.InternalError{Msg: "insert itinerary master", Err: err}
	}
	return insertedID(res, "itinerary master")
}

func (r ReferenceRepository) DeleteItineraryMaster(id int64) error {
	return deleteByID(r.db(), "itinerary_masters", "itinerary master", id)
}

func deleteByID(db *sql.DB, table, resource string, id int64) error {
	res, err := db.Exec(`DELETE FROM `+table+` WHERE id=?`, id)
	if err != nil {
		return domain.InternalError{Msg: "delete " + resource, Err: err}
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: resource}
	}
	return nil
}

// insertedID keeps driver errors inside the domain taxonomy.
func insertedID(res sql.Result, resource string) (int64, error) {
	id, err := res.LastInsertId()
	if err != nil {
		return 0, domain.InternalError{Msg: "insert " + resource, Err: err}
	}
	return id, nil
}

// rowExists distinguishes "update matched nothing" from "update changed
// nothing": MySQL reports zero affected rows for both.
func rowExists(db *sql.DB, table, resource string, id int64) (bool, error) {
	var one int
	err := db.QueryRow(`SELECT 1 FROM `+table+` WHERE id=? LIMIT 1`, id).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, domain.InternalError{Msg: "check " + resource, Err: err}
	}
	return true, nil
}
