package repositories

import (
	"database/sql"
	"fmt"

	intconfig "holidays/internal/config"
	"holidays/internal/domain"
	"holidays/internal/domain/models"
)

type PackageRepository struct {
	DB *sql.DB
}

func (r PackageRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// List returns packages newest-first. When activeOnly is set only records
// visible on the public site are returned.
func (r PackageRepository) List(activeOnly bool) ([]models.HolidayPackage, error) {
	db := r.db()

	query := `
		SELECT id,
		       COALESCE(title,''),
		       COALESCE(description,''),
		       COALESCE(category,''),
		       COALESCE(starting_city,''),
		       COALESCE(nights,0),
		       COALESCE(days,0),
		       COALESCE(start_date,''),
		       COALESCE(price,0),
		       COALESCE(offer_price,0),
		       COALESCE(group_size,0),
		       COALESCE(with_flight,0),
		       COALESCE(header_image,''),
		       COALESCE(card_image,''),
		       COALESCE(is_active,0),
		       COALESCE(created_at,'')
		FROM holiday_packages`
	if activeOnly {
		query += ` WHERE is_active=1`
	}
	query += ` ORDER BY id DESC`

	rows, err := db.Query(query)
	if err != nil {
		return nil, domain.InternalError{Msg: "list packages", Err: err}
	}
	defer rows.Close()

	out := []models.HolidayPackage{}
	for rows.Next() {
		var p models.HolidayPackage
		if err := scanPackage(rows, &p); err != nil {
			return out, domain.InternalError{Msg: "scan package", Err: err}
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return out, domain.InternalError{Msg: "list packages", Err: err}
	}

	for i := range out {
		if err := r.loadChildren(db, &out[i]); err != nil {
			return out, err
		}
	}
	return out, nil
}

// Get fetches one package with all child collections.
func (r PackageRepository) Get(id int64) (models.HolidayPackage, error) {
	db := r.db()

	query := `
		SELECT id,
		       COALESCE(title,''),
		       COALESCE(description,''),
		       COALESCE(category,''),
		       COALESCE(starting_city,''),
		       COALESCE(nights,0),
		       COALESCE(days,0),
		       COALESCE(start_date,''),
		       COALESCE(price,0),
		       COALESCE(offer_price,0),
		       COALESCE(group_size,0),
		       COALESCE(with_flight,0),
		       COALESCE(header_image,''),
		       COALESCE(card_image,''),
		       COALESCE(is_active,0),
		       COALESCE(created_at,'')
		FROM holiday_packages
		WHERE id=? LIMIT 1`

	var p models.HolidayPackage
	if err := scanPackage(db.QueryRow(query, id), &p); err != nil {
		if err == sql.ErrNoRows {
			return models.HolidayPackage{}, domain.NotFoundError{Resource: "package"}
		}
		return models.HolidayPackage{}, domain.InternalError{Msg: "get package", Err: err}
	}
	if err := r.loadChildren(db, &p); err != nil {
		return models.HolidayPackage{}, err
	}
	return p, nil
}

// Create inserts the package row and its child collections in one transaction.
func (r PackageRepository) Create(p models.HolidayPackage) (int64, error) {
	db := r.db()
	tx, err := db.Begin()
	if err != nil {
		return 0, domain.InternalError{Msg: "begin tx", Err: err}
	}
	defer tx.Rollback()

	res, err := tx.Exec(`
		INSERT INTO holiday_packages
			(title, description, category, starting_city, nights, days, start_date,
			 price, offer_price, group_size, with_flight, header_image, card_image, is_active)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		p.Title, p.Description, p.Category, p.StartingCity, p.Nights, p.Days, p.StartDate,
		p.Price, p.OfferPrice, p.GroupSize, p.WithFlight, p.HeaderImage, p.CardImage, p.IsActive)
	if err != nil {
		return 0, domain.InternalError{Msg: "insert package", Err: err}
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, domain.InternalError{Msg: "insert package", Err: err}
	}

	if err := insertChildren(tx, id, p); err != nil {
		return 0, err
	}
	if err := tx.Commit(); err != nil {
		return 0, domain.InternalError{Msg: "commit package", Err: err}
	}
	return id, nil
}

// Update overwrites the package row and replaces every child collection.
func (r PackageRepository) Update(p models.HolidayPackage) error {
	db := r.db()
	tx, err := db.Begin()
	if err != nil {
		return domain.InternalError{Msg: "begin tx", Err: err}
	}
	defer tx.Rollback()

	res, err := tx.Exec(`
		UPDATE holiday_packages SET
			title=?, description=?, category=?, starting_city=?, nights=?, days=?, start_date=?,
			price=?, offer_price=?, group_size=?, with_flight=?, header_image=?, card_image=?, is_active=?
		WHERE id=?`,
		p.Title, p.Description, p.Category, p.StartingCity, p.Nights, p.Days, p.StartDate,
		p.Price, p.OfferPrice, p.GroupSize, p.WithFlight, p.HeaderImage, p.CardImage, p.IsActive, p.ID)
	if err != nil {
		return domain.InternalError{Msg: "update package", Err: err}
	}
	if n, _ := res.RowsAffected(); n == 0 {
		if exists, err := packageExists(tx, p.ID); err != nil {
			return err
		} else if !exists {
			return domain.NotFoundError{Resource: "package"}
		}
	}

	for _, table := range []string{"package_destinations", "package_itinerary", "package_highlights", "package_inclusions", "package_exclusions"} {
		if _, err := tx.Exec("DELETE FROM "+table+" WHERE package_id=?", p.ID); err != nil {
			return domain.InternalError{Msg: "replace " + table, Err: err}
		}
	}
	if err := insertChildren(tx, p.ID, p); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return domain.InternalError{Msg: "commit package", Err: err}
	}
	return nil
}

// Delete removes the package; child rows go with it via ON DELETE CASCADE.
func (r PackageRepository) Delete(id int64) error {
	res, err := r.db().Exec(`DELETE FROM holiday_packages WHERE id=?`, id)
	if err != nil {
		return domain.InternalError{Msg: "delete package", Err: err}
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "package"}
	}
	return nil
}

func packageExists(tx *sql.Tx, id int64) (bool, error) {
	var one int
	err := tx.QueryRow(`SELECT 1 FROM holiday_packages WHERE id=? LIMIT 1`, id).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, domain.InternalError{Msg: "check package", Err: err}
	}
	return true, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPackage(row rowScanner, p *models.HolidayPackage) error {
	return row.Scan(
		&p.ID,
		&p.Title,
		&p.Description,
		&p.Category,
		&p.StartingCity,
		&p.Nights,
		&p.Days,
		&p.StartDate,
		&p.Price,
		&p.OfferPrice,
		&p.GroupSize,
		&p.WithFlight,
		&p.HeaderImage,
		&p.CardImage,
		&p.IsActive,
		&p.CreatedAt,
	)
}

func (r PackageRepository) loadChildren(db *sql.DB, p *models.HolidayPackage) error {
	p.Destinations = []models.PackageDestination{}
	p.Itinerary = []models.ItineraryDay{}
	p.Highlights = []models.LineItem{}
	p.Inclusions = []models.LineItem{}
	p.Exclusions = []models.LineItem{}

	rows, err := db.Query(`
		SELECT COALESCE(name,''), COALESCE(nights,0)
		FROM package_destinations WHERE package_id=? ORDER BY position ASC, id ASC`, p.ID)
	if err != nil {
		return domain.InternalError{Msg: "load destinations", Err: err}
	}
	for rows.Next() {
		var d models.PackageDestination
		if err := rows.Scan(&d.Name, &d.Nights); err != nil {
			rows.Close()
			return domain.InternalError{Msg: "scan destination", Err: err}
		}
		p.Destinations = append(p.Destinations, d)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return domain.InternalError{Msg: "load destinations", Err: err}
	}

	rows, err = db.Query(`
		SELECT COALESCE(day_number,0), COALESCE(title,''), COALESCE(description,''), COALESCE(image,'')
		FROM package_itinerary WHERE package_id=? ORDER BY day_number ASC, id ASC`, p.ID)
	if err != nil {
		return domain.InternalError{Msg: "load itinerary", Err: err}
	}
	for rows.Next() {
		var d models.ItineraryDay
		if err := rows.Scan(&d.DayNumber, &d.Title, &d.Description, &d.Image); err != nil {
			rows.Close()
			return domain.InternalError{Msg: "scan itinerary", Err: err}
		}
		p.Itinerary = append(p.Itinerary, d)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return domain.InternalError{Msg: "load itinerary", Err: err}
	}

	for _, part := range []struct {
		table string
		dst   *[]models.LineItem
	}{
		{"package_highlights", &p.Highlights},
		{"package_inclusions", &p.Inclusions},
		{"package_exclusions", &p.Exclusions},
	} {
		rows, err = db.Query(fmt.Sprintf(`SELECT COALESCE(text,'') FROM %s WHERE package_id=? ORDER BY position ASC, id ASC`, part.table), p.ID)
		if err != nil {
			return domain.InternalError{Msg: "load " + part.table, Err: err}
		}
		for rows.Next() {
			var item models.LineItem
			if err := rows.Scan(&item.Text); err != nil {
				rows.Close()
				return domain.InternalError{Msg: "scan " + part.table, Err: err}
			}
			*part.dst = append(*part.dst, item)
		}
		rows.Close()
		if err := rows.Err(); err != nil {
			return domain.InternalError{Msg: "load " + part.table, Err: err}
		}
	}
	return nil
}

func insertChildren(tx *sql.Tx, id int64, p models.HolidayPackage) error {
	for i, d := range p.Destinations {
		if _, err := tx.Exec(`INSERT INTO package_destinations (package_id, position, name, nights) VALUES (?,?,?,?)`,
			id, i, d.Name, d.Nights); err != nil {
			return domain.InternalError{Msg: "insert destination", Err: err}
		}
	}
	for _, day := range p.Itinerary {
		if _, err := tx.Exec(`INSERT INTO package_itinerary (package_id, day_number, title, description, image) VALUES (?,?,?,?,?)`,
			id, day.DayNumber, day.Title, day.Description, day.Image); err != nil {
			return domain.InternalError{Msg: "insert itinerary day", Err: err}
		}
	}
	for _, part := range []struct {
		table string
		items []models.LineItem
	}{
		{"package_highlights", p.Highlights},
		{"package_inclusions", p.Inclusions},
		{"package_exclusions", p.Exclusions},
	} {
		for i, item := range part.items {
			if _, err := tx.Exec(fmt.Sprintf(`INSERT INTO %s (package_id, position, text) VALUES (?,?,?)`, part.table),
				id, i, item.Text); err != nil {
				return domain.InternalError{Msg: "insert " + part.table, Err: err}
			}
		}
	}
	return nil
}
