package repositories

import (
	"database/sql"
	"strings"

	intconfig "holidays/internal/config"
	"holidays/internal/domain"
	"holidays/internal/domain/models"
)

type VisaRepository struct {
	DB *sql.DB
}

func (r VisaRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const visaColumns = `
	id,
	COALESCE(country,''),
	COALESCE(title,''),
	COALESCE(entry_type,''),
	COALESCE(validity,''),
	COALESCE(duration,''),
	COALESCE(processing_time,''),
	COALESCE(cost_price,0),
	COALESCE(service_charge,0),
	COALESCE(selling_price,0),
	COALESCE(documents_required,''),
	COALESCE(photography_required,''),
	COALESCE(visa_type,''),
	COALESCE(card_image,''),
	COALESCE(supplier_id,0),
	COALESCE(is_active,0),
	COALESCE(created_at,'')`

// List returns visa products. country matches case-insensitively; activeOnly
// hides retired products from the public site.
func (r VisaRepository) List(country string, activeOnly bool) ([]models.Visa, error) {
	where := []string{"1=1"}
	args := []any{}
	if c := strings.TrimSpace(country); c != "" {
		where = append(where, "LOWER(country)=LOWER(?)")
		args = append(args, c)
	}
	if activeOnly {
		where = append(where, "is_active=1")
	}

	query := `SELECT ` + visaColumns + ` FROM visas WHERE ` + strings.Join(where, " AND ") + ` ORDER BY country ASC, selling_price ASC`
	rows, err := r.db().Query(query, args...)
	if err != nil {
		return nil, domain.InternalError{Msg: "list visas", Err: err}
	}
	defer rows.Close()

	out := []models.Visa{}
	for rows.Next() {
		var v models.Visa
		if err := scanVisa(rows, &v); err != nil {
			return out, domain.InternalError{Msg: "scan visa", Err: err}
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (r VisaRepository) Get(id int64) (models.Visa, error) {
	var v models.Visa
	err := scanVisa(r.db().QueryRow(`SELECT `+visaColumns+` FROM visas WHERE id=? LIMIT 1`, id), &v)
	if err == sql.ErrNoRows {
		return models.Visa{}, domain.NotFoundError{Resource: "visa"}
	}
	if err != nil {
		return models.Visa{}, domain.InternalError{Msg: "get visa", Err: err}
	}
	return v, nil
}

func (r VisaRepository) Create(v models.Visa) (int64, error) {
	if err := validateVisa(v); err != nil {
		return 0, err
	}
	res, err := r.db().Exec(`
		INSERT INTO visas
			(country, title, entry_type, validity, duration, processing_time,
			 cost_price, service_charge, selling_price, documents_required,
			 photography_required, visa_type, card_image, supplier_id, is_active)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		v.Country, v.Title, v.EntryType, v.Validity, v.Duration, v.ProcessingTime,
		v.CostPrice, v.ServiceCharge, v.SellingPrice, v.DocumentsRequired,
		v.PhotographyRequired, v.VisaType, v.CardImage, v.SupplierID, v.IsActive)
	if err != nil {
		return 0, domain.InternalError{Msg: "insert visa", Err: err}
	}
	return insertedID(res, "visa")
}

func (r VisaRepository) Update(v models.Visa) error {
	if err := validateVisa(v); err != nil {
		return err
	}
	res, err := r.db().Exec(`
		UPDATE visas SET
			country=?, title=?, entry_type=?, validity=?, duration=?, processing_time=?,
			cost_price=?, service_charge=?, selling_price=?, documents_required=?,
			photography_required=?, visa_type=?, card_image=?, supplier_id=?, is_active=?
		WHERE id=?`,
		v.Country, v.Title, v.EntryType, v.Validity, v.Duration, v.ProcessingTime,
		v.CostPrice, v.ServiceCharge, v.SellingPrice, v.DocumentsRequired,
		v.PhotographyRequired, v.VisaType, v.CardImage, v.SupplierID, v.IsActive, v.ID)
	if err != nil {
		return domain.InternalError{Msg: "update visa", Err: err}
	}
	if n, _ := res.RowsAffected(); n == 0 {
		// A no-change update also affects zero rows.
		if exists, err := rowExists(r.db(), "visas", "visa", v.ID); err != nil {
			return err
		} else if !exists {
			return domain.NotFoundError{Resource: "visa"}
		}
	}
	return nil
}

func (r VisaRepository) Delete(id int64) error {
	return deleteByID(r.db(), "visas", "visa", id)
}

// Countries lists the distinct countries that have at least one active visa
// product, for the public country picker.
func (r VisaRepository) Countries() ([]models.Country, error) {
	rows, err := r.db().Query(`
		SELECT MIN(id), country FROM visas
		WHERE is_active=1 AND country<>''
		GROUP BY country ORDER BY country ASC`)
	if err != nil {
		return nil, domain.InternalError{Msg: "list visa countries", Err: err}
	}
	defer rows.Close()

	out := []models.Country{}
	for rows.Next() {
		var c models.Country
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return out, domain.InternalError{Msg: "scan country", Err: err}
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func validateVisa(v models.Visa) error {
	if strings.TrimSpace(v.Country) == "" {
		return domain.ValidationError{Field: "country", Msg: "Required"}
	}
	if strings.TrimSpace(v.Title) == "" {
		return domain.ValidationError{Field: "title", Msg: "Required"}
	}
	if v.SellingPrice < 0 {
		return domain.ValidationError{Field: "selling_price", Msg: "Must not be negative"}
	}
	return nil
}

func scanVisa(row rowScanner, v *models.Visa) error {
	return row.Scan(
		&v.ID,
		&v.Country,
		&v.Title,
		&v.EntryType,
		&v.Validity,
		&v.Duration,
		&v.ProcessingTime,
		&v.CostPrice,
		&v.ServiceCharge,
		&v.SellingPrice,
		&v.DocumentsRequired,
		&v.PhotographyRequired,
		&v.VisaType,
		&v.CardImage,
		&v.SupplierID,
		&v.IsActive,
		&v.CreatedAt,
	)
}
