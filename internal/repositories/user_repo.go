package repositories

import (
	"database/sql"
	"strings"

	"golang.org/x/crypto/bcrypt"

	intconfig "holidays/internal/config"
	"holidays/internal/domain"
	"holidays/internal/domain/models"
)

type UserRepository struct {
	DB *sql.DB
}

func (r UserRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// Authenticate checks credentials and returns the account. Only staff
// accounts may log in to the back office.
func (r UserRepository) Authenticate(username, password string) (models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return models.User{}, domain.ValidationError{Field: "username", Msg: "Required"}
	}

	var u models.User
	var hash string
	err := r.db().QueryRow(`
		SELECT id, COALESCE(username,''), COALESCE(email,''), COALESCE(password_hash,''),
		       COALESCE(is_staff,0), COALESCE(is_superuser,0), COALESCE(created_at,'')
		FROM users WHERE username=? LIMIT 1`, username).
		Scan(&u.ID, &u.Username, &u.Email, &hash, &u.IsStaff, &u.IsSuperuser, &u.CreatedAt)
	if err == sql.ErrNoRows {
		return models.User{}, domain.NotFoundError{Resource: "user"}
	}
	if err != nil {
		return models.User{}, domain.InternalError{Msg: "get user", Err: err}
	}

	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) != nil {
		return models.User{}, domain.NotFoundError{Resource: "user"}
	}
	if !u.IsStaff {
		return models.User{}, domain.ConflictError{Resource: "user", Msg: "account is not staff"}
	}
	return u, nil
}

func (r UserRepository) List() ([]models.User, error) {
	rows, err := r.db().Query(`
		SELECT id, COALESCE(username,''), COALESCE(email,''),
		       COALESCE(is_staff,0), COALESCE(is_superuser,0), COALESCE(created_at,'')
		FROM users ORDER BY username ASC`)
	if err != nil {
		return nil, domain.InternalError{Msg: "list users", Err: err}
	}
	defer rows.Close()

	out := []models.User{}
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Email, &u.IsStaff, &u.IsSuperuser, &u.CreatedAt); err != nil {
			return out, domain.InternalError{Msg: "scan user", Err: err}
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (r UserRepository) Get(id int64) (models.User, error) {
	var u models.User
	err := r.db().QueryRow(`
		SELECT id, COALESCE(username,''), COALESCE(email,''),
		       COALESCE(is_staff,0), COALESCE(is_superuser,0), COALESCE(created_at,'')
		FROM users WHERE id=? LIMIT 1`, id).
		Scan(&u.ID, &u.Username, &u.Email, &u.IsStaff, &u.IsSuperuser, &u.CreatedAt)
	if err == sql.ErrNoRows {
		return models.User{}, domain.NotFoundError{Resource: "user"}
	}
	if err != nil {
		return models.User{}, domain.InternalError{Msg: "get user", Err: err}
	}
	return u, nil
}

// Create inserts the account with a bcrypt password hash.
func (r UserRepository) Create(u models.User, password string) (int64, error) {
	if strings.TrimSpace(u.Username) == "" {
		return 0, domain.ValidationError{Field: "username", Msg: "Required"}
	}
	if len(password) < 8 {
		return 0, domain.ValidationError{Field: "password", Msg: "Must be at least 8 characters"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return 0, domain.InternalError{Msg: "hash password", Err: err}
	}

	res, err := r.db().Exec(`
		INSERT INTO users (username, email, password_hash, is_staff, is_superuser)
		VALUES (?,?,?,?,?)`,
		u.Username, u.Email, string(hash), u.IsStaff, u.IsSuperuser)
	if err != nil {
		if strings.Contains(err.Error(), "Duplicate entry") {
			return 0, domain.ConflictError{Resource: "user", Msg: "username already taken"}
		}
		return 0, domain.InternalError{Msg: "insert user", Err: err}
	}
	return insertedID(res, "user")
}

// Update changes profile fields and flags; a non-empty password also rotates
// the hash.
func (r UserRepository) Update(u models.User, password string) error {
	if password != "" {
		if len(password) < 8 {
			return domain.ValidationError{Field: "password", Msg: "Must be at least 8 characters"}
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return domain.InternalError{Msg: "hash password", Err: err}
		}
		res, err := r.db().Exec(`
			UPDATE users SET username=?, email=?, password_hash=?, is_staff=?, is_superuser=? WHERE id=?`,
			u.Username, u.Email, string(hash), u.IsStaff, u.IsSuperuser, u.ID)
		if err != nil {
			return domain.InternalError{Msg: "update user", Err: err}
		}
		return r.checkUpdated(res, u.ID)
	}

	res, err := r.db().Exec(`
		UPDATE users SET username=?, email=?, is_staff=?, is_superuser=? WHERE id=?`,
		u.Username, u.Email, u.IsStaff, u.IsSuperuser, u.ID)
	if err != nil {
		return domain.InternalError{Msg: "update user", Err: err}
	}
	return r.checkUpdated(res, u.ID)
}

// checkUpdated treats zero affected rows as missing only when the row truly
// is not there; a no-change update also reports zero.
func (r UserRepository) checkUpdated(res sql.Result, id int64) error {
	if n, _ := res.RowsAffected(); n == 0 {
		if exists, err := rowExists(r.db(), "users", "user", id); err != nil {
			return err
		} else if !exists {
			return domain.NotFoundError{Resource: "user"}
		}
	}
	return nil
}

func (r UserRepository) Delete(id int64) error {
	return deleteByID(r.db(), "users", "user", id)
}
