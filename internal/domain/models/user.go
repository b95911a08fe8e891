package models

// User is an admin back-office account. Only staff may log in.
type User struct {
	ID          int64  `json:"id"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	IsStaff     bool   `json:"is_staff"`
	IsSuperuser bool   `json:"is_superuser"`
	CreatedAt   string `json:"created_at,omitempty"`
}
