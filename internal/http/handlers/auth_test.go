package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"holidays/internal/auth"
	intconfig "holidays/internal/config"
)

func authManager() auth.Manager {
	return auth.Manager{Secret: []byte("test"), AccessTTL: time.Minute, RefreshTTL: time.Hour}
}

func TestObtainTokenSuccess(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	intconfig.DB = db
	defer func() { intconfig.DB = nil }()

	hash, _ := bcrypt.GenerateFromPassword([]byte("pw-123456"), bcrypt.MinCost)
	mock.ExpectQuery("FROM users WHERE username=\\?").WithArgs("admin").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "email", "password_hash", "is_staff", "is_superuser", "created_at"}).
			AddRow(1, "admin", "admin@example.com", string(hash), 1, 1, ""))

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/token/", ObtainToken(authManager()))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/token/", strings.NewReader(`{"username":"admin","password":"pw-123456"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body=%s", w.Code, w.Body.String())
	}
	var resp struct {
		Access  string          `json:"access"`
		Refresh string          `json:"refresh"`
		User    json.RawMessage `json:"user"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Access == "" || resp.Refresh == "" || len(resp.User) == 0 {
		t.Fatalf("incomplete login response: %s", w.Body.String())
	}
	if _, err := authManager().Verify(resp.Access); err != nil {
		t.Fatalf("issued access token does not verify: %v", err)
	}
}

func TestObtainTokenWrongPassword(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	intconfig.DB = db
	defer func() { intconfig.DB = nil }()

	hash, _ := bcrypt.GenerateFromPassword([]byte("pw-123456"), bcrypt.MinCost)
	mock.ExpectQuery("FROM users WHERE username=\\?").WithArgs("admin").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "email", "password_hash", "is_staff", "is_superuser", "created_at"}).
			AddRow(1, "admin", "admin@example.com", string(hash), 1, 1, ""))

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/token/", ObtainToken(authManager()))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/token/", strings.NewReader(`{"username":"admin","password":"nope"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
	if !strings.Contains(w.Body.String(), "No active account found with the given credentials") {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestRefreshTokenRejectsAccessToken(t *testing.T) {
	m := authManager()
	pair, err := m.Mint(1, "admin", true)
	if err != nil {
		t.Fatalf("mint: %v", err)
	}

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/token/refresh/", RefreshToken(m))

	// An access token must not pass for a refresh token.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/token/refresh/", strings.NewReader(`{"refresh":"`+pair.Access+`"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401, body=%s", w.Code, w.Body.String())
	}
}

func TestRefreshTokenIssuesNewAccess(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	intconfig.DB = db
	defer func() { intconfig.DB = nil }()

	mock.ExpectQuery("FROM users WHERE id=\\?").WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "email", "is_staff", "is_superuser", "created_at"}).
			AddRow(1, "admin", "admin@example.com", 1, 1, ""))

	m := authManager()
	pair, err := m.Mint(1, "admin", true)
	if err != nil {
		t.Fatalf("mint: %v", err)
	}

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/token/refresh/", RefreshToken(m))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/token/refresh/", strings.NewReader(`{"refresh":"`+pair.Refresh+`"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body=%s", w.Code, w.Body.String())
	}
	var resp struct {
		Access string `json:"access"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil || resp.Access == "" {
		t.Fatalf("no access token in response: %s", w.Body.String())
	}
}
