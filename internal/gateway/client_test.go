package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"holidays/internal/domain/models"
	"holidays/internal/enquiry"
	"holidays/internal/session"
)

func TestExtractMessageShapes(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{"detail string", `{"detail":"Authentication credentials were not provided."}`, "Authentication credentials were not provided."},
		{"field message list", `{"email":["Enter a valid email."]}`, "Enter a valid email."},
		{"several fields first key wins", `{"phone":["Too short."],"email":["Enter a valid email."]}`, "Enter a valid email."},
		{"field plain string", `{"travel_date":"This field is required."}`, "This field is required."},
		{"empty body", ``, GenericErrorMessage},
		{"unexpected shape", `["boom"]`, GenericErrorMessage},
	}

	for _, tc := range cases {
		if got := ExtractMessage(json.RawMessage(tc.body)); got != tc.want {
			t.Fatalf("%s: got %q want %q", tc.name, got, tc.want)
		}
	}
}

func TestSubmitEnquiryValidationError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/holiday-form/" || r.Method != http.MethodPost {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"email": ["Enter a valid email."]}`))
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	err := c.SubmitEnquiry(context.Background(), enquiry.VariantHoliday, enquiry.Payload{})

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.Status != http.StatusBadRequest || apiErr.Message != "Enter a valid email." {
		t.Fatalf("got status=%d message=%q", apiErr.Status, apiErr.Message)
	}
}

func TestSubmitEnquiryCreated(t *testing.T) {
	var got enquiry.Payload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode payload: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":12}`))
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	err := c.SubmitEnquiry(context.Background(), enquiry.VariantUmrah, enquiry.Payload{StartCity: "Hyderabad", Adults: 2})
	if err != nil {
		t.Fatalf("expected success on 201, got %v", err)
	}
	if got.StartCity != "Hyderabad" {
		t.Fatalf("payload not delivered, got %+v", got)
	}
}

func TestTransportErrorMessage(t *testing.T) {
	c := New("http://127.0.0.1:1", nil) // nothing listens here
	err := c.SubmitSimpleEnquiry(context.Background(), models.Enquiry{Name: "A", Phone: "1234567890", EnquiryType: "General"})

	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.Message != TransportErrorMessage {
		t.Fatalf("expected transport error message, got %v", err)
	}
}

func TestLoginStoresSessionTriple(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/token/" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"access":"a.b.c","refresh":"d.e.f","user":{"id":1,"username":"admin"}}`))
	}))
	defer srv.Close()

	store := &session.MemStore{}
	c := New(srv.URL, store)

	sess, err := c.Login(context.Background(), "admin", "pw")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if sess.AccessToken != "a.b.c" || sess.RefreshToken != "d.e.f" {
		t.Fatalf("token pair not returned: %+v", sess)
	}

	stored, _ := store.Load()
	if stored.AccessToken != "a.b.c" || stored.RefreshToken != "d.e.f" || len(stored.User) == 0 {
		t.Fatalf("session triple not persisted as a unit: %+v", stored)
	}
}

func TestBearerInjection(t *testing.T) {
	var auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	store := &session.MemStore{}
	_ = store.Save(session.Session{AccessToken: "tok", RefreshToken: "r"})

	c := New(srv.URL, store)
	if _, err := c.Packages(context.Background()); err != nil {
		t.Fatalf("packages: %v", err)
	}
	if auth != "Bearer tok" {
		t.Fatalf("bearer header not injected, got %q", auth)
	}
}

func TestRefreshFailureClearsSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail":"Token is invalid or expired"}`))
	}))
	defer srv.Close()

	store := &session.MemStore{}
	_ = store.Save(session.Session{AccessToken: "old", RefreshToken: "dead"})

	c := New(srv.URL, store)
	if err := c.Refresh(context.Background()); err == nil {
		t.Fatalf("expected refresh to fail")
	}

	left, _ := store.Load()
	if !left.Empty() {
		t.Fatalf("failed refresh should purge the session, got %+v", left)
	}
}
