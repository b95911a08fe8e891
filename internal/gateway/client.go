// Package gateway is the typed client for the /api/ surface. Every screen
// talks to the backend through it: JSON bodies both ways, bearer token
// injected from the session store, POST-created resources answered with 201.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"holidays/internal/domain/models"
	"holidays/internal/enquiry"
	"holidays/internal/session"
)

const (
	// GenericErrorMessage is shown when the server gave no usable detail.
	GenericErrorMessage = "An error occurred. Please try again later."
	// TransportErrorMessage is shown when no response arrived at all.
	TransportErrorMessage = "No response from server. Please check your connection."
)

// APIError is a non-2xx response reduced to what the UI shows.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string { return e.Message }

type Client struct {
	BaseURL string
	HTTP    *http.Client
	Store   session.Store
}

func New(baseURL string, store session.Store) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    &http.Client{Timeout: 20 * time.Second},
		Store:   store,
	}
}

// Login exchanges credentials for the token pair and persists the session
// triple in one write.
func (c *Client) Login(ctx context.Context, username, password string) (session.Session, error) {
	body := map[string]string{"username": username, "password": password}

	var out struct {
		Access  string          `json:"access"`
		Refresh string          `json:"refresh"`
		User    json.RawMessage `json:"user"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/token/", body, &out, http.StatusOK); err != nil {
		return session.Session{}, err
	}

	sess := session.Session{AccessToken: out.Access, RefreshToken: out.Refresh, User: out.User}
	if c.Store != nil {
		if err := c.Store.Save(sess); err != nil {
			return session.Session{}, err
		}
	}
	return sess, nil
}

// Refresh trades the stored refresh token for a new access token.
func (c *Client) Refresh(ctx context.Context) error {
	if c.Store == nil {
		return &APIError{Status: http.StatusUnauthorized, Message: "not logged in"}
	}
	sess, err := c.Store.Load()
	if err != nil || sess.RefreshToken == "" {
		return &APIError{Status: http.StatusUnauthorized, Message: "not logged in"}
	}

	var out struct {
		Access string `json:"access"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/token/refresh/", map[string]string{"refresh": sess.RefreshToken}, &out, http.StatusOK); err != nil {
		// A dead refresh token means the whole session is gone.
		_ = c.Store.Clear()
		return err
	}

	sess.AccessToken = out.Access
	return c.Store.Save(sess)
}

// Logout drops the stored session.
func (c *Client) Logout() error {
	if c.Store == nil {
		return nil
	}
	return c.Store.Clear()
}

func (c *Client) Packages(ctx context.Context) ([]models.HolidayPackage, error) {
	var out []models.HolidayPackage
	err := c.do(ctx, http.MethodGet, "/api/packages/", nil, &out, http.StatusOK)
	return out, err
}

func (c *Client) Package(ctx context.Context, id int64) (models.HolidayPackage, error) {
	var out models.HolidayPackage
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/packages/%d/", id), nil, &out, http.StatusOK)
	return out, err
}

func (c *Client) Destinations(ctx context.Context) ([]models.Destination, error) {
	var out []models.Destination
	err := c.do(ctx, http.MethodGet, "/api/destinations/", nil, &out, http.StatusOK)
	return out, err
}

func (c *Client) StartingCities(ctx context.Context) ([]models.StartingCity, error) {
	var out []models.StartingCity
	err := c.do(ctx, http.MethodGet, "/api/starting-cities/", nil, &out, http.StatusOK)
	return out, err
}

func (c *Client) Nationalities(ctx context.Context) ([]models.Nationality, error) {
	var out []models.Nationality
	err := c.do(ctx, http.MethodGet, "/api/nationalities/", nil, &out, http.StatusOK)
	return out, err
}

func (c *Client) UmrahDestinations(ctx context.Context) ([]models.UmrahDestination, error) {
	var out []models.UmrahDestination
	err := c.do(ctx, http.MethodGet, "/api/umrah-destinations/", nil, &out, http.StatusOK)
	return out, err
}

// Visas lists visa products, optionally narrowed to one country.
func (c *Client) Visas(ctx context.Context, country string) ([]models.Visa, error) {
	path := "/api/visas/"
	if country != "" {
		path += "?country=" + url.QueryEscape(country)
	}
	var out []models.Visa
	err := c.do(ctx, http.MethodGet, path, nil, &out, http.StatusOK)
	return out, err
}

// SubmitEnquiry implements enquiry.Submitter.
func (c *Client) SubmitEnquiry(ctx context.Context, variant enquiry.Variant, payload enquiry.Payload) error {
	path := "/api/holiday-form/"
	if variant == enquiry.VariantUmrah {
		path = "/api/umrah-form/"
	}
	return c.do(ctx, http.MethodPost, path, payload, nil, http.StatusCreated)
}

// SubmitSimpleEnquiry posts the short General/Cab/Cruise form.
func (c *Client) SubmitSimpleEnquiry(ctx context.Context, e models.Enquiry) error {
	return c.do(ctx, http.MethodPost, "/api/enquiry-form/", e, nil, http.StatusCreated)
}

// SendVisaDetails asks the server to relay a visa summary by email.
func (c *Client) SendVisaDetails(ctx context.Context, email, subject, body string) error {
	payload := map[string]string{"email": email, "subject": subject, "body": body}
	return c.do(ctx, http.MethodPost, "/api/send-visa-details/", payload, nil, http.StatusOK)
}

func (c *Client) do(ctx context.Context, method, path string, in, out any, want int) error {
	var body *bytes.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(data)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.Store != nil {
		if sess, err := c.Store.Load(); err == nil && sess.AccessToken != "" {
			req.Header.Set("Authorization", "Bearer "+sess.AccessToken)
		}
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return &APIError{Message: TransportErrorMessage}
	}
	defer resp.Body.Close()

	if resp.StatusCode != want {
		var raw json.RawMessage
		_ = json.NewDecoder(resp.Body).Decode(&raw)
		return &APIError{Status: resp.StatusCode, Message: ExtractMessage(raw)}
	}

	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}
