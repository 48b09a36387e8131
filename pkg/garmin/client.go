// Package garmin consumes the two Garmin Connect read operations this tool
// needs: a day's sleep summary and a day's activity list.
package garmin

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const (
	// DefaultBaseURL is the Garmin Connect API gateway.
	DefaultBaseURL = "https://connectapi.garmin.com"

	// DefaultTimeout is the HTTP request timeout for every call.
	DefaultTimeout = 30 * time.Second
)

// ErrUnexpectedShape reports a response that decoded but did not carry the
// container the contract promises.
var ErrUnexpectedShape = errors.New("unexpected response shape")

// Service is the read surface the rest of the tool depends on. The HTTP
// client implements it; tests and the offline cache substitute it.
type Service interface {
	SleepData(ctx context.Context, date string) (DailySleep, error)
	Activities(ctx context.Context, date string) ([]Activity, error)
}

// Client talks to Garmin Connect over HTTP. The session is established
// lazily on the first call so constructing a Client never touches the
// network.
type Client struct {
	// BaseURL may be overridden before the first call, mainly for tests.
	BaseURL string

	HTTPClient *http.Client

	email    string
	password string

	token       string
	displayName string
}

// NewClient returns a Client authenticating with the given credentials.
func NewClient(email, password string) *Client {
	return &Client{
		BaseURL:    DefaultBaseURL,
		HTTPClient: &http.Client{Timeout: DefaultTimeout},
		email:      email,
		password:   password,
	}
}

// ensureSession exchanges credentials for a bearer token if not already done.
func (c *Client) ensureSession(ctx context.Context) error {
	if c.token != "" {
		return nil
	}

	body, err := json.Marshal(map[string]string{
		"email":    c.email,
		"password": c.password,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/auth/login", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("login: authentication failed (status %d)", resp.StatusCode)
	}

	var session struct {
		Token       string `json:"token"`
		DisplayName string `json:"displayName"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		return fmt.Errorf("login: decode session: %w", err)
	}
	if session.Token == "" {
		return errors.New("login: no token in response")
	}

	c.token = session.Token
	c.displayName = session.DisplayName
	return nil
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, target interface{}) error {
	if err := c.ensureSession(ctx); err != nil {
		return err
	}

	u := c.BaseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
		return fmt.Errorf("GET %s: status %d: %s", path, resp.StatusCode, bytes.TrimSpace(snippet))
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return fmt.Errorf("GET %s: decode: %w", path, err)
	}
	return nil
}

// SleepData fetches the sleep summary for the canonical date. A day with no
// recorded sleep decodes to the zero DailySleep.
func (c *Client) SleepData(ctx context.Context, date string) (DailySleep, error) {
	if err := c.ensureSession(ctx); err != nil {
		return DailySleep{}, err
	}

	var env sleepEnvelope
	q := url.Values{"date": {date}, "nonSleepBufferMinutes": {"60"}}
	path := "/wellness-service/wellness/dailySleepData/" + url.PathEscape(c.displayName)
	if err := c.getJSON(ctx, path, q, &env); err != nil {
		return DailySleep{}, fmt.Errorf("fetch sleep data: %w", err)
	}
	return env.DailySleepDTO, nil
}

// Activities fetches the day's activity list. An absent ActivitiesForDay
// container is a contract violation, not an empty day, and is surfaced as
// an error.
func (c *Client) Activities(ctx context.Context, date string) ([]Activity, error) {
	var env activitiesEnvelope
	q := url.Values{"calendarDate": {date}}
	if err := c.getJSON(ctx, "/mobile-gateway/activity/activitiesForDate", q, &env); err != nil {
		return nil, fmt.Errorf("fetch activities: %w", err)
	}
	if env.ActivitiesForDay == nil {
		return nil, fmt.Errorf("fetch activities: %w: missing ActivitiesForDay", ErrUnexpectedShape)
	}
	return env.ActivitiesForDay.Payload, nil
}
