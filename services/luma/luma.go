// Package luma proxies the Luma public calendar API for the events pages.
package luma

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"startup-directory-api/config"
	"startup-directory-api/models"
)

const (
	listEventsURL = "https://api.lu.ma/public/v1/calendar/list-events"

	// pageLimit caps a single calendar call. Events beyond the first
	// page are dropped.
	pageLimit = 50

	pastWindowMonths     = 18
	upcomingWindowMonths = 12
)

// HTTPClient is the transport shared by all Luma clients. Tests swap its
// transport to stub the provider.
var HTTPClient = &http.Client{Timeout: 30 * time.Second}

// Client talks to the Luma calendar API.
type Client struct {
	apiKey string
	http   *http.Client
}

// NewClient constructs a Client with the given API key.
func NewClient(apiKey string) *Client {
	return &Client{apiKey: apiKey, http: HTTPClient}
}

// FromEnv builds a client from environment configuration. Fails closed
// before any network call when the key is unset.
func FromEnv() (*Client, error) {
	if config.LumaAPIKey() == "" {
		return nil, errors.New("Luma API key is not configured")
	}
	return NewClient(config.LumaAPIKey()), nil
}

// PastWindow is the date range queried for the past events page.
func PastWindow(now time.Time) (after, before time.Time) {
	return now.AddDate(0, -pastWindowMonths, 0), now
}

// UpcomingWindow is the date range queried for the upcoming events page.
func UpcomingWindow(now time.Time) (after, before time.Time) {
	return now, now.AddDate(0, upcomingWindowMonths, 0)
}

// ListEvents calls the calendar API once for the given window.
func (c *Client) ListEvents(ctx context.Context, after, before time.Time) ([]models.LumaEntry, error) {
	query := url.Values{}
	query.Set("after", after.Format(time.RFC3339))
	query.Set("before", before.Format(time.RFC3339))
	query.Set("pagination_limit", fmt.Sprintf("%d", pageLimit))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, listEventsURL+"?"+query.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("x-luma-api-key", c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("luma list-events failed with status %d", resp.StatusCode)
	}

	var payload struct {
		Entries []models.LumaEntry `json:"entries"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("luma list-events: decoding response: %w", err)
	}
	return payload.Entries, nil
}

// FilterPast keeps events that started strictly before now. The server
// window should already guarantee this; the filter trims strays.
func FilterPast(entries []models.LumaEntry, now time.Time) []models.LumaEntry {
	out := make([]models.LumaEntry, 0, len(entries))
	for _, e := range entries {
		if e.Event.StartAt.Before(now) {
			out = append(out, e)
		}
	}
	return out
}

// FilterUpcoming keeps events starting at or after now. An event starting
// exactly now belongs here, not in the past list.
func FilterUpcoming(entries []models.LumaEntry, now time.Time) []models.LumaEntry {
	out := make([]models.LumaEntry, 0, len(entries))
	for _, e := range entries {
		if !e.Event.StartAt.Before(now) {
			out = append(out, e)
		}
	}
	return out
}
