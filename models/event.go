package models

import "time"

// LumaEvent mirrors the fields of a Luma calendar event that the site renders.
type LumaEvent struct {
	APIID    string    `json:"api_id"`
	Name     string    `json:"name"`
	StartAt  time.Time `json:"start_at"`
	EndAt    time.Time `json:"end_at"`
	Timezone string    `json:"timezone,omitempty"`
	URL      string    `json:"url,omitempty"`
	CoverURL string    `json:"cover_url,omitempty"`
}

// LumaEntry is one element of the calendar listing response.
type LumaEntry struct {
	APIID string    `json:"api_id"`
	Event LumaEvent `json:"event"`
}

// ContactRequest is the payload of the public contact form.
type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Subject string `json:"subject"`
	Message string `json:"message" binding:"required"`
}
