// api/models/event.go
package models

import (
	"encoding/json"
	"time"
)

// Event is one denormalized fact row per accepted pageview or custom event.
// Rows are append-only; nothing in the API mutates or deletes them.
type Event struct {
	EventID        string          `json:"eventId"`
	WebsiteID      string          `json:"websiteId"`
	SessionID      string          `json:"sessionId"`
	VisitID        string          `json:"visitId"`
	CreatedAt      time.Time       `json:"createdAt"`
	URLPath        string          `json:"urlPath"`
	URLQuery       string          `json:"urlQuery"`
	ReferrerPath   string          `json:"referrerPath"`
	ReferrerQuery  string          `json:"referrerQuery"`
	ReferrerDomain string          `json:"referrerDomain"`
	PageTitle      string          `json:"pageTitle"`
	EventName      string          `json:"eventName"`
	EventData      json.RawMessage `json:"eventData,omitempty"`
	Tag            string          `json:"tag,omitempty"`

	// Session attributes denormalized onto the row so the analytic store
	// can answer visitor questions without a join.
	Hostname     string `json:"hostname"`
	Browser      string `json:"browser"`
	OS           string `json:"os"`
	Device       string `json:"device"`
	Screen       string `json:"screen"`
	Language     string `json:"language"`
	Country      string `json:"country"`
	Subdivision1 string `json:"subdivision1"`
	Subdivision2 string `json:"subdivision2"`
	City         string `json:"city"`
}
