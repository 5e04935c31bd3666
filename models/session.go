package models

import "time"

// Website is looked up only to confirm a beacon targets a registered site.
type Website struct {
	ID        string    `json:"id"`
	Domain    string    `json:"domain"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// Session represents one unique client against one website. The ID is a
// pure function of (websiteId, hostname, ip, userAgent), so the same client
// always resolves to the same row without a prior round trip.
type Session struct {
	ID           string    `json:"id"`
	WebsiteID    string    `json:"websiteId"`
	Hostname     string    `json:"hostname"`
	Browser      string    `json:"browser"`
	OS           string    `json:"os"`
	Device       string    `json:"device"`
	Screen       string    `json:"screen"`
	Language     string    `json:"language"`
	Country      string    `json:"country"`
	Subdivision1 string    `json:"subdivision1"`
	Subdivision2 string    `json:"subdivision2"`
	City         string    `json:"city"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ClientInfo is the resolved view of the calling client: transport-level
// address and user agent plus the coarse classification derived from them.
type ClientInfo struct {
	IP           string
	UserAgent    string
	Browser      string
	OS           string
	Device       string
	Country      string
	Subdivision1 string
	Subdivision2 string
	City         string
}
