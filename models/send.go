package models

import "encoding/json"

const (
	BeaconTypeEvent    = "event"
	BeaconTypeIdentify = "identify"
)

// SendPayload is the body of a tracking beacon. Field limits mirror the
// column widths of the event table; anything longer is rejected up front.
type SendPayload struct {
	Website   string          `json:"website" binding:"required,uuid"`
	Hostname  string          `json:"hostname" binding:"omitempty,max=100"`
	Screen    string          `json:"screen" binding:"omitempty,max=11"`
	Language  string          `json:"language" binding:"omitempty,max=35"`
	Title     string          `json:"title" binding:"omitempty,max=500"`
	URL       string          `json:"url" binding:"omitempty,max=500"`
	Referrer  string          `json:"referrer" binding:"omitempty,max=500"`
	Name      string          `json:"name" binding:"omitempty,max=50"`
	Tag       string          `json:"tag" binding:"omitempty,max=50"`
	IP        string          `json:"ip" binding:"omitempty,ip"`
	UserAgent string          `json:"userAgent"`
	Data      json.RawMessage `json:"data,omitempty"`
}

// SendRequest is the envelope the tracker script posts to /api/send.
type SendRequest struct {
	Type    string      `json:"type" binding:"required,oneof=event identify"`
	Payload SendPayload `json:"payload" binding:"required"`
}
