package store

import (
	"context"
	"fmt"

	"sitebeacon/api/database"
	"sitebeacon/api/models"
)

// ClickHouseSessionStore backs session resolution with the analytic event
// table. ClickHouse has no unique constraints, so sessions are never written
// eagerly; their existence is implied by the event rows that carry them.
type ClickHouseSessionStore struct {
	DB *database.ClickHouseClient
}

func NewClickHouseSessionStore(chClient *database.ClickHouseClient) *ClickHouseSessionStore {
	return &ClickHouseSessionStore{DB: chClient}
}

// SupportsEagerSessionCreation reports false: the pipeline skips the
// find/create step entirely and lets the event insert carry the session.
func (s *ClickHouseSessionStore) SupportsEagerSessionCreation() bool {
	return false
}

// Find reconstructs a session from its most recent event row.
func (s *ClickHouseSessionStore) Find(ctx context.Context, websiteID, sessionID string) (*models.Session, error) {
	session := &models.Session{}
	query := `
		SELECT session_id, website_id, hostname, browser, os, device, screen, language,
		       country, subdivision1, subdivision2, city, created_at
		FROM website_event
		WHERE website_id = ? AND session_id = ?
		ORDER BY created_at DESC
		LIMIT 1
	`
	err := s.DB.Conn.QueryRow(ctx, query, websiteID, sessionID).Scan(
		&session.ID,
		&session.WebsiteID,
		&session.Hostname,
		&session.Browser,
		&session.OS,
		&session.Device,
		&session.Screen,
		&session.Language,
		&session.Country,
		&session.Subdivision1,
		&session.Subdivision2,
		&session.City,
		&session.CreatedAt,
	)
	if err != nil {
		if err.Error() == "sql: no rows in result set" {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to find session in event table: %w", err)
	}

	return session, nil
}

// Create is a no-op; callers never reach it because the store reports no
// eager-creation support.
func (s *ClickHouseSessionStore) Create(ctx context.Context, session *models.Session) error {
	return nil
}
