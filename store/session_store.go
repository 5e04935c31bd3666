package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/lib/pq"

	"sitebeacon/api/models"
)

// SessionStore is the relational session store. Session ids are derived from
// the client identity, so creation races are routine: the unique constraint
// on the primary key is the arbitration mechanism and a duplicate insert is
// surfaced as the typed ErrSessionExists, never as a generic failure.
type SessionStore struct {
	db *sql.DB
}

// NewSessionStore creates a new SessionStore instance.
func NewSessionStore(db *sql.DB) *SessionStore {
	return &SessionStore{db: db}
}

// SupportsEagerSessionCreation reports that this store persists sessions as
// their own rows, so the pipeline must create them before saving events.
func (s *SessionStore) SupportsEagerSessionCreation() bool {
	return true
}

// Find looks up a session by website and derived session id.
func (s *SessionStore) Find(ctx context.Context, websiteID, sessionID string) (*models.Session, error) {
	session := &models.Session{}
	query := `
		SELECT id, website_id, hostname, browser, os, device, screen, language,
		       country, subdivision1, subdivision2, city, created_at
		FROM session
		WHERE website_id = $1 AND id = $2;
	`
	err := s.db.QueryRowContext(ctx, query, websiteID, sessionID).Scan(
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
		if err == sql.ErrNoRows {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to find session: %w", err)
	}

	return session, nil
}

// Create inserts a new session row. A unique-constraint violation means a
// concurrent request won the insert race and is reported as ErrSessionExists;
// every other failure is fatal to the caller.
func (s *SessionStore) Create(ctx context.Context, session *models.Session) error {
	query := `
		INSERT INTO session (
			id, website_id, hostname, browser, os, device, screen, language,
			country, subdivision1, subdivision2, city
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := s.db.ExecContext(ctx, query,
		session.ID,
		session.WebsiteID,
		session.Hostname,
		session.Browser,
		session.OS,
		session.Device,
		session.Screen,
		session.Language,
		session.Country,
		session.Subdivision1,
		session.Subdivision2,
		session.City,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrSessionExists
		}
		return fmt.Errorf("failed to create session: %w", err)
	}

	log.Printf("Session created in DB: ID=%s, WebsiteID=%s", session.ID, session.WebsiteID)
	return nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	// Fallback for drivers that only surface the message text.
	return strings.Contains(err.Error(), "unique constraint")
}
