package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
)

// IdentityStore persists session-scoped identification payloads. The row is
// keyed by (website_id, session_id); repeat identify beacons overwrite it.
type IdentityStore struct {
	db *sql.DB
}

func NewIdentityStore(db *sql.DB) *IdentityStore {
	return &IdentityStore{db: db}
}

func (s *IdentityStore) Save(ctx context.Context, websiteID, sessionID string, data json.RawMessage) error {
	query := `
		INSERT INTO session_data (website_id, session_id, data, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		ON CONFLICT (website_id, session_id)
		DO UPDATE SET data = EXCLUDED.data, updated_at = NOW();
	`
	_, err := s.db.ExecContext(ctx, query, websiteID, sessionID, []byte(data))
	if err != nil {
		return fmt.Errorf("failed to save session data: %w", err)
	}

	log.Printf("Session data saved: WebsiteID=%s, SessionID=%s", websiteID, sessionID)
	return nil
}
