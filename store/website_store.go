package store

import (
	"context"
	"database/sql"
	"fmt"

	"sitebeacon/api/models"
)

type WebsiteStore struct {
	db *sql.DB
}

// NewWebsiteStore creates a new WebsiteStore instance.
func NewWebsiteStore(db *sql.DB) *WebsiteStore {
	return &WebsiteStore{db: db}
}

// Find looks up a website by id. A miss returns ErrWebsiteNotFound.
func (s *WebsiteStore) Find(ctx context.Context, websiteID string) (*models.Website, error) {
	website := &models.Website{}
	query := `
		SELECT id, domain, name, created_at
		FROM website
		WHERE id = $1;
	`
	err := s.db.QueryRowContext(ctx, query, websiteID).Scan(
		&website.ID,
		&website.Domain,
		&website.Name,
		&website.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrWebsiteNotFound
		}
		return nil, fmt.Errorf("failed to find website: %w", err)
	}

	return website, nil
}
