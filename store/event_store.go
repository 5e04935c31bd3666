// api/store/event_store.go
package store

import (
	"context"
	"fmt"
	"log"

	"sitebeacon/api/database"
	"sitebeacon/api/models"
)

type EventStore struct {
	DB *database.ClickHouseClient
}

func NewEventStore(chClient *database.ClickHouseClient) *EventStore {
	return &EventStore{DB: chClient}
}

// Save appends one fact row to the event table.
// Column order must exactly match the ClickHouse table schema.
func (s *EventStore) Save(ctx context.Context, event *models.Event) error {
	batch, err := s.DB.Conn.PrepareBatch(ctx, `
		INSERT INTO website_event (
			event_id, website_id, session_id, visit_id, created_at,
			url_path, url_query, referrer_path, referrer_query, referrer_domain,
			page_title, event_name, event_data, tag,
			hostname, browser, os, device, screen, language,
			country, subdivision1, subdivision2, city
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare event insert: %w", err)
	}

	err = batch.Append(
		event.EventID,
		event.WebsiteID,
		event.SessionID,
		event.VisitID,
		event.CreatedAt,
		event.URLPath,
		event.URLQuery,
		event.ReferrerPath,
		event.ReferrerQuery,
		event.ReferrerDomain,
		event.PageTitle,
		event.EventName,
		event.EventData,
		event.Tag,
		event.Hostname,
		event.Browser,
		event.OS,
		event.Device,
		event.Screen,
		event.Language,
		event.Country,
		event.Subdivision1,
		event.Subdivision2,
		event.City,
	)
	if err != nil {
		return fmt.Errorf("failed to append event to batch (EventID: %s): %w", event.EventID, err)
	}

	if err := batch.Send(); err != nil {
		return fmt.Errorf("failed to send event batch: %w", err)
	}

	log.Printf("Event saved: EventID=%s, WebsiteID=%s", event.EventID, event.WebsiteID)
	return nil
}
