// api/ingest/service.go
package ingest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"sitebeacon/api/models"
	"sitebeacon/api/store"
	"sitebeacon/api/utils"
)

// WebsiteFinder confirms a beacon targets a registered website.
type WebsiteFinder interface {
	Find(ctx context.Context, websiteID string) (*models.Website, error)
}

// SessionStore resolves and creates visitor sessions. Stores that derive
// session existence from event data (the analytic store) report false from
// SupportsEagerSessionCreation and the pipeline skips the find/create step.
type SessionStore interface {
	SupportsEagerSessionCreation() bool
	Find(ctx context.Context, websiteID, sessionID string) (*models.Session, error)
	Create(ctx context.Context, session *models.Session) error
}

// EventStore persists one fact row per accepted event beacon.
type EventStore interface {
	Save(ctx context.Context, event *models.Event) error
}

// IdentityStore persists session-scoped identification payloads.
type IdentityStore interface {
	Save(ctx context.Context, websiteID, sessionID string, data json.RawMessage) error
}

// Config holds the process-wide pipeline settings, read once at startup.
// Rotating Secret invalidates all outstanding continuation tokens; clients
// silently re-resolve on their next beacon.
type Config struct {
	Secret              []byte
	VisitSalt           string
	DisableBotCheck     bool
	RemoveTrailingSlash bool
}

// Service is the ingestion pipeline for /api/send beacons. Each request is
// handled statelessly; the only cross-request contention is the session
// insert race, which the session store arbitrates.
type Service struct {
	cfg        Config
	websites   WebsiteFinder
	sessions   SessionStore
	events     EventStore
	identities IdentityStore
	bots       BotClassifier
	blockList  BlockList
	clients    ClientResolver
	now        func() time.Time
}

func NewService(
	cfg Config,
	websites WebsiteFinder,
	sessions SessionStore,
	events EventStore,
	identities IdentityStore,
	bots BotClassifier,
	blockList BlockList,
	clients ClientResolver,
) *Service {
	return &Service{
		cfg:        cfg,
		websites:   websites,
		sessions:   sessions,
		events:     events,
		identities: identities,
		bots:       bots,
		blockList:  blockList,
		clients:    clients,
		now:        time.Now,
	}
}

// Result is the terminal outcome of an accepted beacon. Bot responses carry
// no token; everything else carries the continuation cache for the client to
// echo on its next request.
type Result struct {
	Bot   bool
	Token string
}

// resolution is the per-request view of what the continuation cache already
// proved. It is computed once after decode; later steps read it instead of
// re-inspecting the token.
type resolution struct {
	cached  *utils.CacheClaims
	trusted bool
}

// HandleSend runs one beacon through the pipeline. Side effects are confined
// to session creation and the single event/identity write; every earlier
// step can abort without anything persisted.
func (s *Service) HandleSend(ctx context.Context, req *models.SendRequest, meta RequestMeta) (*Result, error) {
	payload := &req.Payload

	userAgent := meta.UserAgent
	if payload.UserAgent != "" {
		userAgent = payload.UserAgent
	}
	if !s.cfg.DisableBotCheck && s.bots.IsBot(userAgent) {
		return &Result{Bot: true}, nil
	}

	// The cache is only trusted for the website it was issued for; a token
	// replayed against a different website id falls through to full lookup.
	res := resolution{}
	if cached := utils.DecodeCache(meta.CacheToken, s.cfg.Secret); cached != nil && cached.WebsiteID == payload.Website {
		res.cached = cached
		res.trusted = true
	}

	if !res.trusted {
		if _, err := s.websites.Find(ctx, payload.Website); err != nil {
			return nil, err
		}
	}

	info := s.clients.Resolve(meta, payload)

	if s.blockList.IsBlocked(info.IP) {
		return nil, ErrAccessDenied
	}

	sessionID := utils.DeriveID(payload.Website, payload.Hostname, info.IP, info.UserAgent)

	session := &models.Session{
		ID:           sessionID,
		WebsiteID:    payload.Website,
		Hostname:     payload.Hostname,
		Browser:      info.Browser,
		OS:           info.OS,
		Device:       info.Device,
		Screen:       payload.Screen,
		Language:     payload.Language,
		Country:      info.Country,
		Subdivision1: info.Subdivision1,
		Subdivision2: info.Subdivision2,
		City:         info.City,
	}

	if !res.trusted {
		existing, err := s.sessions.Find(ctx, payload.Website, sessionID)
		switch {
		case err == nil:
			// Session attributes are fixed at creation; prefer the stored
			// row over what this request resolved.
			session = existing
		case errors.Is(err, store.ErrSessionNotFound):
			if s.sessions.SupportsEagerSessionCreation() {
				createErr := s.sessions.Create(ctx, session)
				if errors.Is(createErr, store.ErrSessionExists) {
					// Lost the insert race to a concurrent beacon from the
					// same client; the row exists, which is all we need.
					log.Printf("Concurrent session create tolerated: SessionID=%s", sessionID)
				} else if createErr != nil {
					return nil, fmt.Errorf("session create failed: %w", createErr)
				}
			}
		default:
			return nil, fmt.Errorf("session lookup failed: %w", err)
		}
	}

	visit := ResolveVisit(res.cached, sessionID, s.cfg.VisitSalt, s.now())

	switch req.Type {
	case models.BeaconTypeIdentify:
		if len(payload.Data) == 0 || string(payload.Data) == "null" {
			return nil, ErrMissingIdentityData
		}
		if err := s.identities.Save(ctx, payload.Website, sessionID, payload.Data); err != nil {
			return nil, fmt.Errorf("identity save failed: %w", err)
		}
	default:
		page := NormalizePage(payload.URL, payload.Referrer, s.cfg.RemoveTrailingSlash)
		event := &models.Event{
			EventID:        uuid.New().String(),
			WebsiteID:      payload.Website,
			SessionID:      sessionID,
			VisitID:        visit.ID,
			CreatedAt:      s.now().UTC(),
			URLPath:        page.URLPath,
			URLQuery:       page.URLQuery,
			ReferrerPath:   page.ReferrerPath,
			ReferrerQuery:  page.ReferrerQuery,
			ReferrerDomain: page.ReferrerDomain,
			PageTitle:      payload.Title,
			EventName:      payload.Name,
			EventData:      payload.Data,
			Tag:            payload.Tag,
			Hostname:       session.Hostname,
			Browser:        session.Browser,
			OS:             session.OS,
			Device:         session.Device,
			Screen:         session.Screen,
			Language:       session.Language,
			Country:        session.Country,
			Subdivision1:   session.Subdivision1,
			Subdivision2:   session.Subdivision2,
			City:           session.City,
		}
		if err := s.events.Save(ctx, event); err != nil {
			return nil, fmt.Errorf("event save failed: %w", err)
		}
	}

	token, err := utils.EncodeCache(&utils.CacheClaims{
		WebsiteID: payload.Website,
		SessionID: sessionID,
		VisitID:   visit.ID,
		IssuedAt:  visit.IssuedAt,
	}, s.cfg.Secret)
	if err != nil {
		return nil, fmt.Errorf("cache token encode failed: %w", err)
	}

	return &Result{Token: token}, nil
}
