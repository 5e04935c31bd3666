package ingest

import (
	"strconv"
	"time"

	"sitebeacon/api/utils"
)

// visitWindowSeconds bounds a visit: activity more than 30 minutes after the
// visit started rolls over to a new visit. Visits are never closed
// explicitly, they lapse.
const visitWindowSeconds = 1800

// Visit is the resolved window for the current request.
type Visit struct {
	ID       string
	IssuedAt int64
}

// ResolveVisit decides whether the visit carried by the continuation cache is
// still active. No cache, or a cache older than the window, issues a fresh
// visit starting now; otherwise the cached visit is reused unchanged. The
// fresh id is derived from (sessionID, salt, start time), so concurrent
// requests starting a visit in the same second converge on the same id.
func ResolveVisit(cached *utils.CacheClaims, sessionID, salt string, now time.Time) Visit {
	if cached != nil && now.Unix()-cached.IssuedAt <= visitWindowSeconds {
		return Visit{ID: cached.VisitID, IssuedAt: cached.IssuedAt}
	}

	issuedAt := now.Unix()
	return Visit{
		ID:       utils.DeriveID(sessionID, salt, strconv.FormatInt(issuedAt, 10)),
		IssuedAt: issuedAt,
	}
}
