package ingest

import (
	"net/http"
	"strings"

	"sitebeacon/api/models"
)

// RequestMeta is the transport-side information the pipeline needs from a
// request: the resolved client address, the raw user agent, the continuation
// cache header, and the remaining headers for geo hints.
type RequestMeta struct {
	IP         string
	UserAgent  string
	CacheToken string
	Headers    http.Header
}

// ClientResolver turns a request plus its payload into the resolved client
// view. Implementations may consult user-agent or geo databases; the
// pipeline treats them as opaque.
type ClientResolver interface {
	Resolve(meta RequestMeta, payload *models.SendPayload) models.ClientInfo
}

// HeaderClientResolver resolves the client from the transport metadata and
// edge-proxy geo headers, honoring payload-supplied ip/userAgent overrides
// (used by server-side tracking clients).
type HeaderClientResolver struct{}

func (HeaderClientResolver) Resolve(meta RequestMeta, payload *models.SendPayload) models.ClientInfo {
	info := models.ClientInfo{
		IP:        meta.IP,
		UserAgent: meta.UserAgent,
	}
	if payload.IP != "" {
		info.IP = payload.IP
	}
	if payload.UserAgent != "" {
		info.UserAgent = payload.UserAgent
	}

	info.Browser = classifyBrowser(info.UserAgent)
	info.OS = classifyOS(info.UserAgent)
	info.Device = classifyDevice(info.UserAgent)

	if meta.Headers != nil {
		info.Country = meta.Headers.Get("cf-ipcountry")
		info.Subdivision1 = meta.Headers.Get("x-geo-subdivision1")
		info.Subdivision2 = meta.Headers.Get("x-geo-subdivision2")
		info.City = meta.Headers.Get("x-geo-city")
	}

	return info
}

func classifyBrowser(ua string) string {
	switch {
	case strings.Contains(ua, "Edg/"):
		return "edge"
	case strings.Contains(ua, "OPR/") || strings.Contains(ua, "Opera"):
		return "opera"
	case strings.Contains(ua, "Chrome/"):
		return "chrome"
	case strings.Contains(ua, "Firefox/"):
		return "firefox"
	case strings.Contains(ua, "Safari/"):
		return "safari"
	default:
		return ""
	}
}

func classifyOS(ua string) string {
	switch {
	case strings.Contains(ua, "Windows"):
		return "Windows"
	case strings.Contains(ua, "Android"):
		return "Android"
	case strings.Contains(ua, "iPhone") || strings.Contains(ua, "iPad"):
		return "iOS"
	case strings.Contains(ua, "Mac OS X"):
		return "macOS"
	case strings.Contains(ua, "Linux"):
		return "Linux"
	default:
		return ""
	}
}

func classifyDevice(ua string) string {
	switch {
	case strings.Contains(ua, "iPad") || strings.Contains(ua, "Tablet"):
		return "tablet"
	case strings.Contains(ua, "Mobi") || strings.Contains(ua, "Android") || strings.Contains(ua, "iPhone"):
		return "mobile"
	default:
		return "desktop"
	}
}
