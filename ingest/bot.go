package ingest

import "strings"

// BotClassifier decides whether a user agent belongs to an automated client.
type BotClassifier interface {
	IsBot(userAgent string) bool
}

var botFragments = []string{
	"bot",
	"spider",
	"crawl",
	"headless",
	"lighthouse",
	"slurp",
	"preview",
	"python-requests",
	"curl/",
	"wget/",
}

// UserAgentBotClassifier matches well-known crawler fragments in the user
// agent string. An empty user agent is treated as a bot: real browsers
// always send one.
type UserAgentBotClassifier struct{}

func (UserAgentBotClassifier) IsBot(userAgent string) bool {
	if userAgent == "" {
		return true
	}
	ua := strings.ToLower(userAgent)
	for _, fragment := range botFragments {
		if strings.Contains(ua, fragment) {
			return true
		}
	}
	return false
}

// BlockList answers whether a resolved client address is denied.
type BlockList interface {
	IsBlocked(ip string) bool
}

// IPBlockList is a static deny list loaded from configuration.
type IPBlockList struct {
	ips map[string]struct{}
}

// NewIPBlockList parses a comma-separated address list (the IGNORE_IP
// setting). Whitespace around entries is ignored.
func NewIPBlockList(list string) *IPBlockList {
	b := &IPBlockList{ips: make(map[string]struct{})}
	for _, entry := range strings.Split(list, ",") {
		entry = strings.TrimSpace(entry)
		if entry != "" {
			b.ips[entry] = struct{}{}
		}
	}
	return b
}

func (b *IPBlockList) IsBlocked(ip string) bool {
	_, blocked := b.ips[ip]
	return blocked
}
