package configs

import "time"

// Ads configures the click accounting behaviour. The dedup window bounds
// repeat billing from the same visitor against the same campaign; the
// visitor cookie identifies anonymous browsers across clicks.
type Ads struct {
	// DedupWindow is the trailing period within which repeat clicks from
	// one visitor are not re-billed.
	DedupWindow time.Duration `env:"DEDUP_WINDOW" envDefault:"24h"`
	// VisitorCookie is the name of the anonymous visitor-token cookie.
	VisitorCookie string `env:"VISITOR_COOKIE" envDefault:"vendora_vid"`
	// VisitorCookieMaxAge is the lifetime of a minted visitor cookie.
	VisitorCookieMaxAge time.Duration `env:"VISITOR_COOKIE_MAX_AGE" envDefault:"8760h"`
}
