package models

import "strings"

type Trend string

const (
	TrendUp   Trend = "up"
	TrendDown Trend = "down"
	TrendFlat Trend = "flat"
)

// ParseTrend maps the free-form label produced by the source to a trend
// direction.
func ParseTrend(label string) Trend {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "high", "up":
		return TrendUp
	case "low", "down":
		return TrendDown
	default:
		return TrendFlat
	}
}

type LeaderboardEntry struct {
	Rank           int    `json:"rank"`
	Name           string `json:"name"`
	Image          string `json:"image,omitempty"`
	Category       string `json:"category"`
	TrustScore     int    `json:"trust_score"`
	Trend          Trend  `json:"trend"`
	TrendLabel     string `json:"trend_label"`
	Followers      string `json:"followers"`
	VerifiedClaims int    `json:"verified_claims"`
}

type Claim struct {
	VerificationStatus string `json:"verification_status"`
	CreatedAt          string `json:"created_at"`
	Text               string `json:"claim"`
	SourceURL          string `json:"claim_source"`
	TrustScore         int    `json:"trust_score"`
	Analysis           string `json:"analysis"`
	ResearchURL        string `json:"research_source"`
	Category           string `json:"category"`
}

// StatCard is a single headline figure shown above a leaderboard or profile.
type StatCard struct {
	ID          string `json:"id"`
	Title       string `json:"title,omitempty"`
	Value       string `json:"value"`
	Description string `json:"description"`
}

type Leaderboard struct {
	Stats       []StatCard         `json:"stats"`
	Influencers []LeaderboardEntry `json:"influencers"`
}

type InfluencerProfile struct {
	Name         string     `json:"name"`
	Image        string     `json:"image,omitempty"`
	Bio          string     `json:"bio"`
	Categories   []string   `json:"categories"`
	Claims       []Claim    `json:"claims"`
	Products     []string   `json:"products"`
	Stats        []StatCard `json:"stats"`
	Monetization string     `json:"monetization"`
}

// Empty reports whether the profile carries nothing worth rendering.
func (p *InfluencerProfile) Empty() bool {
	return p == nil || strings.TrimSpace(p.Name) == ""
}

// Stat card IDs.
const (
	StatActiveInfluencers = "active-influencers"
	StatVerifiedClaims    = "verified-claims"
	StatAverageTrust      = "average-trust-score"
	StatTrustScore        = "trust-score"
	StatYearlyRevenue     = "yearly-revenue"
	StatProducts          = "products"
	StatFollowers         = "followers"
)
