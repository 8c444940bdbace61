package source

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// number accepts a JSON number or a numeric string such as "87" or "87%".
// Anything else decodes as zero. It stays a float until clamped.
type number float64

func (n *number) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		*n = 0
		return nil
	}
	var s string
	if b[0] == '"' {
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
	} else {
		s = string(b)
	}
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "%"))
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		*n = 0
		return nil
	}
	*n = number(math.Round(f))
	return nil
}

// text accepts a JSON string or number; the model is not consistent about
// display values such as follower counts.
type text string

func (t *text) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		*t = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*t = text(s)
		return nil
	}
	*t = text(b)
	return nil
}

type leaderboardResponse struct {
	ActiveInfluencers        text              `json:"active_influencers"`
	OverallVerifiedClaims    text              `json:"overall_verified_claims"`
	OverallAverageTrustScore text              `json:"overall_average_trust_score"`
	Influencers              []influencerEntry `json:"influencers"`
}

type influencerEntry struct {
	Rank      number `json:"rank"`
	Name      text   `json:"name"`
	Image     text   `json:"image"`
	Category  text   `json:"category"`
	Trust     number `json:"trust"`
	Trend     text   `json:"trend"`
	Followers text   `json:"followers"`
	Claims    number `json:"claims"`
}

type statValue struct {
	Value       text `json:"value"`
	Description text `json:"description"`
}

type influencerResponse struct {
	Image      text        `json:"image"`
	Name       text        `json:"name"`
	Categories []text      `json:"categories"`
	Bio        text        `json:"bio"`
	Trust      statValue   `json:"trust"`
	Revenue    statValue   `json:"revenue"`
	Products   []text      `json:"products"`
	Followers  statValue   `json:"followers"`
	Claims     []claimWire `json:"claims"`
}

type claimWire struct {
	Verified       text   `json:"verified"`
	CreatedAt      text   `json:"createdAt"`
	Claim          text   `json:"claim"`
	ClaimSource    text   `json:"claim_source"`
	Trust          number `json:"trust"`
	Analysis       text   `json:"analysis"`
	ResearchSource text   `json:"research_source"`
	Category       text   `json:"category"`
}
