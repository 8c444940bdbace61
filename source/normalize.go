package source

import (
	"html"
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"influencer-trust/models"
)

// Model output is untrusted; markup is stripped before it reaches a template.
var policy = bluemonday.StrictPolicy()

func clean(t text) string {
	return strings.TrimSpace(html.UnescapeString(policy.Sanitize(string(t))))
}

func cleanURL(t text) string {
	raw := strings.TrimSpace(string(t))
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return ""
	}
	return u.String()
}

// maxCount bounds ranks and counts so conversion to int cannot overflow.
const maxCount = math.MaxInt32

func clampTrust(n number) int {
	return int(math.Min(math.Max(float64(n), 0), 100))
}

func clampRank(n number) int {
	return int(math.Min(math.Max(float64(n), 1), maxCount))
}

func clampCount(n number) int {
	return int(math.Min(math.Max(float64(n), 0), maxCount))
}

func cleanList(in []text) []string {
	out := make([]string, 0, len(in))
	for _, t := range in {
		if s := clean(t); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func normalizeLeaderboard(resp *leaderboardResponse) *models.Leaderboard {
	lb := &models.Leaderboard{
		Stats: []models.StatCard{
			{ID: models.StatActiveInfluencers, Value: clean(resp.ActiveInfluencers), Description: "Active Influencers"},
			{ID: models.StatVerifiedClaims, Value: clean(resp.OverallVerifiedClaims), Description: "Verified Claims"},
			{ID: models.StatAverageTrust, Value: strings.TrimSuffix(clean(resp.OverallAverageTrustScore), "%"), Description: "Average Trust Score"},
		},
		Influencers: make([]models.LeaderboardEntry, 0, len(resp.Influencers)),
	}
	for _, e := range resp.Influencers {
		name := clean(e.Name)
		if name == "" {
			continue
		}
		trend := clean(e.Trend)
		lb.Influencers = append(lb.Influencers, models.LeaderboardEntry{
			Rank:           clampRank(e.Rank),
			Name:           name,
			Image:          cleanURL(e.Image),
			Category:       clean(e.Category),
			TrustScore:     clampTrust(e.Trust),
			Trend:          models.ParseTrend(trend),
			TrendLabel:     trend,
			Followers:      clean(e.Followers),
			VerifiedClaims: clampCount(e.Claims),
		})
	}
	return lb
}

// normalizeProfile folds the trust, revenue and followers objects into the
// stats list; they do not survive as separate fields.
func normalizeProfile(resp *influencerResponse) *models.InfluencerProfile {
	p := &models.InfluencerProfile{
		Name:       clean(resp.Name),
		Image:      cleanURL(resp.Image),
		Bio:        clean(resp.Bio),
		Categories: cleanList(resp.Categories),
		Products:   cleanList(resp.Products),
		Claims:     make([]models.Claim, 0, len(resp.Claims)),
	}
	for _, c := range resp.Claims {
		p.Claims = append(p.Claims, models.Claim{
			VerificationStatus: clean(c.Verified),
			CreatedAt:          clean(c.CreatedAt),
			Text:               clean(c.Claim),
			SourceURL:          cleanURL(c.ClaimSource),
			TrustScore:         clampTrust(c.Trust),
			Analysis:           clean(c.Analysis),
			ResearchURL:        cleanURL(c.ResearchSource),
			Category:           clean(c.Category),
		})
	}
	p.Stats = []models.StatCard{
		{ID: models.StatTrustScore, Title: "Trust Score", Value: clean(resp.Trust.Value), Description: clean(resp.Trust.Description)},
		{ID: models.StatYearlyRevenue, Title: "Yearly Revenue", Value: clean(resp.Revenue.Value), Description: clean(resp.Revenue.Description)},
		{ID: models.StatProducts, Title: "Products", Value: strconv.Itoa(len(p.Products)), Description: "Recommended products"},
		{ID: models.StatFollowers, Title: "Followers", Value: clean(resp.Followers.Value), Description: clean(resp.Followers.Description)},
	}
	p.Monetization = clean(resp.Revenue.Description)
	return p
}
