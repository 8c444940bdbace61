package filters

import (
	"slices"
	"strings"
	"time"

	"influencer-trust/models"
	"influencer-trust/slug"
)

const (
	AllCategories = "all-categories"
	AllStatuses   = "all-statuses"
)

const (
	SortDate     = "date"
	SortTrust    = "trust"
	SortVerified = "verified"
)

// SortKeys lists the recognised claim sort keys in display order.
var SortKeys = []string{SortDate, SortTrust, SortVerified}

// VerificationStatuses are the status labels offered as filters.
var VerificationStatuses = []string{"Verified", "Questionable", "Debunked"}

type ClaimQuery struct {
	Category string
	Status   string
	Search   string
	Sort     string
}

func ClaimQueryFrom(s *State) ClaimQuery {
	return ClaimQuery{
		Category: s.Get(ParamCategory),
		Status:   s.Get(ParamStatus),
		Search:   s.Get(ParamSearch),
		Sort:     s.Get(ParamSort),
	}
}

// Claims returns the claims matching q, ordered by q.Sort. The input slice is
// left untouched and unrecognised sort keys keep the input order.
func Claims(claims []models.Claim, q ClaimQuery) []models.Claim {
	out := make([]models.Claim, 0, len(claims))
	for _, c := range claims {
		if matchesLabel(c.Category, q.Category, AllCategories) &&
			matchesLabel(c.VerificationStatus, q.Status, AllStatuses) &&
			matchesSearch(c, q.Search) {
			out = append(out, c)
		}
	}

	switch q.Sort {
	case SortDate:
		slices.SortStableFunc(out, func(a, b models.Claim) int {
			return compareDatesDesc(a.CreatedAt, b.CreatedAt)
		})
	case SortTrust:
		slices.SortStableFunc(out, func(a, b models.Claim) int {
			return b.TrustScore - a.TrustScore
		})
	case SortVerified:
		// Presence check only: any non-empty status ranks ahead of an empty
		// one, the three statuses are not ordered against each other.
		slices.SortStableFunc(out, func(a, b models.Claim) int {
			return present(b.VerificationStatus) - present(a.VerificationStatus)
		})
	}
	return out
}

// matchesLabel applies the three-way label rule: no filter, the "all" token,
// or equal slugs.
func matchesLabel(label, filter, all string) bool {
	if filter == "" {
		return true
	}
	filter = slug.FromName(filter)
	return filter == all || slug.FromName(label) == filter
}

func searchFields(c models.Claim) []string {
	return []string{
		c.VerificationStatus,
		c.CreatedAt,
		c.Text,
		c.SourceURL,
		c.Analysis,
		c.ResearchURL,
		c.Category,
	}
}

func matchesSearch(c models.Claim, search string) bool {
	if search == "" {
		return true
	}
	needle := strings.ToLower(search)
	for _, field := range searchFields(c) {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

func present(s string) int {
	if s != "" {
		return 1
	}
	return 0
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	"January 2, 2006",
	"Jan 2, 2006",
	"2 January 2006",
	"January 2006",
	"2006-01",
	"2006",
}

// ParseDate accepts the date shapes the model tends to produce.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// compareDatesDesc orders newest first; unparseable dates go last.
func compareDatesDesc(a, b string) int {
	ta, okA := ParseDate(a)
	tb, okB := ParseDate(b)
	switch {
	case !okA && !okB:
		return 0
	case !okA:
		return 1
	case !okB:
		return -1
	}
	return tb.Compare(ta)
}
