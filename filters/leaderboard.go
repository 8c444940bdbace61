package filters

import (
	"slices"

	"influencer-trust/models"
)

const AllInfluencers = "all"

const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// LeaderboardCategories are the category pills shown on the leaderboard.
var LeaderboardCategories = []string{"All", "Nutrition", "Fitness", "Medicine", "Mental Health"}

type LeaderboardQuery struct {
	Category string
	Sort     string
}

func LeaderboardQueryFrom(s *State) LeaderboardQuery {
	return LeaderboardQuery{
		Category: s.Get(ParamCategory),
		Sort:     s.Get(ParamSort),
	}
}

// Descending reports whether the rank order is reversed. Only an absent value
// or "asc" keeps ranks ascending; any other value reverses them.
func (q LeaderboardQuery) Descending() bool {
	return q.Sort != "" && q.Sort != SortAsc
}

// Leaderboard filters entries by category and orders them by rank.
func Leaderboard(entries []models.LeaderboardEntry, q LeaderboardQuery) []models.LeaderboardEntry {
	out := make([]models.LeaderboardEntry, 0, len(entries))
	for _, e := range entries {
		if matchesLabel(e.Category, q.Category, AllInfluencers) {
			out = append(out, e)
		}
	}

	desc := q.Descending()
	slices.SortStableFunc(out, func(a, b models.LeaderboardEntry) int {
		if desc {
			return b.Rank - a.Rank
		}
		return a.Rank - b.Rank
	})
	return out
}

// NextSort is the value the sort toggle writes after current: "desc" from an
// absent value or "asc", otherwise "asc".
func NextSort(current string) string {
	if current == "" || current == SortAsc {
		return SortDesc
	}
	return SortAsc
}
