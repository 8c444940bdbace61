package handlers

import (
	"net/url"

	"influencer-trust/filters"
	"influencer-trust/models"
	"influencer-trust/slug"
)

type Link struct {
	Label  string
	Value  string
	Href   string
	Active bool
}

type Option struct {
	Value    string
	Label    string
	Selected bool
}

type Hidden struct {
	Name  string
	Value string
}

type ActiveFilter struct {
	Label     string
	Value     string
	ClearHref string
}

type LeaderboardView struct {
	Stats       []models.StatCard
	Influencers []models.LeaderboardEntry
	Categories  []Link
	SortHref    string
	SortLabel   string
}

type ClaimsView struct {
	Claims        []models.Claim
	ActiveFilters []ActiveFilter
}

type InfluencerView struct {
	Name            string
	Profile         *models.InfluencerProfile
	List            ClaimsView
	Search          string
	Sort            string
	CategoryLinks   []Link
	StatusLinks     []Link
	SortOptions     []Option
	SearchHidden    []Hidden
	SortHidden      []Hidden
	ClearSearchHref string
	ClearSortHref   string
	LiveURL         string
}

type ErrorView struct {
	Error     string
	RequestID string
}

func href(path string, s *filters.State) string {
	if q := s.Encode(); q != "" {
		return path + "?" + q
	}
	return path
}

// labelLinks builds one pill per label. The first label doubles as the "all"
// entry and is active when p is unset.
func labelLinks(path string, s *filters.State, p filters.Param, labels []string) []Link {
	current := slug.FromName(s.Get(p))
	links := make([]Link, 0, len(labels))
	for i, label := range labels {
		value := slug.FromName(label)
		links = append(links, Link{
			Label:  label,
			Value:  value,
			Href:   href(path, s.With(p, value)),
			Active: value == current || (i == 0 && current == ""),
		})
	}
	return links
}

func newLeaderboardView(lb *models.Leaderboard, s *filters.State) LeaderboardView {
	q := filters.LeaderboardQueryFrom(s)
	label := "Lowest"
	if q.Descending() {
		label = "Highest"
	}
	return LeaderboardView{
		Stats:       lb.Stats,
		Influencers: filters.Leaderboard(lb.Influencers, q),
		Categories:  labelLinks("/", s, filters.ParamCategory, filters.LeaderboardCategories),
		SortHref:    href("/", s.With(filters.ParamSort, filters.NextSort(q.Sort))),
		SortLabel:   label,
	}
}

func hiddenExcept(s *filters.State, skip filters.Param) []Hidden {
	var out []Hidden
	for _, p := range filters.ClaimParams {
		if p == skip {
			continue
		}
		if v := s.Get(p); v != p.Default {
			out = append(out, Hidden{Name: p.Name, Value: v})
		}
	}
	return out
}

var activeFilterLabels = map[string]string{
	filters.ParamCategory.Name: "Category",
	filters.ParamStatus.Name:   "Status",
	filters.ParamSearch.Name:   "Search",
	filters.ParamSort.Name:     "Sort",
}

// activeFilters lists the set parameters, each with a link that clears only
// that parameter.
func activeFilters(path string, s *filters.State) []ActiveFilter {
	var out []ActiveFilter
	for _, param := range filters.ClaimParams {
		value := s.Get(param)
		if value == param.Default {
			continue
		}
		out = append(out, ActiveFilter{
			Label:     activeFilterLabels[param.Name],
			Value:     value,
			ClearHref: href(path, s.With(param, param.Default)),
		})
	}
	return out
}

func newClaimsView(path string, p *models.InfluencerProfile, s *filters.State) ClaimsView {
	return ClaimsView{
		Claims:        filters.Claims(p.Claims, filters.ClaimQueryFrom(s)),
		ActiveFilters: activeFilters(path, s),
	}
}

func newInfluencerView(path, name string, p *models.InfluencerProfile, s *filters.State, liveURL string) InfluencerView {
	v := InfluencerView{Name: name}
	if p.Empty() {
		return v
	}
	v.Profile = p
	v.List = newClaimsView(path, p, s)
	v.Search = s.Get(filters.ParamSearch)
	v.Sort = s.Get(filters.ParamSort)
	v.CategoryLinks = labelLinks(path, s, filters.ParamCategory, append([]string{"All Categories"}, p.Categories...))
	v.StatusLinks = labelLinks(path, s, filters.ParamStatus, append([]string{"All Statuses"}, filters.VerificationStatuses...))
	for _, key := range filters.SortKeys {
		v.SortOptions = append(v.SortOptions, Option{Value: key, Label: slug.ToName(key), Selected: key == v.Sort})
	}
	v.SearchHidden = hiddenExcept(s, filters.ParamSearch)
	v.SortHidden = hiddenExcept(s, filters.ParamSort)
	v.ClearSearchHref = href(path, s.With(filters.ParamSearch, filters.ParamSearch.Default))
	v.ClearSortHref = href(path, s.With(filters.ParamSort, filters.ParamSort.Default))
	v.LiveURL = liveURL
	return v
}

func liveURL(slugValue, token string, s *filters.State) string {
	values := s.Values()
	values.Set("token", token)
	return "/api/live/" + url.PathEscape(slugValue) + "?" + values.Encode()
}
