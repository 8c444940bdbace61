package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"influencer-trust/models"
	"influencer-trust/source"
	"influencer-trust/templates"
)

type fakeSource struct {
	mu          sync.Mutex
	leaderboard *models.Leaderboard
	profiles    map[string]*models.InfluencerProfile
	err         error
	calls       int
}

func (s *fakeSource) Leaderboard(context.Context) (*models.Leaderboard, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.leaderboard, nil
}

func (s *fakeSource) Influencer(_ context.Context, name string) (*models.InfluencerProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	if p, ok := s.profiles[name]; ok {
		return p, nil
	}
	return &models.InfluencerProfile{}, nil
}

func (s *fakeSource) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		leaderboard: &models.Leaderboard{
			Stats: []models.StatCard{
				{ID: models.StatActiveInfluencers, Value: "3", Description: "Active Influencers"},
				{ID: models.StatAverageTrust, Value: "84.5", Description: "Average Trust Score"},
			},
			Influencers: []models.LeaderboardEntry{
				{Rank: 2, Name: "Andrew Huberman", Category: "Neuroscience", TrustScore: 89, Trend: models.TrendUp},
				{Rank: 1, Name: "Peter Attia", Category: "Medicine", TrustScore: 94, Trend: models.TrendFlat},
				{Rank: 3, Name: "Rhonda Patrick", Category: "Nutrition", TrustScore: 72, Trend: models.TrendDown},
			},
		},
		profiles: map[string]*models.InfluencerProfile{
			"Peter Attia": {
				Name:       "Peter Attia",
				Bio:        "Physician focused on longevity.",
				Categories: []string{"Medicine", "Nutrition"},
				Products:   []string{"the drive podcast"},
				Stats:      []models.StatCard{{ID: models.StatTrustScore, Title: "Trust Score", Value: "94%"}},
				Claims: []models.Claim{
					{VerificationStatus: "Verified", CreatedAt: "2024-01-10", Text: "Zone 2 training improves mitochondria", TrustScore: 92, Category: "Medicine"},
					{VerificationStatus: "Questionable", CreatedAt: "2024-03-02", Text: "Fasting every day is required", TrustScore: 55, Category: "Nutrition"},
					{VerificationStatus: "Debunked", CreatedAt: "2023-11-20", Text: "Sugar causes hyperactivity", TrustScore: 20, Category: "Nutrition"},
				},
			},
		},
	}
}

func newTestServer(t *testing.T, src source.Source) (*gin.Engine, *Handlers) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tmpl, err := templates.Parse()
	require.NoError(t, err)

	h := New(src, tmpl, Options{SearchDelay: 200 * time.Millisecond, HandoffTTL: time.Minute})
	r := gin.New()
	h.Register(r, []string{"http://localhost:3000"})
	return r, h
}

func get(r http.Handler, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestLeaderboard_RendersRankedEntries(t *testing.T) {
	r, _ := newTestServer(t, newFakeSource())

	w := get(r, "/")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()

	attia := strings.Index(body, "Peter Attia")
	huberman := strings.Index(body, "Andrew Huberman")
	require.True(t, attia >= 0 && huberman >= 0)
	assert.Less(t, attia, huberman)
	assert.Contains(t, body, `href="/peter-attia"`)
	assert.Contains(t, body, "84.5%")
	assert.Contains(t, body, `href="/?sort=desc"`)
	assert.Contains(t, body, "Lowest First")
}

func TestLeaderboard_TogglesSortDirection(t *testing.T) {
	r, _ := newTestServer(t, newFakeSource())

	body := get(r, "/?sort=desc").Body.String()
	assert.Less(t, strings.Index(body, "Rhonda Patrick"), strings.Index(body, "Peter Attia"))
	assert.Contains(t, body, `href="/?sort=asc"`)
	assert.Contains(t, body, "Highest First")
}

func TestLeaderboard_FiltersByCategory(t *testing.T) {
	r, _ := newTestServer(t, newFakeSource())

	body := get(r, "/?category=nutrition").Body.String()
	assert.Contains(t, body, "Rhonda Patrick")
	assert.NotContains(t, body, "Peter Attia")
	assert.Contains(t, body, `class="pill active" href="/?category=nutrition"`)
}

func TestLeaderboard_ShowsEmptyState_When_NoEntries(t *testing.T) {
	src := newFakeSource()
	src.leaderboard = &models.Leaderboard{}
	r, _ := newTestServer(t, src)

	w := get(r, "/")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "No Influencers found.")
}

func TestLeaderboard_RendersErrorPage_When_SourceFails(t *testing.T) {
	src := newFakeSource()
	src.err = errors.New("upstream timeout")
	r, _ := newTestServer(t, src)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "req-42")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Equal(t, "req-42", w.Header().Get("X-Request-ID"))
	body := w.Body.String()
	assert.Contains(t, body, "Something went wrong")
	assert.Contains(t, body, "req-42")
	assert.NotContains(t, body, "upstream timeout")
}

func TestRequestID_IsGenerated_When_HeaderMissing(t *testing.T) {
	r, _ := newTestServer(t, newFakeSource())

	w := get(r, "/")
	assert.Len(t, w.Header().Get("X-Request-ID"), 36)
}

func TestInfluencer_RendersFilteredClaims(t *testing.T) {
	r, _ := newTestServer(t, newFakeSource())

	w := get(r, "/peter-attia?status=verified")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()

	assert.Contains(t, body, "Physician focused on longevity.")
	assert.Contains(t, body, "Zone 2 training improves mitochondria")
	assert.NotContains(t, body, "Sugar causes hyperactivity")
	assert.Contains(t, body, "Showing 1 claims")
	assert.Contains(t, body, "Status: Verified")
	assert.Contains(t, body, "The Drive Podcast")
	assert.Contains(t, body, "/api/live/peter-attia?status=verified&amp;token=")
}

func TestInfluencer_CombinesSearchAndSort(t *testing.T) {
	r, _ := newTestServer(t, newFakeSource())

	body := get(r, "/peter-attia?search=a&sort=trust").Body.String()
	zone := strings.Index(body, "Zone 2 training")
	fasting := strings.Index(body, "Fasting every day")
	sugar := strings.Index(body, "Sugar causes")
	require.True(t, zone >= 0 && fasting >= 0 && sugar >= 0)
	assert.Less(t, zone, fasting)
	assert.Less(t, fasting, sugar)
	assert.Contains(t, body, `<option value="trust" selected>Trust</option>`)
}

func TestInfluencer_ShowsNoInformation_When_ProfileEmpty(t *testing.T) {
	r, _ := newTestServer(t, newFakeSource())

	w := get(r, "/nobody-known")
	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "No Information found.")
	assert.NotContains(t, body, "/api/live/")
}

func TestInfluencer_Returns404_When_CatalogMisses(t *testing.T) {
	src := newFakeSource()
	src.err = source.ErrNotFound
	r, _ := newTestServer(t, src)

	w := get(r, "/peter-attia")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "No Information found.")
}

func TestInfluencer_StoresProfileForLiveSession(t *testing.T) {
	r, h := newTestServer(t, newFakeSource())

	get(r, "/peter-attia")
	assert.Equal(t, 1, h.handoff.Len())
}

func TestLeaderboard_SortsDescending_When_SortUnrecognised(t *testing.T) {
	r, _ := newTestServer(t, newFakeSource())

	body := get(r, "/?sort=foo").Body.String()
	assert.Less(t, strings.Index(body, "Rhonda Patrick"), strings.Index(body, "Peter Attia"))
	assert.Contains(t, body, "Highest First")
	assert.Contains(t, body, `href="/?sort=asc"`)
}

func TestInfluencer_OmitsEmptyParamsFromLinks(t *testing.T) {
	r, _ := newTestServer(t, newFakeSource())

	body := get(r, "/peter-attia?search=&category=nutrition").Body.String()
	assert.NotContains(t, body, "search=")
	assert.Contains(t, body, `href="/peter-attia"`)
	assert.Contains(t, body, "Showing 2 claims")
}

func TestInfluencer_TitleCasesCategoryPills(t *testing.T) {
	src := newFakeSource()
	src.profiles["Peter Attia"].Categories = []string{"mental health", "longevity-science"}
	r, _ := newTestServer(t, src)

	body := get(r, "/peter-attia").Body.String()
	assert.Contains(t, body, `data-value="mental-health">Mental Health</a>`)
	assert.Contains(t, body, `data-value="longevity-science">Longevity Science</a>`)
}
