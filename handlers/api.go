package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"influencer-trust/filters"
	"influencer-trust/slug"
)

// GetInfluencers mirrors the leaderboard page as JSON.
func (h *Handlers) GetInfluencers(c *gin.Context) {
	state := filters.NewState(c.Request.URL.Query())

	lb, err := h.source.Leaderboard(c.Request.Context())
	if err != nil {
		h.jsonError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"stats":       lb.Stats,
		"influencers": filters.Leaderboard(lb.Influencers, filters.LeaderboardQueryFrom(state)),
		"query":       state.Encode(),
	})
}

// GetInfluencer mirrors the detail page as JSON, claims filtered by the query.
func (h *Handlers) GetInfluencer(c *gin.Context) {
	name := slug.ToName(c.Param("slug"))
	state := filters.NewState(c.Request.URL.Query())

	profile, err := h.source.Influencer(c.Request.Context(), name)
	if err != nil {
		h.jsonError(c, err)
		return
	}
	if profile.Empty() {
		c.JSON(http.StatusNotFound, gin.H{"error": "No Information found.", "request_id": RequestID(c)})
		return
	}

	out := *profile
	out.Claims = filters.Claims(profile.Claims, filters.ClaimQueryFrom(state))
	c.JSON(http.StatusOK, gin.H{
		"influencer":   out,
		"total_claims": len(profile.Claims),
		"query":        state.Encode(),
	})
}
