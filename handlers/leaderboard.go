package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"influencer-trust/filters"
)

// Leaderboard renders the ranked table at "/".
func (h *Handlers) Leaderboard(c *gin.Context) {
	state := filters.NewState(c.Request.URL.Query())

	lb, err := h.source.Leaderboard(c.Request.Context())
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.HTML(http.StatusOK, "leaderboard.html", newLeaderboardView(lb, state))
}
