package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"influencer-trust/filters"
	"influencer-trust/slug"
)

// Influencer renders the detail page for the influencer named by :slug.
func (h *Handlers) Influencer(c *gin.Context) {
	slugValue := c.Param("slug")
	name := slug.ToName(slugValue)
	state := filters.NewState(c.Request.URL.Query())

	profile, err := h.source.Influencer(c.Request.Context(), name)
	if err != nil {
		h.renderError(c, err)
		return
	}

	if profile.Empty() {
		c.HTML(http.StatusOK, "influencer.html", newInfluencerView(c.Request.URL.Path, name, profile, state, ""))
		return
	}

	token := h.handoff.Put(profile)
	view := newInfluencerView(c.Request.URL.Path, name, profile, state, liveURL(slugValue, token, state))
	c.HTML(http.StatusOK, "influencer.html", view)
}
