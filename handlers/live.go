package handlers

import (
	"bytes"
	"context"
	"log"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"influencer-trust/filters"
	"influencer-trust/live"
	"influencer-trust/models"
	"influencer-trust/slug"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
}

// Live upgrades to a websocket that re-filters the claims of one influencer
// as the visitor changes filters, without reloading the page.
func (h *Handlers) Live(c *gin.Context) {
	slugValue := c.Param("slug")
	query := c.Request.URL.Query()
	token := query.Get("token")
	query.Del("token")
	state := filters.NewState(query)
	path := "/" + slugValue

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("[%s] live upgrade: %v", RequestID(c), err)
		return
	}
	defer conn.Close()

	var writeMu sync.Mutex
	emit := func(u live.Update) {
		if u.Type == live.UpdateState {
			html, err := h.renderClaims(path, state, u)
			if err != nil {
				log.Printf("[%s] live render: %v", RequestID(c), err)
				u = live.Update{Type: live.UpdateError, Query: u.Query, Message: "Could not render claims."}
			} else {
				u.HTML = html
			}
		}
		writeMu.Lock()
		defer writeMu.Unlock()
		if err := conn.WriteJSON(u); err != nil {
			log.Printf("[%s] live write: %v", RequestID(c), err)
		}
	}

	// emit runs with the session lock held, so renderClaims may read state.
	session := live.NewSession(state, emit, h.searchDelay)
	defer session.Close()

	fetch := func(ctx context.Context) (*models.InfluencerProfile, error) {
		if p, ok := h.handoff.Take(token); ok {
			return p, nil
		}
		return h.source.Influencer(ctx, slug.ToName(slugValue))
	}
	if err := session.Load(c.Request.Context(), fetch); err != nil {
		log.Printf("[%s] %v", RequestID(c), err)
		return
	}

	for {
		var msg live.Message
		if err := conn.ReadJSON(&msg); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Printf("[%s] live read: %v", RequestID(c), err)
			}
			return
		}
		if err := session.Handle(msg); err != nil {
			log.Printf("[%s] live: %v", RequestID(c), err)
		}
	}
}

func (h *Handlers) renderClaims(path string, state *filters.State, u live.Update) (string, error) {
	view := ClaimsView{Claims: u.Claims, ActiveFilters: activeFilters(path, state)}

	var buf bytes.Buffer
	if err := h.templates.ExecuteTemplate(&buf, "claims", view); err != nil {
		return "", err
	}
	return buf.String(), nil
}
