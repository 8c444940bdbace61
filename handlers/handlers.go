package handlers

import (
	"errors"
	"html/template"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"influencer-trust/live"
	"influencer-trust/source"
)

type Options struct {
	SearchDelay time.Duration
	HandoffTTL  time.Duration
}

// Handlers serves the pages, the JSON API and the live endpoint from one
// Source.
type Handlers struct {
	source      source.Source
	templates   *template.Template
	handoff     *live.Handoff
	searchDelay time.Duration
}

func New(src source.Source, tmpl *template.Template, opts Options) *Handlers {
	return &Handlers{
		source:      src,
		templates:   tmpl,
		handoff:     live.NewHandoff(opts.HandoffTTL),
		searchDelay: opts.SearchDelay,
	}
}

func statusFor(err error) int {
	if errors.Is(err, source.ErrNotFound) {
		return http.StatusNotFound
	}
	return http.StatusBadGateway
}

func messageFor(err error) string {
	if errors.Is(err, source.ErrNotFound) {
		return "No Information found."
	}
	return "The influencer data could not be loaded. Please try again."
}

func (h *Handlers) renderError(c *gin.Context, err error) {
	log.Printf("[%s] %s %s: %v", RequestID(c), c.Request.Method, c.Request.URL.Path, err)
	c.HTML(statusFor(err), "error.html", ErrorView{Error: messageFor(err), RequestID: RequestID(c)})
}

func (h *Handlers) jsonError(c *gin.Context, err error) {
	log.Printf("[%s] %s %s: %v", RequestID(c), c.Request.Method, c.Request.URL.Path, err)
	c.JSON(statusFor(err), gin.H{"error": messageFor(err), "request_id": RequestID(c)})
}
