package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/truongn999/ShortLink/internal/domain"
	"github.com/truongn999/ShortLink/pkg/useragent"
)

const sessionCookie = "sl_session"

type RedirectTracker interface {
	Track(ctx context.Context, sessionID, shortCode string, visit domain.Visit) domain.RedirectOutcome
}

type RedirectHandler struct {
	tracker RedirectTracker
}

func NewRedirectHandler(tracker RedirectTracker) *RedirectHandler {
	return &RedirectHandler{tracker: tracker}
}

// Redirect serves the wildcard /:shortCode route. Every page load is one
// pipeline run ending in a 302 or a terminal error page.
func (h *RedirectHandler) Redirect(c *gin.Context) {
	shortCode := c.Param("shortCode")

	outcome := h.tracker.Track(c.Request.Context(), h.sessionID(c), shortCode, collectVisit(c))

	switch outcome.State {
	case domain.StateRedirecting:
		c.Redirect(http.StatusFound, outcome.Location)
	case domain.StateInactive:
		c.Data(http.StatusGone, "text/html; charset=utf-8", []byte(inactivePage))
	default:
		c.Data(http.StatusNotFound, "text/html; charset=utf-8", []byte(notFoundPage))
	}
}

// sessionID returns the visitor's session cookie, minting one on first
// contact. The cookie is session-lived, which scopes the dedup flags to
// one browser session.
func (h *RedirectHandler) sessionID(c *gin.Context) string {
	if id, err := c.Cookie(sessionCookie); err == nil && id != "" {
		return id
	}

	id := uuid.New().String()
	c.SetCookie(sessionCookie, id, 0, "/", "", false, true)
	return id
}

func collectVisit(c *gin.Context) domain.Visit {
	visit := domain.Visit{
		UserAgent: c.Request.UserAgent(),
		Referer:   c.Request.Referer(),
		RemoteIP: useragent.ClientIP(
			c.Request.RemoteAddr,
			c.GetHeader("X-Forwarded-For"),
			c.GetHeader("X-Real-IP"),
		),
	}

	// Viewport hints are optional query params supplied by the shortener's
	// own landing snippets; absent means zero.
	if vw, err := strconv.Atoi(c.Query("vw")); err == nil && vw > 0 {
		visit.ViewportWidth = vw
	}
	if vh, err := strconv.Atoi(c.Query("vh")); err == nil && vh > 0 {
		visit.ViewportHeight = vh
	}

	return visit
}

const notFoundPage = `<!DOCTYPE html>
<html lang="en">
<head><meta charset="utf-8"><title>Link not found</title></head>
<body style="font-family:sans-serif;text-align:center;padding-top:10vh">
<h1>Link not found</h1>
<p>The short link you followed does not exist or has been removed.</p>
<p><a href="/">Go home</a> &middot; <a href="/login">Create your own link</a></p>
</body>
</html>`

const inactivePage = `<!DOCTYPE html>
<html lang="en">
<head><meta charset="utf-8"><title>Link disabled</title></head>
<body style="font-family:sans-serif;text-align:center;padding-top:10vh">
<h1>Link disabled</h1>
<p>This link has been paused by its owner and is no longer serving visitors.</p>
<p><a href="/">Go home</a> &middot; <a href="/login">Create your own link</a></p>
</body>
</html>`
