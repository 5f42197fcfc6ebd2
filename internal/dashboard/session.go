// Statdash - National Statistics Indicator Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/statdash

package dashboard

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/tomtom215/statdash/internal/logging"
	"github.com/tomtom215/statdash/internal/metrics"
	"github.com/tomtom215/statdash/internal/query"
)

// SessionCacheType labels the session store in cache metrics.
const SessionCacheType = "sessions"

// SessionStore holds one controller per session id.
type SessionStore interface {
	Get(key string) (interface{}, bool)
	Set(key string, value interface{})
	Touch(key string) bool
}

func sessionKey(id string) string {
	return "session:" + id
}

// controller returns the session's controller, starting a new session when
// the cookie is missing, malformed or expired.
func (h *Handler) controller(w http.ResponseWriter, r *http.Request) *query.Controller {
	if c, err := r.Cookie(h.cookieName); err == nil {
		if _, err := uuid.Parse(c.Value); err == nil {
			key := sessionKey(c.Value)
			v, ok := h.sessions.Get(key)
			metrics.RecordCacheLookup(SessionCacheType, ok)
			if ctrl, isCtrl := v.(*query.Controller); ok && isCtrl {
				h.sessions.Touch(key)
				h.setCookie(w, c.Value)
				return ctrl
			}
		}
	}

	id := uuid.New().String()
	ctrl := query.NewController(h.fetcher)
	h.sessions.Set(sessionKey(id), ctrl)
	h.setCookie(w, id)

	logging.Ctx(r.Context()).Debug().Msg("Dashboard session started")
	return ctrl
}

func (h *Handler) setCookie(w http.ResponseWriter, id string) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cookieName,
		Value:    id,
		Path:     "/",
		MaxAge:   int(h.ttl / time.Second),
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}
