package httpadapter

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"leadboard/internal/core/port"
)

type ctxKey int

const sessionKey ctxKey = 0

// sessionCookie is the cookie fallback for clients that do not send a
// bearer header.
const sessionCookie = "session_token"

// sessionFromContext returns the authenticated session placed there by the
// middleware, or nil outside gated routes.
func sessionFromContext(ctx context.Context) *port.AuthenticatedSession {
	s, _ := ctx.Value(sessionKey).(*port.AuthenticatedSession)
	return s
}

// requireSession gates a route behind a valid, unexpired session. The token
// comes from the Authorization bearer header or the session cookie. Missing,
// unknown or expired sessions yield 401 with a generic body; store failures
// are logged and yield 500.
func (h *Handler) requireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			h.writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		sess, err := h.sessions.FindSessionByToken(r.Context(), token)
		if err != nil {
			h.logger.Error("session lookup error", slog.Any("error", err))
			h.writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		if sess == nil || sess.Session.Expired(time.Now()) {
			h.writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), sessionKey, sess)))
	})
}

func bearerToken(r *http.Request) string {
	if auth := r.Header.Get("Authorization"); auth != "" {
		if tok, ok := strings.CutPrefix(auth, "Bearer "); ok {
			return strings.TrimSpace(tok)
		}
		return ""
	}
	if c, err := r.Cookie(sessionCookie); err == nil {
		return c.Value
	}
	return ""
}

// handleMe returns the identity behind the current session. It doubles as a
// cheap probe for the auth gate.
func (h *Handler) handleMe(w http.ResponseWriter, r *http.Request) {
	sess := sessionFromContext(r.Context())
	if sess == nil {
		h.writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{
		"user": map[string]any{
			"id":    sess.User.ID,
			"name":  sess.User.Name,
			"email": sess.User.Email,
		},
		"session": map[string]any{
			"expiresAt": sess.Session.ExpiresAt,
		},
	})
}
