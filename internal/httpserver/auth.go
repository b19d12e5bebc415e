// internal/httpserver/auth.go
//
// Current-user resolution. Login and token issuing live elsewhere; this side
// only verifies an HMAC-signed JWT from "Authorization: Bearer" or the auth
// cookie and reads the user id from its "sub" (or legacy "id") claim.
// Requests without a valid token fall back to a long-lived anonymous cookie,
// so guests keep their sessions across requests.

package httpserver

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const anonCookieName = "hub_anon"

// authUser is placed into request context by withCurrentUser.
type authUser struct {
	ID       string `json:"id"`
	Username string `json:"username,omitempty"`
}

// ctxUserKey is the context key type for storing authUser.
type ctxUserKey struct{}

// ctxOwnerKey is the context key type for the session owner string.
type ctxOwnerKey struct{}

// withCurrentUser decorates the request with the signed-in user, when a valid
// token is present, and always with an owner id ("user:<id>" or "anon:<id>").
func (s *Server) withCurrentUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if u := s.parseUser(bearerOrCookie(r, s.cfg.CookieName)); u != nil {
			ctx = context.WithValue(ctx, ctxUserKey{}, u)
			ctx = context.WithValue(ctx, ctxOwnerKey{}, "user:"+u.ID)
		} else {
			ctx = context.WithValue(ctx, ctxOwnerKey{}, "anon:"+s.ensureAnonID(w, r))
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// parseUser verifies tok and returns its user, or nil.
func (s *Server) parseUser(tok string) *authUser {
	if tok == "" {
		return nil
	}
	claims := jwt.MapClaims{}
	t, err := jwt.ParseWithClaims(tok, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(s.cfg.JWTSecret), nil
	}, jwt.WithValidMethods([]string{"HS256", "HS384", "HS512"}))
	if err != nil || !t.Valid {
		return nil
	}
	id, _ := claims["sub"].(string)
	if id == "" {
		id, _ = claims["id"].(string)
	}
	if id == "" {
		return nil
	}
	username, _ := claims["username"].(string)
	return &authUser{ID: id, Username: username}
}

// ensureAnonID returns an existing anon cookie or sets a new one.
func (s *Server) ensureAnonID(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(anonCookieName); err == nil && c.Value != "" {
		return c.Value
	}
	id := uuid.NewString()
	sameSite := http.SameSiteLaxMode
	if s.cfg.Production {
		sameSite = http.SameSiteNoneMode
	}
	http.SetCookie(w, &http.Cookie{
		Name:     anonCookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.cfg.Production,
		SameSite: sameSite,
		Expires:  time.Now().Add(180 * 24 * time.Hour),
	})
	return id
}

func bearerOrCookie(r *http.Request, cookieName string) string {
	// Authorization: Bearer <token>
	if a := r.Header.Get("Authorization"); strings.HasPrefix(strings.ToLower(a), "bearer ") {
		return strings.TrimSpace(a[7:])
	}
	if c, err := r.Cookie(cookieName); err == nil {
		return c.Value
	}
	return ""
}

// currentUser returns the verified user, or nil for guests.
func currentUser(r *http.Request) *authUser {
	u, _ := r.Context().Value(ctxUserKey{}).(*authUser)
	return u
}

// ownerFrom returns the owner id set by withCurrentUser.
func ownerFrom(r *http.Request) string {
	o, _ := r.Context().Value(ctxOwnerKey{}).(string)
	return o
}
