package auth

import (
	"net/http"
	"strings"
	"time"
)

// CookieName is the HTTP cookie carrying the auth credential.
const CookieName = "auth-token"

const cookieMaxAge = 7 * 24 * time.Hour

// SessionCarrier moves the credential between client and server. Two
// transports are supported: the Authorization Bearer header and the
// auth-token cookie. The header takes precedence when both are present.
//
// It works on plain net/http values so it stays testable without the
// framework; the router adapts it to echo.
type SessionCarrier struct {
	production bool
}

// NewSessionCarrier builds a carrier. In production the cookie is marked
// Secure with SameSite=Strict; elsewhere SameSite=Lax.
func NewSessionCarrier(production bool) *SessionCarrier {
	return &SessionCarrier{production: production}
}

// Extract reads the credential from the request. An absent credential is a
// normal state for anonymous requests, reported via ok=false, not an error.
func (s *SessionCarrier) Extract(r *http.Request) (token string, ok bool) {
	if header := r.Header.Get("Authorization"); header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") && parts[1] != "" {
			return parts[1], true
		}
	}
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return "", false
	}
	return cookie.Value, true
}

// Attach sets the credential as an HTTP-only cookie valid for the full
// credential lifetime.
func (s *SessionCarrier) Attach(w http.ResponseWriter, token string) {
	http.SetCookie(w, s.cookie(token, int(cookieMaxAge.Seconds())))
}

// Clear instructs the client to drop the cookie immediately. This is the
// entire logout contract: the token itself stays valid until expiry.
func (s *SessionCarrier) Clear(w http.ResponseWriter) {
	http.SetCookie(w, s.cookie("", -1))
}

func (s *SessionCarrier) cookie(value string, maxAge int) *http.Cookie {
	sameSite := http.SameSiteLaxMode
	if s.production {
		sameSite = http.SameSiteStrictMode
	}
	return &http.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   s.production,
		SameSite: sameSite,
	}
}
