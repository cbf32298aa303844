package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSessionCarrier_Extract_BearerHeader(t *testing.T) {
	carrier := NewSessionCarrier(false)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer tok123")

	token, ok := carrier.Extract(req)
	if !ok || token != "tok123" {
		t.Fatalf("expected tok123, got %q ok=%v", token, ok)
	}
}

func TestSessionCarrier_Extract_Cookie(t *testing.T) {
	carrier := NewSessionCarrier(false)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "tok456"})

	token, ok := carrier.Extract(req)
	if !ok || token != "tok456" {
		t.Fatalf("expected tok456, got %q ok=%v", token, ok)
	}
}

func TestSessionCarrier_Extract_HeaderWinsOverCookie(t *testing.T) {
	carrier := NewSessionCarrier(false)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer from-header")
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "from-cookie"})

	token, _ := carrier.Extract(req)
	if token != "from-header" {
		t.Fatalf("expected header to take precedence, got %q", token)
	}
}

func TestSessionCarrier_Extract_Absent(t *testing.T) {
	carrier := NewSessionCarrier(false)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if token, ok := carrier.Extract(req); ok {
		t.Fatalf("expected absent credential, got %q", token)
	}
}

func TestSessionCarrier_Extract_MalformedHeaderFallsBackToCookie(t *testing.T) {
	carrier := NewSessionCarrier(false)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Token abc")
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "tok789"})

	token, ok := carrier.Extract(req)
	if !ok || token != "tok789" {
		t.Fatalf("expected cookie fallback, got %q ok=%v", token, ok)
	}
}

func TestSessionCarrier_Attach_DevelopmentFlags(t *testing.T) {
	carrier := NewSessionCarrier(false)

	rec := httptest.NewRecorder()
	carrier.Attach(rec, "tok123")

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected 1 cookie, got %d", len(cookies))
	}
	c := cookies[0]
	if c.Name != CookieName || c.Value != "tok123" {
		t.Fatalf("unexpected cookie: %+v", c)
	}
	if !c.HttpOnly {
		t.Fatalf("cookie must be HttpOnly")
	}
	if c.Secure || c.SameSite != http.SameSiteLaxMode {
		t.Fatalf("development cookie should be lax and not secure: %+v", c)
	}
	if c.MaxAge != int(cookieMaxAge.Seconds()) {
		t.Fatalf("expected 7 day max-age, got %d", c.MaxAge)
	}
}

func TestSessionCarrier_Attach_ProductionFlags(t *testing.T) {
	carrier := NewSessionCarrier(true)

	rec := httptest.NewRecorder()
	carrier.Attach(rec, "tok123")

	c := rec.Result().Cookies()[0]
	if !c.Secure || c.SameSite != http.SameSiteStrictMode {
		t.Fatalf("production cookie should be secure and strict: %+v", c)
	}
}

func TestSessionCarrier_Clear(t *testing.T) {
	carrier := NewSessionCarrier(false)

	rec := httptest.NewRecorder()
	carrier.Clear(rec)

	c := rec.Result().Cookies()[0]
	if c.Value != "" || c.MaxAge >= 0 {
		t.Fatalf("expected empty immediately-expiring cookie, got value=%q maxage=%d", c.Value, c.MaxAge)
	}
}
