package middleware

import (
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/artisio/marketplace-api/internal/api/metrics"
	"github.com/artisio/marketplace-api/internal/auth"
	"github.com/artisio/marketplace-api/internal/core/domain"
)

// Auth extracts the credential, runs it through the admission gate and
// injects the resolved identity into context. Every rejection surfaces as
// domain.ErrUnauthorized, so the error handler renders the same 401 body
// whether the token was absent, expired, malformed or bound to a deleted
// account.
func Auth(carrier *auth.SessionCarrier, gate *auth.Gate) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := carrier.Extract(c.Request())
			if !ok {
				metrics.AuthRejectionsTotal.WithLabelValues("no_token").Inc()
				return domain.ErrUnauthorized
			}

			user, err := gate.Admit(c.Request().Context(), token)
			if err != nil {
				if errors.Is(err, domain.ErrUnauthorized) {
					metrics.AuthRejectionsTotal.WithLabelValues("rejected").Inc()
				}
				return err
			}

			c.Set("user", user)
			c.Set("token", token)

			return next(c)
		}
	}
}

// OptionalAuth resolves the identity when a valid credential is present and
// continues anonymously otherwise. Public routes use it so view events can
// be keyed by user id instead of client IP for logged-in visitors.
func OptionalAuth(carrier *auth.SessionCarrier, gate *auth.Gate) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := carrier.Extract(c.Request())
			if !ok {
				return next(c)
			}

			user, err := gate.Admit(c.Request().Context(), token)
			if err == nil {
				c.Set("user", user)
				c.Set("token", token)
			}

			return next(c)
		}
	}
}
