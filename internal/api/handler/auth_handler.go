package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/artisio/marketplace-api/internal/api/metrics"
	"github.com/artisio/marketplace-api/internal/auth"
	"github.com/artisio/marketplace-api/internal/core/domain"
	"github.com/artisio/marketplace-api/internal/core/ports"
)

// AuthHandler handles signup, login and logout.
type AuthHandler struct {
	service ports.AuthService
	carrier *auth.SessionCarrier
}

func NewAuthHandler(service ports.AuthService, carrier *auth.SessionCarrier) *AuthHandler {
	return &AuthHandler{service: service, carrier: carrier}
}

// Signup creates a new account.
//
// @Summary      Register a new account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signupRequest  true  "Account details"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	_, err := h.service.Signup(c.Request().Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			return c.JSON(http.StatusConflict, errorResponse{Error: "User already exists"})
		}
		return err
	}

	metrics.SignupsTotal.Inc()
	return c.JSON(http.StatusOK, messageResponse{Success: true, Message: "Signup successful"})
}

// Login verifies credentials, sets the session cookie and returns the token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if req.Email == "" {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "Email is required"})
	}
	if req.Password == "" {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "Password is required"})
	}

	token, _, err := h.service.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			metrics.LoginsTotal.WithLabelValues("not_found").Inc()
			return c.JSON(http.StatusNotFound, errorResponse{Error: "User not found"})
		case errors.Is(err, domain.ErrInvalidCredentials):
			metrics.LoginsTotal.WithLabelValues("wrong_password").Inc()
			return c.JSON(http.StatusUnauthorized, errorResponse{Error: "Incorrect password"})
		}
		return err
	}

	h.carrier.Attach(c.Response(), token)
	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, loginResponse{Success: true, Message: "Login successful", Token: token})
}

// Logout clears the session cookie. Tokens are stateless, so a previously
// issued token stays verifiable until it expires; logout only drops the
// cookie transport.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200  {object}  messageResponse
// @Router       /logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	h.carrier.Clear(c.Response())
	return c.JSON(http.StatusOK, messageResponse{Success: true, Message: "User logged out successfully"})
}
