package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/artisio/marketplace-api/internal/core/domain"
	"github.com/artisio/marketplace-api/internal/core/ports"
)

// ProfileHandler handles the account profile surface.
type ProfileHandler struct {
	service ports.ProfileService
}

func NewProfileHandler(service ports.ProfileService) *ProfileHandler {
	return &ProfileHandler{service: service}
}

type updateProfileRequest struct {
	Bio       *string `json:"bio"        validate:"omitempty,max=500"`
	AvatarURL *string `json:"avatar_url"`
}

type userResponse struct {
	Success bool         `json:"success"`
	User    *domain.User `json:"user"`
}

// Me handles GET /me.
//
// @Summary      Get the current identity
// @Tags         profile
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  userResponse
// @Failure      401  {object}  errorResponse
// @Router       /me [get]
func (h *ProfileHandler) Me(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	profile, err := h.service.Get(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, userResponse{Success: true, User: profile})
}

// Update handles PATCH /me.
//
// @Summary      Update bio or avatar
// @Tags         profile
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateProfileRequest  true  "Fields to change"
// @Success      200   {object}  userResponse
// @Failure      400   {object}  errorResponse
// @Router       /me [patch]
func (h *ProfileHandler) Update(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	profile, err := h.service.Update(c.Request().Context(), user.ID, ports.ProfileUpdate{
		Bio:       req.Bio,
		AvatarURL: req.AvatarURL,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidImageLink) {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		}
		return err
	}

	return c.JSON(http.StatusOK, userResponse{Success: true, User: profile})
}

// ViewArtist handles GET /artists/:id, the public artist page. Fetching a
// profile through it registers a view for the counter pipeline.
//
// @Summary      Get a public artist profile
// @Tags         profile
// @Produce      json
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  userResponse
// @Failure      404  {object}  errorResponse
// @Router       /artists/{id} [get]
func (h *ProfileHandler) ViewArtist(c echo.Context) error {
	profile, err := h.service.View(c.Request().Context(), c.Param("id"), viewerKey(c))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "User not found"})
		}
		return err
	}

	return c.JSON(http.StatusOK, userResponse{Success: true, User: profile})
}
