package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/artisio/marketplace-api/internal/core/domain"
	"github.com/artisio/marketplace-api/internal/core/ports"
)

// ArtworkHandler handles HTTP requests for listing operations.
type ArtworkHandler struct {
	service ports.ArtworkService
}

func NewArtworkHandler(service ports.ArtworkService) *ArtworkHandler {
	return &ArtworkHandler{service: service}
}

// Create handles POST /image.
//
// @Summary      Create a new listing
// @Tags         images
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createImageRequest  true  "Listing details"
// @Success      200   {object}  imageResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /image [post]
func (h *ArtworkHandler) Create(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req createImageRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	artwork, err := h.service.Create(c.Request().Context(), ports.CreateArtworkInput{
		UserID:      user.ID,
		ArtistName:  user.Name,
		Name:        req.Name,
		ImageLink:   req.ImageLink,
		Price:       req.Price,
		Description: req.Description,
		Category:    req.Category,
	})
	if err != nil {
		if isListingValidationErr(err) {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		}
		return err
	}

	return c.JSON(http.StatusOK, imageResponse{
		Success: true,
		Message: "Image added successfully",
		Image:   artwork,
	})
}

// Get handles GET /image/:id. Missing and not-owned listings are
// indistinguishable in the response.
//
// @Summary      Get one of the caller's listings
// @Tags         images
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Listing id"
// @Success      200  {object}  imageResponse
// @Failure      404  {object}  errorResponse
// @Router       /image/{id} [get]
func (h *ArtworkHandler) Get(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	artwork, err := h.service.Get(c.Request().Context(), c.Param("id"), user.ID)
	if err != nil {
		if errors.Is(err, domain.ErrArtworkNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "Image not found or not authorized"})
		}
		return err
	}

	return c.JSON(http.StatusOK, imageResponse{Success: true, Image: artwork})
}

// Update handles PATCH /image/:id.
//
// @Summary      Update one of the caller's listings
// @Tags         images
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "Listing id"
// @Param        body  body      updateImageRequest  true  "Fields to change"
// @Success      200   {object}  imageResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /image/{id} [patch]
func (h *ArtworkHandler) Update(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req updateImageRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	artwork, err := h.service.Update(c.Request().Context(), ports.UpdateArtworkInput{
		UserID:    user.ID,
		ArtworkID: c.Param("id"),
		Update: ports.ArtworkUpdate{
			Name:        req.Name,
			ImageLink:   req.ImageLink,
			Price:       req.Price,
			Description: req.Description,
			Category:    req.Category,
		},
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrArtworkNotFound):
			return c.JSON(http.StatusNotFound, errorResponse{Error: "Image not found or not authorized to edit"})
		case isListingValidationErr(err):
			return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		}
		return err
	}

	return c.JSON(http.StatusOK, imageResponse{
		Success: true,
		Message: "Image updated successfully",
		Image:   artwork,
	})
}

// Delete handles DELETE /image/:id.
//
// @Summary      Delete one of the caller's listings
// @Tags         images
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Listing id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  errorResponse
// @Router       /image/{id} [delete]
func (h *ArtworkHandler) Delete(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), c.Param("id"), user.ID); err != nil {
		if errors.Is(err, domain.ErrArtworkNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "Image not found or not authorized to delete"})
		}
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Success: true, Message: "Image deleted successfully"})
}

// ListOwn handles GET /images.
//
// @Summary      List the caller's listings
// @Tags         images
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  imagesResponse
// @Router       /images [get]
func (h *ArtworkHandler) ListOwn(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	images, err := h.service.ListOwn(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, imagesResponse{Success: true, Images: images})
}

// Browse handles GET /gallery, the public storefront feed.
//
// @Summary      Browse the public gallery
// @Tags         gallery
// @Produce      json
// @Param        category  query     string  false  "Category filter"
// @Param        page      query     int     false  "1-based page"
// @Param        limit     query     int     false  "Page size"
// @Success      200       {object}  galleryResponse
// @Failure      400       {object}  errorResponse
// @Router       /gallery [get]
func (h *ArtworkHandler) Browse(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	result, err := h.service.Browse(c.Request().Context(), ports.ListGalleryInput{
		Category: c.QueryParam("category"),
		Page:     page,
		Limit:    limit,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCategory) {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		}
		return err
	}

	return c.JSON(http.StatusOK, galleryResponse{
		Success: true,
		Data:    result.Items,
		Pagination: paginationResponse{
			Page:       result.Page,
			Limit:      result.Limit,
			Total:      result.Total,
			TotalPages: result.TotalPages,
		},
	})
}

// View handles GET /gallery/:id. Fetching a listing through the public
// detail route registers a view for the counter pipeline.
//
// @Summary      Get a public listing
// @Tags         gallery
// @Produce      json
// @Param        id   path      string  true  "Listing id"
// @Success      200  {object}  imageResponse
// @Failure      404  {object}  errorResponse
// @Router       /gallery/{id} [get]
func (h *ArtworkHandler) View(c echo.Context) error {
	artwork, err := h.service.View(c.Request().Context(), c.Param("id"), viewerKey(c))
	if err != nil {
		if errors.Is(err, domain.ErrArtworkNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "Image not found"})
		}
		return err
	}

	return c.JSON(http.StatusOK, imageResponse{Success: true, Image: artwork})
}

// isListingValidationErr reports whether err is one of the listing field
// rules enforced by the service.
func isListingValidationErr(err error) bool {
	return errors.Is(err, domain.ErrInvalidCategory) ||
		errors.Is(err, domain.ErrInvalidPrice) ||
		errors.Is(err, domain.ErrInvalidImageLink)
}
