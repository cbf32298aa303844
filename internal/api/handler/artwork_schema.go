package handler

import "github.com/artisio/marketplace-api/internal/core/domain"

type createImageRequest struct {
	Name        string  `json:"name"        validate:"required,min=4,max=30"`
	ImageLink   string  `json:"image_link"  validate:"required"`
	Price       float64 `json:"price"       validate:"required"`
	Description string  `json:"description" validate:"required,min=4,max=30"`
	Category    string  `json:"category"    validate:"required"`
}

// updateImageRequest carries a partial update. Absent fields stay untouched.
type updateImageRequest struct {
	Name        *string  `json:"name"        validate:"omitempty,min=4,max=30"`
	ImageLink   *string  `json:"image_link"`
	Price       *float64 `json:"price"`
	Description *string  `json:"description" validate:"omitempty,min=4,max=30"`
	Category    *string  `json:"category"`
}

type imageResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Image   *domain.Artwork `json:"image"`
}

type imagesResponse struct {
	Success bool              `json:"success"`
	Images  []*domain.Artwork `json:"images"`
}

type paginationResponse struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

type galleryResponse struct {
	Success    bool               `json:"success"`
	Data       []*domain.Artwork  `json:"data"`
	Pagination paginationResponse `json:"pagination"`
}
