package domain

import (
	"errors"
	"time"
)

// ArtworkCategory classifies a listing. The set mirrors what the storefront
// exposes as browse filters.
type ArtworkCategory string

const (
	CategoryPaintings     ArtworkCategory = "paintings"
	CategoryPhotography   ArtworkCategory = "photography"
	CategoryGraphicDesign ArtworkCategory = "graphic design"
	CategoryIllustrations ArtworkCategory = "illustrations"
	CategorySculptures    ArtworkCategory = "sculptures"
	CategoryWoodwork      ArtworkCategory = "woodwork"
	CategoryGraffiti      ArtworkCategory = "graffiti"
	CategoryStencil       ArtworkCategory = "stencil"
)

// Categories lists every valid artwork category.
var Categories = []ArtworkCategory{
	CategoryPaintings,
	CategoryPhotography,
	CategoryGraphicDesign,
	CategoryIllustrations,
	CategorySculptures,
	CategoryWoodwork,
	CategoryGraffiti,
	CategoryStencil,
}

var (
	ErrArtworkNotFound  = errors.New("artwork not found")
	ErrInvalidCategory  = errors.New("category should be one of: paintings, photography, graphic design, illustrations, sculptures, woodwork, graffiti, stencil")
	ErrInvalidPrice     = errors.New("price must be a positive number from $1 to $1,000,000")
	ErrInvalidImageLink = errors.New("image link must point to the configured asset host")
)

// Price bounds in USD enforced on every listing write.
const (
	MinPrice = 1
	MaxPrice = 1_000_000
)

// IsValid reports whether c is one of the known categories.
func (c ArtworkCategory) IsValid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Artwork is a single marketplace listing owned by a user.
type Artwork struct {
	ID          string          `json:"id" bson:"_id,omitempty"`
	UserID      string          `json:"user_id" bson:"user_id"`
	ArtistName  string          `json:"artist_name" bson:"artist_name"`
	Name        string          `json:"name" bson:"name"`
	ImageLink   string          `json:"image_link,omitempty" bson:"image_link,omitempty"`
	Price       float64         `json:"price" bson:"price"`
	Description string          `json:"description" bson:"description"`
	Views       int64           `json:"views" bson:"views"`
	Category    ArtworkCategory `json:"category" bson:"category"`
	CreatedAt   time.Time       `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at" bson:"updated_at"`
	Version     int64           `json:"__v" bson:"__v"`
}
