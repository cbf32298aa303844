package domain

import (
	"errors"
	"time"
)

var ErrOrderNotFound = errors.New("order not found")

// DeliveryDetails captures where a purchased artwork ships to.
type DeliveryDetails struct {
	Name    string `json:"name" bson:"name"`
	Address string `json:"address" bson:"address"`
	City    string `json:"city" bson:"city"`
	State   string `json:"state" bson:"state"`
	ZipCode string `json:"zip_code" bson:"zip_code"`
}

// Order records a placed purchase. Payment is settled by an external
// provider; only the fulfilment record lives here.
type Order struct {
	ID              string          `json:"id" bson:"_id,omitempty"`
	Reference       string          `json:"reference" bson:"reference"`
	UserID          string          `json:"user_id" bson:"user_id"`
	ArtName         string          `json:"art_name" bson:"art_name"`
	DeliveryDetails DeliveryDetails `json:"delivery_details" bson:"delivery_details"`
	CreatedAt       time.Time       `json:"created_at" bson:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at" bson:"updated_at"`
}
