package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/artisio/marketplace-api/internal/core/domain"
	"github.com/artisio/marketplace-api/internal/core/ports"
)

type stubOrderRepo struct {
	orders []*domain.Order
}

func (r *stubOrderRepo) Create(_ context.Context, o *domain.Order) (*domain.Order, error) {
	clone := *o
	clone.ID = fmt.Sprintf("order_%d", len(r.orders)+1)
	r.orders = append(r.orders, &clone)
	out := clone
	return &out, nil
}

func (r *stubOrderRepo) ListByUser(_ context.Context, userID string) ([]*domain.Order, error) {
	var out []*domain.Order
	for _, o := range r.orders {
		if o.UserID == userID {
			clone := *o
			out = append(out, &clone)
		}
	}
	return out, nil
}

func TestOrderService_Place(t *testing.T) {
	repo := &stubOrderRepo{}
	svc := NewOrderService(repo, zerolog.Nop())

	order, err := svc.Place(context.Background(), ports.PlaceOrderInput{
		UserID:  "user_1",
		ArtName: "Sunset",
		DeliveryDetails: domain.DeliveryDetails{
			Name:    "Ann Lee",
			Address: "1 Main St",
			City:    "Springfield",
			State:   "IL",
			ZipCode: "62701",
		},
	})
	if err != nil {
		t.Fatalf("Place returned error: %v", err)
	}
	if order.ID == "" || order.Reference == "" {
		t.Fatalf("expected id and reference, got %+v", order)
	}
	if order.ArtName != "Sunset" || order.DeliveryDetails.City != "Springfield" {
		t.Fatalf("unexpected order: %+v", order)
	}
}

func TestOrderService_ListOwn(t *testing.T) {
	repo := &stubOrderRepo{}
	svc := NewOrderService(repo, zerolog.Nop())

	details := domain.DeliveryDetails{Name: "Ann", Address: "1 Main St", City: "Springfield", State: "IL", ZipCode: "62701"}
	_, _ = svc.Place(context.Background(), ports.PlaceOrderInput{UserID: "user_1", ArtName: "Sunset", DeliveryDetails: details})
	_, _ = svc.Place(context.Background(), ports.PlaceOrderInput{UserID: "user_2", ArtName: "Dawn", DeliveryDetails: details})

	own, err := svc.ListOwn(context.Background(), "user_1")
	if err != nil {
		t.Fatalf("ListOwn returned error: %v", err)
	}
	if len(own) != 1 || own[0].ArtName != "Sunset" {
		t.Fatalf("unexpected orders: %+v", own)
	}
}
