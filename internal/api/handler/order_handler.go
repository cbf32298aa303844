package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/artisio/marketplace-api/internal/core/domain"
	"github.com/artisio/marketplace-api/internal/core/ports"
)

// OrderHandler handles HTTP requests for purchases.
type OrderHandler struct {
	service ports.OrderService
}

func NewOrderHandler(service ports.OrderService) *OrderHandler {
	return &OrderHandler{service: service}
}

type deliveryDetailsRequest struct {
	Name    string `json:"name"     validate:"required"`
	Address string `json:"address"  validate:"required"`
	City    string `json:"city"     validate:"required"`
	State   string `json:"state"    validate:"required"`
	ZipCode string `json:"zip_code" validate:"required"`
}

type createOrderRequest struct {
	ArtName         string                 `json:"art_name"         validate:"required"`
	DeliveryDetails deliveryDetailsRequest `json:"delivery_details" validate:"required"`
}

type orderResponse struct {
	Success bool          `json:"success"`
	Message string        `json:"message,omitempty"`
	Order   *domain.Order `json:"order"`
}

type ordersResponse struct {
	Success bool            `json:"success"`
	Orders  []*domain.Order `json:"orders"`
}

// Place handles POST /orders. Payment settles with an external provider
// before this call; only the fulfilment record is stored.
//
// @Summary      Place an order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createOrderRequest  true  "Order details"
// @Success      201   {object}  orderResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /orders [post]
func (h *OrderHandler) Place(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "Art name and delivery details are required."})
	}

	order, err := h.service.Place(c.Request().Context(), ports.PlaceOrderInput{
		UserID:  user.ID,
		ArtName: req.ArtName,
		DeliveryDetails: domain.DeliveryDetails{
			Name:    req.DeliveryDetails.Name,
			Address: req.DeliveryDetails.Address,
			City:    req.DeliveryDetails.City,
			State:   req.DeliveryDetails.State,
			ZipCode: req.DeliveryDetails.ZipCode,
		},
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, orderResponse{
		Success: true,
		Message: "Order created successfully.",
		Order:   order,
	})
}

// ListOwn handles GET /orders.
//
// @Summary      List the caller's orders
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ordersResponse
// @Router       /orders [get]
func (h *OrderHandler) ListOwn(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	orders, err := h.service.ListOwn(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, ordersResponse{Success: true, Orders: orders})
}
