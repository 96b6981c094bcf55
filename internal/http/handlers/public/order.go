package public

import (
	"net/http"
	"strconv"
	"time"

	handlershared "github.com/freshmart/freshmart/internal/http/handlers/shared"
	"github.com/freshmart/freshmart/internal/http/response"
	"github.com/freshmart/freshmart/internal/models"

	"github.com/gin-gonic/gin"
)

// OrderItemResponse is one order line with its price snapshot.
type OrderItemResponse struct {
	ProductID uint         `json:"product_id"`
	Quantity  int          `json:"quantity"`
	Price     models.Money `json:"price"`
	Product   *CartProduct `json:"product,omitempty"`
}

// OrderResponse is an archived order.
type OrderResponse struct {
	ID         uint                `json:"id"`
	UserID     uint                `json:"user_id"`
	TotalPrice models.Money        `json:"total_price"`
	CreatedAt  string              `json:"created_at"`
	Items      []OrderItemResponse `json:"items"`
}

func newOrderResponse(order models.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		line := OrderItemResponse{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		}
		if item.Product != nil {
			line.Product = &CartProduct{
				ID:       item.Product.ID,
				Name:     item.Product.Name,
				Price:    item.Product.Price,
				ImageURL: item.Product.ImageURL,
				Stock:    item.Product.Stock,
			}
		}
		items = append(items, line)
	}
	return OrderResponse{
		ID:         order.ID,
		UserID:     order.UserID,
		TotalPrice: order.TotalPrice,
		CreatedAt:  order.CreatedAt.Format(time.RFC3339),
		Items:      items,
	}
}

// Checkout turns the cart into an order.
func (h *Handler) Checkout(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	orderID, err := h.CheckoutService.Checkout(uid)
	if err != nil {
		respondCheckoutError(c, err)
		return
	}

	response.OK(c, gin.H{
		"message": "Order placed successfully",
		"orderId": orderID,
	})
}

// MyOrders returns the user's own orders, newest first.
func (h *Handler) MyOrders(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = handlershared.NormalizePagination(page, pageSize)

	orders, total, err := h.OrderService.ListForUser(uid, page, pageSize)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to fetch orders", err)
		return
	}

	items := make([]OrderResponse, 0, len(orders))
	for _, order := range orders {
		items = append(items, newOrderResponse(order))
	}
	response.OKWithPage(c, items, response.NewPagination(page, pageSize, total))
}
