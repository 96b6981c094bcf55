package admin

import (
	"net/http"
	"strconv"
	"time"

	handlershared "github.com/freshmart/freshmart/internal/http/handlers/shared"
	"github.com/freshmart/freshmart/internal/http/response"
	"github.com/freshmart/freshmart/internal/models"

	"github.com/gin-gonic/gin"
)

// OrderUser identifies the customer who placed an order.
type OrderUser struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// OrderLine is one archived order line.
type OrderLine struct {
	ProductID   uint         `json:"product_id"`
	ProductName string       `json:"product_name"`
	Quantity    int          `json:"quantity"`
	Price       models.Money `json:"price"`
}

// OrderSummary is one archived order with its customer.
type OrderSummary struct {
	ID         uint         `json:"id"`
	User       *OrderUser   `json:"user,omitempty"`
	TotalPrice models.Money `json:"total_price"`
	CreatedAt  string       `json:"created_at"`
	Items      []OrderLine  `json:"items"`
}

func newOrderSummary(order models.Order) OrderSummary {
	items := make([]OrderLine, 0, len(order.Items))
	for _, item := range order.Items {
		line := OrderLine{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		}
		if item.Product != nil {
			line.ProductName = item.Product.Name
		}
		items = append(items, line)
	}
	summary := OrderSummary{
		ID:         order.ID,
		TotalPrice: order.TotalPrice,
		CreatedAt:  order.CreatedAt.Format(time.RFC3339),
		Items:      items,
	}
	if order.User != nil {
		summary.User = &OrderUser{
			ID:    order.User.ID,
			Email: order.User.Email,
			Name:  order.User.Name,
		}
	}
	return summary
}

// ListOrders returns every order across all customers, newest first.
func (h *Handler) ListOrders(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = handlershared.NormalizePagination(page, pageSize)

	orders, total, err := h.OrderService.ListAll(page, pageSize)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to fetch orders", err)
		return
	}

	items := make([]OrderSummary, 0, len(orders))
	for _, order := range orders {
		items = append(items, newOrderSummary(order))
	}
	response.OKWithPage(c, items, response.NewPagination(page, pageSize, total))
}
