package public

import (
	"net/http"

	"github.com/freshmart/freshmart/internal/http/response"
	"github.com/freshmart/freshmart/internal/models"

	"github.com/gin-gonic/gin"
)

// CartAddRequest adds units of a product to the cart.
type CartAddRequest struct {
	ProductID uint `json:"productId" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required"`
}

// CartRemoveRequest drops a product line from the cart.
type CartRemoveRequest struct {
	ProductID uint `json:"productId" binding:"required"`
}

// CartProduct is the product summary embedded in cart lines.
type CartProduct struct {
	ID       uint         `json:"id"`
	Name     string       `json:"name"`
	Price    models.Money `json:"price"`
	ImageURL string       `json:"image_url"`
	Stock    int          `json:"stock"`
}

// CartItemResponse is one cart line.
type CartItemResponse struct {
	ProductID uint         `json:"product_id"`
	Quantity  int          `json:"quantity"`
	Product   *CartProduct `json:"product,omitempty"`
}

func newCartItemResponse(item models.CartItem) CartItemResponse {
	resp := CartItemResponse{
		ProductID: item.ProductID,
		Quantity:  item.Quantity,
	}
	if item.Product != nil {
		resp.Product = &CartProduct{
			ID:       item.Product.ID,
			Name:     item.Product.Name,
			Price:    item.Product.Price,
			ImageURL: item.Product.ImageURL,
			Stock:    item.Product.Stock,
		}
	}
	return resp
}

// GetCart returns the user's cart, creating an empty one on first use.
func (h *Handler) GetCart(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	cart, err := h.CartService.Get(uid)
	if err != nil {
		respondCartError(c, err)
		return
	}

	items := make([]CartItemResponse, 0, len(cart.Items))
	for _, item := range cart.Items {
		items = append(items, newCartItemResponse(item))
	}
	response.OK(c, gin.H{"items": items})
}

// AddCartItem puts a product into the cart.
func (h *Handler) AddCartItem(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	var req CartAddRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "productId and quantity are required", err)
		return
	}

	item, err := h.CartService.AddItem(uid, req.ProductID, req.Quantity)
	if err != nil {
		respondCartError(c, err)
		return
	}

	response.OK(c, gin.H{
		"message": "Item added to cart",
		"item":    newCartItemResponse(*item),
	})
}

// RemoveCartItem drops a product line. Removing an absent line is fine.
func (h *Handler) RemoveCartItem(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	var req CartRemoveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "productId is required", err)
		return
	}

	if err := h.CartService.RemoveItem(uid, req.ProductID); err != nil {
		respondCartError(c, err)
		return
	}

	response.OK(c, gin.H{"message": "Item removed from cart"})
}
