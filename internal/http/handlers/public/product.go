package public

import (
	"errors"
	"net/http"
	"strconv"

	handlershared "github.com/freshmart/freshmart/internal/http/handlers/shared"
	"github.com/freshmart/freshmart/internal/http/response"
	"github.com/freshmart/freshmart/internal/models"
	"github.com/freshmart/freshmart/internal/repository"
	"github.com/freshmart/freshmart/internal/service"

	"github.com/gin-gonic/gin"
)

// ProductResponse is a catalog product.
type ProductResponse struct {
	ID          uint         `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Price       models.Money `json:"price"`
	ImageURL    string       `json:"image_url"`
	Stock       int          `json:"stock"`
}

func newProductResponse(product models.Product) ProductResponse {
	return ProductResponse{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		ImageURL:    product.ImageURL,
		Stock:       product.Stock,
	}
}

// ListProducts returns the catalog, optionally filtered by a search term.
func (h *Handler) ListProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = handlershared.NormalizePagination(page, pageSize)

	products, total, err := h.ProductService.List(repository.ProductListFilter{
		Page:     page,
		PageSize: pageSize,
		Search:   c.Query("search"),
	})
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to fetch products", err)
		return
	}

	items := make([]ProductResponse, 0, len(products))
	for _, product := range products {
		items = append(items, newProductResponse(product))
	}
	response.OKWithPage(c, items, response.NewPagination(page, pageSize, total))
}

// GetProduct returns one catalog product.
func (h *Handler) GetProduct(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		respondError(c, http.StatusBadRequest, "invalid product id", nil)
		return
	}

	product, err := h.ProductService.Get(uint(id))
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			respondError(c, http.StatusNotFound, "product not found", nil)
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to fetch product", err)
		return
	}

	response.OK(c, newProductResponse(*product))
}
