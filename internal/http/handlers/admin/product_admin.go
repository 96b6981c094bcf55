package admin

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/freshmart/freshmart/internal/http/response"
	"github.com/freshmart/freshmart/internal/models"
	"github.com/freshmart/freshmart/internal/service"

	"github.com/gin-gonic/gin"
)

// ProductRequest carries catalog create/update fields.
type ProductRequest struct {
	Name        string       `json:"name" binding:"required"`
	Description string       `json:"description"`
	Price       models.Money `json:"price"`
	ImageURL    string       `json:"image_url"`
	Stock       int          `json:"stock"`
}

func (r ProductRequest) toInput() service.ProductInput {
	return service.ProductInput{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		ImageURL:    r.ImageURL,
		Stock:       r.Stock,
	}
}

func respondProductError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrProductNameRequired):
		respondError(c, http.StatusBadRequest, "product name is required", nil)
	case errors.Is(err, service.ErrDuplicateProductName):
		respondError(c, http.StatusBadRequest, "product name already in use", nil)
	case errors.Is(err, service.ErrInvalidPrice):
		respondError(c, http.StatusBadRequest, "price must not be negative", nil)
	case errors.Is(err, service.ErrInvalidStock):
		respondError(c, http.StatusBadRequest, "stock must not be negative", nil)
	case errors.Is(err, service.ErrProductNotFound):
		respondError(c, http.StatusNotFound, "product not found", nil)
	default:
		respondError(c, http.StatusInternalServerError, "product operation failed", err)
	}
}

// CreateProduct adds a catalog product.
func (h *Handler) CreateProduct(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "product name is required", err)
		return
	}

	product, err := h.ProductService.Create(req.toInput())
	if err != nil {
		respondProductError(c, err)
		return
	}

	response.Created(c, gin.H{
		"message": "Product created",
		"product": product,
	})
}

// UpdateProduct replaces a product's catalog fields.
func (h *Handler) UpdateProduct(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		respondError(c, http.StatusBadRequest, "invalid product id", nil)
		return
	}

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "product name is required", err)
		return
	}

	product, err := h.ProductService.Update(uint(id), req.toInput())
	if err != nil {
		respondProductError(c, err)
		return
	}

	response.OK(c, gin.H{
		"message": "Product updated",
		"product": product,
	})
}

// DeleteProduct retires a product from the catalog.
func (h *Handler) DeleteProduct(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		respondError(c, http.StatusBadRequest, "invalid product id", nil)
		return
	}

	if err := h.ProductService.Delete(uint(id)); err != nil {
		respondProductError(c, err)
		return
	}

	response.OK(c, gin.H{"message": "Product deleted"})
}
