package service

import (
	"strings"

	"github.com/freshmart/freshmart/internal/models"
	"github.com/freshmart/freshmart/internal/repository"
)

// ProductInput carries catalog create/update fields.
type ProductInput struct {
	Name        string
	Description string
	Price       models.Money
	ImageURL    string
	Stock       int
}

// ProductService manages the catalog.
type ProductService struct {
	productRepo repository.ProductRepository
}

// NewProductService creates a product service.
func NewProductService(productRepo repository.ProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

// List returns catalog products matching the filter plus the total count.
func (s *ProductService) List(filter repository.ProductListFilter) ([]models.Product, int64, error) {
	return s.productRepo.List(filter)
}

// Get returns a single product.
func (s *ProductService) Get(id uint) (*models.Product, error) {
	if id == 0 {
		return nil, ErrProductNotFound
	}
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

// Create adds a catalog product.
func (s *ProductService) Create(input ProductInput) (*models.Product, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrProductNameRequired
	}
	if input.Price.IsNegative() {
		return nil, ErrInvalidPrice
	}
	if input.Stock < 0 {
		return nil, ErrInvalidStock
	}

	exist, err := s.productRepo.GetByName(name)
	if err != nil {
		return nil, err
	}
	if exist != nil {
		return nil, ErrDuplicateProductName
	}

	product := &models.Product{
		Name:        name,
		Description: strings.TrimSpace(input.Description),
		Price:       input.Price,
		ImageURL:    strings.TrimSpace(input.ImageURL),
		Stock:       input.Stock,
	}
	if err := s.productRepo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

// Update replaces a product's catalog fields.
func (s *ProductService) Update(id uint, input ProductInput) (*models.Product, error) {
	product, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrProductNameRequired
	}
	if input.Price.IsNegative() {
		return nil, ErrInvalidPrice
	}
	if input.Stock < 0 {
		return nil, ErrInvalidStock
	}

	if name != product.Name {
		exist, err := s.productRepo.GetByName(name)
		if err != nil {
			return nil, err
		}
		if exist != nil && exist.ID != product.ID {
			return nil, ErrDuplicateProductName
		}
	}

	product.Name = name
	product.Description = strings.TrimSpace(input.Description)
	product.Price = input.Price
	product.ImageURL = strings.TrimSpace(input.ImageURL)
	product.Stock = input.Stock
	if err := s.productRepo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

// Delete retires a product from the catalog. Order history keeps its
// snapshot lines, so this is a soft delete.
func (s *ProductService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.productRepo.Delete(id)
}
