package service

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/freshmart/freshmart/internal/models"
	"github.com/freshmart/freshmart/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupCartServiceTest(t *testing.T) (*CartService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:cart_service_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Cart{},
		&models.CartItem{},
	); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	models.DB = db

	cartRepo := repository.NewCartRepository(db)
	productRepo := repository.NewProductRepository(db)
	return NewCartService(cartRepo, productRepo), db
}

func createCartProduct(t *testing.T, db *gorm.DB, name string, stock int) *models.Product {
	t.Helper()
	product := &models.Product{
		Name:  name,
		Price: models.NewMoneyFromDecimal(decimal.NewFromFloat(0.50)),
		Stock: stock,
	}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	return product
}

func TestGetCreatesEmptyCart(t *testing.T) {
	svc, _ := setupCartServiceTest(t)

	cart, err := svc.Get(7)
	if err != nil {
		t.Fatalf("get cart failed: %v", err)
	}
	if cart.UserID != 7 {
		t.Fatalf("cart user want 7 got %d", cart.UserID)
	}
	if len(cart.Items) != 0 {
		t.Fatalf("new cart should be empty, got %d lines", len(cart.Items))
	}

	again, err := svc.Get(7)
	if err != nil {
		t.Fatalf("second get failed: %v", err)
	}
	if again.ID != cart.ID {
		t.Fatalf("get should reuse the cart, got %d and %d", cart.ID, again.ID)
	}
}

func TestAddItemMergesQuantity(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	apple := createCartProduct(t, db, "Apple", 10)

	if _, err := svc.AddItem(1, apple.ID, 2); err != nil {
		t.Fatalf("first add failed: %v", err)
	}
	item, err := svc.AddItem(1, apple.ID, 3)
	if err != nil {
		t.Fatalf("second add failed: %v", err)
	}
	if item.Quantity != 5 {
		t.Fatalf("quantity want 5 got %d", item.Quantity)
	}
	if item.Product == nil || item.Product.Name != "Apple" {
		t.Fatalf("returned line should carry the product, got %+v", item.Product)
	}

	var lines int64
	db.Model(&models.CartItem{}).Count(&lines)
	if lines != 1 {
		t.Fatalf("repeat adds should merge into one line, got %d", lines)
	}
}

func TestAddItemRejectsBeyondStock(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	eggs := createCartProduct(t, db, "Eggs", 4)

	if _, err := svc.AddItem(1, eggs.ID, 3); err != nil {
		t.Fatalf("first add failed: %v", err)
	}
	_, err := svc.AddItem(1, eggs.ID, 2)
	if !errors.Is(err, ErrInsufficientStock) {
		t.Fatalf("expected ErrInsufficientStock, got %v", err)
	}

	var item models.CartItem
	if err := db.Where("product_id = ?", eggs.ID).First(&item).Error; err != nil {
		t.Fatalf("load line failed: %v", err)
	}
	if item.Quantity != 3 {
		t.Fatalf("rejected add must not change the line, got quantity %d", item.Quantity)
	}
}

func TestAddItemValidation(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	apple := createCartProduct(t, db, "Apple", 10)

	if _, err := svc.AddItem(1, apple.ID, 0); !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("zero quantity: expected ErrInvalidQuantity, got %v", err)
	}
	if _, err := svc.AddItem(1, apple.ID, -2); !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("negative quantity: expected ErrInvalidQuantity, got %v", err)
	}
	if _, err := svc.AddItem(1, 9999, 1); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("unknown product: expected ErrProductNotFound, got %v", err)
	}
}

func TestRemoveItemAbsentIsNoOp(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	apple := createCartProduct(t, db, "Apple", 10)

	if err := svc.RemoveItem(1, apple.ID); err != nil {
		t.Fatalf("removing from a missing cart should succeed, got %v", err)
	}

	if _, err := svc.AddItem(1, apple.ID, 2); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := svc.RemoveItem(1, 9999); err != nil {
		t.Fatalf("removing an absent line should succeed, got %v", err)
	}
	if err := svc.RemoveItem(1, apple.ID); err != nil {
		t.Fatalf("remove failed: %v", err)
	}

	var lines int64
	db.Model(&models.CartItem{}).Count(&lines)
	if lines != 0 {
		t.Fatalf("cart should be empty, got %d lines", lines)
	}
}
