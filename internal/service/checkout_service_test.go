package service

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/freshmart/freshmart/internal/models"
	"github.com/freshmart/freshmart/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupCheckoutTest(t *testing.T) (*CheckoutService, *CartService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:checkout_service_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Cart{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
	); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	models.DB = db

	cartRepo := repository.NewCartRepository(db)
	productRepo := repository.NewProductRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	checkout := NewCheckoutService(cartRepo, productRepo, orderRepo)
	cart := NewCartService(cartRepo, productRepo)
	return checkout, cart, db
}

func createCheckoutUser(t *testing.T, db *gorm.DB, id uint) {
	t.Helper()
	user := models.User{
		ID:           id,
		Email:        fmt.Sprintf("shopper_%d@example.com", id),
		PasswordHash: "hash",
		Role:         "customer",
		Status:       "active",
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user failed: %v", err)
	}
}

func createCheckoutProduct(t *testing.T, db *gorm.DB, name string, price float64, stock int) *models.Product {
	t.Helper()
	product := &models.Product{
		Name:  name,
		Price: models.NewMoneyFromDecimal(decimal.NewFromFloat(price)),
		Stock: stock,
	}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	return product
}

func TestCheckoutCreatesOrderAndClearsCart(t *testing.T) {
	checkout, cart, db := setupCheckoutTest(t)
	createCheckoutUser(t, db, 1)
	apple := createCheckoutProduct(t, db, "Apple", 0.50, 10)

	if _, err := cart.AddItem(1, apple.ID, 3); err != nil {
		t.Fatalf("add item failed: %v", err)
	}

	orderID, err := checkout.Checkout(1)
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}
	if orderID == 0 {
		t.Fatalf("expected order id, got 0")
	}

	var order models.Order
	if err := db.Preload("Items").First(&order, orderID).Error; err != nil {
		t.Fatalf("load order failed: %v", err)
	}
	if !order.TotalPrice.Equal(decimal.NewFromFloat(1.50)) {
		t.Fatalf("total want 1.50 got %s", order.TotalPrice.String())
	}
	if len(order.Items) != 1 {
		t.Fatalf("expected 1 order line, got %d", len(order.Items))
	}
	if order.Items[0].Quantity != 3 || !order.Items[0].Price.Equal(decimal.NewFromFloat(0.50)) {
		t.Fatalf("unexpected order line: %+v", order.Items[0])
	}

	var product models.Product
	if err := db.First(&product, apple.ID).Error; err != nil {
		t.Fatalf("load product failed: %v", err)
	}
	if product.Stock != 7 {
		t.Fatalf("stock want 7 got %d", product.Stock)
	}

	var remaining int64
	db.Model(&models.CartItem{}).Count(&remaining)
	if remaining != 0 {
		t.Fatalf("cart should be empty after checkout, %d lines left", remaining)
	}
}

func TestCheckoutEmptyCart(t *testing.T) {
	checkout, cart, db := setupCheckoutTest(t)
	createCheckoutUser(t, db, 1)

	if _, err := cart.Get(1); err != nil {
		t.Fatalf("get cart failed: %v", err)
	}

	_, err := checkout.Checkout(1)
	if !errors.Is(err, ErrEmptyCart) {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}

	var orders int64
	db.Model(&models.Order{}).Count(&orders)
	if orders != 0 {
		t.Fatalf("no order should exist, got %d", orders)
	}
}

func TestCheckoutInsufficientStockRollsBack(t *testing.T) {
	checkout, cart, db := setupCheckoutTest(t)
	createCheckoutUser(t, db, 1)
	milk := createCheckoutProduct(t, db, "Milk", 1.20, 10)
	eggs := createCheckoutProduct(t, db, "Eggs", 2.00, 5)

	if _, err := cart.AddItem(1, milk.ID, 2); err != nil {
		t.Fatalf("add milk failed: %v", err)
	}
	if _, err := cart.AddItem(1, eggs.ID, 4); err != nil {
		t.Fatalf("add eggs failed: %v", err)
	}

	// Another sale drains the eggs between add and checkout.
	if err := db.Model(&models.Product{}).Where("id = ?", eggs.ID).Update("stock", 3).Error; err != nil {
		t.Fatalf("shrink stock failed: %v", err)
	}

	_, err := checkout.Checkout(1)
	if !errors.Is(err, ErrInsufficientStock) {
		t.Fatalf("expected ErrInsufficientStock, got %v", err)
	}
	if !strings.Contains(err.Error(), "Eggs") {
		t.Fatalf("error should name the understocked product, got %q", err.Error())
	}

	var milkRow, eggsRow models.Product
	db.First(&milkRow, milk.ID)
	db.First(&eggsRow, eggs.ID)
	if milkRow.Stock != 10 {
		t.Fatalf("milk stock should be restored to 10, got %d", milkRow.Stock)
	}
	if eggsRow.Stock != 3 {
		t.Fatalf("eggs stock want 3 got %d", eggsRow.Stock)
	}

	var orders int64
	db.Model(&models.Order{}).Count(&orders)
	if orders != 0 {
		t.Fatalf("failed checkout must not leave an order, got %d", orders)
	}

	var lines int64
	db.Model(&models.CartItem{}).Count(&lines)
	if lines != 2 {
		t.Fatalf("cart should be intact after rollback, got %d lines", lines)
	}
}

func TestCheckoutPriceSnapshotImmutable(t *testing.T) {
	checkout, cart, db := setupCheckoutTest(t)
	createCheckoutUser(t, db, 1)
	bread := createCheckoutProduct(t, db, "Bread", 1.00, 10)

	if _, err := cart.AddItem(1, bread.ID, 2); err != nil {
		t.Fatalf("add item failed: %v", err)
	}
	orderID, err := checkout.Checkout(1)
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}

	if err := db.Model(&models.Product{}).Where("id = ?", bread.ID).
		Update("price", models.NewMoneyFromDecimal(decimal.NewFromFloat(9.99))).Error; err != nil {
		t.Fatalf("reprice failed: %v", err)
	}

	var order models.Order
	if err := db.Preload("Items").First(&order, orderID).Error; err != nil {
		t.Fatalf("load order failed: %v", err)
	}
	if !order.Items[0].Price.Equal(decimal.NewFromFloat(1.00)) {
		t.Fatalf("order line should keep the purchase-time price, got %s", order.Items[0].Price.String())
	}
	if !order.TotalPrice.Equal(decimal.NewFromFloat(2.00)) {
		t.Fatalf("order total should keep the purchase-time price, got %s", order.TotalPrice.String())
	}
}

func TestCheckoutOversellExactlyOneSucceeds(t *testing.T) {
	checkout, cart, db := setupCheckoutTest(t)
	createCheckoutUser(t, db, 1)
	createCheckoutUser(t, db, 2)
	orange := createCheckoutProduct(t, db, "Orange", 0.60, 5)

	if _, err := cart.AddItem(1, orange.ID, 4); err != nil {
		t.Fatalf("add for first shopper failed: %v", err)
	}
	if _, err := cart.AddItem(2, orange.ID, 4); err != nil {
		t.Fatalf("add for second shopper failed: %v", err)
	}

	_, err1 := checkout.Checkout(1)
	_, err2 := checkout.Checkout(2)

	succeeded := 0
	for _, err := range []error{err1, err2} {
		if err == nil {
			succeeded++
			continue
		}
		if !errors.Is(err, ErrInsufficientStock) {
			t.Fatalf("expected ErrInsufficientStock for the loser, got %v", err)
		}
	}
	if succeeded != 1 {
		t.Fatalf("exactly one checkout should succeed, got %d", succeeded)
	}

	var product models.Product
	db.First(&product, orange.ID)
	if product.Stock != 1 {
		t.Fatalf("stock want 1 got %d", product.Stock)
	}
	if product.Stock < 0 {
		t.Fatalf("stock must never go negative, got %d", product.Stock)
	}

	var orders int64
	db.Model(&models.Order{}).Count(&orders)
	if orders != 1 {
		t.Fatalf("exactly one order should exist, got %d", orders)
	}
}
