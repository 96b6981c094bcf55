package repository

import (
	"fmt"
	"testing"
	"time"

	"github.com/freshmart/freshmart/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupCartRepoTest(t *testing.T) (*GormCartRepository, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:cart_repo_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Product{}, &models.Cart{}, &models.CartItem{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	return NewCartRepository(db), db
}

func TestGetOrCreateByUserIdempotent(t *testing.T) {
	repo, db := setupCartRepoTest(t)

	first, err := repo.GetOrCreateByUser(1)
	if err != nil {
		t.Fatalf("first get-or-create failed: %v", err)
	}
	second, err := repo.GetOrCreateByUser(1)
	if err != nil {
		t.Fatalf("second get-or-create failed: %v", err)
	}
	if first.ID != second.ID {
		t.Fatalf("same user should get the same cart, got %d and %d", first.ID, second.ID)
	}

	var carts int64
	db.Model(&models.Cart{}).Count(&carts)
	if carts != 1 {
		t.Fatalf("want 1 cart got %d", carts)
	}
}

func TestCartItemsPreloadProducts(t *testing.T) {
	repo, db := setupCartRepoTest(t)
	product := &models.Product{Name: "Apple", Stock: 10}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}

	cart, err := repo.GetOrCreateByUser(1)
	if err != nil {
		t.Fatalf("get-or-create failed: %v", err)
	}
	if err := repo.UpsertItem(&models.CartItem{CartID: cart.ID, ProductID: product.ID, Quantity: 2}); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}

	loaded, err := repo.GetByUser(1)
	if err != nil {
		t.Fatalf("get by user failed: %v", err)
	}
	if len(loaded.Items) != 1 {
		t.Fatalf("want 1 line got %d", len(loaded.Items))
	}
	if loaded.Items[0].Product == nil || loaded.Items[0].Product.Name != "Apple" {
		t.Fatalf("line should preload its product, got %+v", loaded.Items[0].Product)
	}

	// Retired products still resolve on existing lines.
	if err := db.Delete(&models.Product{}, product.ID).Error; err != nil {
		t.Fatalf("soft delete failed: %v", err)
	}
	loaded, err = repo.GetByUser(1)
	if err != nil {
		t.Fatalf("get by user failed: %v", err)
	}
	if loaded.Items[0].Product == nil {
		t.Fatalf("soft-deleted product should still preload")
	}
}

func TestClearItems(t *testing.T) {
	repo, db := setupCartRepoTest(t)
	product := &models.Product{Name: "Milk", Stock: 10}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}

	cart, err := repo.GetOrCreateByUser(1)
	if err != nil {
		t.Fatalf("get-or-create failed: %v", err)
	}
	if err := repo.UpsertItem(&models.CartItem{CartID: cart.ID, ProductID: product.ID, Quantity: 1}); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}
	if err := repo.ClearItems(cart.ID); err != nil {
		t.Fatalf("clear failed: %v", err)
	}

	var lines int64
	db.Model(&models.CartItem{}).Count(&lines)
	if lines != 0 {
		t.Fatalf("cart lines should be gone, got %d", lines)
	}

	loaded, err := repo.GetByUser(1)
	if err != nil {
		t.Fatalf("get by user failed: %v", err)
	}
	if loaded == nil {
		t.Fatalf("clearing lines must keep the cart row")
	}
}
