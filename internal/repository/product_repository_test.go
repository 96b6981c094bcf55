package repository

import (
	"fmt"
	"testing"
	"time"

	"github.com/freshmart/freshmart/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupProductRepoTest(t *testing.T) (*GormProductRepository, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:product_repo_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Product{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	return NewProductRepository(db), db
}

func TestDecrementStockFloor(t *testing.T) {
	repo, db := setupProductRepoTest(t)
	product := &models.Product{
		Name:  "Apple",
		Price: models.NewMoneyFromDecimal(decimal.NewFromFloat(0.50)),
		Stock: 5,
	}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}

	affected, err := repo.DecrementStock(product.ID, 3)
	if err != nil {
		t.Fatalf("decrement failed: %v", err)
	}
	if affected != 1 {
		t.Fatalf("affected want 1 got %d", affected)
	}

	// Another 3 would go below zero, so the guard must refuse.
	affected, err = repo.DecrementStock(product.ID, 3)
	if err != nil {
		t.Fatalf("decrement failed: %v", err)
	}
	if affected != 0 {
		t.Fatalf("guarded decrement should not match, got %d rows", affected)
	}

	var row models.Product
	if err := db.First(&row, product.ID).Error; err != nil {
		t.Fatalf("load product failed: %v", err)
	}
	if row.Stock != 2 {
		t.Fatalf("stock want 2 got %d", row.Stock)
	}
}

func TestDecrementStockExactRemainder(t *testing.T) {
	repo, db := setupProductRepoTest(t)
	product := &models.Product{Name: "Milk", Stock: 4}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}

	affected, err := repo.DecrementStock(product.ID, 4)
	if err != nil {
		t.Fatalf("decrement failed: %v", err)
	}
	if affected != 1 {
		t.Fatalf("taking the exact remainder should match, got %d rows", affected)
	}

	var row models.Product
	db.First(&row, product.ID)
	if row.Stock != 0 {
		t.Fatalf("stock want 0 got %d", row.Stock)
	}
}

func TestProductListSearch(t *testing.T) {
	repo, db := setupProductRepoTest(t)
	for _, name := range []string{"Apple", "Banana", "Bread"} {
		if err := db.Create(&models.Product{Name: name}).Error; err != nil {
			t.Fatalf("create product failed: %v", err)
		}
	}

	products, total, err := repo.List(ProductListFilter{Search: "B"})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 2 || len(products) != 2 {
		t.Fatalf("want 2 matches, got total=%d len=%d", total, len(products))
	}

	products, total, err = repo.List(ProductListFilter{Page: 1, PageSize: 2})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 3 {
		t.Fatalf("paged total want 3 got %d", total)
	}
	if len(products) != 2 {
		t.Fatalf("page size want 2 got %d", len(products))
	}
}
