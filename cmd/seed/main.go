package main

import (
	"fmt"

	"github.com/freshmart/freshmart/internal/config"
	"github.com/freshmart/freshmart/internal/logger"
	"github.com/freshmart/freshmart/internal/models"

	"github.com/shopspring/decimal"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	products := []models.Product{
		{
			Name:        "Apple",
			Description: "Fresh red apples, sold per piece",
			Price:       models.NewMoneyFromDecimal(decimal.NewFromFloat(0.50)),
			ImageURL:    "/images/apple.jpg",
			Stock:       10,
		},
		{
			Name:        "Banana",
			Description: "Ripe bananas, sold per piece",
			Price:       models.NewMoneyFromDecimal(decimal.NewFromFloat(0.30)),
			ImageURL:    "/images/banana.jpg",
			Stock:       10,
		},
		{
			Name:        "Orange",
			Description: "Juicy oranges, sold per piece",
			Price:       models.NewMoneyFromDecimal(decimal.NewFromFloat(0.60)),
			ImageURL:    "/images/orange.jpg",
			Stock:       10,
		},
		{
			Name:        "Milk",
			Description: "Whole milk, 1 liter carton",
			Price:       models.NewMoneyFromDecimal(decimal.NewFromFloat(1.20)),
			ImageURL:    "/images/milk.jpg",
			Stock:       10,
		},
		{
			Name:        "Bread",
			Description: "Freshly baked white loaf",
			Price:       models.NewMoneyFromDecimal(decimal.NewFromFloat(1.00)),
			ImageURL:    "/images/bread.jpg",
			Stock:       10,
		},
		{
			Name:        "Eggs",
			Description: "Free-range eggs, box of 10",
			Price:       models.NewMoneyFromDecimal(decimal.NewFromFloat(2.00)),
			ImageURL:    "/images/eggs.jpg",
			Stock:       10,
		},
	}

	for _, prod := range products {
		var existing models.Product
		if err := models.DB.Where("name = ?", prod.Name).First(&existing).Error; err != nil {
			if err := models.DB.Create(&prod).Error; err != nil {
				stdLog.Printf("Failed to create product %s: %v", prod.Name, err)
			} else {
				stdLog.Printf("Created product: %s", prod.Name)
			}
			continue
		}
		existing.Description = prod.Description
		existing.Price = prod.Price
		existing.ImageURL = prod.ImageURL
		if err := models.DB.Save(&existing).Error; err != nil {
			stdLog.Printf("Failed to update product %s: %v", prod.Name, err)
		} else {
			stdLog.Printf("Updated product: %s", prod.Name)
		}
	}

	fmt.Println("Seed data ready:")
	fmt.Printf("- %d catalog products\n", len(products))
}
