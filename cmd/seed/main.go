// Seeds a local database with demo users, categories and listings so the API
// can be exercised by hand.
package main

import (
	"context"
	"database/sql"
	"log"

	_ "github.com/go-sql-driver/mysql"
	"github.com/shopspring/decimal"

	"github.com/rl1809/campus-market/internal/adapter/storage"
	"github.com/rl1809/campus-market/internal/config"
	"github.com/rl1809/campus-market/internal/core/service"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("failed to connect mysql: %v", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		log.Fatalf("failed to ping mysql: %v", err)
	}

	mysqlAdapter := storage.NewMySQLAdapter(db)
	if err := mysqlAdapter.Migrate(ctx); err != nil {
		log.Fatalf("failed to migrate schema: %v", err)
	}

	userService := service.NewUserService(mysqlAdapter)
	categoryService := service.NewCategoryService(mysqlAdapter)
	itemService := service.NewItemService(mysqlAdapter, mysqlAdapter)

	categories := map[string]string{
		"Textbooks":   "Course books and study guides",
		"Electronics": "Phones, laptops and accessories",
		"Furniture":   "Dorm and apartment furniture",
		"Clothing":    "Second-hand clothes and shoes",
	}

	categoryIDs := make(map[string]string)
	for name, description := range categories {
		category, err := categoryService.CreateCategory(ctx, name, description)
		if err != nil {
			log.Printf("category %s: %v (already seeded?)", name, err)
			continue
		}
		categoryIDs[name] = category.ID
		log.Printf("created category %s", name)
	}

	alice, err := userService.Register(ctx, service.RegisterInput{
		Username:   "alice",
		Password:   "password123",
		Email:      "alice@example.edu",
		SchoolName: "State University",
		Profile:    "Selling everything before graduation.",
	})
	if err != nil {
		log.Fatalf("register alice: %v", err)
	}

	if _, err := userService.Register(ctx, service.RegisterInput{
		Username:   "bob",
		Password:   "password123",
		Email:      "bob@example.edu",
		SchoolName: "State University",
	}); err != nil {
		log.Fatalf("register bob: %v", err)
	}
	log.Println("created users alice and bob (password: password123)")

	listings := []struct {
		title, description, category string
		price                        string
	}{
		{"Calculus, 8th edition", "Light highlighting, otherwise clean.", "Textbooks", "25.00"},
		{"Desk lamp", "LED, warm and cold light.", "Furniture", "8.50"},
		{"Mechanical keyboard", "Brown switches, one year old.", "Electronics", "45.00"},
	}

	for _, l := range listings {
		price, err := decimal.NewFromString(l.price)
		if err != nil {
			log.Fatalf("bad price %q: %v", l.price, err)
		}
		if _, err := itemService.CreateItem(ctx, alice.ID, service.ItemInput{
			Title:       l.title,
			Description: l.description,
			Price:       price,
			CategoryID:  categoryIDs[l.category],
		}); err != nil {
			log.Fatalf("create item %s: %v", l.title, err)
		}
		log.Printf("listed %s for %s", l.title, l.price)
	}

	log.Println("seed complete")
}
