package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"

	"floreria-be/internal/config"
	"floreria-be/internal/db"
	"floreria-be/internal/role"
	"floreria-be/internal/user"
)

// Deploy-time provisioning: reconciles roles, bootstraps the superuser and
// seeds the flower catalog. Every step is idempotent, re-running is safe.
func main() {
	cfg := config.LoadConfig()
	database := db.InitDB(cfg)
	defer database.Close()

	ctx := context.Background()

	if err := role.Sync(ctx, database); err != nil {
		log.Fatalf("role sync failed: %v", err)
	}

	if err := ensureSuperuser(ctx, database); err != nil {
		log.Fatalf("superuser bootstrap failed: %v", err)
	}

	if err := seedCatalog(ctx, database); err != nil {
		log.Fatalf("catalog seed failed: %v", err)
	}

	fmt.Println("Seed OK: roles, superuser y catálogo creados/actualizados.")
}

func ensureSuperuser(ctx context.Context, database *sql.DB) error {
	username := getenv("SUPERUSER_USERNAME", "admin")
	email := os.Getenv("SUPERUSER_EMAIL")
	password := getenv("SUPERUSER_PASSWORD", "admin")

	var exists bool
	err := database.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE username = $1)`, username).
		Scan(&exists)
	if err != nil {
		return err
	}
	if exists {
		fmt.Printf("Superuser '%s' already exists.\n", username)
		return nil
	}

	hash, err := user.HashPassword(password)
	if err != nil {
		return err
	}

	repo := user.NewRepository(database)
	if _, err := repo.Create(ctx, username, email, hash, true); err != nil {
		return err
	}

	fmt.Printf("Superuser '%s' created.\n", username)
	return nil
}

type seedProduct struct {
	ID       string
	SKU      string
	Name     string
	Price    int
	Stock    int
	Category string
}

func seedCatalog(ctx context.Context, database *sql.DB) error {
	catNames := []string{"Ramos", "Plantas", "Flores sueltas", "Accesorios"}
	cats := map[string]int{}

	for _, name := range catNames {
		var id int
		err := database.QueryRowContext(ctx, `
			INSERT INTO categories (name)
			VALUES ($1)
			ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
			RETURNING id
		`, name).Scan(&id)
		if err != nil {
			return fmt.Errorf("seed category %s: %w", name, err)
		}
		cats[name] = id
	}

	items := []seedProduct{
		{"P001", "RAMO-PRIM", "Ramo Primavera", 13990, 7, "Ramos"},
		{"P002", "RAMO-DELX", "Ramo Deluxe", 24990, 3, "Ramos"},
		{"P003", "PL-CACT-01", "Cactus mini", 5990, 25, "Plantas"},
		{"P004", "PL-SUC-02", "Suculenta Jade", 6990, 18, "Plantas"},
		{"P005", "FL-ROSA-UNI", "Rosa roja (unidad)", 1490, 12, "Flores sueltas"},
		{"P006", "FL-LIR-UNI", "Lirio blanco (unidad)", 1490, 6, "Flores sueltas"},
		{"P007", "ACC-JARR", "Jarrón vidrio", 7990, 9, "Accesorios"},
		{"P008", "ACC-TARJ", "Tarjeta dedicatoria", 990, 100, "Accesorios"},
	}

	for _, it := range items {
		_, err := database.ExecContext(ctx, `
			INSERT INTO products (id, sku, name, category_id, price, stock)
			VALUES ($1, $2, $3, $4, $5, $6)
			ON CONFLICT (id) DO UPDATE SET
				sku = EXCLUDED.sku,
				name = EXCLUDED.name,
				category_id = EXCLUDED.category_id,
				price = EXCLUDED.price,
				stock = EXCLUDED.stock
		`, it.ID, it.SKU, it.Name, cats[it.Category], it.Price, it.Stock)
		if err != nil {
			return fmt.Errorf("seed product %s: %w", it.ID, err)
		}
	}

	return nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
