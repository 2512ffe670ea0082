package main

import (
	"log"

	"floreria-be/internal/category"
	"floreria-be/internal/config"
	"floreria-be/internal/db"
	"floreria-be/internal/httpapi"
	"floreria-be/internal/logger"
	"floreria-be/internal/media"
	"floreria-be/internal/order"
	"floreria-be/internal/product"
	"floreria-be/internal/user"
)

func main() {
	cfg := config.LoadConfig()

	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	database := db.InitDB(cfg)
	defer database.Close()

	userRepo := user.NewRepository(database)
	userSvc := user.NewService(userRepo)

	categoryRepo := category.NewRepository(database)
	categorySvc := category.NewService(categoryRepo)

	productRepo := product.NewRepository(database)
	productSvc := product.NewService(productRepo, categoryRepo)

	orderRepo := order.NewRepository(database)
	orderSvc := order.NewService(orderRepo)

	mediaStore := media.NewStorage(cfg.MediaDir, cfg.MediaURLPath)

	h := httpapi.NewHandler(userSvc, categorySvc, productSvc, orderSvc, mediaStore)
	router := httpapi.NewRouter(cfg, h)

	log.Printf("🌸 API server running at http://localhost:%s/", cfg.AppPort)
	log.Fatal(router.Run(":" + cfg.AppPort))
}
