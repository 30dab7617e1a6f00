// path: main.go
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/HimanshiWW/Doudou/database"
	"github.com/HimanshiWW/Doudou/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := database.Config{
		URI:    getenv("MONGO_URI", "mongodb://localhost:27017"),
		DBName: getenv("DB_NAME", "doudou"),
	}

	db, err := database.Connect(context.Background(), cfg)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}

	if err := db.EnsureIndexes(context.Background()); err != nil {
		log.Printf("index creation warnings: %v", err)
	}

	app := fiber.New()
	app.Use(recover.New())

	// Log concise request lines
	app.Use(logger.New(logger.Config{
		TimeFormat: "15:04:05",
	}))

	// Any origin with credentials; all methods and headers.
	app.Use(cors.New(cors.Config{
		AllowOriginsFunc: func(string) bool { return true },
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "*",
		AllowCredentials: true,
	}))

	routes.Register(app,
		database.NewLocationRepo(db),
		database.NewReviewRepo(db),
		database.NewSavedRepo(db),
		database.NewSeeder(db),
	)

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig
		_ = app.Shutdown()
	}()

	port := getenv("PORT", "8001")
	log.Printf("API listening on :%s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Printf("server stopped: %v", err)
	}

	sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.Disconnect(sctx); err != nil {
		log.Printf("db disconnect: %v", err)
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
