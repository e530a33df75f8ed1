package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/ggrange/cuistot/internal/api"
	"github.com/ggrange/cuistot/internal/cli"
	"github.com/ggrange/cuistot/internal/db"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "fix-ingredients" {
		runFixIngredients(os.Args[2:])
		return
	}

	location := mustLoadLocation(getEnv("TZ", "UTC"))
	time.Local = location

	dbPath := getEnv("DB_PATH", filepath.Join("data", "cuistot.db"))
	port := getEnv("PORT", "8080")
	uploadDir := getEnv("UPLOAD_DIR", filepath.Join("data", "uploads"))

	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		log.Fatalf("database init failed: %v", err)
	}

	handler, err := api.NewHandler(database, location, uploadDir)
	if err != nil {
		log.Fatalf("handler init failed: %v", err)
	}

	app := fiber.New(fiber.Config{
		AppName:               "Cuistot",
		DisableStartupMessage: true,
		BodyLimit:             32 << 20,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())
	app.Use(cors.New())

	app.Static("/uploads", uploadDir)
	api.RegisterRoutes(app, handler)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Printf("server shutdown failed: %v", err)
		}
	}()

	log.Printf("Cuistot listening on http://0.0.0.0:%s (db: %s, tz: %s)", port, dbPath, location.String())
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}

func runFixIngredients(args []string) {
	flags := flag.NewFlagSet("fix-ingredients", flag.ExitOnError)
	dbPath := flags.String("db", filepath.Join("data", "cuistot.db"), "path to the sqlite database")
	dryRun := flags.Bool("dry-run", false, "print planned changes without applying them")
	if err := flags.Parse(args); err != nil {
		log.Fatalf("fix-ingredients: %v", err)
	}

	if err := cli.RunFixIngredientsCommand(*dbPath, *dryRun); err != nil {
		log.Fatalf("fix-ingredients: %v", err)
	}
}

func mustLoadLocation(name string) *time.Location {
	location, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("invalid TZ %q, falling back to UTC", name)
		return time.UTC
	}
	return location
}

func getEnv(key string, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
