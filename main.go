package main

import (
	"context"
	"log"
	"time"

	"offerforge/api"
	"offerforge/internal/config"
	"offerforge/internal/container"
	"offerforge/internal/errors"
	"offerforge/internal/migration"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("[Main] No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[Main] Configuration error: %v", err)
	}
	gin.SetMode(cfg.Server.GinMode)

	db, err := initDatabase(cfg)
	if err != nil {
		log.Fatalf("[Main] Database error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	runner := migration.NewRunner()
	if err := runner.Run(ctx, db); err != nil {
		log.Fatalf("[Main] Migration error: %v", err)
	}
	log.Printf("[Main] Schema ready (version %s)", runner.Version())

	c, err := container.New(ctx, cfg, db)
	if err != nil {
		log.Fatalf("[Main] Container error: %v", err)
	}
	defer c.Close()

	server := api.NewServer(c.Offers, c.Optimizer, c.Performance, c.Exporter)
	if err := server.Run(cfg.Server.Port); err != nil {
		log.Fatalf("[Main] Server error: %v", err)
	}
}

func initDatabase(cfg *config.Config) (*sqlx.DB, error) {
	db, err := sqlx.Connect("postgres", cfg.Database.URL)
	if err != nil {
		return nil, errors.Wrap(err, "connect to database")
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)
	return db, nil
}
