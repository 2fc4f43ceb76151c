// Package main provides the entry point for the PokéWiki backend.
package main

import (
	"log"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/pokewiki/pokewiki/internal/catalog"
	appConfig "github.com/pokewiki/pokewiki/internal/config"
	"github.com/pokewiki/pokewiki/internal/database/database"
	"github.com/pokewiki/pokewiki/internal/database/migrate"
	"github.com/pokewiki/pokewiki/internal/health"
	"github.com/pokewiki/pokewiki/internal/middleware"
	teamRouter "github.com/pokewiki/pokewiki/internal/team/router"
	"github.com/pokewiki/pokewiki/pkg/logger"
)

func main() {
	// Local setups keep secrets in a .env file; absence is fine.
	_ = godotenv.Load()

	cfg := appConfig.LoadFromEnv()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	zlog, err := logger.NewWithConfig(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	db, err := database.New()
	if err != nil {
		zlog.Fatalw("failed to connect to database", "error", err)
	}
	defer func() { _ = database.Close(db) }()

	if err := migrate.Up(db); err != nil {
		zlog.Fatalw("failed to apply migrations", "error", err)
	}

	gin.SetMode(cfg.GinMode)
	r := gin.New()
	r.Use(middleware.Recovery(zlog))
	r.Use(middleware.Logger(zlog))

	corsCfg := cors.DefaultConfig()
	if len(cfg.Server.AllowedOrigins) == 1 && cfg.Server.AllowedOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.Server.AllowedOrigins
	}
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	r.Use(cors.New(corsCfg))

	health.New(db, zlog).RegisterRoutes(r)

	cat := catalog.New(cfg.Catalog)
	teamRouter.RegisterRoutes(r, db, cat, cfg.Auth.JWTSecret, zlog)

	srv := &http.Server{
		Addr:         cfg.Server.GetAddress(),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	zlog.Infow("starting server", "addr", srv.Addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		zlog.Fatalw("server stopped", "error", err)
	}
}
