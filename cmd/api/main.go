package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/amirSA5/tiny-home-guide/internal/auth"
	"github.com/amirSA5/tiny-home-guide/internal/catalog"
	"github.com/amirSA5/tiny-home-guide/internal/config"
	"github.com/amirSA5/tiny-home-guide/internal/domain"
	httpapi "github.com/amirSA5/tiny-home-guide/internal/http"
	"github.com/amirSA5/tiny-home-guide/internal/recommend"
	"github.com/amirSA5/tiny-home-guide/internal/storage"
)

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("load config", "err", err)
		os.Exit(1)
	}

	cat := catalog.Default()
	if cfg.CatalogPath != "" {
		cat, err = storage.LoadCatalogFromFile(cfg.CatalogPath)
		if err != nil {
			logger.Error("load catalog", "path", cfg.CatalogPath, "err", err)
			os.Exit(1)
		}
		logger.Info("catalog loaded from file", "path", cfg.CatalogPath, "layouts", len(cat.Layouts))
	}

	store, err := storage.OpenSQLite(cfg.DatabasePath)
	if err != nil {
		logger.Error("open database", "path", cfg.DatabasePath, "err", err)
		os.Exit(1)
	}
	defer store.Close()

	if err := store.EnsureSchema(); err != nil {
		logger.Error("ensure schema", "err", err)
		os.Exit(1)
	}

	if err := ensureAdminFromEnv(store, cfg, logger); err != nil {
		logger.Error("bootstrap admin", "err", err)
		os.Exit(1)
	}

	engine := recommend.NewEngine(cat)
	tokens := auth.NewTokenService(cfg.JWTSecret, cfg.JWTTTL)

	srv := httpapi.NewServer(engine, store, tokens, logger)
	srv.BcryptCost = cfg.BcryptCost
	srv.AdminInviteCode = cfg.AdminInviteCode

	logger.Info("API listening", "addr", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, srv.Routes()); err != nil {
		logger.Error("server error", "err", err)
		os.Exit(1)
	}
}

// ensureAdminFromEnv seeds an admin account when ADMIN_EMAIL and
// ADMIN_PASSWORD are both set and no account with that email exists yet.
func ensureAdminFromEnv(store *storage.SQLiteStore, cfg config.Config, logger *slog.Logger) error {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		return nil
	}

	_, exists, err := store.GetUserByEmail(cfg.AdminEmail)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	hash, err := auth.HashPassword(cfg.AdminPassword, cfg.BcryptCost)
	if err != nil {
		return err
	}
	admin, err := store.CreateUser(cfg.AdminEmail, hash, domain.RoleAdmin)
	if err != nil {
		return err
	}
	logger.Info("admin account created", "email", admin.Email)
	return nil
}
