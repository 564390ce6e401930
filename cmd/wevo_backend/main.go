package main

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/wevomedia/wevo_media_app/internal/apperrors"
	portssvc "github.com/wevomedia/wevo_media_app/internal/core/ports/services"
	"github.com/wevomedia/wevo_media_app/internal/core/services"
	"github.com/wevomedia/wevo_media_app/internal/dto"
	"github.com/wevomedia/wevo_media_app/internal/handlers"
	"github.com/wevomedia/wevo_media_app/internal/middleware"
	"github.com/wevomedia/wevo_media_app/internal/platform/config"
	"github.com/wevomedia/wevo_media_app/internal/repositories/database/pgsql"
	"github.com/wevomedia/wevo_media_app/internal/utils"
	"github.com/wevomedia/wevo_media_app/pkg/database"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := context.Background()

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.ClosePgxPool(dbPool)
	logger.Info("Database connection pool established.")

	// Provision the schema. Safe to run on every startup; a provisioned
	// database comes out unchanged.
	schemaManager := pgsql.NewSchemaManager(dbPool)
	if err := schemaManager.Provision(ctx); err != nil {
		logger.Error("Failed to provision database schema", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("Database schema provisioned.")

	repos := pgsql.NewRepositoryProvider(dbPool)
	serviceContainer := services.NewServiceContainer(repos)

	if err := bootstrapAdmin(ctx, logger, cfg, serviceContainer.User); err != nil {
		logger.Error("Failed to bootstrap admin user", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := utils.RegisterCustomValidators(); err != nil {
		logger.Error("Failed to register custom validators", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowCredentials = false
	corsConfig.AddAllowHeaders("Authorization")
	r.Use(cors.New(corsConfig))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// bootstrapAdmin creates the configured admin account if it does not exist
// yet, so a fresh deployment has someone who can log in.
func bootstrapAdmin(ctx context.Context, logger *slog.Logger, cfg *config.Config, userService portssvc.UserSvcFacade) error {
	if cfg.AdminTaxID == "" || cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		logger.Warn("Admin bootstrap skipped: ADMIN_TAX_ID, ADMIN_EMAIL or ADMIN_PASSWORD not set")
		return nil
	}

	_, err := userService.GetUserByTaxID(ctx, cfg.AdminTaxID)
	if err == nil {
		return nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return err
	}

	_, err = userService.CreateUser(ctx, dto.CreateUserRequest{
		TaxID:    cfg.AdminTaxID,
		Name:     cfg.AdminName,
		Email:    cfg.AdminEmail,
		Password: cfg.AdminPassword,
		Role:     "admin",
	})
	if err != nil {
		return err
	}

	logger.Info("Bootstrap admin user created", slog.String("admin_tax_id", cfg.AdminTaxID))
	return nil
}
