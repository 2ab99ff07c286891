package main

import (
	"context"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	authadapter "github.com/NanduBolleddu/Todofy-project/internal/adapter/auth"
	dbadapter "github.com/NanduBolleddu/Todofy-project/internal/adapter/db"
	httpadapter "github.com/NanduBolleddu/Todofy-project/internal/adapter/http"
	"github.com/NanduBolleddu/Todofy-project/internal/adapter/http/handlers"
	httpmiddleware "github.com/NanduBolleddu/Todofy-project/internal/adapter/http/middleware"
	appservice "github.com/NanduBolleddu/Todofy-project/internal/app/service"
	"github.com/NanduBolleddu/Todofy-project/internal/config"
	"github.com/NanduBolleddu/Todofy-project/internal/core/ports"
	"github.com/NanduBolleddu/Todofy-project/pkg/translator"
	"github.com/NanduBolleddu/Todofy-project/web"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)
	defer func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	translator.InitTranslator()

	cfg := config.LoadConfig()

	db, err := dbadapter.ConnectDB(cfg)
	if err != nil {
		logger.Fatal("failed to connect to postgres", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn("failed to close postgres connection", zap.Error(err))
		}
	}()

	if err := dbadapter.ApplyMigrations(db); err != nil {
		logger.Fatal("failed to apply migrations", zap.Error(err))
	}

	verifier, err := buildVerifier(cfg, logger)
	if err != nil {
		logger.Fatal("failed to configure token verifier", zap.Error(err))
	}

	r := gin.New()
	r.Use(gin.Recovery(), httpmiddleware.GinZapMiddleware(logger))
	if len(cfg.TrustedProxies) > 0 {
		if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
			logger.Fatal("invalid trusted proxies", zap.Error(err))
		}
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	healthHandler := handlers.NewHealthHandler(db)
	taskRepository := dbadapter.NewTaskRepository(db)
	taskService := appservice.NewTaskService(taskRepository)
	taskHandler := handlers.NewTaskHandler(taskService)
	httpadapter.RegisterRoutes(r, verifier, healthHandler, taskHandler)

	webFS, err := web.Static()
	if err != nil {
		logger.Fatal("failed to load embedded frontend", zap.Error(err))
	}
	httpadapter.RegisterWebRoutes(r, webFS, handlers.NewWebConfigHandler(cfg))

	addr := ":" + cfg.AppPort
	logger.Info("starting server", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		logger.Fatal("could not start server", zap.Error(err))
	}
}

// buildVerifier picks the token verifier: Keycloak OIDC when a realm is
// configured, otherwise the HS256 fallback signed with SESSION_SECRET.
func buildVerifier(cfg *config.Config, logger *zap.Logger) (ports.TokenVerifier, error) {
	if cfg.KeycloakURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		verifier, err := authadapter.NewOIDCVerifier(ctx, authadapter.OIDCConfig{
			IssuerURL: cfg.IssuerURL(),
			ClientID:  cfg.BackendClientID,
		})
		if err != nil {
			return nil, err
		}

		logger.Info("token verification via keycloak realm",
			zap.String("issuer", cfg.IssuerURL()),
			zap.String("client_id", cfg.BackendClientID),
		)
		return verifier, nil
	}

	if cfg.SessionSecret == "" {
		logger.Fatal("KEYCLOAK_AUTH_SERVER_URL or SESSION_SECRET must be set")
	}

	logger.Warn("no keycloak realm configured, using HS256 session secret verifier")
	return authadapter.NewStaticVerifier([]byte(cfg.SessionSecret)), nil
}
