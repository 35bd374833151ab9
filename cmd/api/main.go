package main

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	dbadapter "github.com/WinchoCode/Qpurpuse-API/internal/adapter/db"
	httpadapter "github.com/WinchoCode/Qpurpuse-API/internal/adapter/http"
	"github.com/WinchoCode/Qpurpuse-API/internal/adapter/http/handlers"
	httpmiddleware "github.com/WinchoCode/Qpurpuse-API/internal/adapter/http/middleware"
	appservice "github.com/WinchoCode/Qpurpuse-API/internal/app/service"
	"github.com/WinchoCode/Qpurpuse-API/internal/config"
	"github.com/WinchoCode/Qpurpuse-API/pkg/translator"
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

	translator.InitTranslator(translator.Config{
		TranslationFolder:  "pkg/translator/translation",
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	})

	cfg := config.LoadConfig()
	db, err := dbadapter.ConnectDB(cfg)
	if err != nil {
		logger.Fatal("failed to connect to mysql", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn("failed to close mysql connection", zap.Error(err))
		}
	}()

	userRepository := dbadapter.NewUserRepository(db)
	taskRepository := dbadapter.NewTaskRepository(db)

	tokenService := appservice.NewTokenService(cfg.JwtSecret, cfg.JwtTTL)
	authService := appservice.NewAuthService(userRepository, taskRepository, tokenService)
	taskService := appservice.NewTaskService(taskRepository)

	r := gin.New()
	r.Use(gin.Recovery(), httpmiddleware.GinZapMiddleware(logger))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept-Language"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	if len(cfg.TrustedProxies) > 0 {
		if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
			logger.Fatal("invalid trusted proxies", zap.Error(err))
		}
	}

	healthHandler := handlers.NewHealthHandler(db)
	authHandler := handlers.NewAuthHandler(authService)
	taskHandler := handlers.NewTaskHandler(taskService)
	httpadapter.RegisterRoutes(r, healthHandler, authHandler, taskHandler, tokenService)

	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	addr := ":" + port
	logger.Info("starting server", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		logger.Fatal("could not start server", zap.Error(err))
	}
}
