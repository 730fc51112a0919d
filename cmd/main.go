package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"logging-web-server/config"
	_ "logging-web-server/docs"
	"logging-web-server/internal/handler"
	"logging-web-server/internal/repository"
	"logging-web-server/internal/security"
	"logging-web-server/internal/service"

	"github.com/go-chi/chi/v5"
	_ "github.com/lib/pq"
	httpSwagger "github.com/swaggo/http-swagger"
)

// @title Logging-web-server
// @version 1.0
// @description REST API для сбора логов с авторизацией по токенам

// @host localhost:8080

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.LoadConfig("config.yaml")
	if err != nil {
		log.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}

	db, err := config.SetupDatabase(cfg.DatabaseConfig.DSN)
	if err != nil {
		log.Fatalf("Не удалось подключиться к БД: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Ошибка при закрытии БД: %v", err)
		}
	}()

	if err := db.ApplyMigrations(); err != nil {
		log.Fatalf("Ошибка применения миграций: %v", err)
	}

	redisClient, err := config.SetupRedis(&cfg.RedisConfig)
	if err != nil {
		log.Fatalf("Ошибка подключения к Redis: %v", err)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Printf("Ошибка при закрытии Redis: %v", err)
		}
	}()

	srv, router := config.SetupServer(cfg.ServerAddr)

	userRepo := repository.NewUserRepository(db)
	tokenRepo := repository.NewTokenRepository(db)
	logRepo := repository.NewLogRepository(db)
	cacheRepo := repository.NewCacheRepository(redisClient, time.Duration(cfg.TTL.Redis)*time.Second)

	jwtService, err := security.NewJWTService(&cfg.JWT)
	if err != nil {
		log.Fatalf("Ошибка создания JWT сервиса: %v", err)
	}

	s3Service, err := service.NewS3Service(ctx, &cfg.S3Config)
	if err != nil {
		log.Fatalf("Ошибка создания S3 сервиса: %v", err)
	}

	authService := service.NewAuthenticationService(tokenRepo, jwtService, userRepo)
	userService := service.NewUserService(userRepo)
	logService := service.NewLogService(logRepo, cacheRepo)

	retentionService, err := service.NewRetentionService(tokenRepo, s3Service, &cfg.Retention)
	if err != nil {
		log.Fatalf("Ошибка создания сервиса чистки токенов: %v", err)
	}
	go retentionService.Run(ctx)

	authHandler := handler.NewAuthenticationHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	logHandler := handler.NewLogHandler(logService)

	router.Get("/swagger/*", httpSwagger.WrapHandler)

	setupAuthRoutes(router, authHandler, authService)
	setupUserRoutes(router, userHandler, authService)
	setupLogRoutes(router, logHandler, authService)

	runServer(ctx, srv)
}

func setupAuthRoutes(r chi.Router, h *handler.AuthenticationHandler, gate security.AuthorizationGate) {
	r.Route("/api/auth", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(security.AuthMiddleware(gate))
			r.Get("/me", h.GetCurrentUser)
			r.Head("/me", h.GetCurrentUser)
		})
		r.Group(func(r chi.Router) {
			r.Post("/", h.Login)
			r.Post("/refresh", h.RefreshToken)
			r.Delete("/{token}", h.Logout)
		})
	})
}

func setupUserRoutes(r chi.Router, h *handler.UserHandler, gate security.AuthorizationGate) {
	r.Route("/api", func(r chi.Router) {
		r.Post("/register", h.RegisterUser)

		r.Group(func(r chi.Router) {
			r.Use(security.AuthMiddleware(gate))
			r.Get("/users", h.ListUsers)
			r.Head("/users", h.ListUsers)
			r.Put("/users/password", h.UpdatePassword)
		})
	})
}

func setupLogRoutes(r chi.Router, h *handler.LogHandler, gate security.AuthorizationGate) {
	r.Route("/api/logs", func(r chi.Router) {
		r.Use(security.AuthMiddleware(gate))
		r.Get("/", h.ListLogs)
		r.Head("/", h.ListLogs)
		r.Post("/", h.CreateLog)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.GetLog)
			r.Head("/", h.GetLog)
			r.With(security.AdminOnlyMiddleware).Delete("/", h.DeleteLog)
		})
	})
}

func runServer(ctx context.Context, server *http.Server) {
	serverErrors := make(chan error, 1)
	go func() {
		log.Println("сервер запущен на " + server.Addr)
		serverErrors <- server.ListenAndServe()
	}()

	signalChannel := make(chan os.Signal, 1)
	signal.Notify(signalChannel, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil {
			log.Fatalf("ошибка работы сервера: %v", err)
		}
	case sig := <-signalChannel:
		log.Printf("получен сигнал %v остановки работы сервера ", sig)
	}

	shutDownCtx, shutDownCancel := context.WithTimeout(ctx, 5*time.Second)
	defer shutDownCancel()

	if err := server.Shutdown(shutDownCtx); err != nil {
		log.Printf("ошибка при остановке сервера: %v", err)
	} else {
		log.Println("Сервер успешно остановлен")
	}
}
