// Файл: main.go

package main

import (
	"context"
	"net/http"

	"sales-system/internal/repositories"
	"sales-system/internal/routes"
	"sales-system/pkg/config"
	"sales-system/pkg/database/postgresql"
	applogger "sales-system/pkg/logger"
	appmiddleware "sales-system/pkg/middleware"
	"sales-system/pkg/utils"
	"sales-system/pkg/validation"

	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

func main() {
	e := echo.New()
	logger := applogger.NewLogger()
	defer logger.Sync()

	cfg := config.New()

	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		DisableStackAll: true,
		StackSize:       1 << 10,
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			logger.Error("Обнаружена паника в обработчике",
				zap.String("method", c.Request().Method),
				zap.String("uri", c.Request().RequestURI),
				zap.Error(err),
				zap.String("stack", string(stack)),
			)
			if !c.Response().Committed {
				return utils.ErrorResponse(c, err, logger)
			}
			return err
		},
	}))
	e.Use(appmiddleware.RequestLogger(logger))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
	}))

	e.Validator = validation.New()

	dbConn, err := postgresql.ConnectDB(context.Background(), cfg.Postgres.DSN)
	if err != nil {
		logger.Fatal("не удалось подключиться к PostgreSQL", zap.Error(err))
	}
	defer dbConn.Close()

	if err := postgresql.RunMigrations(cfg.Postgres.DSN, "migrations"); err != nil {
		logger.Fatal("не удалось применить миграции", zap.Error(err))
	}

	// Redis используется только как кеш отчетов: если он недоступен,
	// сервис продолжает работать без кеша.
	var cacheRepo repositories.CacheRepositoryInterface
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Address,
		Password: cfg.Redis.Password,
		DB:       0,
	})
	if _, err := redisClient.Ping(context.Background()).Result(); err != nil {
		logger.Warn("Redis недоступен, кеш отчетов отключен", zap.Error(err), zap.String("address", cfg.Redis.Address))
	} else {
		cacheRepo = repositories.NewRedisCacheRepository(redisClient)
	}

	routes.InitRouter(e, dbConn, cacheRepo, logger, cfg)

	logger.Info("🚀 Сервер запущен", zap.String("port", cfg.Server.Port))
	if err := e.Start(":" + cfg.Server.Port); err != nil {
		logger.Fatal("Ошибка запуска сервера", zap.Error(err))
	}
}
