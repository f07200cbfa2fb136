package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"starwars-api/internal/api/middleware"
	"starwars-api/internal/api/router"
	"starwars-api/internal/app"
	"starwars-api/internal/config"
	"starwars-api/internal/infra/database"
	infraKafka "starwars-api/internal/infra/kafka"
	infraRedis "starwars-api/internal/infra/redis"
	"starwars-api/internal/service"
	"starwars-api/pkg/logger"

	_ "starwars-api/api/openapi"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// @title Star Wars API
// @version 1.0
// @description 星球大战主题的用户、星球、角色、载具及收藏 CRUD 服务

// @contact.name API Support

// @license.name MIT

// @BasePath /

func main() {
	// .env 可选，已存在的环境变量优先
	_ = godotenv.Load()

	cfg, err := config.Load(configPath())
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	if err := logger.Init(logger.Options{
		Level:    cfg.Log.Level,
		Format:   cfg.Log.Format,
		Output:   cfg.Log.Output,
		FilePath: cfg.Log.FilePath,
	}); err != nil {
		panic(fmt.Sprintf("Failed to init logger: %v", err))
	}
	defer logger.Sync()

	stores := openStores(cfg)
	defer database.Close()

	cache := openCache(cfg)
	if cache != nil {
		defer cache.Close()
	}

	var events service.EventPublisher
	if cfg.Kafka.Enabled {
		publisher := infraKafka.NewPublisher(&cfg.Kafka)
		defer publisher.Close()
		events = publisher
	}

	var catalogCache service.Cache
	if cache != nil {
		catalogCache = cache
	}
	services := service.NewServices(stores, catalogCache, events)

	gin.SetMode(cfg.App.Mode)
	r := gin.New()
	r.Use(middleware.Recovery())
	r.Use(middleware.Logger())

	// 注册基础路由
	r.GET("/healthz", healthCheckHandler)
	r.GET("/", rootHandler)

	// Swagger 文档路由
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 注册业务路由
	router.Setup(r, services)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	logger.Info("Starting application",
		zap.String("name", cfg.App.Name),
		zap.String("version", cfg.App.Version),
		zap.String("mode", cfg.App.Mode),
		zap.String("addr", addr),
	)
	logger.Info("Configuration loaded",
		zap.String("driver", cfg.Database.Driver),
		zap.String("database", cfg.Database.Target()),
		zap.Bool("redis", cfg.Redis.Enabled),
		zap.Bool("kafka", cfg.Kafka.Enabled),
	)

	srv := &http.Server{Addr: addr, Handler: r}
	go func() {
		logger.Info("Server listening", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// 监听系统信号，优雅退出
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	logger.Info("Received signal, shutting down", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown failed", zap.Error(err))
	}
}

func configPath() string {
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		return p
	}
	return "configs/config.yaml"
}

// openStores 按 database.driver 选择 PostgreSQL 或内存存储
func openStores(cfg *config.Config) service.Stores {
	if cfg.Database.Driver == "memory" {
		logger.Warn("Using in-memory storage, data is lost on restart")
		return app.MemoryStores()
	}

	if err := database.Init(&cfg.Database); err != nil {
		logger.Fatal("Failed to init database", zap.Error(err))
	}
	if cfg.Database.AutoMigrate {
		if err := database.Migrate(); err != nil {
			logger.Fatal("Failed to migrate database", zap.Error(err))
		}
	}
	return app.GormStores(database.Get())
}

// openCache Redis 不可用时降级为不缓存
func openCache(cfg *config.Config) *infraRedis.Cache {
	if !cfg.Redis.Enabled {
		return nil
	}
	cache, err := infraRedis.Connect(context.Background(), &cfg.Redis, &cfg.Cache)
	if err != nil {
		logger.Warn("Redis init failed, catalog cache disabled", zap.Error(err))
		return nil
	}
	return cache
}

// healthCheckHandler 健康检查接口
func healthCheckHandler(c *gin.Context) {
	cfg := config.Get()

	logger.Debug("Health check requested", zap.String("ip", c.ClientIP()))

	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"message":   "Service is healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"service":   cfg.App.Name,
		"version":   cfg.App.Version,
		"mode":      cfg.App.Mode,
	})
}

// rootHandler 根路径处理器
func rootHandler(c *gin.Context) {
	cfg := config.Get()

	c.JSON(http.StatusOK, gin.H{
		"msg":     fmt.Sprintf("Welcome to %s API", cfg.App.Name),
		"project": cfg.App.Name,
		"version": cfg.App.Version,
		"docs":    "/swagger/index.html",
	})
}
