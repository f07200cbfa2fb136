package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"starwars-api/internal/config"
	infraES "starwars-api/internal/infra/elasticsearch"
	infraKafka "starwars-api/internal/infra/kafka"
	infraMinio "starwars-api/internal/infra/minio"
	"starwars-api/internal/model"
	"starwars-api/internal/worker"
	"starwars-api/pkg/logger"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "configs/config.yaml"
	}
	cfg, err := config.Load(path)
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

	if !cfg.Kafka.Enabled {
		logger.Fatal("Kafka is disabled, catalog worker has nothing to consume")
	}

	var index, archive worker.EventFunc

	// Elasticsearch 可选，失败则不做索引同步
	if cfg.Elasticsearch.Enabled {
		catalogIndex, err := infraES.Connect(context.Background(), &cfg.Elasticsearch)
		if err != nil {
			logger.Warn("Elasticsearch init failed, index sync disabled", zap.Error(err))
		} else {
			if err := catalogIndex.Ensure(context.Background()); err != nil {
				logger.Warn("Elasticsearch index init failed", zap.Error(err))
			}
			index = catalogIndex.Sync
		}
	}

	if cfg.MinIO.Enabled {
		if err := infraMinio.Init(&cfg.MinIO); err != nil {
			logger.Fatal("Failed to init minio", zap.Error(err))
		}
		bucket := cfg.MinIO.ArchiveBucket
		archive = func(ctx context.Context, event *model.CatalogEvent) error {
			_, err := infraMinio.ArchiveSnapshot(ctx, bucket, event)
			return err
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 监听系统信号，优雅退出
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigCh
		logger.Info("Received signal, shutting down", zap.String("signal", sig.String()))
		cancel()
	}()

	logger.Info("Catalog worker started",
		zap.Bool("index", index != nil),
		zap.Bool("archive", archive != nil),
		zap.Strings("brokers", cfg.Kafka.Brokers),
	)

	sync := worker.NewCatalogSync(index, archive)
	infraKafka.StartCatalogEventConsumer(ctx, cfg.Kafka.Brokers, cfg.Kafka.CatalogTopic(), cfg.Kafka.GroupID, sync.Handle)
}
