package minio

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"starwars-api/internal/config"
	"starwars-api/internal/model"
	"starwars-api/pkg/logger"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"
)

var client *minio.Client

// Init 初始化 MinIO 客户端并确保归档 Bucket 存在
func Init(cfg *config.MinIOConfig) error {
	var err error
	client, err = minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return fmt.Errorf("failed to create minio client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	bucket := cfg.ArchiveBucket
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket %s: %w", bucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create bucket %s: %w", bucket, err)
		}
		logger.Info("MinIO bucket created", zap.String("bucket", bucket))
	}

	logger.Info("MinIO connected",
		zap.String("endpoint", cfg.Endpoint),
		zap.String("archive_bucket", bucket),
	)

	return nil
}

// UploadFile 上传文件到指定 Bucket
func UploadFile(ctx context.Context, bucket, objectName string, reader io.Reader, fileSize int64, contentType string) error {
	if client == nil {
		return fmt.Errorf("minio client not initialized")
	}
	_, err := client.PutObject(ctx, bucket, objectName, reader, fileSize, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("failed to upload to minio: %w", err)
	}
	return nil
}

// SnapshotObjectName 归档对象名，如 planet/7-20260101T120000Z.json
func SnapshotObjectName(event *model.CatalogEvent) string {
	return fmt.Sprintf("%s/%d-%s.json", event.Kind, event.ID, event.OccurredAt.UTC().Format("20060102T150405Z"))
}

// ArchiveSnapshot 保存被删除实体的最后一份 JSON 快照
func ArchiveSnapshot(ctx context.Context, bucket string, event *model.CatalogEvent) (string, error) {
	objectName := SnapshotObjectName(event)
	if err := UploadFile(ctx, bucket, objectName, bytes.NewReader(event.Payload), int64(len(event.Payload)), "application/json"); err != nil {
		return "", err
	}
	logger.Info("Catalog snapshot archived",
		zap.String("bucket", bucket),
		zap.String("object", objectName),
	)
	return objectName, nil
}
