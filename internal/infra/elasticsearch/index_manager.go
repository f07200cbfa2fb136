package elasticsearch

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"starwars-api/pkg/logger"

	"go.uber.org/zap"
)

// CatalogIndexMapping 目录索引的 mapping，以 kind 区分实体种类
const CatalogIndexMapping = `{
	"settings": {
		"number_of_shards": 1,
		"number_of_replicas": 0
	},
	"mappings": {
		"properties": {
			"kind": {"type": "keyword"},
			"id": {"type": "long"},
			"name": {
				"type": "text",
				"fields": {"keyword": {"type": "keyword", "ignore_above": 64}}
			},
			"attributes": {"type": "object", "dynamic": true},
			"updated_at": {"type": "date", "format": "strict_date_optional_time||epoch_millis"}
		}
	}
}`

// Ensure 索引不存在时按 CatalogIndexMapping 创建
func (x *CatalogIndex) Ensure(ctx context.Context) error {
	exists, err := x.es.Indices.Exists([]string{x.name}, x.es.Indices.Exists.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("check index exists: %w", err)
	}
	if exists.Body != nil {
		exists.Body.Close()
	}

	if exists.StatusCode == http.StatusOK {
		logger.Info("Elasticsearch catalog index already exists", zap.String("index", x.name))
		return nil
	}

	resp, err := x.es.Indices.Create(x.name,
		x.es.Indices.Create.WithContext(ctx),
		x.es.Indices.Create.WithBody(strings.NewReader(CatalogIndexMapping)),
	)
	if err != nil {
		return fmt.Errorf("create index: %w", err)
	}
	defer resp.Body.Close()

	if resp.IsError() {
		return fmt.Errorf("create index failed: %s", resp.String())
	}

	logger.Info("Elasticsearch catalog index created", zap.String("index", x.name))
	return nil
}
