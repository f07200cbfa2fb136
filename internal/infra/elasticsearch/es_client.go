package elasticsearch

import (
	"context"
	"fmt"
	"strings"
	"time"

	"starwars-api/internal/config"
	"starwars-api/pkg/logger"

	"github.com/elastic/go-elasticsearch/v8"
	"go.uber.org/zap"
)

// CatalogIndex 目录实体在 ES 中的投影，三类实体写入同一个索引
type CatalogIndex struct {
	es   *elasticsearch.Client
	name string
}

// NewCatalogIndex 用已有客户端构造，测试中传入指向假服务的客户端
func NewCatalogIndex(es *elasticsearch.Client, name string) *CatalogIndex {
	return &CatalogIndex{es: es, name: name}
}

// Connect 创建客户端并 Ping，成功后返回目录索引
func Connect(ctx context.Context, cfg *config.ElasticsearchConfig) (*CatalogIndex, error) {
	hosts := normalizeHosts(cfg.Hosts)
	if len(hosts) == 0 {
		return nil, fmt.Errorf("elasticsearch hosts is empty")
	}

	es, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses:     hosts,
		RetryOnStatus: []int{502, 503, 504},
		MaxRetries:    3,
		RetryBackoff:  func(i int) time.Duration { return time.Duration(i) * time.Second },
	})
	if err != nil {
		return nil, fmt.Errorf("create elasticsearch client: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	resp, err := es.Ping(es.Ping.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to ping elasticsearch: %w", err)
	}
	defer resp.Body.Close()
	if resp.IsError() {
		return nil, fmt.Errorf("elasticsearch ping failed: %s", resp.String())
	}

	logger.Info("Elasticsearch connected",
		zap.Strings("hosts", hosts),
		zap.String("index", cfg.CatalogIndex()),
	)
	return NewCatalogIndex(es, cfg.CatalogIndex()), nil
}

func normalizeHosts(in []string) []string {
	hosts := make([]string, 0, len(in))
	for _, h := range in {
		h = strings.TrimSpace(h)
		if h == "" {
			continue
		}
		if !strings.HasPrefix(h, "http") {
			h = "http://" + h
		}
		hosts = append(hosts, h)
	}
	return hosts
}
