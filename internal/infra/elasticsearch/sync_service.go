package elasticsearch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"starwars-api/internal/model"
	"starwars-api/pkg/logger"

	"go.uber.org/zap"
)

// CatalogDoc ES 目录文档结构
type CatalogDoc struct {
	Kind       string         `json:"kind"`
	ID         int64          `json:"id"`
	Name       string         `json:"name"`
	Attributes map[string]any `json:"attributes"`
	UpdatedAt  string         `json:"updated_at"`
}

func eventToDoc(event *model.CatalogEvent) (*CatalogDoc, error) {
	attrs := make(map[string]any)
	if len(event.Payload) > 0 {
		if err := json.Unmarshal(event.Payload, &attrs); err != nil {
			return nil, fmt.Errorf("decode payload: %w", err)
		}
	}
	name, _ := attrs[event.Kind+"_name"].(string)
	return &CatalogDoc{
		Kind:       event.Kind,
		ID:         event.ID,
		Name:       name,
		Attributes: attrs,
		UpdatedAt:  event.OccurredAt.Format(time.RFC3339),
	}, nil
}

// Sync 按事件类型更新索引：created/updated 写入文档，deleted 删除文档
func (x *CatalogIndex) Sync(ctx context.Context, event *model.CatalogEvent) error {
	if event.Type == model.EventDeleted {
		return x.Delete(ctx, event.Key())
	}

	doc, err := eventToDoc(event)
	if err != nil {
		return err
	}
	body, err := json.Marshal(doc)
	if err != nil {
		return err
	}

	resp, err := x.es.Index(x.name, bytes.NewReader(body),
		x.es.Index.WithContext(ctx),
		x.es.Index.WithDocumentID(event.Key()),
	)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.IsError() {
		return fmt.Errorf("index document failed: %s", resp.String())
	}

	logger.Debug("Catalog entity synced to ES", zap.String("doc_id", event.Key()))
	return nil
}

// Delete 删除文档，文档不存在不算错误
func (x *CatalogIndex) Delete(ctx context.Context, docID string) error {
	resp, err := x.es.Delete(x.name, docID, x.es.Delete.WithContext(ctx))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.IsError() && resp.StatusCode != http.StatusNotFound {
		return fmt.Errorf("delete document failed: %s", resp.String())
	}
	return nil
}
