package model

import (
	"encoding/json"
	"strconv"
	"time"
)

// 目录变更事件类型
const (
	EventCreated = "created"
	EventUpdated = "updated"
	EventDeleted = "deleted"
)

// CatalogEvent 目录实体变更消息体，Payload 为实体的 JSON 快照
type CatalogEvent struct {
	Type       string          `json:"type"`
	Kind       string          `json:"kind"`
	ID         int64           `json:"id"`
	Payload    json.RawMessage `json:"payload,omitempty"`
	OccurredAt time.Time       `json:"occurred_at"`
}

// NewCatalogEvent 以实体当前状态构造事件
func NewCatalogEvent(eventType string, e Entity) (*CatalogEvent, error) {
	payload, err := json.Marshal(e)
	if err != nil {
		return nil, err
	}
	return &CatalogEvent{
		Type:       eventType,
		Kind:       e.EntityKind(),
		ID:         e.EntityID(),
		Payload:    payload,
		OccurredAt: time.Now().UTC(),
	}, nil
}

// Key 消息键与索引文档 ID，如 planet-7
func (e *CatalogEvent) Key() string {
	return e.Kind + "-" + strconv.FormatInt(e.ID, 10)
}
