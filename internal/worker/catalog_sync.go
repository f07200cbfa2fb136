package worker

import (
	"context"
	"errors"
	"fmt"

	"starwars-api/internal/model"
)

// EventFunc 对单条目录事件执行的副作用
type EventFunc func(ctx context.Context, event *model.CatalogEvent) error

// CatalogSync 把目录事件投影到搜索索引，并归档被删除实体的快照
type CatalogSync struct {
	index   EventFunc
	archive EventFunc
}

// NewCatalogSync index、archive 均可为 nil，表示对应的下游未启用
func NewCatalogSync(index, archive EventFunc) *CatalogSync {
	return &CatalogSync{index: index, archive: archive}
}

// Handle 下游相互独立，一个失败不影响另一个
func (s *CatalogSync) Handle(ctx context.Context, event *model.CatalogEvent) error {
	var errs []error
	if s.index != nil {
		if err := s.index(ctx, event); err != nil {
			errs = append(errs, fmt.Errorf("index %s: %w", event.Key(), err))
		}
	}
	if event.Type == model.EventDeleted && s.archive != nil {
		if err := s.archive(ctx, event); err != nil {
			errs = append(errs, fmt.Errorf("archive %s: %w", event.Key(), err))
		}
	}
	return errors.Join(errs...)
}
