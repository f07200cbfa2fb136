package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"starwars-api/internal/model"
	"starwars-api/internal/repository"
)

// CatalogStore 目录实体的内存实现，用于本地运行和测试
type CatalogStore[T any, PT model.EntityPtr[T]] struct {
	mu       sync.RWMutex
	nextID   int64
	items    map[int64]T
	onDelete []func(id int64)
}

func NewCatalogStore[T any, PT model.EntityPtr[T]]() *CatalogStore[T, PT] {
	return &CatalogStore[T, PT]{items: make(map[int64]T)}
}

func (s *CatalogStore[T, PT]) List(ctx context.Context) ([]T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]int64, 0, len(s.items))
	for id := range s.items {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	items := make([]T, 0, len(ids))
	for _, id := range ids {
		items = append(items, s.items[id])
	}
	return items, nil
}

func (s *CatalogStore[T, PT]) GetByID(ctx context.Context, id int64) (*T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &item, nil
}

func (s *CatalogStore[T, PT]) Exists(ctx context.Context, id int64) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.items[id]
	return ok, nil
}

func (s *CatalogStore[T, PT]) ExistsByName(ctx context.Context, name string, excludeID int64) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.nameTaken(name, excludeID), nil
}

func (s *CatalogStore[T, PT]) nameTaken(name string, excludeID int64) bool {
	for id, item := range s.items {
		if id != excludeID && PT(&item).UniqueName() == name {
			return true
		}
	}
	return false
}

// Create 与数据库唯一索引一致：名称重复时返回 ErrDuplicate
func (s *CatalogStore[T, PT]) Create(ctx context.Context, item *T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := PT(item)
	if s.nameTaken(p.UniqueName(), 0) {
		return fmt.Errorf("%w: %s", repository.ErrDuplicate, p.UniqueName())
	}
	s.nextID++
	p.SetEntityID(s.nextID)
	s.items[s.nextID] = *item
	return nil
}

// Update 与 gorm Updates(columns) 一致：只把 columns 合并到当前存储的记录上
func (s *CatalogStore[T, PT]) Update(ctx context.Context, item *T, columns map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := PT(item).EntityID()
	current, ok := s.items[id]
	if !ok {
		return repository.ErrNotFound
	}
	merged, err := mergeColumns(current, columns)
	if err != nil {
		return err
	}
	name := PT(&merged).UniqueName()
	if s.nameTaken(name, id) {
		return fmt.Errorf("%w: %s", repository.ErrDuplicate, name)
	}
	s.items[id] = merged
	*item = merged
	return nil
}

// mergeColumns 目录实体的列名与 JSON 字段名一致，借助 JSON 完成按列覆盖
func mergeColumns[T any](current T, columns map[string]any) (T, error) {
	var merged T
	raw, err := json.Marshal(current)
	if err != nil {
		return merged, err
	}
	fields := make(map[string]any)
	if err := json.Unmarshal(raw, &fields); err != nil {
		return merged, err
	}
	for col, v := range columns {
		if _, ok := fields[col]; !ok {
			return merged, fmt.Errorf("unknown column %s", col)
		}
		fields[col] = v
	}
	if raw, err = json.Marshal(fields); err != nil {
		return merged, err
	}
	err = json.Unmarshal(raw, &merged)
	return merged, err
}

// OnDelete 注册删除回调，用于级联清理收藏
func (s *CatalogStore[T, PT]) OnDelete(fn func(id int64)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onDelete = append(s.onDelete, fn)
}

func (s *CatalogStore[T, PT]) Delete(ctx context.Context, id int64) (bool, error) {
	s.mu.Lock()
	if _, ok := s.items[id]; !ok {
		s.mu.Unlock()
		return false, nil
	}
	delete(s.items, id)
	hooks := s.onDelete
	s.mu.Unlock()

	for _, fn := range hooks {
		fn(id)
	}
	return true, nil
}
