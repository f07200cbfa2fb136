package service

import (
	"context"
	"errors"
	"fmt"

	"starwars-api/internal/api/dto"
	"starwars-api/internal/model"
	"starwars-api/internal/repository"
	"starwars-api/pkg/logger"

	"go.uber.org/zap"
)

// Payload 创建/更新请求体，Columns 给出已提供字段对应的列
type Payload[T any] interface {
	Columns() map[string]any
	Apply(item *T)
}

// CatalogService 星球、角色、载具共用的 CRUD 服务
type CatalogService[T any, PT model.EntityPtr[T]] struct {
	store      CatalogStore[T]
	cache      Cache
	events     EventPublisher
	kind       string
	label      string
	fields     FieldSet
	nameField  string
	newPayload func() Payload[T]
}

// NewCatalogService cache、events 为 nil 时使用空实现
func NewCatalogService[T any, PT model.EntityPtr[T]](
	store CatalogStore[T],
	cache Cache,
	events EventPublisher,
	kind string,
	fields FieldSet,
	nameField string,
	newPayload func() Payload[T],
) *CatalogService[T, PT] {
	if cache == nil {
		cache = NopCache()
	}
	if events == nil {
		events = NopPublisher()
	}
	return &CatalogService[T, PT]{
		store:      store,
		cache:      cache,
		events:     events,
		kind:       kind,
		label:      model.KindLabel(kind),
		fields:     fields,
		nameField:  nameField,
		newPayload: newPayload,
	}
}

var (
	PlanetFields    = NewFieldSet([]string{"planet_name", "diameter", "rotation_period", "orbital_period", "climate"})
	CharacterFields = NewFieldSet([]string{"character_name", "skin_color", "hair_color", "gender", "age"})
	VehicleFields   = NewFieldSet([]string{"vehicle_name", "passengers", "load_capacity", "armament", "length"})
)

func NewPlanetService(store CatalogStore[model.Planet], cache Cache, events EventPublisher) *CatalogService[model.Planet, *model.Planet] {
	return NewCatalogService[model.Planet, *model.Planet](store, cache, events, model.KindPlanet, PlanetFields, "planet_name",
		func() Payload[model.Planet] { return &dto.PlanetInput{} })
}

func NewCharacterService(store CatalogStore[model.Character], cache Cache, events EventPublisher) *CatalogService[model.Character, *model.Character] {
	return NewCatalogService[model.Character, *model.Character](store, cache, events, model.KindCharacter, CharacterFields, "character_name",
		func() Payload[model.Character] { return &dto.CharacterInput{} })
}

func NewVehicleService(store CatalogStore[model.Vehicle], cache Cache, events EventPublisher) *CatalogService[model.Vehicle, *model.Vehicle] {
	return NewCatalogService[model.Vehicle, *model.Vehicle](store, cache, events, model.KindVehicle, VehicleFields, "vehicle_name",
		func() Payload[model.Vehicle] { return &dto.VehicleInput{} })
}

// Kind 实体种类，如 planet
func (s *CatalogService[T, PT]) Kind() string {
	return s.kind
}

// Label 提示信息中的实体名，如 Planet
func (s *CatalogService[T, PT]) Label() string {
	return s.label
}

func (s *CatalogService[T, PT]) listKey() string {
	return "catalog:" + s.kind + ":list"
}

func (s *CatalogService[T, PT]) itemKey(id int64) string {
	return fmt.Sprintf("catalog:%s:%d", s.kind, id)
}

// List 返回全部记录，优先读缓存
func (s *CatalogService[T, PT]) List(ctx context.Context) ([]T, error) {
	var items []T
	if s.cacheGet(ctx, s.listKey(), &items) {
		return items, nil
	}

	items, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	s.cacheSet(ctx, s.listKey(), items)
	return items, nil
}

// Get 根据 ID 查询
func (s *CatalogService[T, PT]) Get(ctx context.Context, id int64) (*T, error) {
	var cached T
	if s.cacheGet(ctx, s.itemKey(id), &cached) {
		return &cached, nil
	}

	item, err := s.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, notFoundf("%s with id %d does not exist", s.label, id)
		}
		return nil, err
	}
	s.cacheSet(ctx, s.itemKey(id), item)
	return item, nil
}

// Create 校验请求体并创建记录
func (s *CatalogService[T, PT]) Create(ctx context.Context, body []byte) (*T, error) {
	in := s.newPayload()
	if err := s.fields.DecodeCreate(body, in); err != nil {
		return nil, err
	}

	var item T
	in.Apply(&item)

	taken, err := s.store.ExistsByName(ctx, PT(&item).UniqueName(), 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, s.nameConflict()
	}

	if err := s.store.Create(ctx, &item); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, s.nameConflict()
		}
		return nil, err
	}

	s.invalidate(ctx)
	s.publish(ctx, model.EventCreated, PT(&item))

	logger.Info("Catalog entity created",
		zap.String("kind", s.kind),
		zap.Int64("id", PT(&item).EntityID()),
	)
	return &item, nil
}

// Update 部分更新，只修改请求体中出现的字段
func (s *CatalogService[T, PT]) Update(ctx context.Context, id int64, body []byte) error {
	item, err := s.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return s.notFound(id)
		}
		return err
	}

	in := s.newPayload()
	keys, err := s.fields.DecodeUpdate(body, in)
	if err != nil {
		return err
	}
	in.Apply(item)

	if contains(keys, s.nameField) {
		taken, err := s.store.ExistsByName(ctx, PT(item).UniqueName(), id)
		if err != nil {
			return err
		}
		if taken {
			return s.nameConflict()
		}
	}

	if err := s.store.Update(ctx, item, in.Columns()); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicate):
			return s.nameConflict()
		case errors.Is(err, repository.ErrNotFound):
			return s.notFound(id)
		}
		return err
	}

	s.invalidate(ctx, s.itemKey(id))
	s.publish(ctx, model.EventUpdated, PT(item))
	return nil
}

// Delete 物理删除记录，关联的收藏由外键级联删除
func (s *CatalogService[T, PT]) Delete(ctx context.Context, id int64) error {
	item, err := s.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return s.notFound(id)
		}
		return err
	}

	deleted, err := s.store.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return s.notFound(id)
	}

	s.invalidate(ctx, s.itemKey(id))
	s.publish(ctx, model.EventDeleted, PT(item))

	logger.Info("Catalog entity deleted", zap.String("kind", s.kind), zap.Int64("id", id))
	return nil
}

func (s *CatalogService[T, PT]) notFound(id int64) error {
	return notFoundf("%s with id %d not found", s.label, id)
}

func (s *CatalogService[T, PT]) nameConflict() error {
	return conflictf("%s name already exists", s.label)
}

func (s *CatalogService[T, PT]) cacheGet(ctx context.Context, key string, dst any) bool {
	hit, err := s.cache.Get(ctx, key, dst)
	if err != nil {
		logger.Warn("Cache read failed", zap.String("key", key), zap.Error(err))
		return false
	}
	return hit
}

func (s *CatalogService[T, PT]) cacheSet(ctx context.Context, key string, value any) {
	if err := s.cache.Set(ctx, key, value); err != nil {
		logger.Warn("Cache write failed", zap.String("key", key), zap.Error(err))
	}
}

// invalidate 写操作后清理列表缓存及给出的单条缓存
func (s *CatalogService[T, PT]) invalidate(ctx context.Context, keys ...string) {
	keys = append(keys, s.listKey())
	if err := s.cache.Delete(ctx, keys...); err != nil {
		logger.Warn("Cache invalidation failed", zap.Strings("keys", keys), zap.Error(err))
	}
}

// publish 事件发布失败不影响请求结果
func (s *CatalogService[T, PT]) publish(ctx context.Context, eventType string, item PT) {
	event, err := model.NewCatalogEvent(eventType, item)
	if err == nil {
		err = s.events.Publish(ctx, event)
	}
	if err != nil {
		logger.Warn("Publish catalog event failed",
			zap.String("type", eventType),
			zap.String("kind", s.kind),
			zap.Int64("id", item.EntityID()),
			zap.Error(err),
		)
	}
}

func contains(keys []string, key string) bool {
	for _, k := range keys {
		if k == key {
			return true
		}
	}
	return false
}
