package service

import (
	"context"

	"starwars-api/internal/model"
)

// CatalogStore 目录实体存储，由 repository.CatalogRepository 和 memory.CatalogStore 实现
type CatalogStore[T any] interface {
	List(ctx context.Context) ([]T, error)
	GetByID(ctx context.Context, id int64) (*T, error)
	Exists(ctx context.Context, id int64) (bool, error)
	ExistsByName(ctx context.Context, name string, excludeID int64) (bool, error)
	Create(ctx context.Context, item *T) error
	Update(ctx context.Context, item *T, columns map[string]any) error
	Delete(ctx context.Context, id int64) (bool, error)
}

// UserStore 用户存储
type UserStore interface {
	List(ctx context.Context) ([]model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
	Exists(ctx context.Context, id int64) (bool, error)
	ExistsByUserName(ctx context.Context, userName string, excludeID int64) (bool, error)
	ExistsByEmail(ctx context.Context, email string, excludeID int64) (bool, error)
	Create(ctx context.Context, user *model.User) error
	Update(ctx context.Context, user *model.User, columns map[string]any) error
}

// LinkStore 收藏关联存储
type LinkStore[L any] interface {
	Exists(ctx context.Context, userID, targetID int64) (bool, error)
	Create(ctx context.Context, userID, targetID int64) (*L, error)
	Delete(ctx context.Context, userID, targetID int64) (bool, error)
	ListByUser(ctx context.Context, userID int64) ([]L, error)
}

// Existence 按主键检查记录是否存在
type Existence interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

// Cache 读缓存，未启用 Redis 时使用 NopCache
type Cache interface {
	// Get 命中时把缓存值解码到 dst 并返回 true
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, value any) error
	Delete(ctx context.Context, keys ...string) error
}

// EventPublisher 目录变更事件发布，未启用 Kafka 时使用 NopPublisher
type EventPublisher interface {
	Publish(ctx context.Context, event *model.CatalogEvent) error
}

type nopCache struct{}

// NopCache 永不命中的缓存
func NopCache() Cache { return nopCache{} }

func (nopCache) Get(context.Context, string, any) (bool, error) { return false, nil }
func (nopCache) Set(context.Context, string, any) error         { return nil }
func (nopCache) Delete(context.Context, ...string) error        { return nil }

type nopPublisher struct{}

// NopPublisher 丢弃所有事件
func NopPublisher() EventPublisher { return nopPublisher{} }

func (nopPublisher) Publish(context.Context, *model.CatalogEvent) error { return nil }
