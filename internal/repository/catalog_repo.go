package repository

import (
	"context"

	"starwars-api/internal/model"

	"gorm.io/gorm"
)

// CatalogRepository 目录实体（星球、角色、载具）的通用仓储
type CatalogRepository[T any] struct {
	db         *gorm.DB
	idColumn   string
	nameColumn string
}

func NewCatalogRepository[T any](db *gorm.DB, idColumn, nameColumn string) *CatalogRepository[T] {
	return &CatalogRepository[T]{db: db, idColumn: idColumn, nameColumn: nameColumn}
}

func NewPlanetRepository(db *gorm.DB) *CatalogRepository[model.Planet] {
	return NewCatalogRepository[model.Planet](db, "planet_id", "planet_name")
}

func NewCharacterRepository(db *gorm.DB) *CatalogRepository[model.Character] {
	return NewCatalogRepository[model.Character](db, "character_id", "character_name")
}

func NewVehicleRepository(db *gorm.DB) *CatalogRepository[model.Vehicle] {
	return NewCatalogRepository[model.Vehicle](db, "vehicle_id", "vehicle_name")
}

// List 按 ID 升序返回全部记录
func (r *CatalogRepository[T]) List(ctx context.Context) ([]T, error) {
	items := make([]T, 0)
	if err := r.db.WithContext(ctx).Order(r.idColumn).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// GetByID 根据主键查询，不存在时返回 ErrNotFound
func (r *CatalogRepository[T]) GetByID(ctx context.Context, id int64) (*T, error) {
	var item T
	if err := r.db.WithContext(ctx).Where(r.idColumn+" = ?", id).First(&item).Error; err != nil {
		return nil, translate(err)
	}
	return &item, nil
}

// Exists 检查主键是否存在
func (r *CatalogRepository[T]) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(new(T)).Where(r.idColumn+" = ?", id).Count(&count).Error
	return count > 0, err
}

// ExistsByName 检查唯一名称是否已被占用，excludeID > 0 时排除该记录本身
func (r *CatalogRepository[T]) ExistsByName(ctx context.Context, name string, excludeID int64) (bool, error) {
	query := r.db.WithContext(ctx).Model(new(T)).Where(r.nameColumn+" = ?", name)
	if excludeID > 0 {
		query = query.Where(r.idColumn+" <> ?", excludeID)
	}
	var count int64
	err := query.Count(&count).Error
	return count > 0, err
}

// Create 插入记录，主键回填到 item
func (r *CatalogRepository[T]) Create(ctx context.Context, item *T) error {
	return translate(r.db.WithContext(ctx).Create(item).Error)
}

// Update 只更新 columns 中给出的列
func (r *CatalogRepository[T]) Update(ctx context.Context, item *T, columns map[string]any) error {
	result := r.db.WithContext(ctx).Model(item).Updates(columns)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete 物理删除记录，返回是否删除了数据
func (r *CatalogRepository[T]) Delete(ctx context.Context, id int64) (bool, error) {
	result := r.db.WithContext(ctx).Where(r.idColumn+" = ?", id).Delete(new(T))
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
