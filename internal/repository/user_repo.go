package repository

import (
	"context"

	"starwars-api/internal/model"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// List 返回全部用户（包含已停用）
func (r *UserRepository) List(ctx context.Context) ([]model.User, error) {
	users := make([]model.User, 0)
	if err := r.db.WithContext(ctx).Order("id").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// GetByID 根据 ID 查询用户（包含已停用）
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

// Exists 检查用户是否存在
func (r *UserRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.User{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// ExistsByUserName 检查用户名是否已存在，excludeID > 0 时排除该用户
func (r *UserRepository) ExistsByUserName(ctx context.Context, userName string, excludeID int64) (bool, error) {
	return r.existsBy(ctx, "user_name", userName, excludeID)
}

// ExistsByEmail 检查邮箱是否已存在，excludeID > 0 时排除该用户
func (r *UserRepository) ExistsByEmail(ctx context.Context, email string, excludeID int64) (bool, error) {
	return r.existsBy(ctx, "email", email, excludeID)
}

func (r *UserRepository) existsBy(ctx context.Context, column, value string, excludeID int64) (bool, error) {
	query := r.db.WithContext(ctx).Model(&model.User{}).Where(column+" = ?", value)
	if excludeID > 0 {
		query = query.Where("id <> ?", excludeID)
	}
	var count int64
	err := query.Count(&count).Error
	return count > 0, err
}

// Create 创建用户
func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	return translate(r.db.WithContext(ctx).Create(user).Error)
}

// Update 更新用户字段（传入 map，只更新给出的列）
func (r *UserRepository) Update(ctx context.Context, user *model.User, columns map[string]any) error {
	result := r.db.WithContext(ctx).Model(user).Updates(columns)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
