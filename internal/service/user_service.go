package service

import (
	"context"
	"errors"

	"starwars-api/internal/api/dto"
	"starwars-api/internal/model"
	"starwars-api/internal/repository"
	"starwars-api/pkg/logger"

	"go.uber.org/zap"
)

// UserFields is_active 可选，创建时缺省为 true
var UserFields = NewFieldSet([]string{"user_name", "email", "password"}, "is_active")

// FavoriteLists 汇总查询用到的三类收藏存储
type FavoriteLists struct {
	Planets    LinkStore[model.FavoritePlanet]
	Characters LinkStore[model.FavoriteCharacter]
	Vehicles   LinkStore[model.FavoriteVehicle]
}

type UserService struct {
	users     UserStore
	favorites FavoriteLists
}

func NewUserService(users UserStore, favorites FavoriteLists) *UserService {
	return &UserService{users: users, favorites: favorites}
}

// List 返回全部用户（包含已停用）
func (s *UserService) List(ctx context.Context) ([]model.User, error) {
	return s.users.List(ctx)
}

func (s *UserService) Get(ctx context.Context, id int64) (*model.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, notFoundf("User with id %d does not exist", id)
		}
		return nil, err
	}
	return user, nil
}

// Create 用户名和邮箱都必须未被占用
func (s *UserService) Create(ctx context.Context, body []byte) (*model.User, error) {
	var in dto.UserInput
	if err := UserFields.DecodeCreate(body, &in); err != nil {
		return nil, err
	}

	user := &model.User{IsActive: true}
	in.Apply(user)

	nameTaken, err := s.users.ExistsByUserName(ctx, user.UserName, 0)
	if err != nil {
		return nil, err
	}
	emailTaken, err := s.users.ExistsByEmail(ctx, user.Email, 0)
	if err != nil {
		return nil, err
	}
	if nameTaken || emailTaken {
		return nil, errUserExists()
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, errUserExists()
		}
		return nil, err
	}

	logger.Info("User created", zap.Int64("user_id", user.ID), zap.String("user_name", user.UserName))
	return user, nil
}

// Update 部分更新，唯一性检查排除用户自身
func (s *UserService) Update(ctx context.Context, id int64, body []byte) error {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFoundf("User with id %d not found", id)
		}
		return err
	}

	var in dto.UserInput
	keys, err := UserFields.DecodeUpdate(body, &in)
	if err != nil {
		return err
	}
	in.Apply(user)

	if contains(keys, "user_name") {
		taken, err := s.users.ExistsByUserName(ctx, user.UserName, id)
		if err != nil {
			return err
		}
		if taken {
			return conflictf("This username already exists")
		}
	}
	if contains(keys, "email") {
		taken, err := s.users.ExistsByEmail(ctx, user.Email, id)
		if err != nil {
			return err
		}
		if taken {
			return conflictf("This email already exists")
		}
	}

	if err := s.users.Update(ctx, user, in.Columns()); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicate):
			return errUserExists()
		case errors.Is(err, repository.ErrNotFound):
			return notFoundf("User with id %d not found", id)
		}
		return err
	}
	return nil
}

// Delete 软删除：把 is_active 置为 false，重复停用返回冲突
func (s *UserService) Delete(ctx context.Context, id int64) error {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFoundf("User with id %d not found", id)
		}
		return err
	}
	if !user.IsActive {
		return conflictf("User with id %d is already deactivated", id)
	}

	user.IsActive = false
	if err := s.users.Update(ctx, user, map[string]any{"is_active": false}); err != nil {
		return err
	}

	logger.Info("User deactivated", zap.Int64("user_id", id))
	return nil
}

// Favorites 用户的全部收藏，目标实体展开；用户不存在时返回 404
func (s *UserService) Favorites(ctx context.Context, id int64) (*dto.UserFavoritesData, error) {
	user, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	planets, err := s.favorites.Planets.ListByUser(ctx, id)
	if err != nil {
		return nil, err
	}
	characters, err := s.favorites.Characters.ListByUser(ctx, id)
	if err != nil {
		return nil, err
	}
	vehicles, err := s.favorites.Vehicles.ListByUser(ctx, id)
	if err != nil {
		return nil, err
	}

	return &dto.UserFavoritesData{
		FavoritePlanets:    planets,
		FavoriteCharacters: characters,
		FavoriteVehicles:   vehicles,
		UserData:           user,
	}, nil
}

func errUserExists() error {
	return conflictf("User with this username or email already exists")
}
