package service

import (
	"context"
	"errors"
	"strings"

	"starwars-api/internal/model"
	"starwars-api/internal/repository"
	"starwars-api/pkg/logger"

	"go.uber.org/zap"
)

// FavoriteService 用户收藏某一类目录实体
type FavoriteService[L any] struct {
	users   Existence
	targets Existence
	links   LinkStore[L]
	kind    string
	label   string
}

func NewFavoriteService[L any](users, targets Existence, links LinkStore[L], kind string) *FavoriteService[L] {
	return &FavoriteService[L]{
		users:   users,
		targets: targets,
		links:   links,
		kind:    kind,
		label:   model.KindLabel(kind),
	}
}

// Kind 收藏目标的种类，如 planet
func (s *FavoriteService[L]) Kind() string {
	return s.kind
}

// Add 添加收藏：用户、目标依次检查存在，重复收藏返回冲突
func (s *FavoriteService[L]) Add(ctx context.Context, targetID, userID int64) error {
	if err := s.mustExist(ctx, s.users, userID, "The user does not exist"); err != nil {
		return err
	}
	if err := s.mustExist(ctx, s.targets, targetID, "The "+s.kind+" does not exist"); err != nil {
		return err
	}

	exists, err := s.links.Exists(ctx, userID, targetID)
	if err != nil {
		return err
	}
	if exists {
		return s.alreadyFavorite()
	}

	if _, err := s.links.Create(ctx, userID, targetID); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return s.alreadyFavorite()
		}
		return err
	}

	logger.Info("Favorite added",
		zap.String("kind", s.kind),
		zap.Int64("user_id", userID),
		zap.Int64("target_id", targetID),
	)
	return nil
}

// Remove 取消收藏
func (s *FavoriteService[L]) Remove(ctx context.Context, targetID, userID int64) error {
	if err := s.mustExist(ctx, s.users, userID, "User not found"); err != nil {
		return err
	}
	if err := s.mustExist(ctx, s.targets, targetID, s.label+" not found"); err != nil {
		return err
	}

	deleted, err := s.links.Delete(ctx, userID, targetID)
	if err != nil {
		return err
	}
	if !deleted {
		return notFoundf("Favorite %s not found", s.kind)
	}

	logger.Info("Favorite removed",
		zap.String("kind", s.kind),
		zap.Int64("user_id", userID),
		zap.Int64("target_id", targetID),
	)
	return nil
}

// AddedMessage 添加成功的提示信息
func (s *FavoriteService[L]) AddedMessage() string {
	return s.label + " added to favorites"
}

// RemovedMessage 取消成功的提示信息
func (s *FavoriteService[L]) RemovedMessage() string {
	return "Favorite " + strings.ToLower(s.label) + " deleted"
}

func (s *FavoriteService[L]) alreadyFavorite() error {
	return conflictf("%s is already a favorite", s.label)
}

func (s *FavoriteService[L]) mustExist(ctx context.Context, store Existence, id int64, msg string) error {
	ok, err := store.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return notFoundf("%s", msg)
	}
	return nil
}
