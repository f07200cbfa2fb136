package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"starwars-api/internal/model"
	"starwars-api/internal/repository"
)

// LinkStore 收藏关联的内存实现，attach 负责填充目标实体
type LinkStore[L any, PL model.LinkPtr[L]] struct {
	mu      sync.RWMutex
	nextID  int64
	links   map[int64]L
	newLink func(userID, targetID int64) *L
	attach  func(ctx context.Context, link *L) error
}

func NewLinkStore[L any, PL model.LinkPtr[L]](
	newLink func(userID, targetID int64) *L,
	attach func(ctx context.Context, link *L) error,
) *LinkStore[L, PL] {
	return &LinkStore[L, PL]{links: make(map[int64]L), newLink: newLink, attach: attach}
}

func (s *LinkStore[L, PL]) find(userID, targetID int64) (int64, bool) {
	for id, l := range s.links {
		if PL(&l).OwnerID() == userID && PL(&l).TargetID() == targetID {
			return id, true
		}
	}
	return 0, false
}

func (s *LinkStore[L, PL]) Exists(ctx context.Context, userID, targetID int64) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.find(userID, targetID)
	return ok, nil
}

func (s *LinkStore[L, PL]) Create(ctx context.Context, userID, targetID int64) (*L, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.find(userID, targetID); ok {
		return nil, fmt.Errorf("%w: link %d-%d", repository.ErrDuplicate, userID, targetID)
	}
	link := s.newLink(userID, targetID)
	s.nextID++
	PL(link).SetLinkID(s.nextID)
	s.links[s.nextID] = *link
	return link, nil
}

func (s *LinkStore[L, PL]) Delete(ctx context.Context, userID, targetID int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.find(userID, targetID)
	if !ok {
		return false, nil
	}
	delete(s.links, id)
	return true, nil
}

// DeleteByTarget 目标实体删除后清理关联行
func (s *LinkStore[L, PL]) DeleteByTarget(targetID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, l := range s.links {
		if PL(&l).TargetID() == targetID {
			delete(s.links, id)
		}
	}
}

func (s *LinkStore[L, PL]) ListByUser(ctx context.Context, userID int64) ([]L, error) {
	s.mu.RLock()
	links := make([]L, 0)
	for _, l := range s.links {
		if PL(&l).OwnerID() == userID {
			links = append(links, l)
		}
	}
	s.mu.RUnlock()

	sort.Slice(links, func(i, j int) bool { return PL(&links[i]).LinkID() < PL(&links[j]).LinkID() })
	for i := range links {
		if err := s.attach(ctx, &links[i]); err != nil {
			return nil, err
		}
	}
	return links, nil
}
