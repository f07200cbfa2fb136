package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"starwars-api/internal/model"
	"starwars-api/internal/repository"
)

// UserStore 用户的内存实现
type UserStore struct {
	mu     sync.RWMutex
	nextID int64
	users  map[int64]model.User
}

func NewUserStore() *UserStore {
	return &UserStore{users: make(map[int64]model.User)}
}

func (s *UserStore) List(ctx context.Context) ([]model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]model.User, 0, len(s.users))
	for _, u := range s.users {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func (s *UserStore) GetByID(ctx context.Context, id int64) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}

func (s *UserStore) Exists(ctx context.Context, id int64) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.users[id]
	return ok, nil
}

func (s *UserStore) ExistsByUserName(ctx context.Context, userName string, excludeID int64) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.taken(func(u model.User) bool { return u.UserName == userName }, excludeID), nil
}

func (s *UserStore) ExistsByEmail(ctx context.Context, email string, excludeID int64) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.taken(func(u model.User) bool { return u.Email == email }, excludeID), nil
}

func (s *UserStore) taken(match func(model.User) bool, excludeID int64) bool {
	for id, u := range s.users {
		if id != excludeID && match(u) {
			return true
		}
	}
	return false
}

func (s *UserStore) conflicts(user *model.User) bool {
	return s.taken(func(u model.User) bool {
		return u.UserName == user.UserName || u.Email == user.Email
	}, user.ID)
}

func (s *UserStore) Create(ctx context.Context, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.conflicts(user) {
		return fmt.Errorf("%w: user %s", repository.ErrDuplicate, user.UserName)
	}
	s.nextID++
	user.ID = s.nextID
	s.users[user.ID] = *user
	return nil
}

// Update 只把 columns 合并到当前存储的用户上
func (s *UserStore) Update(ctx context.Context, user *model.User, columns map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.users[user.ID]
	if !ok {
		return repository.ErrNotFound
	}
	for col, v := range columns {
		if err := setUserColumn(&current, col, v); err != nil {
			return err
		}
	}
	if s.conflicts(&current) {
		return fmt.Errorf("%w: user %s", repository.ErrDuplicate, current.UserName)
	}
	s.users[current.ID] = current
	*user = current
	return nil
}

func setUserColumn(u *model.User, col string, v any) error {
	var ok bool
	switch col {
	case "user_name":
		u.UserName, ok = v.(string)
	case "email":
		u.Email, ok = v.(string)
	case "password":
		u.Password, ok = v.(string)
	case "is_active":
		u.IsActive, ok = v.(bool)
	default:
		return fmt.Errorf("unknown column %s", col)
	}
	if !ok {
		return fmt.Errorf("invalid value for column %s: %v", col, v)
	}
	return nil
}
