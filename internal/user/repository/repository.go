package repository

import (
	"errors"
	"sync"
	"time"

	"officeflow-backend/internal/user/domain"

	"gorm.io/gorm"
)

// UserRepository defines the interface for user data access.
type UserRepository interface {
	Create(user *domain.User) error
	// FindByID returns nil (no error) when the user is absent.
	FindByID(id uint) (*domain.User, error)
	FindAll() ([]*domain.User, error)
}

type gormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository creates a new GORM-based UserRepository.
func NewGormUserRepository(db *gorm.DB) UserRepository {
	return &gormUserRepository{db: db}
}

func (r *gormUserRepository) Create(user *domain.User) error {
	user.CreatedAt = time.Now()
	return r.db.Create(user).Error
}

func (r *gormUserRepository) FindByID(id uint) (*domain.User, error) {
	var user domain.User
	err := r.db.First(&user, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *gormUserRepository) FindAll() ([]*domain.User, error) {
	var users []*domain.User
	err := r.db.Order("created_at DESC").Find(&users).Error
	return users, err
}

// memoryUserRepository backs tests with the same contract.
type memoryUserRepository struct {
	mu     sync.RWMutex
	nextID uint
	users  map[uint]domain.User
}

func NewMemoryUserRepository() UserRepository {
	return &memoryUserRepository{users: make(map[uint]domain.User)}
}

func (r *memoryUserRepository) Create(user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	user.ID = r.nextID
	user.CreatedAt = time.Now()
	r.users[user.ID] = *user
	return nil
}

func (r *memoryUserRepository) FindByID(id uint) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

func (r *memoryUserRepository) FindAll() ([]*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		user := u
		users = append(users, &user)
	}
	return users, nil
}
