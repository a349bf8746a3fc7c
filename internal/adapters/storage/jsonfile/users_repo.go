package jsonfile

import (
	"context"
	"fmt"
	"sync"

	"med-reminder/internal/domain/users"
)

type UsersRepo struct {
	mu   sync.RWMutex
	path string
}

func NewUsersRepo(path string) *UsersRepo {
	return &UsersRepo{path: path}
}

func (r *UsersRepo) load() ([]users.User, error) {
	var all []users.User
	if err := readCollection(r.path, &all); err != nil {
		return nil, err
	}
	// Rehidratación: cada registro almacenado tiene que traer uuid.
	for i, u := range all {
		if err := u.ValidateStored(); err != nil {
			return nil, fmt.Errorf("jsonfile: %s record %d: %w", r.path, i, err)
		}
	}
	return all, nil
}

func (r *UsersRepo) Create(ctx context.Context, u users.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	all, err := r.load()
	if err != nil {
		return err
	}
	all = append(all, u)
	return writeCollection(r.path, all)
}

func (r *UsersRepo) GetByName(ctx context.Context, name string) (users.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all, err := r.load()
	if err != nil {
		return users.User{}, err
	}
	for _, u := range all {
		if u.Name == name {
			return u, nil
		}
	}
	return users.User{}, users.ErrNotFound
}

func (r *UsersRepo) List(ctx context.Context) ([]users.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.load()
}
