package users

import "context"

type Repository interface {
	Create(ctx context.Context, u User) error
	GetByName(ctx context.Context, name string) (User, error)
	List(ctx context.Context) ([]User, error)
}
