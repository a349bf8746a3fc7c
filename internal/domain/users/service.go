package users

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("user not found")
)

type Service struct {
	repo  Repository
	newID func() string
}

func NewService(repo Repository) *Service {
	return &Service{
		repo:  repo,
		newID: uuid.NewString,
	}
}

type CreateInput struct {
	Name          string
	BranchName    string
	BranchAddress string
	Ailments      string
	PhoneNumber   string
}

// Create valida y da de alta un usuario con uuid fresco.
// Sin trims ni validación de formato de teléfono: se conserva a
// propósito la simplificación del contrato original.
func (s *Service) Create(ctx context.Context, in CreateInput) (User, error) {
	if in.Name == "" {
		return User{}, fmt.Errorf("%w: name must be non-empty", ErrInvalidInput)
	}

	u := User{
		UUID:          s.newID(),
		Name:          in.Name,
		BranchName:    in.BranchName,
		BranchAddress: in.BranchAddress,
		Ailments:      in.Ailments,
		PhoneNumber:   in.PhoneNumber,
	}

	if err := s.repo.Create(ctx, u); err != nil {
		return User{}, err
	}
	return u, nil
}

func (s *Service) GetByName(ctx context.Context, name string) (User, error) {
	if name == "" {
		return User{}, fmt.Errorf("%w: name must be non-empty", ErrInvalidInput)
	}
	return s.repo.GetByName(ctx, name)
}

func (s *Service) List(ctx context.Context) ([]User, error) {
	return s.repo.List(ctx)
}
