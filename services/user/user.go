package user

import (
	"context"

	"wanderhub/database/repository/user"
	"wanderhub/models"
)

// UserService manages end-user accounts and their sessions.
type UserService interface {
	Register(ctx context.Context, u models.User) (*AuthResponse, error)
	Authenticate(ctx context.Context, email, password string) (*AuthResponse, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	UpdateProfile(ctx context.Context, id string, in ProfileUpdate) (*models.User, error)
	RevokeToken(ctx context.Context, id string) error
}

// DefaultUserService is the production implementation backed by MongoDB.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}

// ProfileUpdate carries the mutable profile fields. Empty fields are ignored.
type ProfileUpdate struct {
	Name       string `json:"name,omitempty"`
	Phone      string `json:"phone,omitempty"`
	ProfilePic string `json:"profilePic,omitempty"`
}

func (s *DefaultUserService) GetByID(ctx context.Context, id string) (*models.User, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *DefaultUserService) UpdateProfile(ctx context.Context, id string, in ProfileUpdate) (*models.User, error) {
	u, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, nil
	}

	if in.Name != "" {
		u.Name = in.Name
	}
	if in.Phone != "" {
		u.Phone = in.Phone
	}
	if in.ProfilePic != "" {
		u.ProfilePic = in.ProfilePic
	}

	if err := s.Repo.Update(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}
