package provider

import (
	"context"

	"wanderhub/database/repository/provider"
	"wanderhub/models"
)

// ProviderService manages service-provider accounts and their sessions.
type ProviderService interface {
	Register(ctx context.Context, p models.ServiceProvider) (*AuthResponse, error)
	Authenticate(ctx context.Context, email, password string) (*AuthResponse, error)
	GetByID(ctx context.Context, id string) (*models.ServiceProvider, error)
	RevokeToken(ctx context.Context, id string) error
}

// DefaultProviderService is the production implementation backed by MongoDB.
type DefaultProviderService struct {
	Repo providerRepo.ProviderRepository
}

func (s *DefaultProviderService) GetByID(ctx context.Context, id string) (*models.ServiceProvider, error) {
	return s.Repo.GetByID(ctx, id)
}
