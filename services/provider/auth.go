package provider

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"wanderhub/models"
	"wanderhub/services/errs"
	"wanderhub/utils"
)

// AuthResponse contains the provider's ID, a fresh token, and the linked
// service registration if one exists.
type AuthResponse struct {
	ID      string             `json:"id"`
	Token   string             `json:"token"`
	Email   string             `json:"email,omitempty"`
	Service *models.ServiceRef `json:"service,omitempty"`
}

// Register creates a new provider account, issues a token, and stores its
// hash. The service registration itself is claimed later through the catalog.
func (s *DefaultProviderService) Register(ctx context.Context, p models.ServiceProvider) (*AuthResponse, error) {
	if p.Email == "" || p.Password == "" {
		return nil, errs.Validation("email and password are required")
	}

	existing, err := s.Repo.GetByEmail(ctx, p.Email)
	if err != nil {
		utils.GetLogger().Error("Failed to check for existing provider", zap.Error(err))
		return nil, err
	}
	if existing != nil {
		return nil, errs.Validation("an account with this email already exists")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(p.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.GetLogger().Error("Failed to hash password", zap.Error(err))
		return nil, err
	}
	p.PasswordHash = string(hashed)
	p.Password = ""

	p.ID = uuid.New().String()
	p.Service = nil
	p.CreatedAt = time.Now()

	if err := s.Repo.Create(ctx, &p); err != nil {
		utils.GetLogger().Error("Failed to create provider", zap.Error(err))
		return nil, err
	}

	token, err := s.issueToken(ctx, &p)
	if err != nil {
		return nil, err
	}

	return &AuthResponse{ID: p.ID, Token: token, Email: p.Email}, nil
}

// Authenticate verifies credentials and rotates the session token.
func (s *DefaultProviderService) Authenticate(ctx context.Context, email, password string) (*AuthResponse, error) {
	if email == "" || password == "" {
		return nil, errs.Validation("email and password are required")
	}

	p, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		utils.GetLogger().Error("Failed to fetch provider for authentication", zap.Error(err))
		return nil, err
	}
	if p == nil {
		return nil, errs.Authorization("invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(p.PasswordHash), []byte(password)); err != nil {
		return nil, errs.Authorization("invalid email or password")
	}

	if p.TokenHash != "" {
		utils.EvictAuthSubject(p.TokenHash)
	}
	token, err := s.issueToken(ctx, p)
	if err != nil {
		return nil, err
	}

	return &AuthResponse{ID: p.ID, Token: token, Email: p.Email, Service: p.Service}, nil
}

// RevokeToken clears the stored token hash so the current token stops working.
func (s *DefaultProviderService) RevokeToken(ctx context.Context, id string) error {
	p, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if p == nil {
		return errs.NotFound("provider")
	}
	if p.TokenHash != "" {
		utils.EvictAuthSubject(p.TokenHash)
	}
	return s.Repo.SetTokenHash(ctx, id, "")
}

func (s *DefaultProviderService) issueToken(ctx context.Context, p *models.ServiceProvider) (string, error) {
	token, err := utils.GenerateToken(p.ID, "provider", utils.AuthTokenTTL)
	if err != nil {
		utils.GetLogger().Error("Failed to generate auth token", zap.Error(err))
		return "", err
	}
	hash := utils.HashToken(token)
	if err := s.Repo.SetTokenHash(ctx, p.ID, hash); err != nil {
		utils.GetLogger().Error("Failed to store token hash", zap.Error(err))
		return "", err
	}
	utils.CacheAuthSubject(hash, "provider", p.ID)
	return token, nil
}
