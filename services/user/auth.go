package user

import (
	"context"
	"regexp"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"wanderhub/models"
	"wanderhub/services/errs"
	"wanderhub/utils"
)

// AuthResponse contains the account's ID, a fresh token, and profile details.
type AuthResponse struct {
	ID         string `json:"id"`
	Token      string `json:"token"`
	Name       string `json:"name,omitempty"`
	Email      string `json:"email,omitempty"`
	Phone      string `json:"phone,omitempty"`
	ProfilePic string `json:"profilePic,omitempty"`
}

// verifyPasswordComplexity checks that the password contains at least one
// lowercase letter, one uppercase letter, one digit, and one symbol.
func verifyPasswordComplexity(pw string) error {
	var (
		hasMinLen = len(pw) >= 8
		hasUpper  = regexp.MustCompile(`[A-Z]`).MatchString(pw)
		hasLower  = regexp.MustCompile(`[a-z]`).MatchString(pw)
		hasNumber = regexp.MustCompile(`[0-9]`).MatchString(pw)
		hasSymbol = regexp.MustCompile(`[\W_]`).MatchString(pw)
	)
	if !hasMinLen {
		return errs.Validation("password must be at least 8 characters long")
	}
	if !hasUpper {
		return errs.Validation("password must include at least one uppercase letter")
	}
	if !hasLower {
		return errs.Validation("password must include at least one lowercase letter")
	}
	if !hasNumber {
		return errs.Validation("password must include at least one number")
	}
	if !hasSymbol {
		return errs.Validation("password must include at least one symbol")
	}
	return nil
}

// Register creates a new user account, issues a token, and stores its hash.
func (s *DefaultUserService) Register(ctx context.Context, u models.User) (*AuthResponse, error) {
	if u.Email == "" || u.Password == "" {
		return nil, errs.Validation("email and password are required")
	}
	if u.Name == "" {
		return nil, errs.Validation("name is required")
	}
	if err := verifyPasswordComplexity(u.Password); err != nil {
		return nil, err
	}

	existing, err := s.Repo.GetByEmail(ctx, u.Email)
	if err != nil {
		utils.GetLogger().Error("Failed to check for existing user", zap.Error(err))
		return nil, err
	}
	if existing != nil {
		return nil, errs.Validation("an account with this email already exists")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.GetLogger().Error("Failed to hash password", zap.Error(err))
		return nil, err
	}
	u.PasswordHash = string(hashed)
	u.Password = ""

	u.ID = uuid.New().String()
	u.CreatedAt = time.Now()

	if err := s.Repo.Create(ctx, &u); err != nil {
		utils.GetLogger().Error("Failed to create user", zap.Error(err))
		return nil, err
	}

	token, err := s.issueToken(ctx, &u)
	if err != nil {
		return nil, err
	}

	return &AuthResponse{
		ID:         u.ID,
		Token:      token,
		Name:       u.Name,
		Email:      u.Email,
		Phone:      u.Phone,
		ProfilePic: u.ProfilePic,
	}, nil
}

// Authenticate verifies credentials and rotates the session token.
func (s *DefaultUserService) Authenticate(ctx context.Context, email, password string) (*AuthResponse, error) {
	if email == "" || password == "" {
		return nil, errs.Validation("email and password are required")
	}

	u, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		utils.GetLogger().Error("Failed to fetch user for authentication", zap.Error(err))
		return nil, err
	}
	if u == nil {
		return nil, errs.Authorization("invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, errs.Authorization("invalid email or password")
	}

	// Rotating the token hash invalidates any previously issued token.
	if u.TokenHash != "" {
		utils.EvictAuthSubject(u.TokenHash)
	}
	token, err := s.issueToken(ctx, u)
	if err != nil {
		return nil, err
	}

	return &AuthResponse{
		ID:         u.ID,
		Token:      token,
		Name:       u.Name,
		Email:      u.Email,
		Phone:      u.Phone,
		ProfilePic: u.ProfilePic,
	}, nil
}

// RevokeToken clears the stored token hash so the current token stops working.
func (s *DefaultUserService) RevokeToken(ctx context.Context, id string) error {
	u, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if u == nil {
		return errs.NotFound("user")
	}
	if u.TokenHash != "" {
		utils.EvictAuthSubject(u.TokenHash)
	}
	return s.Repo.SetTokenHash(ctx, id, "")
}

func (s *DefaultUserService) issueToken(ctx context.Context, u *models.User) (string, error) {
	token, err := utils.GenerateToken(u.ID, "user", utils.AuthTokenTTL)
	if err != nil {
		utils.GetLogger().Error("Failed to generate auth token", zap.Error(err))
		return "", err
	}
	hash := utils.HashToken(token)
	if err := s.Repo.SetTokenHash(ctx, u.ID, hash); err != nil {
		utils.GetLogger().Error("Failed to store token hash", zap.Error(err))
		return "", err
	}
	utils.CacheAuthSubject(hash, "user", u.ID)
	return token, nil
}
