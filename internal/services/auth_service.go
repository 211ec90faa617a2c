package services

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"financehub/internal/dto"
	"financehub/internal/models"
	"financehub/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserAlreadyExists  = errors.New("user with this email already exists")
	ErrUserNotFound       = errors.New("user not found")
)

// AuthService handles registration and login
type AuthService struct {
	userRepo        repositories.UserRepositoryInterface
	profileRepo     repositories.ProfileRepositoryInterface
	categoryRepo    repositories.CategoryRepositoryInterface
	passwordService PasswordServiceInterface
	tokenService    TokenServiceInterface
	metrics         MetricsRecorderInterface
	logger          *slog.Logger
}

// NewAuthService creates the authentication service
func NewAuthService(
	userRepo repositories.UserRepositoryInterface,
	profileRepo repositories.ProfileRepositoryInterface,
	categoryRepo repositories.CategoryRepositoryInterface,
	passwordService PasswordServiceInterface,
	tokenService TokenServiceInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) AuthServiceInterface {
	return &AuthService{
		userRepo:        userRepo,
		profileRepo:     profileRepo,
		categoryRepo:    categoryRepo,
		passwordService: passwordService,
		tokenService:    tokenService,
		metrics:         metrics,
		logger:          logger,
	}
}

// Register creates a user with a starting profile and the default category
// set, then issues an access token.
func (s *AuthService) Register(req *dto.RegisterRequest, ipAddress string) (*dto.TokenResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	exists, err := s.userRepo.ExistsByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if exists {
		s.recordAuthEvent("register", "email_taken")
		return nil, ErrUserAlreadyExists
	}

	if err := s.passwordService.ValidatePasswordStrength(req.Password); err != nil {
		return nil, err
	}
	hashedPassword, err := s.passwordService.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	monthlyIncome, err := parseOptionalAmount(req.MonthlyIncome)
	if err != nil {
		return nil, ErrInvalidAmount
	}
	cashOnHand, err := parseOptionalAmount(req.CashOnHand)
	if err != nil {
		return nil, ErrInvalidAmount
	}

	user := &models.User{
		Email:        email,
		PasswordHash: hashedPassword,
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	profile := &models.Profile{
		UserID:        user.ID,
		MonthlyIncome: monthlyIncome,
		CashOnHand:    cashOnHand,
	}
	if err := s.profileRepo.Create(profile); err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}

	categories := make([]models.Category, 0, len(models.DefaultCategories()))
	for _, spec := range models.DefaultCategories() {
		categories = append(categories, models.Category{
			UserID:       user.ID,
			Name:         spec.Name,
			CategoryType: spec.Type,
			Color:        spec.Color,
		})
	}
	if err := s.categoryRepo.CreateBatch(categories); err != nil {
		return nil, fmt.Errorf("failed to create default categories: %w", err)
	}

	if s.metrics != nil {
		s.metrics.IncrementCounter("registration", nil)
	}
	s.recordAuthEvent("register", "success")
	s.logger.Info("user registered", "user_id", user.ID, "ip", ipAddress)

	return s.issueToken(user)
}

// Login verifies credentials and issues an access token.
func (s *AuthService) Login(req *dto.LoginRequest, ipAddress string) (*dto.TokenResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			s.recordAuthEvent("login", "unknown_email")
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := s.passwordService.VerifyPassword(user.PasswordHash, req.Password); err != nil {
		s.recordAuthEvent("login", "wrong_password")
		s.logger.Warn("failed login attempt", "user_id", user.ID, "ip", ipAddress)
		return nil, ErrInvalidCredentials
	}

	s.recordAuthEvent("login", "success")
	s.logger.Info("user logged in", "user_id", user.ID, "ip", ipAddress)

	return s.issueToken(user)
}

// GetProfile returns the authenticated user's identity and money figures.
func (s *AuthService) GetProfile(userID uuid.UUID) (*dto.UserProfileResponse, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	profile, err := s.profileRepo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}

	return &dto.UserProfileResponse{
		ID:            user.ID.String(),
		Email:         user.Email,
		FirstName:     user.FirstName,
		LastName:      user.LastName,
		MonthlyIncome: profile.MonthlyIncome.StringFixed(2),
		CashOnHand:    profile.CashOnHand.StringFixed(2),
	}, nil
}

func (s *AuthService) issueToken(user *models.User) (*dto.TokenResponse, error) {
	token, expiresAt, err := s.tokenService.GenerateAccessToken(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}
	return &dto.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
	}, nil
}

func (s *AuthService) recordAuthEvent(event, status string) {
	if s.metrics == nil {
		return
	}
	s.metrics.IncrementCounter("auth_event", map[string]string{"event": event, "status": status})
}

func parseOptionalAmount(raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, nil
	}
	amount, err := decimal.NewFromString(raw)
	if err != nil || amount.IsNegative() {
		return decimal.Decimal{}, ErrInvalidAmount
	}
	return amount, nil
}
