package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"opos-parking/internal/config"
	"opos-parking/internal/email"
	"opos-parking/internal/logger"
	"opos-parking/internal/user/model"
	"opos-parking/internal/user/repository"
	"opos-parking/internal/user/validator"
	appErrors "opos-parking/pkg/errors"
	"opos-parking/pkg/utils"
)

type UserService struct {
	repo     *repository.UserRepository
	config   *config.Config
	mailer   email.Mailer
	verifier TokenVerifier
}

func NewService(repo *repository.UserRepository, cfg *config.Config, mailer email.Mailer, verifier TokenVerifier) *UserService {
	return &UserService{
		repo:     repo,
		config:   cfg,
		mailer:   mailer,
		verifier: verifier,
	}
}

func (s *UserService) Signup(ctx context.Context, request *model.SignupRequest) (*model.AuthResponse, error) {
	if request.Role == "" {
		request.Role = string(model.RoleCustomer)
	}
	if !model.ValidRole(request.Role) {
		return nil, appErrors.ErrInvalidUserRole
	}

	if err := validator.ValidateStruct(request); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}
	if err := utils.ValidatePassword(request.Password); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", err.Error(), err)
	}

	// The unfiltered lookup keeps soft-deleted emails reserved.
	existing, err := s.repo.GetUserByEmailAnyStatus(ctx, request.Email)
	if err != nil && !errors.Is(err, appErrors.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, appErrors.ErrUserAlreadyExists
	}

	user := &model.User{
		Name:     strings.ToLower(request.Name),
		Email:    request.Email,
		Role:     model.Role(request.Role),
		ImageURL: request.ImageURL,
	}
	if err := user.SetPassword(request.Password); err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.repo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	s.sendWelcomeAsync(user.Email, user.Name)

	return s.authResponse(user)
}

func (s *UserService) Login(ctx context.Context, request *model.LoginRequest) (*model.AuthResponse, error) {
	if err := validator.ValidateStruct(request); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Please provide email and password", err)
	}

	user, err := s.repo.GetUserByEmail(ctx, request.Email)
	if err != nil {
		if errors.Is(err, appErrors.ErrUserNotFound) {
			// Same answer as a wrong password, no enumeration signal.
			return nil, appErrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !user.CorrectPassword(request.Password) {
		return nil, appErrors.ErrInvalidCredentials
	}

	return s.authResponse(user)
}

// GoogleLogin verifies the provider ID token and finds or creates the local
// account. New accounts are created without password validation.
func (s *UserService) GoogleLogin(ctx context.Context, request *model.GoogleLoginRequest) (*model.AuthResponse, error) {
	if err := validator.ValidateStruct(request); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	profile, err := s.verifier.Verify(ctx, request.IDToken)
	if err != nil {
		logger.Warn("Google token verification failed", zap.Error(err))
		return nil, appErrors.ErrGoogleLoginFail
	}
	if !profile.EmailVerified {
		return nil, appErrors.ErrGoogleLoginFail
	}

	user, err := s.repo.GetUserByEmail(ctx, strings.ToLower(profile.Email))
	if err != nil {
		if !errors.Is(err, appErrors.ErrUserNotFound) {
			return nil, err
		}

		user = &model.User{
			Name:     strings.ToLower(profile.Name),
			Email:    strings.ToLower(profile.Email),
			IsGoogle: true,
			Role:     model.RoleCustomer,
			ImageURL: profile.Picture,
		}
		if err := s.repo.CreateUser(ctx, user); err != nil {
			return nil, err
		}

		s.sendWelcomeAsync(user.Email, user.Name)
	}

	return s.authResponse(user)
}

func (s *UserService) ForgotPassword(ctx context.Context, request *model.ForgotPasswordRequest) error {
	if err := validator.ValidateStruct(request); err != nil {
		return appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	user, err := s.repo.GetUserByEmail(ctx, request.Email)
	if err != nil {
		return err
	}

	rawToken, err := user.CreatePasswordResetToken()
	if err != nil {
		return fmt.Errorf("failed to generate reset token: %w", err)
	}
	if err := s.repo.SaveResetToken(ctx, user); err != nil {
		return err
	}

	resetURL := fmt.Sprintf("%s/%s", strings.TrimRight(s.config.App.ResetURLBase, "/"), rawToken)

	if err := s.mailer.SendPasswordReset(user.Email, user.Name, resetURL); err != nil {
		logger.Error("Failed to send reset email", zap.String("email", user.Email), zap.Error(err))

		// Roll the token back so the failed send leaves no live reset token.
		user.ClearPasswordResetToken()
		if rbErr := s.repo.SaveResetToken(ctx, user); rbErr != nil {
			logger.Error("Failed to roll back reset token", zap.Error(rbErr))
		}
		return appErrors.ErrEmailSendFailed
	}

	return nil
}

func (s *UserService) ResetPassword(ctx context.Context, rawToken string, request *model.ResetPasswordRequest) (*model.AuthResponse, error) {
	if err := validator.ValidateStruct(request); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}
	if err := utils.ValidatePassword(request.Password); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", err.Error(), err)
	}

	user, err := s.repo.GetUserByResetToken(ctx, utils.HashResetToken(rawToken))
	if err != nil {
		return nil, err
	}

	if err := user.SetPassword(request.Password); err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	user.MarkPasswordChanged()
	user.ClearPasswordResetToken()

	if err := s.repo.UpdatePassword(ctx, user); err != nil {
		return nil, err
	}

	return s.authResponse(user)
}

func (s *UserService) UpdatePassword(ctx context.Context, userID uuid.UUID, request *model.UpdatePasswordRequest) (*model.AuthResponse, error) {
	if err := validator.ValidateStruct(request); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}
	if err := utils.ValidatePassword(request.Password); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", err.Error(), err)
	}

	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if !user.CorrectPassword(request.PasswordCurrent) {
		return nil, appErrors.ErrInvalidCredentials
	}

	if err := user.SetPassword(request.Password); err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	user.MarkPasswordChanged()
	user.ClearPasswordResetToken()

	if err := s.repo.UpdatePassword(ctx, user); err != nil {
		return nil, err
	}

	return s.authResponse(user)
}

func (s *UserService) GetUser(ctx context.Context, userID uuid.UUID) (*model.UserResponse, error) {
	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return user.ToResponse(), nil
}

func (s *UserService) ListUsers(ctx context.Context) ([]*model.UserResponse, error) {
	users, err := s.repo.ListUsers(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]*model.UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, users[i].ToResponse())
	}
	return responses, nil
}

func (s *UserService) UpdateMe(ctx context.Context, userID uuid.UUID, request *model.UpdateMeRequest) (*model.UserResponse, error) {
	if err := validator.ValidateStruct(request); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if request.Name != nil {
		user.Name = strings.ToLower(*request.Name)
	}
	if request.ImageURL != nil {
		user.ImageURL = *request.ImageURL
	}

	if err := s.repo.UpdateProfile(ctx, user); err != nil {
		return nil, err
	}

	return user.ToResponse(), nil
}

func (s *UserService) DeleteMe(ctx context.Context, userID uuid.UUID) error {
	return s.repo.SoftDelete(ctx, userID)
}

func (s *UserService) authResponse(user *model.User) (*model.AuthResponse, error) {
	token, err := utils.GenerateToken(user.ID, s.config.JWT.Secret, s.config.JWT.ExpiryHours)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &model.AuthResponse{
		Token: token,
		User:  user.ToResponse(),
	}, nil
}

// sendWelcomeAsync dispatches the welcome mail without blocking the signup
// response. Failures are logged and swallowed.
func (s *UserService) sendWelcomeAsync(to, name string) {
	go func() {
		if err := s.mailer.SendWelcome(to, name); err != nil {
			logger.Warn("Failed to send welcome email", zap.String("email", to), zap.Error(err))
		}
	}()
}
