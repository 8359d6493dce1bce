package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fitfeed/internal/entity"
	"fitfeed/internal/repo/persistent"
	"fitfeed/pkg/jwt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type AuthUseCase interface {
	SignUp(ctx context.Context, email, password string) (*entity.User, error)
	SignIn(ctx context.Context, email, password string) (string, *entity.User, error)
	Profile(ctx context.Context, userID string) (*entity.User, error)
}

type authUseCase struct {
	userRepo   persistent.UserRepository
	jwtService *jwt.Service
}

func NewAuthUseCase(userRepo persistent.UserRepository, jwtService *jwt.Service) AuthUseCase {
	return &authUseCase{userRepo: userRepo, jwtService: jwtService}
}

func (uc *authUseCase) SignUp(ctx context.Context, email, password string) (*entity.User, error) {
	if isBlank(email) || isBlank(password) {
		return nil, fmt.Errorf("%w: email and password are required", entity.ErrValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}

	if err := uc.userRepo.Insert(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// SignIn verifies credentials and issues a token. A wrong password and an
// unknown email report the same validation failure.
func (uc *authUseCase) SignIn(ctx context.Context, email, password string) (string, *entity.User, error) {
	if isBlank(email) || isBlank(password) {
		return "", nil, fmt.Errorf("%w: email and password are required", entity.ErrValidation)
	}

	user, err := uc.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return "", nil, fmt.Errorf("%w: invalid email or password", entity.ErrValidation)
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, fmt.Errorf("%w: invalid email or password", entity.ErrValidation)
	}

	token, err := uc.jwtService.GenerateToken(user.ID, user.Email)
	if err != nil {
		return "", nil, fmt.Errorf("failed to generate token: %w", err)
	}
	return token, user, nil
}

func (uc *authUseCase) Profile(ctx context.Context, userID string) (*entity.User, error) {
	return uc.userRepo.FindByID(ctx, userID)
}
