package service

import (
	"context"
	"strings"
	"time"

	"github.com/jinzhu/copier"

	"Implicate/internal/api/dto"
	"Implicate/internal/model"
	"Implicate/internal/pkg/consts"
	"Implicate/internal/pkg/redis"
	"Implicate/internal/pkg/security"
	"Implicate/internal/repository"
)

type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterDTO) (*dto.AuthResultDTO, error)
	Login(ctx context.Context, req *dto.CredentialDTO) (*dto.AuthResultDTO, error)
	ChangePassword(ctx context.Context, userID uint64, req *dto.ChangePasswordDTO) error
	Logout(ctx context.Context, token string) error
}

type authServiceImpl struct {
	userRepo repository.UserRepo
}

func NewAuthService(userRepo repository.UserRepo) AuthService {
	return &authServiceImpl{userRepo: userRepo}
}

func (s *authServiceImpl) Register(ctx context.Context, req *dto.RegisterDTO) (*dto.AuthResultDTO, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" {
		return nil, ErrCredentialsRequired
	}
	if len(req.Password) < 6 {
		return nil, ErrPasswordTooShort
	}

	existing, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := security.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Email:        email,
		PasswordHash: hash,
		Name:         req.Name,
		County:       req.County,
	}
	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	return s.issueToken(user)
}

func (s *authServiceImpl) Login(ctx context.Context, req *dto.CredentialDTO) (*dto.AuthResultDTO, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	// A missing account and a wrong password are deliberately
	// indistinguishable to the caller.
	if user == nil || security.CheckPasswordHash(req.Password, user.PasswordHash) != nil {
		return nil, ErrInvalidCredentials
	}
	return s.issueToken(user)
}

func (s *authServiceImpl) ChangePassword(ctx context.Context, userID uint64, req *dto.ChangePasswordDTO) error {
	if len(req.NewPassword) < 6 {
		return ErrPasswordTooShort
	}
	user, err := s.userRepo.GetUserById(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	if security.CheckPasswordHash(req.CurrentPassword, user.PasswordHash) != nil {
		return ErrCurrentPasswordWrong
	}
	hash, err := security.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}
	return s.userRepo.UpdatePassword(ctx, userID, hash)
}

// Logout denies the token's signature in redis until the token would have
// expired on its own. Auth middleware rejects any denied signature.
func (s *authServiceImpl) Logout(ctx context.Context, token string) error {
	claims, err := security.ValidateToken(token)
	if err != nil {
		// An invalid token needs no denylist entry.
		return nil
	}
	sig, err := security.ExtractSignature(token)
	if err != nil {
		return nil
	}
	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return nil
	}
	return redis.SetWithExpiration(ctx, consts.TokenDenyKey+sig, "1", ttl)
}

func (s *authServiceImpl) issueToken(user *model.User) (*dto.AuthResultDTO, error) {
	token, err := security.GenerateToken(user.ID, user.Email, user.IsAdmin)
	if err != nil {
		return nil, err
	}
	userDTO := &dto.UserDTO{}
	if err := copier.Copy(userDTO, user); err != nil {
		return nil, err
	}
	return &dto.AuthResultDTO{Token: token, User: userDTO}, nil
}
