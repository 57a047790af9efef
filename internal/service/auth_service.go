package service

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/classpulse/backend/internal/apperr"
	"github.com/classpulse/backend/internal/dto"
	"github.com/classpulse/backend/internal/model"
	"github.com/classpulse/backend/internal/repository"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService interface {
	Login(req dto.LoginRequest) (*dto.LoginResponse, error)
	// CreateAnonymous mints a fresh anonymous student identity and returns
	// its code; the code doubles as the resume credential.
	CreateAnonymous() (*dto.AnonymousAuthResponse, error)
	ResumeAnonymous(code string) (*dto.AnonymousAuthResponse, error)
}

type authService struct {
	userRepo repository.UserRepository
	tokens   TokenService
}

func NewAuthService(userRepo repository.UserRepository, tokens TokenService) AuthService {
	return &authService{userRepo: userRepo, tokens: tokens}
}

func (s *authService) Login(req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Authf("Invalid credentials")
		}
		log.Error().Err(err).Msg("Login: user lookup failed")
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, apperr.Authf("Invalid credentials")
	}

	token, err := s.tokens.Sign(user)
	if err != nil {
		log.Error().Err(err).Uint("userID", user.ID).Msg("Login: token signing failed")
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  dto.AuthUser{ID: user.ID, Role: string(user.Role), Name: user.Name},
	}, nil
}

func (s *authService) CreateAnonymous() (*dto.AnonymousAuthResponse, error) {
	code, err := generateStudentCode()
	if err != nil {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Role:          model.RoleStudent,
		PasswordHash:  string(hash),
		AnonymousCode: &code,
	}
	if err := s.userRepo.Create(user); err != nil {
		log.Error().Err(err).Msg("CreateAnonymous: failed to create student")
		return nil, err
	}

	token, err := s.tokens.Sign(user)
	if err != nil {
		return nil, err
	}
	return &dto.AnonymousAuthResponse{
		Token:         token,
		AnonymousCode: code,
		Role:          string(model.RoleStudent),
	}, nil
}

func (s *authService) ResumeAnonymous(code string) (*dto.AnonymousAuthResponse, error) {
	user, err := s.userRepo.FindStudentByAnonymousCode(code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Authf("Invalid anonymous code")
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(code)) != nil {
		return nil, apperr.Authf("Invalid anonymous code")
	}

	token, err := s.tokens.Sign(user)
	if err != nil {
		return nil, err
	}
	return &dto.AnonymousAuthResponse{
		Token:         token,
		AnonymousCode: *user.AnonymousCode,
		Role:          string(user.Role),
	}, nil
}

// generateStudentCode builds the human-displayed pseudonym, e.g. STU-A1B2C3.
func generateStudentCode() (string, error) {
	buf := make([]byte, 3)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return fmt.Sprintf("STU-%s", strings.ToUpper(hex.EncodeToString(buf))), nil
}
