package service

import (
	"crypto/subtle"
	"strings"

	"parade/app_error"
	"parade/auth"
	"parade/config"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var ErrInvalidCredentials = app_error.Unauthorized("invalid credentials")

type AuthService struct {
	judgeService *JudgeService
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{
		judgeService: NewJudgeService(db),
	}
}

func passwordFor(role auth.Role) string {
	switch role {
	case auth.RoleAdmin:
		return config.Env().AdminPassword
	case auth.RoleCoordinator:
		return config.Env().CoordinatorPassword
	}
	return ""
}

// passwordMatches accepts either a bcrypt hash or a plain value as the configured password.
func passwordMatches(expected string, given string) bool {
	if expected == "" {
		return false
	}
	if strings.HasPrefix(expected, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(expected), []byte(given)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(expected), []byte(given)) == 1
}

// Login checks a staff password and returns a signed token for the role.
func (s *AuthService) Login(role auth.Role, password string) (string, *auth.Claims, error) {
	if !passwordMatches(passwordFor(role), password) {
		return "", nil, ErrInvalidCredentials
	}
	claims := &auth.Claims{Role: role}
	token, err := auth.CreateToken(claims)
	if err != nil {
		return "", nil, err
	}
	return token, claims, nil
}

func (s *AuthService) JudgeLogin(eventId int, accessCode string) (string, *auth.Claims, error) {
	judge, err := s.judgeService.Authenticate(eventId, accessCode)
	if err != nil {
		return "", nil, err
	}
	claims := &auth.Claims{Role: auth.RoleJudge, JudgeId: judge.Id, EventId: judge.EventId}
	token, err := auth.CreateToken(claims)
	if err != nil {
		return "", nil, err
	}
	return token, claims, nil
}
