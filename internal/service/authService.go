package service

import (
	"context"
	"fmt"
	"time"

	repository "github.com/ds124wfegd/travelbooker/internal/database/postgres"
	"github.com/ds124wfegd/travelbooker/internal/entity"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// LoginRequest представляет учетные данные администратора
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

type adminClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

type authService struct {
	adminRepo  repository.AdminRepository
	secret     []byte
	expiration time.Duration
}

func NewAuthService(adminRepo repository.AdminRepository, secret string, expiration time.Duration) AuthService {
	return &authService{
		adminRepo:  adminRepo,
		secret:     []byte(secret),
		expiration: expiration,
	}
}

func (s *authService) Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error) {
	admin, err := s.adminRepo.GetByUsername(ctx, req.Username)
	if err == entity.ErrAdminNotFound {
		return nil, entity.ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load admin: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)); err != nil {
		return nil, entity.ErrInvalidCredentials
	}

	expiresAt := time.Now().Add(s.expiration)
	claims := adminClaims{
		Username: admin.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprintf("%d", admin.ID),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return &LoginResponse{Token: token, ExpiresAt: expiresAt}, nil
}

// ParseToken проверяет подпись и срок действия, возвращает имя администратора
func (s *authService) ParseToken(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &adminClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return "", entity.ErrInvalidCredentials
	}

	claims, ok := token.Claims.(*adminClaims)
	if !ok || !token.Valid {
		return "", entity.ErrInvalidCredentials
	}

	return claims.Username, nil
}

// HashPassword используется при создании администраторов
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}
