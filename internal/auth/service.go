package auth

import (
	"crypto/subtle"
	"fmt"
	"time"

	apperrors "rotation-manager-backend/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

const tokenLifetime = time.Hour

// AuthClaims represents JWT token claims for an approver session
type AuthClaims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// LoginRequest represents the login request body
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse represents the response for a successful login
type LoginResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType"`
	ExpiresIn   int64  `json:"expiresIn"`
}

// AuthService issues and validates approver tokens. Approver
// credentials come from configuration; tokens are stateless HS256 JWTs.
type AuthService struct {
	jwtSecret []byte
	approvers map[string]string
	now       func() time.Time
}

// NewAuthService creates a new authentication service
func NewAuthService(jwtSecret string, approvers map[string]string) (*AuthService, error) {
	if jwtSecret == "" {
		return nil, apperrors.NewConfigurationError("JWT_SECRET must not be empty")
	}
	return &AuthService{
		jwtSecret: []byte(jwtSecret),
		approvers: approvers,
		now:       time.Now,
	}, nil
}

// Login checks approver credentials and returns a signed token
func (s *AuthService) Login(username, password string) (*LoginResponse, error) {
	expected, ok := s.approvers[username]
	if !ok || subtle.ConstantTimeCompare([]byte(expected), []byte(password)) != 1 {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.GenerateJWT(username)
	if err != nil {
		return nil, err
	}

	return &LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(tokenLifetime.Seconds()),
	}, nil
}

// GenerateJWT creates a JWT token for the approver
func (s *AuthService) GenerateJWT(username string) (string, error) {
	now := s.now()
	claims := &AuthClaims{
		Username: username,
		Role:     "approver",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenLifetime)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "rotation-manager-backend",
			Subject:   username,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

// ValidateJWT validates and parses a JWT token
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*AuthClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, apperrors.ErrMissingOrInvalidToken
}
