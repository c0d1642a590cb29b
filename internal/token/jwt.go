package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/dtroode/atlas-server/internal/model"
)

// Claims represents JWT claims with token type and principal.
type Claims struct {
	jwt.RegisteredClaims
	UserID    uuid.UUID `json:"user_id"`
	Username  string    `json:"username"`
	TokenType string    `json:"typ"`
}

// JWT implements TokenManager backed by symmetric HMAC.
type JWT struct {
	secretKey string
}

// NewJWT creates a new JWT token manager with the provided secret key.
func NewJWT(secretKey string) model.TokenManager {
	return &JWT{secretKey: secretKey}
}

const (
	issuer      = "atlas"
	accessTTL   = 15 * time.Minute
	refreshTTL  = 30 * 24 * time.Hour
	typeAccess  = "access"
	typeRefresh = "refresh"
)

// GenerateAccessToken creates a short-lived access token.
func (j *JWT) GenerateAccessToken(principal model.Principal) (string, error) {
	tokenString, err := j.sign(principal, "", typeAccess, accessTTL)
	if err != nil {
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}

	return tokenString, nil
}

// GenerateRefreshToken creates a long-lived refresh token and returns its JTI.
func (j *JWT) GenerateRefreshToken(principal model.Principal) (string, string, error) {
	jti := uuid.NewString()
	tokenString, err := j.sign(principal, jti, typeRefresh, refreshTTL)
	if err != nil {
		return "", "", fmt.Errorf("failed to sign refresh token: %w", err)
	}

	return tokenString, jti, nil
}

// ParseAccessToken validates an access token and extracts its principal.
func (j *JWT) ParseAccessToken(tokenString string) (model.Principal, error) {
	claims, err := j.parse(tokenString, typeAccess)
	if err != nil {
		return model.Principal{}, fmt.Errorf("failed to parse access token: %w: %w", model.ErrInvalidToken, err)
	}
	return claims.principal(), nil
}

// ParseRefreshToken validates a refresh token and extracts its principal and JTI.
func (j *JWT) ParseRefreshToken(tokenString string) (model.Principal, string, error) {
	claims, err := j.parse(tokenString, typeRefresh)
	if err != nil {
		return model.Principal{}, "", fmt.Errorf("failed to parse refresh token: %w: %w", model.ErrInvalidToken, err)
	}
	return claims.principal(), claims.ID, nil
}

func (j *JWT) sign(principal model.Principal, jti, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti,
			Issuer:    issuer,
			Subject:   principal.UserID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		UserID:    principal.UserID,
		Username:  principal.Username,
		TokenType: tokenType,
	})

	return token.SignedString([]byte(j.secretKey))
}

func (j *JWT) parse(tokenString, tokenType string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("wrong signing method %v", t.Header["alg"])
		}
		return []byte(j.secretKey), nil
	}, jwt.WithIssuer(issuer))
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("token is invalid")
	}
	if claims.TokenType != tokenType {
		return nil, fmt.Errorf("token type mismatch: %s", claims.TokenType)
	}
	return claims, nil
}

func (c *Claims) principal() model.Principal {
	return model.Principal{UserID: c.UserID, Username: c.Username}
}
