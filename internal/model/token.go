package model

// TokenManager generates and validates access/refresh tokens.
type TokenManager interface {
	GenerateAccessToken(principal Principal) (string, error)
	GenerateRefreshToken(principal Principal) (token string, jti string, err error)
	ParseAccessToken(token string) (Principal, error)
	ParseRefreshToken(token string) (principal Principal, jti string, err error)
}
