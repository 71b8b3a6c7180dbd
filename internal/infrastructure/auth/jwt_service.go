package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/mehboobrazakhan78692-cmyk/nexora/domain"
)

// JWTServiceImpl implements domain.TokenService. Access and refresh tokens
// are signed with distinct secrets so that compromising one class cannot
// forge the other.
type JWTServiceImpl struct {
	accessSecret  []byte
	refreshSecret []byte
	issuer        string
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

// NewJWTService creates a new JWT token service
func NewJWTService(accessSecret, refreshSecret, issuer string, accessTTL, refreshTTL time.Duration) domain.TokenService {
	return &JWTServiceImpl{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		issuer:        issuer,
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
	}
}

// IssueAccess implements domain.TokenService
func (j *JWTServiceImpl) IssueAccess(userID, email, role string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"id":    userID,
		"email": email,
		"role":  role,
		"iss":   j.issuer,
		"iat":   now.Unix(),
		"exp":   now.Add(j.accessTTL).Unix(),
		"jti":   RandomToken(16),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.accessSecret)
}

// IssueRefresh implements domain.TokenService
func (j *JWTServiceImpl) IssueRefresh(userID, email string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"id":    userID,
		"email": email,
		"iss":   j.issuer,
		"iat":   now.Unix(),
		"exp":   now.Add(j.refreshTTL).Unix(),
		"jti":   RandomToken(16),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.refreshSecret)
}

// VerifyAccess implements domain.TokenService
func (j *JWTServiceImpl) VerifyAccess(tokenString string) (*domain.AccessClaims, error) {
	claims, err := j.parse(tokenString, j.accessSecret)
	if err != nil {
		return nil, err
	}

	out, err := accessClaims(claims)
	if err != nil {
		return nil, err
	}
	if out.Role == "" {
		return nil, domain.ErrTokenInvalid
	}
	return out, nil
}

// VerifyRefresh implements domain.TokenService
func (j *JWTServiceImpl) VerifyRefresh(tokenString string) (*domain.RefreshClaims, error) {
	claims, err := j.parse(tokenString, j.refreshSecret)
	if err != nil {
		return nil, err
	}

	ac, err := accessClaims(claims)
	if err != nil {
		return nil, err
	}
	return &domain.RefreshClaims{UserID: ac.UserID, Email: ac.Email}, nil
}

// Decode implements domain.TokenService. The signature is not checked;
// the result must never be used to establish identity.
func (j *JWTServiceImpl) Decode(tokenString string) (*domain.AccessClaims, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return nil, domain.ErrTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, domain.ErrTokenInvalid
	}

	out, err := accessClaims(claims)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (j *JWTServiceImpl) parse(tokenString string, secret []byte) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, domain.ErrTokenInvalid
		}
		return secret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrTokenExpired
		}
		return nil, domain.ErrTokenInvalid
	}

	if !token.Valid {
		return nil, domain.ErrTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, domain.ErrTokenInvalid
	}

	return claims, nil
}

func accessClaims(claims jwt.MapClaims) (*domain.AccessClaims, error) {
	id, ok := claims["id"].(string)
	if !ok || id == "" {
		return nil, domain.ErrTokenInvalid
	}

	email, ok := claims["email"].(string)
	if !ok {
		return nil, domain.ErrTokenInvalid
	}

	role, _ := claims["role"].(string)

	return &domain.AccessClaims{UserID: id, Email: email, Role: role}, nil
}
