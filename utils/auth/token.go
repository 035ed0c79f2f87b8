package auth

import (
	"time"

	"campus_backend/config"

	"github.com/golang-jwt/jwt/v4"
	"github.com/pkg/errors"
)

// TokenClaims is what redeem/login put into both access and refresh tokens
type TokenClaims struct {
	UserID   int    `json:"uid"`
	TenantID int    `json:"tenant_id"`
	Role     string `json:"role"`
	Nickname string `json:"nickname"`
}

// CreateToken signs an access/refresh token pair for the given account
func CreateToken(claims TokenClaims) (accessToken, refreshToken string, err error) {
	claim := jwt.MapClaims{
		"uid":       claims.UserID,
		"id":        claims.UserID,
		"tenant_id": claims.TenantID,
		"role":      claims.Role,
		"nickname":  claims.Nickname,
		"iat":       time.Now().Unix(),
	}

	// access payload
	claim["type"] = "access"
	claim["exp"] = time.Now().Add(time.Duration(config.Config.AccessExpireTime) * time.Minute).Unix()
	accessToken, err = jwt.NewWithClaims(jwt.SigningMethodHS256, claim).SignedString([]byte(config.Config.JwtSecret))
	if err != nil {
		return "", "", errors.Wrap(err, "sign access token")
	}

	// refresh payload
	claim["type"] = "refresh"
	claim["exp"] = time.Now().Add(time.Duration(config.Config.RefreshExpireTime) * 24 * time.Hour).Unix()
	refreshToken, err = jwt.NewWithClaims(jwt.SigningMethodHS256, claim).SignedString([]byte(config.Config.JwtSecret))
	if err != nil {
		return "", "", errors.Wrap(err, "sign refresh token")
	}

	return
}

// ParseToken verifies the signature and returns the claims
func ParseToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(config.Config.JwtSecret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
