package auth

import (
	"errors"
	"time"

	"github.com/alefmoda/alef-golang/internal/config"
	"github.com/golang-jwt/jwt/v5"
)

// adminSubject is the only principal this store knows. There are no
// shopper accounts; the token just gates the back-office routes.
const adminSubject = "admin"

// GenerateAdminToken creates a JWT for the admin session.
func GenerateAdminToken() (string, error) {
	claims := jwt.MapClaims{
		"sub": adminSubject,
		"exp": time.Now().Add(time.Hour * 72).Unix(),
		"iat": time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.JWTSecret))
}

// ValidateToken parses a token string and verifies it carries the admin
// subject.
func ValidateToken(tokenString string) error {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(config.JWTSecret), nil
	})
	if err != nil {
		return err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return errors.New("invalid token")
	}
	if sub, _ := claims["sub"].(string); sub != adminSubject {
		return errors.New("invalid subject claim")
	}
	return nil
}
