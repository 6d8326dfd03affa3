package utils

import (
	"errors"
	"time"

	"carebook/config"

	"github.com/golang-jwt/jwt"
)

// Actor roles accepted on schedule-management tokens.
const (
	RoleConsultant = "consultant"
	RoleStaff      = "staff"
	RoleAdmin      = "admin"
)

func secretKey() []byte {
	return []byte(config.AppConfig.JWTSecret)
}

// GenerateToken creates a signed JWT with the given subject and role.
// The token expires after the specified duration.
func GenerateToken(subject, role, name string, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":  subject,
		"role": role,
		"name": name,
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(duration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey())
}

// ValidateToken parses and validates a token string and returns the token if valid.
func ValidateToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Ensure that the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secretKey(), nil
	})
}

// Actor is the authenticated principal performing a schedule write.
type Actor struct {
	UserID string
	Role   string
	Name   string
}

// ActorFromToken extracts the acting user from a valid token string.
func ActorFromToken(tokenString string) (Actor, error) {
	token, err := ValidateToken(tokenString)
	if err != nil {
		return Actor{}, err
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return Actor{}, errors.New("invalid token claims")
	}
	actor := Actor{}
	if sub, ok := claims["sub"].(string); ok {
		actor.UserID = sub
	}
	if role, ok := claims["role"].(string); ok {
		actor.Role = role
	}
	if name, ok := claims["name"].(string); ok {
		actor.Name = name
	}
	if actor.UserID == "" || actor.Role == "" {
		return Actor{}, errors.New("token missing subject or role")
	}
	return actor, nil
}
