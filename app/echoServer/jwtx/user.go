package jwtx

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// FromToken pulls the subject and role out of the echo-jwt token placed on
// the context by the authenticated route group.
func FromToken(c echo.Context) (int64, string, error) {
	tok, ok := c.Get("user").(*jwt.Token)
	if !ok || tok == nil {
		return 0, "", errors.New("no jwt token in context")
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return 0, "", errors.New("invalid jwt claims")
	}

	sub, ok := claims["sub"].(float64)
	if !ok {
		return 0, "", errors.New("sub missing in claims")
	}
	role, _ := claims["role"].(string)
	if role == "" {
		return 0, "", errors.New("role missing in claims")
	}
	return int64(sub), role, nil
}

// UserID returns the user id stored on the context by the auth middleware.
func UserID(c echo.Context) int64 {
	v, _ := c.Get("user_id").(int64)
	return v
}

// Role returns the role stored on the context by the auth middleware.
func Role(c echo.Context) string {
	v, _ := c.Get("role").(string)
	return v
}
