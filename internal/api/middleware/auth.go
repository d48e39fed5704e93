package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/dogmap/dogmap-api/internal/core/domain"
	"github.com/dogmap/dogmap-api/internal/core/ports"
)

type authError struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Message string `json:"message"`
}

// Auth validates the simulated bearer token and injects the caller's
// user id into the echo context under "userID".
func Auth(authService ports.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")

			var token string
			if parts := strings.SplitN(authHeader, " ", 2); len(parts) == 2 {
				token = parts[1]
			}
			if token == "" {
				return c.JSON(http.StatusUnauthorized, authError{
					Error:   "Token não fornecido",
					Message: "Token de autenticação é obrigatório",
				})
			}

			userID, err := authService.ParseToken(c.Request().Context(), token)
			if err != nil {
				if errors.Is(err, domain.ErrUnknownTokenUser) {
					return c.JSON(http.StatusUnauthorized, authError{
						Error:   "Token inválido",
						Message: "Usuário não encontrado",
					})
				}
				return c.JSON(http.StatusUnauthorized, authError{
					Error:   "Token inválido",
					Message: "Formato de token inválido",
				})
			}

			c.Set("userID", userID)
			return next(c)
		}
	}
}
