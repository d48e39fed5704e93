package middleware

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

// OwnFavorites enforces the ownership gate on favorite routes: the user
// id in the path must equal the authenticated subject. Strict equality —
// there is no role hierarchy or admin override. Must run after Auth.
func OwnFavorites() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID, ok := c.Get("userID").(int)
			if !ok {
				return c.JSON(http.StatusUnauthorized, authError{
					Error:   "Token não fornecido",
					Message: "Token de autenticação é obrigatório",
				})
			}

			raw := c.Param("id")
			pathID, err := strconv.Atoi(raw)
			if err != nil || pathID <= 0 {
				return c.JSON(http.StatusNotFound, authError{
					Error:   "Usuário não encontrado",
					Message: fmt.Sprintf("Usuário com ID %s não foi encontrado", raw),
				})
			}

			if pathID != userID {
				return c.JSON(http.StatusForbidden, authError{
					Error:   "Acesso negado",
					Message: "Você não tem permissão para acessar os favoritos de outro usuário",
				})
			}

			return next(c)
		}
	}
}
