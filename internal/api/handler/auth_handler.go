package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dogmap/dogmap-api/internal/core/domain"
	"github.com/dogmap/dogmap-api/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Token   string `json:"token"`
}

// Login authenticates a user and returns a simulated bearer token.
//
// @Summary      Autentica um usuário
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credenciais de login"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, labelInvalidBody, msgInvalidBody)
	}

	if req.Email == "" || req.Password == "" {
		return fail(c, http.StatusBadRequest, labelMissingFields, "Email e senha são obrigatórios")
	}

	token, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidEmail):
			return fail(c, http.StatusBadRequest, "Email inválido", "Formato de email inválido")
		case errors.Is(err, domain.ErrInvalidPassword):
			return fail(c, http.StatusBadRequest, "Senha inválida", "A senha deve conter exatamente 6 dígitos numéricos")
		case errors.Is(err, domain.ErrEmailNotRegistered):
			return fail(c, http.StatusUnauthorized, "Credenciais inválidas", "Email não cadastrado no sistema")
		case errors.Is(err, domain.ErrWrongPassword):
			return fail(c, http.StatusUnauthorized, "Credenciais inválidas", "Senha incorreta para este email")
		}
		return err
	}

	return c.JSON(http.StatusOK, loginResponse{
		Success: true,
		Message: "Login realizado com sucesso",
		Token:   token,
	})
}
