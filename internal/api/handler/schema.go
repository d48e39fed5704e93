package handler

import "github.com/labstack/echo/v4"

// errorResponse is the canonical failure envelope. The error label and
// the longer message are part of the API contract and must match the
// documented wording exactly.
type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Message string `json:"message"`
}

// fail renders the failure envelope with the given status.
func fail(c echo.Context, status int, label, message string) error {
	return c.JSON(status, errorResponse{Success: false, Error: label, Message: message})
}

// Shared failure wording.
const (
	labelInvalidBody   = "Dados inválidos"
	msgInvalidBody     = "Corpo da requisição inválido"
	labelMissingFields = "Dados obrigatórios não fornecidos"
	labelUserNotFound  = "Usuário não encontrado"
	labelPlaceNotFound = "Local não encontrado"
)
