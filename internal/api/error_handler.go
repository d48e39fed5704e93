package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// errorEnvelope is the JSON body rendered for errors that escape the
// handlers (unmatched routes, method mismatches, panics).
type errorEnvelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Message string `json:"message"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that renders the
// API's envelope for routing errors and internal failures.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var he *echo.HTTPError
		if errors.As(err, &he) {
			switch he.Code {
			case http.StatusNotFound:
				_ = c.JSON(http.StatusNotFound, errorEnvelope{
					Error:   "Rota não encontrada",
					Message: fmt.Sprintf("A rota %s não existe", c.Request().URL.Path),
				})
			case http.StatusMethodNotAllowed:
				_ = c.JSON(http.StatusMethodNotAllowed, errorEnvelope{
					Error:   "Método não permitido",
					Message: "O método HTTP usado não é suportado por este endpoint",
				})
			default:
				_ = c.JSON(he.Code, errorEnvelope{
					Error:   http.StatusText(he.Code),
					Message: fmt.Sprintf("%v", he.Message),
				})
			}
			return
		}

		log.Error().
			Err(err).
			Str("method", c.Request().Method).
			Str("path", c.Path()).
			Msg("unhandled error")

		// The message echoes the raw error by contract. TODO: stop
		// leaking internals once consumers no longer assert on it.
		_ = c.JSON(http.StatusInternalServerError, errorEnvelope{
			Error:   "Erro interno do servidor",
			Message: err.Error(),
		})
	}
}
