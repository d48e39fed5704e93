package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dogmap/dogmap-api/internal/core/domain"
	"github.com/dogmap/dogmap-api/internal/core/ports"
)

// FavoriteHandler handles HTTP requests for favorite operations. All
// routes sit behind the Auth and ownership middleware, so the path user
// is always the authenticated caller by the time a handler runs.
type FavoriteHandler struct {
	service ports.FavoriteService
}

func NewFavoriteHandler(service ports.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{service: service}
}

type listFavoritesResponse struct {
	Success bool                       `json:"success"`
	Data    []domain.FavoriteWithPlace `json:"data"`
	Count   int                        `json:"count"`
}

type addFavoriteResponse struct {
	Success bool             `json:"success"`
	Message string           `json:"message"`
	Data    *domain.Favorite `json:"data"`
}

type removeFavoriteResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// List handles GET /api/users/:id/favorites.
//
// @Summary      Lista os favoritos de um usuário
// @Tags         favorites
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "ID do usuário"
// @Success      200  {object}  listFavoritesResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/users/{id}/favorites [get]
func (h *FavoriteHandler) List(c echo.Context) error {
	id := c.Param("id")

	favorites, err := h.service.ListFavorites(c.Request().Context(), id)
	if err != nil {
		return fail(c, http.StatusNotFound, labelUserNotFound,
			fmt.Sprintf("Usuário com ID %s não foi encontrado", id))
	}

	return c.JSON(http.StatusOK, listFavoritesResponse{
		Success: true,
		Data:    favorites,
		Count:   len(favorites),
	})
}

// Add handles POST /api/users/:id/favorites/:placeId.
//
// @Summary      Adiciona um local aos favoritos
// @Tags         favorites
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string  true  "ID do usuário"
// @Param        placeId  path      string  true  "ID do local"
// @Success      201      {object}  addFavoriteResponse
// @Failure      400      {object}  errorResponse
// @Failure      401      {object}  errorResponse
// @Failure      403      {object}  errorResponse
// @Failure      404      {object}  errorResponse
// @Router       /api/users/{id}/favorites/{placeId} [post]
func (h *FavoriteHandler) Add(c echo.Context) error {
	id := c.Param("id")
	placeID := c.Param("placeId")

	favorite, err := h.service.AddFavorite(c.Request().Context(), id, placeID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			return fail(c, http.StatusNotFound, labelUserNotFound,
				fmt.Sprintf("Usuário com ID %s não foi encontrado", id))
		case errors.Is(err, domain.ErrPlaceNotFound):
			return fail(c, http.StatusNotFound, labelPlaceNotFound,
				fmt.Sprintf("Local com ID %s não foi encontrado", placeID))
		case errors.Is(err, domain.ErrDuplicateFavorite):
			return fail(c, http.StatusBadRequest, "Local já favoritado",
				"Este local já está na lista de favoritos do usuário")
		}
		return err
	}

	return c.JSON(http.StatusCreated, addFavoriteResponse{
		Success: true,
		Message: "Local adicionado aos favoritos com sucesso",
		Data:    favorite,
	})
}

// Remove handles DELETE /api/users/:id/favorites/:placeId.
//
// @Summary      Remove um local dos favoritos
// @Tags         favorites
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string  true  "ID do usuário"
// @Param        placeId  path      string  true  "ID do local"
// @Success      200      {object}  removeFavoriteResponse
// @Failure      401      {object}  errorResponse
// @Failure      403      {object}  errorResponse
// @Failure      404      {object}  errorResponse
// @Router       /api/users/{id}/favorites/{placeId} [delete]
func (h *FavoriteHandler) Remove(c echo.Context) error {
	id := c.Param("id")
	placeID := c.Param("placeId")

	err := h.service.RemoveFavorite(c.Request().Context(), id, placeID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			return fail(c, http.StatusNotFound, labelUserNotFound,
				fmt.Sprintf("Usuário com ID %s não foi encontrado", id))
		case errors.Is(err, domain.ErrPlaceNotFound):
			return fail(c, http.StatusNotFound, labelPlaceNotFound,
				fmt.Sprintf("Local com ID %s não foi encontrado", placeID))
		case errors.Is(err, domain.ErrFavoriteNotFound):
			return fail(c, http.StatusNotFound, "Favorito não encontrado",
				"Este local não está na lista de favoritos do usuário")
		}
		return err
	}

	return c.JSON(http.StatusOK, removeFavoriteResponse{
		Success: true,
		Message: "Local removido dos favoritos com sucesso",
	})
}
