package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/dogmap/dogmap-api/internal/core/domain"
	"github.com/dogmap/dogmap-api/internal/core/ports"
	"github.com/dogmap/dogmap-api/internal/core/validation"
)

// PlaceHandler handles HTTP requests for place operations.
type PlaceHandler struct {
	service ports.PlaceService
}

func NewPlaceHandler(service ports.PlaceService) *PlaceHandler {
	return &PlaceHandler{service: service}
}

type createPlaceRequest struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// placeFilters echoes back the query parameters that were applied.
type placeFilters struct {
	Type  string `json:"type,omitempty"`
	Limit *int   `json:"limit,omitempty"`
}

type listPlacesResponse struct {
	Success bool           `json:"success"`
	Data    []domain.Place `json:"data"`
	Count   int            `json:"count"`
	Filters placeFilters   `json:"filters"`
}

type placeResponse struct {
	Success bool          `json:"success"`
	Data    *domain.Place `json:"data"`
}

type createPlaceResponse struct {
	Success bool          `json:"success"`
	Message string        `json:"message"`
	Data    *domain.Place `json:"data"`
}

// List handles GET /api/places?type=&limit=. The type filter is a
// case-insensitive substring match; a non-numeric limit is ignored.
//
// @Summary      Lista locais pet-friendly
// @Tags         places
// @Produce      json
// @Param        type   query     string  false  "Filtro por tipo (substring)"
// @Param        limit  query     int     false  "Número máximo de resultados"
// @Success      200    {object}  listPlacesResponse
// @Router       /api/places [get]
func (h *PlaceHandler) List(c echo.Context) error {
	typeFilter := c.QueryParam("type")

	limit := -1
	var appliedLimit *int
	if raw := c.QueryParam("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			limit = n
			appliedLimit = &n
		}
	}

	places := h.service.ListPlaces(c.Request().Context(), ports.ListPlacesInput{
		Type:  typeFilter,
		Limit: limit,
	})

	return c.JSON(http.StatusOK, listPlacesResponse{
		Success: true,
		Data:    places,
		Count:   len(places),
		Filters: placeFilters{Type: typeFilter, Limit: appliedLimit},
	})
}

// Get handles GET /api/places/:id.
//
// @Summary      Busca um local por ID
// @Tags         places
// @Produce      json
// @Param        id   path      string  true  "ID do local"
// @Success      200  {object}  placeResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/places/{id} [get]
func (h *PlaceHandler) Get(c echo.Context) error {
	id := c.Param("id")

	place, err := h.service.GetPlace(c.Request().Context(), id)
	if err != nil {
		return fail(c, http.StatusNotFound, labelPlaceNotFound,
			fmt.Sprintf("Local com ID %s não foi encontrado", id))
	}

	return c.JSON(http.StatusOK, placeResponse{Success: true, Data: place})
}

// Create handles POST /api/places. Requires authentication.
//
// @Summary      Cadastra um novo local
// @Tags         places
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createPlaceRequest  true  "Dados do local"
// @Success      201   {object}  createPlaceResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /api/places [post]
func (h *PlaceHandler) Create(c echo.Context) error {
	var req createPlaceRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, labelInvalidBody, msgInvalidBody)
	}

	if req.Name == "" || req.Type == "" {
		return fail(c, http.StatusBadRequest, labelMissingFields, "Nome e tipo são obrigatórios")
	}
	if ok, reason := validation.PlaceType(req.Type); !ok {
		return fail(c, http.StatusBadRequest, "Tipo de local inválido", reason)
	}

	place, err := h.service.CreatePlace(c.Request().Context(), req.Name, req.Type)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidPlaceType) {
			_, reason := validation.PlaceType(req.Type)
			return fail(c, http.StatusBadRequest, "Tipo de local inválido", reason)
		}
		return err
	}

	return c.JSON(http.StatusCreated, createPlaceResponse{
		Success: true,
		Message: "Local criado com sucesso",
		Data:    place,
	})
}
