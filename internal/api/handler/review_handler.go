package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dogmap/dogmap-api/internal/core/domain"
	"github.com/dogmap/dogmap-api/internal/core/ports"
	"github.com/dogmap/dogmap-api/internal/core/validation"
)

// ReviewHandler handles HTTP requests for review operations.
type ReviewHandler struct {
	service ports.ReviewService
}

func NewReviewHandler(service ports.ReviewService) *ReviewHandler {
	return &ReviewHandler{service: service}
}

type createReviewRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

type listReviewsResponse struct {
	Success bool            `json:"success"`
	Data    []domain.Review `json:"data"`
	Count   int             `json:"count"`
}

type createReviewResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Data    *domain.Review `json:"data"`
}

// ListForPlace handles GET /api/places/:id/reviews.
//
// @Summary      Lista as avaliações de um local
// @Tags         reviews
// @Produce      json
// @Param        id   path      string  true  "ID do local"
// @Success      200  {object}  listReviewsResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/places/{id}/reviews [get]
func (h *ReviewHandler) ListForPlace(c echo.Context) error {
	id := c.Param("id")

	reviews, err := h.service.ListPlaceReviews(c.Request().Context(), id)
	if err != nil {
		return fail(c, http.StatusNotFound, labelPlaceNotFound,
			fmt.Sprintf("Local com ID %s não foi encontrado", id))
	}

	return c.JSON(http.StatusOK, listReviewsResponse{
		Success: true,
		Data:    reviews,
		Count:   len(reviews),
	})
}

// Create handles POST /api/places/:id/reviews. Requires authentication;
// the author is always the token subject. The place check runs before
// field validation, which runs before the duplicate check.
//
// @Summary      Cria uma avaliação para um local
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string               true  "ID do local"
// @Param        body  body      createReviewRequest  true  "Dados da avaliação"
// @Success      201   {object}  createReviewResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/places/{id}/reviews [post]
func (h *ReviewHandler) Create(c echo.Context) error {
	userID, ok := ctxUserID(c)
	if !ok {
		return fail(c, http.StatusUnauthorized, "Token não fornecido", "Token de autenticação é obrigatório")
	}

	var req createReviewRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, labelInvalidBody, msgInvalidBody)
	}

	id := c.Param("id")
	review, err := h.service.CreateReview(c.Request().Context(), ports.CreateReviewInput{
		UserID:  userID,
		PlaceID: id,
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrPlaceNotFound):
			return fail(c, http.StatusNotFound, labelPlaceNotFound,
				fmt.Sprintf("Local com ID %s não foi encontrado", id))
		case errors.Is(err, domain.ErrMissingReviewFields):
			return fail(c, http.StatusBadRequest, labelMissingFields, "Nota e comentário são obrigatórios")
		case errors.Is(err, domain.ErrInvalidRating):
			_, reason := validation.Rating(req.Rating)
			return fail(c, http.StatusBadRequest, "Nota inválida", reason)
		case errors.Is(err, domain.ErrDuplicateReview):
			return fail(c, http.StatusBadRequest, "Avaliação duplicada", "Este usuário já avaliou este local")
		}
		return err
	}

	return c.JSON(http.StatusCreated, createReviewResponse{
		Success: true,
		Message: "Avaliação criada com sucesso",
		Data:    review,
	})
}
