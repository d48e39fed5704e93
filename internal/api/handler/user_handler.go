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

// UserHandler handles HTTP requests for user operations.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

type petRequest struct {
	Name  string `json:"name"`
	Type  string `json:"type"`
	Breed string `json:"breed"`
}

type createUserRequest struct {
	Name     string     `json:"name"`
	Email    string     `json:"email"`
	Password string     `json:"password"`
	Pet      petRequest `json:"pet"`
}

type listUsersResponse struct {
	Success bool          `json:"success"`
	Data    []domain.User `json:"data"`
	Count   int           `json:"count"`
}

type userResponse struct {
	Success bool         `json:"success"`
	Data    *domain.User `json:"data"`
}

type createUserResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Data    *domain.User `json:"data"`
}

// List handles GET /api/users.
//
// @Summary      Lista todos os usuários
// @Tags         users
// @Produce      json
// @Success      200  {object}  listUsersResponse
// @Router       /api/users [get]
func (h *UserHandler) List(c echo.Context) error {
	users := h.service.ListUsers(c.Request().Context())
	return c.JSON(http.StatusOK, listUsersResponse{
		Success: true,
		Data:    users,
		Count:   len(users),
	})
}

// Get handles GET /api/users/:id.
//
// @Summary      Busca um usuário por ID
// @Tags         users
// @Produce      json
// @Param        id   path      string  true  "ID do usuário"
// @Success      200  {object}  userResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	id := c.Param("id")

	user, err := h.service.GetUser(c.Request().Context(), id)
	if err != nil {
		return fail(c, http.StatusNotFound, labelUserNotFound,
			fmt.Sprintf("Usuário com ID %s não foi encontrado", id))
	}

	return c.JSON(http.StatusOK, userResponse{Success: true, Data: user})
}

// Create handles POST /api/users. Validation order matters for the
// envelope wording: required fields, password shape, pet sub-record,
// email shape, then the store's duplicate-email check.
//
// @Summary      Cadastra um novo usuário
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      createUserRequest  true  "Dados do usuário"
// @Success      201   {object}  createUserResponse
// @Failure      400   {object}  errorResponse
// @Router       /api/users [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, labelInvalidBody, msgInvalidBody)
	}

	if req.Name == "" || req.Email == "" || req.Password == "" || req.Pet == (petRequest{}) {
		return fail(c, http.StatusBadRequest, labelMissingFields,
			"Nome, email, senha e informações do pet são obrigatórios")
	}
	if ok, reason := validation.Password(req.Password); !ok {
		return fail(c, http.StatusBadRequest, "Senha inválida", reason)
	}
	if ok, reason := validation.Pet(domain.Pet{Name: req.Pet.Name, Type: req.Pet.Type, Breed: req.Pet.Breed}); !ok {
		return fail(c, http.StatusBadRequest, "Dados do pet incompletos", reason)
	}
	if ok, reason := validation.Email(req.Email); !ok {
		return fail(c, http.StatusBadRequest, "Email inválido", reason)
	}

	user, err := h.service.Register(c.Request().Context(), ports.RegisterUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Pet: ports.PetInput{
			Name:  req.Pet.Name,
			Type:  req.Pet.Type,
			Breed: req.Pet.Breed,
		},
	})
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			return fail(c, http.StatusBadRequest, "Email já cadastrado", "E-mail já cadastrado no sistema")
		}
		if errors.Is(err, domain.ErrInvalidPassword) {
			return fail(c, http.StatusBadRequest, "Senha inválida", "A senha deve conter exatamente 6 dígitos numéricos")
		}
		return err
	}

	return c.JSON(http.StatusCreated, createUserResponse{
		Success: true,
		Message: "Usuário criado com sucesso",
		Data:    user,
	})
}
